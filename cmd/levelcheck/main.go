package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/levels"
	"github.com/Ingame-C/Class-sub002/player"
	"github.com/Ingame-C/Class-sub002/prop"
	"github.com/Ingame-C/Class-sub002/scene"
)

// idleInput never touches the controls.
type idleInput struct{}

func (idleInput) Sample() player.Input { return player.Input{} }

// check builds a level headless and runs an untouched player for a few
// seconds. The player must stay seated and the level must not request a
// scene change on its own.
func check(name string, frames int) error {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return err
	}
	s, err := scene.Build(lvl, scene.Deps{})
	if err != nil {
		return err
	}
	loader := scene.NewLoader(func(string) error { return nil })
	p, err := player.New(player.Options{
		Body:       s.Actor,
		Input:      idleInput{},
		Raycaster:  s.World,
		Scenes:     loader,
		StartChair: s.StartChair,
		FallScene:  lvl.FallScene,
		Yaw:        lvl.Spawn.Yaw,
	})
	if err != nil {
		return err
	}
	p.Sit()

	for i := 0; i < frames; i++ {
		p.HandleInput()
		p.PhysicsUpdate(common.FixedStep)
		s.World.Step(common.FixedStep)
		p.LogicUpdate(common.FixedStep)
		s.Update(common.FixedStep)
	}
	if !p.IsSitting() {
		return fmt.Errorf("%s: player left the start chair as %s", name, p.State().Name())
	}
	if pending, ok := loader.Pending(); ok {
		return fmt.Errorf("%s: unexpected scene request %q", name, pending)
	}

	kinds := map[prop.Kind]int{}
	for _, pr := range s.Props {
		kinds[pr.Kind()]++
	}
	keys := make([]prop.Kind, 0, len(kinds))
	for k := range kinds {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	summary := ""
	for _, k := range keys {
		summary += fmt.Sprintf(" %s=%d", k, kinds[k])
	}
	log.Printf("%s: ok, %d walls,%s", name, len(lvl.Walls), summary)
	return nil
}

func main() {
	level := flag.String("level", "", "check only this level (default all embedded levels)")
	seconds := flag.Float64("t", 5, "seconds to simulate per level")
	flag.Parse()

	names := levels.Names()
	if *level != "" {
		name := *level
		if !strings.HasSuffix(name, ".json") {
			name += ".json"
		}
		names = []string{name}
	}
	frames := int(*seconds / common.FixedStep)

	failed := 0
	for _, name := range names {
		if err := check(name, frames); err != nil {
			log.Printf("FAIL %v", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
