package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/input"
	"github.com/Ingame-C/Class-sub002/levels"
	"github.com/Ingame-C/Class-sub002/player"
	"github.com/Ingame-C/Class-sub002/prefabs"
	"github.com/Ingame-C/Class-sub002/scene"
	"github.com/Ingame-C/Class-sub002/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Options struct {
	Level     string
	Debug     bool
	SoundsDir string
}

type Game struct {
	opts   Options
	frames int
	acc    float64

	cfg        player.Config
	bodyRadius float64

	sampler *input.Sampler
	sounds  *sound.Bank
	loader  *scene.Loader
	watcher *prefabs.Watcher
	poller  *prefabs.Poller

	levelFile string
	scene     *scene.Scene
	player    *player.Player
	sheet     *AnswerSheet
	cursor    ebiten.CursorModeType
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("load player spec: %w", err)
	}
	audioSpec, err := prefabs.LoadAudioBankSpec()
	if err != nil {
		return nil, fmt.Errorf("load audio spec: %w", err)
	}
	rate := audioSpec.SampleRate
	if rate == 0 {
		rate = 44100
	}
	bank, err := sound.Load(audio.NewContext(rate), audioSpec, opts.SoundsDir)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:       opts,
		cfg:        player.ConfigFromSpec(spec),
		bodyRadius: spec.Body.Radius,
		sampler:    input.NewSampler(spec.Move.SmoothingRate),
		sounds:     bank,
		cursor:     ebiten.CursorModeCaptured,
	}
	g.loader = scene.NewLoader(g.loadLevel)

	if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher unavailable, polling instead: %v", err)
			g.poller = prefabs.NewPoller("player.yaml", "audio.yaml", "scripts/bell.tengo")
		} else {
			g.watcher = w
		}
	}

	if err := g.loadLevel(opts.Level); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func normalizeLevelName(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "levels/")
	if name == "" {
		name = "classroom"
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

// loadLevel builds a fresh scene and player. The lesson starts seated.
func (g *Game) loadLevel(name string) error {
	file := normalizeLevelName(name)
	lvl, err := levels.LoadLevelFromFS(file)
	if err != nil {
		return fmt.Errorf("load level %s: %w", file, err)
	}
	s, err := scene.Build(lvl, scene.Deps{
		Audio:       g.sounds,
		Sheet:       g.openSheet,
		ActorRadius: g.bodyRadius,
	})
	if err != nil {
		return err
	}
	p, err := player.New(player.Options{
		Config:     g.cfg,
		Body:       s.Actor,
		Input:      g.sampler,
		Raycaster:  s.World,
		Audio:      g.sounds,
		Scenes:     g.loader,
		StartChair: s.StartChair,
		FallScene:  lvl.FallScene,
		Yaw:        lvl.Spawn.Yaw,
		Trace:      g.opts.Debug,
	})
	if err != nil {
		return err
	}
	p.States().Fall.OnEnter(func() { log.Printf("game: player is falling") })
	p.Sit()

	g.sounds.SetListener(p.CameraPosition)
	g.levelFile, g.scene, g.player, g.sheet = file, s, p, nil
	g.acc = 0
	log.Printf("game: loaded %s", file)
	return nil
}

func (g *Game) openSheet() common.ModalUI {
	g.sheet = NewAnswerSheet("Q1. 7 x 8 = ?   A) 54   B) 56   C) 58   D) 64")
	return g.sheet
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())

	g.reloadChanged()
	if g.opts.Debug {
		g.debugKeys()
	}

	g.sampler.Update(dt)
	g.player.HandleInput()

	g.acc += dt
	steps := 0
	for g.acc >= common.FixedStep && steps < common.MaxPhysicsSteps {
		g.player.PhysicsUpdate(common.FixedStep)
		g.scene.World.Step(common.FixedStep)
		g.acc -= common.FixedStep
		steps++
	}
	if steps == common.MaxPhysicsSteps {
		g.acc = 0
	}

	g.player.LogicUpdate(dt)
	g.scene.Update(dt)
	g.sounds.Update()

	if g.sheet != nil {
		switch {
		case g.sheet.Done():
			log.Printf("game: answer sheet handed in with %s", g.sheet.Answer())
			g.player.ClearModal()
			g.sheet = nil
		case g.player.Modal() == nil:
			g.sheet = nil
		}
	}
	g.syncCursor()

	if err := g.loader.Apply(); err != nil {
		log.Printf("game: %v", err)
	}
	return nil
}

// syncCursor frees the cursor while a modal needs it.
func (g *Game) syncCursor() {
	want := ebiten.CursorModeCaptured
	if g.player.Modal() != nil {
		want = ebiten.CursorModeVisible
	}
	if want != g.cursor {
		ebiten.SetCursorMode(want)
		g.cursor = want
	}
}

// frames between prefab polls when fsnotify is unavailable
const pollFrames = 30

func (g *Game) reloadChanged() {
	if g.watcher != nil {
		select {
		case err := <-g.watcher.Errors:
			log.Printf("game: prefab watcher: %v", err)
		default:
		}
	}
	changed := g.watcher.Drain()
	if g.poller != nil && g.frames%pollFrames == 0 {
		changed = append(changed, g.poller.Drain()...)
	}
	for _, name := range changed {
		switch {
		case name == "player.yaml":
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.cfg = player.ConfigFromSpec(spec)
			g.player.ApplyConfig(g.cfg)
			g.sampler.SmoothingRate = spec.Move.SmoothingRate
			log.Printf("game: reloaded %s", name)
		case name == "audio.yaml":
			spec, err := prefabs.LoadAudioBankSpec()
			if err == nil {
				err = g.sounds.Reload(spec, g.opts.SoundsDir)
			}
			if err != nil {
				log.Printf("game: reload %s: %v", name, err)
			}
		case strings.HasPrefix(name, "scripts/"):
			g.loader.LoadScene(g.levelFile)
		}
	}
}

func (g *Game) debugKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.player.Fall()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		if board, ok := g.scene.Prop("blackboard"); ok {
			g.player.Observe(board)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.player.ChangeState(g.player.States().Idle)
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.loader.LoadScene(g.levelFile)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
