package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/levels"
	"github.com/Ingame-C/Class-sub002/prefabs"
	"github.com/Ingame-C/Class-sub002/prop"
)

var (
	ErrUnknownKind  = errors.New("scene: unknown prop kind")
	ErrNoStartChair = errors.New("scene: no start chair")
)

const defaultActorRadius = 0.3

// Scene is a built level: the collision world, the actor body and every
// prop, ready for a player to be dropped in.
type Scene struct {
	Level      *levels.Level
	World      *World
	Actor      *Actor
	Props      []prop.Prop
	StartChair *prop.Chair

	byID     map[string]prop.Prop
	updaters []prop.Updater
}

type Deps struct {
	Audio common.AudioTrigger
	// Sheet builds the modal a lectern or script opens.
	Sheet prop.SheetFactory
	// Scripts resolves a scripted prop's source; prefabs.LoadScript when nil.
	Scripts     func(name string) ([]byte, error)
	ActorRadius float64
}

func Build(lvl *levels.Level, deps Deps) (*Scene, error) {
	if lvl == nil {
		return nil, errors.New("scene: nil level")
	}
	if deps.Audio == nil {
		deps.Audio = common.NopAudio{}
	}
	if deps.Scripts == nil {
		deps.Scripts = prefabs.LoadScript
	}
	if deps.ActorRadius <= 0 {
		deps.ActorRadius = defaultActorRadius
	}

	s := &Scene{
		Level: lvl,
		World: NewWorld(),
		byID:  make(map[string]prop.Prop, len(lvl.Entities)),
	}
	for _, wall := range lvl.Walls {
		s.World.AddWall(wall.Min, wall.Max)
	}

	var surfaces []levels.Entity
	for _, ent := range lvl.Entities {
		p, err := buildProp(ent, deps)
		if err != nil {
			return nil, fmt.Errorf("scene: build prop %q: %w", ent.ID, err)
		}
		s.World.AddProp(p, ent.Size)
		s.Props = append(s.Props, p)
		s.byID[ent.ID] = p
		if u, ok := p.(prop.Updater); ok {
			s.updaters = append(s.updaters, u)
		}
		if ent.String("on") != "" {
			surfaces = append(surfaces, ent)
		}
	}

	for _, ent := range surfaces {
		g, ok := s.byID[ent.ID].(prop.Grabbable)
		if !ok {
			return nil, fmt.Errorf("scene: %q is not grabbable but sits on %q", ent.ID, ent.String("on"))
		}
		desk, ok := s.byID[ent.String("on")].(*prop.Desk)
		if !ok {
			return nil, fmt.Errorf("scene: %q sits on unknown desk %q", ent.ID, ent.String("on"))
		}
		desk.Add(g)
	}

	chair, ok := s.byID[lvl.StartChair].(*prop.Chair)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoStartChair, lvl.StartChair)
	}
	s.StartChair = chair

	s.Actor = s.World.AddActor(lvl.Spawn.Position, deps.ActorRadius)
	log.Printf("scene: built %q with %d props", lvl.Name, len(s.Props))
	return s, nil
}

func buildProp(ent levels.Entity, deps Deps) (prop.Prop, error) {
	kind, ok := prop.ParseKind(ent.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, ent.Type)
	}
	pos, yaw := ent.Position, ent.Yaw

	switch kind {
	case prop.KindChair:
		return prop.NewChair(ent.ID, pos, yaw, ent.Float("seat_height", 0.45)), nil
	case prop.KindDesk:
		return prop.NewDesk(ent.ID, pos, yaw, ent.Float("top_height", ent.Size.Y())), nil
	case prop.KindDoor:
		return prop.NewDoor(ent.ID, pos, yaw, ent.Bool("locked"), deps.Audio), nil
	case prop.KindLocker:
		hide, ok := ent.Pose("hide_pose")
		if !ok {
			hide = levels.Pose{Position: pos, Yaw: yaw}
		}
		ret, ok := ent.Pose("return_pose")
		if !ok {
			return nil, errors.New("locker needs a return_pose")
		}
		l := prop.NewLocker(ent.ID, pos, yaw,
			prop.Pose{Position: hide.Position, Yaw: hide.Yaw},
			prop.Pose{Position: ret.Position, Yaw: ret.Yaw},
			deps.Audio)
		l.Locked = ent.Bool("locked")
		return l, nil
	case prop.KindLectern:
		return prop.NewLectern(ent.ID, pos, yaw, deps.Sheet, deps.Audio), nil
	case prop.KindChalk:
		return prop.NewChalk(ent.ID, pos, yaw), nil
	case prop.KindItem:
		return prop.NewItem(ent.ID, pos, yaw), nil
	case prop.KindBlackboard:
		return prop.NewBlackboard(ent.ID, pos, yaw, deps.Audio), nil
	case prop.KindScripted:
		path := ent.String("script")
		src, err := deps.Scripts(path)
		if err != nil {
			return nil, fmt.Errorf("load script %q: %w", path, err)
		}
		sp, err := prop.NewScripted(ent.ID, pos, yaw, path, src, deps.Audio, deps.Sheet)
		if err != nil {
			return nil, err
		}
		return sp, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, ent.Type)
}

func (s *Scene) Prop(id string) (prop.Prop, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Update advances prop animations.
func (s *Scene) Update(dt float64) {
	for _, u := range s.updaters {
		u.Update(dt)
	}
}
