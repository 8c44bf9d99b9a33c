package player

import "github.com/Ingame-C/Class-sub002/prop"

type hideState struct {
	base
	spot prop.Hideable
}

func (s *hideState) Enter(p *Player) {
	p.hiding = true
	spot, ok := hideableSpot(p.detected)
	if !ok {
		s.spot = nil
		s.enter.notify()
		// nothing to hide in
		p.ChangeState(p.states.Idle)
		return
	}
	if p.held != nil {
		p.ForceRelease()
	}
	s.spot = spot
	pose := spot.HidePose()
	spot.SetSolid(false)
	p.body.SetPosition(pose.Position)
	p.yaw = pose.Yaw
	p.pitch = 0
	s.enter.notify()
}

func (s *hideState) Exit(p *Player) {
	p.hiding = false
	if s.spot != nil {
		pose := s.spot.ReturnPose()
		p.body.SetPosition(pose.Position)
		p.yaw = pose.Yaw
		s.spot.SetSolid(true)
		p.play(p.cfg.HideCue, 1)
		s.spot = nil
	}
	s.exit.notify()
}

func (s *hideState) HandleInput(p *Player) {
	p.in = Input{ExitPressed: p.src.Sample().ExitPressed}
}

func (s *hideState) LogicUpdate(p *Player, dt float64) {
	if p.in.ExitPressed {
		p.ChangeState(p.states.Idle)
	}
}

func hideableSpot(pr prop.Prop) (prop.Hideable, bool) {
	spot, ok := pr.(prop.Hideable)
	if !ok || !spot.Active() {
		return nil, false
	}
	return spot, true
}

// HidingSpot is the prop the actor is hidden in, or nil.
func (p *Player) HidingSpot() prop.Hideable {
	return p.states.Hide.(*hideState).spot
}
