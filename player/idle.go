package player

import "math"

type idleState struct {
	base
}

func (s *idleState) Enter(p *Player) {
	p.in.RawX, p.in.RawY = 0, 0
	s.enter.notify()
}

func (s *idleState) Exit(p *Player) {
	s.exit.notify()
}

func (s *idleState) HandleInput(p *Player) {
	in := p.src.Sample()
	// smoothed axes belong to Walk
	in.SmoothX, in.SmoothY = 0, 0
	p.in = in
}

func (s *idleState) PhysicsUpdate(p *Player, dt float64) {
	p.detect()
}

func (s *idleState) LogicUpdate(p *Player, dt float64) {
	if !p.sharedLogic(s) {
		return
	}
	// a modal only freezes the view; the walk threshold still applies
	if p.modal != nil {
		if p.in.ExitPressed {
			p.ClearModal()
		}
	} else {
		p.look()
	}

	th := p.cfg.WalkThreshold
	if math.Abs(p.in.RawX) >= th || math.Abs(p.in.RawY) >= th {
		p.ChangeState(p.states.Walk)
	}
}
