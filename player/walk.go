package player

import (
	"math"

	"github.com/Ingame-C/Class-sub002/common"
)

type walkState struct {
	base
	diagWeight   float64
	stepTimer    float64
	stepInterval float64
}

func (s *walkState) Enter(p *Player) {
	p.in.RawX, p.in.RawY = 0, 0
	p.in.SmoothX, p.in.SmoothY = 0, 0
	s.diagWeight = 1
	s.stepTimer = 0
	s.stepInterval = p.nextStepInterval()
	s.enter.notify()
}

func (s *walkState) Exit(p *Player) {
	p.blendX, p.blendY = 0, 0
	s.exit.notify()
}

func (s *walkState) HandleInput(p *Player) {
	p.sample()
}

func (s *walkState) PhysicsUpdate(p *Player, dt float64) {
	moving := p.modal == nil && (p.in.RawX != 0 || p.in.RawY != 0)

	if moving {
		s.stepTimer += dt
		interval := s.stepInterval
		if p.in.RawY < 0 {
			interval *= p.cfg.BackwardStepMult
		}
		if s.stepTimer > interval {
			p.footstep()
			s.stepTimer = 0
			s.stepInterval = p.nextStepInterval()
		}
	}

	p.detect()

	s.diagWeight = 1
	if math.Abs(p.in.RawX) > p.cfg.DiagonalCutoff && math.Abs(p.in.RawY) > p.cfg.DiagonalCutoff {
		s.diagWeight = p.cfg.DiagonalWeight
	}

	if moving {
		p.move(dt, s.diagWeight)
	}
}

func (s *walkState) LogicUpdate(p *Player, dt float64) {
	if !p.sharedLogic(s) {
		return
	}
	speed := math.Abs(p.in.SmoothX) + math.Abs(p.in.SmoothY)
	if common.Approximately(speed, 0) {
		p.ChangeState(p.states.Idle)
		return
	}

	if l := math.Hypot(p.in.RawX, p.in.RawY); l > 0 {
		p.blendX, p.blendY = p.in.RawX/l, p.in.RawY/l
	}

	if p.modal != nil {
		if p.in.ExitPressed {
			p.ClearModal()
		}
		return
	}
	p.look()
}

// move integrates one tick of planar movement along the heading.
func (p *Player) move(dt, weight float64) {
	yaw := common.YawQuat(p.yaw)
	dir := yaw.Rotate(common.Right).Mul(p.in.RawX).
		Add(yaw.Rotate(common.Forward).Mul(p.in.RawY))
	p.body.Move(dir.Mul(p.cfg.MoveSpeed * weight * dt))
}

func (p *Player) nextStepInterval() float64 {
	if len(p.cfg.StepIntervals) == 0 {
		return math.Inf(1)
	}
	return p.cfg.StepIntervals[p.rng.Intn(len(p.cfg.StepIntervals))]
}

func (p *Player) footstep() {
	if len(p.cfg.StepClips) == 0 {
		return
	}
	p.play(p.cfg.StepClips[p.rng.Intn(len(p.cfg.StepClips))], p.cfg.StepVolume)
}
