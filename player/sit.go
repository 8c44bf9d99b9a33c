package player

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
	"github.com/go-gl/mathgl/mgl64"
)

// sitState seats the actor on the detected chair, or the start chair when
// nothing is detected, and stands it back up where it came from.
type sitState struct {
	base
	chair        *prop.Chair
	origin       mgl64.Vec3
	returnOffset mgl64.Vec3
	savedEye     mgl64.Vec3
	savedLimit   float64
}

func (s *sitState) Enter(p *Player) {
	p.play(p.cfg.SitCue, p.cfg.SitVolume)
	p.sitting = true
	p.body.SetSolid(false)

	chair, _ := p.detected.(*prop.Chair)
	if chair == nil {
		chair = p.startChair
	}
	s.chair = chair
	s.origin = mgl64.Vec3{}
	if chair != nil {
		s.origin = chair.Position()
	}
	s.returnOffset = p.Position().Sub(s.origin)

	if chair != nil {
		chair.SetSolid(false)
		seat := chair.SeatPose()
		p.body.SetPosition(seat.Position)
		p.yaw = seat.Yaw
		p.pitch = 0
	}

	s.savedEye = p.eye
	s.savedLimit = p.lookLimit
	p.eye = p.eye.Sub(common.Up.Mul(p.cfg.SitEyeDrop))
	p.lookLimit = p.cfg.SitLookLimit
	s.enter.notify()
}

func (s *sitState) Exit(p *Player) {
	p.play(p.cfg.SitCue, p.cfg.SitVolume)
	p.sitting = false
	p.body.SetPosition(s.origin.Add(s.returnOffset))
	p.body.SetSolid(true)
	if s.chair != nil {
		s.chair.SetSolid(true)
	}
	p.eye = s.savedEye
	p.lookLimit = s.savedLimit
	p.pitch = common.Clamp(p.pitch, -p.lookLimit, p.lookLimit)
	s.chair = nil
	s.exit.notify()
}

func (s *sitState) HandleInput(p *Player) {
	in := p.src.Sample()
	in.RawX, in.RawY, in.SmoothX, in.SmoothY = 0, 0, 0, 0
	p.in = in
}

func (s *sitState) PhysicsUpdate(p *Player, dt float64) {
	p.detect()
}

func (s *sitState) LogicUpdate(p *Player, dt float64) {
	if !p.sharedLogic(s) {
		return
	}
	if p.modal != nil {
		if p.in.ExitPressed {
			p.ClearModal()
		}
		return
	}
	p.look()
	if p.in.ExitPressed && !p.grabbing {
		p.ChangeState(p.states.Idle)
	}
}

// ReturnPosition is where the actor stands up to, valid while sitting.
func (p *Player) ReturnPosition() mgl64.Vec3 {
	s := p.states.Sit.(*sitState)
	return s.origin.Add(s.returnOffset)
}
