package player

import (
	"math"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
)

// fallState topples the actor around its flattened right axis, pivoting at
// the feet. It decelerates toward the maximum angle and requests the fall
// scene once when it gets there.
type fallState struct {
	base
	axis  mgl64.Vec3
	pivot mgl64.Vec3
	angle float64
	done  bool
}

func (s *fallState) Enter(p *Player) {
	p.in = Input{}
	p.body.SetSolid(false)
	s.axis = common.Flatten(p.BodyRotation().Rotate(common.Right))
	if s.axis.Len() == 0 {
		s.axis = common.Right
	}
	s.pivot = p.Position()
	s.angle = 0
	s.done = false
	s.enter.notify()
}

func (s *fallState) Exit(p *Player) {
	p.tilt = mgl64.QuatIdent()
	p.body.SetSolid(true)
	s.exit.notify()
}

func (s *fallState) HandleInput(p *Player) {
	p.in = Input{}
}

func (s *fallState) LogicUpdate(p *Player, dt float64) {
	if s.done {
		return
	}
	limit := p.cfg.FallMaxAngle
	remaining := limit - s.angle
	step := p.cfg.FallSpeed * dt * math.Max(remaining/limit, p.cfg.FallMinFraction)
	if step >= remaining {
		step = remaining
		s.angle = limit
	} else {
		s.angle += step
	}

	q := mgl64.QuatRotate(mgl64.DegToRad(step), s.axis)
	p.body.SetPosition(common.RotateAround(p.Position(), s.pivot, q))
	p.tilt = q.Mul(p.tilt)

	if s.angle >= limit {
		s.done = true
		p.scenes.LoadScene(p.fallScene)
	}
}

// FallAngle is the accumulated fall rotation in degrees.
func (p *Player) FallAngle() float64 {
	return p.states.Fall.(*fallState).angle
}
