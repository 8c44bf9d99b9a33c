package prop

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
)

type Chair struct {
	Base
	SeatHeight float64
}

func NewChair(id string, pos mgl64.Vec3, yaw, seatHeight float64) *Chair {
	return &Chair{Base: NewBase(id, KindChair, pos, yaw), SeatHeight: seatHeight}
}

func (c *Chair) Interact(a Actor) {
	a.Sit()
}

// SeatPose is where the actor's feet go while sitting.
func (c *Chair) SeatPose() Pose {
	return Pose{Position: c.pos.Add(common.Up.Mul(c.SeatHeight)), Yaw: c.yaw}
}
