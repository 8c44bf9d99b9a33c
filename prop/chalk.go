package prop

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Chalk is a grabbable that is used up on the blackboard.
type Chalk struct {
	Base
	Carry
}

func NewChalk(id string, pos mgl64.Vec3, yaw float64) *Chalk {
	return &Chalk{Base: NewBase(id, KindChalk, pos, yaw)}
}

// Consume deactivates the chalk and detaches it from any surface.
func (c *Chalk) Consume() {
	if d := c.Surface(); d != nil {
		d.Remove(c)
	}
	c.SetHeld(false)
	c.Deactivate()
}

// Blackboard consumes the chalk the actor is holding.
type Blackboard struct {
	Base
	Writes int

	audio common.AudioTrigger
}

func NewBlackboard(id string, pos mgl64.Vec3, yaw float64, audio common.AudioTrigger) *Blackboard {
	if audio == nil {
		audio = common.NopAudio{}
	}
	return &Blackboard{Base: NewBase(id, KindBlackboard, pos, yaw), audio: audio}
}

func (b *Blackboard) Interact(a Actor) {
	chalk, ok := a.Held().(*Chalk)
	if !ok {
		b.audio.Play(b.pos, "board_tap", 1)
		return
	}
	a.DropHeld()
	chalk.Consume()
	b.Writes++
	b.audio.Play(b.pos, "chalk", 1)
}
