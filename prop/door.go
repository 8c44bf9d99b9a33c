package prop

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultSwingSeconds = 0.6
	defaultOpenAngle    = 95.0
)

// Door toggles between open and closed. While open it is pass-through.
type Door struct {
	Base
	Locked    bool
	OpenAngle float64

	open  bool
	swing Animator
	audio common.AudioTrigger
}

func NewDoor(id string, pos mgl64.Vec3, yaw float64, locked bool, audio common.AudioTrigger) *Door {
	if audio == nil {
		audio = common.NopAudio{}
	}
	return &Door{
		Base:      NewBase(id, KindDoor, pos, yaw),
		Locked:    locked,
		OpenAngle: defaultOpenAngle,
		swing:     Animator{Duration: defaultSwingSeconds},
		audio:     audio,
	}
}

func (d *Door) IsOpen() bool        { return d.open }
func (d *Door) Animating() bool     { return d.swing.Animating() }
func (d *Door) SwingAngle() float64 { return d.swing.Angle() }

func (d *Door) Interact(a Actor) {
	if d.swing.Animating() {
		return
	}
	if d.Locked {
		d.audio.Play(d.pos, "door_locked", 1)
		return
	}
	if d.open {
		d.swing.Start(d.OpenAngle, 0)
		d.SetSolid(true)
		d.audio.Play(d.pos, "door_close", 1)
		return
	}
	d.swing.Start(0, d.OpenAngle)
	d.audio.Play(d.pos, "door_open", 1)
}

func (d *Door) Update(dt float64) {
	if !d.swing.Update(dt) {
		return
	}
	d.open = d.swing.Angle() != 0
	d.SetSolid(!d.open)
}
