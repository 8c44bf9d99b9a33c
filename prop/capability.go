package prop

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Actor is what a prop may ask of the player during an interaction.
type Actor interface {
	Position() mgl64.Vec3
	Sit()
	Hide()
	ShowModal(ui common.ModalUI)
	Held() Grabbable
	DropHeld()
}

// Usable props expose a single contextual interaction.
type Usable interface {
	Prop
	Interact(a Actor)
}

// Grabbable props can be picked up, carried and released.
type Grabbable interface {
	Prop
	IsHeld() bool
	SetHeld(held bool)
	Surface() *Desk
	SetSurface(d *Desk)
	Place(pos mgl64.Vec3, yaw float64)
}

// Hideable props put the actor into hiding at a fixed pose and send it back
// to a fixed pose on exit.
type Hideable interface {
	Usable
	HidePose() Pose
	ReturnPose() Pose
}

// Updater is implemented by props with timed animations.
type Updater interface {
	Update(dt float64)
}

// IsInteractable reports whether the detected prop offers any capability.
func IsInteractable(p Prop) bool {
	if p == nil || !p.Active() {
		return false
	}
	if _, ok := p.(Usable); ok {
		return true
	}
	_, ok := p.(Grabbable)
	return ok
}
