package prop

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Locker is a hideable. Using it swings the door open, puts the actor inside
// and swings the door shut again.
type Locker struct {
	Base
	Locked bool

	hide    Pose
	ret     Pose
	swing   Animator
	closing bool
	audio   common.AudioTrigger
}

func NewLocker(id string, pos mgl64.Vec3, yaw float64, hide, ret Pose, audio common.AudioTrigger) *Locker {
	if audio == nil {
		audio = common.NopAudio{}
	}
	return &Locker{
		Base:  NewBase(id, KindLocker, pos, yaw),
		hide:  hide,
		ret:   ret,
		swing: Animator{Duration: defaultSwingSeconds / 2},
		audio: audio,
	}
}

func (l *Locker) HidePose() Pose   { return l.hide }
func (l *Locker) ReturnPose() Pose { return l.ret }
func (l *Locker) Animating() bool  { return l.swing.Animating() }

func (l *Locker) Interact(a Actor) {
	if l.Locked {
		l.audio.Play(l.pos, "door_locked", 1)
		return
	}
	if !l.swing.Start(0, defaultOpenAngle) {
		return
	}
	l.closing = false
	l.audio.Play(l.pos, "locker_open", 1)
	a.Hide()
}

func (l *Locker) Update(dt float64) {
	if !l.swing.Update(dt) {
		return
	}
	if l.closing {
		l.closing = false
		return
	}
	l.closing = true
	l.swing.Start(defaultOpenAngle, 0)
}
