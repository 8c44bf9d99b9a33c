package prop

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
)

// SheetFactory builds the modal shown when a lectern is used.
type SheetFactory func() common.ModalUI

// Lectern holds the answer sheet.
type Lectern struct {
	Base

	open  SheetFactory
	audio common.AudioTrigger
}

func NewLectern(id string, pos mgl64.Vec3, yaw float64, open SheetFactory, audio common.AudioTrigger) *Lectern {
	if audio == nil {
		audio = common.NopAudio{}
	}
	return &Lectern{Base: NewBase(id, KindLectern, pos, yaw), open: open, audio: audio}
}

func (l *Lectern) Interact(a Actor) {
	if l.open == nil {
		return
	}
	ui := l.open()
	if ui == nil {
		return
	}
	l.audio.Play(l.pos, "page", 1)
	a.ShowModal(ui)
}
