package player

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
)

// Interact dispatches to every capability pr offers: use first, then grab.
func (p *Player) Interact(pr prop.Prop) {
	if pr == nil || !pr.Active() {
		return
	}
	if u, ok := pr.(prop.Usable); ok {
		u.Interact(p)
	}
	if g, ok := pr.(prop.Grabbable); ok {
		p.grab(g)
	}
}

func (p *Player) grab(g prop.Grabbable) bool {
	if g.IsHeld() || p.grabbing || p.held != nil || !g.Active() {
		return false
	}
	if d := g.Surface(); d != nil {
		d.Remove(g)
	}
	g.SetHeld(true)
	g.SetSolid(false)
	p.held = g
	p.grabbing = true
	p.settle = 0
	p.play(p.cfg.GrabCue, 1)
	p.followHeld()
	return true
}

// followHeld keeps the held object at the carry offset in camera space.
func (p *Player) followHeld() {
	if p.held == nil {
		return
	}
	rot := p.CameraRotation()
	pos := p.CameraPosition().
		Add(rot.Rotate(common.Forward).Mul(p.cfg.HoldForward)).
		Add(rot.Rotate(common.Right).Mul(p.cfg.HoldRight)).
		Add(rot.Rotate(common.Up).Mul(p.cfg.HoldUp))
	p.held.Place(pos, p.yaw)
}

// release drops the held object in front of the camera. With a desk under
// the crosshair it goes out to the desk's distance and onto its surface.
// The grabbing flag stays set until the settle delay has passed.
func (p *Player) release() {
	g := p.held
	if g == nil {
		return
	}
	dist := p.cfg.ReleaseDistance
	desk, onDesk := p.detected.(*prop.Desk)
	if onDesk && desk.Active() {
		dist = p.Position().Sub(desk.Position()).Len()
	} else {
		onDesk = false
	}
	pos := p.CameraPosition().
		Add(p.CameraForward().Mul(dist)).
		Add(common.Up.Mul(p.cfg.ReleaseLift))

	g.Place(pos, p.yaw)
	g.SetSolid(true)
	g.SetHeld(false)
	if onDesk {
		desk.Add(g)
	}
	p.held = nil
	p.settle = p.cfg.SettleDelay
	if p.settle <= 0 {
		p.grabbing = false
	}
	p.play(p.cfg.ReleaseCue, 1)
}

// ForceRelease drops the held object regardless of any modal.
func (p *Player) ForceRelease() {
	p.release()
}

func (p *Player) tickSettle(dt float64) {
	if p.held != nil || !p.grabbing || p.settle <= 0 {
		return
	}
	p.settle -= dt
	if p.settle <= 0 {
		p.settle = 0
		p.grabbing = false
	}
}

func (p *Player) Held() prop.Grabbable { return p.held }
func (p *Player) IsGrabbing() bool     { return p.grabbing }

// DropHeld lets go of the held object without placing it, for props that
// consume what they are given.
func (p *Player) DropHeld() {
	if p.held == nil {
		return
	}
	p.held.SetHeld(false)
	p.held = nil
	p.grabbing = false
	p.settle = 0
}

// sharedLogic is the logic common to Idle, Walk and Sit: carry and release,
// interaction, then the modal's tick. It reports whether s is still current.
func (p *Player) sharedLogic(s State) bool {
	if p.held != nil {
		p.followHeld()
		if p.in.ExitPressed && p.modal == nil {
			p.release()
		}
	}
	if p.modal == nil && p.in.InteractPressed && p.interactable {
		p.Interact(p.detected)
		if p.machine.Current() != s {
			return false
		}
	}
	if p.modal != nil {
		p.modal.LogicUpdate()
	}
	return p.machine.Current() == s
}
