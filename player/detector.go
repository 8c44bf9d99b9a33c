package player

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
)

// detect casts from the camera along its forward axis and records the first
// interactable-layer prop within reach.
func (p *Player) detect() {
	hit := p.ray.Raycast(p.CameraPosition(), p.CameraForward(), p.cfg.DetectRange, common.LayerInteractable)
	if hit != nil && !hit.Active() {
		hit = nil
	}
	p.detected = hit
	p.interactable = prop.IsInteractable(hit)
}

// Detected is the prop under the crosshair from the last physics tick.
func (p *Player) Detected() prop.Prop { return p.detected }

// IsInteractable reports whether Detected offers a use or grab.
func (p *Player) IsInteractable() bool { return p.interactable }
