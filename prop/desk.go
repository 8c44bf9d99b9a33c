package prop

import "github.com/go-gl/mathgl/mgl64"

// Desk is a supporting surface for grabbables. It offers no interaction of
// its own but is still detected, which is how releases find it.
type Desk struct {
	Base
	TopHeight float64

	contents []Grabbable
}

func NewDesk(id string, pos mgl64.Vec3, yaw, topHeight float64) *Desk {
	return &Desk{Base: NewBase(id, KindDesk, pos, yaw), TopHeight: topHeight}
}

func (d *Desk) Contents() []Grabbable {
	out := make([]Grabbable, len(d.contents))
	copy(out, d.contents)
	return out
}

func (d *Desk) Contains(g Grabbable) bool {
	for _, c := range d.contents {
		if c == g {
			return true
		}
	}
	return false
}

// Add registers g on the desk. Adding twice is a no-op.
func (d *Desk) Add(g Grabbable) {
	if g == nil {
		return
	}
	if prev := g.Surface(); prev != nil && prev != d {
		prev.Remove(g)
	}
	g.SetSurface(d)
	if d.Contains(g) {
		return
	}
	d.contents = append(d.contents, g)
}

// Remove unregisters g and reports whether it was on the desk.
func (d *Desk) Remove(g Grabbable) bool {
	for i, c := range d.contents {
		if c != g {
			continue
		}
		d.contents = append(d.contents[:i], d.contents[i+1:]...)
		if g.Surface() == d {
			g.SetSurface(nil)
		}
		return true
	}
	return false
}
