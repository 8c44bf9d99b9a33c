package prop

import "github.com/go-gl/mathgl/mgl64"

// Carry is the held/surface bookkeeping embedded by grabbable props.
type Carry struct {
	held    bool
	surface *Desk
}

func (c *Carry) IsHeld() bool       { return c.held }
func (c *Carry) SetHeld(held bool)  { c.held = held }
func (c *Carry) Surface() *Desk     { return c.surface }
func (c *Carry) SetSurface(d *Desk) { c.surface = d }

// Item is a plain grabbable: paper, eraser, textbook.
type Item struct {
	Base
	Carry
}

func NewItem(id string, pos mgl64.Vec3, yaw float64) *Item {
	return &Item{Base: NewBase(id, KindItem, pos, yaw)}
}
