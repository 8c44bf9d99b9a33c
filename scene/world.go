package scene

import (
	"math"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// World is the room's collision space. The cp space works on the floor plane
// (world X maps to cp X, world Z to cp Y); heights are tracked per shape so
// rays can be tested against full 3D boxes.
type World struct {
	space  *cp.Space
	shapes []*cp.Shape
	actor  *Actor
}

// volume is what every shape carries in UserData.
type volume struct {
	prop  prop.Prop
	half  mgl64.Vec3
	pos   mgl64.Vec3
	yaw   float64
	solid bool
}

// bounds is the world-space box of the volume. Yawed footprints are covered
// by their axis-aligned bound.
func (v *volume) bounds() (lo, hi mgl64.Vec3) {
	s, c := math.Sincos(mgl64.DegToRad(v.yaw))
	s, c = math.Abs(s), math.Abs(c)
	ex := c*v.half.X() + s*v.half.Z()
	ez := s*v.half.X() + c*v.half.Z()
	lo = mgl64.Vec3{v.pos.X() - ex, v.pos.Y(), v.pos.Z() - ez}
	hi = mgl64.Vec3{v.pos.X() + ex, v.pos.Y() + 2*v.half.Y(), v.pos.Z() + ez}
	return lo, hi
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &World{space: space}
}

func (w *World) Space() *cp.Space { return w.space }

func toCP(v mgl64.Vec3) cp.Vector { return cp.Vector{X: v.X(), Y: v.Z()} }

func filterFor(layer uint) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, layer, cp.ALL_CATEGORIES)
}

// AddWall adds a static box between the lo and hi corners.
func (w *World) AddWall(lo, hi mgl64.Vec3) {
	bb := cp.BB{L: lo.X(), B: lo.Z(), R: hi.X(), T: hi.Z()}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetFilter(filterFor(common.LayerDefault))
	half := hi.Sub(lo).Mul(0.5)
	shape.UserData = &volume{
		half:  half,
		pos:   mgl64.Vec3{lo.X() + half.X(), lo.Y(), lo.Z() + half.Z()},
		solid: true,
	}
	w.space.AddShape(shape)
	w.shapes = append(w.shapes, shape)
}

// AddProp gives p a kinematic box of the given full size, placed with its
// base centred on the prop's position, and attaches it to the prop.
func (w *World) AddProp(p prop.Prop, size mgl64.Vec3) *Collider {
	for i := range size {
		if size[i] <= 0 {
			size[i] = defaultPropSize
		}
	}
	body := cp.NewKinematicBody()
	body.SetPosition(toCP(p.Position()))
	body.SetAngle(-mgl64.DegToRad(p.Yaw()))
	w.space.AddBody(body)

	shape := cp.NewBox(body, size.X(), size.Z(), 0)
	shape.SetFriction(0)
	shape.SetFilter(filterFor(common.LayerInteractable))
	vol := &volume{
		prop:  p,
		half:  size.Mul(0.5),
		pos:   p.Position(),
		yaw:   p.Yaw(),
		solid: true,
	}
	shape.UserData = vol
	w.space.AddShape(shape)
	w.shapes = append(w.shapes, shape)

	c := &Collider{world: w, body: body, shape: shape, vol: vol}
	if a, ok := p.(interface{ AttachCollider(prop.Collider) }); ok {
		a.AttachCollider(c)
	}
	return c
}

const defaultPropSize = 0.1

// Collider moves and toggles a prop's shape. It implements prop.Collider.
type Collider struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
	vol   *volume
}

func (c *Collider) SetSolid(solid bool) {
	c.vol.solid = solid
	c.shape.SetSensor(!solid)
}

func (c *Collider) MoveTo(pos mgl64.Vec3) {
	c.vol.pos = pos
	if c.vol.prop != nil {
		c.vol.yaw = c.vol.prop.Yaw()
		c.body.SetAngle(-mgl64.DegToRad(c.vol.yaw))
	}
	c.body.SetPosition(toCP(pos))
	c.shape.CacheBB()
}

// Raycast returns the nearest prop whose box the ray crosses within maxDist,
// or nil. Walls always occlude. Held grabbables and inactive props are
// ignored, so a carried object never blocks the view.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint) prop.Prop {
	if dir.Len() < 1e-9 || maxDist <= 0 {
		return nil
	}
	dir = dir.Normalize()
	mask |= common.LayerDefault

	best := maxDist
	var hit prop.Prop
	for _, shape := range w.shapes {
		if shape.Filter.Categories&mask == 0 {
			continue
		}
		vol := shape.UserData.(*volume)
		if vol.prop != nil && !detectable(vol.prop) {
			continue
		}
		lo, hi := vol.bounds()
		t, ok := rayBox(origin, dir, lo, hi)
		if !ok || t > best {
			continue
		}
		best = t
		hit = vol.prop
	}
	return hit
}

func detectable(p prop.Prop) bool {
	if !p.Active() {
		return false
	}
	if g, ok := p.(prop.Grabbable); ok && g.IsHeld() {
		return false
	}
	return true
}

// rayBox is the slab test. dir must be normalized; t is the entry distance,
// or 0 when origin is inside the box.
func rayBox(origin, dir, lo, hi mgl64.Vec3) (float64, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// Step advances the space by dt and resolves the actor's queued movement.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if a := w.actor; a != nil && a.pending != (cp.Vector{}) {
		to := a.body.Position().Add(a.pending)
		if a.Solid() {
			to = w.sweep(a, a.pending)
		}
		a.pending = cp.Vector{}
		a.body.SetPosition(to)
		a.shape.CacheBB()
	}
	w.space.Step(dt)
}

const (
	// gap kept between the actor and whatever stopped it
	skin = 1e-4
	// slide passes per step
	maxSlides = 3
)

// sweep moves the actor's circle along delta, stopping at the first solid
// shape and sliding along it. The whole displacement is swept, so a fast
// step cannot tunnel through a thin wall.
func (w *World) sweep(a *Actor, delta cp.Vector) cp.Vector {
	pos := a.body.Position()
	for i := 0; i < maxSlides && delta.LengthSq() > 1e-12; i++ {
		info, ok := w.firstBlocking(a, pos, delta)
		if !ok {
			return pos.Add(delta)
		}
		alpha := math.Max(0, info.Alpha-skin/delta.Length())
		pos = pos.Add(delta.Mult(alpha))
		rest := delta.Mult(1 - alpha)
		n := info.Normal
		delta = rest.Sub(n.Mult(rest.Dot(n)))
	}
	return pos
}

// firstBlocking is the nearest solid shape the actor would touch moving from
// pos by delta. A shape the actor already overlaps only blocks movement
// deeper into it.
func (w *World) firstBlocking(a *Actor, pos, delta cp.Vector) (cp.SegmentQueryInfo, bool) {
	best := cp.SegmentQueryInfo{Alpha: 1}
	found := false
	end := pos.Add(delta)
	for _, shape := range w.shapes {
		vol := shape.UserData.(*volume)
		if !vol.solid || shape.Sensor() {
			continue
		}
		// nothing at or above head height
		if vol.pos.Y() >= a.y+actorHeight {
			continue
		}
		var info cp.SegmentQueryInfo
		if !shape.SegmentQuery(pos, end, a.radius, &info) {
			continue
		}
		if info.Alpha == 0 && delta.Dot(info.Normal) >= 0 {
			continue
		}
		if info.Alpha < best.Alpha {
			best, found = info, true
		}
	}
	return best, found
}
