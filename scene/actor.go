package scene

import (
	"github.com/Ingame-C/Class-sub002/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Actor is the player's body in the world: a circle on the floor plane plus
// a tracked height. It implements player.Body.
type Actor struct {
	world   *World
	body    *cp.Body
	shape   *cp.Shape
	radius  float64
	y       float64
	pending cp.Vector
}

// actorHeight is how tall the actor's body is for blocking purposes.
const actorHeight = 1.8

// AddActor places the actor's feet at pos. A world has at most one actor;
// adding another replaces it.
func (w *World) AddActor(pos mgl64.Vec3, radius float64) *Actor {
	if w.actor != nil {
		w.space.RemoveShape(w.actor.shape)
		w.space.RemoveBody(w.actor.body)
	}
	body := cp.NewKinematicBody()
	body.SetPosition(toCP(pos))
	w.space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetFilter(filterFor(common.LayerActor))
	w.space.AddShape(shape)

	a := &Actor{world: w, body: body, shape: shape, radius: radius, y: pos.Y()}
	w.actor = a
	return a
}

func (w *World) Actor() *Actor { return w.actor }

func (a *Actor) Position() mgl64.Vec3 {
	p := a.body.Position()
	return mgl64.Vec3{p.X, a.y, p.Y}
}

func (a *Actor) SetPosition(pos mgl64.Vec3) {
	a.body.SetPosition(toCP(pos))
	a.pending = cp.Vector{}
	a.y = pos.Y()
	a.shape.CacheBB()
}

// Move queues a displacement that the next world step sweeps against solid
// shapes. Height changes apply immediately.
func (a *Actor) Move(delta mgl64.Vec3) {
	a.pending = a.pending.Add(toCP(delta))
	a.y += delta.Y()
}

func (a *Actor) SetSolid(solid bool) {
	a.shape.SetSensor(!solid)
}

func (a *Actor) Solid() bool {
	return !a.shape.Sensor()
}
