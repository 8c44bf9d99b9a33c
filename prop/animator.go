package prop

import "github.com/Ingame-C/Class-sub002/common"

// Animator swings a value between two angles over Duration seconds. It is
// advanced once per tick; Start is refused while a swing is in flight.
type Animator struct {
	Duration float64

	from, to  float64
	angle     float64
	elapsed   float64
	animating bool
}

func (a *Animator) Animating() bool { return a.animating }
func (a *Animator) Angle() float64  { return a.angle }

func (a *Animator) Start(from, to float64) bool {
	if a.animating {
		return false
	}
	a.from, a.to = from, to
	a.angle = from
	a.elapsed = 0
	a.animating = true
	if a.Duration <= 0 {
		a.angle = to
		a.animating = false
	}
	return true
}

// Update advances the swing and reports whether it finished this tick.
func (a *Animator) Update(dt float64) bool {
	if !a.animating {
		return false
	}
	a.elapsed += dt
	t := common.Clamp(a.elapsed/a.Duration, 0, 1)
	// smoothstep
	t = t * t * (3 - 2*t)
	a.angle = common.Lerp(a.from, a.to, t)
	if a.elapsed >= a.Duration {
		a.angle = a.to
		a.animating = false
		return true
	}
	return false
}
