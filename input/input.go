package input

import (
	"math"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/player"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	stickDeadzone = 0.2
	// stickLook scales the right stick to the same units as mouse pixels.
	stickLook = 8.0
	// defaultMouseScale turns cursor pixels into look units.
	defaultMouseScale = 0.1
)

// Raw is one frame of device state before smoothing.
type Raw struct {
	X, Y     float64
	LookX    float64
	LookY    float64
	Interact bool
	Exit     bool
}

// Sampler polls keyboard, mouse and the first gamepad once per frame and
// hands the result to the player. It implements player.InputSource.
type Sampler struct {
	// SmoothingRate is how fast the smoothed axes follow the raw ones, in
	// units per second.
	SmoothingRate float64
	MouseScale    float64

	smoothX, smoothY float64
	lastX, lastY     int
	primed           bool
	frame            player.Input
}

func NewSampler(smoothingRate float64) *Sampler {
	return &Sampler{SmoothingRate: smoothingRate, MouseScale: defaultMouseScale}
}

// Update reads the devices. Call it once at the start of every frame.
func (s *Sampler) Update(dt float64) {
	s.Step(s.poll(), dt)
}

func (s *Sampler) Sample() player.Input {
	return s.frame
}

// Step folds one frame of raw state into the sampler.
func (s *Sampler) Step(raw Raw, dt float64) player.Input {
	s.smoothX = Smooth(s.smoothX, raw.X, s.SmoothingRate, dt)
	s.smoothY = Smooth(s.smoothY, raw.Y, s.SmoothingRate, dt)
	s.frame = player.Input{
		RawX:            raw.X,
		RawY:            raw.Y,
		SmoothX:         s.smoothX,
		SmoothY:         s.smoothY,
		MouseX:          raw.LookX,
		MouseY:          raw.LookY,
		InteractPressed: raw.Interact,
		ExitPressed:     raw.Exit,
	}
	return s.frame
}

// Smooth moves current toward target at rate per second. Reversing
// direction snaps through zero first.
func Smooth(current, target, rate, dt float64) float64 {
	if rate <= 0 {
		return target
	}
	if target != 0 && current != 0 && math.Signbit(target) != math.Signbit(current) {
		current = 0
	}
	return common.MoveTowards(current, target, rate*dt)
}

func (s *Sampler) poll() Raw {
	var raw Raw

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		raw.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		raw.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		raw.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		raw.Y += 1
	}

	mx, my := ebiten.CursorPosition()
	if s.primed {
		raw.LookX = float64(mx-s.lastX) * s.MouseScale
		raw.LookY = float64(my-s.lastY) * s.MouseScale
	}
	s.lastX, s.lastY, s.primed = mx, my, true

	raw.Interact = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyE)
	raw.Exit = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// stick up is negative
			raw.X, raw.Y = lx, -ly
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			raw.LookX += rx * stickLook * s.MouseScale
			raw.LookY += ry * stickLook * s.MouseScale
		}

		raw.Interact = raw.Interact || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		raw.Exit = raw.Exit || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}

	raw.X = common.Clamp(raw.X, -1, 1)
	raw.Y = common.Clamp(raw.Y, -1, 1)
	return raw
}
