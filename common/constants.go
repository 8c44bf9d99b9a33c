package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// FixedStep is the physics tick length in seconds.
	FixedStep = 1.0 / 50.0
	// MaxPhysicsSteps bounds catch-up after a long frame.
	MaxPhysicsSteps = 5
)

// Interaction layers used by the scene physics world and the detector.
const (
	LayerDefault uint = 1 << iota
	LayerInteractable
	LayerActor
)
