package player

// Input is one frame of sampled controls. Raw axes are the unfiltered
// stick/key values in [-1, 1]; smoothed axes ease toward them over time.
type Input struct {
	RawX    float64
	RawY    float64
	SmoothX float64
	SmoothY float64
	MouseX  float64
	MouseY  float64

	// InteractPressed is the primary action, true on the frame it goes down.
	InteractPressed bool
	// ExitPressed is the secondary action: release, stand up, leave hiding,
	// dismiss a modal.
	ExitPressed bool
}

type InputSource interface {
	Sample() Input
}
