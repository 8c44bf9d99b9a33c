package player

import "github.com/Ingame-C/Class-sub002/prefabs"

// Config holds the controller tuning. Angles are in degrees, times in
// seconds, distances in metres.
type Config struct {
	MoveSpeed        float64
	WalkThreshold    float64
	DiagonalCutoff   float64
	DiagonalWeight   float64
	BackwardStepMult float64

	LookSensitivity float64
	LookLimit       float64
	SitLookLimit    float64

	StepIntervals []float64
	StepVolume    float64
	StepClips     []string

	HoldForward     float64
	HoldRight       float64
	HoldUp          float64
	ReleaseDistance float64
	ReleaseLift     float64
	SettleDelay     float64

	SitEyeDrop float64
	SitVolume  float64

	FallMaxAngle    float64
	FallSpeed       float64
	FallMinFraction float64

	DetectRange float64
	EyeHeight   float64

	SitCue     string
	GrabCue    string
	ReleaseCue string
	HideCue    string
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:        2.4,
		WalkThreshold:    0.9,
		DiagonalCutoff:   0.5,
		DiagonalWeight:   0.71,
		BackwardStepMult: 1.2,

		LookSensitivity: 2.0,
		LookLimit:       55,
		SitLookLimit:    65,

		StepIntervals: []float64{0.38, 0.42, 0.46, 0.50},
		StepVolume:    0.6,
		StepClips:     []string{"footstep_1", "footstep_2", "footstep_3"},

		HoldForward:     0.55,
		HoldRight:       0.25,
		HoldUp:          -0.2,
		ReleaseDistance: 1.0,
		ReleaseLift:     0.1,
		SettleDelay:     0.3,

		SitEyeDrop: 0.35,
		SitVolume:  0.8,

		FallMaxAngle:    150,
		FallSpeed:       120,
		FallMinFraction: 0.15,

		DetectRange: 2.0,
		EyeHeight:   1.6,

		SitCue:     "chair_sit",
		GrabCue:    "grab",
		ReleaseCue: "release",
		HideCue:    "locker_open",
	}
}

// ConfigFromSpec overlays the non-zero spec fields on the defaults.
func ConfigFromSpec(spec *prefabs.PlayerSpec) Config {
	cfg := DefaultConfig()
	if spec == nil {
		return cfg
	}
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.MoveSpeed, spec.Move.Speed)
	set(&cfg.WalkThreshold, spec.Move.WalkThreshold)
	set(&cfg.DiagonalCutoff, spec.Move.DiagonalCutoff)
	set(&cfg.DiagonalWeight, spec.Move.DiagonalWeight)
	set(&cfg.BackwardStepMult, spec.Move.BackwardStepMult)

	set(&cfg.LookSensitivity, spec.Look.Sensitivity)
	set(&cfg.LookLimit, spec.Look.Limit)
	set(&cfg.SitLookLimit, spec.Look.SitLimit)

	if len(spec.Footsteps.Intervals) > 0 {
		cfg.StepIntervals = append([]float64(nil), spec.Footsteps.Intervals...)
	}
	set(&cfg.StepVolume, spec.Footsteps.Volume)
	if len(spec.Footsteps.Clips) > 0 {
		cfg.StepClips = append([]string(nil), spec.Footsteps.Clips...)
	}

	set(&cfg.HoldForward, spec.Carry.Forward)
	set(&cfg.HoldRight, spec.Carry.Right)
	set(&cfg.HoldUp, spec.Carry.Up)
	set(&cfg.ReleaseDistance, spec.Carry.ReleaseDistance)
	set(&cfg.ReleaseLift, spec.Carry.ReleaseLift)
	set(&cfg.SettleDelay, spec.Carry.SettleDelay)

	set(&cfg.SitEyeDrop, spec.Sit.EyeDrop)
	set(&cfg.SitVolume, spec.Sit.Volume)

	set(&cfg.FallMaxAngle, spec.Fall.MaxAngle)
	set(&cfg.FallSpeed, spec.Fall.Speed)
	set(&cfg.FallMinFraction, spec.Fall.MinFraction)

	set(&cfg.DetectRange, spec.Detect.Range)
	set(&cfg.EyeHeight, spec.Body.EyeHeight)

	setStr(&cfg.SitCue, spec.Cues.Sit)
	setStr(&cfg.GrabCue, spec.Cues.Grab)
	setStr(&cfg.ReleaseCue, spec.Cues.Release)
	setStr(&cfg.HideCue, spec.Cues.HideExit)
	return cfg
}
