package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrEmptySpec = errors.New("prefabs: empty spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if len(data) == 0 {
		return zero, fmt.Errorf("prefabs: %s: %w", filename, ErrEmptySpec)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec holds the controller tuning. Zero fields fall back to the
// controller defaults.
type PlayerSpec struct {
	Name      string     `yaml:"name"`
	Move      MoveSpec   `yaml:"move"`
	Look      LookSpec   `yaml:"look"`
	Footsteps StepSpec   `yaml:"footsteps"`
	Carry     CarrySpec  `yaml:"carry"`
	Sit       SitSpec    `yaml:"sit"`
	Fall      FallSpec   `yaml:"fall"`
	Detect    DetectSpec `yaml:"detect"`
	Body      BodySpec   `yaml:"body"`
	Cues      CueSpec    `yaml:"cues"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type MoveSpec struct {
	Speed            float64 `yaml:"speed"`
	WalkThreshold    float64 `yaml:"walk_threshold"`
	DiagonalCutoff   float64 `yaml:"diagonal_cutoff"`
	DiagonalWeight   float64 `yaml:"diagonal_weight"`
	SmoothingRate    float64 `yaml:"smoothing_rate"`
	BackwardStepMult float64 `yaml:"backward_step_mult"`
}

type LookSpec struct {
	Sensitivity float64 `yaml:"sensitivity"`
	Limit       float64 `yaml:"limit"`
	SitLimit    float64 `yaml:"sit_limit"`
}

type StepSpec struct {
	Intervals []float64 `yaml:"intervals"`
	Volume    float64   `yaml:"volume"`
	Clips     []string  `yaml:"clips"`
}

type CarrySpec struct {
	Forward         float64 `yaml:"forward"`
	Right           float64 `yaml:"right"`
	Up              float64 `yaml:"up"`
	ReleaseDistance float64 `yaml:"release_distance"`
	ReleaseLift     float64 `yaml:"release_lift"`
	SettleDelay     float64 `yaml:"settle_delay"`
}

type SitSpec struct {
	EyeDrop float64 `yaml:"eye_drop"`
	Volume  float64 `yaml:"volume"`
}

type FallSpec struct {
	MaxAngle    float64 `yaml:"max_angle"`
	Speed       float64 `yaml:"speed"`
	MinFraction float64 `yaml:"min_fraction"`
}

type DetectSpec struct {
	Range float64 `yaml:"range"`
}

type BodySpec struct {
	Radius    float64 `yaml:"radius"`
	EyeHeight float64 `yaml:"eye_height"`
}

type CueSpec struct {
	Sit      string `yaml:"sit"`
	Grab     string `yaml:"grab"`
	Release  string `yaml:"release"`
	HideExit string `yaml:"hide_exit"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Range  float64 `yaml:"range"`
}

// AudioBankSpec lists every clip the scene may trigger.
type AudioBankSpec struct {
	SampleRate int         `yaml:"sample_rate"`
	Clips      []AudioSpec `yaml:"clips"`
}

func LoadAudioBankSpec() (*AudioBankSpec, error) {
	spec, err := LoadSpec[AudioBankSpec]("audio.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
