package prop

import (
	"fmt"
	"log"
	"strings"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
)

const scriptDispatch = `
if __phase == "interact" {
	interact(__engine, __state)
}
`

// Scripted is a usable whose interaction is a tengo script. The script must
// define interact(engine, state); state persists between interactions.
type Scripted struct {
	Base
	ScriptPath string

	compiled *tengo.Compiled
	state    *tengo.Map
	audio    common.AudioTrigger
	sheet    SheetFactory
}

func NewScripted(id string, pos mgl64.Vec3, yaw float64, path string, src []byte, audio common.AudioTrigger, sheet SheetFactory) (*Scripted, error) {
	if audio == nil {
		audio = common.NopAudio{}
	}
	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prop: compile %s: %w", path, err)
	}

	return &Scripted{
		Base:       NewBase(id, KindScripted, pos, yaw),
		ScriptPath: path,
		compiled:   compiled,
		state:      &tengo.Map{Value: map[string]tengo.Object{}},
		audio:      audio,
		sheet:      sheet,
	}, nil
}

func (s *Scripted) Interact(a Actor) {
	if s.compiled == nil {
		return
	}
	if err := s.run("interact", s.engine(a)); err != nil {
		log.Printf("prop: script %s on %s: %v", s.ScriptPath, s.id, err)
	}
}

// State exposes the persisted script state for inspection.
func (s *Scripted) State(key string) any {
	obj, ok := s.state.Value[key]
	if !ok {
		return nil
	}
	return tengo.ToInterface(obj)
}

func (s *Scripted) run(phase string, engine *tengo.ImmutableMap) (err error) {
	// some VM faults, integer division by zero among them, panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("prop: script panic: %v", r)
		}
	}()
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	return s.compiled.Run()
}

func (s *Scripted) engine(a Actor) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["sit"] = &tengo.UserFunction{Name: "sit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		a.Sit()
		return tengo.TrueValue, nil
	}}

	values["hide"] = &tengo.UserFunction{Name: "hide", Value: func(args ...tengo.Object) (tengo.Object, error) {
		a.Hide()
		return tengo.TrueValue, nil
	}}

	values["play"] = &tengo.UserFunction{Name: "play", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		clip := strings.TrimSpace(objectAsString(args[0]))
		if clip == "" {
			return tengo.FalseValue, nil
		}
		volume := 1.0
		if len(args) > 1 {
			if v, ok := tengo.ToFloat64(args[1]); ok {
				volume = v
			}
		}
		s.audio.Play(s.pos, clip, volume)
		return tengo.TrueValue, nil
	}}

	values["open_sheet"] = &tengo.UserFunction{Name: "open_sheet", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if s.sheet == nil {
			return tengo.FalseValue, nil
		}
		ui := s.sheet()
		if ui == nil {
			return tengo.FalseValue, nil
		}
		a.ShowModal(ui)
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		log.Printf("prop: %s: %s", s.id, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["prop_id"] = &tengo.UserFunction{Name: "prop_id", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: s.id}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
