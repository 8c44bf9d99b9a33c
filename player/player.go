package player

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrNilBody      = errors.New("player: nil body")
	ErrNilInput     = errors.New("player: nil input source")
	ErrNilRaycaster = errors.New("player: nil raycaster")
)

// Raycaster returns the first prop hit along a ray, or nil.
type Raycaster interface {
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint) prop.Prop
}

// Body is the actor's physics body. Position is at the feet.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(pos mgl64.Vec3)
	Move(delta mgl64.Vec3)
	SetSolid(solid bool)
}

type Options struct {
	Config    Config
	Body      Body
	Input     InputSource
	Raycaster Raycaster
	Audio     common.AudioTrigger
	Scenes    common.SceneLoader

	// StartChair is where Sit goes when no chair is detected.
	StartChair *prop.Chair
	// FallScene is loaded once the fall completes.
	FallScene string
	Yaw       float64
	Rand      *rand.Rand
	// Trace logs every state transition.
	Trace bool
}

type Player struct {
	cfg Config

	body       Body
	src        InputSource
	ray        Raycaster
	audio      common.AudioTrigger
	scenes     common.SceneLoader
	startChair *prop.Chair
	fallScene  string
	rng        *rand.Rand

	in      Input
	machine StateMachine
	states  States

	yaw       float64
	pitch     float64
	tilt      mgl64.Quat
	eye       mgl64.Vec3
	lookLimit float64

	detected     prop.Prop
	interactable bool

	held     prop.Grabbable
	grabbing bool
	settle   float64

	sitting bool
	hiding  bool

	modal      common.ModalUI
	lookTarget common.Target

	blendX float64
	blendY float64
}

var _ prop.Actor = (*Player)(nil)

// New builds a player standing at the body's position, in Idle.
func New(opts Options) (*Player, error) {
	if opts.Body == nil {
		return nil, ErrNilBody
	}
	if opts.Input == nil {
		return nil, ErrNilInput
	}
	if opts.Raycaster == nil {
		return nil, ErrNilRaycaster
	}
	if opts.Audio == nil {
		opts.Audio = common.NopAudio{}
	}
	if opts.Scenes == nil {
		opts.Scenes = common.NopSceneLoader{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Config.MoveSpeed == 0 {
		opts.Config = DefaultConfig()
	}

	p := &Player{
		cfg:        opts.Config,
		body:       opts.Body,
		src:        opts.Input,
		ray:        opts.Raycaster,
		audio:      opts.Audio,
		scenes:     opts.Scenes,
		startChair: opts.StartChair,
		fallScene:  opts.FallScene,
		rng:        opts.Rand,
		states:     newStates(),
		yaw:        opts.Yaw,
		tilt:       mgl64.QuatIdent(),
		eye:        common.Up.Mul(opts.Config.EyeHeight),
		lookLimit:  opts.Config.LookLimit,
	}
	if opts.Trace {
		p.machine.OnChange = func(from, to State) {
			name := "none"
			if from != nil {
				name = from.Name()
			}
			log.Printf("player: %s -> %s", name, to.Name())
		}
	}
	p.machine.ChangeState(p, p.states.Idle)
	return p, nil
}

// HandleInput, PhysicsUpdate and LogicUpdate are the three per-frame phases,
// each delegated to the current state.
func (p *Player) HandleInput() {
	p.machine.Current().HandleInput(p)
}

func (p *Player) PhysicsUpdate(dt float64) {
	p.machine.Current().PhysicsUpdate(p, dt)
}

func (p *Player) LogicUpdate(dt float64) {
	p.tickSettle(dt)
	p.machine.Current().LogicUpdate(p, dt)
}

func (p *Player) ChangeState(s State) {
	p.machine.ChangeState(p, s)
}

func (p *Player) State() State   { return p.machine.Current() }
func (p *Player) States() States { return p.states }
func (p *Player) Config() Config { return p.cfg }
func (p *Player) Input() Input   { return p.in }
func (p *Player) Sit()           { p.ChangeState(p.states.Sit) }
func (p *Player) Fall()          { p.ChangeState(p.states.Fall) }

// Hide moves into the detected hiding spot. Without one it does nothing.
func (p *Player) Hide() {
	if _, ok := hideableSpot(p.detected); !ok {
		return
	}
	p.ChangeState(p.states.Hide)
}
func (p *Player) IsSitting() bool { return p.sitting }
func (p *Player) IsHiding() bool  { return p.hiding }

// Observe locks the camera onto target until another state takes over.
func (p *Player) Observe(target common.Target) {
	p.lookTarget = target
	p.ChangeState(p.states.Observe)
}

// ApplyConfig swaps tuning in place. Values a state has overridden for its
// own duration are left alone until it exits.
func (p *Player) ApplyConfig(cfg Config) {
	p.cfg = cfg
	if !p.sitting {
		p.lookLimit = cfg.LookLimit
		p.eye = common.Up.Mul(cfg.EyeHeight)
	}
}

func (p *Player) Position() mgl64.Vec3 { return p.body.Position() }
func (p *Player) Yaw() float64         { return p.yaw }
func (p *Player) Pitch() float64       { return p.pitch }
func (p *Player) LookLimit() float64   { return p.lookLimit }
func (p *Player) Tilt() mgl64.Quat     { return p.tilt }

// Blend is the normalized raw movement direction, for animation blending.
func (p *Player) Blend() (x, y float64) { return p.blendX, p.blendY }

// BodyRotation is the actor's orientation: heading plus any fall tilt.
func (p *Player) BodyRotation() mgl64.Quat {
	return p.tilt.Mul(common.YawQuat(p.yaw))
}

func (p *Player) CameraRotation() mgl64.Quat {
	return p.tilt.Mul(common.YawPitchQuat(p.yaw, p.pitch))
}

func (p *Player) CameraPosition() mgl64.Vec3 {
	return p.body.Position().Add(p.BodyRotation().Rotate(p.eye))
}

func (p *Player) CameraForward() mgl64.Vec3 {
	return p.CameraRotation().Rotate(common.Forward)
}

// look applies one frame of mouse delta. Pitch stays within the current
// look limit.
func (p *Player) look() {
	p.yaw = math.Remainder(p.yaw+p.in.MouseX*p.cfg.LookSensitivity, 360)
	p.pitch = common.Clamp(p.pitch+p.in.MouseY*p.cfg.LookSensitivity, -p.lookLimit, p.lookLimit)
}

func (p *Player) faceTarget() {
	if p.lookTarget == nil {
		return
	}
	p.yaw, p.pitch = common.LookAngles(p.CameraPosition(), p.lookTarget.Position())
}

func (p *Player) play(clip string, volume float64) {
	if clip == "" {
		return
	}
	p.audio.Play(p.body.Position(), clip, volume)
}

// sample reads the full frame of input.
func (p *Player) sample() {
	p.in = p.src.Sample()
}
