package player

import (
	"math"
	"testing"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
	"github.com/go-gl/mathgl/mgl64"
)

func TestIdleToWalkThreshold(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"still", 0, 0, "idle"},
		{"below forward", 0, 0.89, "idle"},
		{"at forward", 0, 0.90, "walk"},
		{"at backward", 0, -0.90, "walk"},
		{"below strafe", -0.89, 0, "idle"},
		{"at strafe", 0.90, 0, "walk"},
		{"both below", 0.89, 0.89, "idle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			r.input.in.RawX, r.input.in.RawY = tt.x, tt.y
			r.tick()
			if got := r.p.State().Name(); got != tt.want {
				t.Fatalf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWalkToIdleWhenSmoothedStops(t *testing.T) {
	r := newRig(t, nil)
	r.input.in.RawY = 1
	r.tick()
	if r.p.State() != r.p.States().Walk {
		t.Fatalf("state = %s", r.p.State().Name())
	}

	r.input.in = Input{RawY: 1, SmoothY: 0.4}
	r.tick()
	if r.p.State() != r.p.States().Walk {
		t.Fatalf("left walk while smoothed input is non-zero")
	}

	r.input.in = Input{}
	r.tick()
	if r.p.State() != r.p.States().Idle {
		t.Fatalf("state = %s, want idle", r.p.State().Name())
	}
}

func TestWalkDiagonalWeight(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		wantWeight float64
	}{
		{"forward", 0, 1, 1},
		{"diagonal", 1, 1, 0.71},
		{"diagonal back", -0.8, -0.6, 0.71},
		{"shallow", 1, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			r.p.ChangeState(r.p.States().Walk)
			r.input.in = Input{RawX: tt.x, RawY: tt.y, SmoothX: tt.x, SmoothY: tt.y}
			r.tick()

			w := r.p.States().Walk.(*walkState)
			if w.diagWeight != tt.wantWeight {
				t.Fatalf("weight = %v, want %v", w.diagWeight, tt.wantWeight)
			}
			if len(r.body.moves) != 1 {
				t.Fatalf("moves = %d", len(r.body.moves))
			}
			want := math.Hypot(tt.x, tt.y) * r.p.Config().MoveSpeed * tt.wantWeight * dt
			if got := r.body.moves[0].Len(); math.Abs(got-want) > 1e-12 {
				t.Fatalf("step = %v, want %v", got, want)
			}
		})
	}
}

func TestWalkMovesAlongHeading(t *testing.T) {
	r := newRig(t, func(o *Options) { o.Yaw = 90 })
	r.p.ChangeState(r.p.States().Walk)
	r.input.in = Input{RawY: 1, SmoothY: 1}
	r.tick()
	d := r.body.moves[0]
	if d.X() <= 0 || math.Abs(d.Z()) > 1e-12 || d.Y() != 0 {
		t.Fatalf("delta = %v, want +X", d)
	}
	if bx, by := r.p.Blend(); bx != 0 || by != 1 {
		t.Fatalf("blend = %v,%v", bx, by)
	}
}

func TestWalkModalSuppressesMovement(t *testing.T) {
	r := newRig(t, nil)
	r.p.ChangeState(r.p.States().Walk)
	m := &fakeModal{}
	r.p.ShowModal(m)
	r.input.in = Input{RawY: 1, SmoothY: 1}
	r.ticks(3)
	if len(r.body.moves) != 0 {
		t.Fatalf("moved %d times under modal", len(r.body.moves))
	}
	if m.ticks != 3 {
		t.Fatalf("modal ticks = %d", m.ticks)
	}

	r.press(false, true)
	if r.p.Modal() != nil {
		t.Fatal("exit press did not dismiss modal")
	}
	r.tick()
	if len(r.body.moves) == 0 {
		t.Fatal("no movement after dismissal")
	}
}

func TestWalkFootstepCadence(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want int
	}{
		{"forward", 1, 2},
		{"backward", -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, func(o *Options) {
				o.Config.StepIntervals = []float64{0.25}
				o.Config.BackwardStepMult = 2
				o.Config.StepClips = []string{"step"}
			})
			r.p.ChangeState(r.p.States().Walk)
			r.input.in = Input{RawY: tt.y, SmoothY: tt.y}
			for i := 0; i < 8; i++ {
				r.p.HandleInput()
				r.p.PhysicsUpdate(0.125)
				r.p.LogicUpdate(0.125)
			}
			if got := r.audio.count("step"); got != tt.want {
				t.Fatalf("footsteps = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSitEnterExitRestores(t *testing.T) {
	chair := prop.NewChair("chair", mgl64.Vec3{0, 0, 1}, 90, 0.45)
	r := newRig(t, nil)
	r.body.pos = mgl64.Vec3{2, 0, 3}
	r.ray.hit = chair

	r.press(true, false)
	if r.p.State() != r.p.States().Sit {
		t.Fatalf("state = %s, want sit", r.p.State().Name())
	}
	if !r.p.IsSitting() || r.body.solid || chair.Solid() {
		t.Fatalf("sitting=%v body solid=%v chair solid=%v", r.p.IsSitting(), r.body.solid, chair.Solid())
	}
	if !vecNear(r.body.pos, mgl64.Vec3{0, 0.45, 1}) || r.p.Yaw() != 90 {
		t.Fatalf("seat pos=%v yaw=%v", r.body.pos, r.p.Yaw())
	}
	if r.p.LookLimit() != 65 {
		t.Fatalf("look limit = %v", r.p.LookLimit())
	}
	if got := r.p.CameraPosition().Y(); math.Abs(got-(0.45+1.6-0.35)) > 1e-9 {
		t.Fatalf("eye height = %v", got)
	}
	if !vecNear(r.p.ReturnPosition(), mgl64.Vec3{2, 0, 3}) {
		t.Fatalf("return = %v", r.p.ReturnPosition())
	}
	if r.audio.count("chair_sit") != 1 {
		t.Fatalf("sit cue = %v", r.audio.clips)
	}

	r.press(false, true)
	if r.p.State() != r.p.States().Idle {
		t.Fatalf("state = %s, want idle", r.p.State().Name())
	}
	if r.p.IsSitting() || !r.body.solid || !chair.Solid() {
		t.Fatal("sit not undone")
	}
	if !vecNear(r.body.pos, mgl64.Vec3{2, 0, 3}) {
		t.Fatalf("stood up at %v", r.body.pos)
	}
	if r.p.LookLimit() != 55 {
		t.Fatalf("look limit = %v", r.p.LookLimit())
	}
	if got := r.p.CameraPosition().Y(); math.Abs(got-1.6) > 1e-9 {
		t.Fatalf("eye height = %v", got)
	}
}

func TestSitUsesStartChair(t *testing.T) {
	start := prop.NewChair("start", mgl64.Vec3{5, 0, 5}, 180, 0.5)
	r := newRig(t, func(o *Options) { o.StartChair = start })
	r.p.Sit()
	if !vecNear(r.body.pos, mgl64.Vec3{5, 0.5, 5}) {
		t.Fatalf("seat = %v", r.body.pos)
	}
}

func TestSitExitBlockedWhileGrabbing(t *testing.T) {
	start := prop.NewChair("start", mgl64.Vec3{}, 0, 0.45)
	item := prop.NewItem("pen", mgl64.Vec3{0, 1, 1}, 0)
	r := newRig(t, func(o *Options) { o.StartChair = start })
	r.p.Sit()
	r.ray.hit = item
	r.press(true, false)
	if r.p.Held() != item {
		t.Fatal("did not grab while sitting")
	}
	r.ray.hit = nil

	r.press(false, true)
	if r.p.Held() != nil {
		t.Fatal("exit press did not release")
	}
	if r.p.State() != r.p.States().Sit {
		t.Fatal("stood up on the release press")
	}

	r.ticks(20)
	r.press(false, true)
	if r.p.State() != r.p.States().Idle {
		t.Fatalf("state = %s after settle", r.p.State().Name())
	}
}

func TestSitModalExitClearsModalFirst(t *testing.T) {
	start := prop.NewChair("start", mgl64.Vec3{}, 0, 0.45)
	r := newRig(t, func(o *Options) { o.StartChair = start })
	r.p.Sit()
	r.p.ShowModal(&fakeModal{})
	r.press(false, true)
	if r.p.Modal() != nil || r.p.State() != r.p.States().Sit {
		t.Fatalf("modal=%v state=%s", r.p.Modal(), r.p.State().Name())
	}
}

func newLocker() *prop.Locker {
	return prop.NewLocker("locker", mgl64.Vec3{3, 0, 0}, 0,
		prop.Pose{Position: mgl64.Vec3{3, 0, 0.2}, Yaw: 180},
		prop.Pose{Position: mgl64.Vec3{3, 0, -1}, Yaw: 0},
		nil)
}

func TestHideInLocker(t *testing.T) {
	locker := newLocker()
	item := prop.NewItem("book", mgl64.Vec3{}, 0)
	r := newRig(t, nil)

	r.ray.hit = item
	r.press(true, false)
	if r.p.Held() != item {
		t.Fatal("grab failed")
	}

	r.ray.hit = locker
	r.press(true, false)
	if r.p.State() != r.p.States().Hide {
		t.Fatalf("state = %s, want hide", r.p.State().Name())
	}
	if r.p.Held() != nil || item.IsHeld() || !item.Solid() {
		t.Fatal("held item not released on hide")
	}
	if !r.p.IsHiding() || locker.Solid() || r.p.HidingSpot() != locker {
		t.Fatal("hide flags not set")
	}
	if !vecNear(r.body.pos, mgl64.Vec3{3, 0, 0.2}) || r.p.Yaw() != 180 {
		t.Fatalf("hide pose = %v / %v", r.body.pos, r.p.Yaw())
	}

	r.input.in.RawY = 1
	r.press(true, false)
	if r.p.State() != r.p.States().Hide {
		t.Fatal("movement or interaction left hiding")
	}

	r.input.in.RawY = 0
	r.press(false, true)
	if r.p.State() != r.p.States().Idle {
		t.Fatalf("state = %s, want idle", r.p.State().Name())
	}
	if r.p.IsHiding() || !locker.Solid() {
		t.Fatal("hide not undone")
	}
	if !vecNear(r.body.pos, mgl64.Vec3{3, 0, -1}) || r.p.Yaw() != 0 {
		t.Fatalf("return pose = %v / %v", r.body.pos, r.p.Yaw())
	}
	if n := r.audio.count(r.p.Config().HideCue); n != 1 {
		t.Fatalf("hide exit cue played %d times, want 1", n)
	}
}

func TestHideWithoutHideableDoesNothing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *rig, book *prop.Item)
		state func(r *rig) State
		held  bool
	}{
		{"idle", func(r *rig, _ *prop.Item) {}, func(r *rig) State { return r.p.States().Idle }, false},
		{"holding", func(r *rig, book *prop.Item) {
			r.ray.hit = book
			r.press(true, false)
		}, func(r *rig) State { return r.p.States().Idle }, true},
		{"seated", func(r *rig, _ *prop.Item) {
			r.ray.hit = prop.NewChair("chair", mgl64.Vec3{0, 0, 1}, 0, 0.45)
			r.press(true, false)
		}, func(r *rig) State { return r.p.States().Sit }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := prop.NewItem("book", mgl64.Vec3{}, 0)
			r := newRig(t, nil)
			tt.setup(r, book)
			r.ray.hit = nil
			r.tick()

			entered := 0
			r.p.States().Hide.OnEnter(func() { entered++ })
			r.p.Hide()
			if r.p.State() != tt.state(r) || r.p.IsHiding() || entered != 0 {
				t.Fatalf("state = %s hiding=%v hide entered %d times", r.p.State().Name(), r.p.IsHiding(), entered)
			}
			if tt.held && (r.p.Held() != book || !book.IsHeld()) {
				t.Fatal("hide dropped the held item")
			}
		})
	}
}

func TestHideStateWithoutSpotFallsBackToIdle(t *testing.T) {
	book := prop.NewItem("book", mgl64.Vec3{}, 0)
	r := newRig(t, nil)
	r.ray.hit = book
	r.press(true, false)
	r.ray.hit = nil
	r.tick()

	var seen []string
	r.p.States().Hide.OnEnter(func() { seen = append(seen, "hide") })
	r.p.States().Idle.OnEnter(func() { seen = append(seen, "idle") })

	r.p.ChangeState(r.p.States().Hide)
	if r.p.State() != r.p.States().Idle || r.p.IsHiding() {
		t.Fatalf("state = %s hiding=%v", r.p.State().Name(), r.p.IsHiding())
	}
	if len(seen) != 2 || seen[0] != "hide" || seen[1] != "idle" {
		t.Fatalf("enter order = %v", seen)
	}
	if r.p.Held() != book {
		t.Fatal("fallback released the held item")
	}
}

func TestFallCompletesOnce(t *testing.T) {
	r := newRig(t, nil)
	r.p.Fall()
	if r.body.solid {
		t.Fatal("body still solid while falling")
	}

	r.input.in = Input{RawY: 1, SmoothY: 1, InteractPressed: true}
	var steps []float64
	prev := 0.0
	for i := 0; i < 500; i++ {
		r.input.in.InteractPressed = true
		r.tick()
		a := r.p.FallAngle()
		if a < prev {
			t.Fatalf("angle went back: %v -> %v", prev, a)
		}
		if a > prev {
			steps = append(steps, a-prev)
		}
		prev = a
	}

	if r.p.FallAngle() != 150 {
		t.Fatalf("final angle = %v", r.p.FallAngle())
	}
	if len(r.loader.scenes) != 1 || r.loader.scenes[0] != "fallen" {
		t.Fatalf("scene requests = %v", r.loader.scenes)
	}
	if r.p.State() != r.p.States().Fall {
		t.Fatalf("state = %s", r.p.State().Name())
	}
	if len(r.body.moves) != 0 {
		t.Fatal("input moved the body during the fall")
	}
	if len(steps) < 2 || steps[0] <= steps[len(steps)/2] {
		t.Fatalf("fall did not decelerate: %v", steps)
	}

	cam := r.p.CameraPosition()
	if cam.Y() >= 1.6 {
		t.Fatalf("camera did not drop: %v", cam)
	}
}

func TestObserveTracksTarget(t *testing.T) {
	r := newRig(t, func(o *Options) { o.Yaw = 90 })
	target := &movingTarget{pos: mgl64.Vec3{0, 1.6, 5}}
	r.p.Observe(target)
	if math.Abs(r.p.Yaw()) > 1e-9 || math.Abs(r.p.Pitch()) > 1e-9 {
		t.Fatalf("yaw/pitch = %v/%v", r.p.Yaw(), r.p.Pitch())
	}

	target.pos = mgl64.Vec3{5, 1.6, 0}
	r.input.in = Input{MouseX: 30, RawY: 1, SmoothY: 1}
	r.tick()
	if math.Abs(r.p.Yaw()-90) > 1e-9 {
		t.Fatalf("yaw = %v, want 90", r.p.Yaw())
	}
	if r.p.State() != r.p.States().Observe {
		t.Fatalf("state = %s", r.p.State().Name())
	}

	target.pos = mgl64.Vec3{0, 0.6, 1}
	r.tick()
	if math.Abs(r.p.Pitch()-45) > 1e-9 {
		t.Fatalf("pitch = %v, want 45", r.p.Pitch())
	}
}

type movingTarget struct{ pos mgl64.Vec3 }

func (m *movingTarget) Position() mgl64.Vec3 { return m.pos }

func TestEnterExitRestoresFlags(t *testing.T) {
	tests := []struct {
		name  string
		state func(States) State
		setup func(*rig)
	}{
		{"walk", func(s States) State { return s.Walk }, nil},
		{"sit", func(s States) State { return s.Sit }, func(r *rig) {
			r.ray.hit = prop.NewChair("c", mgl64.Vec3{1, 0, 1}, 0, 0.45)
		}},
		{"hide", func(s States) State { return s.Hide }, func(r *rig) { r.ray.hit = newLocker() }},
		{"fall", func(s States) State { return s.Fall }, nil},
		{"observe", func(s States) State { return s.Observe }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			if tt.setup != nil {
				tt.setup(r)
				r.p.PhysicsUpdate(dt)
			}
			type flags struct {
				sitting, hiding, grabbing, solid bool
				limit                            float64
				tilt                             mgl64.Quat
			}
			snap := func() flags {
				return flags{r.p.IsSitting(), r.p.IsHiding(), r.p.IsGrabbing(), r.body.solid, r.p.LookLimit(), r.p.Tilt()}
			}
			before := snap()

			s := tt.state(r.p.States())
			s.Enter(r.p)
			s.Exit(r.p)

			if after := snap(); after != before {
				t.Fatalf("flags %+v, want %+v", after, before)
			}
		})
	}
}

func TestStateNotifications(t *testing.T) {
	r := newRig(t, nil)
	var log []string
	walk := r.p.States().Walk
	cancelA := walk.OnEnter(func() { log = append(log, "a") })
	walk.OnEnter(func() { log = append(log, "b") })
	walk.OnExit(func() { log = append(log, "exit") })

	r.p.ChangeState(walk)
	r.p.ChangeState(r.p.States().Idle)
	cancelA()
	cancelA()
	r.p.ChangeState(walk)

	want := []string{"a", "b", "exit", "b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	r := newRig(t, nil)
	idle := r.p.States().Idle
	calls := 0
	var cancel func()
	cancel = idle.OnEnter(func() {
		calls++
		cancel()
	})
	idle.OnEnter(func() { calls++ })

	r.p.ChangeState(idle)
	r.p.ChangeState(idle)
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestChangeFromSubscriberIsDeferred(t *testing.T) {
	r := newRig(t, nil)
	var order []string
	r.p.machine.OnChange = func(from, to State) { order = append(order, from.Name()+">"+to.Name()) }
	r.p.States().Walk.OnEnter(func() { r.p.ChangeState(r.p.States().Idle) })

	r.p.ChangeState(r.p.States().Walk)
	if r.p.State() != r.p.States().Idle {
		t.Fatalf("state = %s", r.p.State().Name())
	}
	if len(order) != 2 || order[0] != "idle>walk" || order[1] != "walk>idle" {
		t.Fatalf("order = %v", order)
	}
}

func TestYawPitchQuatMatchesLookAngles(t *testing.T) {
	eye := mgl64.Vec3{0, 1.6, 0}
	target := mgl64.Vec3{2, 0.6, -3}
	yaw, pitch := common.LookAngles(eye, target)
	fwd := common.YawPitchQuat(yaw, pitch).Rotate(common.Forward)
	if !vecNear(fwd, target.Sub(eye).Normalize()) {
		t.Fatalf("forward %v does not point at target", fwd)
	}
}
