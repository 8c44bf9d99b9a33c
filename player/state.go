package player

// State is one mode of the controller. Enter and Exit bracket the time a
// state is current; the three update hooks run once per phase of a frame.
type State interface {
	Name() string
	Enter(p *Player)
	Exit(p *Player)
	HandleInput(p *Player)
	PhysicsUpdate(p *Player, dt float64)
	LogicUpdate(p *Player, dt float64)

	// OnEnter and OnExit subscribe to this state's notifications. The
	// returned func unsubscribes; subscribers call it on their own teardown.
	OnEnter(fn func()) (cancel func())
	OnExit(fn func()) (cancel func())
}

type subscriber struct {
	id int
	fn func()
}

// notifier is a per-state subscriber list, fired synchronously in
// subscription order.
type notifier struct {
	next int
	subs []subscriber
}

func (n *notifier) subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	n.next++
	id := n.next
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) notify() {
	if len(n.subs) == 0 {
		return
	}
	// snapshot: subscribers may unsubscribe while being notified
	subs := append([]subscriber(nil), n.subs...)
	for _, s := range subs {
		s.fn()
	}
}

// base carries the name and notifications shared by every state, plus no-op
// update hooks that states override.
type base struct {
	name  string
	enter notifier
	exit  notifier
}

func (b *base) Name() string                        { return b.name }
func (b *base) OnEnter(fn func()) func()            { return b.enter.subscribe(fn) }
func (b *base) OnExit(fn func()) func()             { return b.exit.subscribe(fn) }
func (b *base) HandleInput(p *Player)               {}
func (b *base) PhysicsUpdate(p *Player, dt float64) {}
func (b *base) LogicUpdate(p *Player, dt float64)   {}

// States groups the per-player state instances.
type States struct {
	Idle    State
	Walk    State
	Sit     State
	Hide    State
	Fall    State
	Observe State
}

func newStates() States {
	return States{
		Idle:    &idleState{base: base{name: "idle"}},
		Walk:    &walkState{base: base{name: "walk"}},
		Sit:     &sitState{base: base{name: "sit"}},
		Hide:    &hideState{base: base{name: "hide"}},
		Fall:    &fallState{base: base{name: "fall"}},
		Observe: &observeState{base: base{name: "observe"}},
	}
}
