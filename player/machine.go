package player

// StateMachine holds the current state and runs the exit/enter protocol.
// A change requested while another change is running (from an Enter, Exit or
// a notification subscriber) is held as pending and applied right after.
type StateMachine struct {
	current  State
	pending  State
	changing bool

	// OnChange, if set, is told about every completed transition.
	OnChange func(from, to State)
}

func (m *StateMachine) Current() State { return m.current }

func (m *StateMachine) ChangeState(p *Player, next State) {
	if next == nil {
		return
	}
	if m.changing {
		m.pending = next
		return
	}
	m.changing = true
	defer func() { m.changing = false }()

	for next != nil {
		prev := m.current
		if prev != nil {
			prev.Exit(p)
		}
		m.current = next
		next.Enter(p)
		if m.OnChange != nil {
			m.OnChange(prev, next)
		}
		next, m.pending = m.pending, nil
	}
}
