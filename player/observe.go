package player

type observeState struct {
	base
}

func (s *observeState) Enter(p *Player) {
	p.in = Input{}
	p.faceTarget()
	s.enter.notify()
}

func (s *observeState) Exit(p *Player) {
	s.exit.notify()
}

func (s *observeState) HandleInput(p *Player) {
	p.in = Input{}
}

func (s *observeState) LogicUpdate(p *Player, dt float64) {
	p.faceTarget()
}
