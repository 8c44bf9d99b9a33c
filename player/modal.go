package player

import "github.com/Ingame-C/Class-sub002/common"

// ShowModal makes ui the active overlay. While one is active, movement and
// camera rotation are suppressed and ui receives the logic tick.
func (p *Player) ShowModal(ui common.ModalUI) {
	p.modal = ui
}

func (p *Player) ClearModal() {
	p.modal = nil
}

func (p *Player) Modal() common.ModalUI { return p.modal }
