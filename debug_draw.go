package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Ingame-C/Class-sub002/common"
	"github.com/Ingame-C/Class-sub002/prop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// pixels per metre in the top-down view
const mapScale = 80

var kindColors = map[prop.Kind]color.Color{
	prop.KindChair:      colornames.Peru,
	prop.KindDesk:       colornames.Saddlebrown,
	prop.KindDoor:       colornames.Darkgreen,
	prop.KindLocker:     colornames.Steelblue,
	prop.KindLectern:    colornames.Goldenrod,
	prop.KindChalk:      colornames.White,
	prop.KindItem:       colornames.Lightyellow,
	prop.KindBlackboard: colornames.Darkslategray,
	prop.KindScripted:   colornames.Orchid,
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.drawMap(screen)

	ebitenutil.DebugPrint(screen, g.hud())

	if g.sheet != nil && g.player.Modal() != nil {
		g.sheet.Draw(screen)
	}
}

// toScreen maps world X/Z onto the screen with +Z pointing up.
func toScreen(x, z float64) (float32, float32) {
	return float32(common.BaseWidth/2 + x*mapScale), float32(common.BaseHeight/2 - z*mapScale)
}

func (g *Game) drawMap(screen *ebiten.Image) {
	for _, w := range g.scene.Level.Walls {
		x, y := toScreen(w.Min.X(), w.Max.Z())
		vector.FillRect(screen, x, y,
			float32((w.Max.X()-w.Min.X())*mapScale), float32((w.Max.Z()-w.Min.Z())*mapScale),
			colornames.Dimgray, false)
	}

	detected := g.player.Detected()
	for _, ent := range g.scene.Level.Entities {
		p, ok := g.scene.Prop(ent.ID)
		if !ok || !p.Active() {
			continue
		}
		w, d := ent.Size.X(), ent.Size.Z()
		if w == 0 || d == 0 {
			w, d = 0.1, 0.1
		}
		// quarter turns swap the footprint
		if math.Mod(math.Abs(p.Yaw()), 180) == 90 {
			w, d = d, w
		}
		pos := p.Position()
		x, y := toScreen(pos.X()-w/2, pos.Z()+d/2)
		vector.FillRect(screen, x, y, float32(w*mapScale), float32(d*mapScale), propColor(p), false)
		if p == detected {
			vector.StrokeRect(screen, x, y, float32(w*mapScale), float32(d*mapScale), 2, colornames.Yellow, false)
		}
	}

	pos := g.player.Position()
	cx, cy := toScreen(pos.X(), pos.Z())
	body := colornames.Cornflowerblue
	if g.player.IsHiding() {
		body = colornames.Slategray
	}
	vector.FillCircle(screen, cx, cy, float32(g.bodyRadius*mapScale), body, true)

	fwd := common.Flatten(g.player.CameraForward())
	fx, fy := toScreen(pos.X()+fwd.X()*g.player.Config().DetectRange, pos.Z()+fwd.Z()*g.player.Config().DetectRange)
	vector.StrokeLine(screen, cx, cy, fx, fy, 1, colornames.Orangered, true)
}

func propColor(p prop.Prop) color.Color {
	switch v := p.(type) {
	case *prop.Door:
		if v.IsOpen() {
			return colornames.Lightgreen
		}
	case prop.Grabbable:
		if v.IsHeld() {
			return colornames.Gold
		}
	}
	if c, ok := kindColors[p.Kind()]; ok {
		return c
	}
	return colornames.Magenta
}

func (g *Game) hud() string {
	detected, held := "-", "-"
	if p := g.player.Detected(); p != nil {
		detected = p.ID()
	}
	if h := g.player.Held(); h != nil {
		held = h.ID()
	}
	return fmt.Sprintf("TPS: %.1f  FPS: %.1f\nlevel: %s  state: %s\nyaw %.0f  pitch %.0f\ndetected: %s  held: %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		g.levelFile, g.player.State().Name(),
		g.player.Yaw(), g.player.Pitch(),
		detected, held)
}
