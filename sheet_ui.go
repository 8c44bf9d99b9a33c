package main

import (
	"fmt"
	"image/color"

	"github.com/Ingame-C/Class-sub002/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var sheetChoices = []string{"A", "B", "C", "D"}

// AnswerSheet is the modal the lectern opens: one question with four
// choices and a hand-in button. It implements common.ModalUI.
type AnswerSheet struct {
	ui     *ebitenui.UI
	status *widget.Text

	answer string
	done   bool
}

var _ common.ModalUI = (*AnswerSheet)(nil)

func NewAnswerSheet(question string) *AnswerSheet {
	s := &AnswerSheet{}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xf4, G: 0xf1, B: 0xe6, A: 240})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	pickedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x2e, G: 0x6b, B: 0x3a, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	ink := color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text(question, &face, ink),
		widget.TextOpts.WidgetOpts(center),
	)
	s.status = widget.NewText(
		widget.TextOpts.Text("pick an answer", &face, ink),
		widget.TextOpts.WidgetOpts(center),
	)

	choices := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(center),
	)
	for _, choice := range sheetChoices {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: pickedImg}),
			widget.ButtonOpts.Text(choice, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.Choose(choice)
			}),
		)
		choices.AddChild(btn)
	}

	handIn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Hand in", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.HandIn()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(choices)
	panel.AddChild(s.status)
	panel.AddChild(handIn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	s.ui = &ebitenui.UI{Container: root}
	return s
}

func (s *AnswerSheet) LogicUpdate() {
	s.ui.Update()
}

func (s *AnswerSheet) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}

func (s *AnswerSheet) Choose(choice string) {
	if s.done {
		return
	}
	s.answer = choice
	s.status.Label = fmt.Sprintf("answer: %s", choice)
}

// HandIn closes the sheet once an answer is picked.
func (s *AnswerSheet) HandIn() {
	if s.answer == "" {
		s.status.Label = "pick an answer first"
		return
	}
	s.done = true
}

func (s *AnswerSheet) Answer() string { return s.answer }
func (s *AnswerSheet) Done() bool     { return s.done }
