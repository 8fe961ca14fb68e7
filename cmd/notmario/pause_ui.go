package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/notmario/scene"
	"golang.org/x/image/font/basicfont"
)

// NewPauseUI builds the panel shown while the scene is paused. The buttons
// dispatch the same actions as the keyboard bindings.
func NewPauseUI(g *Game, width, height int) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 20, G: 20, B: 30, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 60, G: 60, B: 80, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 90, G: 90, B: 120, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, color.White),
		widget.TextOpts.WidgetOpts(centered),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: color.White}),
			widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(120, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(button("Resume", g.resume))
	panel.AddChild(button("Quit", g.quit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// resume toggles the pause off. It is a no-op when the scene is running.
func (g *Game) resume() {
	if g.play.Paused() {
		g.play.DoAction(scene.Start(scene.ActionPause))
	}
}

func (g *Game) quit() {
	g.play.DoAction(scene.Start(scene.ActionQuit))
}
