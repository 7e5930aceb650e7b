package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/liminal/hud"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// hudOverlay is the on-screen text: title banner top center, stats top right,
// controls bottom left. Each sits on its own translucent panel.
type hudOverlay struct {
	ui    *ebitenui.UI
	stats *widget.Text
	debug *widget.Text
}

func newHUDOverlay(tps int, debug bool) (*hudOverlay, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	var body text.Face = &text.GoTextFace{Source: src, Size: 16}
	var banner text.Face = &text.GoTextFace{Source: src, Size: 32}
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	h := &hudOverlay{
		stats: widget.NewText(widget.TextOpts.Text("", &body, colornames.Azure)),
	}
	title := widget.NewText(widget.TextOpts.Text(hud.Title(tps), &banner, colornames.White))
	controls := widget.NewText(widget.TextOpts.Text(hud.Controls, &body, colornames.White))

	statsLines := []*widget.Text{h.stats}
	if debug {
		h.debug = widget.NewText(widget.TextOpts.Text("", &body, colornames.Lightgray))
		statsLines = append(statsLines, h.debug)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(hudPanel(panelImg, widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionStart, title))
	root.AddChild(hudPanel(panelImg, widget.AnchorLayoutPositionEnd, widget.AnchorLayoutPositionStart, statsLines...))
	root.AddChild(hudPanel(panelImg, widget.AnchorLayoutPositionStart, widget.AnchorLayoutPositionEnd, controls))

	h.ui = &ebitenui.UI{Container: root}
	return h, nil
}

func hudPanel(bg *imageui.NineSlice, horizontal, vertical widget.AnchorLayoutPosition, lines ...*widget.Text) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(bg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: horizontal, VerticalPosition: vertical}),
		),
	)
	for _, line := range lines {
		panel.AddChild(line)
	}
	return panel
}

// SetStats replaces the stats line and, in debug mode, the readout below it.
func (h *hudOverlay) SetStats(stats, debug string) {
	h.stats.Label = stats
	if h.debug != nil {
		h.debug.Label = debug
	}
}

func (h *hudOverlay) Update() {
	h.ui.Update()
}

func (h *hudOverlay) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
