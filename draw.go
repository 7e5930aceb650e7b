package main

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/minimap"
	"golang.org/x/image/colornames"
)

// pixelsPerUnit is the top-down view zoom.
const pixelsPerUnit = 8

// view maps world XZ to screen pixels centered on the player, z up the screen.
type view struct {
	center mgl64.Vec3
	w, h   float64
}

func (v view) project(p mgl64.Vec3) (float32, float32) {
	return float32(v.w/2 + (p.X()-v.center.X())*pixelsPerUnit),
		float32(v.h/2 - (p.Z()-v.center.Z())*pixelsPerUnit)
}

// shade brightens higher surfaces so heights read in a flat view.
func shade(c color.RGBA, top float64) color.RGBA {
	f := 1 + math.Max(-0.4, math.Min(0.4, top*0.05))
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*f))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func (g *Game) drawLevel(screen *ebiten.Image, v view) {
	g.drawList = g.drawList[:0]
	ecs.ForEach(g.world, component.LevelObjectComponent.Kind(), func(_ ecs.Entity, lo *component.LevelObject) {
		g.drawList = append(g.drawList, lo)
	})
	sort.SliceStable(g.drawList, func(i, j int) bool {
		return g.drawList[i].Object.Box.Top() < g.drawList[j].Object.Box.Top()
	})

	for _, lo := range g.drawList {
		box := lo.Object.Box
		lo3, hi3 := box.Min(), box.Max()
		x0, y0 := v.project(mgl64.Vec3{lo3.X(), 0, hi3.Z()})
		x1, y1 := v.project(mgl64.Vec3{hi3.X(), 0, lo3.Z()})
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, shade(lo.Color, box.Top()), false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Black, false)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, v view, st controller.State) {
	x, y := v.project(st.Position)
	body := colornames.Crimson
	if !st.Grounded {
		body = colornames.Orangered
	}
	// Radius grows with height so jumps read from above.
	r := float32(pixelsPerUnit/2 + math.Min(8, math.Max(0, st.Position.Y()-1)))
	vector.FillCircle(screen, x, y, r, body, true)

	forward, _ := controller.Basis(st.Yaw)
	hx, hy := v.project(st.Position.Add(forward.Mul(2)))
	vector.StrokeLine(screen, x, y, hx, hy, 2, colornames.White, true)

	if cam, ok := ecs.Get(g.world, g.cam, component.CameraComponent.Kind()); ok {
		ex, ey := v.project(cam.Pose.Eye)
		vector.StrokeCircle(screen, ex, ey, 4, 1, colornames.Skyblue, true)
	}
}

func (g *Game) drawMinimap(screen *ebiten.Image, st controller.State) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, m := range g.minimap.Markers() {
		x, y := minimap.ToScreen(m.Pos, w, h)
		vector.FillCircle(screen, x, y, 3, colornames.Gold, true)
	}
	px, py := minimap.ToScreen(g.minimap.Player(st.Position), w, h)
	vector.FillCircle(screen, px, py, 4, colornames.Red, true)
}
