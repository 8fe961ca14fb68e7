package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/notmario/ecs"
	"github.com/milk9111/notmario/scene"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	pausedColor     = color.RGBA{R: 50, G: 50, B: 150, A: 255}
)

func drawScene(screen *ebiten.Image, play *scene.Play) {
	if play.Paused() {
		screen.Fill(pausedColor)
	} else {
		screen.Fill(backgroundColor)
	}

	cfg := play.Config()
	sprites := play.Snapshot()
	camX := cameraX(play, sprites, float64(cfg.Width))
	view := cp.BB{L: camX, B: 0, R: camX + float64(cfg.Width), T: float64(cfg.Height)}
	debug := play.Debug()

	for _, s := range sprites {
		if !visible(view, s.Position, s.Size) {
			continue
		}
		if debug.Textures {
			drawSprite(screen, play, s, camX)
		}
		if debug.Collision && s.HasBox {
			x, y := topLeft(s.Position, s.Box, camX)
			vector.StrokeRect(screen, x, y, float32(s.Box.X), float32(s.Box.Y), 1, colornames.White, false)
		}
	}

	if debug.Grid {
		drawGrid(screen, camX, cfg.GridSize, float64(cfg.Width), float64(cfg.Height))
	}

	status := fmt.Sprintf("%s  frame %d  FPS %.0f", play.Level().Name, play.Frame(), ebiten.ActualFPS())
	if play.Paused() {
		status += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

// cameraX keeps the player centered once it is half a screen into the
// level.
func cameraX(play *scene.Play, sprites []scene.Sprite, width float64) float64 {
	for _, s := range sprites {
		if s.Entity == play.Player() {
			return math.Max(width/2, s.Position.X) - width/2
		}
	}
	return 0
}

func visible(view cp.BB, pos, size cp.Vector) bool {
	box := cp.NewBBForExtents(pos, size.X/2, size.Y/2)
	return view.Intersects(box)
}

func topLeft(pos, size cp.Vector, camX float64) (float32, float32) {
	return float32(pos.X - size.X/2 - camX), float32(pos.Y - size.Y/2)
}

func drawSprite(screen *ebiten.Image, play *scene.Play, s scene.Sprite, camX float64) {
	fill, ok := play.Catalog().Color(s.Animation)
	if !ok {
		fill = colornames.Magenta
	}
	x, y := topLeft(s.Position, s.Size, camX)
	w, h := float32(s.Size.X), float32(s.Size.Y)
	vector.FillRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colornames.Black, false)

	// Animated sprites show their current frame as a strip along the top.
	if count := frameCount(play, s); count > 1 {
		seg := w / float32(count)
		vector.FillRect(screen, x+seg*float32(s.Frame), y, seg, 4, colornames.Black, false)
	}

	if s.Category == ecs.CategoryPlayer {
		eyeX := x + w*3/4
		if s.Scale.X < 0 {
			eyeX = x + w/4
		}
		vector.FillRect(screen, eyeX-4, y+h/4, 8, 8, colornames.White, false)
	}
}

func frameCount(play *scene.Play, s scene.Sprite) int {
	def, ok := play.Catalog().ByID(s.Animation)
	if !ok {
		return 0
	}
	return def.FrameCount
}

func drawGrid(screen *ebiten.Image, camX, grid, width, height float64) {
	if grid <= 0 {
		return
	}
	start := math.Floor(camX/grid) * grid
	for x := start; x <= camX+width; x += grid {
		sx := float32(x - camX)
		vector.StrokeLine(screen, sx, 0, sx, float32(height), 1, colornames.Lightgrey, false)
	}
	for y := height; y >= 0; y -= grid {
		vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), 1, colornames.Lightgrey, false)
	}
	for x := start; x < camX+width; x += grid {
		for y := height; y > 0; y -= grid {
			label := fmt.Sprintf("%d,%d", int(x/grid), int((height-y)/grid))
			ebitenutil.DebugPrintAt(screen, label, int(x-camX)+2, int(y-grid)+2)
		}
	}
}
