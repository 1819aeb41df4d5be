package stealth

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/hunter/internal/application/state"
	"github.com/younwookim/hunter/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{20, 22, 30, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorCover    = color.RGBA{60, 90, 60, 255}
	colorRoute    = color.RGBA{70, 70, 90, 255}
	colorIntruder = color.RGBA{100, 200, 100, 255}
	colorCrouch   = color.RGBA{60, 130, 60, 255}
	colorSignal   = color.RGBA{100, 200, 100, 40}
	colorDest     = color.RGBA{255, 255, 255, 80}
	colorFlash    = color.RGBA{255, 255, 255, 255}
)

// awarenessColors is the base color per awareness state at full light
var awarenessColors = map[entity.AwarenessState]color.RGBA{
	entity.AwarenessPatrol: {120, 160, 255, 255},
	entity.AwarenessSearch: {255, 200, 60, 255},
	entity.AwarenessRage:   {255, 60, 60, 255},
}

// Draw renders the session
func (s *Stealth) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	s.drawTiles(screen)
	s.drawRoutes(screen)
	s.drawIntruder(screen)
	s.drawAdversaries(screen)
	s.drawHUD(screen)

	switch s.state {
	case state.SessionPaused:
		s.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.SessionCaptured:
		text := fmt.Sprintf("CAPTURED\n\nby %s after %.1fs\n\nPress Z to restart", s.capturedBy(), s.capturedAt())
		s.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, text)
	}
}

func (s *Stealth) toScreen(p entity.Vec3) (float64, float64) {
	return p.X * s.ppu, p.Z * s.ppu
}

func (s *Stealth) drawTiles(screen *ebiten.Image) {
	stage := s.world.Stage
	size := stage.TileSize * s.ppu

	for tz := 0; tz < stage.Height; tz++ {
		for tx := 0; tx < stage.Width; tx++ {
			tile := stage.GetTile(tx, tz)

			var c color.Color
			switch tile.Type {
			case entity.TileWall:
				c = colorWall
			case entity.TileCover:
				c = colorCover
			default:
				continue
			}
			ebitenutil.DrawRect(screen, float64(tx)*size, float64(tz)*size, size, size, c)
		}
	}
}

func (s *Stealth) drawRoutes(screen *ebiten.Image) {
	for _, id := range s.world.AdversaryIDs() {
		pts := s.world.Controller[id].Route().Points
		for i := range pts {
			x1, y1 := s.toScreen(pts[i])
			x2, y2 := s.toScreen(pts[(i+1)%len(pts)])
			ebitenutil.DrawLine(screen, x1, y1, x2, y2, colorRoute)
			ebitenutil.DrawRect(screen, x1-2, y1-2, 4, 4, colorRoute)
		}
	}
}

func (s *Stealth) drawIntruder(screen *ebiten.Image) {
	intruder, ok := s.world.GetIntruder()
	if !ok {
		return
	}
	x, y := s.toScreen(intruder.GetPosition())

	if r := intruder.GetSignalRange() * s.ppu; r > 1 {
		ebitenutil.DrawCircle(screen, x, y, r, colorSignal)
	}

	c := colorIntruder
	size := s.ppu * 0.5
	if intruder.IsInLowVisibilityPosture() {
		c = colorCrouch
		size = s.ppu * 0.35
	}
	ebitenutil.DrawRect(screen, x-size/2, y-size/2, size, size, c)
}

func (s *Stealth) drawAdversaries(screen *ebiten.Image) {
	for _, id := range s.world.AdversaryIDs() {
		ctrl := s.world.Controller[id]
		x, y := s.toScreen(s.world.Body[id].GetPosition())

		if dest, ok := ctrl.Destination(); ok {
			dx, dy := s.toScreen(dest)
			ebitenutil.DrawLine(screen, x, y, dx, dy, colorDest)
		}

		size := s.ppu * 0.6
		if flash := s.director.Flash(id); flash > 0.5 {
			pad := 2.0
			ebitenutil.DrawRect(screen, x-size/2-pad, y-size/2-pad, size+2*pad, size+2*pad, colorFlash)
		}
		c := dim(awarenessColors[ctrl.State()], s.director.Intensity(id))
		ebitenutil.DrawRect(screen, x-size/2, y-size/2, size, size, c)
		ebitenutil.DebugPrintAt(screen, s.world.Adversary[id].Name, int(x-size/2), int(y+size/2))
	}
}

func (s *Stealth) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	b.WriteString("WASD: Move | Shift: Run | C: Sneak | E: Engage | F9: Restore | Z: Restart | ESC: Pause\n")

	if intruder, ok := s.world.GetIntruder(); ok {
		fmt.Fprintf(&b, "intruder %-5s signal %5.2f", intruder.Gait, intruder.GetSignalRange())
		if s.recorder != nil {
			fmt.Fprintf(&b, "  REC %d", s.recorder.FrameCount())
		}
		b.WriteString("\n")
	}
	for _, st := range s.world.Statuses() {
		fmt.Fprintf(&b, "#%d %-6s dist %5.2f timer %4.2f heard %4.2f ovr %4.2f\n",
			st.Agent, st.State, st.Distance, st.SearchTimer, st.SinceHeard, st.OverrideRemaining)
	}
	for _, tr := range s.recent {
		fmt.Fprintf(&b, "%6.2fs #%d %s -> %s\n", tr.At, tr.Agent, tr.From, tr.To)
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (s *Stealth) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(s.screenW), float64(s.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, s.screenW/2-60, s.screenH/2-30)
}

func (s *Stealth) capturedBy() string {
	if n := len(s.world.Captures); n > 0 {
		return s.world.Captures[n-1].Name
	}
	return "?"
}

func (s *Stealth) capturedAt() float64 {
	if n := len(s.world.Captures); n > 0 {
		return s.world.Captures[n-1].At
	}
	return 0
}

// dim scales a color by a light level in [0, 1]
func dim(c color.RGBA, level float64) color.RGBA {
	level = 1 - 0.7*(1-clamp01(level))
	return color.RGBA{
		uint8(float64(c.R) * level),
		uint8(float64(c.G) * level),
		uint8(float64(c.B) * level),
		c.A,
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
