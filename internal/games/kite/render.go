package kite

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-kite/internal/core"
)

// Visual characters for rendering
const (
	StringChar = '│'
	FlagChar   = '▼'
	HeatChar   = '·'
	LogChar    = '='
	FlameChar  = '▲'
	SparkChar  = '^'
	SmokeChar  = '°'
	KiteChar   = '█'
	CloudChar  = '~'
)

// Field units between two flags on a bunting string.
const flagSpacing = 40.0

var flagColors = [...]core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen, core.ColorYellow}

// Cloud anchors as fractions of the play area.
var clouds = [...]struct{ x, y float64 }{
	{0.10, 0.10},
	{0.78, 0.20},
	{0.33, 0.40},
	{0.83, 0.60},
}

const (
	footerLong  = "Clique ou pressione ESPAÇO para voar!  Chegue aos %d pontos para vencer!"
	footerShort = "ESPAÇO ou clique para voar!"
)

// PlayArea returns the screen rectangle the field is drawn into: everything
// between the HUD row and the footer row.
func PlayArea(dst *core.Screen) core.Rect {
	return core.NewRect(0, 1, dst.Width(), core.Max(dst.Height()-chromeRows, 0))
}

// RenderSnapshot draws a frame: field, obstacles, kite, HUD and the overlay
// for the current phase.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	geo := snap.Geometry
	area := PlayArea(dst)
	view := core.NewViewport(geo.FieldWidth, geo.FieldHeight, area)

	drawClouds(dst, area)
	for _, o := range snap.State.Obstacles {
		drawObstacle(dst, view, o, geo)
	}
	drawKite(dst, view, snap)
	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawClouds(dst *core.Screen, area core.Rect) {
	for _, c := range clouds {
		x := area.X + int(c.x*float64(area.W))
		y := area.Y + int(c.y*float64(area.H))
		dst.DrawTextColored(x, y, string([]rune{CloudChar, CloudChar, CloudChar}), core.ColorGray)
	}
}

// drawObstacle renders bunting above the gap and a bonfire below it.
func drawObstacle(dst *core.Screen, view core.Viewport, o Obstacle, geo Geometry) {
	top := view.Cells(o.X, 0, geo.ObstacleWidth, o.GapTop)
	bottom := view.Cells(o.X, o.GapBottom(), geo.ObstacleWidth, geo.FieldHeight-o.GapBottom())
	center := view.Col(o.X + geo.ObstacleWidth/2)

	// Bunting: a string with a flag every flagSpacing units, spread evenly
	dst.DrawRect(top, HeatChar, core.ColorGray)
	dst.DrawVLine(center, top.Y, top.H, StringChar, core.ColorBrown)
	flags := int(o.GapTop / flagSpacing)
	for i := 0; i < flags; i++ {
		fy := o.GapTop * (float64(i) + 0.5) / float64(flags)
		row := view.Row(fy)
		color := flagColors[i%len(flagColors)]
		for dx := -1; dx <= 1; dx++ {
			dst.SetColored(center+dx, row, FlagChar, color)
		}
	}

	// Bonfire: logs on the ground, flames above, smoke on top
	dst.DrawRect(bottom, HeatChar, core.ColorGray)
	if bottom.H == 0 {
		return
	}
	ground := bottom.Bottom() - 1
	margin := bottom.W / 10
	for x := bottom.X + margin; x < bottom.Right()-margin; x++ {
		dst.SetColored(x, ground, LogChar, core.ColorBrown)
	}
	if bottom.H > 1 {
		for x := bottom.X + margin; x < bottom.Right()-margin; x++ {
			color := core.ColorRed
			if (x-bottom.X)%2 == 1 {
				color = core.ColorOrange
			}
			dst.SetColored(x, ground-1, FlameChar, color)
		}
	}
	if bottom.H > 2 {
		for dx := -1; dx <= 1; dx++ {
			dst.SetColored(center+dx, ground-2, SparkChar, core.ColorBrightYellow)
		}
	}
	if bottom.H > 4 {
		dst.SetColored(center, ground-4, SmokeChar, core.ColorGray)
	}
}

// drawKite renders the kite as a diamond filling its hitbox, with a nose
// glyph showing the tilt.
func drawKite(dst *core.Screen, view core.Viewport, snap Snapshot) {
	geo := snap.Geometry
	box := view.Cells(geo.AvatarX(), snap.State.AvatarY, geo.AvatarSize, geo.AvatarSize)
	if box.W == 0 || box.H == 0 {
		return
	}

	midX := float64(box.W) / 2
	for r := 0; r < box.H; r++ {
		t := (float64(r) + 0.5) / float64(box.H)
		half := (1 - math.Abs(2*t-1)) * midX
		for c := 0; c < box.W; c++ {
			if math.Abs(float64(c)+0.5-midX) > half+0.5 {
				continue
			}
			color := core.ColorMagenta
			if t > 0.5 {
				color = core.ColorRed
			}
			dst.SetColored(box.X+c, box.Y+r, KiteChar, color)
		}
	}

	dst.SetColored(box.X+box.W/2, box.Y+box.H/2, NoseGlyph(snap.Tilt), core.ColorBrightWhite)
}

// NoseGlyph returns the glyph drawn at the kite's centre for a tilt angle.
func NoseGlyph(tilt float64) rune {
	switch {
	case tilt <= -maxTilt/2:
		return '/'
	case tilt >= maxTilt/2:
		return '\\'
	default:
		return '-'
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, Title, core.ColorOrange)

	if snap.Started() {
		counter := fmt.Sprintf(" %d / %d ", snap.State.Score, snap.Geometry.WinScore)
		dst.DrawTextColored(dst.Width()-core.TextWidth(counter)-1, 0, counter, core.ColorBrightWhite)
	}

	footer := fmt.Sprintf(footerLong, snap.Geometry.WinScore)
	if core.TextWidth(footer) > dst.Width() {
		footer = footerShort
	}
	dst.DrawTextCentered(dst.Height()-1, footer, core.ColorGray)
}

type overlayLine struct {
	text  string
	color core.Color
}

// overlayContent returns the lines and border color for the snapshot's overlay.
func overlayContent(snap Snapshot) ([]overlayLine, core.Color) {
	score := fmt.Sprintf("%d", snap.State.Score)

	switch snap.Overlay {
	case OverlayStart:
		return []overlayLine{
			{Title, core.ColorOrange},
			{"", core.ColorDefault},
			{"Voe com sua pipa pela festa!", core.ColorDefault},
			{"Evite as fogueiras e bandeirolas", core.ColorDefault},
			{"", core.ColorDefault},
			{"[ESPAÇO] Começar Festa!", core.ColorOrange},
			{"Clique ou pressione ESPAÇO para voar", core.ColorGray},
		}, core.ColorYellow
	case OverlayLost:
		return []overlayLine{
			{"Queimou a pipa!", core.ColorBrightRed},
			{"", core.ColorDefault},
			{"Sua pontuação na festa:", core.ColorDefault},
			{score, core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"[R] Nova Festa!", core.ColorGreen},
			{"Tente voar mais longe desta vez!", core.ColorGray},
		}, core.ColorRed
	case OverlayWon:
		return []overlayLine{
			{"Parabéns!", core.ColorGreen},
			{"", core.ColorDefault},
			{"Você conseguiu voar pela festa toda!", core.ColorDefault},
			{score, core.ColorBrightWhite},
			{"Festa completa!", core.ColorGreen},
			{"", core.ColorDefault},
			{"[R] Nova Festa!", core.ColorGreen},
			{"Você é um mestre das pipas!", core.ColorGray},
		}, core.ColorGreen
	default:
		return nil, core.ColorDefault
	}
}

// drawOverlay draws the phase's message box centred on the screen.
func drawOverlay(dst *core.Screen, snap Snapshot) {
	lines, border := overlayContent(snap)
	if len(lines) == 0 {
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, core.TextWidth(l.text))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, border)
	for i, l := range lines {
		x := box.X + (boxW-core.TextWidth(l.text))/2
		dst.DrawTextColored(x, box.Y+1+i, l.text, l.color)
	}
}
