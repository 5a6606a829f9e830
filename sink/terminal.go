package sink

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatglow/engine"
	"github.com/lixenwraith/beatglow/layout"
	"github.com/lixenwraith/beatglow/vmath"
)

// Panel block size in terminal cells. Two rows per panel roughly
// squares the block with typical cell aspect ratios.
const (
	blockWidth  = 4
	blockHeight = 2
)

// Terminal previews frames on a tcell screen: each panel is drawn as a
// coloured block at its centroid, scaled into the current terminal
// size. The caller owns the event loop via Screen().
type Terminal struct {
	screen tcell.Screen
	lay    layout.Layout
	min    vmath.Vec2
	max    vmath.Vec2
}

// NewTerminal initializes a tcell screen for the given layout
func NewTerminal(lay layout.Layout) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack))
	screen.Clear()

	min, max := lay.Bounds()
	return &Terminal{screen: screen, lay: lay, min: min, max: max}, nil
}

// Screen exposes the underlying tcell screen so the command can poll
// key and resize events
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Fini restores the terminal
func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Push(frame engine.Frame) error {
	w, h := t.screen.Size()
	t.screen.Clear()

	for i, pf := range frame {
		if i >= len(t.lay) {
			break
		}
		x, y := t.cell(t.lay[i].Centroid, w, h)
		style := tcell.StyleDefault.Background(
			tcell.NewRGBColor(int32(pf.R), int32(pf.G), int32(pf.B)))
		for dy := 0; dy < blockHeight; dy++ {
			for dx := 0; dx < blockWidth; dx++ {
				t.screen.SetContent(x+dx, y+dy, ' ', nil, style)
			}
		}
	}

	t.screen.Show()
	return nil
}

// cell maps a panel-space centroid into terminal coordinates, leaving
// room for the block itself at the edges
func (t *Terminal) cell(c vmath.Vec2, w, h int) (int, int) {
	spanX := t.max.X - t.min.X
	spanY := t.max.Y - t.min.Y

	nx, ny := 0.5, 0.5
	if spanX > 0 {
		nx = (c.X - t.min.X) / spanX
	}
	if spanY > 0 {
		ny = (c.Y - t.min.Y) / spanY
	}

	usableW := w - blockWidth
	usableH := h - blockHeight
	if usableW < 1 {
		usableW = 1
	}
	if usableH < 1 {
		usableH = 1
	}
	return int(nx * float64(usableW)), int(ny * float64(usableH))
}
