package sink

import (
	"fmt"
	"io"

	"github.com/lixenwraith/beatglow/engine"
)

// Writer prints each frame as one line of hex panel colours. Used for
// headless runs and debugging.
type Writer struct {
	Out io.Writer

	frameNum int64
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

func (w *Writer) Push(frame engine.Frame) error {
	w.frameNum++
	if _, err := fmt.Fprintf(w.Out, "frame %d:", w.frameNum); err != nil {
		return err
	}
	for _, pf := range frame {
		if _, err := fmt.Fprintf(w.Out, " %d=#%02x%02x%02x", pf.PanelID, pf.R, pf.G, pf.B); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.Out)
	return err
}
