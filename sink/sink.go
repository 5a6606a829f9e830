// Package sink delivers rendered frames to an output: a terminal
// preview, a log writer, or a test capture. The engine does not know
// where frames go; it hands each completed Frame to a Sink and moves
// on.
package sink

import "github.com/lixenwraith/beatglow/engine"

// Sink consumes one frame per simulation step. Push must not retain
// the frame slice; the engine reuses it.
type Sink interface {
	Push(frame engine.Frame) error
}

// Capture stores copies of every pushed frame, for tests
type Capture struct {
	Frames []engine.Frame
}

func (c *Capture) Push(frame engine.Frame) error {
	cp := make(engine.Frame, len(frame))
	copy(cp, frame)
	c.Frames = append(c.Frames, cp)
	return nil
}

// Last returns the most recent frame, or nil when nothing was pushed
func (c *Capture) Last() engine.Frame {
	if len(c.Frames) == 0 {
		return nil
	}
	return c.Frames[len(c.Frames)-1]
}
