package engine

// PanelFrame is the displayed state of one panel for one step: the
// final clamped colour and the transition time (tenths of a second) the
// panel should take to fade to it.
type PanelFrame struct {
	PanelID    int
	R, G, B    uint8
	Transition int
}

// Frame holds one PanelFrame per panel, in layout order. Every panel is
// present every step, even when no source is active.
type Frame []PanelFrame
