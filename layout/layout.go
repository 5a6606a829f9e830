package layout

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/beatglow/constants"
	"github.com/lixenwraith/beatglow/vmath"
)

// Panel is one physical display unit: a stable id and a fixed centroid
// in panel-space units. Panels never move for the lifetime of a layout.
type Panel struct {
	ID       int
	Centroid vmath.Vec2
}

// Layout is an ordered, immutable sequence of panels
type Layout []Panel

// Sentinel errors
var (
	ErrEmptyLayout    = errors.New("layout has no panels")
	ErrNonFinitePanel = errors.New("panel centroid is not finite")
	ErrDuplicateID    = errors.New("duplicate panel id")
)

// Grid builds a rows x cols layout with the given centroid spacing.
// Odd rows are offset by half the spacing, approximating the staggered
// triangular arrangement of physical panels. IDs are assigned in
// row-major order starting from 1.
func Grid(rows, cols int, spacing float64) Layout {
	if spacing <= 0 {
		spacing = constants.AdjacentPanelDistance
	}
	lay := make(Layout, 0, rows*cols)
	id := 1
	for r := 0; r < rows; r++ {
		offset := 0.0
		if r%2 == 1 {
			offset = spacing / 2
		}
		for c := 0; c < cols; c++ {
			lay = append(lay, Panel{
				ID: id,
				Centroid: vmath.Vec2{
					X: float64(c)*spacing + offset,
					Y: float64(r) * spacing,
				},
			})
			id++
		}
	}
	return lay
}

// Strip builds a single horizontal row of n panels
func Strip(n int, spacing float64) Layout {
	return Grid(1, n, spacing)
}

// Validate checks the invariants the renderer relies on: at least one
// panel, finite centroids, unique ids. Non-finite geometry is rejected
// here so NaNs never reach colour blending.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return ErrEmptyLayout
	}
	seen := make(map[int]struct{}, len(l))
	for _, p := range l {
		if !p.Centroid.Finite() {
			return fmt.Errorf("%w: panel %d", ErrNonFinitePanel, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Bounds returns the min and max corners of the layout's centroids.
// Used by preview sinks to scale panel space onto a screen.
func (l Layout) Bounds() (min, max vmath.Vec2) {
	if len(l) == 0 {
		return
	}
	min = l[0].Centroid
	max = l[0].Centroid
	for _, p := range l[1:] {
		if p.Centroid.X < min.X {
			min.X = p.Centroid.X
		}
		if p.Centroid.Y < min.Y {
			min.Y = p.Centroid.Y
		}
		if p.Centroid.X > max.X {
			max.X = p.Centroid.X
		}
		if p.Centroid.Y > max.Y {
			max.Y = p.Centroid.Y
		}
	}
	return
}
