package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/beatglow/constants"
	"github.com/lixenwraith/beatglow/vmath"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		spacing    float64
		wantLen    int
	}{
		{"Single panel", 1, 1, 100, 1},
		{"Strip of four", 1, 4, 86.6, 4},
		{"Two by three", 2, 3, 50, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lay := Grid(tt.rows, tt.cols, tt.spacing)
			if len(lay) != tt.wantLen {
				t.Fatalf("Expected panel count to be %d, got %d", tt.wantLen, len(lay))
			}
			if err := lay.Validate(); err != nil {
				t.Errorf("Expected generated layout to validate, got %v", err)
			}
			// IDs sequential from 1
			for i, p := range lay {
				if p.ID != i+1 {
					t.Errorf("Expected panel %d id to be %d, got %d", i, i+1, p.ID)
				}
			}
		})
	}
}

func TestGridSpacing(t *testing.T) {
	lay := Grid(2, 2, 100)
	if d := vmath.Dist(lay[0].Centroid, lay[1].Centroid); math.Abs(d-100) > 1e-9 {
		t.Errorf("Expected horizontal neighbour distance to be 100, got %v", d)
	}
	// Odd row offset by half the spacing
	if lay[2].Centroid.X != 50 {
		t.Errorf("Expected second row offset to be 50, got %v", lay[2].Centroid.X)
	}
}

func TestGridDefaultSpacing(t *testing.T) {
	lay := Grid(1, 2, 0)
	d := vmath.Dist(lay[0].Centroid, lay[1].Centroid)
	if math.Abs(d-constants.AdjacentPanelDistance) > 1e-6 {
		t.Errorf("Expected default spacing to be %v, got %v", constants.AdjacentPanelDistance, d)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		lay     Layout
		wantErr error
	}{
		{"Empty", Layout{}, ErrEmptyLayout},
		{"Valid", Layout{{ID: 1}, {ID: 2, Centroid: vmath.Vec2{X: 86.6}}}, nil},
		{"NaN centroid", Layout{{ID: 1, Centroid: vmath.Vec2{X: math.NaN()}}}, ErrNonFinitePanel},
		{"Infinite centroid", Layout{{ID: 1, Centroid: vmath.Vec2{Y: math.Inf(1)}}}, ErrNonFinitePanel},
		{"Duplicate ids", Layout{{ID: 7}, {ID: 7, Centroid: vmath.Vec2{X: 1}}}, ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lay.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	lay := Layout{
		{ID: 1, Centroid: vmath.Vec2{X: -10, Y: 5}},
		{ID: 2, Centroid: vmath.Vec2{X: 40, Y: -20}},
		{ID: 3, Centroid: vmath.Vec2{X: 15, Y: 30}},
	}
	min, max := lay.Bounds()
	if (min != vmath.Vec2{X: -10, Y: -20}) {
		t.Errorf("Expected min to be {-10 -20}, got %v", min)
	}
	if (max != vmath.Vec2{X: 40, Y: 30}) {
		t.Errorf("Expected max to be {40 30}, got %v", max)
	}
}
