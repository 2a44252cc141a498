package diagram

import (
	"cmp"
	"slices"

	"github.com/matzehuels/daireno/pkg/section"
)

const (
	// DefaultWidth is the default drawing surface width.
	DefaultWidth = 450.0

	// LabelColumnWidth is the fixed width reserved for floor labels on the
	// right edge of the surface.
	LabelColumnWidth = 150.0
)

// Rect is an axis-aligned rectangle in drawing units, with Y growing downward.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// CenterX returns the horizontal center of r.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of r.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Geometry computes band, label and cell rectangles for one surface width.
type Geometry struct {
	Width       float64
	FloorHeight float64
}

// NewGeometry returns the geometry of s drawn on a surface of the given width.
func NewGeometry(s section.Section, width float64) Geometry {
	h := s.FloorHeight
	if h <= 0 {
		h = section.DefaultFloorHeight
	}
	return Geometry{Width: width, FloorHeight: h}
}

// ContentWidth returns the width left for apartments.
func (g Geometry) ContentWidth() float64 {
	return max(g.Width-LabelColumnWidth, 0)
}

// InLabelColumn reports whether x falls inside the label column.
func (g Geometry) InLabelColumn(x float64) bool {
	return x >= g.Width-LabelColumnWidth && x <= g.Width
}

// ApartmentWidth returns the width of one apartment cell on f.
func (g Geometry) ApartmentWidth(f section.Floor) float64 {
	if f.ApartmentCount <= 0 {
		return 0
	}
	return g.ContentWidth() / float64(f.ApartmentCount)
}

// Band returns the apartment area of f, excluding the label column.
func (g Geometry) Band(f section.Floor) Rect {
	return Rect{X: 0, Y: f.Offset, W: g.ContentWidth(), H: g.FloorHeight}
}

// Label returns the label column cell of f.
func (g Geometry) Label(f section.Floor) Rect {
	return Rect{X: g.Width - LabelColumnWidth, Y: f.Offset, W: LabelColumnWidth, H: g.FloorHeight}
}

// Cell returns the rectangle of apartment i on f.
func (g Geometry) Cell(f section.Floor, i int) Rect {
	w := g.ApartmentWidth(f)
	return Rect{X: float64(i) * w, Y: f.Offset, W: w, H: g.FloorHeight}
}

// Row returns the full-width band of f, label column included.
func (g Geometry) Row(f section.Floor) Rect {
	return Rect{X: 0, Y: f.Offset, W: g.Width, H: g.FloorHeight}
}

// Height returns the surface height needed for n floors.
func (g Geometry) Height(n int) float64 {
	return float64(n) * g.FloorHeight
}

// TopDown returns floor indices ordered by offset, top floor first.
func TopDown(s section.Section) []int {
	idx := make([]int, len(s.Floors))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(s.Floors[a].Offset, s.Floors[b].Offset)
	})
	return idx
}
