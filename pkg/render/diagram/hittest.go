package diagram

import (
	"fmt"

	"github.com/matzehuels/daireno/pkg/section"
)

// HitKind identifies what a pointer position resolved to.
type HitKind int

const (
	HitNone HitKind = iota
	HitFloor
	HitApartment
)

// String returns the lowercase name of the hit kind.
func (k HitKind) String() string {
	switch k {
	case HitFloor:
		return "floor"
	case HitApartment:
		return "apartment"
	default:
		return "none"
	}
}

// Hit is the result of a hit test. Floor is a stored-order index into
// Section.Floors; Apartment is only meaningful for HitApartment and is -1
// otherwise.
type Hit struct {
	Kind      HitKind
	Floor     int
	Apartment int
}

var noHit = Hit{Kind: HitNone, Floor: -1, Apartment: -1}

func (h Hit) String() string {
	switch h.Kind {
	case HitFloor:
		return fmt.Sprintf("floor %d", h.Floor)
	case HitApartment:
		return fmt.Sprintf("floor %d apartment %d", h.Floor, h.Apartment)
	default:
		return "none"
	}
}

// HitTest resolves the point (x, y) on a surface of the given width.
//
// A point inside the label column hits the first floor, top to bottom, whose
// band contains y. Any other point (or a label-column point outside every
// band) hits the first apartment cell containing it, scanning floors top to
// bottom and cells left to right.
func HitTest(s section.Section, width, x, y float64) Hit {
	g := NewGeometry(s, width)
	order := TopDown(s)

	if g.InLabelColumn(x) {
		for _, i := range order {
			if g.Label(s.Floors[i]).Contains(x, y) {
				return Hit{Kind: HitFloor, Floor: i, Apartment: -1}
			}
		}
	}

	for _, i := range order {
		f := s.Floors[i]
		if !g.Band(f).Contains(x, y) {
			continue
		}
		for j := range f.Apartments {
			if g.Cell(f, j).Contains(x, y) {
				return Hit{Kind: HitApartment, Floor: i, Apartment: j}
			}
		}
	}
	return noHit
}

// FloorPoint returns a point that hits floor i in the label column.
func FloorPoint(s section.Section, width float64, i int) (x, y float64) {
	r := NewGeometry(s, width).Label(s.Floors[i])
	return r.CenterX(), r.CenterY()
}

// ApartmentPoint returns a point at the center of apartment j on floor i.
func ApartmentPoint(s section.Section, width float64, i, j int) (x, y float64) {
	g := NewGeometry(s, width)
	r := g.Cell(s.Floors[i], j)
	return r.CenterX(), r.CenterY()
}
