package section

import (
	"strconv"

	"github.com/matzehuels/daireno/pkg/errors"
)

// Count limits accepted by Generate and SetApartmentCount. The maxima keep
// a section small enough to draw; together they also bound the total number
// of apartments to (MaxNormalFloors+MaxBasements)*MaxApartments.
const (
	MinNormalFloors = 1
	MinBasements    = 0
	MinApartments   = 1

	MaxNormalFloors = 200
	MaxBasements    = 50
	MaxApartments   = 100
)

// Option configures Generate.
type Option func(*generator)

type generator struct {
	floorHeight float64
}

// WithFloorHeight sets the height of one floor band. Non-positive values keep
// DefaultFloorHeight.
func WithFloorHeight(h float64) Option {
	return func(g *generator) {
		if h > 0 {
			g.floorHeight = h
		}
	}
}

// Generate builds a fresh section with normalFloors normal floors (the lowest
// of which is the ground floor), basements basement floors, and apartments
// apartments on every floor.
//
// Floors are emitted deepest basement first, then normal floors from the
// ground floor upward. Apartment numbers run 1..N across that emission order.
func Generate(normalFloors, basements, apartments int, opts ...Option) (Section, error) {
	if err := errors.ValidateCount("normal floor count", normalFloors, MinNormalFloors, MaxNormalFloors); err != nil {
		return Section{}, err
	}
	if err := errors.ValidateCount("basement count", basements, MinBasements, MaxBasements); err != nil {
		return Section{}, err
	}
	if err := errors.ValidateCount("apartment count", apartments, MinApartments, MaxApartments); err != nil {
		return Section{}, err
	}

	g := generator{floorHeight: DefaultFloorHeight}
	for _, opt := range opts {
		opt(&g)
	}

	s := Section{
		FloorHeight: g.floorHeight,
		Floors:      make([]Floor, 0, normalFloors+basements),
	}
	next := 1
	row := func() []Apartment {
		apts := make([]Apartment, apartments)
		for i := range apts {
			apts[i] = Apartment{Number: next}
			next++
		}
		return apts
	}

	for b := basements - 1; b >= 0; b-- {
		s.Floors = append(s.Floors, Floor{
			Offset:         float64(normalFloors+b) * g.floorHeight,
			Basement:       true,
			Label:          strconv.Itoa(b+1) + basementLabelSuffix,
			ApartmentCount: apartments,
			Apartments:     row(),
		})
	}

	for r := normalFloors - 1; r >= 0; r-- {
		s.Floors = append(s.Floors, Floor{
			Offset:         float64(r) * g.floorHeight,
			Label:          normalLabel(normalFloors, r),
			ApartmentCount: apartments,
			Apartments:     row(),
		})
	}
	return s, nil
}

// normalLabel names the normal floor at row r counted from the top.
func normalLabel(normalFloors, r int) string {
	if r == normalFloors-1 {
		return GroundLabel
	}
	return strconv.Itoa(normalFloors-r-1) + normalLabelSuffix
}
