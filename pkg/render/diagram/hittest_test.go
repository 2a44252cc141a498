package diagram

import (
	"testing"

	"github.com/matzehuels/daireno/pkg/section"
)

func TestHitTest(t *testing.T) {
	// Stored order: basement (y 100), ground (y 50), top floor (y 0)
	s, _ := section.Generate(2, 1, 3)

	tests := []struct {
		name string
		x, y float64
		want Hit
	}{
		{"label of top floor", 375, 25, Hit{Kind: HitFloor, Floor: 2, Apartment: -1}},
		{"label of basement", 400, 140, Hit{Kind: HitFloor, Floor: 0, Apartment: -1}},
		{"label column left edge", 300, 75, Hit{Kind: HitFloor, Floor: 1, Apartment: -1}},
		{"first cell of ground floor", 10, 60, Hit{Kind: HitApartment, Floor: 1, Apartment: 0}},
		{"middle cell of top floor", 150, 10, Hit{Kind: HitApartment, Floor: 2, Apartment: 1}},
		{"last cell of basement", 299, 149, Hit{Kind: HitApartment, Floor: 0, Apartment: 2}},
		{"shared band edge goes to upper floor", 50, 50, Hit{Kind: HitApartment, Floor: 2, Apartment: 0}},
		{"shared label edge goes to upper floor", 375, 100, Hit{Kind: HitFloor, Floor: 1, Apartment: -1}},
		{"below all floors", 50, 151, Hit{Kind: HitNone, Floor: -1, Apartment: -1}},
		{"below all floors in label column", 375, 200, Hit{Kind: HitNone, Floor: -1, Apartment: -1}},
		{"left of surface", -1, 25, Hit{Kind: HitNone, Floor: -1, Apartment: -1}},
		{"right of surface", 460, 25, Hit{Kind: HitNone, Floor: -1, Apartment: -1}},
		{"above surface", 50, -0.5, Hit{Kind: HitNone, Floor: -1, Apartment: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(s, 450, tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestUnevenFloors(t *testing.T) {
	s, _ := section.Generate(2, 0, 2)
	s, _ = section.SetApartmentCount(s, 1, 5)

	// Top floor now has 5 cells of 60 units, ground keeps 2 of 150
	if got := HitTest(s, 450, 130, 25); got != (Hit{Kind: HitApartment, Floor: 1, Apartment: 2}) {
		t.Errorf("HitTest top floor = %+v", got)
	}
	if got := HitTest(s, 450, 130, 75); got != (Hit{Kind: HitApartment, Floor: 0, Apartment: 0}) {
		t.Errorf("HitTest ground floor = %+v", got)
	}
}

func TestHitTestEmptySection(t *testing.T) {
	if got := HitTest(section.Section{}, 450, 10, 10); got.Kind != HitNone {
		t.Errorf("HitTest on empty section = %+v, want none", got)
	}
}

func TestHitPoints(t *testing.T) {
	s, _ := section.Generate(3, 2, 4)

	for i, f := range s.Floors {
		x, y := FloorPoint(s, 450, i)
		if got := HitTest(s, 450, x, y); got.Kind != HitFloor || got.Floor != i {
			t.Errorf("FloorPoint(%d) hits %+v", i, got)
		}
		for j := range f.Apartments {
			x, y := ApartmentPoint(s, 450, i, j)
			if got := HitTest(s, 450, x, y); got.Kind != HitApartment || got.Floor != i || got.Apartment != j {
				t.Errorf("ApartmentPoint(%d, %d) hits %+v", i, j, got)
			}
		}
	}
}

func TestHitString(t *testing.T) {
	tests := []struct {
		hit  Hit
		want string
	}{
		{Hit{Kind: HitFloor, Floor: 2, Apartment: -1}, "floor 2"},
		{Hit{Kind: HitApartment, Floor: 1, Apartment: 3}, "floor 1 apartment 3"},
		{noHit, "none"},
	}
	for _, tt := range tests {
		if got := tt.hit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if HitApartment.String() != "apartment" || HitNone.String() != "none" {
		t.Error("HitKind.String() mismatch")
	}
}
