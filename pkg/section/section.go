package section

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Fixed floor labels.
const (
	GroundLabel         = "Zemin Kat"
	normalLabelSuffix   = ". Normal Kat"
	basementLabelSuffix = ". Bodrum Kat"
)

// DefaultFloorHeight is the height of one floor band in drawing units.
const DefaultFloorHeight = 50.0

// Apartment is one cell of a floor. A zero Label means the apartment shows its
// sequential Number; a non-empty Label is a custom value set by the user.
type Apartment struct {
	Number int
	Label  string
}

// Custom reports whether the apartment carries a user-supplied label.
func (a Apartment) Custom() bool { return a.Label != "" }

// String returns the text shown in the apartment's cell.
func (a Apartment) String() string {
	if a.Custom() {
		return a.Label
	}
	return strconv.Itoa(a.Number)
}

// MarshalJSON encodes sequential apartments as a JSON number and custom
// apartments as a JSON string.
func (a Apartment) MarshalJSON() ([]byte, error) {
	if a.Custom() {
		return json.Marshal(a.Label)
	}
	return json.Marshal(a.Number)
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (a *Apartment) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Apartment{Label: s}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Apartment{Number: n}
	return nil
}

// Floor is one horizontal band of the section.
type Floor struct {
	Offset         float64     `json:"offset"`
	Basement       bool        `json:"basement"`
	Label          string      `json:"label"`
	ApartmentCount int         `json:"apartment_count"`
	Apartments     []Apartment `json:"apartments"`
}

// IsGround reports whether f is the ground floor.
func (f Floor) IsGround() bool { return !f.Basement && f.Label == GroundLabel }

// Section is an ordered stack of floors, deepest basement first.
type Section struct {
	FloorHeight float64 `json:"floor_height"`
	Floors      []Floor `json:"floors"`
}

// Height returns the total drawing height of the section.
func (s Section) Height() float64 {
	return float64(len(s.Floors)) * s.floorHeight()
}

// TotalApartments returns the number of apartments across all floors.
func (s Section) TotalApartments() int {
	n := 0
	for _, f := range s.Floors {
		n += len(f.Apartments)
	}
	return n
}

// Empty reports whether the section has no floors, which is the state before
// the first generation.
func (s Section) Empty() bool { return len(s.Floors) == 0 }

func (s Section) floorHeight() float64 {
	if s.FloorHeight <= 0 {
		return DefaultFloorHeight
	}
	return s.FloorHeight
}

// Clone returns a deep copy of s.
func (s Section) Clone() Section {
	out := Section{FloorHeight: s.FloorHeight}
	if s.Floors == nil {
		return out
	}
	out.Floors = make([]Floor, len(s.Floors))
	for i, f := range s.Floors {
		f.Apartments = append([]Apartment(nil), f.Apartments...)
		out.Floors[i] = f
	}
	return out
}
