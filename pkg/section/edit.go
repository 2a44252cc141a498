package section

import "github.com/matzehuels/daireno/pkg/errors"

// Renumber rebuilds every floor's apartment list to its ApartmentCount.
//
// Floors are visited in stored order. At each index, an apartment that already
// had a custom label keeps it; every other slot takes the next value of a
// counter that starts at 1. Growing or shrinking one floor therefore shifts
// the numbers of all non-custom apartments on later floors.
func Renumber(s Section) Section {
	out := Section{FloorHeight: s.FloorHeight, Floors: make([]Floor, len(s.Floors))}
	next := 1
	for i, f := range s.Floors {
		count := max(f.ApartmentCount, 0)
		apts := make([]Apartment, count)
		for j := range apts {
			if j < len(f.Apartments) && f.Apartments[j].Custom() {
				apts[j] = Apartment{Label: f.Apartments[j].Label}
				continue
			}
			apts[j] = Apartment{Number: next}
			next++
		}
		f.Apartments = apts
		out.Floors[i] = f
	}
	return out
}

// SetApartmentCount sets the apartment count of the floor at index floor
// (stored order) and renumbers the whole section.
func SetApartmentCount(s Section, floor, count int) (Section, error) {
	if err := errors.ValidateIndex("floor", floor, len(s.Floors)); err != nil {
		return s, err
	}
	if err := errors.ValidateCount("apartment count", count, MinApartments, MaxApartments); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Floors[floor].ApartmentCount = count
	return Renumber(out), nil
}

// Relabel gives one apartment a custom label. No other apartment changes.
func Relabel(s Section, floor, apartment int, label string) (Section, error) {
	if err := errors.ValidateIndex("floor", floor, len(s.Floors)); err != nil {
		return s, err
	}
	if err := errors.ValidateIndex("apartment", apartment, len(s.Floors[floor].Apartments)); err != nil {
		return s, err
	}
	if err := errors.ValidateLabel(label); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Floors[floor].Apartments[apartment] = Apartment{Label: label}
	return out, nil
}
