package editor

import (
	"testing"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/section"
)

func TestParseSetup(t *testing.T) {
	tests := []struct {
		name                   string
		floors, basements, apt string
		want                   Setup
	}{
		{"valid", "3", "2", "4", Setup{3, 2, 4}},
		{"whitespace", " 5 ", "\t1", "2\n", Setup{5, 1, 2}},
		{"empty falls back", "", "", "", Setup{1, 0, 1}},
		{"non-numeric falls back", "abc", "x", "?", Setup{1, 0, 1}},
		{"zero floors falls back", "0", "0", "0", Setup{1, 0, 1}},
		{"negative basements falls back", "2", "-1", "3", Setup{2, 0, 3}},
		{"decimal falls back", "2.5", "1", "3", Setup{1, 1, 3}},
		{"fields fall back independently", "4", "nope", "0", Setup{4, 0, 1}},
		{"max int floors falls back", "9223372036854775807", "1", "1", Setup{1, 1, 1}},
		{"past int range falls back", "99999999999999999999", "1", "1", Setup{1, 1, 1}},
		{"huge apartments falls back", "2", "0", "2000000000", Setup{2, 0, 1}},
		{"above maximum falls back", "201", "51", "101", Setup{1, 0, 1}},
		{"at maximum", "200", "50", "100", Setup{200, 50, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSetup(tt.floors, tt.basements, tt.apt); got != tt.want {
				t.Errorf("ParseSetup() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetupValidate(t *testing.T) {
	tests := []struct {
		name  string
		setup Setup
		code  errors.Code
	}{
		{"valid", Setup{2, 1, 3}, ""},
		{"minimum", Setup{1, 0, 1}, ""},
		{"no floors", Setup{0, 0, 1}, errors.ErrCodeInvalidCount},
		{"negative basements", Setup{1, -1, 1}, errors.ErrCodeInvalidCount},
		{"no apartments", Setup{1, 0, 0}, errors.ErrCodeInvalidCount},
		{"at maximum", Setup{section.MaxNormalFloors, section.MaxBasements, section.MaxApartments}, ""},
		{"too many floors", Setup{section.MaxNormalFloors + 1, 0, 1}, errors.ErrCodeInvalidCount},
		{"too many basements", Setup{1, section.MaxBasements + 1, 1}, errors.ErrCodeInvalidCount},
		{"too many apartments", Setup{1, 0, section.MaxApartments + 1}, errors.ErrCodeInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestSetupWithFallback(t *testing.T) {
	tests := []struct {
		in, want Setup
	}{
		{Setup{0, -3, 5}, Setup{1, 0, 5}},
		{Setup{1 << 30, 2, 1 << 30}, Setup{1, 2, 1}},
		{Setup{3, section.MaxBasements + 1, 2}, Setup{3, 0, 2}},
	}
	for _, tt := range tests {
		if got := tt.in.WithFallback(); got != tt.want {
			t.Errorf("%+v.WithFallback() = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseApartmentCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
		code  errors.Code
	}{
		{"5", 5, ""},
		{"  7 ", 7, ""},
		{"1", 1, ""},
		{"0", 0, errors.ErrCodeInvalidCount},
		{"-2", 0, errors.ErrCodeInvalidCount},
		{"100", 100, ""},
		{"101", 0, errors.ErrCodeInvalidCount},
		{"999999999", 0, errors.ErrCodeInvalidCount},
		{"9223372036854775808", 0, errors.ErrCodeInvalidInput},
		{"", 0, errors.ErrCodeInvalidInput},
		{"abc", 0, errors.ErrCodeInvalidInput},
		{"3.5", 0, errors.ErrCodeInvalidInput},
		{"4 daire", 0, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseApartmentCount(tt.input)
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Errorf("ParseApartmentCount(%q) error = %v, want %s", tt.input, err, tt.code)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseApartmentCount(%q) = %d, %v, want %d", tt.input, got, err, tt.want)
			}
		})
	}
}
