package editor

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/section"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Setup holds the three values that drive section generation.
type Setup struct {
	NormalFloors int `json:"normal_floors" toml:"normal_floors" validate:"min=1,max=200"`
	Basements    int `json:"basements" toml:"basements" validate:"min=0,max=50"`
	Apartments   int `json:"apartments" toml:"apartments" validate:"min=1,max=100"`
}

// DefaultSetup returns the fallback setup: one floor, no basements, one
// apartment per floor.
func DefaultSetup() Setup {
	return Setup{
		NormalFloors: section.MinNormalFloors,
		Basements:    section.MinBasements,
		Apartments:   section.MinApartments,
	}
}

// Validate reports the first field outside its section limits.
func (s Setup) Validate() error {
	return validateStruct(s)
}

// ParseSetup reads raw setup input. Each field that is not a base-10 integer
// or lies outside its limits falls back to its default independently.
func ParseSetup(normalFloors, basements, apartments string) Setup {
	d := DefaultSetup()
	return Setup{
		NormalFloors: parseOr(normalFloors, section.MinNormalFloors, section.MaxNormalFloors, d.NormalFloors),
		Basements:    parseOr(basements, section.MinBasements, section.MaxBasements, d.Basements),
		Apartments:   parseOr(apartments, section.MinApartments, section.MaxApartments, d.Apartments),
	}
}

// WithFallback replaces every invalid field of s by its default.
func (s Setup) WithFallback() Setup {
	d := DefaultSetup()
	s.NormalFloors = within(s.NormalFloors, section.MinNormalFloors, section.MaxNormalFloors, d.NormalFloors)
	s.Basements = within(s.Basements, section.MinBasements, section.MaxBasements, d.Basements)
	s.Apartments = within(s.Apartments, section.MinApartments, section.MaxApartments, d.Apartments)
	return s
}

func parseOr(raw string, min, max, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return within(n, min, max, def)
}

func within(n, min, max, def int) int {
	if n < min || n > max {
		return def
	}
	return n
}

// ParseApartmentCount parses a prompt answer for a floor's apartment count.
// Surrounding whitespace is ignored; anything but a base-10 integer in
// [section.MinApartments, section.MaxApartments] is rejected.
func ParseApartmentCount(input string) (int, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "apartment count must be a whole number, got %q", input)
	}
	if err := errors.ValidateCount("apartment count", n, section.MinApartments, section.MaxApartments); err != nil {
		return 0, err
	}
	return n, nil
}

// validateStruct runs struct tag validation and converts the first failure
// into a structured error.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInternal, err, "validate %T", v)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "min":
		return errors.Wrap(errors.ErrCodeInvalidCount, err, "%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "max":
		return errors.Wrap(errors.ErrCodeInvalidCount, err, "%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be one of [%s], got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s failed %s validation", fe.Field(), fe.Tag())
	}
}
