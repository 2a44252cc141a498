package editor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/observability"
	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/section"
)

// Prompt texts shown for the two edit kinds.
const (
	CountPrompt = "Bu katın daire sayısını girin (eski: %d):"
	LabelPrompt = "Daire numarasını girin (eski: %s):"
)

// EditKind selects what a pending edit changes.
type EditKind string

const (
	EditCount EditKind = "count" // apartment count of a floor
	EditLabel EditKind = "label" // label of one apartment
)

// PendingEdit is a prompt waiting for the user's answer.
type PendingEdit struct {
	Kind      EditKind `json:"kind" validate:"oneof=count label"`
	Floor     int      `json:"floor"`
	Apartment int      `json:"apartment"` // -1 for count edits
	Prompt    string   `json:"prompt"`
	Default   string   `json:"default"` // current value, offered as the prompt's initial answer
}

// State is the serializable part of an editor.
type State struct {
	Setup   Setup           `json:"setup"`
	Section section.Section `json:"section"`
}

// Option configures an Editor.
type Option func(*Editor)

// WithWidth sets the drawing surface width used for rendering and hit tests.
func WithWidth(w float64) Option {
	return func(e *Editor) {
		if w > diagram.LabelColumnWidth {
			e.width = w
		}
	}
}

// WithFloorHeight sets the band height used by Generate.
func WithFloorHeight(h float64) Option {
	return func(e *Editor) {
		if h > 0 {
			e.floorHeight = h
		}
	}
}

// WithDiagramOptions passes options through to [diagram.Render].
func WithDiagramOptions(opts ...diagram.Option) Option {
	return func(e *Editor) { e.diagramOpts = append(e.diagramOpts, opts...) }
}

// Editor holds one section and applies user edits to it. It is not safe for
// concurrent use.
type Editor struct {
	width       float64
	floorHeight float64
	diagramOpts []diagram.Option

	setup   Setup
	section section.Section
}

// New returns an editor with an empty section. Call Generate to build one.
func New(opts ...Option) *Editor {
	e := &Editor{
		width:       diagram.DefaultWidth,
		floorHeight: section.DefaultFloorHeight,
		setup:       DefaultSetup(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Width returns the drawing surface width.
func (e *Editor) Width() float64 { return e.width }

// Setup returns the setup of the last successful Generate.
func (e *Editor) Setup() Setup { return e.setup }

// Section returns the current section.
func (e *Editor) Section() section.Section { return e.section }

// Drawing lays out the current section.
func (e *Editor) Drawing() diagram.Drawing {
	return diagram.Render(e.section, e.width, e.diagramOpts...)
}

// Generate discards the current section and builds a new one from setup.
func (e *Editor) Generate(ctx context.Context, setup Setup) error {
	if err := setup.Validate(); err != nil {
		return err
	}
	s, err := section.Generate(setup.NormalFloors, setup.Basements, setup.Apartments,
		section.WithFloorHeight(e.floorHeight))
	if err != nil {
		return err
	}
	e.setup = setup
	e.section = s
	observability.Editor().OnGenerate(ctx, setup.NormalFloors, setup.Basements, setup.Apartments, s.TotalApartments())
	return nil
}

// Regenerate rebuilds the section from the current setup, dropping every edit.
func (e *Editor) Regenerate(ctx context.Context) error {
	return e.Generate(ctx, e.setup)
}

// Click resolves a pointer position into a pending edit. It returns false when
// the point hits neither a label nor an apartment.
func (e *Editor) Click(x, y float64) (PendingEdit, bool) {
	hit := diagram.HitTest(e.section, e.width, x, y)
	switch hit.Kind {
	case diagram.HitFloor:
		f := e.section.Floors[hit.Floor]
		return PendingEdit{
			Kind:      EditCount,
			Floor:     hit.Floor,
			Apartment: -1,
			Prompt:    fmt.Sprintf(CountPrompt, f.ApartmentCount),
			Default:   strconv.Itoa(f.ApartmentCount),
		}, true
	case diagram.HitApartment:
		apt := e.section.Floors[hit.Floor].Apartments[hit.Apartment]
		return PendingEdit{
			Kind:      EditLabel,
			Floor:     hit.Floor,
			Apartment: hit.Apartment,
			Prompt:    fmt.Sprintf(LabelPrompt, apt.String()),
			Default:   apt.String(),
		}, true
	}
	return PendingEdit{}, false
}

// ClickFloor opens the count prompt of floor i by clicking its label.
func (e *Editor) ClickFloor(i int) (PendingEdit, bool) {
	if i < 0 || i >= len(e.section.Floors) {
		return PendingEdit{}, false
	}
	return e.Click(diagram.FloorPoint(e.section, e.width, i))
}

// ClickApartment opens the label prompt of apartment j on floor i by clicking
// the centre of its cell.
func (e *Editor) ClickApartment(i, j int) (PendingEdit, bool) {
	if i < 0 || i >= len(e.section.Floors) || j < 0 || j >= len(e.section.Floors[i].Apartments) {
		return PendingEdit{}, false
	}
	return e.Click(diagram.ApartmentPoint(e.section, e.width, i, j))
}

// Commit applies the answer to a pending edit and reports whether the section
// changed. A cancelled prompt, an invalid answer or an edit that no longer
// addresses the current section is ignored.
func (e *Editor) Commit(ctx context.Context, p PendingEdit, input string, cancelled bool) bool {
	if cancelled {
		observability.Editor().OnEdit(ctx, string(p.Kind), p.Floor, p.Apartment, false)
		return false
	}
	return e.Apply(ctx, p, input) == nil
}

// Apply is Commit with the reason for a rejected answer.
func (e *Editor) Apply(ctx context.Context, p PendingEdit, input string) error {
	s, err := e.apply(p, input)
	if err == nil {
		e.section = s
	}
	observability.Editor().OnEdit(ctx, string(p.Kind), p.Floor, p.Apartment, err == nil)
	return err
}

func (e *Editor) apply(p PendingEdit, input string) (section.Section, error) {
	if err := validateStruct(p); err != nil {
		return e.section, err
	}
	switch p.Kind {
	case EditCount:
		n, err := ParseApartmentCount(input)
		if err != nil {
			return e.section, err
		}
		return section.SetApartmentCount(e.section, p.Floor, n)
	case EditLabel:
		return section.Relabel(e.section, p.Floor, p.Apartment, input)
	}
	return e.section, errors.New(errors.ErrCodeInvalidInput, "unknown edit kind %q", p.Kind)
}

// State returns a copy of the editor's serializable state.
func (e *Editor) State() State {
	return State{Setup: e.setup, Section: e.section.Clone()}
}

// Restore replaces the editor's state.
func (e *Editor) Restore(st State) {
	e.setup = st.Setup.WithFallback()
	e.section = st.Section.Clone()
}
