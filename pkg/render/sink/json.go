package sink

import (
	"encoding/json"

	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/section"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	section *section.Section
}

// WithJSONSection includes the section the drawing was made from, so a
// consumer can map commands back to floors and apartments.
func WithJSONSection(s section.Section) JSONOption {
	return func(r *jsonRenderer) { r.section = &s }
}

type jsonOutput struct {
	diagram.Drawing
	Section *section.Section `json:"section,omitempty"`
}

// RenderJSON exports the drawing commands as a pretty-printed JSON document.
func RenderJSON(d diagram.Drawing, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if d.Commands == nil {
		d.Commands = []diagram.Command{}
	}
	return json.MarshalIndent(jsonOutput{Drawing: d, Section: r.section}, "", "  ")
}
