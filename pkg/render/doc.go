// Package render turns a building section into drawings and output files.
//
// The work is split across three subpackages:
//
//   - [diagram]: lays the section out as stacked floor bands with a label
//     column, produces an ordered list of drawing commands, and maps pointer
//     coordinates back to floors and apartments (hit testing).
//   - [styles]: colours, stroke widths and fonts used by the drawing, plus
//     text helpers shared by the sinks.
//   - [sink]: writes a drawing as SVG, PNG or JSON.
//
// Typical use:
//
//	s, _ := section.Generate(4, 1, 3)
//	d := diagram.Render(s, diagram.DefaultWidth)
//	svg := sink.RenderSVG(d)
//
// [diagram]: github.com/matzehuels/daireno/pkg/render/diagram
// [styles]: github.com/matzehuels/daireno/pkg/render/styles
// [sink]: github.com/matzehuels/daireno/pkg/render/sink
package render
