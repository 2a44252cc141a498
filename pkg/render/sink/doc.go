// Package sink provides output format renderers for section diagrams.
//
// # Overview
//
// A "sink" turns a laid out [diagram.Drawing] into bytes. This package
// provides renderers for:
//
//   - SVG: vector output carrying data-floor/data-apartment attributes so a
//     browser can route clicks back to the editor
//   - JSON: the drawing commands (and optionally the section) for external tools
//   - PNG: raster output drawn with github.com/fogleman/gg
//
// Basic usage:
//
//	d := diagram.Render(s, diagram.DefaultWidth)
//	svg := sink.RenderSVG(d, sink.WithInteractive())
//	png, err := sink.RenderPNG(d, sink.WithScale(2))
//
// [Render] dispatches on a format name and reports every call to the
// registered [observability.RenderHooks].
//
// [diagram.Drawing]: github.com/matzehuels/daireno/pkg/render/diagram.Drawing
// [observability.RenderHooks]: github.com/matzehuels/daireno/pkg/observability.RenderHooks
package sink
