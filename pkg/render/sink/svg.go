package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/render/styles"
)

const shadowFilterID = "daireno-shadow"

const interactionCSS = `
    [data-floor] { cursor: pointer; }
    rect[data-role="cell"]:hover, rect[data-role="label"]:hover { fill-opacity: 0.85; }`

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	id          string
	interactive bool
	background  string
}

// WithID sets the id attribute of the root svg element.
func WithID(id string) SVGOption { return func(r *svgRenderer) { r.id = id } }

// WithInteractive adds pointer styling for clickable cells and labels.
func WithInteractive() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// WithBackground paints the whole surface before drawing. SVG output is
// transparent by default.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// RenderSVG writes d as a standalone SVG document.
func RenderSVG(d diagram.Drawing, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if r.id != "" {
		fmt.Fprintf(&buf, ` id="%s"`, styles.EscapeXML(r.id))
	}
	fmt.Fprintf(&buf, ` viewBox="0 0 %.2f %.2f" width="%.2f" height="%.2f" font-family="%s">`+"\n",
		d.Width, d.Height, d.Width, d.Height, styles.EscapeXML(d.FontFamily))

	renderDefs(&buf, d.Shadow, r.interactive)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			d.Width, d.Height, styles.EscapeXML(r.background))
	}

	if d.Shadow != nil {
		fmt.Fprintf(&buf, `  <g filter="url(#%s)">`+"\n", shadowFilterID)
	} else {
		buf.WriteString("  <g>\n")
	}
	for _, c := range d.Commands {
		renderCommand(&buf, c)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, shadow *styles.Shadow, interactive bool) {
	if shadow == nil && !interactive {
		return
	}
	buf.WriteString("  <defs>\n")
	if shadow != nil {
		fmt.Fprintf(buf, `    <filter id="%s" x="-10%%" y="-10%%" width="120%%" height="120%%">`+"\n", shadowFilterID)
		fmt.Fprintf(buf, `      <feDropShadow dx="%.2f" dy="%.2f" stdDeviation="%.2f" flood-color="#000000" flood-opacity="%.2f"/>`+"\n",
			shadow.OffsetX, shadow.OffsetY, shadow.Blur/2, shadow.Opacity)
		buf.WriteString("    </filter>\n")
	}
	if interactive {
		fmt.Fprintf(buf, "    <style>%s\n    </style>\n", interactionCSS)
	}
	buf.WriteString("  </defs>\n")
}

func renderCommand(buf *bytes.Buffer, c diagram.Command) {
	switch c.Op {
	case diagram.OpFillRect:
		fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"%s/>`+"\n",
			c.X, c.Y, c.W, c.H, styles.EscapeXML(c.Color), dataAttrs(c))
	case diagram.OpStrokeRect:
		fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
			c.X, c.Y, c.W, c.H, styles.EscapeXML(c.Color), c.LineWidth, dataAttrs(c))
	case diagram.OpText:
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" font-size="%.2f" font-weight="%s" fill="%s" pointer-events="none">%s</text>`+"\n",
			c.X, c.Y, c.FontSize, styles.FontWeight(c.Bold), styles.EscapeXML(c.Color), styles.EscapeXML(c.Text))
	}
}

func dataAttrs(c diagram.Command) string {
	if c.Role == diagram.RoleBand {
		return ""
	}
	s := fmt.Sprintf(` data-role="%s" data-floor="%d"`, c.Role, c.Floor)
	if c.Apartment >= 0 {
		s += fmt.Sprintf(` data-apartment="%d"`, c.Apartment)
	}
	return s
}
