package diagram

import (
	"github.com/matzehuels/daireno/pkg/render/styles"
	"github.com/matzehuels/daireno/pkg/section"
)

// Op is a drawing primitive.
type Op string

const (
	OpFillRect   Op = "fill_rect"
	OpStrokeRect Op = "stroke_rect"
	OpText       Op = "text"
)

// Role tells which part of the diagram a command draws.
type Role string

const (
	RoleBand  Role = "band"
	RoleLabel Role = "label"
	RoleCell  Role = "cell"
)

// Command is one drawing step. Rect commands use X, Y, W, H as the rectangle;
// text commands are centred horizontally on X with their baseline at Y.
type Command struct {
	Op        Op      `json:"op"`
	Role      Role    `json:"role"`
	Floor     int     `json:"floor"`
	Apartment int     `json:"apartment"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w,omitempty"`
	H         float64 `json:"h,omitempty"`
	Color     string  `json:"color"`
	LineWidth float64 `json:"line_width,omitempty"`
	Text      string  `json:"text,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
}

// Drawing is a fully laid out diagram.
type Drawing struct {
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	FontFamily string         `json:"font_family"`
	Shadow     *styles.Shadow `json:"shadow,omitempty"`
	Commands   []Command      `json:"commands"`
}

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	palette styles.Palette
	shadow  bool
}

// WithPalette overrides the default palette.
func WithPalette(p styles.Palette) Option { return func(r *renderer) { r.palette = p } }

// WithShadow toggles the drop shadow (on by default).
func WithShadow(on bool) Option { return func(r *renderer) { r.shadow = on } }

// Baseline offsets from a band's vertical centre.
const (
	groundBaseline = 6.0
	textBaseline   = 5.0
)

// Render lays s out on a surface of the given width.
//
// For every floor in stored order it emits the band outline, the label column
// (fill, outline, text) and then each apartment (fill, outline, number).
func Render(s section.Section, width float64, opts ...Option) Drawing {
	r := renderer{palette: styles.Default(), shadow: true}
	for _, opt := range opts {
		opt(&r)
	}
	p := r.palette
	g := NewGeometry(s, width)

	d := Drawing{
		Width:      width,
		Height:     g.Height(len(s.Floors)),
		FontFamily: p.FontFamily,
		Commands:   make([]Command, 0, len(s.Floors)*4+s.TotalApartments()*3),
	}
	if r.shadow {
		shadow := p.Shadow
		d.Shadow = &shadow
	}

	for i, f := range s.Floors {
		stroke := p.Stroke(f.Basement)

		band := g.Band(f)
		d.Commands = append(d.Commands, rectCmd(OpStrokeRect, RoleBand, i, -1, band, stroke, p.StrokeWidth))

		label := g.Label(f)
		d.Commands = append(d.Commands,
			rectCmd(OpFillRect, RoleLabel, i, -1, label, p.LabelFill(f.Basement), 0),
			rectCmd(OpStrokeRect, RoleLabel, i, -1, label, p.LabelBorder, p.StrokeWidth),
		)
		text := Command{
			Op: OpText, Role: RoleLabel, Floor: i, Apartment: -1,
			X: label.CenterX(), Y: label.CenterY() + textBaseline,
			Color: p.LabelText, Text: f.Label, FontSize: p.LabelFontSize,
		}
		if f.IsGround() {
			text.Y = label.CenterY() + groundBaseline
			text.FontSize = p.GroundFontSize
			text.Bold = true
		}
		d.Commands = append(d.Commands, text)

		for j, apt := range f.Apartments {
			cell := g.Cell(f, j)
			d.Commands = append(d.Commands,
				rectCmd(OpFillRect, RoleCell, i, j, cell, p.CellFill, 0),
				rectCmd(OpStrokeRect, RoleCell, i, j, cell, stroke, p.StrokeWidth),
				Command{
					Op: OpText, Role: RoleCell, Floor: i, Apartment: j,
					X: cell.CenterX(), Y: cell.CenterY() + textBaseline,
					Color: p.CellText, Text: apt.String(), FontSize: p.CellFontSize, Bold: true,
				},
			)
		}
	}
	return d
}

func rectCmd(op Op, role Role, floor, apt int, r Rect, color string, lw float64) Command {
	return Command{
		Op: op, Role: role, Floor: floor, Apartment: apt,
		X: r.X, Y: r.Y, W: r.W, H: r.H,
		Color: color, LineWidth: lw,
	}
}
