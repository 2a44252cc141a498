// Package styles holds the visual parameters of the section diagram.
package styles

// Shadow describes a soft drop shadow applied behind the whole drawing.
type Shadow struct {
	Color   string  // CSS colour, e.g. "rgba(0, 0, 0, 0.1)"
	Opacity float64 // Flood opacity for SVG filters
	Blur    float64 // Blur radius
	OffsetX float64
	OffsetY float64
}

// Palette defines colours, stroke widths and fonts for rendering a section.
type Palette struct {
	NormalStroke      string // Band and cell outline on normal floors
	BasementStroke    string // Band and cell outline on basements
	NormalLabelFill   string // Label column background on normal floors
	BasementLabelFill string // Label column background on basements
	LabelBorder       string // Label column outline
	LabelText         string
	CellFill          string
	CellText          string
	Background        string // Raster background; SVG output stays transparent

	StrokeWidth float64

	FontFamily     string
	LabelFontSize  float64
	GroundFontSize float64 // Ground floor label, drawn bold
	CellFontSize   float64 // Apartment numbers, drawn bold

	Shadow Shadow
}

// Default returns the standard palette.
func Default() Palette {
	return Palette{
		NormalStroke:      "#333333",
		BasementStroke:    "#666633",
		NormalLabelFill:   "#e6e6e6",
		BasementLabelFill: "#80804d",
		LabelBorder:       "#ccc",
		LabelText:         "#333",
		CellFill:          "#f5f5f5",
		CellText:          "#555",
		Background:        "#f9fafb",

		StrokeWidth: 1.5,

		FontFamily:     "Roboto, sans-serif",
		LabelFontSize:  14,
		GroundFontSize: 16,
		CellFontSize:   14,

		Shadow: Shadow{
			Color:   "rgba(0, 0, 0, 0.1)",
			Opacity: 0.1,
			Blur:    5,
			OffsetX: 2,
			OffsetY: 2,
		},
	}
}

// Stroke returns the outline colour for a floor band.
func (p Palette) Stroke(basement bool) string {
	if basement {
		return p.BasementStroke
	}
	return p.NormalStroke
}

// LabelFill returns the label column background for a floor.
func (p Palette) LabelFill(basement bool) string {
	if basement {
		return p.BasementLabelFill
	}
	return p.NormalLabelFill
}
