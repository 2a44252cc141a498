package sink

import (
	"bytes"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/fonts"
	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	fontPath   string
	background string
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithFontFace loads a TrueType font from path for all text. Without it the
// built-in Go fonts are used. A custom font has no bold variant.
func WithFontFace(path string) PNGOption {
	return func(r *pngRenderer) { r.fontPath = path }
}

// WithPNGBackground sets the fill painted before drawing. An empty color
// leaves the image transparent.
func WithPNGBackground(color string) PNGOption {
	return func(r *pngRenderer) { r.background = color }
}

// RenderPNG rasterizes d.
func RenderPNG(d diagram.Drawing, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, background: styles.Default().Background}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", r.scale)
	}

	w := int(math.Ceil(d.Width * r.scale))
	h := int(math.Ceil(d.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot rasterize an empty drawing (%dx%d)", w, h)
	}

	dc := gg.NewContext(w, h)
	if r.background != "" {
		dc.SetHexColor(r.background)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)

	faces := map[faceKey]font.Face{}
	for _, c := range d.Commands {
		switch c.Op {
		case diagram.OpFillRect:
			if d.Shadow != nil {
				dc.DrawRectangle(c.X+d.Shadow.OffsetX, c.Y+d.Shadow.OffsetY, c.W, c.H)
				dc.SetRGBA(0, 0, 0, d.Shadow.Opacity)
				dc.Fill()
			}
			dc.DrawRectangle(c.X, c.Y, c.W, c.H)
			dc.SetHexColor(c.Color)
			dc.Fill()
		case diagram.OpStrokeRect:
			dc.DrawRectangle(c.X, c.Y, c.W, c.H)
			dc.SetLineWidth(c.LineWidth)
			dc.SetHexColor(c.Color)
			dc.Stroke()
		case diagram.OpText:
			key := faceKey{c.FontSize, c.Bold && r.fontPath == ""}
			face, ok := faces[key]
			if !ok {
				var err error
				if face, err = r.loadFace(key); err != nil {
					return nil, err
				}
				faces[key] = face
			}
			dc.SetFontFace(face)
			dc.SetHexColor(c.Color)
			dc.DrawStringAnchored(c.Text, c.X, c.Y, 0.5, 0)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

type faceKey struct {
	size float64
	bold bool
}

func (r *pngRenderer) loadFace(k faceKey) (font.Face, error) {
	if r.fontPath != "" {
		face, err := gg.LoadFontFace(r.fontPath, k.size)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load font %s", r.fontPath)
		}
		return face, nil
	}
	face, err := fonts.Face(k.size, k.bold)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load built-in font")
	}
	return face, nil
}
