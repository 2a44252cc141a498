// Package fonts provides the built-in faces used to rasterize diagram text.
//
// The faces come from the Go font family bundled with golang.org/x/image,
// which covers the Turkish letters used in floor labels (ı, ş, ğ, İ).
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	parseOnce     sync.Once
	regular, bold *opentype.Font
	parseErr      error
)

func parse() {
	if regular, parseErr = opentype.Parse(goregular.TTF); parseErr != nil {
		return
	}
	bold, parseErr = opentype.Parse(gobold.TTF)
}

// Face returns a new face at size points (72 DPI, so one point is one drawing
// unit). Faces are not safe for concurrent use; the parsed fonts behind them
// are shared.
func Face(size float64, isBold bool) (font.Face, error) {
	parseOnce.Do(parse)
	if parseErr != nil {
		return nil, parseErr
	}
	src := regular
	if isBold {
		src = bold
	}
	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
