package sink

import (
	"context"
	"time"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/observability"
	"github.com/matzehuels/daireno/pkg/render/diagram"
)

// Supported output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
)

// Formats lists every format accepted by [Render].
var Formats = []string{FormatSVG, FormatJSON, FormatPNG}

var contentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatJSON: "application/json",
	FormatPNG:  "image/png",
}

// Options carries per-format options for [Render].
type Options struct {
	SVG  []SVGOption
	JSON []JSONOption
	PNG  []PNGOption
}

// Render encodes d in the named format.
func Render(ctx context.Context, format string, d diagram.Drawing, opts Options) ([]byte, error) {
	if err := errors.ValidateFormat(format, Formats); err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = RenderSVG(d, opts.SVG...)
	case FormatJSON:
		data, err = RenderJSON(d, opts.JSON...)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	case FormatPNG:
		data, err = RenderPNG(d, opts.PNG...)
	}
	observability.Render().OnRender(ctx, format, len(data), time.Since(start), err)
	return data, err
}

// ContentType returns the MIME type of a format, or an empty string.
func ContentType(format string) string {
	return contentTypes[format]
}
