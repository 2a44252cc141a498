package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/observability"
	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/section"
)

func testDrawing(t *testing.T) (section.Section, diagram.Drawing) {
	t.Helper()
	s, err := section.Generate(2, 1, 2)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	s, err = section.Relabel(s, 2, 0, "A<1>")
	if err != nil {
		t.Fatalf("Relabel() error: %v", err)
	}
	return s, diagram.Render(s, diagram.DefaultWidth)
}

func TestRenderSVG(t *testing.T) {
	_, d := testDrawing(t)
	svg := string(RenderSVG(d))

	for _, want := range []string{
		`viewBox="0 0 450.00 150.00"`,
		`font-family="Roboto, sans-serif"`,
		`<feDropShadow dx="2.00" dy="2.00"`,
		`filter="url(#daireno-shadow)"`,
		`stroke="#666633"`,
		`fill="#80804d"`,
		`data-role="cell" data-floor="1" data-apartment="1"`,
		`data-role="label" data-floor="0"`,
		`>Zemin Kat</text>`,
		`>1. Bodrum Kat</text>`,
		`>A&lt;1&gt;</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG should end with closing tag")
	}
	if strings.Contains(svg, "<style>") {
		t.Error("non-interactive SVG should not carry interaction CSS")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	s, _ := section.Generate(1, 0, 1)
	d := diagram.Render(s, 450, diagram.WithShadow(false))

	svg := string(RenderSVG(d, WithID("diagram"), WithInteractive(), WithBackground("#fff")))
	if !strings.Contains(svg, `id="diagram"`) {
		t.Error("missing id attribute")
	}
	if !strings.Contains(svg, "cursor: pointer") {
		t.Error("missing interaction CSS")
	}
	if !strings.Contains(svg, `fill="#fff"`) {
		t.Error("missing background")
	}
	if strings.Contains(svg, "feDropShadow") {
		t.Error("shadow filter should be absent without a shadow")
	}
}

func TestRenderJSON(t *testing.T) {
	s, d := testDrawing(t)

	data, err := RenderJSON(d, WithJSONSection(s))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Width != 450 || out.Height != 150 {
		t.Errorf("size = %vx%v, want 450x150", out.Width, out.Height)
	}
	if len(out.Commands) != len(d.Commands) {
		t.Errorf("commands = %d, want %d", len(out.Commands), len(d.Commands))
	}
	if out.Section == nil || len(out.Section.Floors) != 3 {
		t.Fatalf("section = %+v", out.Section)
	}
	if got := out.Section.Floors[2].Apartments[0].String(); got != "A<1>" {
		t.Errorf("custom label = %q, want A<1>", got)
	}
	if !strings.Contains(string(data), `"apartments": [`) {
		t.Error("expected indented output")
	}
}

func TestRenderJSONWithoutSection(t *testing.T) {
	data, err := RenderJSON(diagram.Drawing{})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if strings.Contains(string(data), `"section"`) {
		t.Error("section should be omitted")
	}
	if !strings.Contains(string(data), `"commands": []`) {
		t.Errorf("commands should encode as empty array:\n%s", data)
	}
}

func TestRenderPNG(t *testing.T) {
	_, d := testDrawing(t)

	data, err := RenderPNG(d, WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 450 || b.Dy() != 150 {
		t.Errorf("bounds = %v, want 450x150", b)
	}

	data, err = RenderPNG(d)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, _ = png.Decode(bytes.NewReader(data))
	if b := img.Bounds(); b.Dx() != 900 || b.Dy() != 300 {
		t.Errorf("default scale bounds = %v, want 900x300", b)
	}
}

func TestRenderPNGErrors(t *testing.T) {
	_, d := testDrawing(t)

	tests := []struct {
		name string
		d    diagram.Drawing
		opts []PNGOption
		code errors.Code
	}{
		{"zero scale", d, []PNGOption{WithScale(0)}, errors.ErrCodeInvalidInput},
		{"empty drawing", diagram.Drawing{}, nil, errors.ErrCodeInvalidInput},
		{"missing font", d, []PNGOption{WithFontFace("/nonexistent/font.ttf")}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderPNG(tt.d, tt.opts...)
			if !errors.Is(err, tt.code) {
				t.Errorf("RenderPNG() error = %v, want %s", err, tt.code)
			}
		})
	}
}

type recordingHooks struct {
	observability.NoopRenderHooks
	formats []string
	errs    []error
}

func (h *recordingHooks) OnRender(_ context.Context, format string, _ int, _ time.Duration, err error) {
	h.formats = append(h.formats, format)
	h.errs = append(h.errs, err)
}

func TestRenderDispatch(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetRenderHooks(hooks)
	defer observability.Reset()

	_, d := testDrawing(t)
	ctx := context.Background()

	for _, format := range Formats {
		data, err := Render(ctx, format, d, Options{PNG: []PNGOption{WithScale(1)}})
		if err != nil {
			t.Fatalf("Render(%s) error: %v", format, err)
		}
		if len(data) == 0 {
			t.Errorf("Render(%s) returned no data", format)
		}
		if ContentType(format) == "" {
			t.Errorf("ContentType(%s) is empty", format)
		}
	}
	if strings.Join(hooks.formats, ",") != "svg,json,png" {
		t.Errorf("hook formats = %v", hooks.formats)
	}

	if _, err := Render(ctx, "pdf", d, Options{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(pdf) error = %v, want INVALID_FORMAT", err)
	}
	if len(hooks.formats) != 3 {
		t.Error("rejected formats should not reach the hooks")
	}
}
