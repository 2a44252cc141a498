package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/daireno/pkg/config"
	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	setupFlags
	sets    []string // FLOOR=COUNT apartment count edits
	labels  []string // FLOOR:APT=TEXT label edits
	formats []string // output formats: "svg", "json", "png"
	output  string   // output file path, base path for several formats, or "-" for stdout
	scale   float64  // PNG scale factor
	font    string   // TrueType font for PNG text
	summary bool     // print the floor table
}

// renderCommand creates the render command for writing a section diagram.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{summary: true}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a building section to SVG, JSON or PNG",
		Long: `Render a building section to SVG, JSON or PNG.

Edits are applied in two passes: first every --set, then every --label.
Floor indices are stored order, 0 being the deepest basement; run once
without edits to see the index of every floor.`,
		Example: `  daireno render --floors 5 --basements 2 --apartments 4
  daireno render --floors 3 --set 1=6 --label 2:0=Dükkan -f svg,png -o blok-a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "set a floor's apartment count: FLOOR=COUNT (repeatable)")
	cmd.Flags().StringArrayVar(&opts.labels, "label", nil, "set an apartment label: FLOOR:APT=TEXT (repeatable)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, base path for several formats, or - for stdout")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default from config, 2)")
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType font file for PNG text")
	cmd.Flags().BoolVar(&opts.summary, "summary", opts.summary, "print the floor table")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{sink.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, sink.Formats); err != nil {
			return err
		}
	}
	return nil
}

// outputPaths maps each format to its output file. A single format writes to
// output as given; several formats share output as a base path with the
// known extension stripped.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = appName
	} else if ext := strings.TrimPrefix(filepath.Ext(base), "."); slices.Contains(sink.Formats, ext) {
		base = strings.TrimSuffix(base, "."+ext)
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// countEdit is a parsed --set value.
type countEdit struct {
	floor int
	count string
}

// labelEdit is a parsed --label value.
type labelEdit struct {
	floor, apartment int
	label            string
}

func parseCountEdit(s string) (countEdit, error) {
	floor, count, ok := strings.Cut(s, "=")
	if !ok {
		return countEdit{}, errors.New(errors.ErrCodeInvalidInput, "--set %q: want FLOOR=COUNT", s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(floor))
	if err != nil {
		return countEdit{}, errors.New(errors.ErrCodeInvalidInput, "--set %q: floor must be an index", s)
	}
	return countEdit{floor: i, count: count}, nil
}

func parseLabelEdit(s string) (labelEdit, error) {
	target, label, ok := strings.Cut(s, "=")
	if !ok {
		return labelEdit{}, errors.New(errors.ErrCodeInvalidInput, "--label %q: want FLOOR:APT=TEXT", s)
	}
	floor, apt, ok := strings.Cut(target, ":")
	if !ok {
		return labelEdit{}, errors.New(errors.ErrCodeInvalidInput, "--label %q: want FLOOR:APT=TEXT", s)
	}
	i, err1 := strconv.Atoi(strings.TrimSpace(floor))
	j, err2 := strconv.Atoi(strings.TrimSpace(apt))
	if err1 != nil || err2 != nil {
		return labelEdit{}, errors.New(errors.ErrCodeInvalidInput, "--label %q: floor and apartment must be indices", s)
	}
	return labelEdit{floor: i, apartment: j, label: label}, nil
}

// applyEdits drives the editor the way a user would: click the target, then
// answer the prompt. Unlike interactive prompts, a rejected answer is an error.
func applyEdits(ctx context.Context, e *editor.Editor, sets, labels []string) error {
	logger := loggerFromContext(ctx)

	for _, raw := range sets {
		ce, err := parseCountEdit(raw)
		if err != nil {
			return err
		}
		p, ok := e.ClickFloor(ce.floor)
		if !ok {
			return errors.New(errors.ErrCodeInvalidTarget, "--set %q: no floor %d", raw, ce.floor)
		}
		if err := e.Apply(ctx, p, ce.count); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "--set %q", raw)
		}
		logger.Debug("set apartment count", "floor", ce.floor, "count", ce.count)
	}

	for _, raw := range labels {
		le, err := parseLabelEdit(raw)
		if err != nil {
			return err
		}
		p, ok := e.ClickApartment(le.floor, le.apartment)
		if !ok {
			return errors.New(errors.ErrCodeInvalidTarget, "--label %q: no apartment %d on floor %d", raw, le.apartment, le.floor)
		}
		if err := e.Apply(ctx, p, le.label); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "--label %q", raw)
		}
		logger.Debug("set label", "floor", le.floor, "apartment", le.apartment, "label", le.label)
	}
	return nil
}

// sinkOptions builds per-format options from flags and config.
func sinkOptions(cfg config.Config, scale float64, font string) sink.Options {
	if scale <= 0 {
		scale = cfg.Output.PNGScale
	}
	if font == "" {
		font = cfg.Output.FontPath
	}
	png := []sink.PNGOption{sink.WithScale(scale)}
	if font != "" {
		png = append(png, sink.WithFontFace(font))
	}
	return sink.Options{PNG: png}
}

// runRender generates the section, applies flag edits and writes every
// requested format.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	setup := opts.setup(c.cfg)
	e := c.newEditor(&opts.setupFlags)
	if err := e.Generate(ctx, setup); err != nil {
		return err
	}
	logger.Infof("Generated %d floors, %d apartments", len(e.Section().Floors), e.Section().TotalApartments())

	if err := applyEdits(ctx, e, opts.sets, opts.labels); err != nil {
		return err
	}

	so := sinkOptions(c.cfg, opts.scale, opts.font)
	so.JSON = append(so.JSON, sink.WithJSONSection(e.Section()))
	d := e.Drawing()

	if opts.output == "-" {
		if len(opts.formats) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "stdout output takes exactly one format, got %d", len(opts.formats))
		}
		data, err := sink.Render(ctx, opts.formats[0], d, so)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	paths := outputPaths(opts.output, opts.formats)
	for _, format := range opts.formats {
		data, err := sink.Render(ctx, format, d, so)
		if err != nil {
			return err
		}
		if err := os.WriteFile(paths[format], data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", paths[format])
		}
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(opts.formats)))

	if opts.summary {
		fmt.Println(sectionTable(e.Section()))
	}
	printSuccess("Rendered %s", StyleTitle.Render(fmt.Sprintf("%d floors", len(e.Section().Floors))))
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	return nil
}
