package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/drawing"
	"github.com/boxforge/boxforge/pkg/errors"
	"github.com/boxforge/boxforge/pkg/preset"
	"github.com/boxforge/boxforge/pkg/sink"
)

// generateFlags holds every generate flag in its raw form. Enum flags stay
// strings until buildSpec parses them, so error messages can name the flag.
type generateFlags struct {
	spec box.Spec

	symmetry  string
	tabPolicy string
	tabType   string
	boxType   string
	keying    string
	layout    string

	presetName string
	presetFile string

	formats  string
	output   string
	hairline bool
	stroke   string
	width    float64
}

// generateCommand creates the generate command, the main entry point of the
// tool.
func (c *CLI) generateCommand() *cobra.Command {
	f := &generateFlags{spec: box.DefaultSpec(), stroke: "#000000", width: 0.1}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate cut-ready panels for one box",
		Long: `Generate flat panel outlines for a finger-jointed box.

Dimensions are outside measurements in millimeters unless --inside is set.
The kerf is the cutter's material loss; tabs are widened and slots narrowed
by it so joints stay tight. Presets supply a base configuration; explicit
flags always win over the preset.

Examples:

  boxforge generate --length 160 --width 100 --height 60 -o enclosure.svg
  boxforge generate --preset parts-tray --format svg,dxf -o tray
  boxforge generate --type open-top --div-l 2 --keying walls`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(f.formats)
			if err != nil {
				return err
			}
			spec, err := buildSpec(cmd, f)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), spec, formats, f)
		},
	}

	fl := cmd.Flags()
	fl.Float64VarP(&f.spec.Length, "length", "l", f.spec.Length, "box size along x (mm)")
	fl.Float64VarP(&f.spec.Width, "width", "w", f.spec.Width, "box size along y (mm)")
	fl.Float64VarP(&f.spec.Height, "height", "H", f.spec.Height, "box size along z (mm)")
	fl.BoolVar(&f.spec.Inside, "inside", f.spec.Inside, "treat dimensions as interior measurements")

	fl.Float64VarP(&f.spec.Thickness, "thickness", "t", f.spec.Thickness, "material thickness (mm)")
	fl.Float64VarP(&f.spec.Kerf, "kerf", "k", f.spec.Kerf, "cutter kerf to compensate for (mm)")
	fl.Float64Var(&f.spec.Clearance, "clearance", f.spec.Clearance, "joint clearance subtracted from the kerf compensation (mm)")

	fl.Float64Var(&f.spec.TabWidth, "tab", f.spec.TabWidth, "preferred tab width (mm)")
	fl.StringVar(&f.tabPolicy, "tab-policy", "fixed", "tab sizing: fixed, proportional")
	fl.StringVar(&f.symmetry, "symmetry", "xy", "finger pattern: xy, rotate, anti")
	fl.StringVar(&f.tabType, "tab-type", "through", "corner treatment: through, dogbone")

	fl.Float64Var(&f.spec.DimpleHeight, "dimple-height", f.spec.DimpleHeight, "press-fit dimple height, 0 disables (mm)")
	fl.Float64Var(&f.spec.DimpleTip, "dimple-tip", f.spec.DimpleTip, "press-fit dimple tip width (mm)")

	fl.StringVar(&f.boxType, "type", "full", "which faces exist: full, open-top, open-top-front, open-three, tube, two-panel")
	fl.IntVar(&f.spec.DivL, "div-l", f.spec.DivL, "dividers across the length axis")
	fl.IntVar(&f.spec.DivW, "div-w", f.spec.DivW, "dividers across the width axis")
	fl.StringVar(&f.keying, "keying", "all", "divider keying: all, walls, floor, none")

	fl.StringVar(&f.layout, "layout", "diagram", "sheet layout: diagram, three-piece, compact")
	fl.Float64Var(&f.spec.Spacing, "spacing", f.spec.Spacing, "space between panels on the sheet (mm)")

	fl.StringVar(&f.presetName, "preset", "", "start from a built-in preset (see 'boxforge presets')")
	fl.StringVar(&f.presetFile, "preset-file", "", "start from a TOML preset file")

	fl.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), dxf, json (comma-separated)")
	fl.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fl.BoolVar(&f.hairline, "hairline", false, "use a hairline stroke for laser vector cutting")
	fl.StringVar(&f.stroke, "stroke", f.stroke, "svg stroke color")
	fl.Float64Var(&f.width, "stroke-width", f.width, "svg stroke width (mm)")

	return cmd
}

// buildSpec layers defaults, preset and explicit flags into the final spec.
// Precedence, lowest to highest: built-in defaults, preset, flags.
func buildSpec(cmd *cobra.Command, f *generateFlags) (box.Spec, error) {
	spec := box.DefaultSpec()

	switch {
	case f.presetName != "" && f.presetFile != "":
		return spec, errors.New(errors.ErrCodeInvalidPreset, "--preset and --preset-file are mutually exclusive")
	case f.presetName != "":
		p, err := preset.Get(f.presetName)
		if err != nil {
			return spec, err
		}
		if spec, err = p.Apply(spec); err != nil {
			return spec, err
		}
	case f.presetFile != "":
		p, err := preset.Load(f.presetFile)
		if err != nil {
			return spec, err
		}
		if spec, err = p.Apply(spec); err != nil {
			return spec, err
		}
	}

	// Parse enum flags into the flag spec first, so a typo fails before
	// any numeric flag is copied over.
	var err error
	if f.spec.TabPolicy, err = box.ParseTabPolicy(f.tabPolicy); err != nil {
		return spec, err
	}
	if f.spec.Symmetry, err = box.ParseSymmetry(f.symmetry); err != nil {
		return spec, err
	}
	if f.spec.TabType, err = box.ParseTabType(f.tabType); err != nil {
		return spec, err
	}
	if f.spec.Type, err = box.ParseBoxType(f.boxType); err != nil {
		return spec, err
	}
	if f.spec.Keying, err = box.ParseKeyPolicy(f.keying); err != nil {
		return spec, err
	}
	if f.spec.Layout, err = box.ParseLayoutStyle(f.layout); err != nil {
		return spec, err
	}

	overrides := map[string]func(*box.Spec){
		"length":        func(s *box.Spec) { s.Length = f.spec.Length },
		"width":         func(s *box.Spec) { s.Width = f.spec.Width },
		"height":        func(s *box.Spec) { s.Height = f.spec.Height },
		"inside":        func(s *box.Spec) { s.Inside = f.spec.Inside },
		"thickness":     func(s *box.Spec) { s.Thickness = f.spec.Thickness },
		"kerf":          func(s *box.Spec) { s.Kerf = f.spec.Kerf },
		"clearance":     func(s *box.Spec) { s.Clearance = f.spec.Clearance },
		"tab":           func(s *box.Spec) { s.TabWidth = f.spec.TabWidth },
		"tab-policy":    func(s *box.Spec) { s.TabPolicy = f.spec.TabPolicy },
		"symmetry":      func(s *box.Spec) { s.Symmetry = f.spec.Symmetry },
		"tab-type":      func(s *box.Spec) { s.TabType = f.spec.TabType },
		"dimple-height": func(s *box.Spec) { s.DimpleHeight = f.spec.DimpleHeight },
		"dimple-tip":    func(s *box.Spec) { s.DimpleTip = f.spec.DimpleTip },
		"type":          func(s *box.Spec) { s.Type = f.spec.Type },
		"div-l":         func(s *box.Spec) { s.DivL = f.spec.DivL },
		"div-w":         func(s *box.Spec) { s.DivW = f.spec.DivW },
		"keying":        func(s *box.Spec) { s.Keying = f.spec.Keying },
		"layout":        func(s *box.Spec) { s.Layout = f.spec.Layout },
		"spacing":       func(s *box.Spec) { s.Spacing = f.spec.Spacing },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply(&spec)
		}
	}
	return spec, nil
}

// runGenerate runs the pipeline and writes one file per requested format.
func (c *CLI) runGenerate(ctx context.Context, spec box.Spec, formats []sink.Format, f *generateFlags) error {
	spinner := newSpinnerWithContext(ctx, "Generating panels...")
	spinner.Start()

	d, _, err := c.newGenerator().Generate(ctx, spec)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	opts := []sink.SVGOption{sink.WithStroke(f.stroke), sink.WithStrokeWidth(f.width)}
	if f.hairline {
		opts = append(opts, sink.WithHairline())
	}

	var written []string
	for _, format := range formats {
		path := outputPath(f.output, format, len(formats) > 1)
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		p := newProgress(c.Logger)
		if err := writeFile(path, d, format, opts); err != nil {
			return err
		}
		p.done(fmt.Sprintf("Wrote %s", path))
		written = append(written, path)
	}

	printSuccess("Generated %d panels", d.PanelCount())
	printDetail("sheet %.1f × %.1f mm", d.Width(), d.Height())
	for _, path := range written {
		printFile(path)
	}
	if len(formats) == 1 && formats[0] == sink.FormatSVG {
		printNextStep("Preview in a browser", "boxforge serve")
	}
	return nil
}

func writeFile(path string, d *drawing.Drawing, format sink.Format, opts []sink.SVGOption) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "creating %s", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, cerr, "closing %s", path)
		}
	}()
	return sink.Write(file, d, format, opts...)
}

// outputPath derives the file path for one format. With multiple formats
// the output flag acts as a base name and each format appends its own
// extension.
func outputPath(output string, format sink.Format, multi bool) string {
	ext := "." + string(format)
	if output == "" {
		return "box" + ext
	}
	if !multi {
		return output
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + ext
}
