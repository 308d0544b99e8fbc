package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/artsign/pkg/config"
	"github.com/matzehuels/artsign/pkg/errors"
	"github.com/matzehuels/artsign/pkg/fonts"
	"github.com/matzehuels/artsign/pkg/observability"
	"github.com/matzehuels/artsign/pkg/query"
	"github.com/matzehuels/artsign/pkg/render"
	"github.com/matzehuels/artsign/pkg/signature"
	"github.com/matzehuels/artsign/pkg/svgdoc"
)

const (
	stdioPath      = "-"
	defaultScale   = 2.0 // PNG scale factor
	imageWidthFrac = 0.2 // default image width as a fraction of the target box
)

// stampOpts holds the command-line flags for the stamp command.
type stampOpts struct {
	configPath   string
	output       string
	artist       string
	preset       string
	social       string
	fontFamily   string
	fontSize     int
	color        string
	selectID     string
	backend      string
	inkscapePath string
	image        string
	imageWidth   float64
	label        string
	formats      string
	scale        float64
	pick         bool
	noCache      bool
}

// stampCommand creates the stamp command, the main entry point of artsign.
func (c *CLI) stampCommand() *cobra.Command {
	opts := stampOpts{scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "stamp [file.svg]",
		Short: "Add a signature layer to an SVG document",
		Long: `Add a signature layer to an SVG document.

The signature is placed relative to the canvas, or to the element named by
--select, at one of the presets TopLeft, TopRight, BottomLeft, BottomRight,
or Center. Unknown presets fall back to BottomRight.

Use "-" as the file to read from stdin; output then goes to stdout unless -o
is given.`,
		Example: `  artsign stamp drawing.svg --artist "Jane Doe" --place TopLeft
  artsign stamp drawing.svg --social Instagram --color "#336699" -o signed.svg
  artsign stamp drawing.svg --select frame --query inkscape --format svg,png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStamp(cmd, args[0], &opts)
		},
	}

	d := signature.DefaultOptions()
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/artsign/config.toml)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default <input>-signed.svg, \"-\" for stdout)")
	f.StringVarP(&opts.artist, "artist", "a", d.ArtistName, "artist name")
	f.StringVarP(&opts.preset, "place", "p", d.Preset.String(), "placement preset: "+presetList())
	f.StringVarP(&opts.social, "social", "s", d.SocialTag.String(), "social tag: "+socialList())
	f.StringVar(&opts.fontFamily, "font-family", d.FontFamily, "font family or alias: "+strings.Join(fonts.Aliases(), ", "))
	f.IntVar(&opts.fontSize, "font-size", d.FontSizePx, "font size in px (clamped to 10-32)")
	f.StringVar(&opts.color, "color", "0", "text color: packed RGBA integer, 0xRRGGBBAA, or #RRGGBB")
	f.StringVar(&opts.selectID, "select", "", "id of the element to sign next to (default: whole canvas)")
	f.StringVar(&opts.backend, "query", query.BackendGeometry, "bounds query backend: geometry, inkscape")
	f.StringVar(&opts.inkscapePath, "inkscape", "", "path to the inkscape binary")
	f.StringVar(&opts.image, "image", "", "image file to embed above the signature (png, jpeg, gif, webp)")
	f.Float64Var(&opts.imageWidth, "image-width", 0, "embedded image width in user units (default 20% of target width)")
	f.StringVar(&opts.label, "label", "", "layer label (default \"<artist> Signature\")")
	f.StringVarP(&opts.formats, "format", "f", render.FormatSVG, "output format(s): svg, png, pdf (comma-separated)")
	f.Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	f.BoolVar(&opts.pick, "pick", false, "choose the preset interactively")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not cache inkscape bounds queries")

	return cmd
}

func (c *CLI) runStamp(cmd *cobra.Command, input string, opts *stampOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	start := time.Now()

	formats := parseFormats(opts.formats)
	if err := render.ValidateFormats(formats); err != nil {
		return err
	}
	if err := errors.ValidatePath(input); err != nil {
		return err
	}
	if opts.pick && input == stdioPath {
		return errors.New(errors.ErrCodeInvalidInput, "--pick needs the terminal; pass a file instead of stdin")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	sig, err := resolveOptions(cmd, cfg, opts)
	if err != nil {
		return err
	}
	if opts.pick {
		picked, ok, err := pickPreset(cmd.InOrStdin(), cmd.ErrOrStderr(), sig)
		if err != nil {
			return err
		}
		if !ok {
			return context.Canceled
		}
		sig.Preset = picked
	}
	backend, inkscapePath := opts.backend, opts.inkscapePath
	if !cmd.Flags().Changed("query") && cfg.QueryBackend != "" {
		backend = cfg.QueryBackend
	}
	if inkscapePath == "" {
		inkscapePath = cfg.InkscapePath
	}

	src, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	doc, err := svgdoc.ParseBytes(src)
	if err != nil {
		return err
	}

	q, err := c.newQuerier(backend, inkscapePath, opts.noCache || !cfg.CacheEnabled())
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	bbox, err := query.Measure(ctx, q, doc, opts.selectID)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Measured %s", targetName(opts.selectID)))
	logger.Debug("bounds", "left", bbox.Left, "right", bbox.Right, "top", bbox.Top, "bottom", bbox.Bottom)

	placement := signature.Compute(bbox, sig)
	label := opts.label
	if label == "" {
		label = sig.ArtistName + " Signature"
	}
	layer := doc.NewLayer(label)
	layer.AddText(placement)
	logger.Debug("placed", "text", placement.Text, "x", placement.X, "y", placement.Y, "style", placement.Style.Declaration())

	if opts.image != "" {
		if err := addImage(layer, placement, bbox, opts); err != nil {
			return err
		}
	}

	output := outputPath(opts.output, input)
	outputs, err := writeOutputs(ctx, cmd.OutOrStdout(), doc.Bytes(), output, formats, opts.scale)
	observability.Stamp().OnStampComplete(ctx, sig.Preset.String(), output, time.Since(start), err)
	if err != nil {
		return err
	}

	if output != stdioPath {
		w := cmd.ErrOrStderr()
		printSuccess(w, "Signed %s at %s", StyleValue.Render(placement.Text), sig.Preset)
		for _, o := range outputs {
			printFile(w, o)
		}
	}
	return nil
}

// resolveOptions layers built-in defaults, the config file, and explicitly
// set flags, in that order of increasing precedence.
func resolveOptions(cmd *cobra.Command, cfg config.Config, opts *stampOpts) (signature.Options, error) {
	sig := signature.DefaultOptions()
	cfg.Apply(&sig)

	w := cmd.ErrOrStderr()
	flags := cmd.Flags()
	if flags.Changed("artist") {
		sig.ArtistName = opts.artist
	}
	if flags.Changed("place") {
		warnUnknownPreset(w, opts.preset, "")
		sig.Preset = signature.ParsePreset(opts.preset)
	} else if cfg.Preset != "" {
		warnUnknownPreset(w, cfg.Preset, " in config")
	}
	if flags.Changed("social") {
		warnUnknownSocialTag(w, opts.social, "")
		sig.SocialTag = signature.ParseSocialTag(opts.social)
	} else if cfg.Social != "" {
		warnUnknownSocialTag(w, cfg.Social, " in config")
	}
	if flags.Changed("font-family") {
		sig.FontFamily = opts.fontFamily
	}
	if flags.Changed("font-size") {
		sig.FontSizePx = opts.fontSize
	}
	if flags.Changed("color") {
		packed, err := config.ParseColor(opts.color)
		if err != nil {
			return sig, err
		}
		sig.PackedColor = packed
	}

	if err := errors.ValidateArtistName(sig.ArtistName); err != nil {
		return sig, err
	}
	if strings.TrimSpace(sig.FontFamily) == "" {
		return sig, errors.New(errors.ErrCodeInvalidInput, "font family cannot be empty")
	}
	sig.FontFamily = fonts.Resolve(sig.FontFamily)
	return sig, nil
}

func warnUnknownPreset(w io.Writer, name, source string) {
	if !signature.IsPreset(name) {
		printWarning(w, "unknown preset %q%s, using %s", name, source, signature.BottomRight)
	}
}

func warnUnknownSocialTag(w io.Writer, name, source string) {
	if signature.ParseSocialTag(name).String() != name {
		printWarning(w, "unknown social tag %q%s, using %s", name, source, signature.None)
	}
}

func addImage(layer *svgdoc.Layer, p signature.Placement, bbox signature.BoundingBox, opts *stampOpts) error {
	data, err := os.ReadFile(opts.image)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read image %s", opts.image)
	}
	info, err := svgdoc.InspectImage(data)
	if err != nil {
		return err
	}
	w := opts.imageWidth
	if w <= 0 {
		w = bbox.Width() * imageWidthFrac
	}
	h := w * float64(info.Height) / float64(info.Width)
	_, err = layer.AddImage(data, p.ImageBox(w, h))
	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == stdioPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return data, nil
}

// outputPath derives the SVG output path. Stdin input defaults to stdout.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	if input == stdioPath {
		return stdioPath
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + outputSuffix + ".svg"
}

// writeOutputs writes the SVG and any converted formats next to it and
// returns the written paths. Only SVG can go to stdout.
func writeOutputs(ctx context.Context, stdout io.Writer, svg []byte, output string, formats []string, scale float64) ([]string, error) {
	if output == stdioPath {
		if len(formats) != 1 || formats[0] != render.FormatSVG {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "only svg can be written to stdout")
		}
		_, err := stdout.Write(svg)
		return nil, err
	}
	if err := errors.ValidatePath(output); err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(output, filepath.Ext(output))
	var written []string
	for _, format := range formats {
		path := output
		if format != render.FormatSVG {
			path = base + "." + format
		}
		data, err := render.Convert(ctx, svg, format, scale)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		written = append(written, path)
	}
	return written, nil
}

// parseFormats parses the --format flag into a slice, defaulting to svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func presetList() string {
	names := make([]string, 0, 5)
	for _, p := range signature.Presets() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

func socialList() string {
	names := make([]string, 0, 7)
	for _, t := range signature.SocialTags() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
