package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/artsign/pkg/config"
	"github.com/matzehuels/artsign/pkg/query"
	"github.com/matzehuels/artsign/pkg/svgdoc"
)

type queryOpts struct {
	configPath   string
	selectID     string
	backend      string
	inkscapePath string
	asJSON       bool
	noCache      bool
}

// boundsJSON is the --json output of the query command.
type boundsJSON struct {
	Target string  `json:"target"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// queryCommand creates the query command, which prints the bounding box the
// stamp command would place against.
func (c *CLI) queryCommand() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query [file.svg]",
		Short: "Print the bounding box of the canvas or an element",
		Example: `  artsign query drawing.svg
  artsign query drawing.svg --select frame --query inkscape --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runQuery(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/artsign/config.toml)")
	f.StringVar(&opts.selectID, "select", "", "element id (default: whole canvas)")
	f.StringVar(&opts.backend, "query", query.BackendGeometry, "bounds query backend: geometry, inkscape")
	f.StringVar(&opts.inkscapePath, "inkscape", "", "path to the inkscape binary")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not cache inkscape bounds queries")

	return cmd
}

func (c *CLI) runQuery(cmd *cobra.Command, input string, opts queryOpts) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
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
	bbox, err := query.Measure(ctx, q, doc, opts.selectID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(boundsJSON{
			Target: targetName(opts.selectID),
			Left:   bbox.Left,
			Right:  bbox.Right,
			Top:    bbox.Top,
			Bottom: bbox.Bottom,
			Width:  bbox.Width(),
			Height: bbox.Height(),
		})
	}

	fmt.Fprintln(out, StyleTitle.Render(targetName(opts.selectID)))
	printKeyValue(out, "left", formatFloat(bbox.Left))
	printKeyValue(out, "right", formatFloat(bbox.Right))
	printKeyValue(out, "top", formatFloat(bbox.Top))
	printKeyValue(out, "bottom", formatFloat(bbox.Bottom))
	printKeyValue(out, "size", formatFloat(bbox.Width())+" × "+formatFloat(bbox.Height()))
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
