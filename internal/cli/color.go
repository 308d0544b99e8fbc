package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/artsign/pkg/config"
	"github.com/matzehuels/artsign/pkg/signature"
)

// colorCommand creates the color command, which converts a packed RGBA
// integer to the hex color written into the signature style.
func (c *CLI) colorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "color [packed]",
		Short: "Convert a packed RGBA color to #RRGGBB",
		Long: `Convert a packed 32-bit RGBA color to the #RRGGBB form used in the
signature style. The alpha byte is dropped.

Negative values are reinterpreted as unsigned 32-bit; pass them after "--".`,
		Example: `  artsign color 4278190335      # #FF0000
  artsign color 0x336699FF      # #336699
  artsign color -- -1           # #FFFFFF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packed, err := config.ParseColor(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signature.ToHexColor(packed))
			return nil
		},
	}
}
