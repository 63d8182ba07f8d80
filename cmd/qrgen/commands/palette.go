package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qrgen/internal/engine/qr"
)

func paletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the available foreground colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sw := range qr.Swatches(qr.DefaultColor) {
				marker := " "
				if sw.Selected {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, sw.Color)
			}
			return nil
		},
	}
}
