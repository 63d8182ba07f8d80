package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qrgen/internal/engine/qr"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <url>",
		Short: "Check whether a URL can be turned into a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc.NewSession()
			if state := s.SetURL(args[0]); state != qr.StateValid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", state)
				return fmt.Errorf("%q: %w", args[0], qr.ErrInvalidURL)
			}

			// parsing is not enough, the text must also fit a level H symbol
			if _, err := s.Preview(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", qr.StateInvalid)
				return fmt.Errorf("%q: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", qr.StateValid)
			return nil
		},
	}
}
