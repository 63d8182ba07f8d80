package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qrgen/internal/engine/qr"
)

func exportCmd() *cobra.Command {
	var (
		rawURL string
		color  string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the QR code for a URL as a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc.NewSession()
			s.SetURL(rawURL)
			if err := s.Err(); err != nil {
				return fmt.Errorf("%q: %w", rawURL, err)
			}
			if color != "" {
				if _, err := s.SelectColor(qr.Color(color)); err != nil {
					return err
				}
			}

			export, err := s.Export(cmd.Context())
			if err != nil {
				return err
			}

			if out == "" {
				out = export.Filename
			}
			if err := os.WriteFile(out, export.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d, %s)\n", out, export.Width, export.Height, s.Color())
			return nil
		},
	}

	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "URL to encode")
	cmd.Flags().StringVarP(&color, "color", "c", "", "foreground color from the palette")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default qr-code.png)")
	cmd.MarkFlagRequired("url")
	return cmd
}
