// Package commands implements the qrgen command line: offline export,
// URL validation and palette listing.
package commands

import (
	"github.com/spf13/cobra"

	"qrgen/internal/engine/qr"
	"qrgen/internal/platform/config"
	"qrgen/internal/pkg/logger"
)

var (
	configPath string
	cfg        *config.Config
	svc        *qr.Service
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qrgen",
		Short:         "Generate QR codes for URLs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(config.LoggingConfig{Level: cfg.Logging.Level, Format: "text"})

			svc, err = qr.NewService(qr.Options{
				Size:          cfg.QR.Size,
				ElementID:     cfg.QR.ElementID,
				Filename:      cfg.QR.Filename,
				VerifyExports: true,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "path to config file")

	root.AddCommand(exportCmd(), validateCmd(), paletteCmd())
	return root
}
