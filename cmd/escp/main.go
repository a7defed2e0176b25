// Command escp renders document markup for an ESC/P dot-matrix printer:
// preview the cell grid in the terminal, query printer status, or send
// the rendered byte stream to the device.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leaderiop/escp-layout/internal/config"
)

// app carries the resolved configuration into subcommands.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

func main() {
	var (
		configPath string
		debug      bool
	)
	a := &app{}

	root := &cobra.Command{
		Use:   "escp",
		Short: "Layout engine and driver for ESC/P dot-matrix printers",
		Example: `  # Preview a document in the terminal
  escp preview invoice.escp

  # Send it to the printer
  escp print invoice.escp

  # Check whether the printer is ready
  escp status`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(a.log)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file path")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	root.AddCommand(printCmd(a), previewCmd(a), statusCmd(a))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
