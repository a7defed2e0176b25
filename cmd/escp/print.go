package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	escp "github.com/leaderiop/escp-layout"
	"github.com/leaderiop/escp-layout/dsl"
	"github.com/leaderiop/escp-layout/printer"
)

func printCmd(a *app) *cobra.Command {
	var skipStatusCheck bool

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Render a markup file and send it to the printer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			dev, err := printer.OpenDevice(a.cfg.Device.Path)
			if err != nil {
				return err
			}
			defer dev.Close()

			p := printer.New(dev, dev,
				printer.WithMaxGraphicsWidth(a.cfg.Device.MaxGraphicsWidth),
				printer.WithLogger(a.log),
			)

			if !skipStatusCheck {
				status, err := p.QueryStatus(a.cfg.Device.StatusTimeout())
				if err != nil {
					return errors.Wrap(err, "query printer status")
				}
				if !status.Ready() {
					return errors.Errorf("printer not ready: online=%t paper_out=%t error=%t",
						status.Online, status.PaperOut, status.Error)
				}
			}

			out := doc.Render()
			a.log.Info("sending document", "pages", doc.PageCount(), "bytes", len(out))
			return p.Send(out)
		},
	}

	cmd.Flags().BoolVar(&skipStatusCheck, "no-status-check", false, "Send without querying printer status first")
	return cmd
}

func parseFile(path string) (escp.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return escp.Document{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return dsl.ParseReader(path, f)
}
