package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/leaderiop/escp-layout/printer"
)

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Query and display printer status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := printer.OpenDevice(a.cfg.Device.Path)
			if err != nil {
				return err
			}
			defer dev.Close()

			p := printer.New(dev, dev, printer.WithLogger(a.log))
			status, err := p.QueryStatus(a.cfg.Device.StatusTimeout())
			if err != nil {
				return errors.Wrap(err, "query printer status")
			}

			fmt.Printf("device:    %s\n", dev.Path())
			fmt.Printf("online:    %t\n", status.Online)
			fmt.Printf("paper out: %t\n", status.PaperOut)
			fmt.Printf("error:     %t\n", status.Error)
			if status.Ready() {
				fmt.Println("ready to print")
			}
			return nil
		},
	}
}
