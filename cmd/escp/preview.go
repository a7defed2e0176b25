package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	escp "github.com/leaderiop/escp-layout"
)

var (
	boldStyle      = lipgloss.NewStyle().Bold(true)
	underlineStyle = lipgloss.NewStyle().Underline(true)
	bothStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	borderStyle    = lipgloss.NewStyle().Faint(true)
)

func previewCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render a markup file and show the page grid in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			if raw {
				dumper := hex.Dumper(os.Stdout)
				defer dumper.Close()
				_, err := dumper.Write(doc.Render())
				return err
			}

			for i, page := range doc.Pages() {
				fmt.Printf("page %d of %d\n", i+1, doc.PageCount())
				printPage(page)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Hex-dump the raw byte stream instead of the grid")
	return cmd
}

// printPage draws one page as a bordered grid, styling bold and
// underlined cells the way the printer would render them.
func printPage(page escp.Page) {
	rule := borderStyle.Render("+" + strings.Repeat("-", escp.PageWidth) + "+")
	edge := borderStyle.Render("|")

	fmt.Println(rule)
	for y := 0; y < escp.PageHeight; y++ {
		var sb strings.Builder
		sb.WriteString(edge)
		for x := 0; x < escp.PageWidth; x++ {
			cell, _ := page.CellAt(x, y)
			sb.WriteString(styleFor(cell.Style()).Render(string(cell.Rune())))
		}
		sb.WriteString(edge)
		fmt.Println(sb.String())
	}
	fmt.Println(rule)
}

func styleFor(style escp.StyleFlags) lipgloss.Style {
	switch {
	case style.Bold() && style.Underline():
		return bothStyle
	case style.Bold():
		return boldStyle
	case style.Underline():
		return underlineStyle
	default:
		return lipgloss.NewStyle()
	}
}
