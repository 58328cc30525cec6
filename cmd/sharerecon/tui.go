package main

import (
	"github.com/spf13/cobra"

	"github.com/vitalvas/sharerecon/console"
	"github.com/vitalvas/sharerecon/tui"
)

// runTUI is replaced in tests, which have no terminal.
var runTUI = tui.Run

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit and reconstruct share documents in the terminal",
		Long: `Launch an interactive editor prefilled with the share document.

Controls:
  ctrl+r  - Reconstruct
  ctrl+t  - Toggle interpolation method
  ctrl+l  - Load the example document
  esc     - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, err := a.method()
			if err != nil {
				return err
			}

			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}

			return runTUI(cmd.Context(), string(doc), method, console.NewStyles(true))
		},
	}
}
