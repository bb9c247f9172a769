package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/christoffel/internal/menu"
)

func newMenuCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the starting menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dishes := menu.DefaultDishes()
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, dishes)
			}
			for i, d := range dishes {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printCard(out, d)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print dishes as JSON")
	return cmd
}
