package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/christoffel/internal/menu"
)

func newCheckCmd() *cobra.Command {
	var (
		entry  menu.Entry
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a dish the way the add form does",
		Example: `  christoffel check --name Tea --description "Hot tea" --category Starter --price 45
  christoffel check --name Steak --description Grilled --category "Main Meal" --price 250 --ingredients "Beef, Salt" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dish, err := menu.Build(entry)
			if err != nil {
				var notice menu.Notice
				if errors.As(err, &notice) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", notice.Title(), notice.Message())
					return errReported
				}
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), dish)
			}
			printCard(cmd.OutOrStdout(), dish)
			return nil
		},
	}

	cmd.Flags().StringVar(&entry.Name, "name", "", "dish name")
	cmd.Flags().StringVar(&entry.Description, "description", "", "dish description")
	cmd.Flags().StringVar(&entry.Category, "category", "", "Starter, Main Meal or Dessert")
	cmd.Flags().StringVar(&entry.Price, "price", "", "price in rand")
	cmd.Flags().StringVar(&entry.Image, "image", "", "image reference")
	cmd.Flags().StringVar(&entry.Ingredients, "ingredients", "", "comma separated ingredients")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the dish as JSON")
	return cmd
}
