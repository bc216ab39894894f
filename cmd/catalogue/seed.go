package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCategoriesCmd(open opener) *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "seed-categories",
		Short: "Create the default global categories if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sess, err := open(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = sess.close()
			}()

			if len(names) == 0 {
				names = sess.cfg.Catalogue.DefaultCategories
			}
			created, err := sess.services.Categories.SeedDefaults(ctx, names)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d of %d categories\n", created, len(names))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&names, "name", nil, "Category name to seed (repeatable); defaults to the configured list")

	return cmd
}
