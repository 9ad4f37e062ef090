package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wichananm65/luxuria-backend/internal/config"
	"github.com/wichananm65/luxuria-backend/internal/product"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

func seedCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample catalog into the configured store",
		Long: `Copy the built-in sample products into the "product" collection.

The store assigns new ids; the demo- ids of the sample catalog stay reserved
for the fallback path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if dryRun {
				for _, p := range product.SampleProducts() {
					fmt.Fprintf(cmd.OutOrStdout(), "would insert %s (%s)\n", p.Title, p.Category)
				}
				return nil
			}

			cfg := config.Load()
			s := openStore(ctx, cfg)
			defer closeStore(s)
			if !store.Available(s) {
				return fmt.Errorf("seed: %w", store.ErrUnavailable)
			}

			svc := product.NewService(s)
			for _, p := range product.SampleProducts() {
				id, err := svc.Create(ctx, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "inserted %s as %s\n", p.Title, id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the products without inserting them")
	return cmd
}
