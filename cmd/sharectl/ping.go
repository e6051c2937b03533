package main

import (
	"fmt"

	"kart-compare/internal/config"
	"kart-compare/internal/database"

	"github.com/spf13/cobra"
)

func pingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the database connection configured by the DB_* variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dbCfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}

			pool, err := database.NewPool(ctx, dbCfg, opts.logger())
			if err != nil {
				return err
			}
			defer pool.Close()

			var (
				dbName      string
				hasProducts bool
			)
			err = pool.QueryRow(ctx, "SELECT current_database(), to_regclass('products') IS NOT NULL").
				Scan(&dbName, &hasProducts)
			if err != nil {
				return fmt.Errorf("failed to query database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully connected to database: %s (products table: %t)\n", dbName, hasProducts)
			return nil
		},
	}
}
