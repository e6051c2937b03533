package main

import (
	"fmt"

	"kart-compare/internal/catalog"
	"kart-compare/internal/config"
	"kart-compare/internal/database"
	"kart-compare/internal/repository"

	"github.com/spf13/cobra"
)

func importCmd(opts *rootOptions) *cobra.Command {
	var (
		filePath string
		bucket   string
		region   string
		prefix   string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a catalogue snapshot into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := opts.logger()

			var loader catalog.Loader = catalog.NewFileLoader(logger)
			if bucket != "" {
				s3Loader, err := catalog.NewS3Loader(ctx, bucket, region, logger)
				if err != nil {
					return err
				}
				loader = catalog.NewFallbackLoader(s3Loader, loader, prefix, true, logger)
			}

			products, err := loader.Load(ctx, filePath)
			if err != nil {
				return err
			}

			dbCfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}

			pool, err := database.NewPool(ctx, dbCfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.EnsureSchema(ctx, pool); err != nil {
				return err
			}

			if err := repository.NewProductRepository(pool, logger).Upsert(ctx, products); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d products into %s\n", len(products), dbCfg.Database)
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "catalogue snapshot path (S3 key suffix when --bucket is set)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "read the snapshot from this S3 bucket, falling back to the local file")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "S3 region")
	cmd.Flags().StringVar(&prefix, "prefix", "catalog/", "S3 key prefix")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
