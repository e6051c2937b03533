package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"kart-compare/internal/catalog"
	"kart-compare/internal/model"
	"kart-compare/internal/repository"
	"kart-compare/internal/service"
	"kart-compare/internal/share"

	"github.com/spf13/cobra"
)

var errUnresolvedShare = errors.New(model.ShareLinkErrorMessage)

func decodeCmd(opts *rootOptions) *cobra.Command {
	var (
		catalogPath string
		idsOnly     bool
	)

	cmd := &cobra.Command{
		Use:   "decode <token>",
		Short: "Decode a share token and resolve it against a catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := args[0]
			out := cmd.OutOrStdout()

			if idsOnly {
				ids, err := share.Decode(token)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			logger := opts.logger()

			products := catalog.SeedProducts()
			if catalogPath != "" {
				var err error
				products, err = catalog.NewFileLoader(logger).Load(cmd.Context(), catalogPath)
				if err != nil {
					return err
				}
			}

			repo := repository.NewMemoryProductRepository(products, logger)
			svc := service.NewComparisonService(repo, "", 0, logger)

			view := model.NewErrorView()
			items, resolveErr := svc.ResolveShare(cmd.Context(), token)
			if resolveErr == nil {
				view = model.NewSuccessView(items)
			} else if !errors.Is(resolveErr, model.ErrInvalidShareLink) && !errors.Is(resolveErr, model.ErrNoItemsFound) {
				return resolveErr
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			if err := enc.Encode(view); err != nil {
				return fmt.Errorf("failed to write comparison: %w", err)
			}

			if view.State == model.ViewStateError {
				return errUnresolvedShare
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "gzipped JSON Lines catalogue snapshot (default: built-in seed catalogue)")
	cmd.Flags().BoolVar(&idsOnly, "ids-only", false, "print the decoded IDs without resolving them")
	return cmd
}
