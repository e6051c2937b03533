package main

import (
	"fmt"
	"strings"

	"kart-compare/internal/share"

	"github.com/spf13/cobra"
)

func encodeCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "encode <id>...",
		Short: "Print the share token for an ordered list of product IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := share.Encode(args)
			if baseURL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s/compare/share/%s\n", strings.TrimRight(baseURL, "/"), token)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "print a full share URL under this storefront base URL")
	return cmd
}
