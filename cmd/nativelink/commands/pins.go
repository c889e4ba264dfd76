package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [pname...]",
		Short: "Fetch pinned toolchain sources into the cache",
		Long:  "Download the named toolchain sources, verify them against their pinned hashes and store them. With no arguments every pinned derivation is fetched.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcomes, err := c.app.Fetch(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, outcome := range outcomes {
				source := "fetched"
				if outcome.Result.FromCache {
					source = "cached"
				}
				_, _ = fmt.Fprintf(out, "%s %s %s\n", source, outcome.Pname, outcome.Result.Digest.String())
			}
			return nil
		},
	}
}

func (c *CLI) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the canonical pin manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := c.app.Render(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
