package commands

import (
	"fmt"

	"github.com/bytes00000111/nativelink/internal/app"
	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check store integrity",
		Long:  "Re-hash every cached blob and report blobs whose content no longer matches their digest.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Verify(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(report.Mismatches) == 0 {
				_, _ = fmt.Fprintf(out, "verified %d blobs, store intact\n", report.Checked)
				return nil
			}

			for _, m := range report.Mismatches {
				_, _ = fmt.Fprintf(out, "corrupt %s: expected %s, got %s\n", m.Path, m.Want.ShortHash(), m.Got.ShortHash())
			}
			return domain.ErrVerifyFailed
		},
	}
}

func (c *CLI) newGCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gc",
		Short: "Remove blobs no pin references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.GC(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d blobs (%s freed)\n",
				result.Removed, humanize.IBytes(uint64(max(result.FreedBytes, 0)))) //nolint:gosec // clamped to non-negative
			return nil
		},
	}
}

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the blob store and daemon state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			daemonState, _ := cmd.Flags().GetBool("daemon")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{
				Store:  false,
				Daemon: false,
			}

			switch {
			case all:
				opts.Store = true
				opts.Daemon = true
			case daemonState:
				opts.Daemon = true
			default:
				// Default behavior: clean the blob store
				opts.Store = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("daemon", "d", false, "Remove daemon socket, pidfile and log")
	cmd.Flags().BoolP("all", "a", false, "Remove the blob store and all daemon state")

	return cmd
}
