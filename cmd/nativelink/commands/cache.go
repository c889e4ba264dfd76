package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put [file]",
		Short: "Store a blob and print its digest",
		Long:  "Store a file (or stdin when no file is given) in the cache and print the resulting digest.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			digest, err := c.app.Put(cmd.Context(), r)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), digest.String())
			return nil
		},
	}
}

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <digest>",
		Short: "Retrieve a blob by digest",
		Long:  "Retrieve a cached blob and write it to stdout, or to a file with --output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			return c.app.Get(cmd.Context(), args[0], w)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the blob to a file instead of stdout")
	return cmd
}

func (c *CLI) newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <digest>...",
		Short: "Check which blobs are cached",
		Long:  "Print the cached size of each digest, or 'missing' for blobs not in the cache.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := c.app.Contains(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, size := range sizes {
				if size < 0 {
					_, _ = fmt.Fprintf(out, "%s missing\n", args[i])
					continue
				}
				_, _ = fmt.Fprintf(out, "%s %d\n", args[i], size)
			}
			return nil
		},
	}
}
