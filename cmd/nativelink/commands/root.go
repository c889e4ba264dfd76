// Package commands implements the CLI commands for the nativelink cache tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/bytes00000111/nativelink/internal/app"
	"github.com/bytes00000111/nativelink/internal/build"
	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for nativelink.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Put(ctx context.Context, r io.Reader) (domain.Digest, error)
	Get(ctx context.Context, digest string, w io.Writer) error
	Contains(ctx context.Context, digests []string) ([]int64, error)
	Verify(ctx context.Context) (ports.VerifyReport, error)
	Fetch(ctx context.Context, names []string) ([]app.FetchOutcome, error)
	Render(ctx context.Context) (string, error)
	GC(ctx context.Context) (app.GCResult, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
	Status(ctx context.Context, opts app.StatusOptions) error
	DaemonStatus(ctx context.Context) (*ports.DaemonStatus, error)
	ServeDaemon(ctx context.Context) error
	StopDaemon(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nativelink",
		Short:         "An evicting content addressable cache for pinned toolchains",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPutCmd())
	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newContainsCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newGCCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newDaemonCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(r io.Reader) {
	c.rootCmd.SetIn(r)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
