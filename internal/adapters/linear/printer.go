// Package linear provides a line-oriented status printer for CI and other
// non-interactive environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/bytes00000111/nativelink/internal/adapters/tui"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"github.com/bytes00000111/nativelink/internal/ui/output"
	"github.com/bytes00000111/nativelink/internal/ui/style"
)

// Printer writes daemon status as plain chronological lines.
type Printer struct {
	stdout io.Writer
	output *termenv.Output
}

// NewPrinter creates a new Printer.
func NewPrinter(stdout io.Writer) *Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Printer{
		stdout: stdout,
		output: output.NewWithProfile(stdout, output.ColorProfileANSI),
	}
}

// Print writes a single status snapshot.
func (p *Printer) Print(status *ports.DaemonStatus, err error) {
	if err != nil {
		symbol := p.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(p.stdout, "%s daemon not running\n", symbol)
		return
	}

	symbol := p.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(p.stdout,
		"%s daemon pid=%d uptime=%s idle_shutdown_in=%s blobs=%d size=%s evicted=%d\n",
		symbol,
		status.PID,
		status.Uptime.Round(time.Second),
		status.IdleRemaining.Round(time.Second),
		status.Cache.Items,
		humanize.IBytes(uint64(max(status.Cache.TotalBytes, 0))), //nolint:gosec // G115: clamped to non-negative
		status.Cache.EvictedItems,
	)
}

// Watch polls the daemon and prints a line per interval until ctx is
// cancelled.
func (p *Printer) Watch(ctx context.Context, fetch tui.StatusFunc, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	status, err := fetch(ctx)
	p.Print(status, err)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			status, err := fetch(ctx)
			p.Print(status, err)
		}
	}
}
