package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// View renders the live status screen.
func (m *Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	switch {
	case m.Err != nil:
		b.WriteString(stoppedTitleStyle.Render("nativelink daemon"))
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("not running"))
		b.WriteString("\n")
	case m.Status == nil:
		b.WriteString(titleStyle.Render("nativelink daemon"))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("state") + "connecting...")
		b.WriteString("\n")
	default:
		b.WriteString(titleStyle.Render("nativelink daemon"))
		b.WriteString("\n\n")
		b.WriteString(row("state", okStyle.Render("running")))
		b.WriteString(row("pid", fmt.Sprintf("%d", m.Status.PID)))
		b.WriteString(row("uptime", m.Status.Uptime.String()))
		b.WriteString(row("idle shutdown", "in "+m.Status.IdleRemaining.String()))
		b.WriteString("\n")
		b.WriteString(row("cached blobs", fmt.Sprintf("%d", m.Status.Cache.Items)))
		b.WriteString(row("cache size", humanize.IBytes(uint64(max(m.Status.Cache.TotalBytes, 0))))) //nolint:gosec // G115: clamped to non-negative
		b.WriteString(row("evicted blobs", fmt.Sprintf("%d", m.Status.Cache.EvictedItems)))
		b.WriteString(row("evicted bytes", humanize.IBytes(uint64(max(m.Status.Cache.EvictedBytes, 0))))) //nolint:gosec // G115: clamped to non-negative
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q quit"))
	b.WriteString("\n")

	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
