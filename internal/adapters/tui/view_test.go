package tui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bytes00000111/nativelink/internal/adapters/tui"
)

func TestView_Running(t *testing.T) {
	m := tui.NewModel(fetchStatus(runningStatus(), nil))
	m.Status = runningStatus()

	view := m.View()

	assert.Contains(t, view, "nativelink daemon")
	assert.Contains(t, view, "running")
	assert.Contains(t, view, "4242")
	assert.Contains(t, view, "12")
	assert.Contains(t, view, "1.0 MiB")
	assert.Contains(t, view, "q quit")
}

func TestView_NotRunning(t *testing.T) {
	m := tui.NewModel(fetchStatus(nil, errors.New("connection refused")))
	m.Err = errors.New("connection refused")

	view := m.View()

	assert.Contains(t, view, "not running")
}

func TestView_Connecting(t *testing.T) {
	m := tui.NewModel(fetchStatus(runningStatus(), nil))

	view := m.View()

	assert.Contains(t, view, "connecting...")
}

func TestView_QuittingIsEmpty(t *testing.T) {
	m := tui.NewModel(fetchStatus(runningStatus(), nil))
	m.Quitting = true

	assert.Empty(t, m.View())
}
