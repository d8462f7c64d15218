//go:build !darwin && !windows

package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopShellQuit(t *testing.T) {
	loop := &fakeLoop{}
	s := newShell(loop, slog.New(slog.DiscardHandler))
	s.Quit()
	s.Quit()
	assert.Equal(t, 2, loop.requests)

	// Without a run loop Quit only logs.
	newShell(nil, slog.New(slog.DiscardHandler)).Quit()
}
