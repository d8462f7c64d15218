//go:build !darwin && !windows

package app

import "log/slog"

// loopShell quits through the toolkit run loop. There is no portable way to
// hide applications here, so Hide and HideOthers only log.
type loopShell struct {
	runLoop RunLoop
	log     *slog.Logger
}

func newShell(rl RunLoop, log *slog.Logger) Shell {
	return &loopShell{runLoop: rl, log: log}
}

func (s *loopShell) Quit() {
	if s.runLoop == nil {
		s.log.Warn("quit requested without a run loop")
		return
	}
	s.runLoop.RequestQuit()
}

func (s *loopShell) Hide() {
	s.log.Debug("hide is not supported on this platform")
}

func (s *loopShell) HideOthers() {
	s.log.Debug("hide others is not supported on this platform")
}
