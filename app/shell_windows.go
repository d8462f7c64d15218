//go:build windows

package app

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

var procPostQuitMessage = windows.NewLazySystemDLL("user32.dll").NewProc("PostQuitMessage")

// win32Shell quits through the toolkit run loop when there is one, and by
// posting WM_QUIT to the calling thread's message queue otherwise. Windows
// has no application-level hide.
type win32Shell struct {
	runLoop RunLoop
	log     *slog.Logger
}

func newShell(rl RunLoop, log *slog.Logger) Shell {
	return &win32Shell{runLoop: rl, log: log}
}

func (s *win32Shell) Quit() {
	if s.runLoop != nil {
		s.runLoop.RequestQuit()
		return
	}
	procPostQuitMessage.Call(0)
}

func (s *win32Shell) Hide() {
	s.log.Debug("hide is not supported on windows")
}

func (s *win32Shell) HideOthers() {
	s.log.Debug("hide others is not supported on windows")
}
