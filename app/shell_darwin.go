//go:build darwin

package app

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// static void app_terminate(void) {
//     [NSApp terminate:nil];
// }
//
// static void app_hide(void) {
//     [NSApp hide:nil];
// }
//
// static void app_hide_others(void) {
//     [[NSWorkspace sharedWorkspace] hideOtherApplications];
// }
import "C"

import "log/slog"

// cocoaShell talks to NSApp. Calls must come from the main thread.
type cocoaShell struct {
	log *slog.Logger
}

func newShell(_ RunLoop, log *slog.Logger) Shell {
	return &cocoaShell{log: log}
}

func (s *cocoaShell) Quit() {
	s.log.Debug("terminating application")
	C.app_terminate()
}

// Hide hides the application (cmd+H).
func (s *cocoaShell) Hide() { C.app_hide() }

// HideOthers hides all other applications (cmd+opt+H).
func (s *cocoaShell) HideOthers() { C.app_hide_others() }
