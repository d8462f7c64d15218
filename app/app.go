// Package app exposes application-scope OS actions and the system clipboard
// to toolkit code. Every method forwards to the platform shell or to the
// clipboard System; none adds behaviour of its own.
package app

import (
	"log/slog"

	"go.klb.dev/pasteboard/clipboard"
)

// Shell is the OS application object.
type Shell interface {
	// Quit terminates the application.
	Quit()
	// Hide hides the application's windows.
	Hide()
	// HideOthers hides every other application.
	HideOthers()
}

// RunLoop is the toolkit event loop on platforms where quitting means
// asking the loop to stop.
type RunLoop interface {
	RequestQuit()
}

// Application forwards app-scope actions to the platform.
type Application struct {
	shell Shell
	clip  *clipboard.System
}

type options struct {
	shell   Shell
	clip    *clipboard.System
	runLoop RunLoop
	log     *slog.Logger
}

// Option configures an [Application].
type Option func(*options)

// WithShell replaces the platform shell.
func WithShell(s Shell) Option {
	return func(o *options) { o.shell = s }
}

// WithClipboard sets the clipboard System. Without it the Application uses
// [clipboard.Default], or a new System logging to the WithLogger logger.
func WithClipboard(s *clipboard.System) Option {
	return func(o *options) { o.clip = s }
}

// WithRunLoop sets the run loop asked to stop on Quit where the platform
// shell quits through it.
func WithRunLoop(rl RunLoop) Option {
	return func(o *options) { o.runLoop = rl }
}

// WithLogger sets the logger of the platform shell and of a clipboard System
// created by New.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New returns an Application for the running platform.
func New(opts ...Option) *Application {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log
	if log == nil {
		log = slog.Default()
	}
	if o.clip == nil {
		if o.log != nil {
			o.clip = clipboard.New(clipboard.WithLogger(o.log))
		} else {
			o.clip = clipboard.Default()
		}
	}
	if o.shell == nil {
		o.shell = newShell(o.runLoop, log)
	}
	return &Application{shell: o.shell, clip: o.clip}
}

func (a *Application) Quit()       { a.shell.Quit() }
func (a *Application) Hide()       { a.shell.Hide() }
func (a *Application) HideOthers() { a.shell.HideOthers() }

// GetClipboardContents returns the clipboard text as an item.
func (a *Application) GetClipboardContents() (clipboard.Item, bool) {
	return a.clip.Get()
}

// SetClipboardContents replaces the clipboard contents. Failures are logged
// by the clipboard System.
func (a *Application) SetClipboardContents(item clipboard.Item) {
	_ = a.clip.Put(item)
}

// Clipboard returns a typed reader for the clipboard contents.
func (a *Application) Clipboard() clipboard.Contents {
	return a.clip.Contents()
}
