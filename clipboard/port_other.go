//go:build !darwin && !windows && !linux

package clipboard

import "log/slog"

// NewPort returns the command-backed text port when a clipboard tool is
// installed and the in-process clipboard otherwise.
func NewPort(log *slog.Logger) Port {
	if log == nil {
		log = slog.Default()
	}
	return fallbackPort(log)
}
