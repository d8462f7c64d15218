//go:build linux

package clipboard

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.design/x/clipboard"
)

// x11Port drives the X11 CLIPBOARD selection through golang.design/x/clipboard.
// The selection is owned with a single target per write, so only the first
// slot written between Open and Close is kept.
type x11Port struct {
	wrote bool
}

var _ Port = (*x11Port)(nil)

var errSingleTarget = errors.New("X11 selection already owned by this write")

// NewPort returns the X11 port, or the command-backed text port when no X
// display is reachable (Wayland, headless servers), or the in-process
// clipboard when no clipboard tool is installed either.
func NewPort(log *slog.Logger) Port {
	if log == nil {
		log = slog.Default()
	}
	if err := clipboard.Init(); err != nil {
		log.Warn("X11 clipboard unavailable", "err", err)
		return fallbackPort(log)
	}
	log.Debug("clipboard port selected", "port", "x11")
	return &x11Port{}
}

func (x *x11Port) Name() string { return "X11 selection" }

func (x *x11Port) Open() error {
	x.wrote = false
	return nil
}

func (x *x11Port) Close() error { return nil }

// Clear is a no-op: the next write takes ownership of the selection and
// drops whatever the previous owner offered.
func (x *x11Port) Clear() error { return nil }

func (x *x11Port) Declare([]NativeFormat) error { return nil }

func (x *x11Port) Register(id Identifier) (NativeFormat, error) {
	if err := id.Validate(); err != nil {
		return NativeFormat{}, err
	}
	if _, ok := x11Target(string(id)); !ok {
		return NativeFormat{}, fmt.Errorf("%s: %w", id, ErrUnsupported)
	}
	return NativeFormat{Name: string(id)}, nil
}

func (x *x11Port) TextFormat() NativeFormat { return NativeFormat{Name: mimeText} }

func (x *x11Port) Write(f NativeFormat, _ Kind, data []byte) error {
	t, ok := x11Target(f.Name)
	if !ok {
		return fmt.Errorf("%s: %w", f, ErrUnsupported)
	}
	if x.wrote {
		return fmt.Errorf("%s: %w", f, errSingleTarget)
	}
	clipboard.Write(t, data)
	x.wrote = true
	return nil
}

func (x *x11Port) Has(f NativeFormat) bool {
	t, ok := x11Target(f.Name)
	return ok && clipboard.Read(t) != nil
}

func (x *x11Port) Read(f NativeFormat, _ Kind) ([]byte, error) {
	t, ok := x11Target(f.Name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", f, ErrUnsupported)
	}
	b := clipboard.Read(t)
	if b == nil {
		return nil, fmt.Errorf("%s: %w", f, ErrAbsent)
	}
	return append([]byte{}, b...), nil
}

func (x *x11Port) Formats() ([]NativeFormat, error) {
	var out []NativeFormat
	for _, name := range []string{mimeText, mimePNG} {
		f := NativeFormat{Name: name}
		if x.Has(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (x *x11Port) FormatName(f NativeFormat) (string, bool) {
	return f.Name, f.Name != ""
}

func x11Target(name string) (clipboard.Format, bool) {
	switch name {
	case mimeText:
		return clipboard.FmtText, true
	case mimePNG:
		return clipboard.FmtImage, true
	}
	return 0, false
}
