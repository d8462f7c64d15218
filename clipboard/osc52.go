package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 sets the clipboard of the terminal emulator w is attached to with
// the OSC 52 escape sequence. It works over SSH but is write-only and
// carries text alone: custom identifiers fail to register and reads report
// nothing present.
type OSC52 struct {
	w      io.Writer
	tmux   bool
	screen bool
}

var _ Port = (*OSC52)(nil)

// NewOSC52 returns a terminal port writing to w. Escape sequences are wrapped
// for tmux or screen when the environment says one is running.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{
		w:      w,
		tmux:   os.Getenv("TMUX") != "",
		screen: strings.HasPrefix(os.Getenv("TERM"), "screen"),
	}
}

func (o *OSC52) Name() string { return "terminal (OSC 52)" }

func (o *OSC52) Open() error                  { return nil }
func (o *OSC52) Close() error                 { return nil }
func (o *OSC52) Clear() error                 { return nil }
func (o *OSC52) Declare([]NativeFormat) error { return nil }

func (o *OSC52) Register(id Identifier) (NativeFormat, error) {
	if err := id.Validate(); err != nil {
		return NativeFormat{}, err
	}
	if id == mimeText {
		return o.TextFormat(), nil
	}
	return NativeFormat{}, fmt.Errorf("%s: %w", id, ErrUnsupported)
}

func (o *OSC52) TextFormat() NativeFormat { return NativeFormat{Name: mimeText} }

func (o *OSC52) Write(f NativeFormat, kind Kind, data []byte) error {
	if f.Name != mimeText || kind != PlainString {
		return fmt.Errorf("%s: %w", f, ErrUnsupported)
	}
	seq := osc52.New(string(data))
	switch {
	case o.tmux:
		seq = seq.Tmux()
	case o.screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.w); err != nil {
		return fmt.Errorf("write escape sequence: %w", err)
	}
	return nil
}

func (o *OSC52) Has(NativeFormat) bool { return false }

func (o *OSC52) Read(f NativeFormat, _ Kind) ([]byte, error) {
	return nil, fmt.Errorf("%s: %w", f, ErrUnsupported)
}

func (o *OSC52) Formats() ([]NativeFormat, error) { return nil, nil }

func (o *OSC52) FormatName(f NativeFormat) (string, bool) {
	return f.Name, f.Name != ""
}
