//go:build !darwin && !windows

package clipboard

import (
	"fmt"
	"log/slog"

	atotto "github.com/atotto/clipboard"
)

// commandPort carries plain text through whichever clipboard tool is
// installed (xclip, xsel, wl-clipboard, termux). Each access spawns a
// process, so a read is cached for the duration of one Open/Close.
type commandPort struct {
	cached  *string
	cleared bool
	wrote   bool
}

var _ Port = (*commandPort)(nil)

// fallbackPort returns the command port when a clipboard tool is installed
// and the in-process clipboard otherwise.
func fallbackPort(log *slog.Logger) Port {
	if !atotto.Unsupported {
		log.Debug("clipboard port selected", "port", "command")
		return &commandPort{}
	}
	log.Warn("no clipboard tool found, using in-process clipboard")
	return NewMemory()
}

func (c *commandPort) Name() string { return "command (xclip/xsel/wl-clipboard)" }

func (c *commandPort) Open() error {
	c.cached, c.cleared, c.wrote = nil, false, false
	return nil
}

// Close empties the clipboard if Clear was requested and nothing replaced
// the old contents.
func (c *commandPort) Close() error {
	defer func() { c.cached = nil }()
	if c.cleared && !c.wrote {
		if err := atotto.WriteAll(""); err != nil {
			return fmt.Errorf("clear clipboard: %w", err)
		}
	}
	return nil
}

func (c *commandPort) Clear() error {
	c.cleared = true
	c.cached = nil
	return nil
}

func (c *commandPort) Declare([]NativeFormat) error { return nil }

func (c *commandPort) Register(id Identifier) (NativeFormat, error) {
	if err := id.Validate(); err != nil {
		return NativeFormat{}, err
	}
	if id == mimeText {
		return c.TextFormat(), nil
	}
	return NativeFormat{}, fmt.Errorf("%s: %w", id, ErrUnsupported)
}

func (c *commandPort) TextFormat() NativeFormat { return NativeFormat{Name: mimeText} }

func (c *commandPort) Write(f NativeFormat, kind Kind, data []byte) error {
	if f.Name != mimeText || kind != PlainString {
		return fmt.Errorf("%s: %w", f, ErrUnsupported)
	}
	if err := atotto.WriteAll(string(data)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	s := string(data)
	c.cached, c.wrote = &s, true
	return nil
}

func (c *commandPort) text() (string, bool) {
	if c.cached == nil {
		s, err := atotto.ReadAll()
		if err != nil {
			return "", false
		}
		c.cached = &s
	}
	return *c.cached, *c.cached != ""
}

func (c *commandPort) Has(f NativeFormat) bool {
	if f.Name != mimeText {
		return false
	}
	_, ok := c.text()
	return ok
}

func (c *commandPort) Read(f NativeFormat, _ Kind) ([]byte, error) {
	if f.Name != mimeText {
		return nil, fmt.Errorf("%s: %w", f, ErrUnsupported)
	}
	s, ok := c.text()
	if !ok {
		return nil, fmt.Errorf("%s: %w", f, ErrAbsent)
	}
	return []byte(s), nil
}

func (c *commandPort) Formats() ([]NativeFormat, error) {
	if _, ok := c.text(); ok {
		return []NativeFormat{c.TextFormat()}, nil
	}
	return nil, nil
}

func (c *commandPort) FormatName(f NativeFormat) (string, bool) {
	return f.Name, f.Name != ""
}
