package clipboard

import (
	"context"
	"fmt"
	"log/slog"
)

// Contents reads typed values from the clipboard of a [System].
type Contents struct {
	sys *System
}

// StringValue returns the clipboard text, if there is any.
func (c Contents) StringValue() (string, bool) {
	s, err := c.Text()
	return s, err == nil
}

// Text returns the clipboard text. The error matches [ErrUnavailable] or
// [ErrAbsent].
func (c Contents) Text() (string, error) {
	var text string
	err := c.sys.withClipboard("read text", func(p Port) error {
		f := p.TextFormat()
		if !p.Has(f) {
			return fmt.Errorf("%s: %w", f, ErrAbsent)
		}
		b, err := p.Read(f, PlainString)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		text = string(b)
		return nil
	})
	return text, err
}

// CustomValue reads the representation described by r and parses it. It
// reports false when the representation is unsupported, absent,
// unreadable or malformed; use [Fetch] to tell those apart.
func CustomValue[T any](c Contents, r Readable[T]) (T, bool) {
	v, err := Fetch(c, r)
	return v, err == nil
}

// Fetch reads the representation described by r and parses it. The error
// matches one of [ErrUnsupported], [ErrRegister], [ErrUnavailable],
// [ErrAbsent] or [ErrMalformed]. When r has no read options on the running
// platform the port is not touched.
func Fetch[T any](c Contents, r Readable[T]) (T, error) {
	var zero T
	opts, ok := r.ReadOptions()
	if !ok {
		return zero, fmt.Errorf("%T: %w", r, ErrUnsupported)
	}
	data, err := c.sys.readSlot(opts.Identifier)
	if err != nil {
		return zero, err
	}
	v, ok := r.Parse(data)
	if !ok {
		c.sys.logger().Info("clipboard data did not parse", "identifier", string(opts.Identifier), "size_bytes", len(data))
		return zero, fmt.Errorf("parse %s: %w", opts.Identifier, ErrMalformed)
	}
	return v, nil
}

// readSlot copies the bytes stored under id.
func (s *System) readSlot(id Identifier) ([]byte, error) {
	log := s.logger()
	nf, err := s.port.Register(id)
	if err != nil {
		log.Warn("clipboard identifier not registered", "identifier", string(id), "port", s.port.Name(), "err", err)
		return nil, fmt.Errorf("register %s: %w", id, err)
	}
	var data []byte
	err = s.withClipboard("read", func(p Port) error {
		if !p.Has(nf) {
			log.Info("nothing on clipboard for identifier", "identifier", string(id))
			logPresent(log, p)
			return fmt.Errorf("%s: %w", nf, ErrAbsent)
		}
		b, err := p.Read(nf, OpaqueData)
		if err != nil {
			log.Warn("clipboard read failed", "format", nf.String(), "err", err)
			return fmt.Errorf("read %s: %w", nf, err)
		}
		data = b
		return nil
	})
	return data, err
}

// logPresent lists the present formats at debug level.
func logPresent(log *slog.Logger, p Port) {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	formats, err := p.Formats()
	if err != nil {
		log.Debug("clipboard format enumeration failed", "err", err)
		return
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		if name, ok := p.FormatName(f); ok {
			names[i] = name
		} else {
			names[i] = f.String()
		}
	}
	log.Debug("clipboard formats present", "formats", names)
}
