package clipboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// System reads and writes the clipboard through a [Port].
//
// System does not serialize concurrent callers. The system clipboard is a
// single-owner resource; embedders calling from several goroutines must
// serialize those calls themselves.
type System struct {
	port Port
	log  *slog.Logger
}

// Option configures a [System].
type Option func(*System)

// WithLogger sets the logger. Without it the System logs through
// slog.Default at call time.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) { s.log = l }
}

// WithPort sets the native port. Without it [NewPort] picks one for the
// running platform.
func WithPort(p Port) Option {
	return func(s *System) { s.port = p }
}

// New returns a System.
func New(opts ...Option) *System {
	s := &System{}
	for _, o := range opts {
		o(s)
	}
	if s.port == nil {
		s.port = NewPort(s.logger())
	}
	return s
}

var (
	defaultOnce   sync.Once
	defaultSystem *System
)

// Default returns the process-wide System for the running platform, built on
// first use.
func Default() *System {
	defaultOnce.Do(func() { defaultSystem = New() })
	return defaultSystem
}

// Port returns the native port s drives.
func (s *System) Port() Port { return s.port }

// Contents returns a reader for the current clipboard contents.
func (s *System) Contents() Contents { return Contents{sys: s} }

func (s *System) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

// withClipboard runs fn with the clipboard acquired and always releases it.
func (s *System) withClipboard(op string, fn func(Port) error) error {
	if err := s.port.Open(); err != nil {
		s.logger().Warn("clipboard acquire failed", "op", op, "port", s.port.Name(), "err", err)
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer func() {
		if err := s.port.Close(); err != nil {
			s.logger().Warn("clipboard release failed", "op", op, "port", s.port.Name(), "err", err)
		}
	}()
	return fn(s.port)
}

// slot is a format resolved and encoded for one write.
type slot struct {
	format NativeFormat
	kind   Kind
	data   []byte
}

// Put replaces the clipboard contents with the supported formats of item.
//
// Formats whose identifier cannot be registered, whose payload cannot be
// encoded or whose native write fails are logged and skipped. An item with
// no usable format leaves the clipboard untouched. The returned error is
// non-nil only when the clipboard could not be acquired or cleared, in which
// case nothing was written.
func (s *System) Put(item Item) error {
	log := s.logger()
	slots := s.prepare(item)
	if len(slots) == 0 {
		log.Debug("clipboard write skipped, no usable formats", "declared", item.Len())
		return nil
	}

	return s.withClipboard("write", func(p Port) error {
		if err := p.Clear(); err != nil {
			log.Warn("clipboard clear failed", "port", p.Name(), "err", err)
			return fmt.Errorf("clear: %w: %w", ErrUnavailable, err)
		}
		formats := make([]NativeFormat, len(slots))
		for i, sl := range slots {
			formats[i] = sl.format
		}
		if err := p.Declare(formats); err != nil {
			log.Warn("clipboard declare failed", "port", p.Name(), "formats", formats, "err", err)
		}
		written := 0
		for _, sl := range slots {
			if err := p.Write(sl.format, sl.kind, sl.data); err != nil {
				log.Warn("clipboard format skipped", "format", sl.format.String(), "kind", sl.kind.String(), "err", err)
				continue
			}
			written++
		}
		logItem(log, "clipboard written", p.Name(), item, written)
		return nil
	})
}

// prepare registers and encodes every supported format of item. Later
// formats that resolve to an already used slot are dropped.
func (s *System) prepare(item Item) []slot {
	log := s.logger()
	var slots []slot
	used := func(f NativeFormat) bool {
		for _, sl := range slots {
			if sameFormat(sl.format, f) {
				return true
			}
		}
		return false
	}
	for f := range item.Supported() {
		var (
			nf   NativeFormat
			kind Kind
			raw  []byte
		)
		if text, ok := f.Text(); ok {
			nf, kind, raw = s.port.TextFormat(), PlainString, []byte(text)
		} else {
			opts, _ := f.Info().WriteOptions()
			var err error
			nf, err = s.port.Register(opts.Identifier)
			if err != nil {
				log.Warn("clipboard format skipped, identifier not registered",
					"identifier", string(opts.Identifier), "port", s.port.Name(), "err", err)
				continue
			}
			kind, raw = opts.Kind, f.Data()
		}
		if used(nf) {
			log.Debug("clipboard format skipped, slot already written", "format", nf.String())
			continue
		}
		data, err := encode(kind, raw)
		if err != nil {
			log.Warn("clipboard format skipped, encoding failed", "format", nf.String(), "kind", kind.String(), "err", err)
			continue
		}
		slots = append(slots, slot{format: nf, kind: kind, data: data})
	}
	return slots
}

// Get returns the clipboard text as an item. It scans the present formats
// in order and stops at the first text slot; every other format is logged
// and ignored.
func (s *System) Get() (Item, bool) {
	log := s.logger()
	var (
		item  Item
		found bool
	)
	_ = s.withClipboard("get", func(p Port) error {
		formats, err := p.Formats()
		if err != nil {
			log.Warn("clipboard format enumeration failed", "port", p.Name(), "err", err)
			return err
		}
		text := p.TextFormat()
		for _, f := range formats {
			if !sameFormat(f, text) {
				name, _ := p.FormatName(f)
				log.Info("unhandled clipboard format", "format", name, "id", f.ID)
				continue
			}
			b, err := p.Read(f, PlainString)
			if err != nil {
				log.Warn("clipboard text read failed", "port", p.Name(), "err", err)
				return err
			}
			item, found = TextItem(string(b)), true
			return nil
		}
		return nil
	})
	return item, found
}

// Formats lists the native formats currently on the clipboard with their
// introspected names.
func (s *System) Formats() ([]NativeFormat, error) {
	var out []NativeFormat
	err := s.withClipboard("formats", func(p Port) error {
		formats, err := p.Formats()
		if err != nil {
			return fmt.Errorf("enumerate formats: %w", err)
		}
		for _, f := range formats {
			if name, ok := p.FormatName(f); ok {
				f.Name = name
			}
			out = append(out, f)
		}
		return nil
	})
	return out, err
}

// Clear empties the clipboard.
func (s *System) Clear() error {
	return s.withClipboard("clear", func(p Port) error {
		if err := p.Clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		return nil
	})
}

// sameFormat compares by atom when either side has one, by name otherwise.
func sameFormat(a, b NativeFormat) bool {
	if a.ID != 0 || b.ID != 0 {
		return a.ID == b.ID
	}
	return a.Name == b.Name
}

// logItem logs the format list of a clipboard write at info, then a text
// preview or byte size per format at debug.
func logItem(log *slog.Logger, msg, port string, item Item, written int) {
	formats := make([]string, 0, item.Len())
	for f := range item.Supported() {
		if f.IsText() {
			formats = append(formats, "text")
			continue
		}
		opts, _ := f.Info().WriteOptions()
		formats = append(formats, string(opts.Identifier))
	}
	log.Info(msg, "port", port, "formats", formats, "written", written)
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for f := range item.Supported() {
		if text, ok := f.Text(); ok {
			log.Debug("clipboard format", "kind", "text", "preview", preview(text))
		} else {
			log.Debug("clipboard format", "kind", "custom", "size_bytes", len(f.Data()))
		}
	}
}
