// Package clipboard reads and writes the system clipboard through a
// platform-agnostic value model.
//
// An [Item] carries one or more alternative representations ([Format]) of
// the same payload. Plain text is offered everywhere; custom formats carry a
// [Writable] descriptor that decides, per platform, under which native type
// identifier and in which [Kind] the bytes are stored. Only the formats the
// running platform supports are ever sent to or read from the OS.
//
// Native access goes through a [Port], one per OS:
//
//	port_darwin.go   macOS NSPasteboard via cgo
//	port_windows.go  Win32 clipboard via golang.org/x/sys/windows
//	port_linux.go    X11 via golang.design/x/clipboard, command fallback
//	port_other.go    command-backed text, or in-process memory
package clipboard

import (
	"fmt"
	"iter"
	"strings"
)

// Format is one representation of a clipboard payload: either text or a
// custom byte payload described by a [Writable].
type Format struct {
	custom bool
	text   string
	data   []byte
	info   Writable
}

// Text returns a plain text format.
func Text(s string) Format {
	return Format{text: s}
}

// Custom returns a format carrying data described by info. The data slice is
// not copied.
func Custom(data []byte, info Writable) Format {
	if data == nil {
		data = []byte{}
	}
	return Format{custom: true, data: data, info: info}
}

// IsText reports whether f is a plain text format.
func (f Format) IsText() bool { return !f.custom }

// Text returns the text of a plain text format.
func (f Format) Text() (string, bool) {
	if f.custom {
		return "", false
	}
	return f.text, true
}

// Data returns the payload of a custom format, or nil for text.
func (f Format) Data() []byte { return f.data }

// Info returns the descriptor of a custom format, or nil for text.
func (f Format) Info() Writable { return f.info }

// Supported reports whether f can be written on the running platform. Text
// always can; a custom format needs a descriptor with options here.
func (f Format) Supported() bool {
	if !f.custom {
		return true
	}
	if f.info == nil {
		return false
	}
	_, ok := f.info.WriteOptions()
	return ok
}

func (f Format) String() string {
	if !f.custom {
		return fmt.Sprintf("Text(%q)", preview(f.text))
	}
	if f.info == nil {
		return fmt.Sprintf("Custom(no descriptor, %d bytes, unsupported)", len(f.data))
	}
	opts, ok := f.info.WriteOptions()
	if !ok {
		return fmt.Sprintf("Custom(%T, %d bytes, unsupported)", f.info, len(f.data))
	}
	return fmt.Sprintf("Custom(%s, %d bytes)", opts, len(f.data))
}

// Item is a logical clipboard payload: an ordered list of alternative
// formats, most preferred first. Items are values; the builder methods
// return a new Item and leave the receiver untouched.
type Item struct {
	formats []Format
}

// NewItem returns an item holding the given formats in order.
func NewItem(formats ...Format) Item {
	return Item{formats: append([]Format(nil), formats...)}
}

// TextItem returns an item holding a single text format.
func TextItem(s string) Item {
	return NewItem(Text(s))
}

// CustomItem returns an item holding a single custom format.
func CustomItem(data []byte, info Writable) Item {
	return NewItem(Custom(data, info))
}

// AddFormat returns a copy of it with f appended.
func (it Item) AddFormat(f Format) Item {
	formats := make([]Format, len(it.formats), len(it.formats)+1)
	copy(formats, it.formats)
	return Item{formats: append(formats, f)}
}

// AddText returns a copy of it with a text format appended.
func (it Item) AddText(s string) Item {
	return it.AddFormat(Text(s))
}

// AddCustom returns a copy of it with a custom format appended.
func (it Item) AddCustom(data []byte, info Writable) Item {
	return it.AddFormat(Custom(data, info))
}

// Len returns the number of declared formats, supported or not.
func (it Item) Len() int { return len(it.formats) }

// Formats returns a copy of all declared formats.
func (it Item) Formats() []Format {
	return append([]Format(nil), it.formats...)
}

// Supported yields the formats the running platform supports, in
// declaration order. The sequence can be ranged over any number of times.
func (it Item) Supported() iter.Seq[Format] {
	return func(yield func(Format) bool) {
		for _, f := range it.formats {
			if !f.Supported() {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Text returns the first text format of the item.
func (it Item) Text() (string, bool) {
	for _, f := range it.formats {
		if s, ok := f.Text(); ok {
			return s, true
		}
	}
	return "", false
}

func (it Item) String() string {
	parts := make([]string, len(it.formats))
	for i, f := range it.formats {
		parts[i] = f.String()
	}
	return "Item[" + strings.Join(parts, ", ") + "]"
}

const previewLen = 120

func preview(s string) string {
	r := []rune(s)
	if len(r) > previewLen {
		return string(r[:previewLen]) + "…"
	}
	return s
}
