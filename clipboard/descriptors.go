package clipboard

import (
	"bytes"
	"image"
	"image/png"
	"runtime"
	"unicode/utf8"
)

// builtinType keys the per-platform table of the built-in descriptors.
type builtinType int

const (
	typePDF builtinType = iota
	typeGlyphsPlist
	typePNG
	typeHTML
)

// builtinOpts looks t up in the table compiled for the running platform.
func builtinOpts(t builtinType) (WriteOpts, bool) {
	o, ok := nativeTypes[t]
	return o, ok
}

func builtinReadOpts(t builtinType) (ReadOpts, bool) {
	o, ok := nativeTypes[t]
	return ReadOpts{Identifier: o.Identifier}, ok
}

// PDF describes Portable Document Format data. Parse returns the bytes
// unchanged.
type PDF struct{}

func (PDF) WriteOptions() (WriteOpts, bool) { return builtinOpts(typePDF) }
func (PDF) ReadOptions() (ReadOpts, bool)   { return builtinReadOpts(typePDF) }
func (PDF) Parse(data []byte) ([]byte, bool) {
	return data, true
}

// GlyphsBinaryPlist describes the element pasteboard type of the Glyphs font
// editor, a binary property list. Parse decodes it into the generic
// property list value (maps, slices, strings, numbers, data).
type GlyphsBinaryPlist struct{}

func (GlyphsBinaryPlist) WriteOptions() (WriteOpts, bool) { return builtinOpts(typeGlyphsPlist) }
func (GlyphsBinaryPlist) ReadOptions() (ReadOpts, bool)   { return builtinReadOpts(typeGlyphsPlist) }

func (GlyphsBinaryPlist) Parse(data []byte) (any, bool) {
	v, err := decodePlist(data)
	if err != nil {
		return nil, false
	}
	return v, true
}

// PNG describes PNG image data. Parse decodes the image.
type PNG struct{}

func (PNG) WriteOptions() (WriteOpts, bool) { return builtinOpts(typePNG) }
func (PNG) ReadOptions() (ReadOpts, bool)   { return builtinReadOpts(typePNG) }

func (PNG) Parse(data []byte) (image.Image, bool) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	return img, true
}

// HTML describes an HTML fragment stored as a string slot.
type HTML struct{}

func (HTML) WriteOptions() (WriteOpts, bool) { return builtinOpts(typeHTML) }
func (HTML) ReadOptions() (ReadOpts, bool)   { return builtinReadOpts(typeHTML) }

func (HTML) Parse(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// Native describes a representation by a native identifier the caller has
// already chosen for the running platform. The zero value is unsupported.
// Parse returns the bytes unchanged.
type Native struct {
	Identifier Identifier
	Kind       Kind
}

func (n Native) WriteOptions() (WriteOpts, bool) {
	return WriteOpts{Identifier: n.Identifier, Kind: n.Kind}, n.Identifier != ""
}

func (n Native) ReadOptions() (ReadOpts, bool) {
	return ReadOpts{Identifier: n.Identifier}, n.Identifier != ""
}

func (Native) Parse(data []byte) ([]byte, bool) {
	return data, true
}

// Platforms describes a representation by its options per GOOS value
// ("darwin", "windows", "linux", ...). Platforms missing from the map do
// not support it. Parse returns the bytes unchanged.
type Platforms map[string]WriteOpts

func (p Platforms) WriteOptions() (WriteOpts, bool) {
	o, ok := p[runtime.GOOS]
	return o, ok && o.Identifier != ""
}

func (p Platforms) ReadOptions() (ReadOpts, bool) {
	o, ok := p.WriteOptions()
	return ReadOpts{Identifier: o.Identifier}, ok
}

func (Platforms) Parse(data []byte) ([]byte, bool) {
	return data, true
}
