package clipboard

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestBuiltinOptionsAgree(t *testing.T) {
	for name, d := range map[string]interface {
		Writable
		ReadOptions() (ReadOpts, bool)
	}{
		"pdf":    PDF{},
		"glyphs": GlyphsBinaryPlist{},
		"png":    PNG{},
		"html":   HTML{},
	} {
		w, wok := d.WriteOptions()
		r, rok := d.ReadOptions()
		assert.Equal(t, wok, rok, name)
		if wok {
			assert.Equal(t, w.Identifier, r.Identifier, name)
			assert.NoError(t, w.Identifier.Validate(), name)
		}
	}
}

func TestPDFParseIdentity(t *testing.T) {
	in := []byte("%PDF-1.7\n\xff\x00")
	out, ok := PDF{}.Parse(in)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestGlyphsParse(t *testing.T) {
	data, err := plist.Marshal(map[string]any{"glyphs": []any{"A"}}, plist.BinaryFormat)
	require.NoError(t, err)
	v, ok := GlyphsBinaryPlist{}.Parse(data)
	require.True(t, ok)
	assert.IsType(t, map[string]any{}, v)

	_, ok = GlyphsBinaryPlist{}.Parse([]byte("bplist00"))
	assert.False(t, ok)
	_, ok = GlyphsBinaryPlist{}.Parse(data[:len(data)/2])
	assert.False(t, ok)
}

func TestPNGParse(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	got, ok := PNG{}.Parse(buf.Bytes())
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 2, 2), got.Bounds())

	_, ok = PNG{}.Parse(buf.Bytes()[:10])
	assert.False(t, ok)
	_, ok = PNG{}.Parse(nil)
	assert.False(t, ok)
}

func TestHTMLParse(t *testing.T) {
	s, ok := HTML{}.Parse([]byte("<b>hi</b>"))
	require.True(t, ok)
	assert.Equal(t, "<b>hi</b>", s)
	_, ok = HTML{}.Parse([]byte{0xff})
	assert.False(t, ok)
}

func TestNative(t *testing.T) {
	_, ok := Native{}.WriteOptions()
	assert.False(t, ok)
	_, ok = Native{}.ReadOptions()
	assert.False(t, ok)

	n := Native{Identifier: "com.example.thing", Kind: OpaqueData}
	w, ok := n.WriteOptions()
	require.True(t, ok)
	assert.Equal(t, WriteOpts{Identifier: "com.example.thing", Kind: OpaqueData}, w)
}

func TestPlatforms(t *testing.T) {
	here := Platforms{runtime.GOOS: {Identifier: "com.example.here", Kind: OpaqueData}}
	w, ok := here.WriteOptions()
	require.True(t, ok)
	assert.Equal(t, Identifier("com.example.here"), w.Identifier)

	elsewhere := Platforms{"plan9-nowhere": {Identifier: "x"}}
	_, ok = elsewhere.WriteOptions()
	assert.False(t, ok)
	_, ok = elsewhere.ReadOptions()
	assert.False(t, ok)
}

func TestNativeRoundTrip(t *testing.T) {
	sys, _, _ := newTestSystem(t)
	desc := Native{Identifier: "com.example.native", Kind: OpaqueData}
	require.NoError(t, sys.Put(CustomItem([]byte{9, 8, 7}, desc)))
	got, ok := CustomValue(sys.Contents(), desc)
	require.True(t, ok)
	assert.Equal(t, []byte{9, 8, 7}, got)
}
