package clipboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestEncodeKinds(t *testing.T) {
	raw := []byte{0, 1, 0xff}
	out, err := encode(OpaqueData, raw)
	require.NoError(t, err)
	assert.Equal(t, raw, out)

	out, err = encode(PlainString, []byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo"), out)

	_, err = encode(PlainString, []byte{0xc3})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = encode(Kind(42), raw)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestEncodeBinaryPlist(t *testing.T) {
	for _, format := range []int{plist.XMLFormat, plist.BinaryFormat, plist.OpenStepFormat} {
		in, err := plist.Marshal(map[string]any{"name": "glyph", "width": uint64(600)}, format)
		require.NoError(t, err)

		out, err := encode(BinaryPropertyList, in)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("bplist00")))

		var v map[string]any
		_, err = plist.Unmarshal(out, &v)
		require.NoError(t, err)
		assert.Equal(t, "glyph", v["name"])
	}

	_, err := encode(BinaryPropertyList, []byte("bplist00truncated"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", PlainString.String())
	assert.Equal(t, "data", OpaqueData.String())
	assert.Equal(t, "binary-plist", BinaryPropertyList.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
