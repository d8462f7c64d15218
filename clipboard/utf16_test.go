package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF16RoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo", "日本語", "🎉 emoji"} {
		enc, err := encodeUTF16([]byte(s))
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(enc), 2)
		assert.Equal(t, []byte{0, 0}, enc[len(enc)-2:], "NUL terminated")

		dec, err := decodeUTF16(enc)
		require.NoError(t, err)
		assert.Equal(t, s, string(dec))
	}
}

func TestUTF16Layout(t *testing.T) {
	enc, err := encodeUTF16([]byte("Aé"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'A', 0, 0xe9, 0, 0, 0}, enc)
}

func TestDecodeUTF16StopsAtNUL(t *testing.T) {
	// GlobalSize may report a block larger than the string it holds.
	dec, err := decodeUTF16([]byte{'h', 0, 'i', 0, 0, 0, 'x', 0, 'y'})
	require.NoError(t, err)
	assert.Equal(t, "hi", string(dec))
}
