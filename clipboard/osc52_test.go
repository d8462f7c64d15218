package clipboard

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52WritesText(t *testing.T) {
	var buf bytes.Buffer
	port := &OSC52{w: &buf}
	sys := New(WithPort(port), WithLogger(slog.New(slog.DiscardHandler)))

	require.NoError(t, sys.Put(TextItem("hello")))
	out := buf.String()
	assert.Contains(t, out, "\x1b]52;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("hello")))
}

func TestOSC52SkipsCustomFormats(t *testing.T) {
	var buf bytes.Buffer
	port := &OSC52{w: &buf}
	sys := New(WithPort(port), WithLogger(slog.New(slog.DiscardHandler)))

	require.NoError(t, sys.Put(CustomItem([]byte("x"), supported("com.example.bin"))))
	assert.Zero(t, buf.Len())
}

func TestOSC52IsWriteOnly(t *testing.T) {
	port := &OSC52{w: &bytes.Buffer{}}
	sys := New(WithPort(port), WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, sys.Put(TextItem("hello")))

	_, err := sys.Contents().Text()
	assert.ErrorIs(t, err, ErrAbsent)
	_, err = Fetch(sys.Contents(), supported("com.example.bin"))
	assert.ErrorIs(t, err, ErrUnsupported)
}
