package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRequiresOpen(t *testing.T) {
	m := NewMemory()
	f := m.TextFormat()
	assert.Error(t, m.Write(f, PlainString, []byte("x")))
	assert.Error(t, m.Clear())
	_, err := m.Read(f, PlainString)
	assert.Error(t, err)
	assert.Error(t, m.Close())
	assert.False(t, m.Has(f))
}

func TestMemoryExclusive(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Open())
	assert.ErrorIs(t, m.Open(), ErrUnavailable)
	require.NoError(t, m.Close())
	require.NoError(t, m.Open())
	require.NoError(t, m.Close())
}

func TestMemoryRegister(t *testing.T) {
	m := NewMemory()
	a, err := m.Register("com.example.a")
	require.NoError(t, err)
	b, err := m.Register("com.example.b")
	require.NoError(t, err)
	again, err := m.Register("com.example.a")
	require.NoError(t, err)

	assert.Equal(t, memoryFirstAtom, a.ID)
	assert.Equal(t, memoryFirstAtom+1, b.ID)
	assert.Equal(t, a, again)

	text, err := m.Register(mimeText)
	require.NoError(t, err)
	assert.Equal(t, m.TextFormat(), text)

	name, ok := m.FormatName(NativeFormat{ID: b.ID})
	assert.True(t, ok)
	assert.Equal(t, "com.example.b", name)
	_, ok = m.FormatName(NativeFormat{ID: 7})
	assert.False(t, ok)
}

func TestMemoryRejectsUnregisteredSlot(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Open())
	defer m.Close()
	assert.ErrorIs(t, m.Write(NativeFormat{ID: 0xBEEF}, OpaqueData, nil), ErrRegister)
}

func TestMemoryCopiesBytes(t *testing.T) {
	m := NewMemory()
	f, err := m.Register("com.example.a")
	require.NoError(t, err)
	require.NoError(t, m.Open())
	defer m.Close()

	data := []byte{1, 2, 3}
	require.NoError(t, m.Write(f, OpaqueData, data))
	data[0] = 9
	got, err := m.Read(f, OpaqueData)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
	got[1] = 9
	again, _ := m.Read(f, OpaqueData)
	assert.Equal(t, []byte{1, 2, 3}, again)
}
