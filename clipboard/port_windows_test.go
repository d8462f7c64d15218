//go:build windows

package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalBlobLockedBytes(t *testing.T) {
	data := []byte("%PDF-1.7\x00\xff")
	h, err := globalBlob(data)
	require.NoError(t, err)
	defer procGlobalFree.Call(h)

	p, _, err := procGlobalLock.Call(h)
	require.NotZero(t, p, "GlobalLock: %v", err)
	got := append([]byte(nil), lockedBytes(p, len(data))...)
	procGlobalUnlock.Call(h)

	assert.Equal(t, data, got)
}
