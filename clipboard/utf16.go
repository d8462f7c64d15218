package clipboard

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeUTF16 converts UTF-8 text to NUL-terminated UTF-16LE.
func encodeUTF16(b []byte) ([]byte, error) {
	out, err := utf16LE.NewEncoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("encode UTF-16: %w: %w", ErrMalformed, err)
	}
	return append(out, 0, 0), nil
}

// decodeUTF16 converts UTF-16LE text up to the first NUL unit to UTF-8. A
// trailing odd byte is ignored.
func decodeUTF16(b []byte) ([]byte, error) {
	n := len(b) &^ 1
	for i := 0; i < n; i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			n = i
			break
		}
	}
	out, err := utf16LE.NewDecoder().Bytes(b[:n])
	if err != nil {
		return nil, fmt.Errorf("decode UTF-16: %w: %w", ErrMalformed, err)
	}
	return out, nil
}
