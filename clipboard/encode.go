package clipboard

import (
	"fmt"
	"unicode/utf8"

	"howett.net/plist"
)

// encode packages data for a slot of the given kind. The result is what the
// port receives; a failure means the format must be skipped.
func encode(kind Kind, data []byte) ([]byte, error) {
	switch kind {
	case PlainString:
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("string payload is not UTF-8: %w", ErrMalformed)
		}
		return data, nil
	case OpaqueData:
		return data, nil
	case BinaryPropertyList:
		return binaryPlist(data)
	default:
		return nil, fmt.Errorf("kind %v: %w", kind, ErrUnsupported)
	}
}

// binaryPlist decodes a property list in any serialization and re-encodes
// it in binary form.
func binaryPlist(data []byte) ([]byte, error) {
	v, err := decodePlist(data)
	if err != nil {
		return nil, fmt.Errorf("decode property list: %w: %w", ErrMalformed, err)
	}
	out, err := plist.Marshal(v, plist.BinaryFormat)
	if err != nil {
		return nil, fmt.Errorf("encode binary property list: %w: %w", ErrMalformed, err)
	}
	return out, nil
}

// decodePlist decodes a property list in any serialization. Corrupt binary
// offset tables can make the decoder panic; that is reported as an error.
func decodePlist(data []byte) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("corrupt property list: %v", r)
		}
	}()
	_, err = plist.Unmarshal(data, &v)
	return v, err
}
