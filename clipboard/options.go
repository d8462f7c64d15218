package clipboard

import (
	"fmt"
	"strings"
)

// Kind says how the bytes of a custom format are packaged for the OS.
type Kind int

const (
	// PlainString is UTF-8 text stored as the platform's native string
	// representation.
	PlainString Kind = iota
	// OpaqueData is a raw byte blob.
	OpaqueData
	// BinaryPropertyList is a serialized property list. It is decoded and
	// re-serialized in binary form before it reaches the OS.
	BinaryPropertyList
)

func (k Kind) String() string {
	switch k {
	case PlainString:
		return "string"
	case OpaqueData:
		return "data"
	case BinaryPropertyList:
		return "binary-plist"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "string":
		return PlainString, nil
	case "data", "":
		return OpaqueData, nil
	case "binary-plist", "plist":
		return BinaryPropertyList, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}

// Identifier names a native clipboard type within one platform's namespace:
// a UTI on macOS, a registered clipboard format name on Windows, a MIME type
// on Linux.
type Identifier string

// Validate reports whether id can be handed to a native registry.
func (id Identifier) Validate() error {
	if id == "" {
		return fmt.Errorf("empty identifier: %w", ErrRegister)
	}
	if strings.IndexByte(string(id), 0) >= 0 {
		return fmt.Errorf("identifier %q contains NUL: %w", string(id), ErrRegister)
	}
	return nil
}

// WriteOpts are the platform options for writing one representation.
type WriteOpts struct {
	Identifier Identifier
	Kind       Kind
}

func (o WriteOpts) String() string {
	return fmt.Sprintf("%s (%s)", o.Identifier, o.Kind)
}

// ReadOpts are the platform options for reading one representation.
type ReadOpts struct {
	Identifier Identifier
}

// Writable is implemented by descriptors of data that can be put on the
// clipboard. WriteOptions reports false when the representation does not
// exist on the running platform; such formats are never offered to the OS.
type Writable interface {
	WriteOptions() (WriteOpts, bool)
}

// Readable is implemented by descriptors of data that can be read back from
// the clipboard. ReadOptions reports false when the representation does not
// exist on the running platform. Parse turns the raw slot bytes into a T and
// reports false for malformed or truncated input; it must not panic.
type Readable[T any] interface {
	ReadOptions() (ReadOpts, bool)
	Parse(data []byte) (T, bool)
}
