package clipboard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported means the representation does not exist on the running
	// platform or port.
	ErrUnsupported = errors.New("clipboard: unsupported on this platform")
	// ErrUnavailable means the clipboard could not be acquired.
	ErrUnavailable = errors.New("clipboard: unavailable")
	// ErrAbsent means the clipboard does not hold the requested format.
	ErrAbsent = errors.New("clipboard: format absent")
	// ErrMalformed means the stored bytes could not be encoded or parsed.
	ErrMalformed = errors.New("clipboard: malformed data")
	// ErrRegister means a native identifier could not be registered.
	ErrRegister = errors.New("clipboard: identifier registration failed")
)

// NativeFormat is a resolved native clipboard slot. ID is the registered
// atom on platforms that key slots by number and zero elsewhere; Name is the
// identifier it was registered from.
type NativeFormat struct {
	ID   uint32
	Name string
}

func (f NativeFormat) String() string {
	if f.ID == 0 {
		return f.Name
	}
	return fmt.Sprintf("%s (#%d)", f.Name, f.ID)
}

// Port is the narrow native clipboard interface implemented once per OS.
// All unsafe memory handling stays inside the implementation; byte slices
// crossing the interface are always owned by the caller.
//
// Open acquires exclusive access and fails fast if another process holds
// the clipboard. Every other method except Name, Register, TextFormat and
// FormatName must be called between Open and Close.
type Port interface {
	// Name returns a human readable name for the port.
	Name() string

	Open() error
	Close() error

	// Clear removes all current contents.
	Clear() error

	// Declare announces the slots about to be written, in order.
	Declare(formats []NativeFormat) error

	// Register resolves id to a native slot.
	Register(id Identifier) (NativeFormat, error)

	// TextFormat returns the slot holding plain text.
	TextFormat() NativeFormat

	// Write stores data in the slot. For PlainString data is UTF-8 and
	// the port converts it to the native text representation.
	Write(f NativeFormat, kind Kind, data []byte) error

	// Has reports whether the slot is present.
	Has(f NativeFormat) bool

	// Read copies the slot's bytes. For PlainString the result is UTF-8.
	Read(f NativeFormat, kind Kind) ([]byte, error)

	// Formats lists the present slots.
	Formats() ([]NativeFormat, error)

	// FormatName returns the human readable name of a native slot.
	FormatName(f NativeFormat) (string, bool)
}
