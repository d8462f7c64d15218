//go:build windows

package clipboard

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procEmptyClipboard             = user32.NewProc("EmptyClipboard")
	procRegisterClipboardFormatW   = user32.NewProc("RegisterClipboardFormatW")
	procGetClipboardFormatNameW    = user32.NewProc("GetClipboardFormatNameW")
	procEnumClipboardFormats       = user32.NewProc("EnumClipboardFormats")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procGetClipboardData           = user32.NewProc("GetClipboardData")
	procSetClipboardData           = user32.NewProc("SetClipboardData")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

// predefined names the clipboard reports no registered name for.
var predefinedFormats = map[uint32]string{
	1:  "CF_TEXT",
	2:  "CF_BITMAP",
	3:  "CF_METAFILEPICT",
	4:  "CF_SYLK",
	5:  "CF_DIF",
	6:  "CF_TIFF",
	7:  "CF_OEMTEXT",
	8:  "CF_DIB",
	9:  "CF_PALETTE",
	10: "CF_PENDATA",
	11: "CF_RIFF",
	12: "CF_WAVE",
	13: "CF_UNICODETEXT",
	14: "CF_ENHMETAFILE",
	15: "CF_HDROP",
	16: "CF_LOCALE",
	17: "CF_DIBV5",
}

// winPort drives the Win32 clipboard. OpenClipboard binds the clipboard to
// the calling OS thread, so the goroutine is locked to its thread from Open
// to Close.
type winPort struct{}

var _ Port = (*winPort)(nil)

// NewPort returns the Win32 clipboard port.
func NewPort(log *slog.Logger) Port {
	if log == nil {
		log = slog.Default()
	}
	log.Debug("clipboard port selected", "port", "win32")
	return &winPort{}
}

func (w *winPort) Name() string { return "Win32 clipboard" }

// Open tries once; a clipboard held by another process is reported, not
// waited for.
func (w *winPort) Open() error {
	runtime.LockOSThread()
	if r, _, err := procOpenClipboard.Call(0); r == 0 {
		runtime.UnlockOSThread()
		return fmt.Errorf("OpenClipboard: %w: %w", ErrUnavailable, err)
	}
	return nil
}

func (w *winPort) Close() error {
	defer runtime.UnlockOSThread()
	if r, _, err := procCloseClipboard.Call(); r == 0 {
		return fmt.Errorf("CloseClipboard: %w", err)
	}
	return nil
}

func (w *winPort) Clear() error {
	if r, _, err := procEmptyClipboard.Call(); r == 0 {
		return fmt.Errorf("EmptyClipboard: %w", err)
	}
	return nil
}

// Declare is a no-op: Win32 formats need no announcement before
// SetClipboardData.
func (w *winPort) Declare([]NativeFormat) error { return nil }

func (w *winPort) Register(id Identifier) (NativeFormat, error) {
	if err := id.Validate(); err != nil {
		return NativeFormat{}, err
	}
	p, err := windows.UTF16PtrFromString(string(id))
	if err != nil {
		return NativeFormat{}, fmt.Errorf("%q: %w: %w", string(id), ErrRegister, err)
	}
	r, _, err := procRegisterClipboardFormatW.Call(uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return NativeFormat{}, fmt.Errorf("RegisterClipboardFormatW %q: %w: %w", string(id), ErrRegister, err)
	}
	return NativeFormat{ID: uint32(r), Name: string(id)}, nil
}

func (w *winPort) TextFormat() NativeFormat {
	return NativeFormat{ID: cfUnicodeText, Name: predefinedFormats[cfUnicodeText]}
}

// Write hands data to the clipboard in a movable global memory block. Text
// slots are stored as NUL-terminated UTF-16; every other slot keeps its
// bytes as they are.
func (w *winPort) Write(f NativeFormat, _ Kind, data []byte) error {
	payload := data
	if f.ID == cfUnicodeText {
		var err error
		if payload, err = encodeUTF16(data); err != nil {
			return err
		}
	}
	h, err := globalBlob(payload)
	if err != nil {
		return err
	}
	if r, _, err := procSetClipboardData.Call(uintptr(f.ID), h); r == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("SetClipboardData %s: %w", f, err)
	}
	// The system owns h from here on.
	return nil
}

func (w *winPort) Has(f NativeFormat) bool {
	r, _, _ := procIsClipboardFormatAvailable.Call(uintptr(f.ID))
	return r != 0
}

// Read copies exactly GlobalSize bytes out of the slot before unlocking it.
func (w *winPort) Read(f NativeFormat, _ Kind) ([]byte, error) {
	h, _, err := procGetClipboardData.Call(uintptr(f.ID))
	if h == 0 {
		return nil, fmt.Errorf("GetClipboardData %s: %w: %w", f, ErrAbsent, err)
	}
	size, _, _ := procGlobalSize.Call(h)
	out := make([]byte, size)
	if size > 0 {
		p, _, err := procGlobalLock.Call(h)
		if p == 0 {
			return nil, fmt.Errorf("GlobalLock %s: %w", f, err)
		}
		copy(out, lockedBytes(p, int(size)))
		procGlobalUnlock.Call(h)
	}
	if f.ID == cfUnicodeText {
		return decodeUTF16(out)
	}
	return out, nil
}

func (w *winPort) Formats() ([]NativeFormat, error) {
	var out []NativeFormat
	var id uintptr
	for {
		next, _, err := procEnumClipboardFormats.Call(id)
		if next == 0 {
			if errno, ok := err.(windows.Errno); ok && errno != 0 {
				return out, fmt.Errorf("EnumClipboardFormats: %w", err)
			}
			return out, nil
		}
		id = next
		f := NativeFormat{ID: uint32(id)}
		f.Name, _ = w.FormatName(f)
		out = append(out, f)
	}
}

func (w *winPort) FormatName(f NativeFormat) (string, bool) {
	if name, ok := predefinedFormats[f.ID]; ok {
		return name, true
	}
	buf := make([]uint16, 256)
	n, _, _ := procGetClipboardFormatNameW.Call(uintptr(f.ID), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return fmt.Sprintf("format #%d", f.ID), false
	}
	return windows.UTF16ToString(buf[:n]), true
}

// globalBlob copies b into a new movable global memory block.
func globalBlob(b []byte) (uintptr, error) {
	h, _, err := procGlobalAlloc.Call(gmemMoveable, uintptr(len(b)))
	if h == 0 {
		return 0, fmt.Errorf("GlobalAlloc: %w", err)
	}
	if len(b) == 0 {
		return h, nil
	}
	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		procGlobalFree.Call(h)
		return 0, fmt.Errorf("GlobalLock: %w", err)
	}
	copy(lockedBytes(p, len(b)), b)
	procGlobalUnlock.Call(h)
	return h, nil
}

// lockedBytes views n bytes at the address GlobalLock returned. The block is
// outside the Go heap and does not move until GlobalUnlock, so the view is
// valid only between the two calls.
func lockedBytes(addr uintptr, n int) []byte {
	p := *(*unsafe.Pointer)(unsafe.Pointer(&addr))
	return unsafe.Slice((*byte)(p), n)
}
