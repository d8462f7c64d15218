//go:build darwin

package clipboard

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
// #include <stdlib.h>
// #include <string.h>
//
// static NSString *pb_type(const char *s) {
//     return [NSString stringWithUTF8String:s];
// }
//
// static void pb_clear(void) {
//     @autoreleasepool {
//         [[NSPasteboard generalPasteboard] clearContents];
//     }
// }
//
// static void pb_declare(char **types, int n) {
//     @autoreleasepool {
//         NSMutableArray *arr = [NSMutableArray arrayWithCapacity:n];
//         for (int i = 0; i < n; i++) {
//             [arr addObject:pb_type(types[i])];
//         }
//         [[NSPasteboard generalPasteboard] declareTypes:arr owner:nil];
//     }
// }
//
// static int pb_set_string(const char *type, const void *bytes, long len) {
//     @autoreleasepool {
//         NSString *s = [[[NSString alloc] initWithBytes:bytes length:len encoding:NSUTF8StringEncoding] autorelease];
//         if (s == nil) {
//             return 0;
//         }
//         return [[NSPasteboard generalPasteboard] setString:s forType:pb_type(type)] ? 1 : 0;
//     }
// }
//
// static int pb_set_data(const char *type, const void *bytes, long len) {
//     @autoreleasepool {
//         NSData *d = [NSData dataWithBytes:bytes length:len];
//         return [[NSPasteboard generalPasteboard] setData:d forType:pb_type(type)] ? 1 : 0;
//     }
// }
//
// // pb_set_plist returns -1 when the bytes are not a property list.
// static int pb_set_plist(const char *type, const void *bytes, long len) {
//     @autoreleasepool {
//         NSData *d = [NSData dataWithBytes:bytes length:len];
//         NSError *err = nil;
//         id plist = [NSPropertyListSerialization propertyListWithData:d
//                                                              options:NSPropertyListImmutable
//                                                               format:NULL
//                                                                error:&err];
//         if (plist == nil) {
//             return -1;
//         }
//         return [[NSPasteboard generalPasteboard] setPropertyList:plist forType:pb_type(type)] ? 1 : 0;
//     }
// }
//
// static int pb_has(const char *type) {
//     @autoreleasepool {
//         NSArray *types = [[NSPasteboard generalPasteboard] types];
//         return [types containsObject:pb_type(type)] ? 1 : 0;
//     }
// }
//
// // pb_read copies a slot into malloc'd memory; *len is -1 when absent.
// static void *pb_read(const char *type, int as_string, long *len) {
//     @autoreleasepool {
//         NSPasteboard *pb = [NSPasteboard generalPasteboard];
//         const void *src = NULL;
//         NSData *d = nil;
//         if (as_string) {
//             NSString *s = [pb stringForType:pb_type(type)];
//             if (s != nil) {
//                 d = [s dataUsingEncoding:NSUTF8StringEncoding];
//             }
//         } else {
//             d = [pb dataForType:pb_type(type)];
//         }
//         if (d == nil) {
//             *len = -1;
//             return NULL;
//         }
//         *len = (long)[d length];
//         src = [d bytes];
//         void *buf = malloc(*len > 0 ? *len : 1);
//         memcpy(buf, src, *len);
//         return buf;
//     }
// }
//
// static char **pb_types(int *n) {
//     @autoreleasepool {
//         NSArray *types = [[NSPasteboard generalPasteboard] types];
//         *n = (int)[types count];
//         char **out = malloc(sizeof(char *) * (*n > 0 ? *n : 1));
//         for (int i = 0; i < *n; i++) {
//             out[i] = strdup([[types objectAtIndex:i] UTF8String]);
//         }
//         return out;
//     }
// }
import "C"

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// pasteboardPort drives the general NSPasteboard. Slots are keyed by UTI, so
// registration only validates the identifier. NSPasteboard has no exclusive
// lock to take: Open and Close only bracket the operation.
type pasteboardPort struct{}

var _ Port = (*pasteboardPort)(nil)

// NewPort returns the NSPasteboard port.
func NewPort(log *slog.Logger) Port {
	if log == nil {
		log = slog.Default()
	}
	log.Debug("clipboard port selected", "port", "nspasteboard")
	return &pasteboardPort{}
}

func (p *pasteboardPort) Name() string { return "macOS NSPasteboard" }

func (p *pasteboardPort) Open() error  { return nil }
func (p *pasteboardPort) Close() error { return nil }

func (p *pasteboardPort) Clear() error {
	C.pb_clear()
	return nil
}

func (p *pasteboardPort) Declare(formats []NativeFormat) error {
	if len(formats) == 0 {
		return nil
	}
	arr := (**C.char)(C.malloc(C.size_t(len(formats)) * C.size_t(unsafe.Sizeof((*C.char)(nil)))))
	defer C.free(unsafe.Pointer(arr))
	types := unsafe.Slice(arr, len(formats))
	for i, f := range formats {
		types[i] = C.CString(f.Name)
	}
	defer func() {
		for _, t := range types {
			C.free(unsafe.Pointer(t))
		}
	}()
	C.pb_declare(arr, C.int(len(formats)))
	return nil
}

func (p *pasteboardPort) Register(id Identifier) (NativeFormat, error) {
	if err := id.Validate(); err != nil {
		return NativeFormat{}, err
	}
	return NativeFormat{Name: string(id)}, nil
}

func (p *pasteboardPort) TextFormat() NativeFormat { return NativeFormat{Name: textUTI} }

func (p *pasteboardPort) Write(f NativeFormat, kind Kind, data []byte) error {
	ctype := C.CString(f.Name)
	defer C.free(unsafe.Pointer(ctype))
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	n := C.long(len(data))

	var ok C.int
	switch kind {
	case PlainString:
		ok = C.pb_set_string(ctype, ptr, n)
	case OpaqueData:
		ok = C.pb_set_data(ctype, ptr, n)
	case BinaryPropertyList:
		ok = C.pb_set_plist(ctype, ptr, n)
	default:
		return fmt.Errorf("kind %v: %w", kind, ErrUnsupported)
	}
	switch ok {
	case 1:
		return nil
	case -1:
		return fmt.Errorf("%s: property list serialization failed: %w", f, ErrMalformed)
	default:
		return fmt.Errorf("%s: pasteboard refused %s", f, kind)
	}
}

func (p *pasteboardPort) Has(f NativeFormat) bool {
	ctype := C.CString(f.Name)
	defer C.free(unsafe.Pointer(ctype))
	return C.pb_has(ctype) != 0
}

func (p *pasteboardPort) Read(f NativeFormat, kind Kind) ([]byte, error) {
	ctype := C.CString(f.Name)
	defer C.free(unsafe.Pointer(ctype))
	asString := C.int(0)
	if kind == PlainString {
		asString = 1
	}
	var n C.long
	buf := C.pb_read(ctype, asString, &n)
	if n < 0 {
		return nil, fmt.Errorf("pasteboard returned nil for %s: %w", f, ErrAbsent)
	}
	defer C.free(buf)
	return C.GoBytes(buf, C.int(n)), nil
}

func (p *pasteboardPort) Formats() ([]NativeFormat, error) {
	var n C.int
	arr := C.pb_types(&n)
	defer C.free(unsafe.Pointer(arr))
	types := unsafe.Slice(arr, int(n))
	out := make([]NativeFormat, len(types))
	for i, t := range types {
		out[i] = NativeFormat{Name: C.GoString(t)}
		C.free(unsafe.Pointer(t))
	}
	return out, nil
}

func (p *pasteboardPort) FormatName(f NativeFormat) (string, bool) {
	return f.Name, f.Name != ""
}
