package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"github.com/spf13/cobra"

	"go.klb.dev/pasteboard/clipboard"
)

const (
	typeText   = "text"
	typeAuto   = "auto"
	typeNative = "native"
)

// descriptor is a built-in type usable for both copy and paste.
type descriptor interface {
	clipboard.Writable
	ReadOptions() (clipboard.ReadOpts, bool)
}

var builtinTypes = map[string]descriptor{
	"pdf":    clipboard.PDF{},
	"png":    clipboard.PNG{},
	"html":   clipboard.HTML{},
	"glyphs": clipboard.GlyphsBinaryPlist{},
}

// sniffed maps filetype MIME values to built-in type names.
var sniffed = map[string]string{
	"application/pdf": "pdf",
	"image/png":       "png",
}

// rawBytes reads a representation without decoding it.
type rawBytes struct {
	d interface {
		ReadOptions() (clipboard.ReadOpts, bool)
	}
}

func (r rawBytes) ReadOptions() (clipboard.ReadOpts, bool) { return r.d.ReadOptions() }
func (rawBytes) Parse(data []byte) ([]byte, bool)          { return data, true }

// detectType sniffs data for a built-in type, falling back to text for
// valid UTF-8.
func detectType(data []byte) (string, error) {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		if name, ok := sniffed[kind.MIME.Value]; ok {
			return name, nil
		}
	}
	if utf8.Valid(data) {
		return typeText, nil
	}
	return "", fmt.Errorf("cannot detect type of %d bytes of binary data; pass --type", len(data))
}

// resolveDescriptor returns the descriptor for a non-text type name.
func resolveDescriptor(typ, id, kind string) (descriptor, error) {
	if typ == typeNative {
		if id == "" {
			return nil, fmt.Errorf("--type native requires --id")
		}
		k, err := clipboard.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		return clipboard.Native{Identifier: clipboard.Identifier(id), Kind: k}, nil
	}
	d, ok := builtinTypes[typ]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", typ)
	}
	return d, nil
}

// addTypeFlags adds --type, --id and --kind.
func addTypeFlags(cmd *cobra.Command, def string) {
	f := cmd.Flags()
	f.String("type", def, "data type: text|pdf|png|html|glyphs|native"+autoHint(def))
	f.String("id", "", "native identifier for --type native (UTI, Windows format name or MIME type)")
	f.String("kind", "data", "packaging for --type native: string|data|binary-plist")
}

func autoHint(def string) string {
	if def == typeAuto {
		return "|auto"
	}
	return ""
}
