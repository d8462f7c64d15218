//go:build darwin

package clipboard

// textUTI is NSPasteboardTypeString.
const textUTI = "public.utf8-plain-text"

var nativeTypes = map[builtinType]WriteOpts{
	typePDF:         {Identifier: "com.adobe.pdf", Kind: OpaqueData},
	typeGlyphsPlist: {Identifier: "Glyphs elements pasteboard type", Kind: BinaryPropertyList},
	typePNG:         {Identifier: "public.png", Kind: OpaqueData},
	typeHTML:        {Identifier: "public.html", Kind: PlainString},
}
