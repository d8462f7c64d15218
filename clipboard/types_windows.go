//go:build windows

package clipboard

// Registered clipboard format names. CF_HTML is left out: it needs the
// "Version:/StartHTML:" header that HTML payloads do not carry.
var nativeTypes = map[builtinType]WriteOpts{
	typePDF: {Identifier: "Portable Document Format", Kind: OpaqueData},
	typePNG: {Identifier: "PNG", Kind: OpaqueData},
}
