//go:build linux

package clipboard

// The X11 selection backend only carries text and PNG images.
var nativeTypes = map[builtinType]WriteOpts{
	typePNG: {Identifier: mimePNG, Kind: OpaqueData},
}
