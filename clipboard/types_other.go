//go:build !darwin && !windows && !linux

package clipboard

var nativeTypes = map[builtinType]WriteOpts{}
