//go:build !debugNargs
// +build !debugNargs

package nargs

func debugf(fmt string, args ...interface{}) {}
func debug(args ...interface{})              {}
