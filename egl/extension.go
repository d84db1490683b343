// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl

import (
	"strings"
)

// ForEachNameIn calls fn for every whitespace separated name of list
// until fn returns true. It reports whether fn stopped the scan.
func ForEachNameIn(list string, fn func(name string) bool) bool {
	for _, name := range strings.Fields(list) {
		if fn(name) {
			return true
		}
	}
	return false
}

// ForEachExtension scans the extension string of display.
// The scan stops when fn returns true, and so does the result.
func ForEachExtension(drv Driver, display Display, fn func(name string) bool) bool {
	return ForEachNameIn(drv.QueryString(display, Extensions), fn)
}

// ExtensionNames returns every extension reported for display.
func ExtensionNames(drv Driver, display Display) []string {
	var names []string
	ForEachExtension(drv, display, func(name string) bool {
		names = append(names, name)
		return false
	})
	return names
}

// HasExtension reports whether display supports the named extension.
func HasExtension(drv Driver, display Display, name string) bool {
	return ForEachExtension(drv, display, func(ext string) bool {
		return ext == name
	})
}

// ClientAPINames returns the client APIs supported by display.
func ClientAPINames(drv Driver, display Display) []string {
	return strings.Fields(drv.QueryString(display, ClientAPIs))
}

// VendorString returns the vendor string of the EGL implementation.
func VendorString(drv Driver, display Display) string {
	return drv.QueryString(display, Vendor)
}

// VersionString returns the version string of the EGL implementation.
func VersionString(drv Driver, display Display) string {
	return drv.QueryString(display, Version)
}
