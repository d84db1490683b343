// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl_test

import (
	"testing"

	"github.com/devblok/graphics/egl"
	"github.com/stretchr/testify/assert"
)

func TestHasExtension(t *testing.T) {
	drv := newFakeDriver()
	drv.extensions = "KHR_foo KHR_bar"

	assert.True(t, egl.HasExtension(drv, fakeDefaultDisplay, "KHR_foo"))
	assert.True(t, egl.HasExtension(drv, fakeDefaultDisplay, "KHR_bar"))
	assert.False(t, egl.HasExtension(drv, fakeDefaultDisplay, "KHR_baz"))
	assert.False(t, egl.HasExtension(drv, fakeDefaultDisplay, "KHR"))
}

func TestExtensionNames(t *testing.T) {
	drv := newFakeDriver()
	drv.extensions = " KHR_foo  KHR_bar\tKHR_baz \n"

	assert.Equal(t, []string{"KHR_foo", "KHR_bar", "KHR_baz"}, egl.ExtensionNames(drv, fakeDefaultDisplay))

	drv.extensions = ""
	assert.Empty(t, egl.ExtensionNames(drv, fakeDefaultDisplay))
}

func TestForEachExtensionStops(t *testing.T) {
	drv := newFakeDriver()
	drv.extensions = "a b c d"

	var seen []string
	stopped := egl.ForEachExtension(drv, fakeDefaultDisplay, func(name string) bool {
		seen = append(seen, name)
		return name == "b"
	})

	assert.True(t, stopped)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestForEachNameIn(t *testing.T) {
	assert.False(t, egl.ForEachNameIn("", func(string) bool { return true }))
	assert.True(t, egl.ForEachNameIn("one", func(name string) bool { return name == "one" }))
}

func TestDisplayStrings(t *testing.T) {
	drv := newFakeDriver()

	assert.Equal(t, []string{"OpenGL_ES", "OpenGL"}, egl.ClientAPINames(drv, fakeDefaultDisplay))
	assert.Equal(t, "fake", egl.VendorString(drv, fakeDefaultDisplay))
	assert.Equal(t, "1.5 fake", egl.VersionString(drv, fakeDefaultDisplay))
}

func TestDefaultConfigAttribsTerminated(t *testing.T) {
	for _, attribs := range [][]egl.Int{egl.DefaultConfigAttribs(), egl.ANGLEDisplayAttribs()} {
		assert.Equal(t, egl.None, attribs[len(attribs)-1])
		assert.Equal(t, 1, len(attribs)%2, "attributes come in pairs before None")
	}
}
