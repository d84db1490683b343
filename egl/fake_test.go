// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl_test

import (
	"github.com/devblok/graphics/egl"
)

const (
	fakeDefaultDisplay egl.Display = 0x10
	fakeANGLEDisplay   egl.Display = 0x20
	invalidDisplay     egl.Display = 0xdead
)

type fakeSurface struct {
	width, height egl.Int
}

type current struct {
	draw, read egl.Surface
	ctx        egl.ContextHandle
}

// fakeDriver is an in-memory EGL implementation reporting errors
// through GetError the way libEGL does.
type fakeDriver struct {
	extensions string
	windows    map[egl.NativeWindow][2]egl.Int

	// quirks
	rejectSurfacelessCurrent bool
	swapError                egl.Code
	noPlatformDisplay        bool

	err         egl.Code
	initialized map[egl.Display]bool
	contexts    map[egl.ContextHandle]bool
	surfaces    map[egl.Surface]fakeSurface
	current     current
	next        uintptr
	api         egl.API

	swaps      int
	terminated []egl.Display
	calls      []string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		extensions:  "EGL_KHR_foo EGL_KHR_bar EGL_KHR_surfaceless_context",
		windows:     map[egl.NativeWindow][2]egl.Int{},
		err:         egl.Success,
		initialized: map[egl.Display]bool{},
		contexts:    map[egl.ContextHandle]bool{},
		surfaces:    map[egl.Surface]fakeSurface{},
		next:        0x100,
	}
}

func (f *fakeDriver) fail(code egl.Code) bool {
	f.err = code
	return false
}

func (f *fakeDriver) handle() uintptr {
	f.next++
	return f.next
}

func (f *fakeDriver) valid(d egl.Display) bool {
	return d == fakeDefaultDisplay || d == fakeANGLEDisplay
}

func (f *fakeDriver) GetDisplay(native egl.NativeDisplay) egl.Display {
	f.calls = append(f.calls, "GetDisplay")
	if native == egl.DefaultDisplay {
		return fakeDefaultDisplay
	}
	return egl.Display(native)
}

func (f *fakeDriver) GetPlatformDisplay(platform uint32, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	f.calls = append(f.calls, "GetPlatformDisplay")
	if f.noPlatformDisplay || platform != egl.PlatformANGLE {
		f.err = egl.BadParameter
		return egl.NoDisplay
	}
	return fakeANGLEDisplay
}

func (f *fakeDriver) Initialize(d egl.Display) (egl.Int, egl.Int, bool) {
	f.calls = append(f.calls, "Initialize")
	if !f.valid(d) {
		return 0, 0, f.fail(egl.BadDisplay)
	}
	f.initialized[d] = true
	return 1, 5, true
}

func (f *fakeDriver) Terminate(d egl.Display) bool {
	if !f.valid(d) {
		return f.fail(egl.BadDisplay)
	}
	f.initialized[d] = false
	f.terminated = append(f.terminated, d)
	return true
}

func (f *fakeDriver) BindAPI(api egl.API) bool {
	f.api = api
	return true
}

func (f *fakeDriver) ChooseConfig(d egl.Display, attribs []egl.Int, configs []egl.Config) (int, bool) {
	if !f.initialized[d] {
		return 0, f.fail(egl.NotInitialized)
	}
	if len(attribs) == 0 || attribs[len(attribs)-1] != egl.None {
		return 0, f.fail(egl.BadAttribute)
	}
	n := 2
	if len(configs) < n {
		n = len(configs)
	}
	for i := 0; i < n; i++ {
		configs[i] = egl.Config(0x1000 + i)
	}
	return n, true
}

func (f *fakeDriver) CreateContext(d egl.Display, cfg egl.Config, share egl.ContextHandle, attribs []egl.Int) egl.ContextHandle {
	if !f.initialized[d] {
		f.err = egl.NotInitialized
		return egl.NoContext
	}
	if share != egl.NoContext && !f.contexts[share] {
		f.err = egl.BadContext
		return egl.NoContext
	}
	ctx := egl.ContextHandle(f.handle())
	f.contexts[ctx] = true
	return ctx
}

func (f *fakeDriver) DestroyContext(d egl.Display, ctx egl.ContextHandle) bool {
	if !f.valid(d) {
		return f.fail(egl.BadDisplay)
	}
	if !f.contexts[ctx] {
		return f.fail(egl.BadContext)
	}
	delete(f.contexts, ctx)
	return true
}

func (f *fakeDriver) CreateWindowSurface(d egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	size, ok := f.windows[win]
	if !ok {
		f.err = egl.BadNativeWindow
		return egl.NoSurface
	}
	s := egl.Surface(f.handle())
	f.surfaces[s] = fakeSurface{width: size[0], height: size[1]}
	return s
}

func (f *fakeDriver) CreatePbufferSurface(d egl.Display, cfg egl.Config, attribs []egl.Int) egl.Surface {
	if !f.initialized[d] {
		f.err = egl.NotInitialized
		return egl.NoSurface
	}
	var fs fakeSurface
	for i := 0; i+1 < len(attribs); i += 2 {
		switch attribs[i] {
		case egl.Width:
			fs.width = attribs[i+1]
		case egl.Height:
			fs.height = attribs[i+1]
		}
	}
	s := egl.Surface(f.handle())
	f.surfaces[s] = fs
	return s
}

func (f *fakeDriver) DestroySurface(d egl.Display, s egl.Surface) bool {
	if _, ok := f.surfaces[s]; !ok {
		return f.fail(egl.BadSurface)
	}
	delete(f.surfaces, s)
	return true
}

func (f *fakeDriver) QuerySurface(d egl.Display, s egl.Surface, attrib egl.Int) (egl.Int, bool) {
	fs, ok := f.surfaces[s]
	if !ok {
		return 0, f.fail(egl.BadSurface)
	}
	switch attrib {
	case egl.Width:
		return fs.width, true
	case egl.Height:
		return fs.height, true
	}
	return 0, f.fail(egl.BadAttribute)
}

func (f *fakeDriver) MakeCurrent(d egl.Display, draw, read egl.Surface, ctx egl.ContextHandle) bool {
	f.calls = append(f.calls, "MakeCurrent")
	if !f.valid(d) {
		return f.fail(egl.BadDisplay)
	}
	if ctx == egl.NoContext {
		f.current = current{}
		return true
	}
	if !f.contexts[ctx] {
		return f.fail(egl.BadContext)
	}
	if draw == egl.NoSurface && f.rejectSurfacelessCurrent {
		return f.fail(egl.BadMatch)
	}
	if draw != egl.NoSurface {
		if _, ok := f.surfaces[draw]; !ok {
			return f.fail(egl.BadSurface)
		}
	}
	f.current = current{draw: draw, read: read, ctx: ctx}
	return true
}

func (f *fakeDriver) SwapBuffers(d egl.Display, s egl.Surface) bool {
	if !f.valid(d) {
		return f.fail(egl.BadDisplay)
	}
	if f.swapError != 0 {
		return f.fail(f.swapError)
	}
	if _, ok := f.surfaces[s]; !ok {
		return f.fail(egl.BadSurface)
	}
	f.swaps++
	return true
}

func (f *fakeDriver) SwapInterval(d egl.Display, interval egl.Int) bool {
	if !f.valid(d) {
		return f.fail(egl.BadDisplay)
	}
	return true
}

func (f *fakeDriver) QueryString(d egl.Display, name egl.Int) string {
	switch name {
	case egl.Extensions:
		return f.extensions
	case egl.Vendor:
		return "fake"
	case egl.Version:
		return "1.5 fake"
	case egl.ClientAPIs:
		return "OpenGL_ES OpenGL"
	}
	return ""
}

func (f *fakeDriver) GetError() egl.Code {
	code := f.err
	f.err = egl.Success
	return code
}
