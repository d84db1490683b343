// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl

// Driver is the set of EGL entry points the wrappers forward to.
// Boolean results mirror EGLBoolean; the failure reason is read with
// GetError, exactly as with the C API. The native package binds it to
// the system libEGL.
type Driver interface {
	GetDisplay(native NativeDisplay) Display
	// GetPlatformDisplay is eglGetPlatformDisplayEXT. It returns NoDisplay
	// when the extension is not exposed by the loader.
	GetPlatformDisplay(platform uint32, native NativeDisplay, attribs []Int) Display
	Initialize(d Display) (major, minor Int, ok bool)
	Terminate(d Display) bool
	BindAPI(api API) bool

	ChooseConfig(d Display, attribs []Int, configs []Config) (n int, ok bool)
	CreateContext(d Display, cfg Config, share ContextHandle, attribs []Int) ContextHandle
	DestroyContext(d Display, ctx ContextHandle) bool

	CreateWindowSurface(d Display, cfg Config, win NativeWindow, attribs []Int) Surface
	CreatePbufferSurface(d Display, cfg Config, attribs []Int) Surface
	DestroySurface(d Display, s Surface) bool
	QuerySurface(d Display, s Surface, attrib Int) (Int, bool)

	MakeCurrent(d Display, draw, read Surface, ctx ContextHandle) bool
	SwapBuffers(d Display, s Surface) bool
	SwapInterval(d Display, interval Int) bool

	QueryString(d Display, name Int) string
	GetError() Code
}
