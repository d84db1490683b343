// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build linux || freebsd || openbsd || windows
// +build linux freebsd openbsd windows

// Package native binds egl.Driver to the system libEGL.
package native

/*
#cgo linux,!android pkg-config: egl
#cgo freebsd openbsd android windows LDFLAGS: -lEGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo openbsd CFLAGS: -I/usr/X11R6/include
#cgo openbsd LDFLAGS: -L/usr/X11R6/lib
#cgo linux CFLAGS: -DEGL_NO_X11

#include <stdint.h>
#include <stddef.h>
#include <EGL/egl.h>
#include <EGL/eglext.h>

static uintptr_t gfx_getDisplay(uintptr_t native) {
	return (uintptr_t)eglGetDisplay((EGLNativeDisplayType)native);
}

static uintptr_t gfx_getPlatformDisplay(EGLenum platform, uintptr_t native, const EGLint *attribs) {
	PFNEGLGETPLATFORMDISPLAYEXTPROC getPlatformDisplay =
		(PFNEGLGETPLATFORMDISPLAYEXTPROC)eglGetProcAddress("eglGetPlatformDisplayEXT");
	if (getPlatformDisplay == NULL) {
		return 0;
	}
	return (uintptr_t)getPlatformDisplay(platform, (void *)native, attribs);
}

static EGLBoolean gfx_initialize(uintptr_t dpy, EGLint *major, EGLint *minor) {
	return eglInitialize((EGLDisplay)dpy, major, minor);
}

static EGLBoolean gfx_terminate(uintptr_t dpy) {
	return eglTerminate((EGLDisplay)dpy);
}

static EGLBoolean gfx_chooseConfig(uintptr_t dpy, const EGLint *attribs, uintptr_t *configs, EGLint size, EGLint *n) {
	return eglChooseConfig((EGLDisplay)dpy, attribs, (EGLConfig *)configs, size, n);
}

static uintptr_t gfx_createContext(uintptr_t dpy, uintptr_t cfg, uintptr_t share, const EGLint *attribs) {
	return (uintptr_t)eglCreateContext((EGLDisplay)dpy, (EGLConfig)cfg, (EGLContext)share, attribs);
}

static EGLBoolean gfx_destroyContext(uintptr_t dpy, uintptr_t ctx) {
	return eglDestroyContext((EGLDisplay)dpy, (EGLContext)ctx);
}

static uintptr_t gfx_createWindowSurface(uintptr_t dpy, uintptr_t cfg, uintptr_t win, const EGLint *attribs) {
	return (uintptr_t)eglCreateWindowSurface((EGLDisplay)dpy, (EGLConfig)cfg, (EGLNativeWindowType)win, attribs);
}

static uintptr_t gfx_createPbufferSurface(uintptr_t dpy, uintptr_t cfg, const EGLint *attribs) {
	return (uintptr_t)eglCreatePbufferSurface((EGLDisplay)dpy, (EGLConfig)cfg, attribs);
}

static EGLBoolean gfx_destroySurface(uintptr_t dpy, uintptr_t s) {
	return eglDestroySurface((EGLDisplay)dpy, (EGLSurface)s);
}

static EGLBoolean gfx_querySurface(uintptr_t dpy, uintptr_t s, EGLint attrib, EGLint *value) {
	return eglQuerySurface((EGLDisplay)dpy, (EGLSurface)s, attrib, value);
}

static EGLBoolean gfx_makeCurrent(uintptr_t dpy, uintptr_t draw, uintptr_t read, uintptr_t ctx) {
	return eglMakeCurrent((EGLDisplay)dpy, (EGLSurface)draw, (EGLSurface)read, (EGLContext)ctx);
}

static EGLBoolean gfx_swapBuffers(uintptr_t dpy, uintptr_t s) {
	return eglSwapBuffers((EGLDisplay)dpy, (EGLSurface)s);
}

static EGLBoolean gfx_swapInterval(uintptr_t dpy, EGLint interval) {
	return eglSwapInterval((EGLDisplay)dpy, interval);
}

static const char *gfx_queryString(uintptr_t dpy, EGLint name) {
	return eglQueryString((EGLDisplay)dpy, name);
}
*/
import "C"

import (
	"unsafe"

	"github.com/devblok/graphics/egl"
)

var _ egl.Driver = (*Driver)(nil)

// Driver calls straight into libEGL.
type Driver struct{}

// New returns the libEGL driver.
func New() *Driver {
	return &Driver{}
}

func attribPtr(attribs []egl.Int) *C.EGLint {
	if len(attribs) == 0 {
		return nil
	}
	return (*C.EGLint)(unsafe.Pointer(&attribs[0]))
}

func ok(b C.EGLBoolean) bool {
	return b == C.EGL_TRUE
}

// GetDisplay implements egl.Driver.
func (*Driver) GetDisplay(native egl.NativeDisplay) egl.Display {
	return egl.Display(C.gfx_getDisplay(C.uintptr_t(native)))
}

// GetPlatformDisplay implements egl.Driver.
func (*Driver) GetPlatformDisplay(platform uint32, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	return egl.Display(C.gfx_getPlatformDisplay(C.EGLenum(platform), C.uintptr_t(native), attribPtr(attribs)))
}

// Initialize implements egl.Driver.
func (*Driver) Initialize(d egl.Display) (egl.Int, egl.Int, bool) {
	var major, minor C.EGLint
	ret := C.gfx_initialize(C.uintptr_t(d), &major, &minor)
	return egl.Int(major), egl.Int(minor), ok(ret)
}

// Terminate implements egl.Driver.
func (*Driver) Terminate(d egl.Display) bool {
	return ok(C.gfx_terminate(C.uintptr_t(d)))
}

// BindAPI implements egl.Driver.
func (*Driver) BindAPI(api egl.API) bool {
	return ok(C.eglBindAPI(C.EGLenum(api)))
}

// ChooseConfig implements egl.Driver.
func (*Driver) ChooseConfig(d egl.Display, attribs []egl.Int, configs []egl.Config) (int, bool) {
	var n C.EGLint
	var out *C.uintptr_t
	if len(configs) > 0 {
		out = (*C.uintptr_t)(unsafe.Pointer(&configs[0]))
	}
	ret := C.gfx_chooseConfig(C.uintptr_t(d), attribPtr(attribs), out, C.EGLint(len(configs)), &n)
	return int(n), ok(ret)
}

// CreateContext implements egl.Driver.
func (*Driver) CreateContext(d egl.Display, cfg egl.Config, share egl.ContextHandle, attribs []egl.Int) egl.ContextHandle {
	return egl.ContextHandle(C.gfx_createContext(C.uintptr_t(d), C.uintptr_t(cfg), C.uintptr_t(share), attribPtr(attribs)))
}

// DestroyContext implements egl.Driver.
func (*Driver) DestroyContext(d egl.Display, ctx egl.ContextHandle) bool {
	return ok(C.gfx_destroyContext(C.uintptr_t(d), C.uintptr_t(ctx)))
}

// CreateWindowSurface implements egl.Driver.
func (*Driver) CreateWindowSurface(d egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	return egl.Surface(C.gfx_createWindowSurface(C.uintptr_t(d), C.uintptr_t(cfg), C.uintptr_t(win), attribPtr(attribs)))
}

// CreatePbufferSurface implements egl.Driver.
func (*Driver) CreatePbufferSurface(d egl.Display, cfg egl.Config, attribs []egl.Int) egl.Surface {
	return egl.Surface(C.gfx_createPbufferSurface(C.uintptr_t(d), C.uintptr_t(cfg), attribPtr(attribs)))
}

// DestroySurface implements egl.Driver.
func (*Driver) DestroySurface(d egl.Display, s egl.Surface) bool {
	return ok(C.gfx_destroySurface(C.uintptr_t(d), C.uintptr_t(s)))
}

// QuerySurface implements egl.Driver.
func (*Driver) QuerySurface(d egl.Display, s egl.Surface, attrib egl.Int) (egl.Int, bool) {
	var value C.EGLint
	ret := C.gfx_querySurface(C.uintptr_t(d), C.uintptr_t(s), C.EGLint(attrib), &value)
	return egl.Int(value), ok(ret)
}

// MakeCurrent implements egl.Driver.
func (*Driver) MakeCurrent(d egl.Display, draw, read egl.Surface, ctx egl.ContextHandle) bool {
	return ok(C.gfx_makeCurrent(C.uintptr_t(d), C.uintptr_t(draw), C.uintptr_t(read), C.uintptr_t(ctx)))
}

// SwapBuffers implements egl.Driver.
func (*Driver) SwapBuffers(d egl.Display, s egl.Surface) bool {
	return ok(C.gfx_swapBuffers(C.uintptr_t(d), C.uintptr_t(s)))
}

// SwapInterval implements egl.Driver.
func (*Driver) SwapInterval(d egl.Display, interval egl.Int) bool {
	return ok(C.gfx_swapInterval(C.uintptr_t(d), C.EGLint(interval)))
}

// QueryString implements egl.Driver.
func (*Driver) QueryString(d egl.Display, name egl.Int) string {
	return C.GoString(C.gfx_queryString(C.uintptr_t(d), C.EGLint(name)))
}

// GetError implements egl.Driver.
func (*Driver) GetError() egl.Code {
	return egl.Code(C.eglGetError())
}
