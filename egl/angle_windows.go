// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl

import (
	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procGetDC     = user32.NewProc("GetDC")
	procReleaseDC = user32.NewProc("ReleaseDC")
)

// WindowContext is an ANGLE context created for a Win32 window.
// It owns the device context of the window.
type WindowContext struct {
	*Context

	hwnd windows.Handle
	hdc  uintptr
}

// NewANGLEWindowContext creates an ANGLE context for hwnd. Unless console is
// set, a direct composition window surface is created and made current.
func NewANGLEWindowContext(drv Driver, hwnd windows.Handle, console bool, opts ...Option) (*WindowContext, error) {
	hdc, _, _ := procGetDC.Call(uintptr(hwnd))
	wc := &WindowContext{
		hwnd: hwnd,
		hdc:  hdc,
	}
	ctx, err := NewANGLEContext(drv, NativeDisplay(hdc), opts...)
	wc.Context = ctx
	if err != nil {
		return wc, err
	}
	if console {
		if !drv.MakeCurrent(ctx.display, NoSurface, NoSurface, ctx.context) {
			return wc, ctx.report("eglMakeCurrent", drv.GetError())
		}
		return wc, nil
	}

	attribs := []Int{
		DirectCompositionANGLE, True,
		None,
	}
	s := drv.CreateWindowSurface(ctx.display, ctx.Config(), NativeWindow(hwnd), attribs)
	if s == NoSurface {
		return wc, ctx.report("eglCreateWindowSurface", drv.GetError())
	}
	return wc, ctx.Resume(s)
}

// Destroy tears the context down and releases the window's device context.
func (wc *WindowContext) Destroy() error {
	err := wc.Context.Destroy()
	if wc.hdc != 0 {
		procReleaseDC.Call(uintptr(wc.hwnd), wc.hdc)
		wc.hdc = 0
	}
	return err
}
