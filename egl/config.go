// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package egl

const (
	colorSize = 8
	depthSize = 16
)

// DefaultConfigAttribs returns the config attributes used when none are given:
// ES2-renderable, window and pbuffer capable, RGBA8 with a 16 bit depth buffer.
func DefaultConfigAttribs() []Int {
	return []Int{
		RenderableType, OpenGLES2Bit,
		SurfaceType, WindowBit | PbufferBit,
		BlueSize, colorSize,
		GreenSize, colorSize,
		RedSize, colorSize,
		AlphaSize, colorSize,
		DepthSize, depthSize,
		None,
	}
}

// ANGLEDisplayAttribs selects the hardware D3D11 renderer of ANGLE
// with any supported feature level.
func ANGLEDisplayAttribs() []Int {
	return []Int{
		PlatformANGLEType, PlatformANGLETypeD3D11,
		PlatformANGLEMaxVersionMajor, DontCare,
		PlatformANGLEMaxVersionMinor, DontCare,
		PlatformANGLEDeviceType, PlatformANGLEDeviceTypeHardware,
		None,
	}
}

// NewANGLEContext creates a context on the ANGLE platform display of native.
// It is the ANGLE counterpart of NewContext and yields the same Context type.
func NewANGLEContext(drv Driver, native NativeDisplay, opts ...Option) (*Context, error) {
	display := drv.GetPlatformDisplay(PlatformANGLE, native, ANGLEDisplayAttribs())
	if display == NoDisplay {
		c := newContext(drv, opts...)
		code := drv.GetError()
		if code == Success {
			code = BadDisplay
		}
		return c, c.report("eglGetPlatformDisplayEXT", code)
	}
	if !drv.BindAPI(OpenGLESAPI) {
		c := newContext(drv, opts...)
		c.display = display
		return c, c.report("eglBindAPI", drv.GetError())
	}
	return NewContext(drv, display, NoContext, opts...)
}
