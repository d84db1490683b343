// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build linux || freebsd || openbsd
// +build linux freebsd openbsd

package native_test

import (
	"image"
	"runtime"
	"testing"

	"github.com/devblok/graphics/egl"
	eglnative "github.com/devblok/graphics/egl/native"
	"github.com/devblok/graphics/gl"
	"github.com/devblok/graphics/gl/native"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// currentContext makes a desktop OpenGL 3.3 context current on a pbuffer,
// skipping the test when the platform cannot provide one.
func currentContext(t *testing.T) *egl.Context {
	t.Helper()
	drv := eglnative.New()
	if !drv.BindAPI(egl.OpenGLAPI) {
		t.Skip("desktop OpenGL is not available through EGL")
	}
	logger, _ := test.NewNullLogger()
	attribs := []egl.Int{
		egl.RenderableType, egl.OpenGLBit,
		egl.SurfaceType, egl.PbufferBit,
		egl.RedSize, 8,
		egl.GreenSize, 8,
		egl.BlueSize, 8,
		egl.AlphaSize, 8,
		egl.None,
	}
	ctx, err := egl.NewDefaultContext(drv,
		egl.WithLogger(logger),
		egl.WithConfigAttribs(attribs),
		egl.WithClientVersion(3, 3))
	if err != nil {
		t.Skipf("no OpenGL 3.3 context: %v", err)
	}
	surface, err := ctx.CreatePbufferSurface(8, 8)
	if err != nil {
		ctx.Destroy()
		t.Skipf("no pbuffer: %v", err)
	}
	require.NoError(t, ctx.Resume(surface))
	return ctx
}

func TestFramebufferReadback(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ctx := currentContext(t)
	defer ctx.Destroy()

	f, err := native.New()
	require.NoError(t, err)
	dev := gl.NewDevice(f)
	_, _, version := dev.Info()
	assert.NotEmpty(t, version)

	fb, err := dev.NewFramebuffer(8, 8)
	require.NoError(t, err)
	defer fb.Release()
	require.NoError(t, fb.Bind())

	pixels := make([]byte, 8*8*4)
	require.NoError(t, fb.ReadPixels(8, 8, pixels))

	rb, err := dev.NewReadback(8, 8)
	require.NoError(t, err)
	defer rb.Release()
	require.NoError(t, rb.Pack(0, fb.Name(), image.Rect(0, 0, 8, 8)))
	require.NoError(t, rb.MapAndInvoke(0, func(mapping []byte) {
		assert.Len(t, mapping, 8*8*4)
	}))
}
