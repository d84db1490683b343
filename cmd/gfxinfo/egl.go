// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build linux || freebsd || openbsd || windows
// +build linux freebsd openbsd windows

package main

import (
	"runtime"

	"github.com/devblok/graphics/egl"
	eglnative "github.com/devblok/graphics/egl/native"
	"github.com/devblok/graphics/gl"
	glnative "github.com/devblok/graphics/gl/native"
	log "github.com/sirupsen/logrus"
)

func eglReport(logger log.FieldLogger) (*EGLReport, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	drv := eglnative.New()
	ctx, err := egl.NewDefaultContext(drv, egl.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	display := ctx.Display()
	defer egl.Terminate(drv, display)
	defer ctx.Destroy()

	r := &EGLReport{
		Vendor:     egl.VendorString(drv, display),
		Version:    egl.VersionString(drv, display),
		ClientAPIs: egl.ClientAPINames(drv, display),
		Extensions: egl.ExtensionNames(drv, display),
	}
	r.GL = glReport(ctx, logger)
	return r, nil
}

// glReport makes ctx current on a small pbuffer and queries the GL
// strings. Failures only drop the GL part of the report.
func glReport(ctx *egl.Context, logger log.FieldLogger) *GLInfo {
	surface, err := ctx.CreatePbufferSurface(1, 1)
	if err == nil {
		err = ctx.Resume(surface)
	}
	if err != nil {
		logger.WithError(err).Info("no current context for GL queries")
		return nil
	}
	fns, err := glnative.New()
	if err != nil {
		logger.WithError(err).Info("GL entry points not loaded")
		return nil
	}
	dev := gl.NewDevice(fns, gl.WithLogger(logger))
	info := &GLInfo{}
	info.Vendor, info.Renderer, info.Version = dev.Info()
	return info
}
