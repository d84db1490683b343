// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// Configuration describes the renderer configuration
type Configuration struct {
	// PresentMode is used when the surface supports it, FIFO otherwise
	PresentMode vk.PresentMode

	// FenceTimeout bounds the wait for the previous frame, in nanoseconds
	FenceTimeout uint64

	Logger log.FieldLogger
}

// DefaultConfiguration presents in FIFO mode and waits up to a second per frame.
func DefaultConfiguration() Configuration {
	return Configuration{
		PresentMode:  vk.PresentModeFifo,
		FenceTimeout: 1e9,
	}
}

// PickSurfaceFormat returns the first of formats, or B8G8R8A8 sRGB when
// the surface leaves the choice open.
func PickSurfaceFormat(formats []vk.SurfaceFormat) (vk.Format, vk.ColorSpace) {
	if len(formats) == 0 || (len(formats) == 1 && formats[0].Format == vk.FormatUndefined) {
		return vk.FormatB8g8r8a8Unorm, vk.ColorSpaceSrgbNonlinear
	}
	return formats[0].Format, formats[0].ColorSpace
}
