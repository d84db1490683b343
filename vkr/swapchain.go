// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/vulkan-go/vulkan"
)

var compositeAlphaFlags = []vk.CompositeAlphaFlagBits{
	vk.CompositeAlphaOpaqueBit,
	vk.CompositeAlphaPreMultipliedBit,
	vk.CompositeAlphaPostMultipliedBit,
	vk.CompositeAlphaInheritBit,
}

// CompositeAlpha picks the first supported composite alpha mode,
// preferring opaque.
func CompositeAlpha(supported vk.CompositeAlphaFlags) vk.CompositeAlphaFlagBits {
	for _, flag := range compositeAlphaFlags {
		if supported&vk.CompositeAlphaFlags(flag) != 0 {
			return flag
		}
	}
	return vk.CompositeAlphaOpaqueBit
}

// SwapchainImageCount asks for one image more than the minimum,
// within the maximum when the surface has one.
func SwapchainImageCount(caps vk.SurfaceCapabilities) uint32 {
	caps.Deref()
	count := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && count > caps.MaxImageCount {
		count = caps.MaxImageCount
	}
	return count
}

// SwapchainExtent returns the current extent of the surface.
func SwapchainExtent(caps vk.SurfaceCapabilities) vk.Extent2D {
	caps.Deref()
	caps.CurrentExtent.Deref()
	return vk.Extent2D{
		Width:  caps.CurrentExtent.Width,
		Height: caps.CurrentExtent.Height,
	}
}

// SwapchainInfo returns the create info of an exclusive swapchain
// of color attachment images for surface.
func SwapchainInfo(surface vk.Surface, caps vk.SurfaceCapabilities, format vk.Format, colorSpace vk.ColorSpace, mode vk.PresentMode) vk.SwapchainCreateInfo {
	caps.Deref()
	return vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          surface,
		MinImageCount:    SwapchainImageCount(caps),
		ImageFormat:      format,
		ImageColorSpace:  colorSpace,
		ImageExtent:      SwapchainExtent(caps),
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   CompositeAlpha(caps.SupportedCompositeAlpha),
		PresentMode:      mode,
		Clipped:          vk.True,
	}
}

// Swapchain owns a VkSwapchainKHR and keeps the info it was created with.
type Swapchain struct {
	device vk.Device
	handle vk.Swapchain
	Info   vk.SwapchainCreateInfo
}

// NewSwapchain creates a swapchain for surface sized to its current extent.
func NewSwapchain(dev vk.Device, surface vk.Surface, caps vk.SurfaceCapabilities, format vk.Format, colorSpace vk.ColorSpace, mode vk.PresentMode) (*Swapchain, error) {
	s := &Swapchain{
		device: dev,
		Info:   SwapchainInfo(surface, caps, format, colorSpace, mode),
	}
	if err := newError(vk.CreateSwapchain(dev, &s.Info, nil, &s.handle), "vk.CreateSwapchain()"); err != nil {
		return nil, err
	}
	return s, nil
}

// Recreate replaces the swapchain with one matching caps, handing the
// old one to the driver for reuse before destroying it.
func (s *Swapchain) Recreate(caps vk.SurfaceCapabilities) error {
	info := SwapchainInfo(s.Info.Surface, caps, s.Info.ImageFormat, s.Info.ImageColorSpace, s.Info.PresentMode)
	info.OldSwapchain = s.handle

	var handle vk.Swapchain
	if err := newError(vk.CreateSwapchain(s.device, &info, nil, &handle), "vk.CreateSwapchain(recreate)"); err != nil {
		return err
	}
	vk.DestroySwapchain(s.device, s.handle, nil)
	info.OldSwapchain = nil
	s.handle, s.Info = handle, info
	return nil
}

// Handle returns the VkSwapchainKHR.
func (s *Swapchain) Handle() vk.Swapchain {
	return s.handle
}

// Extent returns the size of the swapchain images.
func (s *Swapchain) Extent() vk.Extent2D {
	return s.Info.ImageExtent
}

// Images returns the images owned by the swapchain.
func (s *Swapchain) Images() ([]vk.Image, error) {
	var count uint32
	if err := newError(vk.GetSwapchainImages(s.device, s.handle, &count, nil), "vk.GetSwapchainImages(num)"); err != nil {
		return nil, err
	}
	images := make([]vk.Image, count)
	if err := newError(vk.GetSwapchainImages(s.device, s.handle, &count, images), "vk.GetSwapchainImages(images)"); err != nil {
		return nil, err
	}
	return images[:count], nil
}

// AcquireNext returns the index of the next image to render into. The
// semaphore is signaled once the image can be written. An out of date
// swapchain is reported as an error, see IsOutOfDate.
func (s *Swapchain) AcquireNext(signal *Semaphore, timeout uint64) (uint32, error) {
	var index uint32
	ret := vk.AcquireNextImage(s.device, s.handle, timeout, signal.Handle(), vk.NullFence, &index)
	if ret == vk.Suboptimal {
		return index, nil
	}
	return index, newError(ret, "vk.AcquireNextImage()")
}

// Release destroys the swapchain.
func (s *Swapchain) Release() {
	if s.handle == nil {
		return
	}
	vk.DestroySwapchain(s.device, s.handle, nil)
	*s = Swapchain{}
}
