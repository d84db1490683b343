// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Presentation holds a view and a framebuffer for every image of a
// swapchain. The images stay owned by the swapchain.
type Presentation struct {
	device       vk.Device
	Extent       vk.Extent2D
	Images       []vk.Image
	Views        []vk.ImageView
	Framebuffers []vk.Framebuffer
}

// NewPresentation creates the views and framebuffers drawing into
// swapchain through renderpass.
func NewPresentation(dev vk.Device, renderpass *RenderPass, swapchain *Swapchain, caps vk.SurfaceCapabilities, format vk.Format) (*Presentation, error) {
	images, err := swapchain.Images()
	if err != nil {
		return nil, err
	}
	p := &Presentation{
		device: dev,
		Extent: SwapchainExtent(caps),
		Images: images,
	}
	for idx, image := range images {
		view, err := createImageView(dev, image, format)
		if err != nil {
			p.Release()
			return nil, &Error{Code: ResultOf(err), Message: fmt.Sprintf("vk.CreateImageView()[%d]", idx)}
		}
		p.Views = append(p.Views, view)

		attachments := []vk.ImageView{view}
		fci := vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      renderpass.Handle(),
			AttachmentCount: uint32(len(attachments)),
			PAttachments:    attachments,
			Width:           p.Extent.Width,
			Height:          p.Extent.Height,
			Layers:          1,
		}
		var framebuffer vk.Framebuffer
		if ret := vk.CreateFramebuffer(dev, &fci, nil, &framebuffer); ret != vk.Success {
			p.Release()
			return nil, &Error{Code: ret, Message: fmt.Sprintf("vk.CreateFramebuffer()[%d]", idx)}
		}
		p.Framebuffers = append(p.Framebuffers, framebuffer)
	}
	return p, nil
}

func createImageView(dev vk.Device, image vk.Image, format vk.Format) (vk.ImageView, error) {
	ivci := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    image,
		ViewType: vk.ImageViewType2d,
		Format:   format,
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}
	var view vk.ImageView
	if err := newError(vk.CreateImageView(dev, &ivci, nil, &view), "vk.CreateImageView()"); err != nil {
		return nil, err
	}
	return view, nil
}

// Len returns the number of swapchain images.
func (p *Presentation) Len() int {
	return len(p.Images)
}

// Release destroys the framebuffers and the views.
func (p *Presentation) Release() {
	for _, fb := range p.Framebuffers {
		vk.DestroyFramebuffer(p.device, fb, nil)
	}
	for _, view := range p.Views {
		vk.DestroyImageView(p.device, view, nil)
	}
	*p = Presentation{}
}
