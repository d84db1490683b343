// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/vulkan-go/vulkan"
)

// SetupColorAttachment describes a single sampled color attachment
// in format that is cleared on load and handed to presentation.
func SetupColorAttachment(format vk.Format) vk.AttachmentDescription {
	return vk.AttachmentDescription{
		Format:         format,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpDontCare,
		InitialLayout:  vk.ImageLayoutUndefined,
		FinalLayout:    vk.ImageLayoutPresentSrc,
	}
}

// RenderPassInfo returns the create info of a render pass with one
// subpass drawing into one color attachment. The attachment and subpass
// slices of the result are fresh on every call.
func RenderPassInfo(format vk.Format) vk.RenderPassCreateInfo {
	attachments := []vk.AttachmentDescription{SetupColorAttachment(format)}
	colorRefs := []vk.AttachmentReference{{
		Attachment: 0,
		Layout:     vk.ImageLayoutColorAttachmentOptimal,
	}}
	subpass := vk.SubpassDescription{
		PipelineBindPoint:    vk.PipelineBindPointGraphics,
		ColorAttachmentCount: uint32(len(colorRefs)),
		PColorAttachments:    colorRefs,
	}
	dependency := vk.SubpassDependency{
		SrcSubpass:    vk.SubpassExternal,
		DstSubpass:    0,
		SrcStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		SrcAccessMask: 0,
		DstStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstAccessMask: vk.AccessFlags(vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit),
	}
	return vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		PAttachments:    attachments,
		SubpassCount:    1,
		PSubpasses:      []vk.SubpassDescription{subpass},
		DependencyCount: 1,
		PDependencies:   []vk.SubpassDependency{dependency},
	}
}

// RenderPass owns a VkRenderPass.
type RenderPass struct {
	device vk.Device
	handle vk.RenderPass
	format vk.Format
}

// NewRenderPass creates the render pass described by RenderPassInfo.
func NewRenderPass(dev vk.Device, format vk.Format) (*RenderPass, error) {
	info := RenderPassInfo(format)
	var handle vk.RenderPass
	if err := newError(vk.CreateRenderPass(dev, &info, nil, &handle), "vk.CreateRenderPass()"); err != nil {
		return nil, err
	}
	return &RenderPass{
		device: dev,
		handle: handle,
		format: format,
	}, nil
}

// Handle returns the VkRenderPass.
func (r *RenderPass) Handle() vk.RenderPass {
	return r.handle
}

// Format returns the format of the color attachment.
func (r *RenderPass) Format() vk.Format {
	return r.format
}

// Release destroys the render pass.
func (r *RenderPass) Release() {
	if r.handle == nil {
		return
	}
	vk.DestroyRenderPass(r.device, r.handle, nil)
	*r = RenderPass{}
}
