// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DefaultClearColor is the color render passes are cleared to.
var DefaultClearColor = [4]float32{0.05, 0.05, 0.05, 1}

// CommandPool owns a command pool and the primary buffers allocated from it.
type CommandPool struct {
	device  vk.Device
	handle  vk.CommandPool
	Buffers []vk.CommandBuffer
}

// NewCommandPool creates a pool on the queue family queueIndex
// and allocates count primary command buffers.
func NewCommandPool(dev vk.Device, queueIndex uint32, count int) (*CommandPool, error) {
	cpci := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: queueIndex,
	}
	p := &CommandPool{device: dev}
	if err := newError(vk.CreateCommandPool(dev, &cpci, nil, &p.handle), "vk.CreateCommandPool()"); err != nil {
		return nil, err
	}
	if count == 0 {
		return p, nil
	}

	cbai := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        p.handle,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(count),
	}
	buffers := make([]vk.CommandBuffer, count)
	if err := newError(vk.AllocateCommandBuffers(dev, &cbai, buffers), "vk.AllocateCommandBuffers()"); err != nil {
		p.Release()
		return nil, err
	}
	p.Buffers = buffers
	return p, nil
}

// Handle returns the VkCommandPool.
func (p *CommandPool) Handle() vk.CommandPool {
	return p.handle
}

// ClearValues returns the clear values of a single color attachment.
func ClearValues(color [4]float32) []vk.ClearValue {
	values := make([]vk.ClearValue, 1)
	values[0].SetColor(color[:])
	return values
}

// Record records into buffer idx a pass of renderpass over framebuffer,
// with draw filling the inside of the pass.
func (p *CommandPool) Record(idx int, renderpass *RenderPass, framebuffer vk.Framebuffer, extent vk.Extent2D, draw func(cmd vk.CommandBuffer)) error {
	if idx < 0 || idx >= len(p.Buffers) {
		return &Error{Code: vk.ErrorInitializationFailed, Message: fmt.Sprintf("vkr.CommandPool.Record(): no command buffer %d", idx)}
	}
	cmd := p.Buffers[idx]
	cbbi := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageSimultaneousUseBit),
	}
	if err := newError(vk.BeginCommandBuffer(cmd, &cbbi), fmt.Sprintf("vk.BeginCommandBuffer()[%d]", idx)); err != nil {
		return err
	}

	clearValues := ClearValues(DefaultClearColor)
	rpbi := vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  renderpass.Handle(),
		Framebuffer: framebuffer,
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: extent,
		},
		ClearValueCount: uint32(len(clearValues)),
		PClearValues:    clearValues,
	}
	vk.CmdBeginRenderPass(cmd, &rpbi, vk.SubpassContentsInline)
	draw(cmd)
	vk.CmdEndRenderPass(cmd)

	return newError(vk.EndCommandBuffer(cmd), fmt.Sprintf("vk.EndCommandBuffer()[%d]", idx))
}

// Release frees the command buffers and destroys the pool.
func (p *CommandPool) Release() {
	if p.handle == nil {
		return
	}
	if len(p.Buffers) > 0 {
		vk.FreeCommandBuffers(p.device, p.handle, uint32(len(p.Buffers)), p.Buffers)
	}
	vk.DestroyCommandPool(p.device, p.handle, nil)
	*p = CommandPool{}
}
