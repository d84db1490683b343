// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/vulkan-go/vulkan"
)

// RenderSubmit submits commands to queue. The commands wait on wait at
// the color attachment output stage, signal is signaled when they
// complete and so is fence, when not nil.
func RenderSubmit(queue vk.Queue, commands []vk.CommandBuffer, fence *Fence, wait, signal *Semaphore) error {
	submit := []vk.SubmitInfo{{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      []vk.Semaphore{wait.Handle()},
		PWaitDstStageMask:    []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)},
		CommandBufferCount:   uint32(len(commands)),
		PCommandBuffers:      commands,
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{signal.Handle()},
	}}
	handle := vk.NullFence
	if fence != nil {
		handle = fence.Handle()
	}
	return newError(vk.QueueSubmit(queue, 1, submit, handle), "vk.QueueSubmit()")
}

// PresentSubmit queues image imageIndex of swapchain for presentation
// once wait is signaled. An out of date swapchain is reported as an error,
// see IsOutOfDate.
func PresentSubmit(queue vk.Queue, imageIndex uint32, swapchain *Swapchain, wait *Semaphore) error {
	presentInfo := vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{wait.Handle()},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{swapchain.Handle()},
		PImageIndices:      []uint32{imageIndex},
	}
	return newError(vk.QueuePresent(queue, &presentInfo), "vk.QueuePresent()")
}
