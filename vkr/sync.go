// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"math"
	"time"

	vk "github.com/vulkan-go/vulkan"
)

// Semaphore owns a VkSemaphore.
type Semaphore struct {
	device vk.Device
	handle vk.Semaphore
}

// NewSemaphore creates a semaphore.
func NewSemaphore(dev vk.Device) (*Semaphore, error) {
	sci := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}
	s := &Semaphore{device: dev}
	if err := newError(vk.CreateSemaphore(dev, &sci, nil, &s.handle), "vk.CreateSemaphore()"); err != nil {
		return nil, err
	}
	return s, nil
}

// Handle returns the VkSemaphore.
func (s *Semaphore) Handle() vk.Semaphore {
	return s.handle
}

// Release destroys the semaphore.
func (s *Semaphore) Release() {
	if s.handle == nil {
		return
	}
	vk.DestroySemaphore(s.device, s.handle, nil)
	*s = Semaphore{}
}

// Fence owns a VkFence.
type Fence struct {
	device vk.Device
	handle vk.Fence
}

// NewFence creates a fence, already signaled when signaled is set.
func NewFence(dev vk.Device, signaled bool) (*Fence, error) {
	fci := vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
	}
	if signaled {
		fci.Flags = vk.FenceCreateFlags(vk.FenceCreateSignaledBit)
	}
	f := &Fence{device: dev}
	if err := newError(vk.CreateFence(dev, &fci, nil, &f.handle), "vk.CreateFence()"); err != nil {
		return nil, err
	}
	return f, nil
}

// Handle returns the VkFence.
func (f *Fence) Handle() vk.Fence {
	return f.handle
}

// Wait blocks until the fence is signaled or timeout passes.
// A negative timeout waits forever.
func (f *Fence) Wait(timeout time.Duration) error {
	nanos := uint64(math.MaxUint64)
	if timeout >= 0 {
		nanos = uint64(timeout.Nanoseconds())
	}
	ret := vk.WaitForFences(f.device, 1, []vk.Fence{f.handle}, vk.True, nanos)
	if ret == vk.Timeout {
		return &Error{Code: ret, Message: "vk.WaitForFences(): timeout"}
	}
	return newError(ret, "vk.WaitForFences()")
}

// Reset puts the fence back to the unsignaled state.
func (f *Fence) Reset() error {
	return newError(vk.ResetFences(f.device, 1, []vk.Fence{f.handle}), "vk.ResetFences()")
}

// Release destroys the fence.
func (f *Fence) Release() {
	if f.handle == nil {
		return
	}
	vk.DestroyFence(f.device, f.handle, nil)
	*f = Fence{}
}
