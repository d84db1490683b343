// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/vulkan-go/vulkan"
)

// BufferInfo returns the create info of an exclusive buffer of length bytes.
func BufferInfo(usage vk.BufferUsageFlagBits, length int) vk.BufferCreateInfo {
	return vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(length),
		Usage:       vk.BufferUsageFlags(usage),
		SharingMode: vk.SharingModeExclusive,
	}
}

func createBuffer(dev vk.Device, info vk.BufferCreateInfo, op string) (vk.Buffer, error) {
	var buffer vk.Buffer
	if err := newError(vk.CreateBuffer(dev, &info, nil, &buffer), op); err != nil {
		return nil, err
	}
	return buffer, nil
}

// CreateVertexBuffer creates an unbound vertex buffer of length bytes.
func CreateVertexBuffer(dev vk.Device, length int) (vk.Buffer, vk.BufferCreateInfo, error) {
	info := BufferInfo(vk.BufferUsageVertexBufferBit, length)
	buffer, err := createBuffer(dev, info, "vk.CreateBuffer(vertex)")
	return buffer, info, err
}

// CreateIndexBuffer creates an unbound index buffer of length bytes.
func CreateIndexBuffer(dev vk.Device, length int) (vk.Buffer, vk.BufferCreateInfo, error) {
	info := BufferInfo(vk.BufferUsageIndexBufferBit, length)
	buffer, err := createBuffer(dev, info, "vk.CreateBuffer(index)")
	return buffer, info, err
}

// Buffer owns a buffer together with its host visible memory.
type Buffer struct {
	device vk.Device
	handle vk.Buffer
	info   vk.BufferCreateInfo
	memory Memory
}

// NewBuffer creates a buffer for usage holding a copy of data.
func NewBuffer(dev vk.Device, ma *MemoryAllocator, usage vk.BufferUsageFlagBits, data []byte) (*Buffer, error) {
	b := &Buffer{
		device: dev,
		info:   BufferInfo(usage, len(data)),
	}
	var err error
	if b.handle, err = createBuffer(dev, b.info, "vk.CreateBuffer()"); err != nil {
		return nil, err
	}

	var req vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(dev, b.handle, &req)
	req.Deref()
	if b.memory, err = ma.Malloc(req, HostVisible); err != nil {
		b.Release()
		return nil, err
	}
	if err := InitializeMemory(dev, b.handle, &b.memory, data); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// Handle returns the VkBuffer.
func (b *Buffer) Handle() vk.Buffer {
	return b.handle
}

// Info returns the create info the buffer was made with.
func (b *Buffer) Info() vk.BufferCreateInfo {
	return b.info
}

// Mem returns the memory backing the buffer.
func (b *Buffer) Mem() *Memory {
	return &b.memory
}

// Write replaces the start of the buffer contents with data.
func (b *Buffer) Write(data []byte) error {
	return WriteMemory(&b.memory, data)
}

// Release destroys the buffer and frees its memory.
func (b *Buffer) Release() {
	if b.handle != nil {
		vk.DestroyBuffer(b.device, b.handle, nil)
	}
	b.memory.Release()
	*b = Buffer{}
}
