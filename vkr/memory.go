// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// HostVisible is the property set of memory written from the CPU without flushes.
const HostVisible = vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)

// FindMemoryType returns the first memory type allowed by typeBits
// that has every desired property.
func FindMemoryType(props vk.PhysicalDeviceMemoryProperties, typeBits uint32, desired vk.MemoryPropertyFlags) (uint32, bool) {
	for idx := uint32(0); idx < props.MemoryTypeCount && idx < vk.MaxMemoryTypes; idx++ {
		if typeBits&(1<<idx) != 0 && props.MemoryTypes[idx].PropertyFlags&desired == desired {
			return idx, true
		}
	}
	return 0, false
}

// MemoryAllocator allocates device memory matching resource requirements.
type MemoryAllocator struct {
	device vk.Device
	props  vk.PhysicalDeviceMemoryProperties
}

// NewMemoryAllocator allocates for dev, choosing memory types from the
// properties of its physical device.
func NewMemoryAllocator(dev *Device) *MemoryAllocator {
	return &MemoryAllocator{
		device: dev.Handle,
		props:  dev.MemoryProperties(),
	}
}

// Malloc allocates memory for req with the desired properties.
func (ma *MemoryAllocator) Malloc(req vk.MemoryRequirements, desired vk.MemoryPropertyFlags) (Memory, error) {
	return allocate(ma.device, req, desired, ma.props)
}

// AllocateMemory allocates memory for buffer with the desired properties.
// The memory is not bound.
func AllocateMemory(dev vk.Device, buffer vk.Buffer, desired vk.MemoryPropertyFlags, props vk.PhysicalDeviceMemoryProperties) (Memory, error) {
	var req vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(dev, buffer, &req)
	req.Deref()
	return allocate(dev, req, desired, props)
}

func allocate(dev vk.Device, req vk.MemoryRequirements, desired vk.MemoryPropertyFlags, props vk.PhysicalDeviceMemoryProperties) (Memory, error) {
	memType, ok := FindMemoryType(props, req.MemoryTypeBits, desired)
	if !ok {
		return Memory{}, &Error{Code: vk.ErrorFeatureNotPresent, Message: "vkr.FindMemoryType(): suitable memory type not found"}
	}
	mai := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  req.Size,
		MemoryTypeIndex: memType,
	}
	var memory vk.DeviceMemory
	if err := newError(vk.AllocateMemory(dev, &mai, nil, &memory), "vk.AllocateMemory()"); err != nil {
		return Memory{}, err
	}
	return Memory{
		device: dev,
		memory: memory,
		size:   req.Size,
	}, nil
}

// Memory owns a device memory allocation.
type Memory struct {
	device vk.Device
	memory vk.DeviceMemory
	size   vk.DeviceSize
	mapped bool
}

// Handle returns the VkDeviceMemory.
func (m *Memory) Handle() vk.DeviceMemory {
	return m.memory
}

// Len returns the size of the allocation.
func (m *Memory) Len() uint {
	return uint(m.size)
}

// Map maps the whole allocation.
func (m *Memory) Map() (unsafe.Pointer, error) {
	var ptr unsafe.Pointer
	if err := newError(vk.MapMemory(m.device, m.memory, 0, m.size, 0, &ptr), "vk.MapMemory()"); err != nil {
		return nil, err
	}
	m.mapped = true
	return ptr, nil
}

// Unmap removes the mapping if there is one.
func (m *Memory) Unmap() {
	if m.mapped {
		vk.UnmapMemory(m.device, m.memory)
		m.mapped = false
	}
}

// Write copies data to the start of the allocation.
func (m *Memory) Write(data []byte) error {
	if vk.DeviceSize(len(data)) > m.size {
		return &Error{Code: vk.ErrorOutOfDeviceMemory, Message: "vkr.Memory.Write(): data exceeds the allocation"}
	}
	ptr, err := m.Map()
	if err != nil {
		return err
	}
	vk.Memcopy(ptr, data)
	m.Unmap()
	return nil
}

// Release unmaps and frees the memory.
func (m *Memory) Release() {
	if m.memory == nil {
		return
	}
	m.Unmap()
	vk.FreeMemory(m.device, m.memory, nil)
	*m = Memory{}
}

// InitializeMemory binds memory to buffer and copies data into it.
func InitializeMemory(dev vk.Device, buffer vk.Buffer, memory *Memory, data []byte) error {
	if err := newError(vk.BindBufferMemory(dev, buffer, memory.Handle(), 0), "vk.BindBufferMemory()"); err != nil {
		return err
	}
	return WriteMemory(memory, data)
}

// WriteMemory copies data into memory that is already bound.
func WriteMemory(memory *Memory, data []byte) error {
	return memory.Write(data)
}
