// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/vulkan-go/vulkan"
)

// DefaultQueuePriority is the priority of queues made by MakeDevice.
const DefaultQueuePriority float32 = 0.012

// Device owns a logical device and remembers the queue families it
// was created with.
type Device struct {
	Handle        vk.Device
	Physical      vk.PhysicalDevice
	GraphicsIndex uint32
	PresentIndex  uint32
}

// MakeDevice creates a device with one graphics queue.
func MakeDevice(physical vk.PhysicalDevice, priority float32) (*Device, error) {
	graphics, ok := GraphicsQueueIndex(QueueFamilies(physical))
	if !ok {
		return nil, &Error{Code: vk.ErrorFeatureNotPresent, Message: "vkr.MakeDevice(): no graphics queue family"}
	}
	d := &Device{
		Physical:      physical,
		GraphicsIndex: graphics,
		PresentIndex:  graphics,
	}
	if err := d.create(priority, nil); err != nil {
		return nil, err
	}
	return d, nil
}

// MakeDeviceWithSurface creates a device with a graphics queue and a queue
// presenting to surface, which may be the same one, and enables the
// swapchain extension.
func MakeDeviceWithSurface(physical vk.PhysicalDevice, surface vk.Surface, priority float32) (*Device, error) {
	families := QueueFamilies(physical)
	graphics, ok := GraphicsQueueIndex(families)
	if !ok {
		return nil, &Error{Code: vk.ErrorFeatureNotPresent, Message: "vkr.MakeDeviceWithSurface(): no graphics queue family"}
	}
	present := graphics
	if !surfaceSupported(physical, surface, graphics) {
		if present, ok = SurfaceSupportIndex(physical, surface, uint32(len(families)), graphics); !ok {
			return nil, &Error{Code: vk.ErrorFeatureNotPresent, Message: "vkr.MakeDeviceWithSurface(): no queue family presents to the surface"}
		}
	}
	d := &Device{
		Physical:      physical,
		GraphicsIndex: graphics,
		PresentIndex:  present,
	}
	if err := d.create(priority, []string{vk.KhrSwapchainExtensionName}); err != nil {
		return nil, err
	}
	return d, nil
}

// QueueCreateInfos returns one queue create info per distinct family index.
func QueueCreateInfos(priority float32, families ...uint32) []vk.DeviceQueueCreateInfo {
	var infos []vk.DeviceQueueCreateInfo
	seen := map[uint32]bool{}
	for _, family := range families {
		if seen[family] {
			continue
		}
		seen[family] = true
		infos = append(infos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: family,
			QueueCount:       1,
			PQueuePriorities: []float32{priority},
		})
	}
	return infos
}

func (d *Device) create(priority float32, extensions []string) error {
	queueInfos := QueueCreateInfos(priority, d.GraphicsIndex, d.PresentIndex)
	extensions = safeStrings(extensions)
	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}
	return newError(vk.CreateDevice(d.Physical, &dci, nil, &d.Handle), "vk.CreateDevice()")
}

// GraphicsQueue returns the first queue of the graphics family.
func (d *Device) GraphicsQueue() vk.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(d.Handle, d.GraphicsIndex, 0, &queue)
	return queue
}

// PresentQueue returns the first queue of the present family.
func (d *Device) PresentQueue() vk.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(d.Handle, d.PresentIndex, 0, &queue)
	return queue
}

// MemoryProperties returns the memory properties of the physical device.
func (d *Device) MemoryProperties() vk.PhysicalDeviceMemoryProperties {
	return MemoryProperties(d.Physical)
}

// WaitIdle blocks until the device has no pending work.
func (d *Device) WaitIdle() error {
	return newError(vk.DeviceWaitIdle(d.Handle), "vk.DeviceWaitIdle()")
}

// Release destroys the device.
func (d *Device) Release() {
	if d.Handle == nil {
		return
	}
	vk.DestroyDevice(d.Handle, nil)
	*d = Device{}
}
