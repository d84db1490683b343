// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/vulkan-go/vulkan"
)

// PhysicalDeviceInfo describes a GPU as reported by the driver.
type PhysicalDeviceInfo struct {
	ID            int      `json:"id"`
	VendorID      int      `json:"vendorId"`
	DriverVersion int      `json:"driverVersion"`
	Name          string   `json:"name"`
	Extensions    []string `json:"extensions"`
	Layers        []string `json:"layers"`
	Memory        uint     `json:"memory"`
	Invalid       bool     `json:"invalid,omitempty"`
}

// PhysicalDevices enumerates the GPUs of instance.
func PhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var count uint32
	if err := newError(vk.EnumeratePhysicalDevices(instance, &count, nil), "vk.EnumeratePhysicalDevices()"); err != nil {
		return nil, err
	}
	devices := make([]vk.PhysicalDevice, count)
	if err := newError(vk.EnumeratePhysicalDevices(instance, &count, devices), "vk.EnumeratePhysicalDevices()"); err != nil {
		return nil, err
	}
	return devices[:count], nil
}

// PhysicalDevice returns the first GPU of instance.
func PhysicalDevice(instance vk.Instance) (vk.PhysicalDevice, error) {
	devices, err := PhysicalDevices(instance)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, &Error{Code: vk.ErrorInitializationFailed, Message: "vk.EnumeratePhysicalDevices(): no physical device"}
	}
	return devices[0], nil
}

// PhysicalDevicesInfo describes every device. A device whose extensions
// or layers can not be listed is marked Invalid.
func PhysicalDevicesInfo(devices []vk.PhysicalDevice) []PhysicalDeviceInfo {
	pdi := make([]PhysicalDeviceInfo, len(devices))
	for i, dev := range devices {
		var numExtensions uint32
		if err := vk.Error(vk.EnumerateDeviceExtensionProperties(dev, "", &numExtensions, nil)); err != nil {
			pdi[i].Invalid = true
		}
		extensions := make([]vk.ExtensionProperties, numExtensions)
		if err := vk.Error(vk.EnumerateDeviceExtensionProperties(dev, "", &numExtensions, extensions)); err != nil {
			pdi[i].Invalid = true
		}
		for _, ext := range extensions {
			ext.Deref()
			pdi[i].Extensions = append(pdi[i].Extensions, vk.ToString(ext.ExtensionName[:]))
		}

		var numLayers uint32
		if err := vk.Error(vk.EnumerateDeviceLayerProperties(dev, &numLayers, nil)); err != nil {
			pdi[i].Invalid = true
		}
		layers := make([]vk.LayerProperties, numLayers)
		if err := vk.Error(vk.EnumerateDeviceLayerProperties(dev, &numLayers, layers)); err != nil {
			pdi[i].Invalid = true
		}
		for _, layer := range layers {
			layer.Deref()
			pdi[i].Layers = append(pdi[i].Layers, vk.ToString(layer.LayerName[:]))
		}

		memory := MemoryProperties(dev)
		for h := uint32(0); h < memory.MemoryHeapCount; h++ {
			pdi[i].Memory += uint(memory.MemoryHeaps[h].Size)
		}

		var props vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(dev, &props)
		props.Deref()
		pdi[i].ID = int(props.DeviceID)
		pdi[i].VendorID = int(props.VendorID)
		pdi[i].Name = vk.ToString(props.DeviceName[:])
		pdi[i].DriverVersion = int(props.DriverVersion)
	}
	return pdi
}

// MemoryProperties returns the memory heaps and types of dev, dereferenced.
func MemoryProperties(dev vk.PhysicalDevice) vk.PhysicalDeviceMemoryProperties {
	var props vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(dev, &props)
	props.Deref()
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		props.MemoryTypes[i].Deref()
	}
	for i := uint32(0); i < props.MemoryHeapCount; i++ {
		props.MemoryHeaps[i].Deref()
	}
	return props
}

// QueueFamilies returns the queue family properties of dev, dereferenced.
func QueueFamilies(dev vk.PhysicalDevice) []vk.QueueFamilyProperties {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, nil)
	props := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, props)
	for i := range props {
		props[i].Deref()
	}
	return props
}

// GraphicsQueueIndex returns the first family supporting graphics.
func GraphicsQueueIndex(props []vk.QueueFamilyProperties) (uint32, bool) {
	for i, p := range props {
		if p.QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
			return uint32(i), true
		}
	}
	return uint32(len(props)), false
}

// SurfaceSupportIndex returns the first of count families, other than
// exclude, able to present to surface.
func SurfaceSupportIndex(dev vk.PhysicalDevice, surface vk.Surface, count, exclude uint32) (uint32, bool) {
	for i := uint32(0); i < count; i++ {
		if i == exclude {
			continue
		}
		var supported vk.Bool32
		vk.GetPhysicalDeviceSurfaceSupport(dev, i, surface, &supported)
		if supported.B() {
			return i, true
		}
	}
	return count, false
}

func surfaceSupported(dev vk.PhysicalDevice, surface vk.Surface, family uint32) bool {
	var supported vk.Bool32
	vk.GetPhysicalDeviceSurfaceSupport(dev, family, surface, &supported)
	return supported.B()
}

// SurfaceFormats lists the formats dev can present to surface with.
func SurfaceFormats(dev vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	var count uint32
	if err := newError(vk.GetPhysicalDeviceSurfaceFormats(dev, surface, &count, nil), "vk.GetPhysicalDeviceSurfaceFormats()"); err != nil {
		return nil, err
	}
	formats := make([]vk.SurfaceFormat, count)
	if err := newError(vk.GetPhysicalDeviceSurfaceFormats(dev, surface, &count, formats), "vk.GetPhysicalDeviceSurfaceFormats()"); err != nil {
		return nil, err
	}
	for i := range formats {
		formats[i].Deref()
	}
	return formats[:count], nil
}

// PresentModes lists the present modes dev supports for surface.
func PresentModes(dev vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	var count uint32
	if err := newError(vk.GetPhysicalDeviceSurfacePresentModes(dev, surface, &count, nil), "vk.GetPhysicalDeviceSurfacePresentModes()"); err != nil {
		return nil, err
	}
	modes := make([]vk.PresentMode, count)
	if err := newError(vk.GetPhysicalDeviceSurfacePresentModes(dev, surface, &count, modes), "vk.GetPhysicalDeviceSurfacePresentModes()"); err != nil {
		return nil, err
	}
	return modes[:count], nil
}

// SurfaceCapabilities returns the capabilities of surface on dev, dereferenced.
func SurfaceCapabilities(dev vk.PhysicalDevice, surface vk.Surface) (vk.SurfaceCapabilities, error) {
	var caps vk.SurfaceCapabilities
	if err := newError(vk.GetPhysicalDeviceSurfaceCapabilities(dev, surface, &caps), "vk.GetPhysicalDeviceSurfaceCapabilities()"); err != nil {
		return caps, err
	}
	caps.Deref()
	caps.CurrentExtent.Deref()
	caps.MinImageExtent.Deref()
	caps.MaxImageExtent.Deref()
	return caps, nil
}

// CheckSurfaceFormat reports whether surface accepts format in colorSpace.
func CheckSurfaceFormat(dev vk.PhysicalDevice, surface vk.Surface, format vk.Format, colorSpace vk.ColorSpace) (bool, error) {
	formats, err := SurfaceFormats(dev, surface)
	if err != nil {
		return false, err
	}
	return HasSurfaceFormat(formats, format, colorSpace), nil
}

// HasSurfaceFormat reports whether formats holds format in colorSpace.
// A single undefined format means the surface takes any format.
func HasSurfaceFormat(formats []vk.SurfaceFormat, format vk.Format, colorSpace vk.ColorSpace) bool {
	if len(formats) == 1 && formats[0].Format == vk.FormatUndefined {
		return true
	}
	for _, f := range formats {
		if f.Format == format && f.ColorSpace == colorSpace {
			return true
		}
	}
	return false
}

// CheckPresentMode reports whether surface supports mode.
func CheckPresentMode(dev vk.PhysicalDevice, surface vk.Surface, mode vk.PresentMode) (bool, error) {
	modes, err := PresentModes(dev, surface)
	if err != nil {
		return false, err
	}
	return HasPresentMode(modes, mode), nil
}

// HasPresentMode reports whether modes holds mode.
func HasPresentMode(modes []vk.PresentMode, mode vk.PresentMode) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}
