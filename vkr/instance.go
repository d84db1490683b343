// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vkr wraps Vulkan objects in single owners with an explicit Release.
//
// Every wrapper owns one handle, or one set of handles created together,
// and borrows the device it was made from. Devices and instances must
// outlive their dependents. A failed constructor releases what it made
// and returns an *Error.
package vkr

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// InitLoader points the bindings at a vkGetInstanceProcAddr and loads the
// global entry points. A nil procAddr loads the system Vulkan loader.
func InitLoader(procAddr unsafe.Pointer) error {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return &Error{Code: vk.ErrorInitializationFailed, Message: "vk.SetDefaultGetInstanceProcAddr(): " + err.Error()}
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}
	if err := vk.Init(); err != nil {
		return &Error{Code: vk.ErrorInitializationFailed, Message: "vk.Init(): " + err.Error()}
	}
	return nil
}

// Instance owns a VkInstance.
type Instance struct {
	handle vk.Instance
	info   vk.ApplicationInfo
	name   string
}

// NewInstance creates an instance for the application name with the given
// layers and extensions enabled. InitLoader must have been called.
func NewInstance(name string, layers, extensions []string) (*Instance, error) {
	i := &Instance{name: name}
	i.info = vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         vk.MakeVersion(1, 0, 0),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PApplicationName:   safeString(name),
		PEngineName:        safeString(name),
	}

	layers = safeStrings(layers)
	extensions = safeStrings(extensions)
	ici := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &i.info,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}
	if err := newError(vk.CreateInstance(&ici, nil, &i.handle), "vk.CreateInstance()"); err != nil {
		return nil, err
	}
	if err := vk.InitInstance(i.handle); err != nil {
		vk.DestroyInstance(i.handle, nil)
		return nil, &Error{Code: vk.ErrorInitializationFailed, Message: "vk.InitInstance(): " + err.Error()}
	}
	return i, nil
}

// Handle returns the VkInstance.
func (i *Instance) Handle() vk.Instance {
	return i.handle
}

// Name returns the application name.
func (i *Instance) Name() string {
	return i.name
}

// Release destroys the instance.
func (i *Instance) Release() {
	if i.handle == nil {
		return
	}
	vk.DestroyInstance(i.handle, nil)
	*i = Instance{}
}

// InstanceExtensions lists the instance extensions the loader offers.
func InstanceExtensions() ([]string, error) {
	var count uint32
	if err := newError(vk.EnumerateInstanceExtensionProperties("", &count, nil), "vk.EnumerateInstanceExtensionProperties()"); err != nil {
		return nil, err
	}
	props := make([]vk.ExtensionProperties, count)
	if err := newError(vk.EnumerateInstanceExtensionProperties("", &count, props), "vk.EnumerateInstanceExtensionProperties()"); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, ext := range props[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// InstanceLayers lists the instance layers the loader offers.
func InstanceLayers() ([]string, error) {
	var count uint32
	if err := newError(vk.EnumerateInstanceLayerProperties(&count, nil), "vk.EnumerateInstanceLayerProperties()"); err != nil {
		return nil, err
	}
	props := make([]vk.LayerProperties, count)
	if err := newError(vk.EnumerateInstanceLayerProperties(&count, props), "vk.EnumerateInstanceLayerProperties()"); err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, layer := range props[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}
