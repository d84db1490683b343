// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// ShaderModule owns a VkShaderModule made from SPIR-V code.
type ShaderModule struct {
	device vk.Device
	handle vk.ShaderModule
	info   vk.ShaderModuleCreateInfo
}

// NewShaderModule creates a shader module from the SPIR-V file at path.
func NewShaderModule(dev vk.Device, path string) (*ShaderModule, error) {
	code, err := ReadAll(path)
	if err != nil {
		return nil, err
	}
	return NewShaderModuleFromBytes(dev, code)
}

// NewShaderModuleFromBytes creates a shader module from SPIR-V code.
// The length of code must be a non zero multiple of four.
func NewShaderModuleFromBytes(dev vk.Device, code []byte) (*ShaderModule, error) {
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, &Error{
			Code:    vk.ErrorInitializationFailed,
			Message: fmt.Sprintf("vkr.NewShaderModuleFromBytes(): code size %d is not a multiple of 4", len(code)),
		}
	}
	s := &ShaderModule{
		device: dev,
		info: vk.ShaderModuleCreateInfo{
			SType:    vk.StructureTypeShaderModuleCreateInfo,
			CodeSize: uint(len(code)),
			PCode:    SliceUint32(code),
		},
	}
	if err := newError(vk.CreateShaderModule(dev, &s.info, nil, &s.handle), "vk.CreateShaderModule()"); err != nil {
		return nil, err
	}
	return s, nil
}

// Handle returns the VkShaderModule.
func (s *ShaderModule) Handle() vk.ShaderModule {
	return s.handle
}

// Release destroys the shader module.
func (s *ShaderModule) Release() {
	if s.handle == nil {
		return
	}
	vk.DestroyShaderModule(s.device, s.handle, nil)
	*s = ShaderModule{}
}

// ShaderStage describes the "main" entry point of module for stage.
func ShaderStage(stage vk.ShaderStageFlagBits, module *ShaderModule) vk.PipelineShaderStageCreateInfo {
	return vk.PipelineShaderStageCreateInfo{
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  stage,
		Module: module.Handle(),
		PName:  "main\x00",
	}
}
