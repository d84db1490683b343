// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"path/filepath"

	"github.com/devblok/graphics/model"
	vk "github.com/vulkan-go/vulkan"
)

// Shader binaries every pipeline input loads from its ShaderSource.
const (
	VertexShaderName   = "tri-vert.spv"
	FragmentShaderName = "tri-frag.spv"
)

// PipelineInput supplies a pipeline with its shader stages and vertex
// layout, and records the draw once the pipeline is bound.
type PipelineInput interface {
	SetupShaderStage() ([]vk.PipelineShaderStageCreateInfo, error)
	SetupVertexInputState() vk.PipelineVertexInputStateCreateInfo
	Record(pipeline *Pipeline, cmd vk.CommandBuffer)
	Release()
}

// ShaderSource finds SPIR-V code by name. A *pack.Archive is one.
type ShaderSource interface {
	ReadAll(name string) ([]byte, error)
}

// DirSource reads shaders from a folder.
type DirSource string

// ReadAll implements interface
func (d DirSource) ReadAll(name string) ([]byte, error) {
	return ReadAll(filepath.Join(string(d), name))
}

type shaderPair struct {
	vert, frag *ShaderModule
}

func loadShaderPair(dev vk.Device, src ShaderSource) (shaderPair, error) {
	var pair shaderPair
	code, err := src.ReadAll(VertexShaderName)
	if err != nil {
		return pair, err
	}
	if pair.vert, err = NewShaderModuleFromBytes(dev, code); err != nil {
		return pair, err
	}
	if code, err = src.ReadAll(FragmentShaderName); err == nil {
		pair.frag, err = NewShaderModuleFromBytes(dev, code)
	}
	if err != nil {
		pair.release()
		return shaderPair{}, err
	}
	return pair, nil
}

func (s shaderPair) stages() []vk.PipelineShaderStageCreateInfo {
	return []vk.PipelineShaderStageCreateInfo{
		ShaderStage(vk.ShaderStageVertexBit, s.vert),
		ShaderStage(vk.ShaderStageFragmentBit, s.frag),
	}
}

func (s shaderPair) release() {
	if s.vert != nil {
		s.vert.Release()
	}
	if s.frag != nil {
		s.frag.Release()
	}
}

func vertexInputState() vk.PipelineVertexInputStateCreateInfo {
	bindings := model.VertexBindingDescriptions()
	attributes := model.VertexAttributeDescriptions()
	return vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(bindings)),
		PVertexBindingDescriptions:      bindings,
		VertexAttributeDescriptionCount: uint32(len(attributes)),
		PVertexAttributeDescriptions:    attributes,
	}
}

// triangleInput draws model.Triangle from a vertex buffer.
type triangleInput struct {
	shaders  shaderPair
	vertices *Buffer
	count    uint32
}

// NewTriangleInput loads the shaders from src and uploads a triangle
// into a vertex buffer.
func NewTriangleInput(dev vk.Device, ma *MemoryAllocator, src ShaderSource) (PipelineInput, error) {
	mesh := model.Triangle()
	shaders, err := loadShaderPair(dev, src)
	if err != nil {
		return nil, err
	}
	vertices, err := NewBuffer(dev, ma, vk.BufferUsageVertexBufferBit, mesh.VertexBytes())
	if err != nil {
		shaders.release()
		return nil, err
	}
	return &triangleInput{
		shaders:  shaders,
		vertices: vertices,
		count:    uint32(len(mesh.Vertices)),
	}, nil
}

// SetupShaderStage implements interface
func (t *triangleInput) SetupShaderStage() ([]vk.PipelineShaderStageCreateInfo, error) {
	return t.shaders.stages(), nil
}

// SetupVertexInputState implements interface
func (t *triangleInput) SetupVertexInputState() vk.PipelineVertexInputStateCreateInfo {
	return vertexInputState()
}

// Record implements interface
func (t *triangleInput) Record(pipeline *Pipeline, cmd vk.CommandBuffer) {
	vk.CmdBindVertexBuffers(cmd, 0, 1, []vk.Buffer{t.vertices.Handle()}, []vk.DeviceSize{0})
	vk.CmdDraw(cmd, t.count, 1, 0, 0)
}

// Release implements interface
func (t *triangleInput) Release() {
	t.vertices.Release()
	t.shaders.release()
}

// indexedInput draws model.Quad through an index buffer.
type indexedInput struct {
	shaders  shaderPair
	vertices *Buffer
	indices  *Buffer
	count    uint32
}

// NewIndexedInput loads the shaders from src and uploads a quad into
// a vertex and an index buffer.
func NewIndexedInput(dev vk.Device, ma *MemoryAllocator, src ShaderSource) (PipelineInput, error) {
	mesh := model.Quad()
	shaders, err := loadShaderPair(dev, src)
	if err != nil {
		return nil, err
	}
	in := &indexedInput{
		shaders: shaders,
		count:   uint32(len(mesh.Indices)),
	}
	if in.vertices, err = NewBuffer(dev, ma, vk.BufferUsageVertexBufferBit, mesh.VertexBytes()); err != nil {
		in.Release()
		return nil, err
	}
	if in.indices, err = NewBuffer(dev, ma, vk.BufferUsageIndexBufferBit, mesh.IndexBytes()); err != nil {
		in.Release()
		return nil, err
	}
	return in, nil
}

// SetupShaderStage implements interface
func (in *indexedInput) SetupShaderStage() ([]vk.PipelineShaderStageCreateInfo, error) {
	return in.shaders.stages(), nil
}

// SetupVertexInputState implements interface
func (in *indexedInput) SetupVertexInputState() vk.PipelineVertexInputStateCreateInfo {
	return vertexInputState()
}

// Record implements interface
func (in *indexedInput) Record(pipeline *Pipeline, cmd vk.CommandBuffer) {
	vk.CmdBindVertexBuffers(cmd, 0, 1, []vk.Buffer{in.vertices.Handle()}, []vk.DeviceSize{0})
	vk.CmdBindIndexBuffer(cmd, in.indices.Handle(), 0, vk.IndexTypeUint16)
	vk.CmdDrawIndexed(cmd, in.count, 1, 0, 0, 0)
}

// Release implements interface
func (in *indexedInput) Release() {
	if in.vertices != nil {
		in.vertices.Release()
	}
	if in.indices != nil {
		in.indices.Release()
	}
	in.shaders.release()
}
