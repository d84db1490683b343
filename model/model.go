// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model holds the vertex data drawn by the Vulkan pipeline inputs.
package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
	vk "github.com/vulkan-go/vulkan"
)

// Vertex is a model vertex
type Vertex struct {
	Pos   glm.Vec3
	Color glm.Vec4
}

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// NewUniform returns a uniform with every matrix set to identity.
func NewUniform() Uniform {
	return Uniform{
		Model:      glm.Ident4(),
		View:       glm.Ident4(),
		Projection: glm.Ident4(),
	}
}

// MVP returns Projection * View * Model.
func (u Uniform) MVP() glm.Mat4 {
	return u.Projection.Mul4(u.View).Mul4(u.Model)
}

// Mesh is a list of vertices, optionally drawn through 16 bit indices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangle returns a red, green and blue triangle in clip space.
func Triangle() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Pos: glm.Vec3{0, -0.5, 0}, Color: glm.Vec4{1, 0, 0, 1}},
			{Pos: glm.Vec3{0.5, 0.5, 0}, Color: glm.Vec4{0, 1, 0, 1}},
			{Pos: glm.Vec3{-0.5, 0.5, 0}, Color: glm.Vec4{0, 0, 1, 1}},
		},
	}
}

// Quad returns an indexed quad made of two triangles.
func Quad() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Pos: glm.Vec3{-0.5, -0.5, 0}, Color: glm.Vec4{1, 0, 0, 1}},
			{Pos: glm.Vec3{0.5, -0.5, 0}, Color: glm.Vec4{0, 1, 0, 1}},
			{Pos: glm.Vec3{0.5, 0.5, 0}, Color: glm.Vec4{0, 0, 1, 1}},
			{Pos: glm.Vec3{-0.5, 0.5, 0}, Color: glm.Vec4{1, 1, 1, 1}},
		},
		Indices: []uint16{0, 1, 2, 2, 3, 0},
	}
}

// VertexBytes returns the vertices as the bytes uploaded to a vertex buffer.
// The result aliases m.Vertices.
func (m Mesh) VertexBytes() []byte {
	if len(m.Vertices) == 0 {
		return nil
	}
	size := len(m.Vertices) * int(unsafe.Sizeof(Vertex{}))
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Vertices[0])), size)
}

// IndexBytes returns the indices as the bytes uploaded to an index buffer.
// The result aliases m.Indices.
func (m Mesh) IndexBytes() []byte {
	if len(m.Indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Indices[0])), len(m.Indices)*2)
}

// VertexBindingDescriptions return Vulkan Vertex descriptors
func VertexBindingDescriptions() []vk.VertexInputBindingDescription {
	return []vk.VertexInputBindingDescription{{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}}
}

// VertexAttributeDescriptions return Vulkan attribute descriptors
func VertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Binding:  0,
			Location: 0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Binding:  0,
			Location: 1,
			Format:   vk.FormatR32g32b32a32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Color)),
		},
	}
}
