// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package native implements gl.Functions with go-gl for OpenGL 3.3 core.
package native

import (
	"unsafe"

	glw "github.com/devblok/graphics/gl"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var _ glw.Functions = (*Functions)(nil)

// Functions forwards to the entry points loaded by gl.Init.
type Functions struct{}

// New loads the OpenGL entry points of the context current on the
// calling thread.
func New() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Functions{}, nil
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// GetError implements gl.Functions.
func (*Functions) GetError() glw.Enum {
	return gl.GetError()
}

// GetString implements gl.Functions.
func (*Functions) GetString(name glw.Enum) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

// GenVertexArray implements gl.Functions.
func (*Functions) GenVertexArray() uint32 {
	var name uint32
	gl.GenVertexArrays(1, &name)
	return name
}

// DeleteVertexArray implements gl.Functions.
func (*Functions) DeleteVertexArray(name uint32) {
	gl.DeleteVertexArrays(1, &name)
}

// CreateShader implements gl.Functions.
func (*Functions) CreateShader(typ glw.Enum) uint32 {
	return gl.CreateShader(typ)
}

// ShaderSource implements gl.Functions.
func (*Functions) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

// CompileShader implements gl.Functions.
func (*Functions) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// GetShaderi implements gl.Functions.
func (*Functions) GetShaderi(shader uint32, pname glw.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

// GetShaderInfoLog implements gl.Functions.
func (f *Functions) GetShaderInfoLog(shader uint32) string {
	n := f.GetShaderi(shader, glw.InfoLogLength)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n)
	gl.GetShaderInfoLog(shader, n, nil, &log[0])
	return gl.GoStr(&log[0])
}

// DeleteShader implements gl.Functions.
func (*Functions) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram implements gl.Functions.
func (*Functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader implements gl.Functions.
func (*Functions) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// DetachShader implements gl.Functions.
func (*Functions) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

// LinkProgram implements gl.Functions.
func (*Functions) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// GetProgrami implements gl.Functions.
func (*Functions) GetProgrami(program uint32, pname glw.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

// GetProgramInfoLog implements gl.Functions.
func (f *Functions) GetProgramInfoLog(program uint32) string {
	n := f.GetProgrami(program, glw.InfoLogLength)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &log[0])
	return gl.GoStr(&log[0])
}

// DeleteProgram implements gl.Functions.
func (*Functions) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// GetUniformLocation implements gl.Functions.
func (*Functions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// GetAttribLocation implements gl.Functions.
func (*Functions) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// GenTexture implements gl.Functions.
func (*Functions) GenTexture() uint32 {
	var name uint32
	gl.GenTextures(1, &name)
	return name
}

// BindTexture implements gl.Functions.
func (*Functions) BindTexture(target glw.Enum, name uint32) {
	gl.BindTexture(target, name)
}

// TexParameteri implements gl.Functions.
func (*Functions) TexParameteri(target, pname glw.Enum, param int32) {
	gl.TexParameteri(target, pname, param)
}

// TexImage2D implements gl.Functions.
func (*Functions) TexImage2D(target glw.Enum, level int32, internalFormat glw.Enum, width, height int32, format, typ glw.Enum, pixels []byte) {
	gl.TexImage2D(target, level, int32(internalFormat), width, height, 0, format, typ, ptr(pixels))
}

// DeleteTexture implements gl.Functions.
func (*Functions) DeleteTexture(name uint32) {
	gl.DeleteTextures(1, &name)
}

// GenFramebuffer implements gl.Functions.
func (*Functions) GenFramebuffer() uint32 {
	var name uint32
	gl.GenFramebuffers(1, &name)
	return name
}

// BindFramebuffer implements gl.Functions.
func (*Functions) BindFramebuffer(target glw.Enum, name uint32) {
	gl.BindFramebuffer(target, name)
}

// FramebufferRenderbuffer implements gl.Functions.
func (*Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget glw.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(target, attachment, renderbufferTarget, renderbuffer)
}

// CheckFramebufferStatus implements gl.Functions.
func (*Functions) CheckFramebufferStatus(target glw.Enum) glw.Enum {
	return gl.CheckFramebufferStatus(target)
}

// DeleteFramebuffer implements gl.Functions.
func (*Functions) DeleteFramebuffer(name uint32) {
	gl.DeleteFramebuffers(1, &name)
}

// GenRenderbuffer implements gl.Functions.
func (*Functions) GenRenderbuffer() uint32 {
	var name uint32
	gl.GenRenderbuffers(1, &name)
	return name
}

// BindRenderbuffer implements gl.Functions.
func (*Functions) BindRenderbuffer(target glw.Enum, name uint32) {
	gl.BindRenderbuffer(target, name)
}

// RenderbufferStorage implements gl.Functions.
func (*Functions) RenderbufferStorage(target, internalFormat glw.Enum, width, height int32) {
	gl.RenderbufferStorage(target, internalFormat, width, height)
}

// DeleteRenderbuffer implements gl.Functions.
func (*Functions) DeleteRenderbuffer(name uint32) {
	gl.DeleteRenderbuffers(1, &name)
}

// ReadPixels implements gl.Functions.
func (*Functions) ReadPixels(x, y, width, height int32, format, typ glw.Enum, pixels []byte, offset int) {
	if pixels == nil {
		gl.ReadPixels(x, y, width, height, format, typ, gl.PtrOffset(offset))
		return
	}
	gl.ReadPixels(x, y, width, height, format, typ, ptr(pixels))
}

// GenBuffer implements gl.Functions.
func (*Functions) GenBuffer() uint32 {
	var name uint32
	gl.GenBuffers(1, &name)
	return name
}

// BindBuffer implements gl.Functions.
func (*Functions) BindBuffer(target glw.Enum, name uint32) {
	gl.BindBuffer(target, name)
}

// BufferData implements gl.Functions.
func (*Functions) BufferData(target glw.Enum, size int, usage glw.Enum) {
	gl.BufferData(target, size, nil, usage)
}

// MapBufferRange implements gl.Functions.
func (*Functions) MapBufferRange(target glw.Enum, offset, length int, access glw.Enum) []byte {
	p := gl.MapBufferRange(target, offset, length, access)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

// UnmapBuffer implements gl.Functions.
func (*Functions) UnmapBuffer(target glw.Enum) bool {
	return gl.UnmapBuffer(target)
}

// DeleteBuffer implements gl.Functions.
func (*Functions) DeleteBuffer(name uint32) {
	gl.DeleteBuffers(1, &name)
}
