// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

// Functions is the table of OpenGL entry points the wrappers use.
// Names are generated and deleted one at a time. The native package
// implements it on top of go-gl for the context current on the calling thread.
type Functions interface {
	GetError() Enum
	GetString(name Enum) string

	GenVertexArray() uint32
	DeleteVertexArray(name uint32)

	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32

	GenTexture() uint32
	BindTexture(target Enum, name uint32)
	TexParameteri(target, pname Enum, param int32)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, typ Enum, pixels []byte)
	DeleteTexture(name uint32)

	GenFramebuffer() uint32
	BindFramebuffer(target Enum, name uint32)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	DeleteFramebuffer(name uint32)

	GenRenderbuffer() uint32
	BindRenderbuffer(target Enum, name uint32)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)
	DeleteRenderbuffer(name uint32)

	// ReadPixels reads into pixels, or into the bound pixel pack buffer
	// at offset when pixels is nil.
	ReadPixels(x, y, width, height int32, format, typ Enum, pixels []byte, offset int)

	GenBuffer() uint32
	BindBuffer(target Enum, name uint32)
	BufferData(target Enum, size int, usage Enum)
	MapBufferRange(target Enum, offset, length int, access Enum) []byte
	UnmapBuffer(target Enum) bool
	DeleteBuffer(name uint32)
}
