// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

// Enum mirrors GLenum.
type Enum = uint32

// Error codes of glGetError.
const (
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)

// String names for GetString.
const (
	Vendor                 Enum = 0x1F00
	Renderer               Enum = 0x1F01
	Version                Enum = 0x1F02
	ShadingLanguageVersion Enum = 0x8B8C
)

// Textures.
const (
	Texture2D        Enum = 0x0DE1
	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	Linear           Enum = 0x2601
	ClampToEdge      Enum = 0x812F

	RGBA         Enum = 0x1908
	RGBA8        Enum = 0x8058
	UnsignedByte Enum = 0x1401
)

// Framebuffers and renderbuffers.
const (
	FramebufferTarget   Enum = 0x8D40
	ReadFramebuffer     Enum = 0x8CA8
	Renderbuffer        Enum = 0x8D41
	ColorAttachment0    Enum = 0x8CE0
	DepthAttachment     Enum = 0x8D00
	DepthComponent16    Enum = 0x81A5
	FramebufferComplete Enum = 0x8CD5
)

// Shaders and programs.
const (
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
	InfoLogLength  Enum = 0x8B84
)

// Buffers.
const (
	PixelPackBuffer Enum = 0x88EB
	StreamRead      Enum = 0x88E1
	MapReadBit      Enum = 0x0001
)

// bytesPerPixel of RGBA8.
const bytesPerPixel = 4
