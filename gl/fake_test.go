// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl_test

import (
	"strings"

	"github.com/devblok/graphics/gl"
)

type fakeShader struct {
	typ      gl.Enum
	source   string
	compiled bool
}

type fakeProgram struct {
	attached map[uint32]bool
	linked   bool
}

// fakeFunctions keeps GL objects in maps. Sources containing "error"
// fail to compile, programs fail to link when a stage is missing.
type fakeFunctions struct {
	err  gl.Enum
	next uint32

	shaders       map[uint32]*fakeShader
	programs      map[uint32]*fakeProgram
	textures      map[uint32]bool
	framebuffers  map[uint32]bool
	renderbuffers map[uint32]gl.Enum
	buffers       map[uint32][]byte
	vertexArrays  map[uint32]bool

	bound map[gl.Enum]uint32

	uploads         int
	lastUpload      []byte
	incomplete      bool
	failFramebuffer bool
	mapped          bool
}

func newFakeFunctions() *fakeFunctions {
	return &fakeFunctions{
		shaders:       map[uint32]*fakeShader{},
		programs:      map[uint32]*fakeProgram{},
		textures:      map[uint32]bool{},
		framebuffers:  map[uint32]bool{},
		renderbuffers: map[uint32]gl.Enum{},
		buffers:       map[uint32][]byte{},
		vertexArrays:  map[uint32]bool{},
		bound:         map[gl.Enum]uint32{},
	}
}

// live counts every object not deleted yet.
func (f *fakeFunctions) live() int {
	return len(f.shaders) + len(f.programs) + len(f.textures) + len(f.framebuffers) +
		len(f.renderbuffers) + len(f.buffers) + len(f.vertexArrays)
}

func (f *fakeFunctions) name() uint32 {
	f.next++
	return f.next
}

func (f *fakeFunctions) raise(code gl.Enum) {
	if f.err == gl.NoError {
		f.err = code
	}
}

func (f *fakeFunctions) GetError() gl.Enum {
	code := f.err
	f.err = gl.NoError
	return code
}

func (f *fakeFunctions) GetString(name gl.Enum) string {
	switch name {
	case gl.Vendor:
		return "fake"
	case gl.Renderer:
		return "fake renderer"
	case gl.Version:
		return "3.3 fake"
	}
	return ""
}

func (f *fakeFunctions) GenVertexArray() uint32 {
	n := f.name()
	f.vertexArrays[n] = true
	return n
}

func (f *fakeFunctions) DeleteVertexArray(name uint32) { delete(f.vertexArrays, name) }

func (f *fakeFunctions) CreateShader(typ gl.Enum) uint32 {
	if typ != gl.VertexShader && typ != gl.FragmentShader {
		f.raise(gl.InvalidEnum)
		return 0
	}
	n := f.name()
	f.shaders[n] = &fakeShader{typ: typ}
	return n
}

func (f *fakeFunctions) ShaderSource(shader uint32, source string) { f.shaders[shader].source = source }

func (f *fakeFunctions) CompileShader(shader uint32) {
	s := f.shaders[shader]
	s.compiled = s.source != "" && !strings.Contains(s.source, "error")
}

func (f *fakeFunctions) GetShaderi(shader uint32, pname gl.Enum) int32 {
	if pname == gl.CompileStatus && f.shaders[shader].compiled {
		return 1
	}
	return 0
}

func (f *fakeFunctions) GetShaderInfoLog(shader uint32) string {
	if f.shaders[shader].compiled {
		return ""
	}
	return "0:1: syntax error\n"
}

func (f *fakeFunctions) DeleteShader(shader uint32) { delete(f.shaders, shader) }

func (f *fakeFunctions) CreateProgram() uint32 {
	n := f.name()
	f.programs[n] = &fakeProgram{attached: map[uint32]bool{}}
	return n
}

func (f *fakeFunctions) AttachShader(program, shader uint32) {
	f.programs[program].attached[shader] = true
}

func (f *fakeFunctions) DetachShader(program, shader uint32) {
	delete(f.programs[program].attached, shader)
}

func (f *fakeFunctions) LinkProgram(program uint32) {
	p := f.programs[program]
	var stages [2]bool
	for shader := range p.attached {
		switch f.shaders[shader].typ {
		case gl.VertexShader:
			stages[0] = true
		case gl.FragmentShader:
			stages[1] = true
		}
	}
	p.linked = stages[0] && stages[1]
}

func (f *fakeFunctions) GetProgrami(program uint32, pname gl.Enum) int32 {
	if pname == gl.LinkStatus && f.programs[program].linked {
		return 1
	}
	return 0
}

func (f *fakeFunctions) GetProgramInfoLog(program uint32) string {
	if f.programs[program].linked {
		return ""
	}
	return "link failed"
}

func (f *fakeFunctions) DeleteProgram(program uint32) { delete(f.programs, program) }

func (f *fakeFunctions) GetUniformLocation(program uint32, name string) int32 {
	if name == "mvp" {
		return 0
	}
	return -1
}

func (f *fakeFunctions) GetAttribLocation(program uint32, name string) int32 {
	switch name {
	case "position":
		return 0
	case "color":
		return 1
	}
	return -1
}

func (f *fakeFunctions) GenTexture() uint32 {
	n := f.name()
	f.textures[n] = true
	return n
}

func (f *fakeFunctions) BindTexture(target gl.Enum, name uint32) { f.bound[target] = name }

func (f *fakeFunctions) TexParameteri(target, pname gl.Enum, param int32) {
	if f.bound[target] == 0 {
		f.raise(gl.InvalidOperation)
	}
}

func (f *fakeFunctions) TexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, format, typ gl.Enum, pixels []byte) {
	if f.bound[target] == 0 {
		f.raise(gl.InvalidOperation)
		return
	}
	f.uploads++
	f.lastUpload = append([]byte(nil), pixels[:int(width*height)*4]...)
}

func (f *fakeFunctions) DeleteTexture(name uint32) { delete(f.textures, name) }

func (f *fakeFunctions) GenFramebuffer() uint32 {
	n := f.name()
	f.framebuffers[n] = true
	return n
}

func (f *fakeFunctions) BindFramebuffer(target gl.Enum, name uint32) {
	if name != 0 && !f.framebuffers[name] {
		f.raise(gl.InvalidOperation)
		return
	}
	f.bound[target] = name
}

func (f *fakeFunctions) FramebufferRenderbuffer(target, attachment, renderbufferTarget gl.Enum, renderbuffer uint32) {
	if f.failFramebuffer {
		f.raise(gl.InvalidOperation)
	}
}

func (f *fakeFunctions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	if target != gl.FramebufferTarget {
		f.raise(gl.InvalidEnum)
		return 0
	}
	if f.incomplete {
		return 0x8CD6 // incomplete attachment
	}
	return gl.FramebufferComplete
}

func (f *fakeFunctions) DeleteFramebuffer(name uint32) { delete(f.framebuffers, name) }

func (f *fakeFunctions) GenRenderbuffer() uint32 {
	n := f.name()
	f.renderbuffers[n] = 0
	return n
}

func (f *fakeFunctions) BindRenderbuffer(target gl.Enum, name uint32) { f.bound[target] = name }

func (f *fakeFunctions) RenderbufferStorage(target, internalFormat gl.Enum, width, height int32) {
	f.renderbuffers[f.bound[target]] = internalFormat
}

func (f *fakeFunctions) DeleteRenderbuffer(name uint32) { delete(f.renderbuffers, name) }

func (f *fakeFunctions) ReadPixels(x, y, width, height int32, format, typ gl.Enum, pixels []byte, offset int) {
	n := int(width * height * 4)
	if pixels == nil {
		buf, ok := f.buffers[f.bound[gl.PixelPackBuffer]]
		if !ok || offset+n > len(buf) {
			f.raise(gl.InvalidOperation)
			return
		}
		pixels = buf[offset:]
	}
	for i := 0; i < n; i++ {
		pixels[i] = byte(f.bound[gl.ReadFramebuffer])
	}
}

func (f *fakeFunctions) GenBuffer() uint32 {
	n := f.name()
	f.buffers[n] = nil
	return n
}

func (f *fakeFunctions) BindBuffer(target gl.Enum, name uint32) { f.bound[target] = name }

func (f *fakeFunctions) BufferData(target gl.Enum, size int, usage gl.Enum) {
	f.buffers[f.bound[target]] = make([]byte, size)
}

func (f *fakeFunctions) MapBufferRange(target gl.Enum, offset, length int, access gl.Enum) []byte {
	buf := f.buffers[f.bound[target]]
	if length == 0 || offset+length > len(buf) || f.mapped {
		f.raise(gl.InvalidValue)
		return nil
	}
	f.mapped = true
	return buf[offset : offset+length]
}

func (f *fakeFunctions) UnmapBuffer(target gl.Enum) bool {
	if !f.mapped {
		f.raise(gl.InvalidOperation)
		return false
	}
	f.mapped = false
	return true
}

func (f *fakeFunctions) DeleteBuffer(name uint32) { delete(f.buffers, name) }
