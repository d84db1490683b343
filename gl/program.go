// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import (
	"strings"
)

// InfoLogError is a compile or link failure with the driver's info log.
type InfoLogError struct {
	Op  string
	Log string
}

func (e *InfoLogError) Error() string {
	return e.Op + ": " + strings.TrimSpace(e.Log)
}

// Program owns a linked shader program and its two shader stages.
type Program struct {
	dev    *Device
	id     uint32
	vs, fs uint32
}

// NewProgram compiles the vertex and fragment sources and links them.
// On failure every object created on the way is deleted.
func (d *Device) NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	p := &Program{dev: d}
	p.id = d.f.CreateProgram()
	if p.id == 0 {
		return nil, d.failure("glCreateProgram")
	}

	var err error
	if p.vs, err = p.compileAttach(VertexShader, vertexSource); err != nil {
		p.Release()
		return nil, err
	}
	if p.fs, err = p.compileAttach(FragmentShader, fragmentSource); err != nil {
		p.Release()
		return nil, err
	}

	d.f.LinkProgram(p.id)
	if d.f.GetProgrami(p.id, LinkStatus) == 0 {
		err := &InfoLogError{Op: "glLinkProgram", Log: d.f.GetProgramInfoLog(p.id)}
		d.logger.Error(err)
		p.Release()
		return nil, err
	}
	if err := d.CheckError("glLinkProgram"); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func (p *Program) compileAttach(typ Enum, source string) (uint32, error) {
	f := p.dev.f
	shader := f.CreateShader(typ)
	if shader == 0 {
		return 0, p.dev.failure("glCreateShader")
	}
	f.ShaderSource(shader, source)
	f.CompileShader(shader)
	if f.GetShaderi(shader, CompileStatus) == 0 {
		err := &InfoLogError{Op: "glCompileShader", Log: f.GetShaderInfoLog(shader)}
		p.dev.logger.Error(err)
		f.DeleteShader(shader)
		return 0, err
	}
	f.AttachShader(p.id, shader)
	if err := p.dev.CheckError("glAttachShader"); err != nil {
		f.DeleteShader(shader)
		return 0, err
	}
	return shader, nil
}

// failure reports the pending GL error of op, or InvalidOperation when the
// driver returned a zero name without raising one.
func (d *Device) failure(op string) error {
	code := d.f.GetError()
	if code == NoError {
		code = InvalidOperation
	}
	return d.report(op, code)
}

// Valid reports whether the program is linked and not released.
func (p *Program) Valid() bool {
	return p != nil && p.id != 0
}

// Name returns the program name.
func (p *Program) Name() uint32 {
	return p.id
}

// Uniform returns the location of a uniform, -1 if it does not exist.
func (p *Program) Uniform(name string) int32 {
	return p.dev.f.GetUniformLocation(p.id, name)
}

// Attribute returns the location of a vertex attribute, -1 if it does not exist.
func (p *Program) Attribute(name string) int32 {
	return p.dev.f.GetAttribLocation(p.id, name)
}

// Release detaches and deletes the shaders, then the program.
func (p *Program) Release() {
	f := p.dev.f
	for _, shader := range []*uint32{&p.vs, &p.fs} {
		if *shader == 0 {
			continue
		}
		if p.id != 0 {
			f.DetachShader(p.id, *shader)
		}
		f.DeleteShader(*shader)
		*shader = 0
	}
	if p.id != 0 {
		f.DeleteProgram(p.id)
		p.id = 0
	}
}
