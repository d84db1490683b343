// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

// VertexArray owns a vertex array object.
type VertexArray struct {
	dev  *Device
	name uint32
}

// NewVertexArray generates a vertex array object.
func (d *Device) NewVertexArray() (*VertexArray, error) {
	name := d.f.GenVertexArray()
	if err := d.CheckError("glGenVertexArrays"); err != nil {
		if name != 0 {
			d.f.DeleteVertexArray(name)
		}
		return nil, err
	}
	return &VertexArray{dev: d, name: name}, nil
}

// Name returns the object name.
func (v *VertexArray) Name() uint32 {
	return v.name
}

// Release deletes the object.
func (v *VertexArray) Release() {
	if v.name == 0 {
		return
	}
	v.dev.f.DeleteVertexArray(v.name)
	v.name = 0
}
