// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import (
	"image"
)

// readbackBuffers is the number of pixel pack buffers of a Readback.
const readbackBuffers = 2

// Readback double buffers framebuffer reads through pixel pack buffers,
// so a frame can be packed while the previous one is mapped.
type Readback struct {
	dev      *Device
	pbos     [readbackBuffers]uint32
	capacity int

	// range of the last pack
	offset, length int
}

// NewReadback creates two pixel pack buffers holding width x height RGBA8 pixels each.
func (d *Device) NewReadback(width, height int) (*Readback, error) {
	if width <= 0 || height <= 0 {
		return nil, d.errs.New("NewReadback", int64(InvalidValue))
	}
	r := &Readback{dev: d, capacity: width * height * bytesPerPixel}
	for i := range r.pbos {
		if r.pbos[i] = d.f.GenBuffer(); r.pbos[i] == 0 {
			err := d.failure("glGenBuffers")
			r.Release()
			return nil, err
		}
		d.f.BindBuffer(PixelPackBuffer, r.pbos[i])
		d.f.BufferData(PixelPackBuffer, r.capacity, StreamRead)
	}
	d.f.BindBuffer(PixelPackBuffer, 0)
	if err := d.CheckError("glBufferData"); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

// Capacity returns the size in bytes of each buffer.
func (r *Readback) Capacity() int {
	return r.capacity
}

// Pack reads frame of framebuffer fbo into buffer idx.
func (r *Readback) Pack(idx int, fbo uint32, frame image.Rectangle) error {
	if idx < 0 || idx >= len(r.pbos) {
		return r.dev.errs.New("Readback.Pack", int64(InvalidValue))
	}
	length := frame.Dx() * frame.Dy() * bytesPerPixel
	if frame.Empty() || length > r.capacity {
		return r.dev.errs.New("Readback.Pack", int64(InvalidValue))
	}
	f := r.dev.f
	f.BindFramebuffer(ReadFramebuffer, fbo)
	f.BindBuffer(PixelPackBuffer, r.pbos[idx])
	f.ReadPixels(int32(frame.Min.X), int32(frame.Min.Y), int32(frame.Dx()), int32(frame.Dy()), RGBA, UnsignedByte, nil, 0)
	f.BindBuffer(PixelPackBuffer, 0)
	if err := r.dev.CheckError("glReadPixels"); err != nil {
		return err
	}
	r.offset, r.length = 0, length
	return nil
}

// MapAndInvoke maps the last packed range of buffer idx for reading and
// calls fn with the mapping. The mapping is only valid during fn.
func (r *Readback) MapAndInvoke(idx int, fn func(mapping []byte)) error {
	if idx < 0 || idx >= len(r.pbos) {
		return r.dev.errs.New("Readback.MapAndInvoke", int64(InvalidValue))
	}
	if r.length == 0 {
		return r.dev.errs.New("Readback.MapAndInvoke", int64(InvalidOperation))
	}
	f := r.dev.f
	f.BindBuffer(PixelPackBuffer, r.pbos[idx])
	defer f.BindBuffer(PixelPackBuffer, 0)

	mapping := f.MapBufferRange(PixelPackBuffer, r.offset, r.length, MapReadBit)
	if mapping == nil {
		return r.dev.failure("glMapBufferRange")
	}
	fn(mapping)
	if !f.UnmapBuffer(PixelPackBuffer) {
		return r.dev.failure("glUnmapBuffer")
	}
	return nil
}

// Release deletes both buffers.
func (r *Readback) Release() {
	for i, pbo := range r.pbos {
		if pbo != 0 {
			r.dev.f.DeleteBuffer(pbo)
			r.pbos[i] = 0
		}
	}
}
