// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

// Framebuffer owns a framebuffer object with RGBA8 color and 16 bit depth
// renderbuffers attached.
type Framebuffer struct {
	dev   *Device
	name  uint32
	color uint32
	depth uint32

	width, height int
}

// NewFramebuffer creates a complete width x height framebuffer.
// The framebuffer binding is reset to zero afterwards.
func (d *Device) NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, d.errs.New("NewFramebuffer", int64(InvalidValue))
	}
	f := d.f
	fb := &Framebuffer{dev: d, width: width, height: height}
	if fb.name = f.GenFramebuffer(); fb.name == 0 {
		return nil, d.failure("glGenFramebuffers")
	}
	f.BindFramebuffer(FramebufferTarget, fb.name)
	defer f.BindFramebuffer(FramebufferTarget, 0)

	var err error
	if fb.color, err = fb.attach(ColorAttachment0, RGBA8); err != nil {
		fb.Release()
		return nil, err
	}
	if fb.depth, err = fb.attach(DepthAttachment, DepthComponent16); err != nil {
		fb.Release()
		return nil, err
	}
	if status := f.CheckFramebufferStatus(FramebufferTarget); status != FramebufferComplete {
		fb.Release()
		return nil, d.report("glCheckFramebufferStatus", status)
	}
	return fb, nil
}

func (fb *Framebuffer) attach(attachment, format Enum) (uint32, error) {
	f := fb.dev.f
	rb := f.GenRenderbuffer()
	if rb == 0 {
		return 0, fb.dev.failure("glGenRenderbuffers")
	}
	f.BindRenderbuffer(Renderbuffer, rb)
	f.RenderbufferStorage(Renderbuffer, format, int32(fb.width), int32(fb.height))
	f.FramebufferRenderbuffer(FramebufferTarget, attachment, Renderbuffer, rb)
	f.BindRenderbuffer(Renderbuffer, 0)
	if err := fb.dev.CheckError("glFramebufferRenderbuffer"); err != nil {
		f.DeleteRenderbuffer(rb)
		return 0, err
	}
	return rb, nil
}

// Name returns the framebuffer name.
func (fb *Framebuffer) Name() uint32 {
	return fb.name
}

// Size returns the size the framebuffer was created with.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Bind binds the framebuffer to the draw and read framebuffer targets.
func (fb *Framebuffer) Bind() error {
	fb.dev.f.BindFramebuffer(FramebufferTarget, fb.name)
	return fb.dev.CheckError("glBindFramebuffer")
}

// ReadPixels reads width x height RGBA8 pixels from the origin of the
// color attachment into pixels.
func (fb *Framebuffer) ReadPixels(width, height int, pixels []byte) error {
	if width <= 0 || height <= 0 || len(pixels) < width*height*bytesPerPixel {
		return fb.dev.errs.New("Framebuffer.ReadPixels", int64(InvalidValue))
	}
	f := fb.dev.f
	f.BindFramebuffer(ReadFramebuffer, fb.name)
	f.ReadPixels(0, 0, int32(width), int32(height), RGBA, UnsignedByte, pixels, 0)
	return fb.dev.CheckError("glReadPixels")
}

// Release deletes the renderbuffers and the framebuffer.
func (fb *Framebuffer) Release() {
	f := fb.dev.f
	if fb.color != 0 {
		f.DeleteRenderbuffer(fb.color)
		fb.color = 0
	}
	if fb.depth != 0 {
		f.DeleteRenderbuffer(fb.depth)
		fb.depth = 0
	}
	if fb.name != 0 {
		f.DeleteFramebuffer(fb.name)
		fb.name = 0
	}
}
