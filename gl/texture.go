// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl

import (
	"image"

	"golang.org/x/image/draw"
)

// Texture owns a texture name of a given target.
type Texture struct {
	dev    *Device
	name   uint32
	target Enum
}

// NewTexture creates a 2D texture with linear filtering and edge clamping.
// The binding of Texture2D is reset to zero afterwards.
func (d *Device) NewTexture() (*Texture, error) {
	name := d.f.GenTexture()
	if name == 0 {
		return nil, d.failure("glGenTextures")
	}
	t := &Texture{dev: d, name: name, target: Texture2D}

	d.f.BindTexture(t.target, name)
	d.f.TexParameteri(t.target, TextureMinFilter, int32(Linear))
	d.f.TexParameteri(t.target, TextureMagFilter, int32(Linear))
	d.f.TexParameteri(t.target, TextureWrapS, int32(ClampToEdge))
	d.f.TexParameteri(t.target, TextureWrapT, int32(ClampToEdge))
	d.f.BindTexture(t.target, 0)
	if err := d.CheckError("glTexParameteri"); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}

// AdoptTexture takes ownership of an existing texture name.
func (d *Device) AdoptTexture(name uint32, target Enum) (*Texture, error) {
	if name == 0 {
		return nil, d.errs.New("AdoptTexture", int64(InvalidValue))
	}
	return &Texture{dev: d, name: name, target: target}, nil
}

// Valid reports whether the texture holds a name.
func (t *Texture) Valid() bool {
	return t != nil && t.name != 0
}

// Name returns the texture name.
func (t *Texture) Name() uint32 {
	return t.name
}

// Target returns the texture target.
func (t *Texture) Target() Enum {
	return t.target
}

// Update uploads width x height RGBA8 pixels. The texture stays bound.
func (t *Texture) Update(width, height int, pixels []byte) error {
	if width <= 0 || height <= 0 || len(pixels) < width*height*bytesPerPixel {
		return t.dev.errs.New("Texture.Update", int64(InvalidValue))
	}
	f := t.dev.f
	f.BindTexture(t.target, t.name)
	f.TexImage2D(t.target, 0, RGBA8, int32(width), int32(height), RGBA, UnsignedByte, pixels)
	return t.dev.CheckError("glTexImage2D")
}

// UpdateImage uploads img, converting it to RGBA first when needed.
func (t *Texture) UpdateImage(img image.Image) error {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*bytesPerPixel {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return t.Update(b.Dx(), b.Dy(), rgba.Pix)
}

// Release deletes the texture.
func (t *Texture) Release() {
	if t.name == 0 {
		return
	}
	t.dev.f.DeleteTexture(t.name)
	t.name = 0
}
