// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"image"

	"github.com/go-gl/gl/all-core/gl"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/gfx"
)

// textureBindings reads and sets the texture bound to the active unit
type textureBindings interface {
	bound(binding uint32) uint32
	bind(target, texture uint32)
}

type glBindings struct{}

func (glBindings) bound(binding uint32) uint32 {
	return uint32(getInteger(binding))
}

func (glBindings) bind(target, texture uint32) {
	gl.BindTexture(target, texture)
}

// withTexture runs upload with texture bound to the active unit and
// binds back the previous texture afterwards. The unit belongs to the
// binding context, which relies on it being left as it was found.
func withTexture(b textureBindings, target, binding, texture uint32, upload func()) {
	previous := b.bound(binding)
	b.bind(target, texture)
	upload()
	b.bind(target, previous)
}

// NewTexture2D uploads img into a new 2D texture with a full mipmap chain.
// The texture bound to the active unit is left untouched.
func NewTexture2D(img image.Image, srgb bool) (*Texture, error) {
	var id uint32
	gl.GenTextures(1, &id)

	internalFormat := int32(gl.RGBA8)
	format := core.FormatFloat
	if srgb {
		internalFormat = gl.SRGB8_ALPHA8
		format = core.FormatSrgb
	}

	bounds := img.Bounds()
	pixels := gfx.GetPixels(img, 0)
	withTexture(glBindings{}, gl.TEXTURE_2D, gl.TEXTURE_BINDING_2D, id, func() {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
		gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(bounds.Dx()), int32(bounds.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		gl.GenerateMipmap(gl.TEXTURE_2D)
	})

	if err := checkError("NewTexture2D()"); err != nil {
		gl.DeleteTextures(1, &id)
		return nil, err
	}

	return &Texture{
		id:   id,
		kind: core.TextureKind{Target: core.Target2D, Format: format},
	}, nil
}

// Texture is an OpenGL texture object
type Texture struct {
	id   uint32
	kind core.TextureKind
}

// ID implements core.TextureObject
func (t *Texture) ID() uint32 {
	return t.id
}

// Kind returns the kind of the texture
func (t *Texture) Kind() core.TextureKind {
	return t.kind
}

// Release deletes the texture. Contexts that bound it must
// forget it first, see core.Context.ForgetTexture.
func (t *Texture) Release() {
	gl.DeleteTextures(1, &t.id)
}
