// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/glbind/utility/bitsfield"
)

// TextureTarget is the dimensionality a texture is bound with
type TextureTarget int

// Texture targets
const (
	Target1D TextureTarget = iota
	Target2D
	Target3D
	Target1DArray
	Target2DArray
	Target2DMultisample
	Target2DMultisampleArray
)

var targetNames = [...]string{
	Target1D:                 "1d",
	Target2D:                 "2d",
	Target3D:                 "3d",
	Target1DArray:            "1d-array",
	Target2DArray:            "2d-array",
	Target2DMultisample:      "2d-multisample",
	Target2DMultisampleArray: "2d-multisample-array",
}

func (t TextureTarget) String() string {
	if t >= 0 && int(t) < len(targetNames) {
		return targetNames[t]
	}
	return fmt.Sprintf("TextureTarget(%d)", int(t))
}

// Multisample reports whether the target holds multisampled images
func (t TextureTarget) Multisample() bool {
	return t == Target2DMultisample || t == Target2DMultisampleArray
}

// TextureFormat is the class of texel format of a texture
type TextureFormat int

// Texture format classes
const (
	FormatFloat TextureFormat = iota
	FormatCompressed
	FormatSrgb
	FormatCompressedSrgb
	FormatIntegral
	FormatUnsigned
	FormatDepth
)

// TextureKind combines dimensionality and format class of a texture
type TextureKind struct {
	Target TextureTarget
	Format TextureFormat
}

// Valid reports whether a texture of this kind can exist.
// Compressed formats can't be multisampled.
func (k TextureKind) Valid() bool {
	if k.Target < Target1D || k.Target > Target2DMultisampleArray {
		return false
	}
	if k.Format < FormatFloat || k.Format > FormatDepth {
		return false
	}
	if k.Target.Multisample() && (k.Format == FormatCompressed || k.Format == FormatCompressedSrgb) {
		return false
	}
	return true
}

// samplerTypes per target: float, signed, unsigned, shadow
var samplerTypes = [...][4]UniformType{
	Target1D:                 {TypeSampler1D, TypeISampler1D, TypeUSampler1D, TypeSampler1DShadow},
	Target2D:                 {TypeSampler2D, TypeISampler2D, TypeUSampler2D, TypeSampler2DShadow},
	Target3D:                 {TypeSampler3D, TypeISampler3D, TypeUSampler3D, TypeUnknown},
	Target1DArray:            {TypeSampler1DArray, TypeISampler1DArray, TypeUSampler1DArray, TypeSampler1DArrayShadow},
	Target2DArray:            {TypeSampler2DArray, TypeISampler2DArray, TypeUSampler2DArray, TypeSampler2DArrayShadow},
	Target2DMultisample:      {TypeSampler2DMultisample, TypeISampler2DMultisample, TypeUSampler2DMultisample, TypeUnknown},
	Target2DMultisampleArray: {TypeSampler2DMultisampleArray, TypeISampler2DMultisampleArray, TypeUSampler2DMultisampleArray, TypeUnknown},
}

// usableWith reports whether a sampler declared as t can read a texture of kind k
func (k TextureKind) usableWith(t UniformType) bool {
	if !k.Valid() {
		return false
	}
	types := samplerTypes[k.Target]
	switch k.Format {
	case FormatIntegral:
		return t == types[1]
	case FormatUnsigned:
		return t == types[2]
	case FormatDepth:
		return t == types[0] || (types[3] != TypeUnknown && t == types[3])
	default:
		return t == types[0]
	}
}

// TextureObject is a texture resource living on the GPU
type TextureObject interface {
	// ID returns the API name of the texture
	ID() uint32
}

// Texture binds a texture to a sampler uniform, optionally
// sampled with an explicit SamplerBehavior.
type Texture struct {
	Object  TextureObject
	Kind    TextureKind
	Sampler *SamplerBehavior
}

// NewTexture creates a Texture value without an explicit sampler
func NewTexture(object TextureObject, kind TextureKind) Texture {
	return Texture{Object: object, Kind: kind}
}

// Sampled returns a copy of t that samples with behavior
func (t Texture) Sampled(behavior SamplerBehavior) Texture {
	t.Sampler = &behavior
	return t
}

// UsableWith implements interface
func (t Texture) UsableWith(ut UniformType) bool {
	return t.Kind.usableWith(ut)
}

// TextureUnitState is what is bound to a texture unit
type TextureUnitState struct {
	Texture uint32
	Sampler uint32
}

// bindTextureUniform finds a texture unit for texture, makes sure the unit
// holds the texture and sampler, and points the uniform at that unit.
func (c *Context) bindTextureUniform(
	program Program,
	location int32,
	texture uint32,
	behavior *SamplerBehavior,
	target TextureTarget,
	textureUnits *bitsfield.Bitsfield,
) error {
	var sampler uint32
	if behavior != nil {
		cached := c.samplers.Len()
		s, err := c.samplers.Get(*behavior)
		if err != nil {
			return err
		}
		sampler = s
		if c.debug() && c.samplers.Len() > cached {
			c.log.WithField("sampler", sampler).Debugf("created sampler %+v", *behavior)
		}
	}

	unit := c.findTextureUnit(texture, sampler, textureUnits)
	if unit >= c.textureUnitLimit {
		panic(fmt.Sprintf("texture unit %d exceeds the limit of %d units", unit, c.textureUnitLimit))
	}
	textureUnits.SetUsed(unit)

	program.SetUniform(location, SignedInt(unit))

	units := c.state.TextureUnits
	for len(units) <= unit {
		units = append(units, TextureUnitState{})
	}
	c.state.TextureUnits = units

	current := &c.state.TextureUnits[unit]
	if current.Texture == texture && current.Sampler == sampler {
		return nil
	}

	if c.debug() {
		c.log.WithFields(log.Fields{
			"unit":    unit,
			"texture": texture,
			"sampler": sampler,
			"target":  target,
		}).Debug("rebinding texture unit")
	}

	if c.state.ActiveTexture != uint32(unit) {
		c.fns.ActiveTexture(uint32(unit))
		c.state.ActiveTexture = uint32(unit)
	}

	if current.Texture != texture {
		c.fns.BindTexture(target, texture)
		current.Texture = texture
	}

	if current.Sampler != sampler {
		if !c.samplerObjects {
			panic("binding a sampler requires sampler object support (GL 3.3 or GL_ARB_sampler_objects)")
		}
		c.fns.BindSampler(uint32(unit), sampler)
		current.Sampler = sampler
	}

	return nil
}

// findTextureUnit picks the unit for a texture/sampler pair. A unit that
// already holds the texture is reused when its sampler matches too, or when
// no other uniform of this pass claimed it yet. Otherwise a new unit is
// opened, and once the table is full, the lowest unit unused in this pass
// is taken over.
func (c *Context) findTextureUnit(texture, sampler uint32, textureUnits *bitsfield.Bitsfield) int {
	for unit, content := range c.state.TextureUnits {
		if content.Texture == texture && (content.Sampler == sampler || !textureUnits.IsUsed(unit)) {
			return unit
		}
	}

	if len(c.state.TextureUnits) < c.textureUnitLimit {
		return len(c.state.TextureUnits)
	}

	unit, ok := textureUnits.GetUnused()
	if !ok {
		panic(fmt.Sprintf("not enough texture units available (limit %d)", c.textureUnitLimit))
	}
	return unit
}
