package model

import (
	"encoding/binary"
	"image/color"
	"math"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/glbind/core"
)

// TintLayout is the std140 layout of the Tint uniform block:
//
//	uniform Tint {
//		vec4 tint;
//		float strength;
//	};
var TintLayout = core.StructLayout{Members: []core.StructMember{
	{Name: "tint", Layout: core.BasicLayout{Type: core.TypeFloatVec4, Offset: 0}},
	{Name: "strength", Layout: core.BasicLayout{Type: core.TypeFloat, Offset: 16}},
}}

// TintSize is the size of the Tint block in bytes
const TintSize = 32

// Material describes how the surface of an object looks
type Material struct {
	Color color.Color

	// Albedo is sampled with AlbedoSampler, or the
	// texture's own parameters when it's nil
	Albedo        core.TextureObject
	AlbedoKind    core.TextureKind
	AlbedoSampler *core.SamplerBehavior

	// Tint is a buffer laid out as TintLayout, optional
	Tint core.Buffer
}

// Uniforms returns the values of the material in a fixed order
func (m *Material) Uniforms() core.Uniforms {
	uniforms := core.NewUniforms()
	if m.Color != nil {
		uniforms = uniforms.Add("u_color", core.Vec4(ColorVec(m.Color)))
	}
	if m.Albedo != nil {
		uniforms = uniforms.Add("u_albedo", core.Texture{
			Object:  m.Albedo,
			Kind:    m.AlbedoKind,
			Sampler: m.AlbedoSampler,
		})
	}
	if m.Tint != nil {
		uniforms = uniforms.Add("Tint", core.NewBlock(m.Tint, TintLayout))
	}
	return uniforms
}

// ColorVec converts c to normalized non-premultiplied RGBA
func ColorVec(c color.Color) glm.Vec4 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return glm.Vec4{
		float32(n.R) / 255,
		float32(n.G) / 255,
		float32(n.B) / 255,
		float32(n.A) / 255,
	}
}

// EncodeTint lays out the contents of a Tint block
func EncodeTint(tint color.Color, strength float32) []byte {
	data := make([]byte, TintSize)
	v := ColorVec(tint)
	for i, f := range v {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(f))
	}
	binary.LittleEndian.PutUint32(data[16:], math.Float32bits(strength))
	return data
}
