// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"github.com/go-gl/gl/all-core/gl"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/device"
)

// NewFunctions creates the binding calls for the current context
func NewFunctions(dev device.Device) *Functions {
	return &Functions{
		maxAnisotropy: dev.Capabilities().MaxTextureMaxAnisotropy,
	}
}

// Functions implements core.Functions with OpenGL
type Functions struct {
	maxAnisotropy float32
}

// ActiveTexture implements interface
func (f *Functions) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

// BindTexture implements interface
func (f *Functions) BindTexture(target core.TextureTarget, texture uint32) {
	gl.BindTexture(glTarget(target), texture)
}

// BindSampler implements interface
func (f *Functions) BindSampler(unit, sampler uint32) {
	gl.BindSampler(unit, sampler)
}

// CreateSampler implements interface
func (f *Functions) CreateSampler(behavior core.SamplerBehavior) uint32 {
	var sampler uint32
	gl.GenSamplers(1, &sampler)

	gl.SamplerParameteri(sampler, gl.TEXTURE_WRAP_S, glWrap(behavior.WrapFunction[0]))
	gl.SamplerParameteri(sampler, gl.TEXTURE_WRAP_T, glWrap(behavior.WrapFunction[1]))
	gl.SamplerParameteri(sampler, gl.TEXTURE_WRAP_R, glWrap(behavior.WrapFunction[2]))
	gl.SamplerParameteri(sampler, gl.TEXTURE_MIN_FILTER, glMinify(behavior.MinifyFilter))
	gl.SamplerParameteri(sampler, gl.TEXTURE_MAG_FILTER, glMagnify(behavior.MagnifyFilter))

	if behavior.DepthTextureComparison == core.CompareNone {
		gl.SamplerParameteri(sampler, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	} else {
		gl.SamplerParameteri(sampler, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		gl.SamplerParameteri(sampler, gl.TEXTURE_COMPARE_FUNC, glCompare(behavior.DepthTextureComparison))
	}

	if f.maxAnisotropy > 0 && behavior.MaxAnisotropy > 1 {
		anisotropy := float32(behavior.MaxAnisotropy)
		if anisotropy > f.maxAnisotropy {
			anisotropy = f.maxAnisotropy
		}
		gl.SamplerParameterf(sampler, textureMaxAnisotropy, anisotropy)
	}

	return sampler
}

// DeleteSampler implements interface
func (f *Functions) DeleteSampler(sampler uint32) {
	gl.DeleteSamplers(1, &sampler)
}

func glTarget(target core.TextureTarget) uint32 {
	switch target {
	case core.Target1D:
		return gl.TEXTURE_1D
	case core.Target3D:
		return gl.TEXTURE_3D
	case core.Target1DArray:
		return gl.TEXTURE_1D_ARRAY
	case core.Target2DArray:
		return gl.TEXTURE_2D_ARRAY
	case core.Target2DMultisample:
		return gl.TEXTURE_2D_MULTISAMPLE
	case core.Target2DMultisampleArray:
		return gl.TEXTURE_2D_MULTISAMPLE_ARRAY
	default:
		return gl.TEXTURE_2D
	}
}

func glWrap(wrap core.SamplerWrapFunction) int32 {
	switch wrap {
	case core.WrapMirror:
		return gl.MIRRORED_REPEAT
	case core.WrapClamp:
		return gl.CLAMP_TO_EDGE
	case core.WrapBorderClamp:
		return gl.CLAMP_TO_BORDER
	case core.WrapMirrorClamp:
		return gl.MIRROR_CLAMP_TO_EDGE
	default:
		return gl.REPEAT
	}
}

func glMinify(filter core.MinifySamplerFilter) int32 {
	switch filter {
	case core.MinifyNearest:
		return gl.NEAREST
	case core.MinifyNearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case core.MinifyLinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case core.MinifyNearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case core.MinifyLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.LINEAR
	}
}

func glMagnify(filter core.MagnifySamplerFilter) int32 {
	if filter == core.MagnifyNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glCompare(cmp core.DepthTextureComparison) int32 {
	switch cmp {
	case core.CompareNever:
		return gl.NEVER
	case core.CompareLess:
		return gl.LESS
	case core.CompareEqual:
		return gl.EQUAL
	case core.CompareLessOrEqual:
		return gl.LEQUAL
	case core.CompareGreater:
		return gl.GREATER
	case core.CompareNotEqual:
		return gl.NOTEQUAL
	case core.CompareGreaterOrEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}
