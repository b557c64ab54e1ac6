// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
)

// ErrSamplersNotSupported is returned when a sampler is requested
// from a session that has no sampler objects
var ErrSamplersNotSupported = errors.New("sampler objects are not supported by this context")

// SamplerWrapFunction is how texture coordinates outside of [0, 1] are handled
type SamplerWrapFunction int

// Wrap functions
const (
	WrapRepeat SamplerWrapFunction = iota
	WrapMirror
	WrapClamp
	WrapBorderClamp
	WrapMirrorClamp
)

// MinifySamplerFilter is the filter used when a texel covers less than a pixel
type MinifySamplerFilter int

// Minify filters
const (
	MinifyNearest MinifySamplerFilter = iota
	MinifyLinear
	MinifyNearestMipmapNearest
	MinifyLinearMipmapNearest
	MinifyNearestMipmapLinear
	MinifyLinearMipmapLinear
)

// MagnifySamplerFilter is the filter used when a texel covers more than a pixel
type MagnifySamplerFilter int

// Magnify filters
const (
	MagnifyNearest MagnifySamplerFilter = iota
	MagnifyLinear
)

// DepthTextureComparison is the comparison done when sampling
// a depth texture through a shadow sampler
type DepthTextureComparison int

// Depth comparisons, CompareNone disables comparison
const (
	CompareNone DepthTextureComparison = iota
	CompareNever
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
	CompareAlways
)

// SamplerBehavior describes how a texture is sampled. Behaviors
// are compared by value, equal behaviors share one sampler object.
type SamplerBehavior struct {
	WrapFunction           [3]SamplerWrapFunction
	MinifyFilter           MinifySamplerFilter
	MagnifyFilter          MagnifySamplerFilter
	DepthTextureComparison DepthTextureComparison

	// MaxAnisotropy of 1 disables anisotropic filtering
	MaxAnisotropy uint16
}

// DefaultSamplerBehavior returns the behavior textures get by default
func DefaultSamplerBehavior() SamplerBehavior {
	return SamplerBehavior{
		WrapFunction:           [3]SamplerWrapFunction{WrapMirror, WrapMirror, WrapMirror},
		MinifyFilter:           MinifyLinearMipmapLinear,
		MagnifyFilter:          MagnifyLinear,
		DepthTextureComparison: CompareNone,
		MaxAnisotropy:          1,
	}
}

// SamplerCache maps sampler behaviors to sampler objects.
// Entries are only added, they live as long as the context.
type SamplerCache struct {
	fns       Functions
	supported bool
	samplers  map[SamplerBehavior]uint32
}

// NewSamplerCache creates an empty cache. When supported is false
// every Get fails with ErrSamplersNotSupported.
func NewSamplerCache(fns Functions, supported bool) *SamplerCache {
	return &SamplerCache{
		fns:       fns,
		supported: supported,
		samplers:  make(map[SamplerBehavior]uint32),
	}
}

// Get returns the sampler object for behavior, creating it on first use
func (sc *SamplerCache) Get(behavior SamplerBehavior) (uint32, error) {
	if !sc.supported {
		return 0, ErrSamplersNotSupported
	}

	if sampler, ok := sc.samplers[behavior]; ok {
		return sampler, nil
	}

	sampler := sc.fns.CreateSampler(behavior)
	sc.samplers[behavior] = sampler
	return sampler, nil
}

// Len returns the number of cached samplers
func (sc *SamplerCache) Len() int {
	return len(sc.samplers)
}

// Release deletes every cached sampler object
func (sc *SamplerCache) Release() {
	for behavior, sampler := range sc.samplers {
		sc.fns.DeleteSampler(sampler)
		delete(sc.samplers, behavior)
	}
}
