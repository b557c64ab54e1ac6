// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	log "github.com/sirupsen/logrus"

	"github.com/devblok/glbind/device"
)

// State mirrors the binding state of the GPU context. It's only
// changed together with the matching GPU calls.
type State struct {
	// ActiveTexture is the currently selected texture unit,
	// UnknownTextureUnit when it has to be selected again
	ActiveTexture uint32

	// TextureUnits holds what is bound to each unit touched so far,
	// it only grows
	TextureUnits []TextureUnitState
}

// UnknownTextureUnit is the active texture of a released Context
const UnknownTextureUnit = ^uint32(0)

// Context is the binding session of one GPU context. It remembers
// what is bound to the texture units across binding passes so that
// calls which wouldn't change anything are skipped.
// A Context must only be used from the thread that owns the GPU context.
type Context struct {
	fns  Functions
	caps device.Capabilities
	cfg  BindingConfiguration
	log  *log.Entry

	samplerObjects   bool
	textureUnitLimit int

	state    State
	samplers *SamplerCache
}

// NewContext creates a binding session for the GPU context fns acts on.
// The logger may be nil, in which case the standard logger is used.
func NewContext(fns Functions, dev device.Device, cfg BindingConfiguration, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.StandardLogger()
	}

	caps := dev.Capabilities()
	limit := caps.MaxCombinedTextureImageUnits
	if cfg.MaxTextureUnits > 0 && cfg.MaxTextureUnits < limit {
		limit = cfg.MaxTextureUnits
	}

	samplerObjects := device.SamplerObjectsSupported(dev.Version(), dev.Extensions())

	c := &Context{
		fns:              fns,
		caps:             caps,
		cfg:              cfg,
		log:              logger.WithField("component", "uniforms"),
		samplerObjects:   samplerObjects,
		textureUnitLimit: limit,
		samplers:         NewSamplerCache(fns, samplerObjects),
	}

	c.log.WithFields(log.Fields{
		"version":        dev.Version(),
		"textureUnits":   limit,
		"uniformBuffers": caps.MaxUniformBufferBindings,
		"storageBuffers": caps.MaxShaderStorageBufferBindings,
		"samplerObjects": samplerObjects,
	}).Info("binding context created")

	return c
}

// State returns a copy of the tracked binding state
func (c *Context) State() State {
	units := make([]TextureUnitState, len(c.state.TextureUnits))
	copy(units, c.state.TextureUnits)
	return State{
		ActiveTexture: c.state.ActiveTexture,
		TextureUnits:  units,
	}
}

// TextureUnitLimit returns the number of texture units bindings may use
func (c *Context) TextureUnitLimit() int {
	return c.textureUnitLimit
}

// Samplers returns the sampler cache of the session
func (c *Context) Samplers() *SamplerCache {
	return c.samplers
}

// ForgetTexture must be called before a texture is deleted, the API may
// hand its name out again and the units still holding it would be skipped.
// Code that binds textures outside of the Context, uploads for example,
// has to bind back what the active unit held before.
func (c *Context) ForgetTexture(texture uint32) {
	for i := range c.state.TextureUnits {
		if c.state.TextureUnits[i].Texture == texture {
			c.state.TextureUnits[i].Texture = 0
		}
	}
}

// Release deletes the cached samplers and forgets the tracked state.
// A Context used after Release selects and binds every unit again.
func (c *Context) Release() {
	c.samplers.Release()
	c.state = State{ActiveTexture: UnknownTextureUnit}
	c.log.Debug("binding context released")
}

func (c *Context) debug() bool {
	return c.log.Logger.IsLevelEnabled(log.DebugLevel)
}
