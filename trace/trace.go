// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package trace is a GPU backend that records calls instead of issuing them.
// It runs binding passes without a GPU context and shows which calls a
// pass would have made.
package trace

import (
	"bytes"
	"fmt"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/device"
)

// Recorded operations
const (
	OpActiveTexture           = "ActiveTexture"
	OpBindTexture             = "BindTexture"
	OpBindSampler             = "BindSampler"
	OpCreateSampler           = "CreateSampler"
	OpDeleteSampler           = "DeleteSampler"
	OpUniform                 = "Uniform"
	OpUniformBlockBinding     = "UniformBlockBinding"
	OpStorageBlockBinding     = "ShaderStorageBlockBinding"
	OpBindUniformBuffer       = "BindUniformBuffer"
	OpBindShaderStorageBuffer = "BindShaderStorageBuffer"
	OpFenceSync               = "FenceSync"
	OpClientWaitSync          = "ClientWaitSync"
)

// Call is one recorded operation
type Call struct {
	Op   string
	Args []interface{}
}

func (c Call) String() string {
	var buf bytes.Buffer
	buf.WriteString(c.Op)
	for _, arg := range c.Args {
		fmt.Fprintf(&buf, " %v", arg)
	}
	return buf.String()
}

// Recorder records calls, it implements core.Functions
type Recorder struct {
	calls []Call

	lastSampler uint32
	lastFence   uint32
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a call
func (r *Recorder) Record(op string, args ...interface{}) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

// Calls returns the calls recorded since the last Flush
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Count returns how many of the recorded calls are one of ops,
// or all of them when no ops are given
func (r *Recorder) Count(ops ...string) int {
	if len(ops) == 0 {
		return len(r.calls)
	}
	var n int
	for _, call := range r.calls {
		for _, op := range ops {
			if call.Op == op {
				n++
				break
			}
		}
	}
	return n
}

// Flush returns the recorded calls and starts over
func (r *Recorder) Flush() []Call {
	calls := r.calls
	r.calls = nil
	return calls
}

// ActiveTexture implements interface
func (r *Recorder) ActiveTexture(unit uint32) {
	r.Record(OpActiveTexture, unit)
}

// BindTexture implements interface
func (r *Recorder) BindTexture(target core.TextureTarget, texture uint32) {
	r.Record(OpBindTexture, target, texture)
}

// BindSampler implements interface
func (r *Recorder) BindSampler(unit, sampler uint32) {
	r.Record(OpBindSampler, unit, sampler)
}

// CreateSampler implements interface, samplers are numbered from 1
func (r *Recorder) CreateSampler(behavior core.SamplerBehavior) uint32 {
	r.lastSampler++
	r.Record(OpCreateSampler, r.lastSampler)
	return r.lastSampler
}

// DeleteSampler implements interface
func (r *Recorder) DeleteSampler(sampler uint32) {
	r.Record(OpDeleteSampler, sampler)
}

// Format writes calls one per line
func Format(calls []Call) []byte {
	var buf bytes.Buffer
	for _, call := range calls {
		buf.WriteString(call.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Device returns a GL 4.5 device with the given binding limits
func Device(textureUnits, uniformBuffers, storageBuffers int) *device.Fixed {
	return device.NewFixed(device.Info{
		Vendor:   "devblok",
		Renderer: "trace",
		Version:  device.Version{Api: device.GL, Major: 4, Minor: 5},
		Extensions: []string{
			"GL_ARB_sampler_objects",
			"GL_ARB_uniform_buffer_object",
			"GL_ARB_shader_storage_buffer_object",
		},
		Limits: device.Capabilities{
			MaxCombinedTextureImageUnits:   textureUnits,
			MaxUniformBufferBindings:       uniformBuffers,
			MaxShaderStorageBufferBindings: storageBuffers,
		},
	})
}
