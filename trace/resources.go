// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package trace

import (
	"github.com/devblok/glbind/core"
)

// Program is a program with hand written reflection data
type Program struct {
	rec *Recorder

	uniforms map[string]core.Uniform
	blocks   map[string]*core.UniformBlock
	storage  map[string]*core.UniformBlock

	// Values holds the last value set for each location
	Values map[int32]core.RawValue
}

// NewProgram creates a program without inputs
func NewProgram(rec *Recorder) *Program {
	return &Program{
		rec:      rec,
		uniforms: make(map[string]core.Uniform),
		blocks:   make(map[string]*core.UniformBlock),
		storage:  make(map[string]*core.UniformBlock),
		Values:   make(map[int32]core.RawValue),
	}
}

// WithUniform declares a plain uniform
func (p *Program) WithUniform(name string, location int32, typ core.UniformType) *Program {
	p.uniforms[name] = core.Uniform{Location: location, Type: typ}
	return p
}

// WithUniformArray declares a uniform array of size elements
func (p *Program) WithUniformArray(name string, location int32, typ core.UniformType, size int) *Program {
	p.uniforms[name] = core.Uniform{Location: location, Type: typ, Size: size}
	return p
}

// WithUniformBlock declares a uniform block
func (p *Program) WithUniformBlock(name string, binding uint32, layout core.BlockLayout) *Program {
	p.blocks[name] = &core.UniformBlock{Binding: binding, Layout: layout}
	return p
}

// WithStorageBlock declares a shader storage block
func (p *Program) WithStorageBlock(name string, binding uint32, layout core.BlockLayout) *Program {
	p.storage[name] = &core.UniformBlock{Binding: binding, Layout: layout}
	return p
}

// Uniform implements interface
func (p *Program) Uniform(name string) (core.Uniform, bool) {
	u, ok := p.uniforms[name]
	return u, ok
}

// UniformBlocks implements interface
func (p *Program) UniformBlocks() map[string]*core.UniformBlock {
	return p.blocks
}

// ShaderStorageBlocks implements interface
func (p *Program) ShaderStorageBlocks() map[string]*core.UniformBlock {
	return p.storage
}

// SetUniform implements interface
func (p *Program) SetUniform(location int32, value core.RawValue) {
	p.Values[location] = value
	p.rec.Record(OpUniform, location, value)
}

// SetUniformBlockBinding implements interface
func (p *Program) SetUniformBlockBinding(binding, bindPoint uint32) {
	p.rec.Record(OpUniformBlockBinding, binding, bindPoint)
}

// SetShaderStorageBlockBinding implements interface
func (p *Program) SetShaderStorageBlockBinding(binding, bindPoint uint32) {
	p.rec.Record(OpStorageBlockBinding, binding, bindPoint)
}

// Texture is a texture known only by its name
type Texture uint32

// ID implements interface
func (t Texture) ID() uint32 {
	return uint32(t)
}

// Buffer is a buffer that records how it's bound
type Buffer struct {
	rec *Recorder
	id  uint32

	// Offset is reported by OffsetBytes
	Offset int

	// Fenced buffers hand out a fence each time they're bound
	Fenced bool
}

// NewBuffer creates an untracked buffer at offset 0
func NewBuffer(rec *Recorder, id uint32) *Buffer {
	return &Buffer{rec: rec, id: id}
}

// OffsetBytes implements interface
func (b *Buffer) OffsetBytes() int {
	return b.Offset
}

// AddFence implements interface
func (b *Buffer) AddFence() core.Fence {
	if !b.Fenced {
		return nil
	}
	b.rec.lastFence++
	b.rec.Record(OpFenceSync, b.id, b.rec.lastFence)
	return &Fence{rec: b.rec, ID: b.rec.lastFence}
}

// PrepareAndBindForUniform implements interface
func (b *Buffer) PrepareAndBindForUniform(bindPoint uint32) {
	b.rec.Record(OpBindUniformBuffer, bindPoint, b.id)
}

// PrepareAndBindForSharedStorage implements interface
func (b *Buffer) PrepareAndBindForSharedStorage(bindPoint uint32) {
	b.rec.Record(OpBindShaderStorageBuffer, bindPoint, b.id)
}

// Fence is a recorded fence
type Fence struct {
	rec *Recorder
	ID  uint32
}

// Wait implements interface
func (f *Fence) Wait() {
	f.rec.Record(OpClientWaitSync, f.ID)
}
