// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/trace"
)

func TestBindUniformBlock(t *testing.T) {
	c := qt.New(t)
	ctx, rec, _ := newContext(trace.Device(32, 8, 8), core.BindingConfiguration{})

	program := trace.NewProgram(rec).WithUniformBlock("Material", 3, tintBlock)
	buffer := trace.NewBuffer(rec, 11)
	buffer.Fenced = true

	previous := &trace.Fence{ID: 99}
	fences, err := ctx.BindUniforms(core.NewUniforms().Add("Material", core.NewBlock(buffer, tintBlock)), program, []core.Fence{previous})
	c.Assert(err, qt.IsNil)
	c.Assert(fences, qt.HasLen, 2)
	c.Assert(fences[0], qt.Equals, core.Fence(previous))
	c.Assert(rec.Calls(), qt.DeepEquals, []trace.Call{
		{Op: trace.OpFenceSync, Args: []interface{}{uint32(11), uint32(1)}},
		{Op: trace.OpBindUniformBuffer, Args: []interface{}{uint32(0), uint32(11)}},
		{Op: trace.OpUniformBlockBinding, Args: []interface{}{uint32(3), uint32(0)}},
	})
}

func TestBindStorageBlock(t *testing.T) {
	c := qt.New(t)
	ctx, rec, _ := newContext(trace.Device(32, 8, 8), core.BindingConfiguration{})

	particles := core.StructLayout{Members: []core.StructMember{
		{Name: "positions", Layout: core.DynamicArrayLayout{Content: core.BasicLayout{Type: core.TypeFloatVec4}}},
	}}
	program := trace.NewProgram(rec).
		WithUniformBlock("Material", 0, tintBlock).
		WithStorageBlock("Particles", 1, particles)

	uniforms := core.NewUniforms().
		Add("Material", core.NewBlock(trace.NewBuffer(rec, 1), tintBlock)).
		Add("Particles", core.NewBlock(trace.NewBuffer(rec, 2), particles))

	fences, err := ctx.BindUniforms(uniforms, program, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(fences, qt.HasLen, 0)
	c.Assert(rec.Calls(), qt.DeepEquals, []trace.Call{
		{Op: trace.OpBindUniformBuffer, Args: []interface{}{uint32(0), uint32(1)}},
		{Op: trace.OpUniformBlockBinding, Args: []interface{}{uint32(0), uint32(0)}},
		{Op: trace.OpBindShaderStorageBuffer, Args: []interface{}{uint32(0), uint32(2)}},
		{Op: trace.OpStorageBlockBinding, Args: []interface{}{uint32(1), uint32(0)}},
	})
}

func TestBindBlockLayoutMismatch(t *testing.T) {
	c := qt.New(t)
	ctx, rec, _ := newContext(trace.Device(32, 8, 8), core.BindingConfiguration{})

	program := trace.NewProgram(rec).WithUniformBlock("Material", 0, tintBlock)
	other := core.StructLayout{Members: []core.StructMember{
		{Name: "tint", Layout: core.BasicLayout{Type: core.TypeFloatVec3}},
	}}

	for _, block := range []core.Block{
		core.NewBlock(trace.NewBuffer(rec, 1), other),
		{Buffer: trace.NewBuffer(rec, 1)},
		{Buffer: trace.NewBuffer(rec, 1), Layout: func(*core.UniformBlock) bool { return false }},
	} {
		_, err := ctx.BindUniforms(core.NewUniforms().Add("Material", block), program, nil)
		var mismatch *core.UniformBlockLayoutMismatchError
		c.Assert(err, qt.ErrorAs, &mismatch)
		c.Assert(mismatch.Name, qt.Equals, "Material")
	}
	c.Assert(rec.Count(), qt.Equals, 0)
}

func TestBindBlockValueToBlock(t *testing.T) {
	c := qt.New(t)
	ctx, rec, _ := newContext(trace.Device(32, 8, 8), core.BindingConfiguration{})

	program := trace.NewProgram(rec).WithStorageBlock("Particles", 0, tintBlock)

	_, err := ctx.BindUniforms(core.NewUniforms().Add("Particles", core.Vec4{}), program, nil)
	var target *core.UniformValueToBlockError
	c.Assert(err, qt.ErrorAs, &target)
	c.Assert(target.Name, qt.Equals, "Particles")
	c.Assert(rec.Count(), qt.Equals, 0)
}

func TestBindBlockKeepsFencesOnError(t *testing.T) {
	c := qt.New(t)
	ctx, rec, _ := newContext(trace.Device(32, 8, 8), core.BindingConfiguration{})

	program := trace.NewProgram(rec).
		WithUniformBlock("Material", 0, tintBlock).
		WithUniform("u_time", 0, core.TypeFloat)
	buffer := trace.NewBuffer(rec, 5)
	buffer.Fenced = true

	uniforms := core.NewUniforms().
		Add("Material", core.NewBlock(buffer, tintBlock)).
		Add("u_time", core.SignedInt(1))

	fences, err := ctx.BindUniforms(uniforms, program, nil)
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(fences, qt.HasLen, 1)

	fences[0].Wait()
	c.Assert(rec.Count(trace.OpClientWaitSync), qt.Equals, 1)
}

func TestBindBlockFatal(t *testing.T) {
	c := qt.New(t)
	ctx, rec, _ := newContext(trace.Device(32, 1, 1), core.BindingConfiguration{})

	program := trace.NewProgram(rec).
		WithUniformBlock("Material", 0, tintBlock).
		WithUniformBlock("Lights", 1, tintBlock)

	offset := trace.NewBuffer(rec, 1)
	offset.Offset = 16
	c.Assert(func() {
		ctx.BindUniforms(core.NewUniforms().Add("Material", core.NewBlock(offset, tintBlock)), program, nil)
	}, qt.PanicMatches, `binding a buffer with a non-zero offset \(16 bytes\) to uniform block "Material" is not supported`)

	uniforms := core.NewUniforms().
		Add("Material", core.NewBlock(trace.NewBuffer(rec, 1), tintBlock)).
		Add("Lights", core.NewBlock(trace.NewBuffer(rec, 2), tintBlock))
	c.Assert(func() {
		ctx.BindUniforms(uniforms, program, nil)
	}, qt.PanicMatches, `not enough buffer units for uniform block "Lights" \(limit 1\)`)
}

func TestBindBlockPointsPerPass(t *testing.T) {
	c := qt.New(t)
	ctx, rec, _ := newContext(trace.Device(32, 1, 1), core.BindingConfiguration{})

	program := trace.NewProgram(rec).WithUniformBlock("Material", 0, tintBlock)
	uniforms := core.NewUniforms().Add("Material", core.NewBlock(trace.NewBuffer(rec, 1), tintBlock))

	// Bind points are only reserved for the duration of a pass.
	for i := 0; i < 3; i++ {
		_, err := ctx.BindUniforms(uniforms, program, nil)
		c.Assert(err, qt.IsNil)
	}
	c.Assert(rec.Count(trace.OpBindUniformBuffer), qt.Equals, 3)
}
