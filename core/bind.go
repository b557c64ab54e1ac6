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

// BindUniforms binds every value of uniforms to the matching input of program.
// Values are visited in order and each name is matched against the plain
// uniforms first, then the uniform blocks, then the shader storage blocks.
// Names the program doesn't know are skipped. Fences for buffers bound to
// blocks are appended to fences and returned, also when an error stops
// the pass early. The program must be in use on the current context.
func (c *Context) BindUniforms(uniforms Uniforms, program Program, fences []Fence) ([]Fence, error) {
	textureUnits := bitsfield.New(c.textureUnitLimit)
	uniformBuffers := bitsfield.New(c.caps.MaxUniformBufferBindings)
	storageBuffers := bitsfield.New(c.caps.MaxShaderStorageBufferBindings)

	uniformBlocks := program.UniformBlocks()
	storageBlocks := program.ShaderStorageBlocks()

	err := uniforms.VisitValues(func(name string, value Value) error {
		if uniform, ok := program.Uniform(name); ok {
			if uniform.Size != 0 {
				panic(fmt.Sprintf("uniform %q: uniform arrays not supported yet", name))
			}
			if !value.UsableWith(uniform.Type) {
				return &UniformTypeMismatchError{Name: name, Expected: uniform.Type}
			}
			return c.bindUniform(program, name, uniform, value, textureUnits)
		}

		if block, ok := uniformBlocks[name]; ok {
			fence, err := c.bindBlock(program, name, block, value, UniformBlockKind, uniformBuffers)
			if err != nil {
				return err
			}
			if fence != nil {
				fences = append(fences, fence)
			}
			return nil
		}

		if block, ok := storageBlocks[name]; ok {
			fence, err := c.bindBlock(program, name, block, value, ShaderStorageBlockKind, storageBuffers)
			if err != nil {
				return err
			}
			if fence != nil {
				fences = append(fences, fence)
			}
			return nil
		}

		if c.cfg.ReportUnknownUniforms {
			c.log.WithField("name", name).Warn("program has no uniform or block with this name")
		}
		return nil
	})

	if c.debug() {
		c.log.WithFields(log.Fields{
			"textureUnits":   textureUnits.Count(),
			"uniformBuffers": uniformBuffers.Count(),
			"storageBuffers": storageBuffers.Count(),
		}).Debug("binding pass done")
	}

	return fences, err
}

// bindUniform binds a value to a plain uniform. The value was already
// checked to be usable with the uniform type.
func (c *Context) bindUniform(
	program Program,
	name string,
	uniform Uniform,
	value Value,
	textureUnits *bitsfield.Bitsfield,
) error {
	if uniform.Location < 0 {
		panic(fmt.Sprintf("uniform %q has negative location %d", name, uniform.Location))
	}

	switch v := value.(type) {
	case Block:
		return &UniformBufferToValueError{Name: name}
	case Texture:
		return c.bindTextureUniform(program, uniform.Location, v.Object.ID(), v.Sampler, v.Kind.Target, textureUnits)
	case RawValue:
		program.SetUniform(uniform.Location, v)
		return nil
	default:
		panic(fmt.Sprintf("uniform %q: unexpected value type %T", name, value))
	}
}
