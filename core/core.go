// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Functions describes the GPU calls the binding layer issues
// on its own. Implementations act on the current GPU context.
type Functions interface {
	// ActiveTexture selects the texture unit that following
	// BindTexture calls affect
	ActiveTexture(unit uint32)

	// BindTexture binds a texture to the active unit
	BindTexture(target TextureTarget, texture uint32)

	// BindSampler binds a sampler object to a texture unit,
	// 0 unbinds the sampler
	BindSampler(unit, sampler uint32)

	// CreateSampler creates a sampler object configured with behavior
	CreateSampler(behavior SamplerBehavior) uint32

	// DeleteSampler deletes a sampler object
	DeleteSampler(sampler uint32)
}

// Program is a linked program along with its reflection data
type Program interface {
	// Uniform returns a reflected plain uniform by name
	Uniform(name string) (Uniform, bool)

	// UniformBlocks returns the reflected uniform blocks by name
	UniformBlocks() map[string]*UniformBlock

	// ShaderStorageBlocks returns the reflected shader storage blocks by name
	ShaderStorageBlocks() map[string]*UniformBlock

	// SetUniform uploads a value to the uniform at location
	SetUniform(location int32, value RawValue)

	// SetUniformBlockBinding makes the uniform block at binding
	// read from the buffer bind point
	SetUniformBlockBinding(binding, bindPoint uint32)

	// SetShaderStorageBlockBinding makes the shader storage block
	// at binding read from the buffer bind point
	SetShaderStorageBlockBinding(binding, bindPoint uint32)
}

// Buffer is a GPU buffer that can feed uniform or storage blocks
type Buffer interface {
	// OffsetBytes is the offset of the bound range in the buffer
	OffsetBytes() int

	// AddFence returns a fence that signals once the GPU is done
	// reading the buffer, nil when the buffer isn't tracked
	AddFence() Fence

	// PrepareAndBindForUniform binds the buffer to a uniform buffer bind point
	PrepareAndBindForUniform(bindPoint uint32)

	// PrepareAndBindForSharedStorage binds the buffer to a shader storage bind point
	PrepareAndBindForSharedStorage(bindPoint uint32)
}

// Fence is a GPU synchronization point
type Fence interface {
	// Wait blocks until the GPU passes the fence
	Wait()
}

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	ComputeShaderType
	UnknownShaderType
)

// ShaderTypeOf gives the shader type from a source file extension
func ShaderTypeOf(ext string) ShaderType {
	switch ext {
	case ".vert":
		return VertexShaderType
	case ".frag":
		return FragmentShaderType
	case ".comp":
		return ComputeShaderType
	default:
		return UnknownShaderType
	}
}
