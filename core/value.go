// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Value is a value that can be bound to a program input.
// The set of values is closed, it's one of SignedInt, UnsignedInt,
// Float, Vec2, Vec3, Vec4, Mat2, Mat3, Mat4, Texture or Block.
type Value interface {
	// UsableWith reports whether the value can be bound to
	// a uniform declared with the given type
	UsableWith(UniformType) bool

	isValue()
}

// RawValue is a value that maps directly onto a single uniform upload.
// All scalar, vector and matrix values are raw values.
type RawValue interface {
	Value

	isRawValue()
}

// SignedInt is an int uniform value
type SignedInt int32

// UnsignedInt is a uint uniform value
type UnsignedInt uint32

// Float is a float uniform value
type Float float32

// Vec2 is a vec2 uniform value
type Vec2 glm.Vec2

// Vec3 is a vec3 uniform value
type Vec3 glm.Vec3

// Vec4 is a vec4 uniform value
type Vec4 glm.Vec4

// Mat2 is a mat2 uniform value, column major
type Mat2 glm.Mat2

// Mat3 is a mat3 uniform value, column major
type Mat3 glm.Mat3

// Mat4 is a mat4 uniform value, column major
type Mat4 glm.Mat4

// UsableWith implements interface
func (SignedInt) UsableWith(t UniformType) bool { return t == TypeInt }

// UsableWith implements interface
func (UnsignedInt) UsableWith(t UniformType) bool { return t == TypeUnsignedInt }

// UsableWith implements interface
func (Float) UsableWith(t UniformType) bool { return t == TypeFloat }

// UsableWith implements interface
func (Vec2) UsableWith(t UniformType) bool { return t == TypeFloatVec2 }

// UsableWith implements interface
func (Vec3) UsableWith(t UniformType) bool { return t == TypeFloatVec3 }

// UsableWith implements interface
func (Vec4) UsableWith(t UniformType) bool { return t == TypeFloatVec4 }

// UsableWith implements interface
func (Mat2) UsableWith(t UniformType) bool { return t == TypeFloatMat2 }

// UsableWith implements interface
func (Mat3) UsableWith(t UniformType) bool { return t == TypeFloatMat3 }

// UsableWith implements interface
func (Mat4) UsableWith(t UniformType) bool { return t == TypeFloatMat4 }

func (SignedInt) isValue()   {}
func (UnsignedInt) isValue() {}
func (Float) isValue()       {}
func (Vec2) isValue()        {}
func (Vec3) isValue()        {}
func (Vec4) isValue()        {}
func (Mat2) isValue()        {}
func (Mat3) isValue()        {}
func (Mat4) isValue()        {}
func (Texture) isValue()     {}
func (Block) isValue()       {}

func (SignedInt) isRawValue()   {}
func (UnsignedInt) isRawValue() {}
func (Float) isRawValue()       {}
func (Vec2) isRawValue()        {}
func (Vec3) isRawValue()        {}
func (Vec4) isRawValue()        {}
func (Mat2) isRawValue()        {}
func (Mat3) isRawValue()        {}
func (Mat4) isRawValue()        {}

// Block binds a buffer to a uniform block or a shader storage block
type Block struct {
	Buffer Buffer

	// Layout checks that the buffer contents match the layout
	// the program expects for the block
	Layout func(*UniformBlock) bool
}

// UsableWith implements interface. A block is accepted here so that
// binding it to a plain uniform reports UniformBufferToValueError,
// which is more precise than a type mismatch.
func (Block) UsableWith(UniformType) bool { return true }

// NewBlock creates a Block value whose layout check compares the
// reflected layout against layout.
func NewBlock(buffer Buffer, layout BlockLayout) Block {
	return Block{
		Buffer: buffer,
		Layout: MatchesLayout(layout),
	}
}
