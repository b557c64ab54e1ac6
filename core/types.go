// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "fmt"

// UniformType is the type of a uniform as declared in the shader source
type UniformType int

// Uniform types that can be reported by program reflection
const (
	TypeUnknown UniformType = iota
	TypeFloat
	TypeFloatVec2
	TypeFloatVec3
	TypeFloatVec4
	TypeInt
	TypeIntVec2
	TypeIntVec3
	TypeIntVec4
	TypeUnsignedInt
	TypeUnsignedIntVec2
	TypeUnsignedIntVec3
	TypeUnsignedIntVec4
	TypeBool
	TypeFloatMat2
	TypeFloatMat3
	TypeFloatMat4
	TypeSampler1D
	TypeISampler1D
	TypeUSampler1D
	TypeSampler1DShadow
	TypeSampler2D
	TypeISampler2D
	TypeUSampler2D
	TypeSampler2DShadow
	TypeSampler3D
	TypeISampler3D
	TypeUSampler3D
	TypeSampler1DArray
	TypeISampler1DArray
	TypeUSampler1DArray
	TypeSampler1DArrayShadow
	TypeSampler2DArray
	TypeISampler2DArray
	TypeUSampler2DArray
	TypeSampler2DArrayShadow
	TypeSampler2DMultisample
	TypeISampler2DMultisample
	TypeUSampler2DMultisample
	TypeSampler2DMultisampleArray
	TypeISampler2DMultisampleArray
	TypeUSampler2DMultisampleArray
)

var uniformTypeNames = [...]string{
	TypeUnknown:                    "unknown",
	TypeFloat:                      "float",
	TypeFloatVec2:                  "vec2",
	TypeFloatVec3:                  "vec3",
	TypeFloatVec4:                  "vec4",
	TypeInt:                        "int",
	TypeIntVec2:                    "ivec2",
	TypeIntVec3:                    "ivec3",
	TypeIntVec4:                    "ivec4",
	TypeUnsignedInt:                "uint",
	TypeUnsignedIntVec2:            "uvec2",
	TypeUnsignedIntVec3:            "uvec3",
	TypeUnsignedIntVec4:            "uvec4",
	TypeBool:                       "bool",
	TypeFloatMat2:                  "mat2",
	TypeFloatMat3:                  "mat3",
	TypeFloatMat4:                  "mat4",
	TypeSampler1D:                  "sampler1D",
	TypeISampler1D:                 "isampler1D",
	TypeUSampler1D:                 "usampler1D",
	TypeSampler1DShadow:            "sampler1DShadow",
	TypeSampler2D:                  "sampler2D",
	TypeISampler2D:                 "isampler2D",
	TypeUSampler2D:                 "usampler2D",
	TypeSampler2DShadow:            "sampler2DShadow",
	TypeSampler3D:                  "sampler3D",
	TypeISampler3D:                 "isampler3D",
	TypeUSampler3D:                 "usampler3D",
	TypeSampler1DArray:             "sampler1DArray",
	TypeISampler1DArray:            "isampler1DArray",
	TypeUSampler1DArray:            "usampler1DArray",
	TypeSampler1DArrayShadow:       "sampler1DArrayShadow",
	TypeSampler2DArray:             "sampler2DArray",
	TypeISampler2DArray:            "isampler2DArray",
	TypeUSampler2DArray:            "usampler2DArray",
	TypeSampler2DArrayShadow:       "sampler2DArrayShadow",
	TypeSampler2DMultisample:       "sampler2DMS",
	TypeISampler2DMultisample:      "isampler2DMS",
	TypeUSampler2DMultisample:      "usampler2DMS",
	TypeSampler2DMultisampleArray:  "sampler2DMSArray",
	TypeISampler2DMultisampleArray: "isampler2DMSArray",
	TypeUSampler2DMultisampleArray: "usampler2DMSArray",
}

// String returns the GLSL spelling of the type
func (t UniformType) String() string {
	if t >= 0 && int(t) < len(uniformTypeNames) {
		return uniformTypeNames[t]
	}
	return fmt.Sprintf("UniformType(%d)", int(t))
}

// Uniform is a reflected plain uniform of a program
type Uniform struct {
	Location int32
	Type     UniformType

	// Size is the declared array length, 0 when the uniform is not an array
	Size int
}

// UniformBlock is a reflected uniform block or shader storage block
type UniformBlock struct {
	// Binding is the block index inside the program
	Binding uint32

	// Size of the block in bytes
	Size int

	Layout BlockLayout
}
