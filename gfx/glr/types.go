package glr

import (
	"github.com/go-gl/gl/all-core/gl"

	"github.com/devblok/glbind/core"
)

var uniformTypes = map[uint32]core.UniformType{
	gl.FLOAT:                                     core.TypeFloat,
	gl.FLOAT_VEC2:                                core.TypeFloatVec2,
	gl.FLOAT_VEC3:                                core.TypeFloatVec3,
	gl.FLOAT_VEC4:                                core.TypeFloatVec4,
	gl.INT:                                       core.TypeInt,
	gl.INT_VEC2:                                  core.TypeIntVec2,
	gl.INT_VEC3:                                  core.TypeIntVec3,
	gl.INT_VEC4:                                  core.TypeIntVec4,
	gl.UNSIGNED_INT:                              core.TypeUnsignedInt,
	gl.UNSIGNED_INT_VEC2:                         core.TypeUnsignedIntVec2,
	gl.UNSIGNED_INT_VEC3:                         core.TypeUnsignedIntVec3,
	gl.UNSIGNED_INT_VEC4:                         core.TypeUnsignedIntVec4,
	gl.BOOL:                                      core.TypeBool,
	gl.FLOAT_MAT2:                                core.TypeFloatMat2,
	gl.FLOAT_MAT3:                                core.TypeFloatMat3,
	gl.FLOAT_MAT4:                                core.TypeFloatMat4,
	gl.SAMPLER_1D:                                core.TypeSampler1D,
	gl.INT_SAMPLER_1D:                            core.TypeISampler1D,
	gl.UNSIGNED_INT_SAMPLER_1D:                   core.TypeUSampler1D,
	gl.SAMPLER_1D_SHADOW:                         core.TypeSampler1DShadow,
	gl.SAMPLER_2D:                                core.TypeSampler2D,
	gl.INT_SAMPLER_2D:                            core.TypeISampler2D,
	gl.UNSIGNED_INT_SAMPLER_2D:                   core.TypeUSampler2D,
	gl.SAMPLER_2D_SHADOW:                         core.TypeSampler2DShadow,
	gl.SAMPLER_3D:                                core.TypeSampler3D,
	gl.INT_SAMPLER_3D:                            core.TypeISampler3D,
	gl.UNSIGNED_INT_SAMPLER_3D:                   core.TypeUSampler3D,
	gl.SAMPLER_1D_ARRAY:                          core.TypeSampler1DArray,
	gl.INT_SAMPLER_1D_ARRAY:                      core.TypeISampler1DArray,
	gl.UNSIGNED_INT_SAMPLER_1D_ARRAY:             core.TypeUSampler1DArray,
	gl.SAMPLER_1D_ARRAY_SHADOW:                   core.TypeSampler1DArrayShadow,
	gl.SAMPLER_2D_ARRAY:                          core.TypeSampler2DArray,
	gl.INT_SAMPLER_2D_ARRAY:                      core.TypeISampler2DArray,
	gl.UNSIGNED_INT_SAMPLER_2D_ARRAY:             core.TypeUSampler2DArray,
	gl.SAMPLER_2D_ARRAY_SHADOW:                   core.TypeSampler2DArrayShadow,
	gl.SAMPLER_2D_MULTISAMPLE:                    core.TypeSampler2DMultisample,
	gl.INT_SAMPLER_2D_MULTISAMPLE:                core.TypeISampler2DMultisample,
	gl.UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE:       core.TypeUSampler2DMultisample,
	gl.SAMPLER_2D_MULTISAMPLE_ARRAY:              core.TypeSampler2DMultisampleArray,
	gl.INT_SAMPLER_2D_MULTISAMPLE_ARRAY:          core.TypeISampler2DMultisampleArray,
	gl.UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY: core.TypeUSampler2DMultisampleArray,
}

// uniformType maps a reflected GL type, types the binding layer
// doesn't handle are reported as unknown
func uniformType(typ uint32) core.UniformType {
	if t, ok := uniformTypes[typ]; ok {
		return t
	}
	return core.TypeUnknown
}
