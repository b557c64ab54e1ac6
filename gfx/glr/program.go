// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/gl/all-core/gl"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/device"
)

var shaderStages = map[core.ShaderType]uint32{
	core.VertexShaderType:   gl.VERTEX_SHADER,
	core.FragmentShaderType: gl.FRAGMENT_SHADER,
	core.ComputeShaderType:  gl.COMPUTE_SHADER,
}

// NewProgram compiles and links sources into a program and reflects its inputs
func NewProgram(dev device.Device, sources map[core.ShaderType]string) (*Program, error) {
	id := gl.CreateProgram()

	var shaders []uint32
	defer func() {
		for _, shader := range shaders {
			gl.DeleteShader(shader)
		}
	}()

	for typ, source := range sources {
		stage, ok := shaderStages[typ]
		if !ok {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("NewProgram(): unsupported shader type %d", typ)
		}
		shader, err := compileShader(stage, source)
		if err != nil {
			gl.DeleteProgram(id)
			return nil, err
		}
		shaders = append(shaders, shader)
		gl.AttachShader(id, shader)
	}

	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &length)
		info := make([]uint8, length+1)
		gl.GetProgramInfoLog(id, length, nil, &info[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("gl.LinkProgram(): %s", gl.GoStr(&info[0]))
	}

	p := &Program{
		id:       id,
		direct:   dev.Version().AtLeast(device.Version{Api: device.GL, Major: 4, Minor: 1}) || dev.Extensions().ArbSeparateShaderObjects,
		uniforms: make(map[string]core.Uniform),
		blocks:   make(map[string]*core.UniformBlock),
		storage:  make(map[string]*core.UniformBlock),
		values:   make(map[int32]core.RawValue),
	}
	p.reflectUniforms()
	p.reflectUniformBlocks()
	if dev.Capabilities().MaxShaderStorageBufferBindings > 0 {
		p.reflectStorageBlocks()
	}

	return p, checkError("NewProgram()")
}

func compileShader(stage uint32, source string) (uint32, error) {
	shader := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		info := make([]uint8, length+1)
		gl.GetShaderInfoLog(shader, length, nil, &info[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("gl.CompileShader(): %s", gl.GoStr(&info[0]))
	}
	return shader, nil
}

// Program is a linked OpenGL program, it implements core.Program.
// Uploads of a value equal to the one already set are skipped.
type Program struct {
	id     uint32
	direct bool

	uniforms map[string]core.Uniform
	blocks   map[string]*core.UniformBlock
	storage  map[string]*core.UniformBlock

	values map[int32]core.RawValue
}

// ID returns the OpenGL program name
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes the program current
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Release deletes the program
func (p *Program) Release() {
	gl.DeleteProgram(p.id)
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

// SetUniform implements interface. Without separate shader objects
// the program has to be in use.
func (p *Program) SetUniform(location int32, value core.RawValue) {
	if prev, ok := p.values[location]; ok && prev == value {
		return
	}
	p.values[location] = value

	if p.direct {
		p.programUniform(location, value)
	} else {
		p.uniform(location, value)
	}
}

func (p *Program) programUniform(location int32, value core.RawValue) {
	switch v := value.(type) {
	case core.SignedInt:
		gl.ProgramUniform1i(p.id, location, int32(v))
	case core.UnsignedInt:
		gl.ProgramUniform1ui(p.id, location, uint32(v))
	case core.Float:
		gl.ProgramUniform1f(p.id, location, float32(v))
	case core.Vec2:
		gl.ProgramUniform2f(p.id, location, v[0], v[1])
	case core.Vec3:
		gl.ProgramUniform3f(p.id, location, v[0], v[1], v[2])
	case core.Vec4:
		gl.ProgramUniform4f(p.id, location, v[0], v[1], v[2], v[3])
	case core.Mat2:
		gl.ProgramUniformMatrix2fv(p.id, location, 1, false, &v[0])
	case core.Mat3:
		gl.ProgramUniformMatrix3fv(p.id, location, 1, false, &v[0])
	case core.Mat4:
		gl.ProgramUniformMatrix4fv(p.id, location, 1, false, &v[0])
	}
}

func (p *Program) uniform(location int32, value core.RawValue) {
	switch v := value.(type) {
	case core.SignedInt:
		gl.Uniform1i(location, int32(v))
	case core.UnsignedInt:
		gl.Uniform1ui(location, uint32(v))
	case core.Float:
		gl.Uniform1f(location, float32(v))
	case core.Vec2:
		gl.Uniform2f(location, v[0], v[1])
	case core.Vec3:
		gl.Uniform3f(location, v[0], v[1], v[2])
	case core.Vec4:
		gl.Uniform4f(location, v[0], v[1], v[2], v[3])
	case core.Mat2:
		gl.UniformMatrix2fv(location, 1, false, &v[0])
	case core.Mat3:
		gl.UniformMatrix3fv(location, 1, false, &v[0])
	case core.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	}
}

// SetUniformBlockBinding implements interface
func (p *Program) SetUniformBlockBinding(binding, bindPoint uint32) {
	gl.UniformBlockBinding(p.id, binding, bindPoint)
}

// SetShaderStorageBlockBinding implements interface
func (p *Program) SetShaderStorageBlockBinding(binding, bindPoint uint32) {
	gl.ShaderStorageBlockBinding(p.id, binding, bindPoint)
}

func (p *Program) reflectUniforms() {
	var count, maxLength int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)
	if maxLength == 0 {
		return
	}

	buf := make([]uint8, maxLength)
	for idx := int32(0); idx < count; idx++ {
		var length, size int32
		var typ uint32
		gl.GetActiveUniform(p.id, uint32(idx), maxLength, &length, &size, &typ, &buf[0])
		name := string(buf[:length])

		location := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		if location < 0 {
			// block member
			continue
		}

		var arraySize int
		if strings.HasSuffix(name, "[0]") {
			name = strings.TrimSuffix(name, "[0]")
			arraySize = int(size)
		}

		p.uniforms[name] = core.Uniform{
			Location: location,
			Type:     uniformType(typ),
			Size:     arraySize,
		}
	}
}

func (p *Program) reflectUniformBlocks() {
	var count, maxLength int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_BLOCKS, &count)
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_BLOCK_MAX_NAME_LENGTH, &maxLength)
	if count == 0 {
		return
	}

	buf := make([]uint8, maxLength)
	for idx := uint32(0); idx < uint32(count); idx++ {
		var length int32
		gl.GetActiveUniformBlockName(p.id, idx, maxLength, &length, &buf[0])
		name := string(buf[:length])

		var size, members int32
		gl.GetActiveUniformBlockiv(p.id, idx, gl.UNIFORM_BLOCK_DATA_SIZE, &size)
		gl.GetActiveUniformBlockiv(p.id, idx, gl.UNIFORM_BLOCK_ACTIVE_UNIFORMS, &members)

		layout := core.StructLayout{}
		if members > 0 {
			indices := make([]int32, members)
			gl.GetActiveUniformBlockiv(p.id, idx, gl.UNIFORM_BLOCK_ACTIVE_UNIFORM_INDICES, &indices[0])
			layout = p.blockMembers(name, indices)
		}

		p.blocks[name] = &core.UniformBlock{
			Binding: idx,
			Size:    int(size),
			Layout:  layout,
		}
	}
}

func (p *Program) blockMembers(block string, indices []int32) core.StructLayout {
	n := int32(len(indices))
	uindices := make([]uint32, n)
	for i, idx := range indices {
		uindices[i] = uint32(idx)
	}

	types := make([]int32, n)
	offsets := make([]int32, n)
	sizes := make([]int32, n)
	gl.GetActiveUniformsiv(p.id, n, &uindices[0], gl.UNIFORM_TYPE, &types[0])
	gl.GetActiveUniformsiv(p.id, n, &uindices[0], gl.UNIFORM_OFFSET, &offsets[0])
	gl.GetActiveUniformsiv(p.id, n, &uindices[0], gl.UNIFORM_SIZE, &sizes[0])

	var maxLength int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)
	buf := make([]uint8, maxLength)

	members := make([]core.StructMember, 0, n)
	for i := range uindices {
		var length int32
		gl.GetActiveUniformName(p.id, uindices[i], maxLength, &length, &buf[0])
		name := strings.TrimPrefix(string(buf[:length]), block+".")

		members = append(members, flatMember(name, uniformType(uint32(types[i])), int(offsets[i]), int(sizes[i]), true))
	}
	return sortedStruct(members)
}

func (p *Program) reflectStorageBlocks() {
	var count, maxLength int32
	gl.GetProgramInterfaceiv(p.id, gl.SHADER_STORAGE_BLOCK, gl.ACTIVE_RESOURCES, &count)
	gl.GetProgramInterfaceiv(p.id, gl.SHADER_STORAGE_BLOCK, gl.MAX_NAME_LENGTH, &maxLength)
	if count == 0 {
		return
	}

	buf := make([]uint8, maxLength)
	for idx := uint32(0); idx < uint32(count); idx++ {
		var length int32
		gl.GetProgramResourceName(p.id, gl.SHADER_STORAGE_BLOCK, idx, maxLength, &length, &buf[0])
		name := string(buf[:length])

		props := []uint32{gl.BUFFER_DATA_SIZE, gl.NUM_ACTIVE_VARIABLES}
		values := make([]int32, len(props))
		gl.GetProgramResourceiv(p.id, gl.SHADER_STORAGE_BLOCK, idx, int32(len(props)), &props[0], int32(len(values)), nil, &values[0])

		layout := core.StructLayout{}
		if values[1] > 0 {
			variables := make([]int32, values[1])
			prop := uint32(gl.ACTIVE_VARIABLES)
			gl.GetProgramResourceiv(p.id, gl.SHADER_STORAGE_BLOCK, idx, 1, &prop, values[1], nil, &variables[0])
			layout = p.bufferVariables(name, variables)
		}

		p.storage[name] = &core.UniformBlock{
			Binding: idx,
			Size:    int(values[0]),
			Layout:  layout,
		}
	}
}

func (p *Program) bufferVariables(block string, variables []int32) core.StructLayout {
	var maxLength int32
	gl.GetProgramInterfaceiv(p.id, gl.BUFFER_VARIABLE, gl.MAX_NAME_LENGTH, &maxLength)
	buf := make([]uint8, maxLength)

	props := []uint32{gl.TYPE, gl.OFFSET, gl.ARRAY_SIZE}
	members := make([]core.StructMember, 0, len(variables))
	for _, variable := range variables {
		var length int32
		gl.GetProgramResourceName(p.id, gl.BUFFER_VARIABLE, uint32(variable), maxLength, &length, &buf[0])
		name := strings.TrimPrefix(string(buf[:length]), block+".")

		values := make([]int32, len(props))
		gl.GetProgramResourceiv(p.id, gl.BUFFER_VARIABLE, uint32(variable), int32(len(props)), &props[0], int32(len(values)), nil, &values[0])

		// ARRAY_SIZE of 0 is a runtime sized array
		members = append(members, flatMember(name, uniformType(uint32(values[0])), int(values[1]), int(values[2]), false))
	}
	return sortedStruct(members)
}

// flatMember describes a reflected block member. Arrays are reported
// with a "[0]" suffix by the API.
func flatMember(name string, typ core.UniformType, offset, size int, sized bool) core.StructMember {
	basic := core.BasicLayout{Type: typ, Offset: offset}
	if !strings.HasSuffix(name, "[0]") {
		return core.StructMember{Name: name, Layout: basic}
	}

	name = strings.TrimSuffix(name, "[0]")
	if size == 0 && !sized {
		return core.StructMember{Name: name, Layout: core.DynamicArrayLayout{Content: basic}}
	}
	return core.StructMember{Name: name, Layout: core.ArrayLayout{Content: basic, Length: size}}
}

func sortedStruct(members []core.StructMember) core.StructLayout {
	sort.SliceStable(members, func(i, j int) bool {
		return memberOffset(members[i].Layout) < memberOffset(members[j].Layout)
	})
	return core.StructLayout{Members: members}
}

func memberOffset(layout core.BlockLayout) int {
	switch l := layout.(type) {
	case core.BasicLayout:
		return l.Offset
	case core.ArrayLayout:
		return memberOffset(l.Content)
	case core.DynamicArrayLayout:
		return memberOffset(l.Content)
	default:
		return 0
	}
}
