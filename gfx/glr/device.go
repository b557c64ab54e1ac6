// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glr implements the OpenGL renderer.
// Every function in this package must be called from the thread
// that holds the current OpenGL context.
package glr

import (
	"fmt"

	"github.com/go-gl/gl/all-core/gl"

	"github.com/devblok/glbind/device"
)

// Anisotropic filtering came from an extension before GL 4.6,
// the enums are the same in both.
const (
	textureMaxAnisotropy    = 0x84FE
	maxTextureMaxAnisotropy = 0x84FF
)

// Init loads the OpenGL function pointers for the current context
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init(): %s", err.Error())
	}
	return nil
}

// QueryDevice describes the current OpenGL context
func QueryDevice() (*device.Fixed, error) {
	version, err := device.ParseVersion(gl.GoStr(gl.GetString(gl.VERSION)))
	if err != nil {
		return nil, fmt.Errorf("QueryDevice(): %s", err.Error())
	}

	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)
	extensions := make([]string, 0, count)
	for idx := int32(0); idx < count; idx++ {
		extensions = append(extensions, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(idx))))
	}
	ext := device.ParseExtensions(extensions)

	var limits device.Capabilities
	limits.MaxCombinedTextureImageUnits = getInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)

	if version.AtLeast(device.Version{Api: version.Api, Major: 3, Minor: 1}) || ext.ArbUniformBufferObject {
		limits.MaxUniformBufferBindings = getInteger(gl.MAX_UNIFORM_BUFFER_BINDINGS)
	}

	if storageSupported(version, ext) {
		limits.MaxShaderStorageBufferBindings = getInteger(gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS)
	}

	if version.AtLeast(device.Version{Api: device.GL, Major: 4, Minor: 6}) || ext.Anisotropic() {
		gl.GetFloatv(maxTextureMaxAnisotropy, &limits.MaxTextureMaxAnisotropy)
	}

	return &device.Fixed{
		Description: device.Info{
			Vendor:     gl.GoStr(gl.GetString(gl.VENDOR)),
			Renderer:   gl.GoStr(gl.GetString(gl.RENDERER)),
			Version:    version,
			Extensions: extensions,
			Limits:     limits,
		},
		Ext: ext,
	}, nil
}

func storageSupported(v device.Version, e device.Extensions) bool {
	return v.AtLeast(device.Version{Api: device.GL, Major: 4, Minor: 3}) ||
		v.AtLeast(device.Version{Api: device.GLES, Major: 3, Minor: 1}) ||
		e.ArbShaderStorageBufferObject
}

func getInteger(pname uint32) int {
	var v int32
	gl.GetIntegerv(pname, &v)
	return int(v)
}

// checkError returns the first pending OpenGL error
func checkError(call string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%04X", call, code)
	}
	return nil
}
