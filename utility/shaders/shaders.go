// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package shaders finds GLSL shader sources and groups them by program.
package shaders

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/devblok/glbind/core"
)

// Split splits a shader file path into program name and shader type.
// It is important that the file name does not contain more than one dot,
// the first part is the name of the program and the second the stage
// (vert, frag or comp). Other files are not shaders.
func Split(path string) (string, core.ShaderType, bool) {
	nodes := strings.Split(filepath.Base(path), ".")
	if len(nodes) != 2 || nodes[0] == "" {
		return "", core.UnknownShaderType, false
	}

	typ := core.ShaderTypeOf("." + nodes[1])
	if typ == core.UnknownShaderType {
		return "", core.UnknownShaderType, false
	}
	return nodes[0], typ, true
}

// LoadDirectory reads every shader source under dir
func LoadDirectory(dir string) (map[string]map[core.ShaderType]string, error) {
	programs := make(map[string]map[core.ShaderType]string)
	if err := filepath.Walk(dir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() {
			return nil
		}

		name, typ, ok := Split(path)
		if !ok {
			return nil
		}

		source, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		if programs[name] == nil {
			programs[name] = make(map[core.ShaderType]string)
		}
		programs[name][typ] = string(source)
		return nil
	}); err != nil {
		return nil, err
	}
	return programs, nil
}
