// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"github.com/gobuffalo/packd"
	"github.com/gobuffalo/packr"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/utility/shaders"
)

// LoadShaders collects the shader sources in box by program name,
// see shaders.Split for the naming of the files.
func LoadShaders(box packr.Box) (map[string]map[core.ShaderType]string, error) {
	programs := make(map[string]map[core.ShaderType]string)
	err := box.Walk(func(path string, f packd.File) error {
		name, typ, ok := shaders.Split(path)
		if !ok {
			return nil
		}
		if programs[name] == nil {
			programs[name] = make(map[core.ShaderType]string)
		}
		programs[name][typ] = f.String()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return programs, nil
}
