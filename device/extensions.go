package device

// Extensions holds flags of extensions the binding layer cares about
type Extensions struct {
	ArbSamplerObjects            bool
	ArbUniformBufferObject       bool
	ArbShaderStorageBufferObject bool
	ExtTextureFilterAnisotropic  bool
	ArbTextureFilterAnisotropic  bool
	ArbSeparateShaderObjects     bool
	ArbTextureMultisample        bool
}

// Anisotropic reports whether any anisotropic filtering extension is present
func (e Extensions) Anisotropic() bool {
	return e.ExtTextureFilterAnisotropic || e.ArbTextureFilterAnisotropic
}

// ParseExtensions sets flags for the known extensions in names
func ParseExtensions(names []string) Extensions {
	var e Extensions
	for _, name := range names {
		switch name {
		case "GL_ARB_sampler_objects":
			e.ArbSamplerObjects = true
		case "GL_ARB_uniform_buffer_object":
			e.ArbUniformBufferObject = true
		case "GL_ARB_shader_storage_buffer_object":
			e.ArbShaderStorageBufferObject = true
		case "GL_EXT_texture_filter_anisotropic":
			e.ExtTextureFilterAnisotropic = true
		case "GL_ARB_texture_filter_anisotropic":
			e.ArbTextureFilterAnisotropic = true
		case "GL_ARB_separate_shader_objects":
			e.ArbSeparateShaderObjects = true
		case "GL_ARB_texture_multisample":
			e.ArbTextureMultisample = true
		}
	}
	return e
}
