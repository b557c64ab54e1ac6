// Package device describes what the rendering session is able to do:
// API version, supported extensions and hardware limits.
package device

// Info describes available properties of a rendering device
type Info struct {
	Vendor     string
	Renderer   string
	Version    Version
	Extensions []string
	Limits     Capabilities
}

// Capabilities are the hardware limits queried from the session
type Capabilities struct {
	// MaxCombinedTextureImageUnits bounds the texture units usable by one program
	MaxCombinedTextureImageUnits int

	// MaxUniformBufferBindings bounds uniform block bind points
	MaxUniformBufferBindings int

	// MaxShaderStorageBufferBindings bounds shader storage block bind points,
	// 0 when storage blocks are not supported
	MaxShaderStorageBufferBindings int

	// MaxTextureMaxAnisotropy is 0 when anisotropic filtering is not available
	MaxTextureMaxAnisotropy float32
}

// Device describes a non-concrete rendering device
type Device interface {
	// Info returns descriptive information about the device
	Info() Info

	// Version returns the API version of the session
	Version() Version

	// Extensions returns the extensions relevant to binding
	Extensions() Extensions

	// Capabilities returns the queried limits
	Capabilities() Capabilities

	// Destroy destroys internal members
	Destroy()
}

// Fixed is a Device whose properties are known in advance.
// It's used for headless sessions and when a real device
// has already been queried once.
type Fixed struct {
	Description Info
	Ext         Extensions
}

// NewFixed creates a Fixed device, extension flags are derived
// from the extension names in info.
func NewFixed(info Info) *Fixed {
	return &Fixed{
		Description: info,
		Ext:         ParseExtensions(info.Extensions),
	}
}

// Info implements interface
func (f *Fixed) Info() Info {
	return f.Description
}

// Version implements interface
func (f *Fixed) Version() Version {
	return f.Description.Version
}

// Extensions implements interface
func (f *Fixed) Extensions() Extensions {
	return f.Ext
}

// Capabilities implements interface
func (f *Fixed) Capabilities() Capabilities {
	return f.Description.Limits
}

// Destroy implements interface
func (f *Fixed) Destroy() {}

// SamplerObjectsSupported reports whether sampler objects can be
// created and bound in a session with the given version and extensions.
func SamplerObjectsSupported(v Version, e Extensions) bool {
	return v.AtLeast(Version{Api: GL, Major: 3, Minor: 3}) ||
		v.AtLeast(Version{Api: GLES, Major: 3, Minor: 0}) ||
		e.ArbSamplerObjects
}
