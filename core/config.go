package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
	Binding  BindingConfiguration
	Log      LogConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	ShaderDirectory string
}

// BindingConfiguration is used to configure uniform binding
type BindingConfiguration struct {
	// MaxTextureUnits lowers the number of texture units used,
	// 0 uses all the device offers
	MaxTextureUnits int

	// ReportUnknownUniforms logs a warning for values
	// the program has no input for
	ReportUnknownUniforms bool
}

// LogConfiguration is used to configure logging
type LogConfiguration struct {
	Level log.Level
}

// DefaultConfiguration is used for keys not set in the environment
var DefaultConfiguration = Configuration{
	Time: TimeConfiguration{
		FramesPerSecond: 60,
	},
	Renderer: RendererConfiguration{
		ScreenWidth:     800,
		ScreenHeight:    600,
		ShaderDirectory: "./shaders",
	},
	Log: LogConfiguration{
		Level: log.InfoLevel,
	},
}

// Environment keys read by LoadConfiguration
const (
	EnvFramesPerSecond       = "KORU_FPS"
	EnvScreenWidth           = "KORU_SCREEN_WIDTH"
	EnvScreenHeight          = "KORU_SCREEN_HEIGHT"
	EnvShaderDirectory       = "KORU_SHADER_DIR"
	EnvMaxTextureUnits       = "KORU_MAX_TEXTURE_UNITS"
	EnvReportUnknownUniforms = "KORU_REPORT_UNKNOWN_UNIFORMS"
	EnvLogLevel              = "KORU_LOG_LEVEL"
)

// LoadConfiguration reads the configuration from the environment, after
// loading the given .env files. Values already in the environment win.
func LoadConfiguration(files ...string) (Configuration, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Configuration{}, err
		}
		envy.Reload()
	}

	cfg := DefaultConfiguration

	var err error
	if cfg.Time.FramesPerSecond, err = envInt(EnvFramesPerSecond, cfg.Time.FramesPerSecond); err != nil {
		return Configuration{}, err
	}

	width, err := envInt(EnvScreenWidth, int(cfg.Renderer.ScreenWidth))
	if err != nil {
		return Configuration{}, err
	}
	cfg.Renderer.ScreenWidth = uint32(width)

	height, err := envInt(EnvScreenHeight, int(cfg.Renderer.ScreenHeight))
	if err != nil {
		return Configuration{}, err
	}
	cfg.Renderer.ScreenHeight = uint32(height)

	cfg.Renderer.ShaderDirectory = envy.Get(EnvShaderDirectory, cfg.Renderer.ShaderDirectory)

	if cfg.Binding.MaxTextureUnits, err = envInt(EnvMaxTextureUnits, 0); err != nil {
		return Configuration{}, err
	}

	if v := envy.Get(EnvReportUnknownUniforms, ""); v != "" {
		if cfg.Binding.ReportUnknownUniforms, err = strconv.ParseBool(v); err != nil {
			return Configuration{}, err
		}
	}

	if v := envy.Get(EnvLogLevel, ""); v != "" {
		if cfg.Log.Level, err = log.ParseLevel(v); err != nil {
			return Configuration{}, err
		}
	}

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
