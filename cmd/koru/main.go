package main

import (
	"image"
	"image/color"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/all-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/gfx"
	"github.com/devblok/glbind/gfx/glr"
	"github.com/devblok/glbind/model"
	"github.com/devblok/glbind/utility/shaders"
)

func init() {
	runtime.LockOSThread()
}

func newWindow(cfg core.RendererConfiguration) *sdl.Window {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow("Koru3D",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_OPENGL)
	if err != nil {
		log.Fatal(err)
	}
	return window
}

// loadPrograms reads the shaders from disk when a directory is configured,
// otherwise the ones packed into the binary are used
func loadPrograms() (map[string]map[core.ShaderType]string, error) {
	if dir, ok := os.LookupEnv(core.EnvShaderDirectory); ok {
		return shaders.LoadDirectory(dir)
	}
	return glr.LoadShaders(packr.NewBox("./shaders"))
}

func checkerboard(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c color.Color = colornames.Whitesmoke
			if (x/cell+y/cell)%2 == 1 {
				c = colornames.Slategray
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func main() {
	configuration, err := core.LoadConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(configuration.Log.Level)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	sdlWindow := newWindow(configuration.Renderer)
	defer sdlWindow.Destroy()

	glContext, err := sdlWindow.GLCreateContext()
	if err != nil {
		log.Fatal(err)
	}
	defer sdl.GLDeleteContext(glContext)

	if err := glr.Init(); err != nil {
		log.Fatal(err)
	}

	dev, err := glr.QueryDevice()
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"renderer": dev.Info().Renderer,
		"version":  dev.Version(),
	}).Info("device ready")

	sources, err := loadPrograms()
	if err != nil {
		log.Fatal(err)
	}
	if sources["material"] == nil {
		log.Fatal("material shaders not found")
	}
	program, err := glr.NewProgram(dev, sources["material"])
	if err != nil {
		log.Fatal(err)
	}

	albedo, err := glr.NewTexture2D(checkerboard(256, 32), false)
	if err != nil {
		log.Fatal(err)
	}
	tint, err := glr.NewBuffer(model.EncodeTint(colornames.Gold, 0), true)
	if err != nil {
		log.Fatal(err)
	}
	quad, err := glr.NewVertexArray(model.Quad())
	if err != nil {
		log.Fatal(err)
	}

	sampler := core.DefaultSamplerBehavior()
	if max := dev.Capabilities().MaxTextureMaxAnisotropy; max >= 8 {
		sampler.MaxAnisotropy = 8
	}
	mesh := model.NewMesh(model.Quad(), &model.Material{
		Color:         colornames.White,
		Albedo:        albedo,
		AlbedoKind:    albedo.Kind(),
		AlbedoSampler: &sampler,
		Tint:          tint,
	})
	camera := model.NewCamera(glm.Vec3{0, 0, 2}, glm.Vec3{},
		configuration.Renderer.ScreenWidth, configuration.Renderer.ScreenHeight)

	binder := core.NewContext(glr.NewFunctions(dev), dev, configuration.Binding, log.StandardLogger())
	defer gfx.ReleaseAll(program, albedo, tint, quad, binder)

	clock := core.NewFrameClock(configuration.Time)
	defer clock.Stop()
	exitC := make(chan struct{}, 2)
	var fences []core.Fence

	gl.ClearColor(0.1, 0.1, 0.1, 1)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-clock.FpsTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}

			frame, elapsed := clock.Frame()
			seconds := float32(elapsed.Seconds())
			mesh.SetRotation(glm.HomogRotate3DZ(seconds))
			tint.Update(model.EncodeTint(colornames.Gold, 0.5+0.5*float32(math.Sin(float64(seconds)))))

			gl.Clear(gl.COLOR_BUFFER_BIT)
			program.Use()
			fences, err = binder.BindUniforms(core.Chain{camera.Uniforms(), mesh.Uniforms()}, program, fences[:0])
			if err != nil {
				log.WithError(err).WithField("frame", frame).Error("binding uniforms")
				exitC <- struct{}{}
				continue EventLoop
			}
			quad.Draw()
			glr.InsertFences(fences)
			sdlWindow.GLSwap()
		}
	}
}
