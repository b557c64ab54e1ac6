package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/gfx/glr"
	"github.com/devblok/glbind/model"
	"github.com/devblok/glbind/trace"
	"github.com/devblok/glbind/utility/kar"
)

func init() {
	runtime.LockOSThread()
}

var (
	caps      = flag.Bool("caps", false, "Print the capabilities of the OpenGL device as JSON")
	traceFile = flag.String("trace", "", "Record binding passes into the given kar archive")
	passes    = flag.Int("passes", 8, "Number of passes to record")
	units     = flag.Int("units", 16, "Texture units of the recorded device")
)

func main() {
	flag.Parse()

	var err error
	switch {
	case *caps:
		err = printCapabilities()
	case *traceFile != "":
		err = recordTrace(*traceFile, *passes, *units)
	default:
		flag.PrintDefaults()
	}

	if err != nil {
		log.Fatal(err)
	}
}

func printCapabilities() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	window, err := sdl.CreateWindow("korucli", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		1, 1, sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		return err
	}
	defer sdl.GLDeleteContext(glContext)

	if err := glr.Init(); err != nil {
		return err
	}
	dev, err := glr.QueryDevice()
	if err != nil {
		return err
	}

	out, err := json.Marshal(dev.Info())
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", out)
	return nil
}

// recordTrace binds a small scene against a recording device and
// stores the calls made by each pass as a separate archive entry
func recordTrace(path string, passes, textureUnits int) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s exists, will not overwrite", path)
	}

	rec := trace.NewRecorder()
	program := trace.NewProgram(rec).
		WithUniform("u_model", 0, core.TypeFloatMat4).
		WithUniform("u_view", 1, core.TypeFloatMat4).
		WithUniform("u_projection", 2, core.TypeFloatMat4).
		WithUniform("u_color", 3, core.TypeFloatVec4).
		WithUniform("u_albedo", 4, core.TypeSampler2D).
		WithUniformBlock("Tint", 0, model.TintLayout)

	tints := []*trace.Buffer{trace.NewBuffer(rec, 1), trace.NewBuffer(rec, 2)}
	for _, tint := range tints {
		tint.Fenced = true
	}

	albedoKind := core.TextureKind{Target: core.Target2D, Format: core.FormatSrgb}
	nearest := core.DefaultSamplerBehavior()
	nearest.MinifyFilter = core.MinifyNearest
	nearest.MagnifyFilter = core.MagnifyNearest

	meshes := []*model.Mesh{
		model.NewMesh(model.Quad(), &model.Material{
			Color:      colornames.White,
			Albedo:     trace.Texture(1),
			AlbedoKind: albedoKind,
			Tint:       tints[0],
		}),
		model.NewMesh(model.Quad(), &model.Material{
			Color:         colornames.Coral,
			Albedo:        trace.Texture(2),
			AlbedoKind:    albedoKind,
			AlbedoSampler: &nearest,
			Tint:          tints[1],
		}),
	}
	camera := model.NewCamera(glm.Vec3{0, 0, 2}, glm.Vec3{}, 800, 600)

	logger := log.StandardLogger()
	binder := core.NewContext(rec, trace.Device(textureUnits, 8, 0), core.BindingConfiguration{
		ReportUnknownUniforms: true,
	}, logger)
	defer binder.Release()

	builder, err := kar.NewBuilder(kar.Header{
		Author:      "korucli",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		return err
	}
	defer builder.Close()

	var fences []core.Fence
	for pass := 0; pass < passes; pass++ {
		mesh := meshes[pass%len(meshes)]
		mesh.SetRotation(glm.HomogRotate3DZ(float32(pass) * glm.DegToRad(15)))

		fences, err = binder.BindUniforms(core.Chain{camera.Uniforms(), mesh.Uniforms()}, program, fences[:0])
		if err != nil {
			return err
		}
		for _, fence := range fences {
			fence.Wait()
		}

		name := fmt.Sprintf("pass%04d", pass)
		if err := builder.Add(name, bytes.NewReader(trace.Format(rec.Flush()))); err != nil {
			return err
		}
	}

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	written, err := builder.WriteTo(dst)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"archive": path,
		"passes":  passes,
		"bytes":   written,
	}).Info("trace written")
	return nil
}
