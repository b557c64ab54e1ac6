package model_test

import (
	"encoding/binary"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/model"
	"github.com/devblok/glbind/trace"
)

func collect(c *qt.C, uniforms core.Uniforms) ([]string, map[string]core.Value) {
	var names []string
	values := make(map[string]core.Value)
	err := uniforms.VisitValues(func(name string, v core.Value) error {
		names = append(names, name)
		values[name] = v
		return nil
	})
	c.Assert(err, qt.IsNil)
	return names, values
}

func TestMeshUniforms(t *testing.T) {
	c := qt.New(t)
	rec := trace.NewRecorder()
	material := &model.Material{
		Color:      colornames.Teal,
		Albedo:     trace.Texture(3),
		AlbedoKind: core.TextureKind{Target: core.Target2D, Format: core.FormatSrgb},
		Tint:       trace.NewBuffer(rec, 1),
	}
	mesh := model.NewMesh(model.Quad(), material)
	mesh.SetPosition(glm.Translate3D(1, 2, 3))
	mesh.SetRotation(glm.HomogRotate3DZ(glm.DegToRad(90)))

	names, values := collect(c, mesh.Uniforms())
	c.Assert(names, qt.DeepEquals, []string{"u_model", "u_color", "u_albedo", "Tint"})

	want := glm.Translate3D(1, 2, 3).Mul4(glm.HomogRotate3DZ(glm.DegToRad(90)))
	c.Assert(values["u_model"], qt.Equals, core.Value(core.Mat4(want)))
	c.Assert(values["u_color"], qt.Equals, core.Value(core.Vec4(model.ColorVec(colornames.Teal))))
	c.Assert(values["u_albedo"].UsableWith(core.TypeSampler2D), qt.IsTrue)

	block, ok := values["Tint"].(core.Block)
	c.Assert(ok, qt.IsTrue)
	c.Assert(block.Layout(&core.UniformBlock{Layout: model.TintLayout}), qt.IsTrue)
}

func TestMeshWithoutMaterial(t *testing.T) {
	c := qt.New(t)
	mesh := model.NewMesh(model.Quad(), nil)
	names, _ := collect(c, mesh.Uniforms())
	c.Assert(names, qt.DeepEquals, []string{"u_model"})
	c.Assert(mesh.Transform(), qt.Equals, glm.Ident4())
}

func TestCameraUniforms(t *testing.T) {
	c := qt.New(t)
	camera := model.NewCamera(glm.Vec3{0, 0, 3}, glm.Vec3{}, 800, 600)
	names, values := collect(c, camera.Uniforms())
	c.Assert(names, qt.DeepEquals, []string{"u_view", "u_projection"})
	c.Assert(values["u_view"], qt.Equals, core.Value(core.Mat4(camera.View)))
}

func TestColorVec(t *testing.T) {
	c := qt.New(t)
	c.Assert(model.ColorVec(colornames.White), qt.Equals, glm.Vec4{1, 1, 1, 1})
	c.Assert(model.ColorVec(colornames.Red), qt.Equals, glm.Vec4{1, 0, 0, 1})
}

func TestEncodeTint(t *testing.T) {
	c := qt.New(t)
	data := model.EncodeTint(colornames.Blue, 0.5)
	c.Assert(data, qt.HasLen, model.TintSize)

	float := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	c.Assert([]float32{float(0), float(4), float(8), float(12), float(16)}, qt.DeepEquals, []float32{0, 0, 1, 1, 0.5})
}
