// Package model holds the objects of a scene and the
// uniform values they are drawn with.
package model

import (
	"sync"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/glbind/core"
)

// Object represents the engine supported model
type Object interface {

	// SetPosition sets the object's current position in space.
	// Has to be thread-safe
	SetPosition(glm.Mat4)

	// Position gets the object's current position in space.
	// Has to be thread-safe
	Position() glm.Mat4

	// SetRotation sets the object's rotation matrix.
	// Has to be thread-safe
	SetRotation(glm.Mat4)

	// Rotation gets the object's rotation matrix.
	// Has to be thread-safe
	Rotation() glm.Mat4

	// Uniforms returns the values the object is drawn with
	Uniforms() core.Uniforms
}

// Vertex is a model vertex
type Vertex struct {
	Pos glm.Vec3
	UV  glm.Vec2
}

// Quad returns two triangles covering the unit square around the origin
func Quad() []Vertex {
	return []Vertex{
		{Pos: glm.Vec3{-0.5, -0.5, 0}, UV: glm.Vec2{0, 1}},
		{Pos: glm.Vec3{0.5, -0.5, 0}, UV: glm.Vec2{1, 1}},
		{Pos: glm.Vec3{0.5, 0.5, 0}, UV: glm.Vec2{1, 0}},
		{Pos: glm.Vec3{-0.5, -0.5, 0}, UV: glm.Vec2{0, 1}},
		{Pos: glm.Vec3{0.5, 0.5, 0}, UV: glm.Vec2{1, 0}},
		{Pos: glm.Vec3{-0.5, 0.5, 0}, UV: glm.Vec2{0, 0}},
	}
}

// NewMesh creates a mesh at the origin drawn with material
func NewMesh(vertices []Vertex, material *Material) *Mesh {
	return &Mesh{
		position: glm.Ident4(),
		rotation: glm.Ident4(),
		vertices: vertices,
		material: material,
	}
}

// Mesh is an Object made of triangles
type Mesh struct {
	mutex    sync.RWMutex
	position glm.Mat4
	rotation glm.Mat4

	vertices []Vertex
	material *Material
}

// SetPosition implements interface
func (m *Mesh) SetPosition(pos glm.Mat4) {
	m.mutex.Lock()
	m.position = pos
	m.mutex.Unlock()
}

// Position implements interface
func (m *Mesh) Position() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.position
}

// SetRotation implements interface
func (m *Mesh) SetRotation(rot glm.Mat4) {
	m.mutex.Lock()
	m.rotation = rot
	m.mutex.Unlock()
}

// Rotation implements interface
func (m *Mesh) Rotation() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.rotation
}

// Vertices returns the triangles of the mesh
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Material returns the material the mesh is drawn with
func (m *Mesh) Material() *Material {
	return m.material
}

// Transform is the model matrix, rotation applied first
func (m *Mesh) Transform() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.position.Mul4(m.rotation)
}

// Uniforms implements interface, the model matrix
// followed by the values of the material
func (m *Mesh) Uniforms() core.Uniforms {
	own := core.NewUniforms().Add("u_model", core.Mat4(m.Transform()))
	if m.material == nil {
		return own
	}
	return core.Chain{own, m.material.Uniforms()}
}

// Camera holds the view and projection of a scene
type Camera struct {
	View       glm.Mat4
	Projection glm.Mat4
}

// NewCamera creates a perspective camera at eye looking at center
func NewCamera(eye, center glm.Vec3, width, height uint32) Camera {
	return Camera{
		View:       glm.LookAtV(eye, center, glm.Vec3{0, 1, 0}),
		Projection: glm.Perspective(glm.DegToRad(45), float32(width)/float32(height), 0.1, 100),
	}
}

// Uniforms returns the view and projection values
func (c Camera) Uniforms() core.Uniforms {
	return core.NewUniforms().
		Add("u_view", core.Mat4(c.View)).
		Add("u_projection", core.Mat4(c.Projection))
}
