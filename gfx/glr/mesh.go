package glr

import (
	"unsafe"

	"github.com/go-gl/gl/all-core/gl"

	"github.com/devblok/glbind/model"
)

// Attribute locations the shaders declare
const (
	PositionAttribute = 0
	UVAttribute       = 1
)

// NewVertexArray uploads vertices into a vertex array
// with PositionAttribute and UVAttribute enabled
func NewVertexArray(vertices []model.Vertex) (*VertexArray, error) {
	var va VertexArray
	va.count = int32(len(vertices))

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	stride := int32(unsafe.Sizeof(model.Vertex{}))
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(PositionAttribute)
	gl.VertexAttribPointer(PositionAttribute, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(model.Vertex{}.Pos))))
	gl.EnableVertexAttribArray(UVAttribute)
	gl.VertexAttribPointer(UVAttribute, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(model.Vertex{}.UV))))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := checkError("NewVertexArray()"); err != nil {
		va.Release()
		return nil, err
	}
	return &va, nil
}

// VertexArray is a drawable set of triangles
type VertexArray struct {
	vao, vbo uint32
	count    int32
}

// Draw draws the triangles with the program in use
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, va.count)
	gl.BindVertexArray(0)
}

// Release deletes the vertex array and its buffer
func (va *VertexArray) Release() {
	gl.DeleteVertexArrays(1, &va.vao)
	gl.DeleteBuffers(1, &va.vbo)
}
