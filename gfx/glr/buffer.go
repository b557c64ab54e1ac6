// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"time"

	"github.com/go-gl/gl/all-core/gl"

	"github.com/devblok/glbind/core"
)

// NewBuffer creates a buffer holding data. Fenced buffers hand out
// a fence every time they're bound, Update then waits for the GPU
// to finish reading before writing.
func NewBuffer(data []byte, fenced bool) (*Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, id)
	gl.BufferData(gl.COPY_WRITE_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)

	if err := checkError("NewBuffer()"); err != nil {
		gl.DeleteBuffers(1, &id)
		return nil, err
	}

	return &Buffer{
		id:     id,
		size:   len(data),
		fenced: fenced,
	}, nil
}

// Buffer is an OpenGL buffer object, it implements core.Buffer
type Buffer struct {
	id     uint32
	size   int
	fenced bool

	// fence is the last fence handed out, an inserted
	// fence covers every earlier read of the buffer
	fence *Fence
}

// ID returns the OpenGL buffer name
func (b *Buffer) ID() uint32 {
	return b.id
}

// Size returns the size of the buffer in bytes
func (b *Buffer) Size() int {
	return b.size
}

// Update replaces the start of the buffer with data
func (b *Buffer) Update(data []byte) {
	if b.fence != nil {
		b.fence.Wait()
		if b.fence.released {
			b.fence = nil
		}
	}

	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
	gl.BufferSubData(gl.COPY_WRITE_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
}

// OffsetBytes implements interface
func (b *Buffer) OffsetBytes() int {
	return 0
}

// AddFence implements interface. The fence has to be inserted
// with InsertFences after the draw that reads the buffer, which
// releases the fence it replaces.
func (b *Buffer) AddFence() core.Fence {
	if !b.fenced {
		return nil
	}
	fence := &Fence{prev: b.fence}
	if prev := b.fence; prev != nil && prev.sync == 0 {
		fence.prev = prev.prev
		prev.prev = nil
		prev.Release()
	}
	b.fence = fence
	return fence
}

// PrepareAndBindForUniform implements interface
func (b *Buffer) PrepareAndBindForUniform(bindPoint uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindPoint, b.id)
}

// PrepareAndBindForSharedStorage implements interface
func (b *Buffer) PrepareAndBindForSharedStorage(bindPoint uint32) {
	gl.MemoryBarrier(gl.SHADER_STORAGE_BARRIER_BIT)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, bindPoint, b.id)
}

// Release deletes the buffer
func (b *Buffer) Release() {
	if b.fence != nil {
		b.fence.Release()
		b.fence = nil
	}
	gl.DeleteBuffers(1, &b.id)
}

// fenceTimeout bounds a single wait on the GPU
const fenceTimeout = uint64(time.Second)

// Fence is an OpenGL sync object, it implements core.Fence.
// Until it is inserted it stands in for the fence it replaced.
// A released fence is never inserted again.
type Fence struct {
	sync     uintptr
	prev     *Fence
	released bool
}

// InsertFences puts the sync objects for fences in the command stream
func InsertFences(fences []core.Fence) {
	for _, f := range fences {
		fence, ok := f.(*Fence)
		if !ok || fence.sync != 0 || fence.released {
			continue
		}
		fence.sync = gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
		if fence.prev != nil {
			fence.prev.Release()
			fence.prev = nil
		}
	}
}

// Wait implements interface
func (f *Fence) Wait() {
	if f.sync == 0 {
		if f.prev != nil {
			f.prev.Wait()
			f.prev = nil
		}
		return
	}
	for {
		result := gl.ClientWaitSync(f.sync, gl.SYNC_FLUSH_COMMANDS_BIT, fenceTimeout)
		if result != gl.TIMEOUT_EXPIRED {
			break
		}
	}
	f.Release()
}

// Release deletes the sync object and the one it replaced
func (f *Fence) Release() {
	f.released = true
	if f.prev != nil {
		f.prev.Release()
		f.prev = nil
	}
	if f.sync != 0 {
		gl.DeleteSync(f.sync)
		f.sync = 0
	}
}
