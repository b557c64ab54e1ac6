// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/glbind/utility/bitsfield"
)

// BlockKind tells uniform blocks and shader storage blocks apart
type BlockKind int

// Block kinds
const (
	UniformBlockKind BlockKind = iota
	ShaderStorageBlockKind
)

func (k BlockKind) String() string {
	if k == ShaderStorageBlockKind {
		return "shader storage block"
	}
	return "uniform block"
}

// bindBlock binds the buffer in value to a free bind point of the pool
// and points the program block at it. The returned fence is nil when
// the buffer does not track GPU access.
func (c *Context) bindBlock(
	program Program,
	name string,
	block *UniformBlock,
	value Value,
	kind BlockKind,
	pool *bitsfield.Bitsfield,
) (Fence, error) {
	bv, ok := value.(Block)
	if !ok {
		return nil, &UniformValueToBlockError{Name: name}
	}

	if bv.Layout == nil || !bv.Layout(block) {
		return nil, &UniformBlockLayoutMismatchError{Name: name}
	}

	if offset := bv.Buffer.OffsetBytes(); offset != 0 {
		panic(fmt.Sprintf("binding a buffer with a non-zero offset (%d bytes) to %s %q is not supported", offset, kind, name))
	}

	bindPoint, ok := pool.GetUnused()
	if !ok {
		panic(fmt.Sprintf("not enough buffer units for %s %q (limit %d)", kind, name, pool.Len()))
	}
	pool.SetUsed(bindPoint)

	fence := bv.Buffer.AddFence()

	switch kind {
	case UniformBlockKind:
		bv.Buffer.PrepareAndBindForUniform(uint32(bindPoint))
		program.SetUniformBlockBinding(block.Binding, uint32(bindPoint))
	case ShaderStorageBlockKind:
		bv.Buffer.PrepareAndBindForSharedStorage(uint32(bindPoint))
		program.SetShaderStorageBlockBinding(block.Binding, uint32(bindPoint))
	}

	if c.debug() {
		c.log.WithFields(log.Fields{
			"name":      name,
			"kind":      kind,
			"binding":   block.Binding,
			"bindPoint": bindPoint,
		}).Debug("bound block")
	}

	return fence, nil
}
