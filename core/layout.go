// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// BlockLayout describes the memory layout of a block or a block member.
// It's one of StructLayout, BasicLayout, ArrayLayout or DynamicArrayLayout.
type BlockLayout interface {
	isBlockLayout()
}

// StructMember is a named member of a StructLayout
type StructMember struct {
	Name   string
	Layout BlockLayout
}

// StructLayout is a sequence of named members
type StructLayout struct {
	Members []StructMember
}

// BasicLayout is a single value of a uniform type at a byte offset
type BasicLayout struct {
	Type   UniformType
	Offset int
}

// ArrayLayout is a fixed size array
type ArrayLayout struct {
	Content BlockLayout
	Length  int
}

// DynamicArrayLayout is an array whose length is set by the buffer size,
// only valid as the last member of a storage block
type DynamicArrayLayout struct {
	Content BlockLayout
}

func (StructLayout) isBlockLayout()       {}
func (BasicLayout) isBlockLayout()        {}
func (ArrayLayout) isBlockLayout()        {}
func (DynamicArrayLayout) isBlockLayout() {}

// LayoutsEqual reports whether two layouts describe the same memory.
// Struct members are compared in order and by name.
func LayoutsEqual(a, b BlockLayout) bool {
	switch a := a.(type) {
	case StructLayout:
		b, ok := b.(StructLayout)
		if !ok || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i].Name != b.Members[i].Name {
				return false
			}
			if !LayoutsEqual(a.Members[i].Layout, b.Members[i].Layout) {
				return false
			}
		}
		return true
	case BasicLayout:
		b, ok := b.(BasicLayout)
		return ok && a == b
	case ArrayLayout:
		b, ok := b.(ArrayLayout)
		return ok && a.Length == b.Length && LayoutsEqual(a.Content, b.Content)
	case DynamicArrayLayout:
		b, ok := b.(DynamicArrayLayout)
		return ok && LayoutsEqual(a.Content, b.Content)
	default:
		return false
	}
}

// MatchesLayout returns a layout check for Block values that accepts
// blocks laid out exactly like expected
func MatchesLayout(expected BlockLayout) func(*UniformBlock) bool {
	return func(block *UniformBlock) bool {
		if block == nil {
			return false
		}
		return LayoutsEqual(expected, block.Layout)
	}
}
