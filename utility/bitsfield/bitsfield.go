// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package bitsfield tracks which slots of a fixed-size pool of binding
// points (texture units, buffer binding points) are reserved.
// A Bitsfield is meant to live for a single binding pass.
package bitsfield

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// New creates a Bitsfield able to hold capacity slots, all of them free.
func New(capacity int) *Bitsfield {
	if capacity < 0 {
		panic(fmt.Sprintf("bitsfield: negative capacity %d", capacity))
	}
	return &Bitsfield{
		capacity: capacity,
		bits:     bitset.New(uint(capacity)),
	}
}

// Bitsfield is a set of used slot indices bounded by a capacity.
type Bitsfield struct {
	capacity int
	bits     *bitset.BitSet
}

// Len returns the capacity of the field.
func (b *Bitsfield) Len() int {
	return b.capacity
}

// Count returns the number of used slots.
func (b *Bitsfield) Count() int {
	return int(b.bits.Count())
}

// IsUsed reports whether idx is reserved. Indices outside of
// the field are never used.
func (b *Bitsfield) IsUsed(idx int) bool {
	if idx < 0 || idx >= b.capacity {
		return false
	}
	return b.bits.Test(uint(idx))
}

// SetUsed reserves idx. Reserving an already reserved slot is a no-op,
// several uniforms may share the same slot within a pass.
func (b *Bitsfield) SetUsed(idx int) {
	b.check(idx)
	b.bits.Set(uint(idx))
}

// SetUnused frees idx.
func (b *Bitsfield) SetUnused(idx int) {
	b.check(idx)
	b.bits.Clear(uint(idx))
}

// GetUnused returns the lowest free slot, false when every slot is used.
func (b *Bitsfield) GetUnused() (int, bool) {
	if b.capacity == 0 {
		return 0, false
	}
	idx, ok := b.bits.NextClear(0)
	if !ok || int(idx) >= b.capacity {
		return 0, false
	}
	return int(idx), true
}

func (b *Bitsfield) check(idx int) {
	if idx < 0 || idx >= b.capacity {
		panic(fmt.Sprintf("bitsfield: slot %d out of range [0, %d)", idx, b.capacity))
	}
}
