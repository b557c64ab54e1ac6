// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/glbind/core"
	"github.com/devblok/glbind/trace"
)

func TestSamplerCache(t *testing.T) {
	c := qt.New(t)
	rec := trace.NewRecorder()
	cache := core.NewSamplerCache(rec, true)

	first, err := cache.Get(core.DefaultSamplerBehavior())
	c.Assert(err, qt.IsNil)
	again, err := cache.Get(core.DefaultSamplerBehavior())
	c.Assert(err, qt.IsNil)
	c.Assert(again, qt.Equals, first)

	aniso := core.DefaultSamplerBehavior()
	aniso.MaxAnisotropy = 16
	other, err := cache.Get(aniso)
	c.Assert(err, qt.IsNil)
	c.Assert(other, qt.Not(qt.Equals), first)

	c.Assert(cache.Len(), qt.Equals, 2)
	c.Assert(rec.Count(trace.OpCreateSampler), qt.Equals, 2)

	cache.Release()
	c.Assert(cache.Len(), qt.Equals, 0)
	c.Assert(rec.Count(trace.OpDeleteSampler), qt.Equals, 2)
}

func TestSamplerCacheUnsupported(t *testing.T) {
	c := qt.New(t)
	rec := trace.NewRecorder()
	cache := core.NewSamplerCache(rec, false)

	_, err := cache.Get(core.DefaultSamplerBehavior())
	c.Assert(err, qt.Equals, core.ErrSamplersNotSupported)
	c.Assert(rec.Count(), qt.Equals, 0)
}

func TestSamplerBehaviorWrapIsKey(t *testing.T) {
	c := qt.New(t)
	cache := core.NewSamplerCache(trace.NewRecorder(), true)

	clamped := core.DefaultSamplerBehavior()
	clamped.WrapFunction[2] = core.WrapClamp

	a, _ := cache.Get(core.DefaultSamplerBehavior())
	b, _ := cache.Get(clamped)
	c.Assert(a, qt.Not(qt.Equals), b)
}
