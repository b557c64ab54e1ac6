// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/glbind/core"
)

func TestLayoutsEqual(t *testing.T) {
	c := qt.New(t)

	light := core.StructLayout{Members: []core.StructMember{
		{Name: "position", Layout: core.BasicLayout{Type: core.TypeFloatVec3, Offset: 0}},
		{Name: "color", Layout: core.BasicLayout{Type: core.TypeFloatVec3, Offset: 16}},
	}}
	lights := core.StructLayout{Members: []core.StructMember{
		{Name: "count", Layout: core.BasicLayout{Type: core.TypeInt}},
		{Name: "lights", Layout: core.ArrayLayout{Content: light, Length: 8}},
	}}
	same := core.StructLayout{Members: []core.StructMember{
		{Name: "count", Layout: core.BasicLayout{Type: core.TypeInt}},
		{Name: "lights", Layout: core.ArrayLayout{Content: light, Length: 8}},
	}}
	shorter := core.StructLayout{Members: []core.StructMember{
		{Name: "count", Layout: core.BasicLayout{Type: core.TypeInt}},
		{Name: "lights", Layout: core.ArrayLayout{Content: light, Length: 4}},
	}}
	renamed := core.StructLayout{Members: []core.StructMember{
		{Name: "n", Layout: core.BasicLayout{Type: core.TypeInt}},
		{Name: "lights", Layout: core.ArrayLayout{Content: light, Length: 8}},
	}}
	dynamic := core.DynamicArrayLayout{Content: light}

	c.Assert(core.LayoutsEqual(lights, same), qt.IsTrue)
	c.Assert(core.LayoutsEqual(lights, shorter), qt.IsFalse)
	c.Assert(core.LayoutsEqual(lights, renamed), qt.IsFalse)
	c.Assert(core.LayoutsEqual(lights, light), qt.IsFalse)
	c.Assert(core.LayoutsEqual(dynamic, core.DynamicArrayLayout{Content: light}), qt.IsTrue)
	c.Assert(core.LayoutsEqual(dynamic, core.ArrayLayout{Content: light}), qt.IsFalse)
	c.Assert(core.LayoutsEqual(core.BasicLayout{Type: core.TypeFloat, Offset: 4}, core.BasicLayout{Type: core.TypeFloat}), qt.IsFalse)
	c.Assert(core.LayoutsEqual(nil, light), qt.IsFalse)
}

func TestMatchesLayout(t *testing.T) {
	c := qt.New(t)
	layout := core.BasicLayout{Type: core.TypeFloatMat4}
	matches := core.MatchesLayout(layout)

	c.Assert(matches(&core.UniformBlock{Layout: layout}), qt.IsTrue)
	c.Assert(matches(&core.UniformBlock{Layout: core.BasicLayout{Type: core.TypeFloatMat3}}), qt.IsFalse)
	c.Assert(matches(nil), qt.IsFalse)
}
