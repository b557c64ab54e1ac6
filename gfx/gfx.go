// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines rendering related features that renderers must implement.
package gfx

import (
	"image"
	"image/draw"
)

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// ReleaseAll releases items in reverse order.
func ReleaseAll(items ...Releasable) {
	for idx := len(items) - 1; idx >= 0; idx-- {
		if items[idx] != nil {
			items[idx].Release()
		}
	}
}

// GetPixels transforms a given image into tightly packed RGBA rows
// by drawing the decoded image onto a controlled RGBA canvas.
// A rowPitch larger than the packed row length pads every row.
func GetPixels(img image.Image, rowPitch int) []uint8 {
	bounds := img.Bounds()
	newImg := image.NewRGBA(bounds)
	if rowPitch > newImg.Stride {
		newImg.Stride = rowPitch
		newImg.Pix = make([]uint8, rowPitch*bounds.Dy())
	}
	draw.Draw(newImg, newImg.Bounds(), img, bounds.Min, draw.Src)
	return newImg.Pix
}
