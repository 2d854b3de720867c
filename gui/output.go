// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"image"
	"image/color"
)

// TextureID identifies a texture that shapes can draw.
// IDs are never reused within a [Context].
type TextureID uint64

// Texture is the content of a texture: either a CPU side image made
// by the context, such as rendered text, or a native texture of the
// rendering engine registered with [Context.RegisterTexture].
type Texture struct {

	// Image is the image to upload, for textures made by the context.
	Image image.Image

	// Native is the engine texture, for registered textures.
	Native any
}

// Shape is a drawing primitive in window pixel coordinates.
type Shape interface {

	// Bounds returns the region that the shape covers.
	Bounds() image.Rectangle
}

// RectShape is a solid filled rectangle.
type RectShape struct {
	Rect  image.Rectangle
	Color color.RGBA
}

func (s *RectShape) Bounds() image.Rectangle { return s.Rect }

// ImageShape draws a texture stretched over a rectangle.
// Text is drawn as an ImageShape of the rendered text texture.
type ImageShape struct {
	Rect    image.Rectangle
	Texture TextureID

	// Blend is whether the texture is alpha blended over what is
	// underneath, rather than copied.
	Blend bool
}

func (s *ImageShape) Bounds() image.Rectangle { return s.Rect }

// TexturesDelta lists the textures that changed in a frame.
// Set textures must be uploaded before painting the frame, and Free
// textures released after painting it.
type TexturesDelta struct {
	Set  map[TextureID]Texture
	Free []TextureID
}

// IsEmpty returns whether no textures changed.
func (td *TexturesDelta) IsEmpty() bool {
	return len(td.Set) == 0 && len(td.Free) == 0
}

// Output is the result of a frame: the shapes to paint in order,
// and the texture changes to apply around painting them.
type Output struct {
	Shapes        []Shape
	TexturesDelta TexturesDelta

	// Screen is the screen rectangle the frame was laid out in.
	Screen image.Rectangle

	// Background, if non-zero, is a texture that is scaled over the
	// whole screen before the shapes are painted.
	Background TextureID
}
