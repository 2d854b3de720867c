// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guigpu

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"cogentcore.org/core/gpu"
	"github.com/stretchr/testify/assert"

	"github.com/MindSwipe/r3e/gui"
)

// recorder is a [Drawer] that records its calls.
type recorder struct {
	calls []string
	used  any
}

func (r *recorder) Start()                      { r.calls = append(r.calls, "start") }
func (r *recorder) End()                        { r.calls = append(r.calls, "end") }
func (r *recorder) DestBounds() image.Rectangle { return image.Rect(0, 0, 640, 480) }

func (r *recorder) Fill(clr color.Color, dr image.Rectangle, op draw.Op) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v %v %d", clr, dr, op))
}

func (r *recorder) UseGoImage(img image.Image, unchanged bool) {
	r.used = img
	r.calls = append(r.calls, fmt.Sprintf("image %v", unchanged))
}

func (r *recorder) UseTexture(tx *gpu.Texture) {
	r.used = tx
	r.calls = append(r.calls, "texture")
}

func (r *recorder) CopyUsed(dp image.Point, sr image.Rectangle, op draw.Op, flipY bool) {
	r.calls = append(r.calls, fmt.Sprintf("copy %v %v %d %v", dp, sr, op, flipY))
}

func (r *recorder) ScaleUsed(dr image.Rectangle, sr image.Rectangle, rotateDeg float32, op draw.Op, flipY bool) {
	r.calls = append(r.calls, fmt.Sprintf("scale %v %v %g %d %v", dr, sr, rotateDeg, op, flipY))
}

func TestPaint(t *testing.T) {
	rec := &recorder{}
	base := color.RGBA{A: 255}
	p := NewPainter(rec, base)

	text := image.NewRGBA(image.Rect(0, 0, 30, 10))
	tex := &gpu.Texture{}
	out := gui.Output{
		Shapes: []gui.Shape{
			&gui.RectShape{Rect: image.Rect(0, 0, 200, 480), Color: color.RGBA{27, 27, 27, 255}},
			&gui.ImageShape{Rect: image.Rect(8, 8, 38, 18), Texture: 1, Blend: true},
			&gui.ImageShape{Rect: image.Rect(200, 0, 640, 480), Texture: 2},
		},
		TexturesDelta: gui.TexturesDelta{
			Set: map[gui.TextureID]gui.Texture{1: {Image: text}, 2: {Native: tex}},
		},
	}
	assert.NoError(t, p.Paint(out))
	assert.Equal(t, []string{
		"start",
		fmt.Sprintf("fill %v %v %d", base, image.Rect(0, 0, 640, 480), draw.Src),
		fmt.Sprintf("fill %v %v %d", color.RGBA{27, 27, 27, 255}, image.Rect(0, 0, 200, 480), draw.Over),
		"image true",
		fmt.Sprintf("copy %v %v %d false", image.Pt(8, 8), image.Rect(0, 0, 30, 10), draw.Over),
		"texture",
		fmt.Sprintf("copy %v %v %d false", image.Pt(200, 0), image.Rect(0, 0, 440, 480), draw.Src),
		"end",
	}, rec.calls)
	assert.Same(t, tex, rec.used)
	assert.Equal(t, 2, p.NumTextures())

	// texture 2 is freed after this frame, which still draws it
	rec.calls = nil
	out.TexturesDelta = gui.TexturesDelta{Free: []gui.TextureID{2}}
	assert.NoError(t, p.Paint(out))
	assert.Contains(t, rec.calls, "texture")
	assert.Equal(t, 1, p.NumTextures())

	// now it is gone
	assert.ErrorContains(t, p.Paint(out), "texture 2 is not set")
}

func TestPaintForeignTexture(t *testing.T) {
	p := NewPainter(&recorder{}, color.RGBA{})
	err := p.Paint(gui.Output{
		Shapes: []gui.Shape{&gui.ImageShape{Rect: image.Rect(0, 0, 1, 1), Texture: 5}},
		TexturesDelta: gui.TexturesDelta{
			Set: map[gui.TextureID]gui.Texture{5: {Native: "not a texture"}},
		},
	})
	assert.ErrorContains(t, err, "not a *gpu.Texture")
}

func TestPaintBackground(t *testing.T) {
	rec := &recorder{}
	base := color.RGBA{A: 255}
	p := NewPainter(rec, base)
	tex := &gpu.Texture{}
	out := gui.Output{
		Shapes: []gui.Shape{
			&gui.RectShape{Rect: image.Rect(0, 0, 200, 480), Color: color.RGBA{27, 27, 27, 255}},
		},
		TexturesDelta: gui.TexturesDelta{
			Set: map[gui.TextureID]gui.Texture{3: {Native: tex}},
		},
		Background: 3,
	}
	assert.NoError(t, p.Paint(out))
	assert.Equal(t, []string{
		"start",
		fmt.Sprintf("fill %v %v %d", base, image.Rect(0, 0, 640, 480), draw.Src),
		"texture",
		fmt.Sprintf("scale %v %v 0 %d false", image.Rect(0, 0, 640, 480), image.Rectangle{}, draw.Src),
		fmt.Sprintf("fill %v %v %d", color.RGBA{27, 27, 27, 255}, image.Rect(0, 0, 200, 480), draw.Over),
		"end",
	}, rec.calls)
	assert.Same(t, tex, rec.used)

	// a missing background is reported and the shapes are still drawn
	rec.calls = nil
	out.TexturesDelta = gui.TexturesDelta{}
	out.Background = 4
	assert.ErrorContains(t, p.Paint(out), "texture 4 is not set")
	assert.Len(t, rec.calls, 4)
}
