// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guigpu paints [gui.Output] onto the window surface with a
// [gpudraw.Drawer], after a base pass that clears the surface and
// draws the background texture of the frame over all of it.
package guigpu

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/gpu/gpudraw"

	"github.com/MindSwipe/r3e/gui"
)

// Drawer is the subset of [gpudraw.Drawer] used for painting.
type Drawer interface {
	Start()
	End()
	DestBounds() image.Rectangle
	Fill(clr color.Color, dr image.Rectangle, op draw.Op)
	UseGoImage(img image.Image, unchanged bool)
	UseTexture(tx *gpu.Texture)
	CopyUsed(dp image.Point, sr image.Rectangle, op draw.Op, flipY bool)
	ScaleUsed(dr image.Rectangle, sr image.Rectangle, rotateDeg float32, op draw.Op, flipY bool)
}

var _ Drawer = (*gpudraw.Drawer)(nil)

// Painter executes the output of each GUI frame.
type Painter struct {
	drw Drawer

	// Base is the color the surface is cleared to before the GUI is drawn.
	Base color.RGBA

	textures map[gui.TextureID]gui.Texture
}

// New returns a new [Painter] drawing onto the given surface.
func New(gp *gpu.GPU, sf *gpu.Surface, base color.RGBA) *Painter {
	return NewPainter(gpudraw.NewDrawer(gp, sf), base)
}

// NewPainter returns a new [Painter] using the given drawer.
func NewPainter(drw Drawer, base color.RGBA) *Painter {
	return &Painter{drw: drw, Base: base, textures: map[gui.TextureID]gui.Texture{}}
}

// Release releases the drawer, if it holds GPU resources.
func (p *Painter) Release() {
	if rd, ok := p.drw.(interface{ Release() }); ok {
		rd.Release()
	}
	clear(p.textures)
}

// NumTextures returns the number of textures currently held.
func (p *Painter) NumTextures() int {
	return len(p.textures)
}

// Paint uploads the new textures of out, does the base pass and then
// draws all of the shapes in order, presents, and then frees the
// textures that out no longer uses. Shapes that cannot be drawn are
// skipped and reported in the returned error.
func (p *Painter) Paint(out gui.Output) error {
	for id, tx := range out.TexturesDelta.Set {
		p.textures[id] = tx
	}
	var errs []error
	p.drw.Start()
	dest := p.drw.DestBounds()
	p.drw.Fill(p.Base, dest, gpudraw.Src)
	if out.Background != 0 {
		if err := p.use(out.Background); err != nil {
			errs = append(errs, err)
		} else {
			p.drw.ScaleUsed(dest, image.Rectangle{}, 0, gpudraw.Src, false)
		}
	}
	for _, s := range out.Shapes {
		switch s := s.(type) {
		case *gui.RectShape:
			p.drw.Fill(s.Color, s.Rect, gpudraw.Over)
		case *gui.ImageShape:
			errs = append(errs, p.image(s))
		default:
			errs = append(errs, fmt.Errorf("guigpu: unknown shape %T", s))
		}
	}
	p.drw.End()
	for _, id := range out.TexturesDelta.Free {
		delete(p.textures, id)
	}
	return errors.Join(errs...)
}

// use makes the texture with the given id the source of the next draw.
// Context images never change after they are made, so uploads are
// skipped for images that the drawer already has.
func (p *Painter) use(id gui.TextureID) error {
	tx, ok := p.textures[id]
	if !ok {
		return fmt.Errorf("guigpu: texture %d is not set", id)
	}
	switch {
	case tx.Image != nil:
		p.drw.UseGoImage(tx.Image, true)
	case tx.Native != nil:
		gt, ok := tx.Native.(*gpu.Texture)
		if !ok {
			return fmt.Errorf("guigpu: texture %d is a %T, not a *gpu.Texture", id, tx.Native)
		}
		p.drw.UseTexture(gt)
	default:
		return fmt.Errorf("guigpu: texture %d is empty", id)
	}
	return nil
}

func (p *Painter) image(s *gui.ImageShape) error {
	if err := p.use(s.Texture); err != nil {
		return err
	}
	op := gpudraw.Src
	if s.Blend {
		op = gpudraw.Over
	}
	p.drw.CopyUsed(s.Rect.Min, image.Rectangle{Max: s.Rect.Size()}, op, false)
	return nil
}
