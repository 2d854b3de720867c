// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// textRenderer measures and rasterizes single lines of text
// with one font face.
type textRenderer struct {
	face    font.Face
	ascent  int
	descent int
}

// newTextRenderer returns a text renderer using the Latin Modern
// sans serif font at the given size in points.
func newTextRenderer(size float64) (*textRenderer, error) {
	fnt, err := opentype.Parse(lmsans10regular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gui: parsing font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gui: creating font face: %w", err)
	}
	m := face.Metrics()
	return &textRenderer{face: face, ascent: m.Ascent.Ceil(), descent: m.Descent.Ceil()}, nil
}

// lineHeight returns the height of a line of text.
func (tr *textRenderer) lineHeight() int {
	return tr.ascent + tr.descent
}

// measure returns the size of the given line of text.
func (tr *textRenderer) measure(s string) image.Point {
	adv := font.MeasureString(tr.face, s)
	return image.Point{adv.Ceil(), tr.lineHeight()}
}

// render rasterizes the given line of text onto a transparent image.
func (tr *textRenderer) render(s string, clr color.RGBA) *image.RGBA {
	sz := tr.measure(s)
	img := image.NewRGBA(image.Rectangle{Max: sz})
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: tr.face,
		Dot:  fixed.P(0, tr.ascent),
	}
	dr.DrawString(s)
	return img
}
