// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"image"
	"log/slog"
)

// UI lays out widgets top to bottom inside a panel.
type UI struct {
	ctx    *Context
	rect   image.Rectangle
	cursor image.Point
}

// Rect returns the content rectangle of the panel.
func (ui *UI) Rect() image.Rectangle { return ui.rect }

// allocate takes the next sz of vertical space.
func (ui *UI) allocate(sz image.Point) image.Rectangle {
	r := image.Rectangle{Min: ui.cursor, Max: ui.cursor.Add(sz)}
	ui.cursor.Y = r.Max.Y + ui.ctx.Style.Spacing
	return r
}

// text adds the shape of the given text with its top left at pos.
func (ui *UI) text(s string, pos image.Point) {
	id := ui.ctx.textTexture(s)
	sz := ui.ctx.text.measure(s)
	ui.ctx.addShape(&ImageShape{Rect: image.Rectangle{Min: pos, Max: pos.Add(sz)}, Texture: id, Blend: true})
}

// Label shows a line of text.
func (ui *UI) Label(s string) {
	r := ui.allocate(ui.ctx.text.measure(s))
	ui.text(s, r.Min)
	ui.ctx.widgets[s] = r
}

// Button shows a button with the given text, and returns true if it was
// clicked, which is a press and release of the left button both inside it.
func (ui *UI) Button(s string) bool {
	ctx := ui.ctx
	st := &ctx.Style
	r := ui.allocate(ctx.text.measure(s).Add(st.ButtonPadding.Mul(2)))
	ctx.widgets[s] = r

	fill := st.ButtonFill
	switch {
	case ctx.down && ctx.pressAt.In(r):
		fill = st.ButtonActive
	case ctx.pointer.In(r):
		fill = st.ButtonHover
	}
	ctx.addShape(&RectShape{Rect: r, Color: fill})
	ui.text(s, r.Min.Add(st.ButtonPadding))

	for _, c := range ctx.clicks {
		if c.press.In(r) && c.release.In(r) {
			slog.Debug("gui: clicked", "button", s)
			return true
		}
	}
	return false
}

// Image shows the given texture at the given size.
func (ui *UI) Image(id TextureID, size image.Point) {
	if _, ok := ui.ctx.textures[id]; !ok {
		slog.Warn("gui: image of unknown texture", "texture", id)
		return
	}
	r := ui.allocate(size)
	ui.ctx.addShape(&ImageShape{Rect: r, Texture: id})
}

// SidePanel shows a panel on the left of the available rect, which can be
// resized by dragging its right edge, and calls add to fill it.
func (ctx *Context) SidePanel(id string, add func(ui *UI)) {
	ps, ok := ctx.panels[id]
	if !ok {
		ps = &panelState{width: ctx.cfg.Width}
		ctx.panels[id] = ps
	}
	ps.left = ctx.avail.Min.X
	ps.width = ctx.clampWidth(ps.width)
	ps.edge = ps.left + ps.width

	r := image.Rect(ps.left, ctx.avail.Min.Y, ps.edge, ctx.avail.Max.Y)
	st := &ctx.Style
	ctx.addShape(&RectShape{Rect: r, Color: st.PanelFill})
	sep := st.Separator
	if ps.dragging || abs(ctx.pointer.X-ps.edge) <= st.GrabRadius && ctx.pointer.In(r.Inset(-st.GrabRadius)) {
		sep = st.SeparatorActive
	}
	ctx.addShape(&RectShape{Rect: image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), Color: sep})

	ui := &UI{ctx: ctx, rect: r.Inset(st.Padding)}
	ui.cursor = ui.rect.Min
	add(ui)
	ctx.avail.Min.X = r.Max.X
}

// CentralPanel fills the rest of the available rect, with no margin,
// and calls add to fill it.
func (ctx *Context) CentralPanel(add func(ui *UI)) {
	r := ctx.avail
	ctx.addShape(&RectShape{Rect: r, Color: ctx.Style.CentralFill})
	ui := &UI{ctx: ctx, rect: r, cursor: r.Min}
	add(ui)
	ctx.avail.Min = ctx.avail.Max
}
