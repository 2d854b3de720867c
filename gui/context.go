// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gui is a small immediate-mode GUI. Each frame, the caller
// feeds raw input with [Context.Input], declares the panels and widgets
// between [Context.Begin] and [Context.End], and paints the returned
// [Output]. Nothing is retained between frames except input state,
// panel sizes and the text textures still in use.
package gui

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/colors"

	"github.com/MindSwipe/r3e/config"
)

// Style has the colors and spacing of the panels and widgets.
type Style struct {
	PanelFill       color.RGBA
	CentralFill     color.RGBA
	Separator       color.RGBA
	SeparatorActive color.RGBA
	Text            color.RGBA
	ButtonFill      color.RGBA
	ButtonHover     color.RGBA
	ButtonActive    color.RGBA

	// Padding is the margin inside side panels.
	Padding int

	// Spacing is the vertical space between widgets.
	Spacing int

	// ButtonPadding is the space around the text of a button.
	ButtonPadding image.Point

	// GrabRadius is the distance from a panel edge within which
	// a press starts resizing the panel.
	GrabRadius int
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		PanelFill:       colors.FromRGB(27, 27, 27),
		CentralFill:     colors.FromRGB(20, 20, 20),
		Separator:       colors.FromRGB(60, 60, 60),
		SeparatorActive: colors.FromRGB(150, 150, 150),
		Text:            colors.FromRGB(210, 210, 210),
		ButtonFill:      colors.FromRGB(60, 60, 60),
		ButtonHover:     colors.FromRGB(80, 80, 80),
		ButtonActive:    colors.FromRGB(110, 110, 110),
		Padding:         8,
		Spacing:         6,
		ButtonPadding:   image.Point{6, 3},
		GrabRadius:      5,
	}
}

// click is a press and release of the left button.
type click struct {
	press, release image.Point
}

// panelState is the state of a side panel kept across frames.
type panelState struct {
	width    int
	left     int
	edge     int
	dragging bool
}

// Context is the state of the GUI across frames. It is not safe for
// concurrent use.
type Context struct {

	// Style is used for all panels and widgets.
	Style Style

	cfg  config.Panel
	text *textRenderer

	pending []Event
	pointer image.Point
	down    bool
	pressAt image.Point
	clicks  []click

	now     time.Duration
	dt      time.Duration
	frame   int
	inFrame bool

	screen image.Rectangle
	avail  image.Rectangle
	panels map[string]*panelState
	shapes []Shape

	// widgets are the rects of the widgets of the last frame, by text.
	widgets map[string]image.Rectangle

	nextID   TextureID
	textures map[TextureID]Texture
	textIDs  map[string]TextureID
	textUsed map[TextureID]bool

	// native are the registered textures of the current frame,
	// which are freed when the next frame begins.
	native []TextureID
	set    map[TextureID]Texture
	free   []TextureID
}

// NewContext returns a new [Context] with panels configured by cfg.
func NewContext(cfg *config.Panel) (*Context, error) {
	tr, err := newTextRenderer(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		Style:    DefaultStyle(),
		cfg:      *cfg,
		text:     tr,
		panels:   map[string]*panelState{},
		widgets:  map[string]image.Rectangle{},
		textures: map[TextureID]Texture{},
		textIDs:  map[string]TextureID{},
		textUsed: map[TextureID]bool{},
		set:      map[TextureID]Texture{},
	}
	return ctx, nil
}

// Input queues a raw input event for the next frame.
func (ctx *Context) Input(ev Event) {
	ctx.pending = append(ctx.pending, ev)
}

// Elapsed returns the time passed to the last [Context.Begin].
func (ctx *Context) Elapsed() time.Duration { return ctx.now }

// Delta returns the time between the last two frames.
func (ctx *Context) Delta() time.Duration { return ctx.dt }

// Frame returns the number of frames ended so far.
func (ctx *Context) Frame() int { return ctx.frame }

// Pointer returns the last known pointer position.
func (ctx *Context) Pointer() image.Point { return ctx.pointer }

// PanelWidth returns the current width of the side panel with the
// given id, or 0 if it has never been shown.
func (ctx *Context) PanelWidth(id string) int {
	if ps, ok := ctx.panels[id]; ok {
		return ps.width
	}
	return 0
}

// WidgetRect returns the rect of the widget with the given text
// in the last frame.
func (ctx *Context) WidgetRect(text string) (image.Rectangle, bool) {
	r, ok := ctx.widgets[text]
	return r, ok
}

// Begin starts a new frame in the given screen rectangle, at the given
// time since the start of the program, and processes all queued input.
func (ctx *Context) Begin(screen image.Rectangle, now time.Duration) {
	if ctx.inFrame {
		slog.Warn("gui: Begin called twice without End", "frame", ctx.frame)
	}
	ctx.inFrame = true
	ctx.dt = now - ctx.now
	ctx.now = now
	ctx.screen = screen
	ctx.avail = screen
	ctx.shapes = nil
	ctx.clicks = ctx.clicks[:0]
	clear(ctx.widgets)
	clear(ctx.textUsed)

	for _, ev := range ctx.pending {
		ctx.handleEvent(ev)
	}
	ctx.pending = ctx.pending[:0]

	for _, id := range ctx.native {
		ctx.freeTexture(id)
	}
	ctx.native = ctx.native[:0]
}

func (ctx *Context) handleEvent(ev Event) {
	ctx.pointer = ev.Position()
	switch ev := ev.(type) {
	case PointerMoved:
		ctx.dragPanels(ev.Pos)
	case PointerButton:
		if ev.Button != Left {
			return
		}
		if ev.Pressed {
			ctx.down = true
			ctx.pressAt = ev.Pos
			for _, ps := range ctx.panels {
				if abs(ev.Pos.X-ps.edge) <= ctx.Style.GrabRadius && ev.Pos.Y >= ctx.screen.Min.Y && ev.Pos.Y < ctx.screen.Max.Y {
					ps.dragging = true
				}
			}
			return
		}
		if ctx.down {
			ctx.clicks = append(ctx.clicks, click{press: ctx.pressAt, release: ev.Pos})
		}
		ctx.down = false
		ctx.dragPanels(ev.Pos)
		for _, ps := range ctx.panels {
			ps.dragging = false
		}
	}
}

// dragPanels moves the edge of any panel being dragged to pos.
func (ctx *Context) dragPanels(pos image.Point) {
	for _, ps := range ctx.panels {
		if ps.dragging {
			ps.width = ctx.clampWidth(pos.X - ps.left)
			ps.edge = ps.left + ps.width
		}
	}
}

// clampWidth clamps a side panel width so that both the panel and the
// remaining viewport are at least MinWidth wide.
func (ctx *Context) clampWidth(w int) int {
	lo := ctx.cfg.MinWidth
	hi := max(lo, ctx.screen.Dx()-lo)
	return min(max(w, lo), hi)
}

// AvailableRect returns the part of the screen not yet taken by panels.
func (ctx *Context) AvailableRect() image.Rectangle {
	return ctx.avail
}

// RegisterTexture registers a native texture of the rendering engine
// for drawing with [UI.Image] in the current frame. It is freed when
// the next frame begins.
func (ctx *Context) RegisterTexture(tex any) TextureID {
	id := ctx.newTexture(Texture{Native: tex})
	ctx.native = append(ctx.native, id)
	return id
}

func (ctx *Context) newTexture(tx Texture) TextureID {
	ctx.nextID++
	id := ctx.nextID
	ctx.textures[id] = tx
	ctx.set[id] = tx
	return id
}

func (ctx *Context) freeTexture(id TextureID) {
	delete(ctx.textures, id)
	if _, ok := ctx.set[id]; ok {
		// never delivered, so nothing to free
		delete(ctx.set, id)
		return
	}
	ctx.free = append(ctx.free, id)
}

// textTexture returns the texture of the given text, rendering it the
// first time the text is used.
func (ctx *Context) textTexture(s string) TextureID {
	id, ok := ctx.textIDs[s]
	if !ok {
		id = ctx.newTexture(Texture{Image: ctx.text.render(s, ctx.Style.Text)})
		ctx.textIDs[s] = id
	}
	ctx.textUsed[id] = true
	return id
}

// End ends the frame and returns its output. Text textures that were not
// used in this frame are freed.
func (ctx *Context) End() Output {
	for s, id := range ctx.textIDs {
		if !ctx.textUsed[id] {
			delete(ctx.textIDs, s)
			ctx.freeTexture(id)
		}
	}
	out := Output{
		Shapes:        ctx.shapes,
		TexturesDelta: TexturesDelta{Set: ctx.set, Free: ctx.free},
		Screen:        ctx.screen,
	}
	ctx.shapes = nil
	ctx.set = map[TextureID]Texture{}
	ctx.free = nil
	ctx.inFrame = false
	ctx.frame++
	return out
}

func (ctx *Context) addShape(s Shape) {
	ctx.shapes = append(ctx.shapes, s)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
