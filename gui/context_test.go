// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindSwipe/r3e/config"
)

var screen = image.Rect(0, 0, 1024, 768)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.New()
	ctx, err := NewContext(&cfg.Panel)
	require.NoError(t, err)
	return ctx
}

// frame runs one frame with the side panel and returns whether the
// button was clicked, along with the output.
func frame(ctx *Context, now time.Duration) (bool, Output) {
	clicked := false
	ctx.Begin(screen, now)
	ctx.SidePanel("Left Panel", func(ui *UI) {
		ui.Label("Test label")
		clicked = ui.Button("Add cube")
	})
	return clicked, ctx.End()
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

func TestLayout(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Begin(screen, 0)
	var panel image.Rectangle
	ctx.SidePanel("Left Panel", func(ui *UI) {
		panel = ui.Rect()
		ui.Label("Test label")
		assert.False(t, ui.Button("Add cube"))
	})
	assert.Equal(t, image.Rect(200, 0, 1024, 768), ctx.AvailableRect())
	assert.Equal(t, image.Rect(8, 8, 192, 760), panel)
	out := ctx.End()
	assert.Equal(t, screen, out.Screen)
	assert.Equal(t, 200, ctx.PanelWidth("Left Panel"))

	lr, ok := ctx.WidgetRect("Test label")
	require.True(t, ok)
	br, ok := ctx.WidgetRect("Add cube")
	require.True(t, ok)
	assert.Equal(t, image.Pt(8, 8), lr.Min)
	assert.Equal(t, 8, br.Min.X)
	assert.Equal(t, lr.Max.Y+ctx.Style.Spacing, br.Min.Y)
	assert.Greater(t, br.Dx(), 0)
	assert.Greater(t, br.Dy(), lr.Dy())

	// panel fill, separator, label text, button fill, button text
	require.Len(t, out.Shapes, 5)
	assert.Equal(t, image.Rect(0, 0, 200, 768), out.Shapes[0].Bounds())
	assert.Equal(t, image.Rect(199, 0, 200, 768), out.Shapes[1].Bounds())
	assert.Equal(t, br, out.Shapes[3].Bounds())
}

func TestCentralPanel(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Begin(screen, 0)
	ctx.SidePanel("Left Panel", func(ui *UI) {})
	rect := ctx.AvailableRect()
	id := ctx.RegisterTexture("scene")
	ctx.CentralPanel(func(ui *UI) {
		assert.Equal(t, rect, ui.Rect())
		ui.Image(id, rect.Size())
		ui.Image(TextureID(999), rect.Size())
	})
	assert.True(t, ctx.AvailableRect().Empty())
	out := ctx.End()

	last := out.Shapes[len(out.Shapes)-1]
	img, ok := last.(*ImageShape)
	require.True(t, ok)
	assert.Equal(t, id, img.Texture)
	assert.Equal(t, rect, img.Rect)
	assert.False(t, img.Blend)
}

func TestButtonClick(t *testing.T) {
	ctx := newTestContext(t)
	clicked, _ := frame(ctx, 0)
	assert.False(t, clicked)

	br, _ := ctx.WidgetRect("Add cube")
	ctx.Input(PointerMoved{Pos: center(br)})
	ctx.Input(PointerButton{Pos: center(br), Button: Left, Pressed: true})
	ctx.Input(PointerButton{Pos: center(br), Button: Left})
	clicked, _ = frame(ctx, time.Millisecond)
	assert.True(t, clicked)

	clicked, _ = frame(ctx, 2*time.Millisecond)
	assert.False(t, clicked)
}

func TestButtonClickAcrossFrames(t *testing.T) {
	ctx := newTestContext(t)
	frame(ctx, 0)
	br, _ := ctx.WidgetRect("Add cube")

	ctx.Input(PointerButton{Pos: center(br), Button: Left, Pressed: true})
	clicked, _ := frame(ctx, time.Millisecond)
	assert.False(t, clicked)

	ctx.Input(PointerButton{Pos: br.Min, Button: Left})
	clicked, _ = frame(ctx, 2*time.Millisecond)
	assert.True(t, clicked)
}

func TestButtonNoClick(t *testing.T) {
	ctx := newTestContext(t)
	frame(ctx, 0)
	br, _ := ctx.WidgetRect("Add cube")
	outside := image.Pt(600, 400)

	// pressed outside, released inside
	ctx.Input(PointerButton{Pos: outside, Button: Left, Pressed: true})
	ctx.Input(PointerButton{Pos: center(br), Button: Left})
	clicked, _ := frame(ctx, time.Millisecond)
	assert.False(t, clicked)

	// pressed inside, released outside
	ctx.Input(PointerButton{Pos: center(br), Button: Left, Pressed: true})
	ctx.Input(PointerButton{Pos: outside, Button: Left})
	clicked, _ = frame(ctx, 2*time.Millisecond)
	assert.False(t, clicked)

	// right button
	ctx.Input(PointerButton{Pos: center(br), Button: Right, Pressed: true})
	ctx.Input(PointerButton{Pos: center(br), Button: Right})
	clicked, _ = frame(ctx, 3*time.Millisecond)
	assert.False(t, clicked)
}

func TestPanelDrag(t *testing.T) {
	ctx := newTestContext(t)
	frame(ctx, 0)

	drag := func(from, to int) {
		ctx.Input(PointerButton{Pos: image.Pt(from, 100), Button: Left, Pressed: true})
		ctx.Input(PointerMoved{Pos: image.Pt(to, 100)})
		ctx.Input(PointerButton{Pos: image.Pt(to, 100), Button: Left})
		frame(ctx, 0)
	}

	drag(201, 300)
	assert.Equal(t, 300, ctx.PanelWidth("Left Panel"))

	drag(300, 2000)
	assert.Equal(t, 1024-64, ctx.PanelWidth("Left Panel"))

	drag(1024-64, -50)
	assert.Equal(t, 64, ctx.PanelWidth("Left Panel"))

	// a drag that does not start at the edge does nothing
	drag(500, 700)
	assert.Equal(t, 64, ctx.PanelWidth("Left Panel"))

	ctx.Begin(screen, 0)
	ctx.SidePanel("Left Panel", func(ui *UI) {})
	assert.Equal(t, 64, ctx.AvailableRect().Min.X)
	ctx.End()
}

func TestPanelClampOnResize(t *testing.T) {
	ctx := newTestContext(t)
	frame(ctx, 0)
	ctx.Begin(image.Rect(0, 0, 150, 100), 0)
	ctx.SidePanel("Left Panel", func(ui *UI) {})
	assert.Equal(t, 150-64, ctx.PanelWidth("Left Panel"))
	assert.Equal(t, image.Rect(150-64, 0, 150, 100), ctx.AvailableRect())
	ctx.End()
}

func TestTexturesDelta(t *testing.T) {
	ctx := newTestContext(t)

	ctx.Begin(screen, 0)
	var id TextureID
	ctx.SidePanel("Left Panel", func(ui *UI) { ui.Label("Test label") })
	id = ctx.RegisterTexture("scene")
	ctx.CentralPanel(func(ui *UI) { ui.Image(id, image.Pt(10, 10)) })
	out := ctx.End()
	require.Len(t, out.TexturesDelta.Set, 2)
	assert.Equal(t, "scene", out.TexturesDelta.Set[id].Native)
	assert.Empty(t, out.TexturesDelta.Free)
	var textID TextureID
	for tid, tx := range out.TexturesDelta.Set {
		if tid != id {
			textID = tid
			require.NotNil(t, tx.Image)
			assert.Equal(t, ctx.text.measure("Test label"), tx.Image.Bounds().Size())
		}
	}

	// the scene texture is freed, the text texture is kept
	ctx.Begin(screen, 0)
	ctx.SidePanel("Left Panel", func(ui *UI) { ui.Label("Test label") })
	id2 := ctx.RegisterTexture("scene")
	assert.NotEqual(t, id, id2)
	out = ctx.End()
	assert.Equal(t, []TextureID{id}, out.TexturesDelta.Free)
	require.Len(t, out.TexturesDelta.Set, 1)
	assert.Contains(t, out.TexturesDelta.Set, id2)

	// the text is no longer shown
	ctx.Begin(screen, 0)
	ctx.SidePanel("Left Panel", func(ui *UI) {})
	out = ctx.End()
	assert.ElementsMatch(t, []TextureID{id2, textID}, out.TexturesDelta.Free)
	assert.Empty(t, out.TexturesDelta.Set)

	ctx.Begin(screen, 0)
	out = ctx.End()
	assert.True(t, out.TexturesDelta.IsEmpty())
}

func TestClock(t *testing.T) {
	ctx := newTestContext(t)
	frame(ctx, 16*time.Millisecond)
	frame(ctx, 33*time.Millisecond)
	assert.Equal(t, 33*time.Millisecond, ctx.Elapsed())
	assert.Equal(t, 17*time.Millisecond, ctx.Delta())
	assert.Equal(t, 2, ctx.Frame())
}
