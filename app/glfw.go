// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MindSwipe/r3e/gui"
)

// GLFWSource is an [EventSource] for a glfw window. Pointer positions
// are converted to framebuffer pixels.
type GLFWSource struct {
	win     *glfw.Window
	pointer image.Point
	events  []Event
}

// NewGLFWSource returns a new [GLFWSource] that installs its callbacks
// on the given window.
func NewGLFWSource(win *glfw.Window) *GLFWSource {
	src := &GLFWSource{win: win}
	win.SetCloseCallback(func(w *glfw.Window) {
		src.events = append(src.events, CloseRequested{})
	})
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		src.events = append(src.events, Resized{Size: image.Point{width, height}})
	})
	win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		src.pointer = src.toPixels(x, y)
		src.events = append(src.events, Input{Event: gui.PointerMoved{Pos: src.pointer}})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var b gui.Buttons
		switch button {
		case glfw.MouseButtonLeft:
			b = gui.Left
		case glfw.MouseButtonRight:
			b = gui.Right
		case glfw.MouseButtonMiddle:
			b = gui.Middle
		default:
			return
		}
		if action == glfw.Repeat {
			return
		}
		src.events = append(src.events, Input{Event: gui.PointerButton{Pos: src.pointer, Button: b, Pressed: action == glfw.Press}})
	})
	return src
}

// toPixels converts window coordinates to framebuffer pixels,
// which differ on high DPI screens.
func (src *GLFWSource) toPixels(x, y float64) image.Point {
	ww, wh := src.win.GetSize()
	fw, fh := src.win.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		x *= float64(fw) / float64(ww)
		y *= float64(fh) / float64(wh)
	}
	return image.Point{int(x), int(y)}
}

// Poll processes pending glfw events and returns them.
func (src *GLFWSource) Poll() []Event {
	glfw.PollEvents()
	evs := src.events
	src.events = nil
	return evs
}
