// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gui

import (
	"fmt"
	"image"
)

// Buttons are the pointer buttons.
type Buttons int32

const (
	// Left is the primary button.
	Left Buttons = iota

	// Middle is the middle button or wheel.
	Middle

	// Right is the secondary button.
	Right
)

// Event is a raw input event, in window pixel coordinates.
type Event interface {
	fmt.Stringer

	// Position returns the pointer position of the event.
	Position() image.Point
}

// PointerMoved is sent when the pointer moves.
type PointerMoved struct {
	Pos image.Point
}

func (ev PointerMoved) Position() image.Point { return ev.Pos }

func (ev PointerMoved) String() string {
	return fmt.Sprintf("PointerMoved{%v}", ev.Pos)
}

// PointerButton is sent when a pointer button is pressed or released.
type PointerButton struct {
	Pos     image.Point
	Button  Buttons
	Pressed bool
}

func (ev PointerButton) Position() image.Point { return ev.Pos }

func (ev PointerButton) String() string {
	act := "released"
	if ev.Pressed {
		act = "pressed"
	}
	return fmt.Sprintf("PointerButton{%v %d %s}", ev.Pos, ev.Button, act)
}
