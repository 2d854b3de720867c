// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"image"

	"github.com/MindSwipe/r3e/gui"
)

// Event is a window or loop event handled by the [Driver].
type Event interface {
	fmt.Stringer
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

func (CloseRequested) String() string { return "CloseRequested" }

// Resized is sent when the window framebuffer changes size.
type Resized struct {
	Size image.Point
}

func (ev Resized) String() string { return fmt.Sprintf("Resized{%v}", ev.Size) }

// RedrawRequested is sent once per loop iteration, after all
// pending window events, to produce a frame.
type RedrawRequested struct{}

func (RedrawRequested) String() string { return "RedrawRequested" }

// Input is a raw input event that is forwarded to the GUI.
type Input struct {
	Event gui.Event
}

func (ev Input) String() string { return "Input{" + ev.Event.String() + "}" }

// ControlFlow tells the loop whether to keep going after an event.
type ControlFlow int32

const (
	// Continue keeps the loop running.
	Continue ControlFlow = iota

	// Exit stops the loop. It is terminal.
	Exit
)

func (cf ControlFlow) String() string {
	if cf == Exit {
		return "Exit"
	}
	return "Continue"
}
