// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for r3e.
// Every field is exposed as a command line flag by the cli package,
// and the defaults reproduce the fixed demo setup exactly.
package config

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Config is the main config struct that contains all of the
// configuration options for r3e.
type Config struct {

	// Window contains the window and presentation surface options.
	Window Window

	// Scene contains the options for the offscreen 3D scene.
	Scene Scene

	// Panel contains the options for the GUI side panel.
	Panel Panel

	// FrameRate is the maximum number of frames per second
	// the event loop produces.
	FrameRate int `default:"60" min:"1"`

	// Debug turns on debug level logging.
	Debug bool `flag:"d,debug"`
}

// Window contains the window and surface configuration.
type Window struct {

	// Title is the title of the top-level window.
	Title string `default:"r3e"`

	// Width is the initial width of the window in screen pixels.
	Width int `default:"1024"`

	// Height is the initial height of the window in screen pixels.
	Height int `default:"768"`

	// PresentMode is the requested surface present mode:
	// mailbox, fifo, fifo-relaxed or immediate.
	PresentMode string `default:"mailbox"`

	// ClearColor is the color of the base screen pass that is drawn
	// underneath the GUI.
	ClearColor string `default:"#000000"`
}

// Size returns the initial window size.
func (w *Window) Size() image.Point {
	return image.Point{w.Width, w.Height}
}

// Scene contains the configuration of the 3D scene: the camera,
// the single directional light, and the cube material.
type Scene struct {

	// ClearColor is the background tint of the offscreen scene render,
	// as RGBA components in 0-1.
	ClearColor math32.Vector4

	// MultiSample is the number of samples per pixel of the
	// offscreen render target.
	MultiSample int `default:"1"`

	// FOV is the vertical field of view of the camera in degrees.
	FOV float32 `default:"60"`

	// Near is the near clipping plane distance.
	Near float32 `default:"0.1"`

	// Far is the far clipping plane distance.
	Far float32 `default:"1000"`

	// Eye is the camera position in world coordinates.
	Eye math32.Vector3

	// Euler is the camera rotation as XYZ Euler angles in radians.
	Euler math32.Vector3

	// LightColor is the color of the directional light,
	// as RGBA components in 0-1.
	LightColor math32.Vector4

	// LightIntensity is the intensity of the directional light.
	LightIntensity float32 `default:"10"`

	// LightDirection is the direction the light travels in.
	// It does not need to be normalized.
	LightDirection math32.Vector3

	// LightDistance is the falloff distance of the directional light.
	LightDistance float32 `default:"400"`

	// CubeColor is the albedo of every cube added to the scene,
	// as RGBA components in 0-1.
	CubeColor math32.Vector4
}

// Panel contains the configuration of the GUI side panel.
type Panel struct {

	// Label is the text of the label shown above the button.
	Label string `default:"Test label"`

	// Button is the text of the button that adds a cube.
	Button string `default:"Add cube"`

	// Width is the initial width of the side panel.
	Width int `default:"200"`

	// MinWidth is the minimum width of the side panel and of the
	// central viewport while dragging the panel edge.
	MinWidth int `default:"64"`

	// FontSize is the font size of panel text in points.
	FontSize float64 `default:"14"`
}

// New returns a new Config with all defaults set.
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Defaults sets all of the default values, including the vector
// fields that cannot be expressed as struct tags.
func (cfg *Config) Defaults() {
	errors.Log(cli.SetFromDefaults(cfg))
	cfg.Scene.Defaults()
}

// Defaults sets the vector and color defaults of the scene.
func (sc *Scene) Defaults() {
	sc.ClearColor.Set(0.10, 0.05, 0.10, 1)
	sc.LightColor.Set(1, 1, 1, 1)
	sc.CubeColor.Set(0, 0.5, 0.5, 1)
	sc.Eye.Set(3, 3, -5)
	sc.Euler.Set(-0.55, 0.5, 0)
	sc.LightDirection.Set(-1, -4, 2)
}

// Validate returns an error describing every invalid field, or nil.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("config: FrameRate must be > 0, got %d", cfg.FrameRate))
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size must be > 0, got %v", cfg.Window.Size()))
	}
	if cfg.Scene.MultiSample <= 0 {
		errs = append(errs, fmt.Errorf("config: MultiSample must be > 0, got %d", cfg.Scene.MultiSample))
	}
	if cfg.Scene.FOV <= 0 || cfg.Scene.FOV >= 180 {
		errs = append(errs, fmt.Errorf("config: FOV must be in (0, 180), got %g", cfg.Scene.FOV))
	}
	if cfg.Scene.Near <= 0 || cfg.Scene.Far <= cfg.Scene.Near {
		errs = append(errs, fmt.Errorf("config: need 0 < Near < Far, got %g, %g", cfg.Scene.Near, cfg.Scene.Far))
	}
	if cfg.Scene.LightDirection == (math32.Vector3{}) {
		errs = append(errs, errors.New("config: LightDirection must not be zero"))
	}
	if cfg.Panel.MinWidth <= 0 || cfg.Panel.Width < cfg.Panel.MinWidth {
		errs = append(errs, fmt.Errorf("config: need 0 < Panel.MinWidth <= Panel.Width, got %d, %d", cfg.Panel.MinWidth, cfg.Panel.Width))
	}
	if cfg.Panel.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("config: Panel.FontSize must be > 0, got %g", cfg.Panel.FontSize))
	}
	if _, err := colors.FromHex(cfg.Window.ClearColor); err != nil {
		errs = append(errs, fmt.Errorf("config: Window.ClearColor: %w", err))
	}
	for _, c := range []struct {
		name string
		v    math32.Vector4
	}{
		{"Scene.ClearColor", cfg.Scene.ClearColor},
		{"Scene.LightColor", cfg.Scene.LightColor},
		{"Scene.CubeColor", cfg.Scene.CubeColor},
	} {
		if !inUnit(c.v) {
			errs = append(errs, fmt.Errorf("config: %s components must be in [0, 1], got %v", c.name, c.v))
		}
	}
	return errors.Join(errs...)
}

func inUnit(v math32.Vector4) bool {
	for _, c := range []float32{v.X, v.Y, v.Z, v.W} {
		if c < 0 || c > 1 {
			return false
		}
	}
	return true
}

// RGBA converts non-premultiplied RGBA components in 0-1 to 8 bits per
// channel, for the GPU libraries that take [color.RGBA].
// The conversion is lossy: 0.5 becomes 128.
func RGBA(v math32.Vector4) color.RGBA {
	return colors.FromNRGBAF32(v.X, v.Y, v.Z, v.W)
}

// Color parses the given hex color, returning black on error.
// Use [Config.Validate] to report invalid colors up front.
func Color(hex string) color.RGBA {
	c, err := colors.FromHex(hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}
