// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrNoFormat is returned when the surface reports no texture formats.
	ErrNoFormat = errors.New("bootstrap: surface supports no texture formats")

	// ErrPresentMode is returned for an unknown present mode name.
	ErrPresentMode = errors.New("bootstrap: unknown present mode")
)

// presentModes maps config names to present modes.
var presentModes = map[string]wgpu.PresentMode{
	"mailbox":      wgpu.PresentModeMailbox,
	"fifo":         wgpu.PresentModeFifo,
	"fifo-relaxed": wgpu.PresentModeFifoRelaxed,
	"immediate":    wgpu.PresentModeImmediate,
}

// ParsePresentMode returns the present mode with the given name,
// which is case insensitive.
func ParsePresentMode(name string) (wgpu.PresentMode, error) {
	pm, ok := presentModes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return wgpu.PresentModeFifo, fmt.Errorf("%w %q", ErrPresentMode, name)
	}
	return pm, nil
}

// SelectFormat returns the first of the supported formats.
func SelectFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrNoFormat
	}
	return formats[0], nil
}

// SelectPresentMode returns want if it is one of the supported modes,
// and otherwise FIFO, which every surface supports.
func SelectPresentMode(want wgpu.PresentMode, supported []wgpu.PresentMode) wgpu.PresentMode {
	for _, pm := range supported {
		if pm == want {
			return want
		}
	}
	if want != wgpu.PresentModeFifo {
		slog.Warn("bootstrap: present mode not supported, using fifo", "want", want, "supported", supported)
	}
	return wgpu.PresentModeFifo
}

// SelectAlphaMode returns the first of the supported alpha modes,
// or auto if there are none.
func SelectAlphaMode(supported []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(supported) == 0 {
		return wgpu.CompositeAlphaModeAuto
	}
	return supported[0]
}

// ValidSize returns whether both components of size are > 0.
// Minimized windows report a zero size.
func ValidSize(size image.Point) bool {
	return size.X > 0 && size.Y > 0
}

// ViewFormat returns the sRGB variant of an 8 bit unorm format,
// which [gpu.Surface] renders through, or format itself.
func ViewFormat(format wgpu.TextureFormat) wgpu.TextureFormat {
	switch format {
	case wgpu.TextureFormatBGRA8Unorm:
		return wgpu.TextureFormatBGRA8UnormSrgb
	case wgpu.TextureFormatRGBA8Unorm:
		return wgpu.TextureFormatRGBA8UnormSrgb
	}
	return format
}

// SurfaceConfig returns the configuration of a presentable surface
// used as a render attachment.
func SurfaceConfig(size image.Point, format wgpu.TextureFormat, mode wgpu.PresentMode, alpha wgpu.CompositeAlphaMode) *wgpu.SurfaceConfiguration {
	sc := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: mode,
		AlphaMode:   alpha,
	}
	if vf := ViewFormat(format); vf != format {
		sc.ViewFormats = []wgpu.TextureFormat{vf}
	}
	return sc
}
