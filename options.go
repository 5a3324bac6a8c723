// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package xyscope

import (
	"github.com/xyscope/xyscope/raster"
	"github.com/xyscope/xyscope/strokefont"
)

// Options are optional arguments to New.
type Options struct {
	// Capacity is the number of display list slots.
	//
	// A zero value means raster.DefaultCapacity.
	Capacity int

	// GraphicsIntensity is the initial intensity of shapes, 0 to 255.
	//
	// A zero value means raster.DefaultIntensity. Use SetGraphicsIntensity
	// for an intensity of 0.
	GraphicsIntensity int

	// TextIntensity is the initial intensity of text, 0 to 255.
	//
	// A zero value means raster.DefaultIntensity.
	TextIntensity int

	// Spacing is the initial advance mode.
	//
	// A zero value means MonoTight. Use SetSpacing for proportional text.
	Spacing Spacing

	// TextSize is the initial glyph cell height.
	//
	// A zero value means 50.
	TextSize int

	// LeftMargin and RightMargin bound text lines. A line wraps to
	// LeftMargin when the next cell would cross RightMargin.
	//
	// Zero values mean 0 and raster.MaxCoord.
	LeftMargin, RightMargin int

	// Font is the stroke font for text.
	//
	// A nil value means strokefont.Default().
	Font *strokefont.Font

	// Charset maps runes to character codes.
	//
	// A nil value means strokefont.Latin1.
	Charset *strokefont.Charset

	// ArcAlgorithm selects how circles and ellipses are generated.
	//
	// A zero value means raster.ArcAngleStep.
	ArcAlgorithm raster.ArcAlgorithm
}

func (o *Options) capacity() int {
	if o != nil && o.Capacity > 0 {
		return o.Capacity
	}
	return raster.DefaultCapacity
}

func intensity(v int) int {
	if v > 0 && v <= 255 {
		return v
	}
	return raster.DefaultIntensity
}

func (o *Options) graphicsIntensity() int {
	if o != nil {
		return intensity(o.GraphicsIntensity)
	}
	return raster.DefaultIntensity
}

func (o *Options) textIntensity() int {
	if o != nil {
		return intensity(o.TextIntensity)
	}
	return raster.DefaultIntensity
}

func (o *Options) spacing() Spacing {
	if o != nil && o.Spacing > 0 && o.Spacing.Valid() {
		return o.Spacing
	}
	return MonoTight
}

func (o *Options) textSize() int {
	if o != nil && o.TextSize > 0 {
		return o.TextSize
	}
	return 50
}

func (o *Options) margins() (left, right int) {
	left, right = 0, raster.MaxCoord
	if o != nil {
		if o.LeftMargin > 0 {
			left = o.LeftMargin
		}
		if o.RightMargin > 0 {
			right = o.RightMargin
		}
	}
	return left, right
}

func (o *Options) font() *strokefont.Font {
	if o != nil && o.Font != nil {
		return o.Font
	}
	return strokefont.Default()
}

func (o *Options) charset() *strokefont.Charset {
	if o != nil && o.Charset != nil {
		return o.Charset
	}
	return strokefont.Latin1
}

func (o *Options) arcAlgorithm() raster.ArcAlgorithm {
	if o != nil {
		return o.ArcAlgorithm
	}
	return raster.ArcAngleStep
}

// PrintOptions control Print.
type PrintOptions struct {
	// Underline draws an underscore in every character cell.
	Underline bool
}

// NumberOptions control PrintNumber and FormatNumber.
type NumberOptions struct {
	// DecimalPlaces is the number of fractional digits. Zero prints the
	// integer part only, without a decimal point. Values outside 0 to
	// MaxDecimalPlaces mean DefaultDecimalPlaces.
	DecimalPlaces int

	// Underline draws an underscore in every character cell.
	Underline bool
}

const (
	MaxDecimalPlaces     = 10
	DefaultDecimalPlaces = 2
)

func (o NumberOptions) places() int {
	if o.DecimalPlaces < 0 || o.DecimalPlaces > MaxDecimalPlaces {
		return DefaultDecimalPlaces
	}
	return o.DecimalPlaces
}
