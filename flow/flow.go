// seehuhn.de/go/wifiqr - printable access sheets for WiFi networks
// Copyright (C) 2026  The wifiqr authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package flow

import (
	"seehuhn.de/go/geom/matrix"
)

// Canvas is the surface flowables draw on.
// Coordinates are in PDF units, with the origin in the bottom-left corner
// and y increasing upwards.
type Canvas interface {
	PushGraphicsState()
	PopGraphicsState()

	// Transform modifies the current transformation matrix by
	// pre-multiplying m.
	Transform(m matrix.Matrix)

	Rectangle(x, y, width, height float64)
	Fill()

	// ShowText draws a single line of text with the baseline starting
	// at (x, y).
	ShowText(F Font, size, x, y float64, text string)
}

// Font provides the metrics needed to lay out text.
type Font interface {
	// Width returns the advance width of the text, set at the given size.
	Width(text string, size float64) float64

	// Ascent returns the height of the ascenders above the baseline,
	// for the given font size.
	Ascent(size float64) float64
}

// A Flowable is a block of content which the layout engine places on a page
// without the caller computing coordinates.
//
// Wrap is called first, to negotiate the size of the block.  Draw then
// renders the block with its bottom-left corner at (x, y), using the size
// returned by the most recent call to Wrap.
type Flowable interface {
	Wrap(availWidth, availHeight float64) (width, height float64)
	Draw(c Canvas, x, y float64) error
}

// A Splitter is a Flowable which can be broken across pages.
//
// Split returns a head which fits into the given area and a tail
// containing the remaining content.  If no non-empty head fits,
// ok is false.
type Splitter interface {
	Flowable
	Split(availWidth, availHeight float64) (head, tail Flowable, ok bool)
}

// Spacer is a fixed amount of empty space.
type Spacer struct {
	Width, Height float64
}

// Wrap implements the [Flowable] interface.
func (s *Spacer) Wrap(availWidth, availHeight float64) (float64, float64) {
	return s.Width, s.Height
}

// Draw implements the [Flowable] interface.
func (s *Spacer) Draw(Canvas, float64, float64) error {
	return nil
}
