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
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// A Graphic is vector artwork with a fixed bounding box.
// Draw renders the artwork in its own coordinate system, the one in which
// BBox is given.
type Graphic interface {
	BBox() rect.Rect
	Draw(c Canvas) error
}

// ErrEmptyBounds is returned when a graphic with zero width or zero height
// is drawn through a [Scaled] flowable.
var ErrEmptyBounds = errors.New("graphic has an empty bounding box")

// Scaled fits a [Graphic] to the available width of the layout.
//
// The block always uses the full width offered by Wrap, and its height is
// Ratio times the width.  The intrinsic aspect ratio of the graphic is not
// used for sizing: the graphic is stretched independently in x and y to
// fill the block.
type Scaled struct {
	Graphic Graphic

	// Ratio is height divided by width.  Values <= 0 select 1,
	// i.e. a square block.
	Ratio float64

	width, height float64
}

// NewScaled returns a square block showing g.
func NewScaled(g Graphic) *Scaled {
	return &Scaled{Graphic: g, Ratio: 1}
}

// Wrap implements the [Flowable] interface.
// The available height is ignored.
func (s *Scaled) Wrap(availWidth, availHeight float64) (float64, float64) {
	ratio := s.Ratio
	if ratio <= 0 {
		ratio = 1
	}
	s.width = availWidth
	s.height = ratio * availWidth
	return s.width, s.height
}

// Draw implements the [Flowable] interface.
func (s *Scaled) Draw(c Canvas, x, y float64) error {
	M, err := s.transform(x, y)
	if err != nil {
		return err
	}

	c.PushGraphicsState()
	c.Transform(M)
	err = s.Graphic.Draw(c)
	c.PopGraphicsState()
	return err
}

// transform maps the bounding box of the graphic onto the rectangle of the
// negotiated size with lower-left corner (x, y).
func (s *Scaled) transform(x, y float64) (matrix.Matrix, error) {
	bbox := s.Graphic.BBox()
	bw := bbox.URx - bbox.LLx
	bh := bbox.URy - bbox.LLy
	if bw == 0 || bh == 0 {
		return matrix.Matrix{}, ErrEmptyBounds
	}

	sx := s.width / bw
	sy := s.height / bh
	return matrix.Matrix{sx, 0, 0, sy, x - sx*bbox.LLx, y - sy*bbox.LLy}, nil
}
