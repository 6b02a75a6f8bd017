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

package pdfout

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/gofont"

	"seehuhn.de/go/wifiqr/flow"
	"seehuhn.de/go/wifiqr/internal/metrics"
)

// embedded lists the fonts which can be used on a page, together with
// the font files used to embed them.
var embedded = map[*metrics.Face]gofont.Font{
	metrics.GoBold: gofont.Bold,
}

// fontCache holds one font instance per face, shared by all pages of a
// document.
type fontCache map[*metrics.Face]font.Font

func (fc fontCache) get(F flow.Font) (font.Font, error) {
	face, ok := F.(*metrics.Face)
	if !ok {
		return nil, fmt.Errorf("font %v cannot be embedded", F)
	}
	if inst, ok := fc[face]; ok {
		return inst, nil
	}

	id, ok := embedded[face]
	if !ok {
		return nil, fmt.Errorf("font %s cannot be embedded", face)
	}
	inst, err := id.New(nil)
	if err != nil {
		return nil, err
	}
	fc[face] = inst
	return inst, nil
}

// canvas draws onto a PDF page.
// After the first error, all further drawing operations are ignored.
type canvas struct {
	page  *document.Page
	fonts fontCache
	err   error
}

var _ flow.Canvas = (*canvas)(nil)

func (c *canvas) PushGraphicsState() {
	c.page.PushGraphicsState()
}

func (c *canvas) PopGraphicsState() {
	c.page.PopGraphicsState()
}

func (c *canvas) Transform(m matrix.Matrix) {
	c.page.Transform(m)
}

func (c *canvas) Rectangle(x, y, w, h float64) {
	c.page.Rectangle(x, y, w, h)
}

func (c *canvas) Fill() {
	c.page.Fill()
}

func (c *canvas) ShowText(F flow.Font, size, x, y float64, text string) {
	if c.err != nil {
		return
	}
	inst, err := c.fonts.get(F)
	if err != nil {
		c.err = err
		return
	}

	c.page.TextSetFont(inst, size)
	c.page.TextBegin()
	c.page.TextFirstLine(x, y)
	c.page.TextShow(text)
	c.page.TextEnd()
}

// Err returns the first error encountered while drawing.
func (c *canvas) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.page.Err
}
