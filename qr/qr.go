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

// Package qr turns text into QR code symbols which can be drawn as vector
// graphics.
package qr

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/wifiqr/flow"
)

// Level is the error correction level of a symbol.
type Level int

// These are the four error correction levels of the QR code standard,
// in order of increasing redundancy.
const (
	Low Level = iota
	Medium
	Quartile
	High
)

var levelNames = []string{"L", "M", "Q", "H"}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ErrUnknownLevel is returned by [ParseLevel] for unsupported names.
var ErrUnknownLevel = errors.New("unknown error correction level")

// ParseLevel converts one of "L", "M", "Q" or "H" into a [Level].
// The comparison ignores case.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if strings.EqualFold(n, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownLevel, name)
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case Medium:
		return qrcode.Medium
	case Quartile:
		return qrcode.High
	case High:
		return qrcode.Highest
	default:
		return qrcode.Low
	}
}

// QuietZone is the width of the light border around a symbol, in modules.
const QuietZone = 4

// Symbol is an encoded QR code.
//
// The symbol implements [flow.Graphic].  Its coordinate system has one unit
// per module, with the origin in the lower-left corner of the quiet zone.
type Symbol struct {
	Text    string
	Level   Level
	Version int

	modules [][]bool // modules[row][col], row 0 at the top
}

// New encodes text into a QR code symbol.
// The smallest version which can hold the text is used.
func New(text string, level Level) (*Symbol, error) {
	code, err := qrcode.New(text, level.recovery())
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}

	return &Symbol{
		Text:    text,
		Level:   level,
		Version: code.VersionNumber,
		modules: code.Bitmap(),
	}, nil
}

// Size returns the number of modules along each side of the symbol,
// including the quiet zone.
func (s *Symbol) Size() int {
	return len(s.modules)
}

// Dark reports whether the module in the given row and column is dark.
// Row 0 is at the top.
func (s *Symbol) Dark(row, col int) bool {
	return s.modules[row][col]
}

// BBox implements the [flow.Graphic] interface.
func (s *Symbol) BBox() rect.Rect {
	n := float64(len(s.modules))
	return rect.Rect{URx: n, URy: n}
}

// Draw implements the [flow.Graphic] interface.
//
// Each horizontal run of dark modules is drawn as one rectangle,
// and all rectangles are filled together.
func (s *Symbol) Draw(c flow.Canvas) error {
	n := len(s.modules)
	for row, line := range s.modules {
		y := float64(n - 1 - row)
		col := 0
		for col < len(line) {
			if !line[col] {
				col++
				continue
			}
			start := col
			for col < len(line) && line[col] {
				col++
			}
			c.Rectangle(float64(start), y, float64(col-start), 1)
		}
	}
	c.Fill()
	return nil
}
