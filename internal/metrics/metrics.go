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

// Package metrics measures text set in the Go fonts.
//
// The PDF writer embeds the same font files, so that widths measured here
// agree with the widths of the text on the page.
package metrics

import (
	"fmt"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face holds the metrics of one font.
// Face implements the flow.Font interface.
type Face struct {
	Name string

	font    *sfnt.Font
	ppem    fixed.Int26_6 // one pixel per font design unit
	upem    float64
	ascent  float64 // in font design units
}

// Load parses a TrueType font file.
func Load(name string, ttf []byte) (*Face, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}

	upem := f.UnitsPerEm()
	ppem := fixed.I(int(upem))

	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}

	return &Face{
		Name:   name,
		font:   f,
		ppem:   ppem,
		upem:   float64(upem),
		ascent: toFloat(m.Ascent),
	}, nil
}

// Width returns the advance width of text set at the given size,
// including pair kerning.  Characters which are not in the font are
// measured using the width of the font's .notdef glyph.
func (F *Face) Width(text string, size float64) float64 {
	var buf sfnt.Buffer
	total := 0.0
	prev := sfnt.GlyphIndex(0)
	for i, r := range text {
		gid, err := F.font.GlyphIndex(&buf, r)
		if err != nil {
			gid = 0
		}
		if i > 0 {
			kern, err := F.font.Kern(&buf, prev, gid, F.ppem, font.HintingNone)
			if err == nil {
				total += toFloat(kern)
			}
		}
		adv, err := F.font.GlyphAdvance(&buf, gid, F.ppem, font.HintingNone)
		if err == nil {
			total += toFloat(adv)
		}
		prev = gid
	}
	return total * size / F.upem
}

// Ascent returns the ascent of the font at the given size.
func (F *Face) Ascent(size float64) float64 {
	return F.ascent * size / F.upem
}

// Missing returns the characters of text which the font cannot show,
// without repetitions and in order of first occurrence.
// White space is never reported.
func (F *Face) Missing(text string) []rune {
	var buf sfnt.Buffer
	var res []rune
	seen := map[rune]bool{}
	for _, r := range text {
		if seen[r] || unicode.IsSpace(r) {
			continue
		}
		seen[r] = true
		gid, err := F.font.GlyphIndex(&buf, r)
		if err != nil || gid == 0 {
			res = append(res, r)
		}
	}
	return res
}

func (F *Face) String() string {
	return F.Name
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// GoBold is the font used for all text on a sheet.
var GoBold = mustLoad("Go-Bold", gobold.TTF)

func mustLoad(name string, ttf []byte) *Face {
	F, err := Load(name, ttf)
	if err != nil {
		panic(err) // the embedded font files are known to be valid
	}
	return F
}
