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
	"math"
	"strings"
)

// Alignment describes the horizontal placement of lines in a paragraph.
type Alignment int

// These are the supported alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Style describes how the text of a paragraph is set.
type Style struct {
	Font    Font
	Size    float64
	Leading float64
	Align   Alignment
}

// Paragraph is a block of text, broken into lines to fit the available
// width.
//
// The text is taken verbatim: no markup is interpreted.  Runs of white
// space, including newlines, separate words and are otherwise ignored.
type Paragraph struct {
	Text  string
	Style *Style

	lines []string
	fixed bool // lines were set by Split and must not be re-broken
	width float64
}

// NewParagraph returns a new paragraph showing text in the given style.
func NewParagraph(text string, style *Style) *Paragraph {
	return &Paragraph{Text: text, Style: style}
}

// Lines returns the lines computed by the most recent call to Wrap.
func (p *Paragraph) Lines() []string {
	return p.lines
}

// Wrap implements the [Flowable] interface.
// The paragraph uses the full available width, the height is
// the number of lines times the leading.
func (p *Paragraph) Wrap(availWidth, availHeight float64) (float64, float64) {
	if !p.fixed {
		p.lines = p.Style.breakLines(p.Text, availWidth)
	}
	p.width = availWidth
	return availWidth, float64(len(p.lines)) * p.Style.Leading
}

// Split implements the [Splitter] interface.
// The paragraph is split between lines.
func (p *Paragraph) Split(availWidth, availHeight float64) (Flowable, Flowable, bool) {
	p.Wrap(availWidth, availHeight)

	n := int(math.Floor(availHeight/p.Style.Leading + 1e-9))
	if n < 1 {
		return nil, nil, false
	}
	if n >= len(p.lines) {
		return p, nil, true
	}

	head := &Paragraph{
		Text:  strings.Join(p.lines[:n], " "),
		Style: p.Style,
		lines: p.lines[:n:n],
		fixed: true,
	}
	tail := &Paragraph{
		Text:  strings.Join(p.lines[n:], " "),
		Style: p.Style,
		lines: p.lines[n:],
		fixed: true,
	}
	return head, tail, true
}

// Draw implements the [Flowable] interface.
// The first baseline is placed one ascent below the top of the block.
func (p *Paragraph) Draw(c Canvas, x, y float64) error {
	st := p.Style
	top := y + float64(len(p.lines))*st.Leading
	base := top - st.Font.Ascent(st.Size)
	for _, line := range p.lines {
		xPos := x
		switch st.Align {
		case AlignCenter:
			xPos += (p.width - st.Font.Width(line, st.Size)) / 2
		case AlignRight:
			xPos += p.width - st.Font.Width(line, st.Size)
		}
		c.ShowText(st.Font, st.Size, xPos, base, line)
		base -= st.Leading
	}
	return nil
}
