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
	"unicode/utf8"

	"seehuhn.de/go/dag"
)

// A token is a word, or a piece of a word which is too wide for a line.
type token struct {
	text  string
	width float64

	// glued is set for the second and later pieces of a split word.
	// No space is inserted before a glued token.
	glued bool
}

// breakLines breaks text into lines of at most the given width.
//
// Line breaks are chosen to minimise the sum of the squared amounts of
// unused space over all lines, so that centered text gets lines of similar
// length.
func (st *Style) breakLines(text string, width float64) []string {
	tokens := st.tokenize(text, width)
	if len(tokens) == 0 {
		return nil
	}

	g := &breakGraph{
		tokens:     tokens,
		spaceWidth: st.Font.Width(" ", st.Size),
		width:      width,
	}
	ee, err := dag.ShortestPath[int, int](g, len(tokens))
	if err != nil {
		// every vertex has an outgoing edge, so a path always exists
		panic(err)
	}

	lines := make([]string, 0, len(ee))
	pos := 0
	for _, e := range ee {
		b := &strings.Builder{}
		for i, tok := range tokens[pos : pos+e] {
			if i > 0 && !tok.glued {
				b.WriteByte(' ')
			}
			b.WriteString(tok.text)
		}
		lines = append(lines, b.String())
		pos = g.To(pos, e)
	}
	return lines
}

// tokenize splits text into words.  Words wider than the line width are
// cut between characters, so that each piece fits on a line of its own.
func (st *Style) tokenize(text string, width float64) []token {
	var res []token
	for _, word := range strings.Fields(text) {
		w := st.Font.Width(word, st.Size)
		if w <= width {
			res = append(res, token{text: word, width: w})
			continue
		}

		glued := false
		for len(word) > 0 {
			n := st.fit(word, width)
			piece := word[:n]
			res = append(res, token{
				text:  piece,
				width: st.Font.Width(piece, st.Size),
				glued: glued,
			})
			word = word[n:]
			glued = true
		}
	}
	return res
}

// fit returns the length in bytes of the longest prefix of word which fits
// into the given width.  At least one character is always included.
func (st *Style) fit(word string, width float64) int {
	_, n := utf8.DecodeRuneInString(word)
	for n < len(word) {
		_, size := utf8.DecodeRuneInString(word[n:])
		if st.Font.Width(word[:n+size], st.Size) > width {
			break
		}
		n += size
	}
	return n
}

// breakGraph is the graph of possible line breaks.
// Vertex v means that the next line starts with token v.
// An edge e from vertex v places tokens v, ..., v+e-1 on one line.
type breakGraph struct {
	tokens     []token
	spaceWidth float64
	width      float64
}

func (g *breakGraph) AppendEdges(ee []int, v int) []int {
	for e := 1; v+e <= len(g.tokens); e++ {
		if e > 1 && g.lineWidth(v, e) > g.width {
			break
		}
		ee = append(ee, e)
	}
	return ee
}

// Length gives the cost of a line, in units of 0.01 pt².
func (g *breakGraph) Length(v int, e int) int {
	slack := g.width - g.lineWidth(v, e)
	if slack < 0 {
		// a single piece which is wider than the line
		slack = 0
	}
	return int(math.Round(100 * slack * slack))
}

func (g *breakGraph) To(v int, e int) int {
	return v + e
}

func (g *breakGraph) lineWidth(v, e int) float64 {
	w := 0.0
	for i, tok := range g.tokens[v : v+e] {
		if i > 0 && !tok.glued {
			w += g.spaceWidth
		}
		w += tok.width
	}
	return w
}
