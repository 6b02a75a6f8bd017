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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func TestScaledWrap(t *testing.T) {
	g := &unitSquares{bbox: rect.Rect{URx: 29, URy: 29}}
	for _, ratio := range []float64{1, 0.5, 2, 1.25, 0.001} {
		for _, avail := range [][2]float64{
			{264.945, 439.276},
			{100, 0},
			{100, 1e6},
			{0, 50},
		} {
			t.Run(fmt.Sprintf("%g-%g-%g", ratio, avail[0], avail[1]), func(t *testing.T) {
				s := &Scaled{Graphic: g, Ratio: ratio}
				w, h := s.Wrap(avail[0], avail[1])
				if w != avail[0] {
					t.Errorf("width: got %g, want %g", w, avail[0])
				}
				if h != ratio*avail[0] {
					t.Errorf("height: got %g, want %g", h, ratio*avail[0])
				}
			})
		}
	}
}

func TestScaledDefaultRatio(t *testing.T) {
	g := &unitSquares{bbox: rect.Rect{URx: 10, URy: 20}}

	s := NewScaled(g)
	w, h := s.Wrap(200, 50)
	if w != 200 || h != 200 {
		t.Errorf("NewScaled: got (%g, %g), want (200, 200)", w, h)
	}

	s = &Scaled{Graphic: g}
	w, h = s.Wrap(120, 50)
	if w != 120 || h != 120 {
		t.Errorf("zero ratio: got (%g, %g), want (120, 120)", w, h)
	}
}

func TestScaledDraw(t *testing.T) {
	g := &unitSquares{bbox: rect.Rect{URx: 29, URy: 29}, n: 2}
	s := NewScaled(g)
	s.Wrap(290, 10)

	rec := &Recorder{}
	err := s.Draw(rec, 10, 20)
	if err != nil {
		t.Fatal(err)
	}

	want := []Op{
		{Name: OpPush},
		{Name: OpTransform, Args: []float64{10, 0, 0, 10, 10, 20}},
		{Name: OpRectangle, Args: []float64{0, 0, 1, 1}},
		{Name: OpRectangle, Args: []float64{1, 1, 1, 1}},
		{Name: OpFill},
		{Name: OpPop},
	}
	if d := cmp.Diff(want, rec.Ops); d != "" {
		t.Errorf("unexpected operations (-want +got):\n%s", d)
	}
}

// The graphic is stretched independently in both directions, and the
// lower-left corner of its bounding box is mapped to the drawing position.
func TestScaledDrawOffsetBBox(t *testing.T) {
	g := &unitSquares{bbox: rect.Rect{LLx: 2, LLy: 4, URx: 12, URy: 9}}
	s := &Scaled{Graphic: g, Ratio: 0.5}
	s.Wrap(100, 1)

	rec := &Recorder{}
	err := s.Draw(rec, 50, 60)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{10, 0, 0, 10, 50 - 20, 60 - 40}
	if d := cmp.Diff(want, rec.Ops[1].Args); d != "" {
		t.Errorf("unexpected transform (-want +got):\n%s", d)
	}
}

func TestScaledEmptyBounds(t *testing.T) {
	for _, bbox := range []rect.Rect{
		{},
		{URx: 10},
		{URy: 10},
		{LLx: 5, LLy: 0, URx: 5, URy: 7},
	} {
		s := NewScaled(&unitSquares{bbox: bbox, n: 1})
		s.Wrap(100, 100)

		rec := &Recorder{}
		err := s.Draw(rec, 0, 0)
		if !errors.Is(err, ErrEmptyBounds) {
			t.Errorf("%v: expected ErrEmptyBounds, got %v", bbox, err)
		}
		if len(rec.Ops) != 0 {
			t.Errorf("%v: %d operations drawn", bbox, len(rec.Ops))
		}
	}
}
