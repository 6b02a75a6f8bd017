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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(420.945, 595.276, 72, 6)
	want := &Frame{X: 78, Y: 78, Width: 264.945, Height: 439.276}
	if d := cmp.Diff(want, f, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("unexpected frame (-want +got):\n%s", d)
	}
}

func TestLayoutStack(t *testing.T) {
	f := &Frame{X: 10, Y: 20, Width: 100, Height: 200}
	a := &box{w: 100, h: 30}
	s := &Spacer{Height: 10}
	b := &box{w: 40, h: 50}

	pages, err := f.Layout([]Flowable{a, s, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}

	want := []Placement{
		{Flowable: a, X: 10, Y: 190, Width: 100, Height: 30},
		{Flowable: s, X: 60, Y: 180, Width: 0, Height: 10},
		{Flowable: b, X: 40, Y: 130, Width: 40, Height: 50},
	}
	if d := cmp.Diff(want, pages[0].Items, cmp.AllowUnexported(box{})); d != "" {
		t.Errorf("unexpected placements (-want +got):\n%s", d)
	}
}

func TestLayoutPageBreak(t *testing.T) {
	f := &Frame{Width: 100, Height: 100}
	a := &box{w: 100, h: 60}
	s := &Spacer{Height: 10}
	b := &box{w: 100, h: 60}

	pages, err := f.Layout([]Flowable{a, s, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if n := len(pages[0].Items); n != 2 {
		t.Errorf("first page has %d items, want 2", n)
	}
	second := pages[1].Items
	if len(second) != 1 || second[0].Flowable != b || second[0].Y != 40 {
		t.Errorf("unexpected second page: %+v", second)
	}
}

// A spacer which ends up at the top of a new page is dropped.
func TestLayoutDropsSpacerAtTop(t *testing.T) {
	f := &Frame{Width: 100, Height: 100}
	a := &box{w: 100, h: 95}
	s := &Spacer{Height: 10}
	b := &box{w: 100, h: 20}

	pages, err := f.Layout([]Flowable{a, s, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	second := pages[1].Items
	if len(second) != 1 || second[0].Flowable != b || second[0].Y != 80 {
		t.Errorf("unexpected second page: %+v", second)
	}
}

func TestLayoutSplitsParagraph(t *testing.T) {
	f := &Frame{Width: 20, Height: 50}
	a := &box{w: 20, h: 20}
	p := NewParagraph("aaaa bbbb cccc dddd eeee ffff gggg hhhh iiii", testStyle)

	pages, err := f.Layout([]Flowable{a, p})
	if err != nil {
		t.Fatal(err)
	}

	var got [][]string
	for i, page := range pages {
		var lines []string
		for _, item := range page.Items {
			if item.Y < f.Y-1e-9 {
				t.Errorf("page %d: item below the frame at y=%g", i, item.Y)
			}
			if para, ok := item.Flowable.(*Paragraph); ok {
				lines = append(lines, para.Lines()...)
			}
		}
		got = append(got, lines)
	}
	want := [][]string{
		{"aaaa", "bbbb"},
		{"cccc", "dddd", "eeee", "ffff"},
		{"gggg", "hhhh", "iiii"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected lines per page (-want +got):\n%s", d)
	}
}

func TestLayoutTooLarge(t *testing.T) {
	f := &Frame{Width: 100, Height: 100}
	_, err := f.Layout([]Flowable{&box{w: 10, h: 10}, &box{w: 100, h: 101}})
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

// The scaled graphic keeps its full width when it is moved to a new page.
func TestLayoutScaled(t *testing.T) {
	f := NewFrame(420.945, 595.276, 72, 6)
	s := NewScaled(&unitSquares{bbox: rect.Rect{URx: 29, URy: 29}})
	pages, err := f.Layout([]Flowable{&Spacer{Height: 300}, s})
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	item := pages[1].Items[0]
	if item.Width != f.Width || math.Abs(item.Height-f.Width) > 1e-9 {
		t.Errorf("unexpected size %g x %g", item.Width, item.Height)
	}
}
