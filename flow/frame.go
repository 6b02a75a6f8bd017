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
)

// ErrTooLarge indicates that a flowable does not fit on an empty page.
var ErrTooLarge = errors.New("flowable too large for the frame")

// Frame is the area of a page which is filled with flowables.
type Frame struct {
	// X and Y give the lower-left corner of the frame on the page.
	X, Y float64

	Width, Height float64
}

// NewFrame returns the frame for the given paper size.
// The margin is removed on all four sides of the paper, and the padding
// is removed on all four sides of the remaining area.
func NewFrame(paperWidth, paperHeight, margin, padding float64) *Frame {
	inset := margin + padding
	return &Frame{
		X:      inset,
		Y:      inset,
		Width:  paperWidth - 2*inset,
		Height: paperHeight - 2*inset,
	}
}

// Placement records where a flowable was put on a page.
type Placement struct {
	Flowable Flowable

	// X and Y give the lower-left corner of the flowable.
	X, Y float64

	Width, Height float64
}

// Page is the result of laying out flowables in a frame.
type Page struct {
	Items []Placement
}

// Draw draws all flowables on the page.
func (p *Page) Draw(c Canvas) error {
	for i, item := range p.Items {
		err := item.Flowable.Draw(c, item.X, item.Y)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// Layout stacks the flowables from top to bottom, starting a new page
// whenever the next flowable does not fit into the remaining space.
//
// Flowables which implement [Splitter] are split when only part of them
// fits.  Spacers at the top of the second and later pages are dropped.
// If a flowable does not fit on an empty page, Layout returns an error
// wrapping [ErrTooLarge].
func (f *Frame) Layout(items []Flowable) ([]*Page, error) {
	const ε = 1e-6

	queue := append([]Flowable(nil), items...)
	pages := []*Page{{}}
	page := pages[0]
	top := f.Y + f.Height

	for len(queue) > 0 {
		item := queue[0]

		if _, isSpacer := item.(*Spacer); isSpacer && len(page.Items) == 0 && len(pages) > 1 {
			queue = queue[1:]
			continue
		}

		avail := top - f.Y
		w, h := item.Wrap(f.Width, avail)
		if h <= avail+ε {
			x := f.X
			if w < f.Width {
				x += (f.Width - w) / 2
			}
			page.Items = append(page.Items, Placement{
				Flowable: item,
				X:        x,
				Y:        top - h,
				Width:    w,
				Height:   h,
			})
			top -= h
			queue = queue[1:]
			continue
		}

		if s, ok := item.(Splitter); ok {
			head, tail, ok := s.Split(f.Width, avail)
			if ok && tail != nil {
				// head goes on this page, tail starts the next one
				hw, hh := head.Wrap(f.Width, avail)
				page.Items = append(page.Items, Placement{
					Flowable: head,
					X:        f.X + max(0, f.Width-hw)/2,
					Y:        top - hh,
					Width:    hw,
					Height:   hh,
				})
				queue = append([]Flowable{tail}, queue[1:]...)

				page = &Page{}
				pages = append(pages, page)
				top = f.Y + f.Height
				continue
			}
		}

		if len(page.Items) == 0 {
			return nil, fmt.Errorf("%T of height %.1f in frame of height %.1f: %w",
				item, h, f.Height, ErrTooLarge)
		}
		page = &Page{}
		pages = append(pages, page)
		top = f.Y + f.Height
	}

	return pages, nil
}
