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

// Package flow places blocks of content on pages.
//
// A [Flowable] is asked for its size given the available width (Wrap), and
// is later asked to draw itself at a position chosen by the layout engine
// (Draw).  A [Frame] stacks flowables from top to bottom and starts new
// pages as needed.  Drawing goes through the small [Canvas] interface, so
// that layouts can be recorded and inspected (see [Recorder]) before they
// are written to a PDF file.
//
// The following flowables are provided:
//
//   - [Spacer]: a fixed amount of vertical space
//   - [Paragraph]: a block of text, broken into lines
//   - [Scaled]: a [Graphic], stretched to fill the available width
package flow
