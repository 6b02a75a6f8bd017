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

// Package sheet assembles the contents of a WiFi access sheet.
//
// A sheet shows, from top to bottom, the SSID, the password, a QR code
// which phones can scan to join the network, and an optional message.
package sheet

import (
	"seehuhn.de/go/wifiqr"
	"seehuhn.de/go/wifiqr/flow"
	"seehuhn.de/go/wifiqr/internal/metrics"
	"seehuhn.de/go/wifiqr/qr"
)

// Paper size (A5) and page margins, in PDF units.
const (
	PaperWidth  = 420.945
	PaperHeight = 595.276

	Margin  = 72
	Padding = 6
)

// SpacerHeight is the vertical space around the QR code.
const SpacerHeight = 10

// DefaultStyle is used for all text on the sheet.
var DefaultStyle = &flow.Style{
	Font:    metrics.GoBold,
	Size:    18,
	Leading: 20,
	Align:   flow.AlignCenter,
}

// Options control the appearance of a sheet.
// The zero value selects the defaults.
type Options struct {
	// Style is used for all text.  If nil, DefaultStyle is used.
	Style *flow.Style

	// Level is the error correction level of the QR code.
	Level qr.Level
}

// Build returns the blocks of a sheet, in order:
// the SSID line, the password line, a spacer, the QR code, and,
// if message is not empty, another spacer and the message.
//
// The message is shown verbatim.
func Build(c *wifiqr.Credentials, message string, opt *Options) ([]flow.Flowable, error) {
	if opt == nil {
		opt = &Options{}
	}
	style := opt.Style
	if style == nil {
		style = DefaultStyle
	}

	symbol, err := qr.New(c.Payload(), opt.Level)
	if err != nil {
		return nil, err
	}

	parts := []flow.Flowable{
		flow.NewParagraph("SSID: "+c.SSID, style),
		flow.NewParagraph("Password: "+c.Password, style),
		&flow.Spacer{Height: SpacerHeight},
		flow.NewScaled(symbol),
	}
	if message != "" {
		parts = append(parts,
			&flow.Spacer{Height: SpacerHeight},
			flow.NewParagraph(message, style),
		)
	}
	return parts, nil
}

// glyphChecker is implemented by fonts which can report characters
// they cannot show.
type glyphChecker interface {
	Missing(text string) []rune
}

// Unsupported returns the characters of the sheet's text which the font
// cannot show, in order of first occurrence.  Such characters are still
// written to the sheet, but usually appear as empty boxes.
func Unsupported(c *wifiqr.Credentials, message string, opt *Options) []rune {
	style := DefaultStyle
	if opt != nil && opt.Style != nil {
		style = opt.Style
	}
	F, ok := style.Font.(glyphChecker)
	if !ok {
		return nil
	}
	return F.Missing(c.SSID + " " + c.Password + " " + message)
}

// Frame returns the area of an A5 page which is filled by the sheet.
func Frame() *flow.Frame {
	return flow.NewFrame(PaperWidth, PaperHeight, Margin, Padding)
}

// Layout builds the sheet and places its blocks on A5 pages.
// Usually the result is a single page; long messages continue on
// further pages.
func Layout(c *wifiqr.Credentials, message string, opt *Options) ([]*flow.Page, error) {
	parts, err := Build(c, message, opt)
	if err != nil {
		return nil, err
	}
	return Frame().Layout(parts)
}
