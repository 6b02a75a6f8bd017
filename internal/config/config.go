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

package config

import (
	"errors"

	"golang.org/x/text/language"

	"seehuhn.de/go/wifiqr"
	"seehuhn.de/go/wifiqr/internal/pdfout"
	"seehuhn.de/go/wifiqr/qr"
	"seehuhn.de/go/wifiqr/sheet"
)

// ErrMissingOutput is reported by Validate when no output file is given.
var ErrMissingOutput = errors.New("missing output file name")

// Config represents the settings for one access sheet.
type Config struct {
	// SSID is the name of the network.
	SSID string

	// Password is the network password.
	Password string

	// PasswordStdin, if set, reads the password from standard input
	// instead of using Password.
	PasswordStdin bool

	// Output is the name of the PDF file to write.
	Output string

	// Message is an optional note printed below the QR code.
	Message string

	// Security is the authentication type announced in the QR code.
	Security wifiqr.Security

	// Hidden marks networks which do not broadcast their SSID.
	Hidden bool

	// Escape enables backslash escaping of special characters
	// in the QR code payload.
	Escape bool

	// Level is the error correction level of the QR code.
	Level qr.Level

	// Lang is the language of the text on the sheet.
	Lang language.Tag

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Security: wifiqr.WPA2,
		Level:    qr.Low,
		Lang:     language.English,
	}
}

// Validate checks that an output file is given.
// SSID, password and message are used as they are, empty values included.
func (c *Config) Validate() error {
	if c.Output == "" {
		return ErrMissingOutput
	}
	return nil
}

// Credentials returns the network settings encoded in the QR code.
func (c *Config) Credentials() *wifiqr.Credentials {
	return &wifiqr.Credentials{
		SSID:     c.SSID,
		Password: c.Password,
		Security: c.Security,
		Hidden:   c.Hidden,
		Escape:   c.Escape,
	}
}

// SheetOptions returns the options used to lay out the sheet.
func (c *Config) SheetOptions() *sheet.Options {
	return &sheet.Options{Level: c.Level}
}

// OutputOptions returns the metadata for the PDF file.
func (c *Config) OutputOptions(creator string) *pdfout.Options {
	return &pdfout.Options{
		Title:   "WiFi: " + c.SSID,
		Creator: creator,
		Lang:    c.Lang,
	}
}
