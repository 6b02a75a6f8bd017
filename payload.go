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

package wifiqr

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Payload returns the WiFi-join string for a WPA2 network.
//
// The SSID and password are substituted verbatim.  Characters which the
// WiFi QR code convention requires to be escaped (";", ":", "\" and so on)
// are passed through unchanged.  Use [Credentials.Payload] with Escape set
// to get escaped output.
func Payload(ssid, password string) string {
	return "WIFI:S:" + ssid + ";T:WPA2;P:" + password + ";;"
}

// Security identifies the authentication type announced in the payload.
type Security int

// These are the supported authentication types.
// The zero value selects WPA2.
const (
	WPA2 Security = iota
	WPA
	WEP
	NoPass
)

var securityNames = map[string]Security{
	"WPA2":   WPA2,
	"WPA":    WPA,
	"WEP":    WEP,
	"nopass": NoPass,
}

// ErrUnknownSecurity is returned by [ParseSecurity] for unsupported names.
var ErrUnknownSecurity = errors.New("unknown security type")

// ParseSecurity converts a security name like "WPA2" or "nopass" into a
// [Security] value.  The comparison ignores case.
func ParseSecurity(name string) (Security, error) {
	for key, sec := range securityNames {
		if strings.EqualFold(key, name) {
			return sec, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSecurity, name)
}

// SecurityNames lists the names accepted by [ParseSecurity], sorted.
func SecurityNames() []string {
	names := maps.Keys(securityNames)
	slices.Sort(names)
	return names
}

func (s Security) String() string {
	for key, sec := range securityNames {
		if sec == s {
			return key
		}
	}
	return fmt.Sprintf("Security(%d)", int(s))
}

// Credentials describe how to join a WiFi network.
type Credentials struct {
	SSID     string
	Password string
	Security Security

	// Hidden marks networks which do not broadcast their SSID.
	Hidden bool

	// Escape, if set, backslash-escapes the special characters of the
	// payload format in the SSID and password.
	Escape bool
}

// Payload returns the WiFi-join string for the credentials.
//
// With the zero values for Security, Hidden and Escape the result
// is the same as for [Payload].
func (c *Credentials) Payload() string {
	ssid, password := c.SSID, c.Password
	if c.Escape {
		ssid = escape(ssid)
		password = escape(password)
	}

	b := &strings.Builder{}
	b.WriteString("WIFI:S:")
	b.WriteString(ssid)
	b.WriteString(";T:")
	b.WriteString(c.Security.String())
	b.WriteString(";")
	if c.Security != NoPass {
		b.WriteString("P:")
		b.WriteString(password)
		b.WriteString(";")
	}
	if c.Hidden {
		b.WriteString("H:true;")
	}
	b.WriteString(";")
	return b.String()
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

func escape(s string) string {
	return escaper.Replace(s)
}

// unescape reverses the escaping applied when Credentials.Escape is set.
// A trailing lone backslash is kept.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	b := &strings.Builder{}
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
