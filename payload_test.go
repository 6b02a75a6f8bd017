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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPayload(t *testing.T) {
	cases := []struct {
		ssid, password string
		want           string
	}{
		{"Home", "secret123", "WIFI:S:Home;T:WPA2;P:secret123;;"},
		{"", "", "WIFI:S:;T:WPA2;P:;;"},
		{"Café Gäste", "pässwörd 1", "WIFI:S:Café Gäste;T:WPA2;P:pässwörd 1;;"},
		{"a b", "x=y&z", "WIFI:S:a b;T:WPA2;P:x=y&z;;"},
	}
	for _, c := range cases {
		got := Payload(c.ssid, c.password)
		if got != c.want {
			t.Errorf("Payload(%q, %q) = %q, want %q", c.ssid, c.password, got, c.want)
		}
	}
}

// Special characters are substituted without any escaping.
func TestPayloadLiteral(t *testing.T) {
	got := Payload(`a;b`, `c:d\e`)
	want := `WIFI:S:a;b;T:WPA2;P:c:d\e;;`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCredentialsPayloadDefault(t *testing.T) {
	for _, pair := range [][2]string{
		{"Home", "secret123"},
		{"my;net", `p:w\d`},
		{"", ""},
	} {
		c := &Credentials{SSID: pair[0], Password: pair[1]}
		if d := cmp.Diff(Payload(pair[0], pair[1]), c.Payload()); d != "" {
			t.Errorf("%q: payload mismatch (-want +got):\n%s", pair, d)
		}
	}
}

func TestCredentialsPayloadOptions(t *testing.T) {
	cases := []struct {
		name string
		in   Credentials
		want string
	}{
		{
			name: "wpa",
			in:   Credentials{SSID: "Home", Password: "pw", Security: WPA},
			want: "WIFI:S:Home;T:WPA;P:pw;;",
		},
		{
			name: "wep",
			in:   Credentials{SSID: "Home", Password: "pw", Security: WEP},
			want: "WIFI:S:Home;T:WEP;P:pw;;",
		},
		{
			name: "open",
			in:   Credentials{SSID: "Cafe", Password: "ignored", Security: NoPass},
			want: "WIFI:S:Cafe;T:nopass;;",
		},
		{
			name: "hidden",
			in:   Credentials{SSID: "Home", Password: "pw", Hidden: true},
			want: "WIFI:S:Home;T:WPA2;P:pw;H:true;;",
		},
		{
			name: "escaped",
			in:   Credentials{SSID: `a;b,c`, Password: `x:y\z"`, Escape: true},
			want: `WIFI:S:a\;b\,c;T:WPA2;P:x\:y\\z\";;`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Payload()
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		`;;;`,
		`\`,
		`a\;b`,
		`"quoted", said: he`,
	} {
		if got := unescape(escape(s)); got != s {
			t.Errorf("unescape(escape(%q)) = %q", s, got)
		}
	}
}

func TestParseSecurity(t *testing.T) {
	for _, name := range SecurityNames() {
		sec, err := ParseSecurity(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if sec.String() != name {
			t.Errorf("%s: round trip gave %s", name, sec)
		}
	}

	sec, err := ParseSecurity("wpa2")
	if err != nil || sec != WPA2 {
		t.Errorf("wpa2: got %v, %v", sec, err)
	}
	sec, err = ParseSecurity("NOPASS")
	if err != nil || sec != NoPass {
		t.Errorf("NOPASS: got %v, %v", sec, err)
	}

	_, err = ParseSecurity("WPA3-SAE")
	if !errors.Is(err, ErrUnknownSecurity) {
		t.Errorf("expected ErrUnknownSecurity, got %v", err)
	}
}

func TestSecurityNames(t *testing.T) {
	want := []string{"WEP", "WPA", "WPA2", "nopass"}
	if d := cmp.Diff(want, SecurityNames()); d != "" {
		t.Errorf("unexpected names (-want +got):\n%s", d)
	}
}
