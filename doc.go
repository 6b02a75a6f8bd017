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

// Package wifiqr formats the strings which phones recognise as "join this
// WiFi network" when they are scanned from a QR code.
//
// The payload has the form
//
//	WIFI:S:<ssid>;T:WPA2;P:<password>;;
//
// The sub-packages turn such a payload into a printable sheet:
// [seehuhn.de/go/wifiqr/qr] encodes the QR symbol,
// [seehuhn.de/go/wifiqr/flow] lays out blocks of text and graphics on a page,
// and [seehuhn.de/go/wifiqr/sheet] assembles the blocks of a sheet.
// The command wifi-sheet writes the result to a PDF file.
package wifiqr
