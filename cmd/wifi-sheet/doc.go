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

// Wifi-sheet writes a one-page A5 PDF with the login details of a WiFi
// network and a QR code which phones can scan to join the network.
//
// Usage:
//
//	wifi-sheet --ssid NAME --password PASSWORD --output FILE.pdf [flags]
//	wifi-sheet --ssid NAME --password-stdin --output FILE.pdf [flags]
//
// Flags:
//
//	--ssid            name of the network (required)
//	--password        network password
//	--password-stdin  read the password from standard input instead
//	--output          name of the PDF file to write (required)
//	--message         note printed below the QR code
//	--security        authentication type: WEP, WPA, WPA2 (default) or nopass
//	--hidden          the network does not broadcast its SSID
//	--escape          escape special characters in the QR code
//	--level           QR code error correction level: L (default), M, Q or H
//	--lang            language of the text on the sheet (default "en")
//	-v, --verbose     show debug messages
//
// The output file is only replaced once the new sheet has been written
// completely.
package main
