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

// Package pdfout writes laid out pages to a PDF file.
//
// The output is deterministic: the file does not contain time stamps, and
// the file identifier is derived from the page contents.
package pdfout

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/wifiqr/flow"
)

// Options control metadata and page size of the output.
type Options struct {
	// Paper is the page size.  If nil, document.A5 is used.
	Paper *pdf.Rectangle

	// Title is stored in the document information dictionary
	// and in the XMP metadata.
	Title string

	// Creator names the program which generated the document.
	Creator string

	// Lang is the natural language of the text.
	Lang language.Tag
}

// ErrNoPages is returned when there is nothing to write.
var ErrNoPages = errors.New("no pages")

// Write writes pages as a PDF document to w.
func Write(w io.Writer, pages []*flow.Page, opt *Options) error {
	if len(pages) == 0 {
		return ErrNoPages
	}
	if opt == nil {
		opt = &Options{}
	}
	paper := opt.Paper
	if paper == nil {
		paper = document.A5
	}

	recs := make([]*flow.Recorder, len(pages))
	h := sha256.New()
	for i, page := range pages {
		rec := &flow.Recorder{}
		err := page.Draw(rec)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		_, err = rec.WriteTo(h)
		if err != nil {
			return err
		}
		recs[i] = rec
	}
	sum := h.Sum(nil)

	doc, err := document.WriteMultiPage(w, paper, pdf.V2_0, nil)
	if err != nil {
		return err
	}

	meta := doc.Out.GetMeta()
	meta.ID = [][]byte{sum[:16], sum[:16]}
	meta.Info = &pdf.Info{
		Title:    pdf.TextString(opt.Title),
		Creator:  pdf.TextString(opt.Creator),
		Producer: pdf.TextString(producer),
	}
	if opt.Lang != language.Und {
		meta.Catalog.Lang = opt.Lang
	}

	err = writeXMP(doc.Out, opt)
	if err != nil {
		return err
	}

	fonts := fontCache{}
	for i, rec := range recs {
		page := doc.AddPage()
		c := &canvas{page: page, fonts: fonts}
		rec.ApplyTo(c)
		if err := c.Err(); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		err = page.Close()
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	return doc.Close()
}

// WriteFile writes pages as a PDF document to the named file.
//
// The document is first written to a temporary file in the same
// directory, which is renamed once the document is complete.  If an error
// occurs, no file is left behind and an existing file is not modified.
// When an existing file is replaced, its permission bits are kept.
func WriteFile(name string, pages []*flow.Page, opt *Options) (err error) {
	perm := os.FileMode(0o644)
	if fi, statErr := os.Stat(name); statErr == nil {
		perm = fi.Mode().Perm()
	}

	fd, err := os.CreateTemp(filepath.Dir(name), ".wifiqr-*.pdf")
	if err != nil {
		return err
	}
	tmpName := fd.Name()
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(tmpName)
		}
	}()

	buf := &bytes.Buffer{}
	err = Write(buf, pages, opt)
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(fd)
	if err != nil {
		return err
	}
	err = fd.Chmod(perm)
	if err != nil {
		return err
	}
	err = fd.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmpName, name)
}

const producer = "seehuhn.de/go/wifiqr"

// pdfNS is the XMP namespace for PDF metadata.
type pdfNS struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

// basicNS is the XMP basic namespace, restricted to the fields which do
// not depend on the time of writing.
type basicNS struct {
	_           xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_           xmp.Prefix    `xmp:"xmp"`
	CreatorTool xmp.AgentName
}

func writeXMP(out *pdf.Writer, opt *Options) error {
	dc := &xmp.DublinCore{}
	if opt.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), opt.Title)
		if opt.Lang != language.Und {
			dc.Title.Set(opt.Lang, opt.Title)
		}
	}
	basic := &basicNS{}
	if opt.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(opt.Creator)
	}
	ns := &pdfNS{
		Producer: xmp.NewAgentName(producer),
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, ns)

	ref := out.Alloc()
	stm, err := out.OpenStream(ref, pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	})
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{})
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	out.GetMeta().Catalog.Metadata = ref
	return nil
}
