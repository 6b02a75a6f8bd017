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
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/matrix"
)

// A Recorder is a [Canvas] which records drawing operations.
// The recorded operations can later be replayed on another canvas,
// using the [Recorder.ApplyTo] method.
type Recorder struct {
	Ops []Op
}

// Op is a recorded drawing operation.
type Op struct {
	Name OpName
	Args []float64

	// Font and Text are only used for OpShowText.
	Font Font
	Text string
}

// OpName identifies the type of a recorded operation.
type OpName string

// These are the operations recorded by a [Recorder].
// The names are the corresponding PDF content stream operators.
const (
	OpPush      OpName = "q"
	OpPop       OpName = "Q"
	OpTransform OpName = "cm"
	OpRectangle OpName = "re"
	OpFill      OpName = "f"
	OpShowText  OpName = "Tj"
)

func (r *Recorder) PushGraphicsState() {
	r.Ops = append(r.Ops, Op{Name: OpPush})
}

func (r *Recorder) PopGraphicsState() {
	r.Ops = append(r.Ops, Op{Name: OpPop})
}

func (r *Recorder) Transform(m matrix.Matrix) {
	r.Ops = append(r.Ops, Op{Name: OpTransform, Args: m[:]})
}

func (r *Recorder) Rectangle(x, y, width, height float64) {
	r.Ops = append(r.Ops, Op{Name: OpRectangle, Args: []float64{x, y, width, height}})
}

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, Op{Name: OpFill})
}

func (r *Recorder) ShowText(F Font, size, x, y float64, text string) {
	r.Ops = append(r.Ops, Op{
		Name: OpShowText,
		Args: []float64{size, x, y},
		Font: F,
		Text: text,
	})
}

// Count returns the number of recorded operations with the given name.
func (r *Recorder) Count(name OpName) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// ApplyTo replays all recorded operations on c.
func (r *Recorder) ApplyTo(c Canvas) {
	for _, op := range r.Ops {
		switch op.Name {
		case OpPush:
			c.PushGraphicsState()
		case OpPop:
			c.PopGraphicsState()
		case OpTransform:
			var m matrix.Matrix
			copy(m[:], op.Args)
			c.Transform(m)
		case OpRectangle:
			c.Rectangle(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case OpFill:
			c.Fill()
		case OpShowText:
			c.ShowText(op.Font, op.Args[0], op.Args[1], op.Args[2], op.Text)
		}
	}
}

// WriteTo writes a textual listing of the recorded operations to w,
// one operation per line, in content stream syntax.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	buf := make([]byte, 0, 64)
	for _, op := range r.Ops {
		buf = buf[:0]
		for _, x := range op.Args {
			buf = strconv.AppendFloat(buf, x, 'f', -1, 64)
			buf = append(buf, ' ')
		}
		if op.Name == OpShowText {
			buf = strconv.AppendQuote(buf, op.Text)
			buf = append(buf, ' ')
		}
		n, err := fmt.Fprintf(w, "%s%s\n", buf, op.Name)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
