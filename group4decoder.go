// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

import (
	"errors"
	"io"
)

// Advance reports the outcome of one Group4Decoder.Advance call.
type Advance int

const (
	// LineDecoded means Transitions() holds a freshly decoded line.
	LineDecoded Advance = iota
	// StreamEnd means EOFB was seen (or the height bound was reached);
	// no more lines are available.
	StreamEnd
)

// Group4Decoder implements the spec §4.7 two-line ping-pong state
// machine: reference (the previous line's transitions) and current
// (the line being built), swapped after each line. Grounded on the
// teacher's decode2D mode switch and pdfcpu's handlePass/handleHorizontal/
// handleVertical (see DESIGN.md), rebuilt over the Transitions cursor
// representation.
type Group4Decoder struct {
	br     *BitReader
	width  int
	height int // 0 means unbounded
	line   int

	reference []int
	current   []int
	cursor    Cursor
}

// NewGroup4Decoder constructs a decoder over r. height <= 0 means
// decode until EOFB or end of data.
func NewGroup4Decoder(r io.Reader, width, height int) *Group4Decoder {
	return &Group4Decoder{
		br:     NewBitReader(r),
		width:  width,
		height: height,
	}
}

// Transitions returns the most recently decoded line's transitions list.
// The slice is only valid until the next Advance call.
func (d *Group4Decoder) Transitions() []int {
	return d.current
}

// Advance decodes one line. On LineDecoded, Transitions() holds the
// result. On StreamEnd, decoding is complete.
func (d *Group4Decoder) Advance() (Advance, error) {
	if d.height > 0 && d.line >= d.height {
		return StreamEnd, nil
	}
	if d.br.AtEnd() {
		return StreamEnd, nil
	}

	if ok, _, err := d.br.Expect(eol); err != nil {
		return StreamEnd, wrapError("decode_g4", KindReader, err)
	} else if ok {
		ok2, _, err := d.br.Expect(eol)
		if err != nil {
			return StreamEnd, wrapError("decode_g4", KindReader, err)
		}
		if ok2 {
			return StreamEnd, nil
		}
		return StreamEnd, invalidf("decode_g4", "lone EOL marker mid Group 4 stream")
	}

	// Swap the line buffers: the line built last call (still in
	// d.current, and still returned by Transitions() until this point)
	// becomes this call's reference; the old reference buffer is reused
	// to build the new current line into.
	d.reference, d.current = d.current, d.reference
	d.cursor.Reset(d.reference)
	d.current = d.current[:0]

	a0 := 0
	color := White
	startOfRow := true

	for a0 < d.width {
		mode, ok, err := decodeFromBookMode(d.br)
		if err != nil {
			return StreamEnd, wrapError("decode_g4", KindReader, err)
		}
		if !ok {
			return StreamEnd, invalidf("decode_g4", "unrecognized 2D mode code at line %d", d.line)
		}

		switch mode {
		case modeExtension:
			return StreamEnd, &Error{Op: "decode_g4", Kind: KindUnsupported,
				Err: errors.New("T.4 extension mode is not supported")}

		case modePass:
			if startOfRow && color == White {
				d.cursor.Skip(1)
			} else {
				d.cursor.NextColor(a0, !color, startOfRow)
			}
			b2, ok := d.cursor.Next()
			if !ok {
				b2 = d.width
			}
			a0 = b2

		case modeHorizontal:
			r1, ok, err := decodeRun(d.br, color)
			if err != nil {
				return StreamEnd, wrapError("decode_g4", KindReader, err)
			}
			if !ok {
				return StreamEnd, invalidf("decode_g4", "bad run code at line %d", d.line)
			}
			r2, ok, err := decodeRun(d.br, !color)
			if err != nil {
				return StreamEnd, wrapError("decode_g4", KindReader, err)
			}
			if !ok {
				return StreamEnd, invalidf("decode_g4", "bad run code at line %d", d.line)
			}
			a1 := a0 + r1
			a2 := a1 + r2
			d.current = append(d.current, a1)
			if a2 >= d.width {
				a0 = d.width
			} else {
				d.current = append(d.current, a2)
				a0 = a2
			}

		default: // vertical modes
			delta := verticalDelta(mode)
			b1, ok := d.cursor.NextColor(a0, !color, startOfRow)
			if !ok {
				b1 = d.width
			}
			a1 := b1 + delta
			if a1 >= d.width {
				a0 = d.width
			} else {
				d.current = append(d.current, a1)
				color = !color
				a0 = a1
				if delta < 0 {
					d.cursor.SeekBack(a0)
				}
			}
		}
		startOfRow = false
	}

	d.line++
	return LineDecoded, nil
}

func verticalDelta(mode int) int {
	switch mode {
	case modeV0:
		return 0
	case modeVR1:
		return 1
	case modeVR2:
		return 2
	case modeVR3:
		return 3
	case modeVL1:
		return -1
	case modeVL2:
		return -2
	case modeVL3:
		return -3
	}
	panic("ccitt: not a vertical mode")
}

func decodeFromBookMode(br *BitReader) (int, bool, error) {
	v, _, ok, err := decodeFromBook(modeDecodeTable, br)
	return v, ok, err
}

// DecodeG4 decodes a full Group 4 stream, invoking lineFn once per
// decoded line with that line's transitions list (reused across calls;
// callers that need to retain it must copy). height <= 0 means decode
// until EOFB or end of data.
func DecodeG4(r io.Reader, width, height int, lineFn func(transitions []int) error) error {
	d := NewGroup4Decoder(r, width, height)
	for {
		status, err := d.Advance()
		if err != nil {
			return err
		}
		if status == StreamEnd {
			return nil
		}
		if err := lineFn(d.Transitions()); err != nil {
			return err
		}
	}
}
