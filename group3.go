// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

import "io"

// rtcEOLCount is the number of consecutive EOL codes that make up Return
// to Control (spec §4.6).
const rtcEOLCount = 6

// Group3Decoder implements the spec §4.6 one-dimensional (T.4) decoder:
// each line is a leading EOL, then alternating white/black run codes
// until width columns are filled. Grounded on the teacher's decode1D (see
// DESIGN.md), rebuilt to produce transitions lists instead of a pixel
// buffer.
type Group3Decoder struct {
	br    *BitReader
	width int
	line  int
	eols  int // consecutive EOLs seen with no intervening line data

	current []int
}

// NewGroup3Decoder constructs a one-dimensional decoder over r for lines
// of the given width.
func NewGroup3Decoder(r io.Reader, width int) *Group3Decoder {
	return &Group3Decoder{br: NewBitReader(r), width: width}
}

// Transitions returns the most recently decoded line's transitions list.
// The slice is only valid until the next Advance call.
func (d *Group3Decoder) Transitions() []int {
	return d.current
}

// Advance decodes one line, consuming its leading EOL first. It reports
// StreamEnd once RTC (six consecutive EOLs) or end of data is observed.
func (d *Group3Decoder) Advance() (Advance, error) {
	for {
		if d.br.AtEnd() {
			return StreamEnd, nil
		}
		ok, _, err := d.br.Expect(eol)
		if err != nil {
			return StreamEnd, wrapError("decode_g3", KindReader, err)
		}
		if !ok {
			break
		}
		d.eols++
		if d.eols >= rtcEOLCount {
			return StreamEnd, nil
		}
	}
	if d.eols == 0 {
		return StreamEnd, invalidf("decode_g3", "missing EOL before line %d", d.line)
	}
	d.eols = 0

	d.current = d.current[:0]
	a0 := 0
	color := White
	for a0 < d.width {
		run, ok, err := decodeRun(d.br, color)
		if err != nil {
			return StreamEnd, wrapError("decode_g3", KindReader, err)
		}
		if !ok {
			return StreamEnd, invalidf("decode_g3", "bad run code at line %d", d.line)
		}
		a0 += run
		if a0 > d.width {
			a0 = d.width
		}
		d.current = append(d.current, a0)
		color = !color
	}
	// The run loop always appends the line's end (width) as its last
	// position; the canonical transitions list (spec §3) only holds
	// positions < width, so trim it back off (the line already
	// implicitly ends there).
	if len(d.current) > 0 && d.current[len(d.current)-1] == d.width {
		d.current = d.current[:len(d.current)-1]
	}

	d.line++
	return LineDecoded, nil
}

// DecodeG3 decodes a full one-dimensional stream, invoking lineFn once
// per decoded line with that line's transitions list (reused across
// calls; callers that need to retain it must copy).
func DecodeG3(r io.Reader, width int, lineFn func(transitions []int) error) error {
	d := NewGroup3Decoder(r, width)
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

// Group3Encoder implements the spec §4.6 one-dimensional encoder: each
// line is preceded by an EOL, then alternating run codes. Finish emits
// RTC (six EOLs).
type Group3Encoder struct {
	bw    *BitWriter
	width int
}

// NewGroup3Encoder wraps bw for one-dimensional encoding of lines of the
// given width.
func NewGroup3Encoder(bw *BitWriter, width int) *Group3Encoder {
	return &Group3Encoder{bw: bw, width: width}
}

// EncodeLine encodes one row of pels as a leading EOL followed by
// alternating run-length codes.
func (e *Group3Encoder) EncodeLine(pels []Color) error {
	return e.EncodeTransitions(TransitionsFromPels(pels, nil))
}

// EncodeTransitions encodes one line already expressed as a transitions
// list, prefixed by EOL. The final run, from the last transition to
// width, is implicit in the transitions list and is emitted here.
func (e *Group3Encoder) EncodeTransitions(transitions []int) error {
	if err := e.bw.Write(eol); err != nil {
		return err
	}
	a0 := 0
	color := White
	for _, p := range transitions {
		if err := encodeRun(e.bw, color, p-a0); err != nil {
			return err
		}
		a0 = p
		color = !color
	}
	return encodeRun(e.bw, color, e.width-a0)
}

// Finish emits RTC: six consecutive EOL codes.
func (e *Group3Encoder) Finish() error {
	for i := 0; i < rtcEOLCount; i++ {
		if err := e.bw.Write(eol); err != nil {
			return err
		}
	}
	return nil
}
