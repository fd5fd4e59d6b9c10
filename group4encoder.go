// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

// modeBits are the encoder's emitted symbols for each 2-D mode, mirroring
// modeDefs in tables.go (kept separate so the encoder never depends on
// the decoder's generated LUTs, only on the same declarative source).
var modeBits = map[int]Bits{
	modePass:       bitsFromString("0001"),
	modeHorizontal: bitsFromString("001"),
	modeV0:         bitsFromString("1"),
	modeVR1:        bitsFromString("011"),
	modeVL1:        bitsFromString("010"),
	modeVR2:        bitsFromString("000011"),
	modeVL2:        bitsFromString("000010"),
	modeVR3:        bitsFromString("0000011"),
	modeVL3:        bitsFromString("0000010"),
}

// Encoder implements the spec §4.8 Group 4 encoder: per line, mode
// selection against a reference line using the canonical greedy policy,
// then §4.8's finish (two EOFB halves). There is no teacher precedent
// (Geek0x0-pdf and pdfcpu are decode-only); built directly from spec.md,
// reusing the Transitions cursor and run-length tables the decoder
// already established.
type Encoder struct {
	bw        *BitWriter
	width     int
	reference []int
	current   []int
	cursor    Cursor
}

// NewEncoder wraps bw for Group 4 encoding of lines of the given width.
func NewEncoder(bw *BitWriter, width int) *Encoder {
	return &Encoder{bw: bw, width: width}
}

// EncodeLine encodes one row of pels, computing its transitions list
// internally and mode-selecting against the previous line.
func (e *Encoder) EncodeLine(pels []Color) error {
	transitions := TransitionsFromPels(pels, e.current[:0])
	return e.EncodeTransitions(transitions)
}

// EncodeTransitions encodes one line already expressed as a transitions
// list (spec §3), for callers that already maintain that representation.
func (e *Encoder) EncodeTransitions(transitions []int) error {
	e.current = transitions
	e.cursor.Reset(e.reference)

	idx := 0
	nextA1 := func() int {
		if idx < len(transitions) {
			v := transitions[idx]
			idx++
			return v
		}
		return e.width
	}

	a0 := 0
	color := White
	startOfLine := true
	a1 := nextA1()

	for a0 < e.width {
		for {
			e.cursor.SeekBack(a0)
			b1, ok := e.cursor.NextColor(a0, !color, startOfLine)
			if !ok {
				b1 = e.width
			}
			b2, ok2 := e.cursor.Peek()
			if !ok2 {
				b2 = e.width
			}

			if ok2 && b2 < a1 {
				if err := e.bw.Write(modeBits[modePass]); err != nil {
					return err
				}
				e.cursor.Skip(1)
				a0 = b2
				startOfLine = false
				continue
			}

			if abs(a1-b1) <= 3 {
				if err := e.bw.Write(modeBits[verticalModeFor(a1-b1)]); err != nil {
					return err
				}
				a0 = a1
				color = !color
				startOfLine = false
				break
			}

			if err := e.bw.Write(modeBits[modeHorizontal]); err != nil {
				return err
			}
			a2 := nextA1()
			if err := encodeRun(e.bw, color, a1-a0); err != nil {
				return err
			}
			if err := encodeRun(e.bw, !color, a2-a1); err != nil {
				return err
			}
			a0 = a2
			startOfLine = false
			break
		}
		if a0 >= e.width {
			break
		}
		a1 = nextA1()
	}

	e.reference, e.current = e.current, e.reference
	return nil
}

// Finish emits the two EOFB halves per spec §4.8. Callers may Pad the
// writer afterwards if they need byte alignment beyond EOFB's own
// 24-bit length.
func (e *Encoder) Finish() error {
	if err := e.bw.Write(eol); err != nil {
		return err
	}
	return e.bw.Write(eol)
}

func verticalModeFor(delta int) int {
	switch delta {
	case 0:
		return modeV0
	case 1:
		return modeVR1
	case -1:
		return modeVL1
	case 2:
		return modeVR2
	case -2:
		return modeVL2
	case 3:
		return modeVR3
	case -3:
		return modeVL3
	}
	panic("ccitt: vertical delta out of range")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
