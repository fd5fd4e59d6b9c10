// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

// Cursor navigates a reference line's transitions list (spec §3/§4.5).
// It is a short-lived borrow: it never mutates positions, only its own
// cursor index, mirroring pdfcpu's calcb1/calcb2 navigation but over the
// compressed transitions representation instead of a full pixel buffer
// (see DESIGN.md).
//
// Positions at even indices mark white->black transitions; odd indices
// mark black->white, i.e. parity of the index gives the incoming color
// (Black at index 0, White at index 1, ...).
type Cursor struct {
	positions []int
	pos       int
}

// NewCursor wraps a reference line's sorted transitions list.
func NewCursor(positions []int) *Cursor {
	return &Cursor{positions: positions}
}

// Reset rebinds the cursor to a new reference line and rewinds to 0,
// letting callers reuse a Cursor value across lines without allocating.
func (c *Cursor) Reset(positions []int) {
	c.positions = positions
	c.pos = 0
}

// colorAt reports the color the pel takes on at positions[i] (i.e. the
// color of the run starting there, not the run ending there): index
// parity, per the even/odd convention above.
func colorAt(i int) Color {
	return Color(i%2 == 0)
}

// SeekBack rewinds the cursor while positions[pos-1] > x, per spec §4.5.
// If the cursor had previously advanced past the end, it is first
// clamped to len-1.
func (c *Cursor) SeekBack(x int) {
	if c.pos > len(c.positions) {
		c.pos = len(c.positions)
	}
	if c.pos > len(c.positions)-1 && len(c.positions) > 0 {
		c.pos = len(c.positions) - 1
	}
	for c.pos > 0 && c.positions[c.pos-1] > x {
		c.pos--
	}
}

// NextColor returns the first reference-line transition strictly greater
// than a0 whose incoming color is wantColor, advancing past it, per spec
// §4.5. ok is false if the cursor runs off the end.
func (c *Cursor) NextColor(a0 int, wantColor Color, startOfRow bool) (pos int, ok bool) {
	if startOfRow {
		if wantColor == Black {
			if len(c.positions) == 0 {
				return 0, false
			}
			c.pos = 1
			return c.positions[0], true
		}
		if len(c.positions) < 2 {
			return 0, false
		}
		c.pos = 2
		return c.positions[1], true
	}

	for c.pos < len(c.positions) && c.positions[c.pos] <= a0 {
		c.pos++
	}
	if c.pos < len(c.positions) && colorAt(c.pos) != wantColor {
		c.pos++
	}
	if c.pos >= len(c.positions) {
		return 0, false
	}
	p := c.positions[c.pos]
	c.pos++
	return p, true
}

// Next returns the current position and advances, or ok=false at the end.
func (c *Cursor) Next() (pos int, ok bool) {
	if c.pos >= len(c.positions) {
		return 0, false
	}
	p := c.positions[c.pos]
	c.pos++
	return p, true
}

// Peek returns the current position without advancing, or ok=false at
// the end.
func (c *Cursor) Peek() (pos int, ok bool) {
	if c.pos >= len(c.positions) {
		return 0, false
	}
	return c.positions[c.pos], true
}

// Skip advances the cursor by k positions.
func (c *Cursor) Skip(k int) {
	c.pos += k
}
