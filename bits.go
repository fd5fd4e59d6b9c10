// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

import "strings"

// Bits is an immutable (data, length) pair: only the low Len bits of Data
// are significant, 0 <= Len <= 16. Equality is structural over those low
// bits only.
type Bits struct {
	Data uint16
	Len  uint8
}

// bitsFromString builds a Bits value from a string of '0'/'1' characters,
// MSB first. Used only by the code-table declarations in tables.go.
func bitsFromString(s string) Bits {
	if len(s) > 16 {
		panic("ccitt: bit pattern too long: " + s)
	}
	var data uint16
	for _, c := range s {
		data <<= 1
		if c == '1' {
			data |= 1
		} else if c != '0' {
			panic("ccitt: invalid bit pattern: " + s)
		}
	}
	return Bits{Data: data, Len: uint8(len(s))}
}

// mask returns the low Len bits of Data; construction is expected to
// already respect this, but callers that build Bits by hand benefit from
// normalization on comparison.
func (b Bits) mask() uint16 {
	if b.Len >= 16 {
		return b.Data
	}
	return b.Data & ((1 << b.Len) - 1)
}

// Equal reports structural equality over the significant low bits.
func (b Bits) Equal(o Bits) bool {
	return b.Len == o.Len && b.mask() == o.mask()
}

// Append concatenates b and o: the result holds b's bits above o's bits,
// MSB first, b.Len+o.Len must not exceed 16.
func (b Bits) Append(o Bits) Bits {
	total := int(b.Len) + int(o.Len)
	if total > 16 {
		panic("ccitt: concatenated bits exceed 16")
	}
	return Bits{Data: (b.mask() << o.Len) | o.mask(), Len: uint8(total)}
}

// String renders a fixed-width binary representation of the significant
// bits, e.g. Bits{Data: 0b101, Len: 3}.String() == "101".
func (b Bits) String() string {
	if b.Len == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(b.Len))
	for i := int(b.Len) - 1; i >= 0; i-- {
		if b.mask()&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
