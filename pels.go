// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

// Pels expands a line-transitions list (spec §3/§4.9) into exactly width
// colors, starting White. dst is reused if it has capacity width,
// matching spec §5's "no per-line allocation in the steady state".
func Pels(transitions []int, width int, dst []Color) []Color {
	if cap(dst) >= width {
		dst = dst[:width]
	} else {
		dst = make([]Color, width)
	}
	color := White
	col := 0
	for _, p := range transitions {
		if p > width {
			p = width
		}
		for ; col < p; col++ {
			dst[col] = color
		}
		color = !color
	}
	for ; col < width; col++ {
		dst[col] = color
	}
	return dst
}

// TransitionsFromPels computes the canonical line-transitions list (spec
// §3) for a row of width colors, implicitly starting White. dst is
// reused if it has capacity.
func TransitionsFromPels(pels []Color, dst []int) []int {
	dst = dst[:0]
	if len(pels) == 0 {
		return dst
	}
	color := White
	for i, c := range pels {
		if c != color {
			dst = append(dst, i)
			color = c
		}
	}
	return dst
}

// SliceBits returns an MSB-first sequence of bools for b, used by
// callers that want a plain bit iterator rather than a BitReader (spec
// §6's slice_bits utility).
func SliceBits(b []byte) []bool {
	out := make([]bool, 0, len(b)*8)
	for _, by := range b {
		for i := 7; i >= 0; i-- {
			out = append(out, by&(1<<uint(i)) != 0)
		}
	}
	return out
}
