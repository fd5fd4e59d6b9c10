// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

// codebook.go implements spec §4.3's offline table-generation algorithm:
// a declarative list of (bit-pattern, value) pairs is compiled, once, at
// package init, into a forest of Leaf/Prefix LUTs. The idiom (a narrow
// fast-path table over a wider code space, recursing for longer codes)
// follows klauspost/compress's huff0 decode tables, adapted here from an
// adaptive canonical-Huffman decoder to a fixed, hand-specified code book
// (see DESIGN.md).

// codeEntry is one (pattern, value) declaration used only at table
// construction time.
type codeEntry struct {
	pattern string // '0'/'1' characters, MSB first
	value   int
}

// terminalSlot is a leaf of the forest: the value and the exact number of
// bits the code occupies (<= the enclosing LUT's width).
type terminalSlot struct {
	value  int
	length uint8
}

// node is either a *leafLUT, a *prefixLUT, or a *bareTerminal (a bucket,
// or a whole code book, that holds exactly one entry).
type node interface {
	// decode peeks starting at depth bits already accounted for by
	// ancestor levels, and either returns a terminal value or descends.
	decode(br *BitReader, depth int) (value int, length int, ok bool, err error)
}

// leafLUT is a flat array of width w; index is the next w bits measured
// from depth. Every slot is either a terminal (possibly reached via a
// shorter code, replicated across all matching indices) or empty.
type leafLUT struct {
	width uint8
	slots []*terminalSlot
}

func (l *leafLUT) decode(br *BitReader, depth int) (int, int, bool, error) {
	// A short peek still holds the remaining bits, left-justified; a code
	// that ends within them is decoded.
	peeked, _, err := br.Peek(depth + int(l.width))
	if err != nil {
		return 0, 0, false, err
	}
	idx := peeked & uint16(1<<l.width-1)
	slot := l.slots[idx]
	if slot == nil || int(slot.length) > br.Buffered() {
		return 0, 0, false, nil
	}
	if err := br.Consume(int(slot.length)); err != nil {
		return 0, 0, false, err
	}
	return slot.value, int(slot.length), true, nil
}

// prefixLUT is a flat array of width w of subtrees; unreachable entries
// are nil.
type prefixLUT struct {
	width uint8
	subs  []node
}

func (p *prefixLUT) decode(br *BitReader, depth int) (int, int, bool, error) {
	// On a short peek the subtree's terminal checks the remaining length.
	peeked, _, err := br.Peek(depth + int(p.width))
	if err != nil {
		return 0, 0, false, err
	}
	if br.Buffered() == 0 {
		return 0, 0, false, nil
	}
	idx := peeked & uint16(1<<p.width-1)
	sub := p.subs[idx]
	if sub == nil {
		return 0, 0, false, nil
	}
	return sub.decode(br, depth+int(p.width))
}

// bareTerminal wraps a single code-book entry that is the only entry in
// its bucket: decoding it never needs a lookup array.
type bareTerminal struct {
	t terminalSlot
}

func (b *bareTerminal) decode(br *BitReader, depth int) (int, int, bool, error) {
	_, full, err := br.Peek(int(b.t.length))
	if err != nil {
		return 0, 0, false, err
	}
	if !full {
		return 0, 0, false, nil
	}
	// bareTerminal is only reached once an ancestor bucket has narrowed
	// entries down to this single one, so no further pattern check is
	// needed here.
	if err := br.Consume(int(b.t.length)); err != nil {
		return 0, 0, false, err
	}
	return b.t.value, int(b.t.length), true, nil
}

// buildTable compiles entries into a decode forest per spec §4.3's
// construction algorithm. depth is the number of bits already consumed
// by ancestor levels (0 for the book's root).
func buildTable(entries []codeEntry, depth int) node {
	if len(entries) == 0 {
		return nil
	}
	if len(entries) == 1 {
		e := entries[0]
		return &bareTerminal{t: terminalSlot{value: e.value, length: uint8(len(e.pattern))}}
	}

	maxLen := 0
	for _, e := range entries {
		if l := len(e.pattern); l > maxLen {
			maxLen = l
		}
	}
	w := maxLen - depth
	if w <= 0 {
		// Degenerate: all remaining entries terminated at this depth
		// already: prefix-free coding guarantees this bucket has one
		// entry, handled above, so this should be unreachable.
		panic("ccitt: codebook is not prefix-free")
	}

	if w <= 8 {
		return buildLeaf(entries, depth, w)
	}
	return buildPrefix(entries, depth, w)
}

func buildLeaf(entries []codeEntry, depth, w int) *leafLUT {
	lut := &leafLUT{width: uint8(w), slots: make([]*terminalSlot, 1<<uint(w))}
	for _, e := range entries {
		suffix := e.pattern[depth:]
		localLen := len(suffix)
		free := w - localLen
		prefixVal := parseBits(suffix)
		for filler := 0; filler < (1 << uint(free)); filler++ {
			idx := (prefixVal << uint(free)) | filler
			lut.slots[idx] = &terminalSlot{value: e.value, length: uint8(len(e.pattern))}
		}
	}
	return lut
}

// buildPrefix picks the partition width per spec §4.3's cost metric: try
// widths in [min(W,4), W), partition entries by their next w bits
// (entries shorter than w replicate across all matching indices), and
// choose the width minimizing the sum of the buckets' recursive costs
// divided by 2^w, so that wider tables are only preferred when they
// proportionally shrink the remaining subtree work.
func buildPrefix(entries []codeEntry, depth, w int) node {
	lo := w
	if 4 < lo {
		lo = 4
	}
	bestWidth := -1
	var bestBuckets [][]codeEntry
	bestCost := float64(0)

	for cand := lo; cand < w; cand++ {
		buckets := partition(entries, depth, cand)
		cost := 0.0
		for _, b := range buckets {
			if b != nil {
				cost += float64(tableCost(b, depth+cand))
			}
		}
		cost /= float64(uint64(1) << uint(cand))
		if bestWidth == -1 || cost < bestCost {
			bestWidth, bestCost, bestBuckets = cand, cost, buckets
		}
	}
	if bestWidth == -1 {
		// lo == w (W itself is small enough only for a single full-width
		// partition): fall back to partitioning at width w directly.
		bestWidth = w
		bestBuckets = partition(entries, depth, w)
	}

	lut := &prefixLUT{width: uint8(bestWidth), subs: make([]node, 1<<uint(bestWidth))}
	for i, b := range bestBuckets {
		if b == nil {
			continue
		}
		lut.subs[i] = buildTable(b, depth+bestWidth)
	}
	return lut
}

// partition buckets entries by their next w bits measured from depth;
// entries whose remaining pattern is shorter than w are replicated across
// every index consistent with their (shorter) pattern.
func partition(entries []codeEntry, depth, w int) [][]codeEntry {
	buckets := make([][]codeEntry, 1<<uint(w))
	for _, e := range entries {
		suffix := e.pattern[depth:]
		if len(suffix) >= w {
			idx := parseBits(suffix[:w])
			buckets[idx] = append(buckets[idx], e)
			continue
		}
		free := w - len(suffix)
		prefixVal := parseBits(suffix)
		for filler := 0; filler < (1 << uint(free)); filler++ {
			idx := (prefixVal << uint(free)) | filler
			buckets[idx] = append(buckets[idx], e)
		}
	}
	return buckets
}

// tableCost approximates the expected decode cost of a bucket: one for a
// single entry, the leaf array size 2^w when the remaining width w is at
// most 8, otherwise the smallest summed cost of its buckets over the
// candidate partition widths. Used only to compare candidate widths in
// buildPrefix.
func tableCost(entries []codeEntry, depth int) int {
	if len(entries) <= 1 {
		return 1
	}
	maxLen := 0
	for _, e := range entries {
		if l := len(e.pattern); l > maxLen {
			maxLen = l
		}
	}
	w := maxLen - depth
	if w <= 0 {
		return 1
	}
	if w <= 8 {
		return 1 << uint(w)
	}
	lo := w
	if 4 < lo {
		lo = 4
	}
	best := -1
	for cand := lo; cand < w; cand++ {
		buckets := partition(entries, depth, cand)
		sum := 0
		for _, b := range buckets {
			if b != nil {
				sum += tableCost(b, depth+cand)
			}
		}
		if best == -1 || sum < best {
			best = sum
		}
	}
	if best == -1 {
		return 1 << uint(w)
	}
	return best
}

func parseBits(s string) int {
	v := 0
	for _, c := range s {
		v <<= 1
		if c == '1' {
			v |= 1
		}
	}
	return v
}

// decodeFromBook walks node's forest from the root (depth 0).
func decodeFromBook(n node, br *BitReader) (value int, length int, ok bool, err error) {
	if n == nil {
		return 0, 0, false, nil
	}
	return n.decode(br, 0)
}
