// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

import (
	"bytes"
	"testing"
)

// bitsToBytes packs a Bits value into whole bytes (zero-padded), for
// feeding to a BitReader in isolation.
func bitsToBytes(b Bits) []byte {
	mw := NewMemWriter()
	if err := mw.Write(b); err != nil {
		panic(err)
	}
	out, err := mw.Finish()
	if err != nil {
		panic(err)
	}
	return out
}

// Table completeness: for every (value, bits) in a code book's defs,
// decoding a reader positioned over just that code returns value and
// consumes exactly bits.Len bits.
func TestWhiteTableCompleteness(t *testing.T) {
	checkTableCompleteness(t, concatDefs(whiteTermDefs, whiteMakeupDefs, extMakeupDefs), whiteDecodeTable)
}

func TestBlackTableCompleteness(t *testing.T) {
	checkTableCompleteness(t, concatDefs(blackTermDefs, blackMakeupDefs, extMakeupDefs), blackDecodeTable)
}

func TestModeTableCompleteness(t *testing.T) {
	checkTableCompleteness(t, modeDefs, modeDecodeTable)
}

func checkTableCompleteness(t *testing.T, defs []codeDef, table node) {
	t.Helper()
	for _, d := range defs {
		bits := Bits{Data: d.code, Len: d.bits}
		data := bitsToBytes(bits)
		br := NewBitReader(bytes.NewReader(data))
		value, length, ok, err := decodeFromBook(table, br)
		if err != nil {
			t.Fatalf("value %d pattern %s: decode error: %v", d.value, d.pattern(), err)
		}
		if !ok {
			t.Fatalf("value %d pattern %s: decode failed", d.value, d.pattern())
		}
		if value != d.value {
			t.Fatalf("pattern %s: decoded value %d, want %d", d.pattern(), value, d.value)
		}
		if length != int(d.bits) {
			t.Fatalf("pattern %s: consumed %d bits, want %d", d.pattern(), length, d.bits)
		}
	}
}

// Encoder table inverse of decoder: for every value, its encoded Bits
// decodes back to that value.
func TestWhiteEncodeEntriesInverse(t *testing.T) {
	checkEncodeInverse(t, whiteEncodeEntries, whiteDecodeTable)
}

func TestBlackEncodeEntriesInverse(t *testing.T) {
	checkEncodeInverse(t, blackEncodeEntries, blackDecodeTable)
}

func checkEncodeInverse(t *testing.T, entries map[int]Bits, table node) {
	t.Helper()
	for value, bits := range entries {
		data := bitsToBytes(bits)
		br := NewBitReader(bytes.NewReader(data))
		got, length, ok, err := decodeFromBook(table, br)
		if err != nil || !ok {
			t.Fatalf("value %d: decode failed: ok=%v err=%v", value, ok, err)
		}
		if got != value {
			t.Fatalf("value %d encodes to %v which decodes back to %d", value, bits, got)
		}
		if length != int(bits.Len) {
			t.Fatalf("value %d: consumed %d bits, want %d", value, length, bits.Len)
		}
	}
}

func TestModeTableDistinctCodes(t *testing.T) {
	// Sanity: every mode pattern round-trips through the generated table
	// without colliding with another mode's shorter prefix.
	for _, d := range modeDefs {
		data := bitsToBytes(Bits{Data: d.code, Len: d.bits})
		br := NewBitReader(bytes.NewReader(data))
		value, _, ok, err := decodeFromBook(modeDecodeTable, br)
		if err != nil || !ok {
			t.Fatalf("mode %d: decode failed: ok=%v err=%v", d.value, ok, err)
		}
		if value != d.value {
			t.Fatalf("mode pattern %s decoded to %d, want %d", d.pattern(), value, d.value)
		}
	}
}
