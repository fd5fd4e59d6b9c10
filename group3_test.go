// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroup3RoundTrip(t *testing.T) {
	width := 20
	lines := [][]Color{
		make([]Color, width),
		{White, White, Black, Black, Black, White, White, White, White, White,
			White, White, White, White, White, White, White, White, White, Black},
	}

	mw := NewMemWriter()
	enc := NewGroup3Encoder(mw.BitWriter, width)
	for _, line := range lines {
		if err := enc.EncodeLine(line); err != nil {
			t.Fatalf("EncodeLine: %v", err)
		}
	}
	if err := enc.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	data, err := mw.Finish()
	if err != nil {
		t.Fatal(err)
	}

	var got [][]Color
	err = DecodeG3(bytes.NewReader(data), width, func(transitions []int) error {
		line := Pels(transitions, width, nil)
		cp := make([]Color, width)
		copy(cp, line)
		got = append(got, cp)
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeG3: %v", err)
	}
	if diff := cmp.Diff(lines, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 5: invalid Group 3 input starting 0xFF (no leading EOL).
func TestGroup3ScenarioInvalidMissingEOL(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF}
	err := DecodeG3(bytes.NewReader(data), 8, func([]int) error { return nil })
	if err == nil {
		t.Fatal("expected Invalid error for missing leading EOL")
	}
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if ce.Kind != KindInvalid {
		t.Fatalf("Kind = %v, want KindInvalid", ce.Kind)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("errors.Is(err, ErrInvalid) = false")
	}
}

func TestGroup3RTCStopsDecoding(t *testing.T) {
	mw := NewMemWriter()
	enc := NewGroup3Encoder(mw.BitWriter, 8)
	if err := enc.EncodeLine(make([]Color, 8)); err != nil {
		t.Fatal(err)
	}
	if err := enc.Finish(); err != nil { // six EOLs (RTC)
		t.Fatal(err)
	}
	// Trailing garbage after RTC must never be consumed as another line.
	data, err := mw.Finish()
	if err != nil {
		t.Fatal(err)
	}
	data = append(data, 0xFF, 0xFF)

	count := 0
	err = DecodeG3(bytes.NewReader(data), 8, func([]int) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeG3: %v", err)
	}
	if count != 1 {
		t.Fatalf("decoded %d lines, want 1 (RTC should stop before garbage)", count)
	}
}
