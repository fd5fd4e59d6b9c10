// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

import "io"

// BitReader adapts a byte source to MSB-first bit access with peek/consume
// semantics. Within each input byte, bit 7 is read first. The reader
// buffers bits left-justified in a 32-bit word so that at least 16 bits
// are available whenever the source has at least 2 unread bytes, per
// spec §4.1.
//
// BitReader owns src exclusively; do not read from src after construction.
type BitReader struct {
	src   io.ByteReader
	buf   uint32 // valid bits occupy the top nbits bits, MSB-aligned
	nbits uint8
	eof   bool  // src has returned io.EOF
	err   error // sticky non-EOF read error
}

// NewBitReader wraps src for bit-level reading. If src does not implement
// io.ByteReader, bytes are still read one at a time via src.Read.
func NewBitReader(src io.Reader) *BitReader {
	br := &BitReader{src: asByteReader(src)}
	br.fill()
	return br
}

func asByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &singleByteReader{r: r}
}

// singleByteReader adapts an io.Reader without ReadByte to io.ByteReader
// without pulling in bufio, matching the teacher's one-byte-at-a-time
// bitReader.fill idiom.
type singleByteReader struct {
	r   io.Reader
	one [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	n, err := s.r.Read(s.one[:])
	if n == 1 {
		return s.one[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

// fill tops up the buffer with whole bytes until at least 16 bits are
// buffered or the source is exhausted/failed.
func (br *BitReader) fill() {
	for !br.eof && br.err == nil && br.nbits <= 24 {
		b, err := br.src.ReadByte()
		if err != nil {
			if err == io.EOF {
				br.eof = true
			} else {
				br.err = err
			}
			return
		}
		br.buf |= uint32(b) << (24 - br.nbits)
		br.nbits += 8
	}
}

// Err returns the sticky source error, if any. Once set, no further
// operation on br should be invoked.
func (br *BitReader) Err() error {
	return br.err
}

// Buffered reports how many bits are currently available without a
// further source read.
func (br *BitReader) Buffered() int {
	return int(br.nbits)
}

// Peek returns the next n bits (1 <= n <= 16) as the low bits of the
// returned value, MSB-first, and ok=true. If fewer than n bits remain in
// the source, ok is false and value holds whatever bits are left,
// left-justified within the requested width (short read, not an error).
// Peek does not advance the reader; back-to-back Peek(n) calls are
// idempotent. A non-nil error indicates the underlying source failed.
func (br *BitReader) Peek(n int) (value uint16, ok bool, err error) {
	if n < 1 || n > 16 {
		panic("ccitt: Peek n out of range")
	}
	if br.err != nil {
		return 0, false, br.err
	}
	if int(br.nbits) < n {
		br.fill()
		if br.err != nil {
			return 0, false, br.err
		}
	}
	if int(br.nbits) < n {
		// Short: return what remains, shifted so it occupies the high
		// bits of the n-bit window (MSB-first truncation).
		if br.nbits == 0 {
			return 0, false, nil
		}
		v := uint16(br.buf >> (32 - uint(n)))
		return v, false, nil
	}
	v := uint16(br.buf >> (32 - uint(n)))
	return v, true, nil
}

// Consume advances the reader by n bits. n must not exceed what was last
// successfully peeked (or be <= Buffered()).
func (br *BitReader) Consume(n int) error {
	if n < 0 || n > int(br.nbits) {
		panic("ccitt: Consume n exceeds buffered bits")
	}
	br.buf <<= uint(n)
	br.nbits -= uint8(n)
	br.fill()
	return br.err
}

// Expect peeks bits.Len bits; if they equal bits.Data, it consumes them
// and returns ok=true. Otherwise the reader position is left unchanged
// and ok=false is returned along with the bits actually seen (which may
// be a short read).
func (br *BitReader) Expect(bits Bits) (ok bool, seen Bits, err error) {
	v, full, err := br.Peek(int(bits.Len))
	if err != nil {
		return false, Bits{}, err
	}
	if !full || v != bits.mask() {
		return false, Bits{Data: v, Len: bits.Len}, nil
	}
	if err := br.Consume(int(bits.Len)); err != nil {
		return false, Bits{}, err
	}
	return true, bits, nil
}

// BitsToByteBoundary returns the number of bits that must still be
// consumed to reach the next byte boundary in the underlying stream
// (0 if already aligned).
func (br *BitReader) BitsToByteBoundary() int {
	return int(br.nbits % 8)
}

// AtEnd reports whether the source is exhausted and no bits remain
// buffered: there is nothing left to peek.
func (br *BitReader) AtEnd() bool {
	return br.eof && br.nbits == 0
}
