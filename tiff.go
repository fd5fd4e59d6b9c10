// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ccitt

import (
	"bytes"
	"encoding/binary"
)

// tiff.go emits the minimal single-strip bilevel TIFF container spec §6
// requires, byte-exact: a fixed 11-entry IFD (no tag sorting logic, no
// multi-strip support) wrapping one CCITT Group 4 strip. Grounded on the
// IFD-entry shape of the tiff writer studied for this component (see
// DESIGN.md); the tag set itself has no analogue in the teacher, since
// Geek0x0-pdf only ever reads CCITT data embedded in existing PDF xref
// streams and never emits a container.

const (
	tagImageWidth                = 256
	tagImageLength               = 257
	tagCompression               = 259
	tagPhotometricInterpretation = 262
	tagStripOffsets              = 273
	tagOrientation               = 274
	tagRowsPerStrip              = 278
	tagStripByteCounts           = 279
	tagXResolution               = 282
	tagYResolution               = 283
	tagResolutionUnit            = 296

	dtShort    = 3
	dtLong     = 4
	dtRational = 5

	ifdEntryCount = 11
	ifdEntrySize  = 12
	headerSize    = 8 // magic + IFD offset
	ifdCountSize  = 2
	nextIFDSize   = 4
	rationalSize  = 8

	// headerSize (8) is also written as the IFD offset: the IFD
	// immediately follows the magic and offset. StripOffsets is computed
	// in WrapTIFF as the end of the IFD and the rational payloads.
)

// ifdEntry is one (tag, type, count=1, value-or-offset) IFD row.
type ifdEntry struct {
	tag   uint16
	typ   uint16
	value uint32
}

func (e ifdEntry) write(buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, e.tag)
	binary.Write(buf, binary.LittleEndian, e.typ)
	binary.Write(buf, binary.LittleEndian, uint32(1)) // count
	binary.Write(buf, binary.LittleEndian, e.value)
}

// WrapTIFF wraps data (the raw CCITT Group 4 strip, as produced by
// Encoder/Finish) in a single-strip bilevel TIFF container, per spec §6's
// byte-exact layout.
func WrapTIFF(data []byte, width, height int) []byte {
	// Offset layout, in order: header(8) + ifd count(2) + 11*12 entries +
	// next-IFD(4) + two rationals (8 bytes each) + raw data.
	fixedSize := headerSize + ifdCountSize + ifdEntryCount*ifdEntrySize + nextIFDSize
	xResOffset := uint32(fixedSize)
	yResOffset := xResOffset + rationalSize
	dataOffset := yResOffset + rationalSize

	var buf bytes.Buffer
	buf.Grow(int(dataOffset) + len(data))

	buf.Write([]byte{0x49, 0x49, 0x2A, 0x00}) // little-endian TIFF magic
	binary.Write(&buf, binary.LittleEndian, uint32(headerSize))
	binary.Write(&buf, binary.LittleEndian, uint16(ifdEntryCount))

	entries := [ifdEntryCount]ifdEntry{
		{tagImageWidth, dtLong, uint32(width)},
		{tagImageLength, dtLong, uint32(height)},
		{tagCompression, dtShort, 4},
		{tagPhotometricInterpretation, dtShort, 0},
		{tagStripOffsets, dtLong, dataOffset},
		{tagOrientation, dtShort, 1},
		{tagRowsPerStrip, dtLong, uint32(height)},
		{tagStripByteCounts, dtLong, uint32(len(data))},
		{tagXResolution, dtRational, xResOffset},
		{tagYResolution, dtRational, yResOffset},
		{tagResolutionUnit, dtShort, 2},
	}
	for _, e := range entries {
		e.write(&buf)
	}

	binary.Write(&buf, binary.LittleEndian, uint32(0)) // next-IFD pointer

	binary.Write(&buf, binary.LittleEndian, uint32(200)) // XResolution = 200/1
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, uint32(200)) // YResolution = 200/1
	binary.Write(&buf, binary.LittleEndian, uint32(1))

	buf.Write(data)
	return buf.Bytes()
}
