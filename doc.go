// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ccitt encodes and decodes bilevel raster images using the
// CCITT Group 3 (T.4) and Group 4 (T.6) facsimile compression schemes,
// and wraps the result in a minimal single-strip TIFF container.
package ccitt
