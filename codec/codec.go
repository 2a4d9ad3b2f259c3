// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

// Codec - binary encoding of a single element type
//
// encodings must be self delimiting: Decode reports how many bytes it
// consumed so elements can be concatenated without separators
type Codec[T any] interface {
	// append the encoding of value to dst
	Encode(dst []byte, value T) ([]byte, error)

	// decode one value from the start of src, returning the number of bytes used
	Decode(src []byte) (T, int, error)

	// the largest number of bytes Encode can ever produce
	MaxEncodedLen() int
}

// Marshal - encode a single value into a new buffer
func Marshal[T any](c Codec[T], value T) ([]byte, error) {
	return c.Encode(nil, value)
}
