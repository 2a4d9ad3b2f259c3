// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/boundedvec/fault"
)

// CompactMaximumBytes - maximum possible number of bytes in a compact integer
const CompactMaximumBytes = 9

// AppendCompact - append the compact form of value to dst
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// byte 3:  ext | B20 | B19 | B18 | B17 | B16 | B15 | B14
// byte 4:  ext | B27 | B26 | B25 | B24 | B23 | B22 | B21
// byte 5:  ext | B34 | B33 | B32 | B31 | B30 | B29 | B28
// byte 6:  ext | B41 | B40 | B39 | B38 | B37 | B36 | B35
// byte 7:  ext | B48 | B47 | B46 | B45 | B44 | B43 | B42
// byte 8:  ext | B55 | B54 | B53 | B52 | B51 | B50 | B49
// byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
func AppendCompact(dst []byte, value uint64) []byte {
	if value < 0x80 {
		return append(dst, byte(value))
	}

	for i := 0; i < CompactMaximumBytes && value != 0; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		dst = append(dst, byte(value|ext))
		value >>= 7
	}
	return dst
}

// EncodeCompact - convert a 64 bit unsigned integer to its compact form
func EncodeCompact(value uint64) []byte {
	return AppendCompact(make([]byte, 0, CompactMaximumBytes), value)
}

// CompactSize - number of bytes the compact form of value occupies
func CompactSize(value uint64) int {
	n := 1
	for value >= 0x80 && n < CompactMaximumBytes {
		value >>= 7
		n += 1
	}
	return n
}

// DecodeCompact - read a compact integer from the start of buffer
//
// returns the value and the number of bytes consumed; only the prefix
// is examined so any trailing data is ignored
//
// a buffer that ends before the last byte of the integer gives
// ErrTruncatedLength and an over-long form (a redundant zero high
// byte) gives ErrMalformedLength
func DecodeCompact(buffer []byte) (uint64, int, error) {
	result := uint64(0)

	shift := uint(0)
	count := 0

	for count < len(buffer) {
		currentByte := uint64(buffer[count])
		count += 1
		if count < CompactMaximumBytes {
			result |= currentByte & 0x7f << shift
			if 0 == currentByte&0x80 {
				if count > 1 && 0 == currentByte {
					return 0, 0, fault.ErrMalformedLength
				}
				return result, count, nil
			}
		} else {
			if 0 == currentByte {
				return 0, 0, fault.ErrMalformedLength
			}
			result |= currentByte << shift
			return result, count, nil
		}
		shift += 7
	}
	return 0, 0, fault.ErrTruncatedLength
}
