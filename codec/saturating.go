// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"math"
)

// SaturatingAdd - a + b clipped to math.MaxInt, for non-negative operands
func SaturatingAdd(a int, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// SaturatingMul - a * b clipped to math.MaxInt, for non-negative operands
func SaturatingMul(a int, b int) int {
	if 0 == a || 0 == b {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// MaxSequenceLen - worst case size of a sequence of at most bound
// elements each at most elementMax bytes:
//
//   CompactSize(bound) + bound * elementMax
func MaxSequenceLen(bound uint32, elementMax int) int {
	return SaturatingAdd(
		CompactSize(uint64(bound)),
		SaturatingMul(int(bound), elementMax),
	)
}
