// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/fault"
)

var compactTests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var compactTruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

var compactMalformedTests = [][]byte{
	{0x80, 0x00},
	{0xff, 0x80, 0x00},
	{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00},
}

func TestEncodeCompact(t *testing.T) {

	for i, item := range compactTests {
		if result := codec.EncodeCompact(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: EncodeCompact(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
		if size := codec.CompactSize(item.value); size != len(item.encoded) {
			t.Errorf("%d: CompactSize(%x) -> %d  expected: %d", i, item.value, size, len(item.encoded))
		}
	}
}

func TestDecodeCompact(t *testing.T) {

	for i, item := range compactTests {
		result1, count1, err := codec.DecodeCompact(item.encoded)
		if nil != err {
			t.Fatalf("%d: DecodeCompact(%x) error: %s", i, item.encoded, err)
		}
		if result1 != item.value {
			t.Errorf("%d: DecodeCompact(%x) -> %d  expected: %d", i, item.encoded, result1, item.value)
		}

		suffix := []byte{0xff, 0x97, 0x23}
		b := append(append([]byte{}, item.encoded...), suffix...)

		result2, count2, err := codec.DecodeCompact(b)
		if nil != err {
			t.Fatalf("%d: DecodeCompact(%x) error: %s", i, b, err)
		}
		if result2 != item.value || count1 != count2 {
			t.Errorf("%d: DecodeCompact(%x) -> %d  expected: %d", i, b, result2, item.value)
		}
		if !bytes.Equal(suffix, b[count2:]) {
			t.Errorf("%d: suffix: %x  expected: %x", i, b[count2:], suffix)
		}
	}

	for i, item := range compactTruncatedTests {
		result, count, err := codec.DecodeCompact(item)
		if fault.ErrTruncatedLength != err {
			t.Errorf("%d: DecodeCompact(%x) error: %v  expected: %s", i, item, err, fault.ErrTruncatedLength)
		}
		if 0 != result || 0 != count {
			t.Errorf("%d: DecodeCompact(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}

	for i, item := range compactMalformedTests {
		_, _, err := codec.DecodeCompact(item)
		if fault.ErrMalformedLength != err {
			t.Errorf("%d: DecodeCompact(%x) error: %v  expected: %s", i, item, err, fault.ErrMalformedLength)
		}
	}
}
