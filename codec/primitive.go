// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"github.com/bitmark-inc/boundedvec/fault"
)

// fixed size little endian integers

type uint32Codec struct{}
type uint64Codec struct{}
type boolCodec struct{}

// Uint32 - 4 byte little endian
var Uint32 Codec[uint32] = uint32Codec{}

// Uint64 - 8 byte little endian
var Uint64 Codec[uint64] = uint64Codec{}

// Bool - single byte 0x00 or 0x01
var Bool Codec[bool] = boolCodec{}

func (uint32Codec) Encode(dst []byte, value uint32) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(dst, value), nil
}

func (uint32Codec) Decode(src []byte) (uint32, int, error) {
	if len(src) < 4 {
		return 0, 0, fault.ErrTruncatedElement
	}
	return binary.LittleEndian.Uint32(src), 4, nil
}

func (uint32Codec) MaxEncodedLen() int { return 4 }

func (uint64Codec) Encode(dst []byte, value uint64) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, value), nil
}

func (uint64Codec) Decode(src []byte) (uint64, int, error) {
	if len(src) < 8 {
		return 0, 0, fault.ErrTruncatedElement
	}
	return binary.LittleEndian.Uint64(src), 8, nil
}

func (uint64Codec) MaxEncodedLen() int { return 8 }

func (boolCodec) Encode(dst []byte, value bool) ([]byte, error) {
	if value {
		return append(dst, 0x01), nil
	}
	return append(dst, 0x00), nil
}

func (boolCodec) Decode(src []byte) (bool, int, error) {
	if len(src) < 1 {
		return false, 0, fault.ErrTruncatedElement
	}
	switch src[0] {
	case 0x00:
		return false, 1, nil
	case 0x01:
		return true, 1, nil
	default:
		return false, 0, fault.ErrMalformedElement
	}
}

func (boolCodec) MaxEncodedLen() int { return 1 }

// variable length byte data: compact(length) ++ data

type bytesCodec struct {
	maximum int
}

type stringCodec struct {
	bytes bytesCodec
}

// Bytes - length prefixed byte slice of at most maximum bytes
func Bytes(maximum int) Codec[[]byte] {
	if maximum < 0 {
		maximum = 0
	}
	return bytesCodec{maximum: maximum}
}

// String - length prefixed string of at most maximum bytes
func String(maximum int) Codec[string] {
	if maximum < 0 {
		maximum = 0
	}
	return stringCodec{bytes: bytesCodec{maximum: maximum}}
}

func (c bytesCodec) Encode(dst []byte, value []byte) ([]byte, error) {
	if len(value) > c.maximum {
		return dst, fault.ErrElementTooLarge
	}
	dst = AppendCompact(dst, uint64(len(value)))
	return append(dst, value...), nil
}

// the returned slice is a copy
func (c bytesCodec) Decode(src []byte) ([]byte, int, error) {
	length, n, err := DecodeCompact(src)
	if nil != err {
		return nil, 0, err
	}
	if length > uint64(c.maximum) {
		return nil, 0, fault.ErrElementTooLarge
	}
	end := n + int(length)
	if end > len(src) {
		return nil, 0, fault.ErrTruncatedElement
	}
	data := make([]byte, length)
	copy(data, src[n:end])
	return data, end, nil
}

func (c bytesCodec) MaxEncodedLen() int {
	return SaturatingAdd(CompactSize(uint64(c.maximum)), c.maximum)
}

func (c stringCodec) Encode(dst []byte, value string) ([]byte, error) {
	if len(value) > c.bytes.maximum {
		return dst, fault.ErrElementTooLarge
	}
	dst = AppendCompact(dst, uint64(len(value)))
	return append(dst, value...), nil
}

func (c stringCodec) Decode(src []byte) (string, int, error) {
	data, n, err := c.bytes.Decode(src)
	if nil != err {
		return "", 0, err
	}
	return string(data), n, nil
}

func (c stringCodec) MaxEncodedLen() int {
	return c.bytes.MaxEncodedLen()
}
