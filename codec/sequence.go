// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/bitmark-inc/boundedvec/fault"
)

// EncodeSequence - compact(len(items)) ++ encode(items[0]) ++ ...
func EncodeSequence[T any](c Codec[T], items []T) ([]byte, error) {
	buffer := AppendCompact(nil, uint64(len(items)))
	for _, item := range items {
		var err error
		buffer, err = c.Encode(buffer, item)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// DecodeSequence - decode a complete sequence
//
// the whole buffer must be consumed, any remaining bytes are an error
func DecodeSequence[T any](c Codec[T], buffer []byte) ([]T, error) {
	count, n, err := DecodeCompact(buffer)
	if nil != err {
		return nil, err
	}
	rest := buffer[n:]

	// every element uses at least one byte, so never trust a count
	// larger than the remaining data for the allocation
	capacity := count
	if capacity > uint64(len(rest)) {
		capacity = uint64(len(rest))
	}
	items := make([]T, 0, capacity)

	for i := uint64(0); i < count; i += 1 {
		item, used, err := c.Decode(rest)
		if nil != err {
			return nil, err
		}
		if 0 == used {
			return nil, fault.ErrMalformedElement
		}
		items = append(items, item)
		rest = rest[used:]
	}
	if 0 != len(rest) {
		return nil, fault.ErrTrailingBytes
	}
	return items, nil
}

// DecodeLength - element count of an encoded sequence
//
// only the compact prefix is read, the elements are never examined
func DecodeLength(buffer []byte) (uint64, error) {
	count, _, err := DecodeCompact(buffer)
	return count, err
}

// AppendEncoded - add one already encoded element to an encoded sequence
//
// a nil or empty buffer is treated as an absent value and produces a
// single element sequence; otherwise the prefix is replaced by one for
// count+1 (which may be wider than the old one) and the element bytes
// are concatenated. The existing elements are copied but never decoded.
func AppendEncoded(buffer []byte, element []byte) ([]byte, error) {
	if 0 == len(buffer) {
		result := AppendCompact(make([]byte, 0, 1+len(element)), 1)
		return append(result, element...), nil
	}

	count, n, err := DecodeCompact(buffer)
	if nil != err {
		return nil, err
	}
	if count == ^uint64(0) {
		return nil, fault.ErrMalformedLength
	}

	body := buffer[n:]
	result := make([]byte, 0, CompactSize(count+1)+len(body)+len(element))
	result = AppendCompact(result, count+1)
	result = append(result, body...)
	return append(result, element...), nil
}
