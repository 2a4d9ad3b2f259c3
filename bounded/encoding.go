// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

import (
	"github.com/bitmark-inc/boundedvec/codec"
)

// a Vec encodes exactly like its inner slice, so codec.DecodeLength
// and codec.AppendEncoded work unchanged on stored vectors

// Encode - compact(len) ++ elements
func Encode[T any, S Bound](c codec.Codec[T], v *Vec[T, S]) ([]byte, error) {
	return codec.EncodeSequence(c, v.AsSlice())
}

// Decode - rebuild a vector from its encoding
//
// stored data is trusted: an over bound count is accepted with a
// warning for scope rather than rejected
func Decode[T any, S Bound](c codec.Codec[T], buffer []byte, scope string) (*Vec[T, S], error) {
	items, err := codec.DecodeSequence(c, buffer)
	if nil != err {
		return nil, err
	}
	return ForceFrom[T, S](items, scope), nil
}

// MaxEncodedLen - the largest encoding any Vec[T, S] can have
//
//   CompactSize(bound) + bound * c.MaxEncodedLen()
//
// saturating rather than overflowing for extreme bounds
func MaxEncodedLen[T any, S Bound](c codec.Codec[T]) int {
	var s S
	return codec.MaxSequenceLen(s.Get(), c.MaxEncodedLen())
}
