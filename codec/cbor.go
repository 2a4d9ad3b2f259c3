// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/boundedvec/fault"
)

// deterministic encoding: sorted map keys and smallest integer form,
// so equal values always produce identical stored bytes
var cborEncMode cbor.EncMode

// rejects duplicate map keys and indefinite length items that the
// encoder never produces
var cborDecMode cbor.DecMode

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

type cborCodec[T any] struct {
	maximum int
}

// CBOR - encode structured elements as a single CBOR data item
//
// a CBOR item is self delimiting so no extra prefix is needed; since
// the size of an arbitrary value cannot be derived from its type the
// caller declares the maximum, and larger values are rejected on
// encode and decode
func CBOR[T any](maximum int) Codec[T] {
	if maximum < 1 {
		maximum = 1
	}
	return cborCodec[T]{maximum: maximum}
}

func (c cborCodec[T]) Encode(dst []byte, value T) ([]byte, error) {
	data, err := cborEncMode.Marshal(value)
	if nil != err {
		return dst, err
	}
	if len(data) > c.maximum {
		return dst, fault.ErrElementTooLarge
	}
	return append(dst, data...), nil
}

func (c cborCodec[T]) Decode(src []byte) (T, int, error) {
	var value T
	if 0 == len(src) {
		return value, 0, fault.ErrTruncatedElement
	}
	rest, err := cborDecMode.UnmarshalFirst(src, &value)
	if nil != err {
		return value, 0, fault.ErrMalformedElement
	}
	n := len(src) - len(rest)
	if n > c.maximum {
		return value, 0, fault.ErrElementTooLarge
	}
	return value, n, nil
}

func (c cborCodec[T]) MaxEncodedLen() int {
	return c.maximum
}
