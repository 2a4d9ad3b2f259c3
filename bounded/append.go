// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

import (
	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/fault"
)

// Appender - the raw store capability needed to grow a stored vector
type Appender interface {
	// element count of the value at key from its prefix only;
	// found is false (and count zero) if there is no value
	DecodeLength(key []byte) (count uint64, found bool, err error)

	// concatenate element to the value at key and increment its
	// prefix, creating a one element value if absent
	AppendRaw(key []byte, element []byte) error
}

// KeyFunc - derives the final store key of one stored vector
//
// value, map and double map storage differ only in this function
type KeyFunc func() []byte

// TryAppend - append an already encoded element to the vector stored
// at key, if the stored length is below bound
//
// on ErrBoundExceeded, or any error from DecodeLength, the store is
// not written
func TryAppend(store Appender, bound int, key KeyFunc, element []byte) error {
	return tryAppend(store, bound, key, func() ([]byte, error) {
		return element, nil
	})
}

// TryAppendItem - encode item and append it to the Vec[T, S] stored at key
//
// the item is only encoded once the bound check has passed
func TryAppendItem[T any, S Bound](store Appender, key KeyFunc, c codec.Codec[T], item T) error {
	return tryAppend(store, BoundOf[S](), key, func() ([]byte, error) {
		return codec.Marshal(c, item)
	})
}

func tryAppend(store Appender, bound int, key KeyFunc, encode func() ([]byte, error)) error {
	finalKey := key()

	current, _, err := store.DecodeLength(finalKey)
	if nil != err {
		return err
	}
	if current >= uint64(bound) {
		return fault.ErrBoundExceeded
	}

	element, err := encode()
	if nil != err {
		return err
	}
	return store.AppendRaw(finalKey, element)
}
