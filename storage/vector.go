// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/boundedvec/bounded"
	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/fault"
)

// operations shared by the value, map and double map facades once the
// final key is known

func getVec[T any, S bounded.Bound](trx Transaction, p *PoolHandle, c codec.Codec[T], key []byte) (*bounded.Vec[T, S], error) {
	data, err := trx.Get(p, key)
	if nil != err {
		return nil, err
	}
	if 0 == len(data) {
		return bounded.New[T, S](), nil
	}
	return bounded.Decode[T, S](c, data, p.name)
}

func putVec[T any, S bounded.Bound](trx Transaction, p *PoolHandle, c codec.Codec[T], key []byte, v *bounded.Vec[T, S]) error {
	if v.Len() > v.Bound() {
		return fault.ErrBoundExceeded
	}
	data, err := bounded.Encode(c, v)
	if nil != err {
		return err
	}
	trx.Put(p, key, data)
	return nil
}

func tryAppendVec[T any, S bounded.Bound](trx Transaction, p *PoolHandle, c codec.Codec[T], key []byte, item T) error {
	err := bounded.TryAppendItem[T, S](trx.Appender(p), func() []byte { return key }, c, item)
	if fault.ErrBoundExceeded == err {
		statistics.rejected.Increment()
	}
	return err
}

func tryMutateVec[T any, S bounded.Bound](trx Transaction, p *PoolHandle, c codec.Codec[T], key []byte, mutate func(*[]T)) error {
	v, err := getVec[T, S](trx, p, c, key)
	if nil != err {
		return err
	}
	next, ok := v.TryMutate(mutate)
	if !ok {
		return fault.ErrBoundExceeded
	}
	return putVec(trx, p, c, key, next)
}
