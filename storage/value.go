// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/boundedvec/bounded"
	"github.com/bitmark-inc/boundedvec/codec"
)

// Value - a pool holding a single bounded vector
type Value[T any, S bounded.Bound] struct {
	pool  *PoolHandle
	codec codec.Codec[T]
}

// NewValue - value storage on pool with elements encoded by c
func NewValue[T any, S bounded.Bound](pool *PoolHandle, c codec.Codec[T]) *Value[T, S] {
	return &Value[T, S]{
		pool:  pool,
		codec: c,
	}
}

// the value is stored under the bare prefix
var valueKey = []byte{}

// Get - the stored vector, empty if none is stored
func (v *Value[T, S]) Get(trx Transaction) (*bounded.Vec[T, S], error) {
	return getVec[T, S](trx, v.pool, v.codec, valueKey)
}

// Put - replace the stored vector
func (v *Value[T, S]) Put(trx Transaction, vec *bounded.Vec[T, S]) error {
	return putVec(trx, v.pool, v.codec, valueKey, vec)
}

// Exists - true if a vector is stored
func (v *Value[T, S]) Exists(trx Transaction) (bool, error) {
	return trx.Has(v.pool, valueKey)
}

// Remove - delete the stored vector
func (v *Value[T, S]) Remove(trx Transaction) {
	trx.Delete(v.pool, valueKey)
}

// DecodeLength - element count without decoding the elements
func (v *Value[T, S]) DecodeLength(trx Transaction) (uint64, bool, error) {
	return trx.DecodeLength(v.pool, valueKey)
}

// TryAppend - append item if the stored vector is below its bound
func (v *Value[T, S]) TryAppend(trx Transaction, item T) error {
	return tryAppendVec[T, S](trx, v.pool, v.codec, valueKey, item)
}

// TryMutate - read, edit and write back the vector, rejecting an edit
// that leaves it over bound
func (v *Value[T, S]) TryMutate(trx Transaction, mutate func(*[]T)) error {
	return tryMutateVec[T, S](trx, v.pool, v.codec, valueKey, mutate)
}
