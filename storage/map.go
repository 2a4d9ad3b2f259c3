// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/boundedvec/bounded"
	"github.com/bitmark-inc/boundedvec/codec"
)

// Map - a pool holding one bounded vector per key
type Map[K any, T any, S bounded.Bound] struct {
	pool     *PoolHandle
	keyCodec codec.Codec[K]
	hasher   Hasher
	codec    codec.Codec[T]
}

// NewMap - map storage on pool, keys encoded by kc then hashed by h
func NewMap[K any, T any, S bounded.Bound](pool *PoolHandle, kc codec.Codec[K], h Hasher, c codec.Codec[T]) *Map[K, T, S] {
	return &Map[K, T, S]{
		pool:     pool,
		keyCodec: kc,
		hasher:   h,
		codec:    c,
	}
}

// Key - the stored key for k, without the pool prefix
func (m *Map[K, T, S]) Key(k K) ([]byte, error) {
	encoded, err := codec.Marshal(m.keyCodec, k)
	if nil != err {
		return nil, err
	}
	return m.hasher(encoded), nil
}

// Get - the vector at k, empty if none is stored
func (m *Map[K, T, S]) Get(trx Transaction, k K) (*bounded.Vec[T, S], error) {
	key, err := m.Key(k)
	if nil != err {
		return nil, err
	}
	return getVec[T, S](trx, m.pool, m.codec, key)
}

// Put - replace the vector at k
func (m *Map[K, T, S]) Put(trx Transaction, k K, vec *bounded.Vec[T, S]) error {
	key, err := m.Key(k)
	if nil != err {
		return err
	}
	return putVec(trx, m.pool, m.codec, key, vec)
}

// Exists - true if a vector is stored at k
func (m *Map[K, T, S]) Exists(trx Transaction, k K) (bool, error) {
	key, err := m.Key(k)
	if nil != err {
		return false, err
	}
	return trx.Has(m.pool, key)
}

// Remove - delete the vector at k
func (m *Map[K, T, S]) Remove(trx Transaction, k K) error {
	key, err := m.Key(k)
	if nil != err {
		return err
	}
	trx.Delete(m.pool, key)
	return nil
}

// DecodeLength - element count at k without decoding the elements
func (m *Map[K, T, S]) DecodeLength(trx Transaction, k K) (uint64, bool, error) {
	key, err := m.Key(k)
	if nil != err {
		return 0, false, err
	}
	return trx.DecodeLength(m.pool, key)
}

// TryAppend - append item to the vector at k if it is below its bound
//
// vectors at other keys are never touched
func (m *Map[K, T, S]) TryAppend(trx Transaction, k K, item T) error {
	key, err := m.Key(k)
	if nil != err {
		return err
	}
	return tryAppendVec[T, S](trx, m.pool, m.codec, key, item)
}

// TryMutate - read, edit and write back the vector at k
func (m *Map[K, T, S]) TryMutate(trx Transaction, k K, mutate func(*[]T)) error {
	key, err := m.Key(k)
	if nil != err {
		return err
	}
	return tryMutateVec[T, S](trx, m.pool, m.codec, key, mutate)
}
