// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/boundedvec/bounded"
	"github.com/bitmark-inc/boundedvec/codec"
)

// DoubleMap - a pool holding one bounded vector per key pair
type DoubleMap[K1 any, K2 any, T any, S bounded.Bound] struct {
	pool   *PoolHandle
	codec1 codec.Codec[K1]
	hash1  Hasher
	codec2 codec.Codec[K2]
	hash2  Hasher
	codec  codec.Codec[T]
}

// NewDoubleMap - double map storage on pool
//
// the stored key is h1(k1) ++ h2(k2), so an identity or concat first
// hasher keeps all entries of one k1 adjacent
func NewDoubleMap[K1 any, K2 any, T any, S bounded.Bound](
	pool *PoolHandle,
	kc1 codec.Codec[K1], h1 Hasher,
	kc2 codec.Codec[K2], h2 Hasher,
	c codec.Codec[T],
) *DoubleMap[K1, K2, T, S] {
	return &DoubleMap[K1, K2, T, S]{
		pool:   pool,
		codec1: kc1,
		hash1:  h1,
		codec2: kc2,
		hash2:  h2,
		codec:  c,
	}
}

// Key - the stored key for (k1, k2), without the pool prefix
func (m *DoubleMap[K1, K2, T, S]) Key(k1 K1, k2 K2) ([]byte, error) {
	encoded1, err := codec.Marshal(m.codec1, k1)
	if nil != err {
		return nil, err
	}
	encoded2, err := codec.Marshal(m.codec2, k2)
	if nil != err {
		return nil, err
	}
	return append(m.hash1(encoded1), m.hash2(encoded2)...), nil
}

// Get - the vector at (k1, k2), empty if none is stored
func (m *DoubleMap[K1, K2, T, S]) Get(trx Transaction, k1 K1, k2 K2) (*bounded.Vec[T, S], error) {
	key, err := m.Key(k1, k2)
	if nil != err {
		return nil, err
	}
	return getVec[T, S](trx, m.pool, m.codec, key)
}

// Put - replace the vector at (k1, k2)
func (m *DoubleMap[K1, K2, T, S]) Put(trx Transaction, k1 K1, k2 K2, vec *bounded.Vec[T, S]) error {
	key, err := m.Key(k1, k2)
	if nil != err {
		return err
	}
	return putVec(trx, m.pool, m.codec, key, vec)
}

// Exists - true if a vector is stored at (k1, k2)
func (m *DoubleMap[K1, K2, T, S]) Exists(trx Transaction, k1 K1, k2 K2) (bool, error) {
	key, err := m.Key(k1, k2)
	if nil != err {
		return false, err
	}
	return trx.Has(m.pool, key)
}

// Remove - delete the vector at (k1, k2)
func (m *DoubleMap[K1, K2, T, S]) Remove(trx Transaction, k1 K1, k2 K2) error {
	key, err := m.Key(k1, k2)
	if nil != err {
		return err
	}
	trx.Delete(m.pool, key)
	return nil
}

// DecodeLength - element count at (k1, k2) without decoding the elements
func (m *DoubleMap[K1, K2, T, S]) DecodeLength(trx Transaction, k1 K1, k2 K2) (uint64, bool, error) {
	key, err := m.Key(k1, k2)
	if nil != err {
		return 0, false, err
	}
	return trx.DecodeLength(m.pool, key)
}

// TryAppend - append item to the vector at (k1, k2) if it is below its bound
func (m *DoubleMap[K1, K2, T, S]) TryAppend(trx Transaction, k1 K1, k2 K2, item T) error {
	key, err := m.Key(k1, k2)
	if nil != err {
		return err
	}
	return tryAppendVec[T, S](trx, m.pool, m.codec, key, item)
}

// TryMutate - read, edit and write back the vector at (k1, k2)
func (m *DoubleMap[K1, K2, T, S]) TryMutate(trx Transaction, k1 K1, k2 K2, mutate func(*[]T)) error {
	key, err := m.Key(k1, k2)
	if nil != err {
		return err
	}
	return tryMutateVec[T, S](trx, m.pool, m.codec, key, mutate)
}
