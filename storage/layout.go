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

// Layout - a pool whose key shape and bound are only known at run
// time, e.g. from the configuration file
//
// keys and elements are already encoded bytes; the typed Value, Map
// and DoubleMap are preferred where the types are known
type Layout struct {
	pool    *PoolHandle
	hashers []Hasher
	bound   func() uint32
}

// NewLayout - one hasher per key part: none for a value pool, one for
// a map and two for a double map
func NewLayout(pool *PoolHandle, hasherNames []string, bound func() uint32) (*Layout, error) {
	hs := make([]Hasher, 0, len(hasherNames))
	for _, name := range hasherNames {
		h, err := HasherByName(name)
		if nil != err {
			return nil, err
		}
		hs = append(hs, h)
	}
	return &Layout{
		pool:    pool,
		hashers: hs,
		bound:   bound,
	}, nil
}

// Pool - the underlying pool
func (l *Layout) Pool() *PoolHandle {
	return l.pool
}

// Bound - the current bound
func (l *Layout) Bound() int {
	return int(l.bound())
}

// Key - concatenate the hashed key parts
func (l *Layout) Key(parts ...[]byte) ([]byte, error) {
	if len(parts) != len(l.hashers) {
		return nil, fault.ErrInvalidKeyCount
	}
	key := []byte{}
	for i, part := range parts {
		key = append(key, l.hashers[i](part)...)
	}
	return key, nil
}

// Get - raw stored vector at the key, nil if absent
func (l *Layout) Get(trx Transaction, parts ...[]byte) ([]byte, error) {
	key, err := l.Key(parts...)
	if nil != err {
		return nil, err
	}
	return trx.Get(l.pool, key)
}

// Put - replace the vector at the key with already encoded elements
//
// the count prefix is written here so it always matches the elements
// that follow
func (l *Layout) Put(trx Transaction, elements [][]byte, parts ...[]byte) error {
	key, err := l.Key(parts...)
	if nil != err {
		return err
	}
	if len(elements) > l.Bound() {
		return fault.ErrBoundExceeded
	}

	size := codec.CompactSize(uint64(len(elements)))
	for _, e := range elements {
		size += len(e)
	}
	data := codec.AppendCompact(make([]byte, 0, size), uint64(len(elements)))
	for _, e := range elements {
		data = append(data, e...)
	}
	trx.Put(l.pool, key, data)
	return nil
}

// Remove - delete the vector at the key
func (l *Layout) Remove(trx Transaction, parts ...[]byte) error {
	key, err := l.Key(parts...)
	if nil != err {
		return err
	}
	trx.Delete(l.pool, key)
	return nil
}

// DecodeLength - element count at the key
func (l *Layout) DecodeLength(trx Transaction, parts ...[]byte) (uint64, bool, error) {
	key, err := l.Key(parts...)
	if nil != err {
		return 0, false, err
	}
	return trx.DecodeLength(l.pool, key)
}

// TryAppend - append an encoded element if the vector is below the
// current bound
func (l *Layout) TryAppend(trx Transaction, element []byte, parts ...[]byte) error {
	key, err := l.Key(parts...)
	if nil != err {
		return err
	}
	err = bounded.TryAppend(trx.Appender(l.pool), l.Bound(), func() []byte { return key }, element)
	if fault.ErrBoundExceeded == err {
		statistics.rejected.Increment()
	}
	return err
}
