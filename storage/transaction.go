// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/boundedvec/bounded"
	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/fault"
)

// Transaction - pool level access to the pending write batch
//
// writes are only visible to other readers after Commit; reads made
// through the transaction always see its own writes
type Transaction interface {
	Begin() error
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	Has(*PoolHandle, []byte) (bool, error)
	DecodeLength(*PoolHandle, []byte) (uint64, bool, error)
	AppendRaw(*PoolHandle, []byte, []byte) error
	Appender(*PoolHandle) bounded.Appender
	Commit() error
	Abort()
}

// TransactionData - Transaction over one Access
type TransactionData struct {
	access   Access
	readOnly bool
}

func newTransaction(access Access, readOnly bool) Transaction {
	return &TransactionData{
		access:   access,
		readOnly: readOnly,
	}
}

func (t *TransactionData) Begin() error {
	if t.readOnly {
		return fault.ErrReadOnly
	}
	return t.access.Begin()
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Put - store a key/value bytes pair
//
// panics outside Begin/Commit since the write would otherwise leak
// into the next transaction
func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	if !t.access.InUse() {
		fault.Panicf("pool: %s put outside transaction", p.name)
	}
	statistics.writes.Increment()
	t.access.Put(p.prefixKey(key), value)
}

// Delete - remove a key
func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	if !t.access.InUse() {
		fault.Panicf("pool: %s delete outside transaction", p.name)
	}
	statistics.deletes.Increment()
	t.access.Delete(p.prefixKey(key))
}

// Get - value for key or nil if absent
func (t *TransactionData) Get(p *PoolHandle, key []byte) ([]byte, error) {
	statistics.reads.Increment()
	value, err := t.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func (t *TransactionData) Has(p *PoolHandle, key []byte) (bool, error) {
	statistics.reads.Increment()
	return t.access.Has(p.prefixKey(key))
}

// DecodeLength - element count of the vector at key from its prefix
// only, false if there is no vector
func (t *TransactionData) DecodeLength(p *PoolHandle, key []byte) (uint64, bool, error) {
	value, err := t.Get(p, key)
	if nil != err {
		return 0, false, err
	}
	// an empty value holds no vector, as in codec.AppendEncoded
	if 0 == len(value) {
		return 0, false, nil
	}
	n, err := codec.DecodeLength(value)
	return n, true, err
}

// AppendRaw - add an encoded element to the vector at key
//
// no bound is checked here; use bounded.TryAppend through Appender
func (t *TransactionData) AppendRaw(p *PoolHandle, key []byte, element []byte) error {
	if !t.access.InUse() {
		return fault.ErrTransactionNotStarted
	}

	value, err := t.Get(p, key)
	if nil != err {
		return err
	}
	value, err = codec.AppendEncoded(value, element)
	if nil != err {
		return err
	}

	statistics.appends.Increment()
	t.access.Put(p.prefixKey(key), value)
	return nil
}

// Appender - the append capability of one pool
func (t *TransactionData) Appender(p *PoolHandle) bounded.Appender {
	return &poolAppender{
		trx:  t,
		pool: p,
	}
}

func (t *TransactionData) Commit() error {
	if !t.access.InUse() {
		return fault.ErrTransactionNotStarted
	}
	statistics.commits.Increment()
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	statistics.aborts.Increment()
	t.access.Abort()
}

type poolAppender struct {
	trx  Transaction
	pool *PoolHandle
}

func (a *poolAppender) DecodeLength(key []byte) (uint64, bool, error) {
	return a.trx.DecodeLength(a.pool, key)
}

func (a *poolAppender) AppendRaw(key []byte, element []byte) error {
	return a.trx.AppendRaw(a.pool, key, element)
}
