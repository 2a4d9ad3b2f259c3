// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/boundedvec/fault"
	"github.com/bitmark-inc/boundedvec/storage/mocks"
)

const (
	defaultKey = "key"
)

var (
	defaultValue = []byte{'a'}
)

func openTestDB(t *testing.T) *leveldb.DB {
	db, err := leveldb.OpenFile(filepath.Join(t.TempDir(), "access.leveldb"), nil)
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	ctl := gomock.NewController(t)
	return mocks.NewMockCache(ctl), ctl
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	da := newDA(openTestDB(t), new(leveldb.Batch), mc)

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should with not error")

	err = da.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyUsed, err, "second time Begin should return error")
}

func TestCommitReleasesTransaction(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)
	mc.EXPECT().Clear().Times(1)
	da := newDA(openTestDB(t), new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	assert.Nil(t, da.Commit(), "commit error")

	assert.False(t, da.InUse(), "commit did not release transaction")
	assert.Equal(t, 0, len(da.DumpTx()), "commit did not reset batch")
	assert.Nil(t, da.Begin(), "begin after commit")
}

func TestCommitWriteToDB(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(nil, dbPut, false).AnyTimes()
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Clear().AnyTimes()
	da := newDA(openTestDB(t), new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, actual, "commit not write to db")
}

func TestDeleteActionCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	gomock.InOrder(
		mc.EXPECT().Set(dbPut, "a", []byte{'b'}).Times(1),
		mc.EXPECT().Set(dbDelete, "a", []byte(nil)).Times(1),
	)
	da := newDA(openTestDB(t), new(leveldb.Batch), mc)

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	da.Delete([]byte{'a'})
}

func TestGetActionReadsFromCache(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(defaultValue, dbPut, true).Times(1)
	da := newDA(openTestDB(t), new(leveldb.Batch), mc)

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, actual, "wrong cached value")
}

func TestGetDeletedInCacheIsNotFound(t *testing.T) {
	db := openTestDB(t)
	_ = db.Put([]byte(defaultKey), defaultValue, nil)

	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get(defaultKey).Return(nil, dbDelete, true).Times(2)
	da := newDA(db, new(leveldb.Batch), mc)

	_, err := da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "deleted key still visible")

	found, err := da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "deleted key still exists")
}

func TestGetActionReadDBIfNotInCache(t *testing.T) {
	db := openTestDB(t)
	_ = db.Put([]byte("random"), []byte{'a', 'b', 'c'}, nil)

	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Get("random").Return(nil, dbPut, false).Times(1)
	da := newDA(db, new(leveldb.Batch), mc)

	actual, err := da.Get([]byte("random"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte{'a', 'b', 'c'}, actual, "wrong database value")
}

func TestAbortDiscardsPendingWrites(t *testing.T) {
	db := openTestDB(t)
	da := newDA(db, new(leveldb.Batch), newCache())

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "pending write not visible")
	assert.Equal(t, defaultValue, actual, "wrong pending value")

	da.Abort()

	_, err = da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "aborted write visible")
	assert.False(t, da.InUse(), "abort did not release transaction")
}
