// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/fault"
	"github.com/bitmark-inc/boundedvec/storage"
)

func TestLayoutAppend(t *testing.T) {
	_, pools := setup(t)
	defer teardown()

	bound := uint32(2)
	l, err := storage.NewLayout(pools.Tags, []string{storage.Blake2b128ConcatName}, func() uint32 { return bound })
	require.Nil(t, err, "layout error")

	trx := setupTransaction(t)
	defer trx.Abort()

	key := []byte("owner")
	assert.Nil(t, l.TryAppend(trx, []byte{1}, key), "first append")
	assert.Nil(t, l.TryAppend(trx, []byte{2}, key), "second append")
	assert.Equal(t, fault.ErrBoundExceeded, l.TryAppend(trx, []byte{3}, key), "append over bound")

	// a raised bound applies immediately
	bound = 3
	assert.Nil(t, l.TryAppend(trx, []byte{3}, key), "append after raising bound")

	data, err := l.Get(trx, key)
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte{3, 1, 2, 3}, data, "wrong stored vector")

	n, _, _ := l.DecodeLength(trx, key)
	assert.Equal(t, uint64(3), n, "wrong length")

	_, err = l.Key()
	assert.Equal(t, fault.ErrInvalidKeyCount, err, "missing key part accepted")
	assert.Equal(t, fault.ErrInvalidKeyCount, l.TryAppend(trx, []byte{4}, key, key), "extra key part accepted")
}

func TestLayoutPut(t *testing.T) {
	_, pools := setup(t)
	defer teardown()

	l, err := storage.NewLayout(pools.Owners, nil, func() uint32 { return 2 })
	require.Nil(t, err, "layout error")

	trx := setupTransaction(t)
	defer trx.Abort()

	e1, _ := codec.Marshal(codec.Uint32, 1)
	e2, _ := codec.Marshal(codec.Uint32, 2)
	e3, _ := codec.Marshal(codec.Uint32, 3)

	assert.Equal(t, fault.ErrBoundExceeded, l.Put(trx, [][]byte{e1, e2, e3}), "over bound vector stored")
	data, _ := l.Get(trx)
	assert.Nil(t, data, "rejected vector stored")

	assert.Nil(t, l.Put(trx, [][]byte{e1, e2}), "put error")

	expected, _ := codec.EncodeSequence(codec.Uint32, []uint32{1, 2})
	data, _ = l.Get(trx)
	assert.Equal(t, expected, data, "wrong stored vector")

	require.Nil(t, l.Remove(trx), "remove error")
	data, _ = l.Get(trx)
	assert.Nil(t, data, "vector not removed")
}

func TestLayoutPutPrefixMatchesElements(t *testing.T) {
	_, pools := setup(t)
	defer teardown()

	l, err := storage.NewLayout(pools.Owners, nil, func() uint32 { return 3 })
	require.Nil(t, err, "layout error")

	trx := setupTransaction(t)
	e1, _ := codec.Marshal(codec.Uint32, 1)
	require.Nil(t, l.Put(trx, [][]byte{e1}), "put error")
	require.Nil(t, l.TryAppend(trx, []byte{2, 0, 0, 0}), "append error")
	require.Nil(t, trx.Commit(), "commit error")

	items, err := codec.DecodeSequence(codec.Uint32, pools.Owners.Get([]byte{}))
	assert.Nil(t, err, "stored vector does not decode")
	assert.Equal(t, []uint32{1, 2}, items, "wrong stored items")

	// an empty vector is stored as a zero count
	trx = setupTransaction(t)
	defer trx.Abort()
	require.Nil(t, l.Put(trx, nil), "put empty error")
	data, _ := l.Get(trx)
	assert.Equal(t, []byte{0}, data, "wrong empty vector")
}

func TestLayoutUnknownHasher(t *testing.T) {
	_, pools := setup(t)
	defer teardown()

	_, err := storage.NewLayout(pools.Tags, []string{"md5"}, func() uint32 { return 1 })
	assert.Equal(t, fault.ErrInvalidHasher, err, "unknown hasher accepted")
}

func TestSummarise(t *testing.T) {
	_, pools := setup(t)
	defer teardown()

	trx := setupTransaction(t)
	for i := byte(0); i < 3; i += 1 {
		require.Nil(t, trx.AppendRaw(pools.Tags, []byte{'a'}, []byte{i}), "append error")
	}
	require.Nil(t, trx.AppendRaw(pools.Tags, []byte{'b'}, []byte{9}), "append error")
	trx.Put(pools.Tags, []byte{'c'}, []byte{0x80})
	require.Nil(t, trx.Commit(), "commit error")

	s, err := pools.Tags.Summarise(2)
	require.Nil(t, err, "summarise error")
	assert.Equal(t, storage.Summary{
		Name:      "tags",
		Prefix:    "T",
		Vectors:   3,
		Elements:  4,
		Bytes:     4 + 2 + 1,
		Longest:   3,
		OverBound: 1,
		Malformed: 1,
	}, s, "wrong summary")
}

func TestHashers(t *testing.T) {
	key := []byte("key")

	assert.Equal(t, key, storage.Identity(key), "identity changed key")
	assert.Equal(t, 32, len(storage.Sha3Digest(key)), "wrong digest size")
	assert.NotEqual(t, storage.Sha3Digest(key), storage.Sha3Digest([]byte("other")), "digest collision")

	concat := storage.Blake2b128Concat(key)
	assert.Equal(t, 16+len(key), len(concat), "wrong concat size")
	assert.Equal(t, key, concat[16:], "key not appended")

	for _, name := range []string{storage.IdentityName, storage.Blake2b128ConcatName, storage.Sha3DigestName} {
		h, err := storage.HasherByName(name)
		assert.Nil(t, err, "hasher: %s", name)
		assert.NotNil(t, h, "hasher: %s", name)
	}
}
