// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/boundedvec/bounded"
	"github.com/bitmark-inc/boundedvec/fault"
	"github.com/bitmark-inc/boundedvec/storage"
)

// bounds used throughout the tests
type two struct{}
type three struct{}

func (two) Get() uint32   { return 2 }
func (three) Get() uint32 { return 3 }

// the pools used by the tests
type testPools struct {
	Owners *storage.PoolHandle `prefix:"O"`
	Tags   *storage.PoolHandle `prefix:"T" pool:"tags"`
	Grants *storage.PoolHandle `prefix:"G" pool:"grants"`
}

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "storage-test")
	if nil != err {
		fmt.Fprintf(os.Stderr, "temporary directory error: %s\n", err)
		os.Exit(1)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
			"bounded":         "warn",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = fault.Initialise()
	_ = bounded.Initialise()

	rc := m.Run()

	bounded.Finalise()
	fault.Finalise()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

// configure for testing, returns the database name
func setup(t *testing.T) (string, *testPools) {
	database := filepath.Join(t.TempDir(), "test.leveldb")
	require.Nil(t, storage.Initialise(database, storage.ReadWrite), "storage initialise error")

	pools := &testPools{}
	require.Nil(t, storage.Bind(pools), "bind error")
	storage.ResetStats()
	return database, pools
}

// post test cleanup
func teardown() {
	storage.Finalise()
}

func TestInitialiseTwice(t *testing.T) {
	database, _ := setup(t)
	defer teardown()

	err := storage.Initialise(database, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise accepted")
}

func TestReadOnly(t *testing.T) {
	database, _ := setup(t)
	storage.Finalise()

	require.Nil(t, storage.Initialise(database, storage.ReadOnly), "read only open error")
	defer teardown()

	assert.True(t, storage.IsReadOnly(), "not read only")

	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrReadOnly, err, "write transaction on read only database")
}

func TestReadOnlyMissingDatabase(t *testing.T) {
	err := storage.Initialise(filepath.Join(t.TempDir(), "missing.leveldb"), storage.ReadOnly)
	assert.NotNil(t, err, "missing database opened")
}

func TestBindErrors(t *testing.T) {
	_, _ = setup(t)
	defer teardown()

	var notPointer testPools
	assert.Equal(t, fault.ErrInvalidStructPointer, storage.Bind(notPointer), "struct value accepted")

	duplicate := &struct {
		Again *storage.PoolHandle `prefix:"O" pool:"again"`
	}{}
	assert.True(t, errors.Is(storage.Bind(duplicate), fault.ErrDuplicatePoolPrefix), "duplicate prefix accepted")

	badPrefix := &struct {
		Bad *storage.PoolHandle `prefix:"XY"`
	}{}
	assert.True(t, errors.Is(storage.Bind(badPrefix), fault.ErrInvalidPoolPrefix), "long prefix accepted")

	badType := &struct {
		Bad *int `prefix:"Q"`
	}{}
	assert.True(t, errors.Is(storage.Bind(badType), fault.ErrInvalidStructPointer), "non handle field accepted")
}

func TestRegister(t *testing.T) {
	_, pools := setup(t)
	defer teardown()

	p, err := storage.Register("extra", 'X')
	require.Nil(t, err, "register error")
	assert.Equal(t, "extra", p.Name(), "wrong name")
	assert.Equal(t, byte('X'), p.Prefix(), "wrong prefix")

	_, err = storage.Register("extra", 'Y')
	assert.Equal(t, fault.ErrDuplicatePoolName, err, "duplicate name accepted")
	_, err = storage.Register("other", 'X')
	assert.Equal(t, fault.ErrDuplicatePoolPrefix, err, "duplicate prefix accepted")
	_, err = storage.Register("zero", 0)
	assert.Equal(t, fault.ErrInvalidPoolPrefix, err, "reserved prefix accepted")
	_, err = storage.Register("", 'Z')
	assert.Equal(t, fault.ErrInvalidPoolName, err, "empty name accepted")

	found, ok := storage.Lookup("tags")
	assert.True(t, ok, "tags not found")
	assert.Equal(t, pools.Tags, found, "wrong pool")

	found, ok = storage.Lookup("Owners")
	assert.True(t, ok, "field name not used")
	assert.Equal(t, pools.Owners, found, "wrong pool")

	names := []string{}
	for _, p := range storage.Pools() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"grants", "Owners", "tags", "extra"}, names, "pools not in prefix order")
}

func TestRegisterBeforeInitialise(t *testing.T) {
	_, err := storage.Register("early", 'E')
	assert.Equal(t, fault.ErrNotInitialised, err, "register without database")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "transaction without database")
}
