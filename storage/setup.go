// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/boundedvec/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db       *leveldb.DB
	readOnly bool
	trx      Transaction
	pools    map[string]*PoolHandle
	prefixes map[byte]*PoolHandle
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is registered or accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		return fmt.Errorf("database version: %d > current version: %d: %w", version, currentDBVersion, fault.ErrIncompatibleDBVersion)
	}

	if 0 == version {

		// prevent readOnly from modifying the database
		if readOnly {
			return fmt.Errorf("database: %q has no version: %w", database, fault.ErrIncompatibleDBVersion)
		}

		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return err
		}

	} else if version < currentDBVersion {
		return fmt.Errorf("database version: %d < current version: %d: %w", version, currentDBVersion, fault.ErrIncompatibleDBVersion)
	}

	poolData.db = db
	poolData.readOnly = readOnly
	poolData.trx = newTransaction(newDA(db, new(leveldb.Batch), newCache()), readOnly)
	poolData.pools = make(map[string]*PoolHandle)
	poolData.prefixes = make(map[byte]*PoolHandle)

	ok = true // prevent db close
	return nil
}

// Finalise - close the database connection
//
// all pool handles become invalid
func Finalise() {
	poolData.Lock()
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.trx = nil
	poolData.pools = nil
	poolData.prefixes = nil
	poolData.Unlock()
}

// IsReadOnly - true if opened with ReadOnly
func IsReadOnly() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.readOnly
}

// return:
//   databse handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// Register - create a pool with a unique name and prefix
func Register(name string, prefix byte) (*PoolHandle, error) {
	poolData.Lock()
	defer poolData.Unlock()

	return register(name, prefix)
}

func register(name string, prefix byte) (*PoolHandle, error) {
	if nil == poolData.db {
		return nil, fault.ErrNotInitialised
	}
	if "" == name {
		return nil, fault.ErrInvalidPoolName
	}
	if 0 == prefix {
		return nil, fault.ErrInvalidPoolPrefix
	}
	if _, ok := poolData.pools[name]; ok {
		return nil, fault.ErrDuplicatePoolName
	}
	if _, ok := poolData.prefixes[prefix]; ok {
		return nil, fault.ErrDuplicatePoolPrefix
	}

	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}

	p := &PoolHandle{
		name:   name,
		prefix: prefix,
		limit:  limit,
	}
	poolData.pools[name] = p
	poolData.prefixes[prefix] = p
	return p, nil
}

// Bind - register every *PoolHandle field of a struct
//
// each field needs a single character prefix tag; the pool name is
// the optional pool tag or else the field name, e.g.
//
//   var pools struct {
//       Owners *storage.PoolHandle `prefix:"O"`
//       Tags   *storage.PoolHandle `prefix:"T" pool:"tags"`
//   }
//   err := storage.Bind(&pools)
//
// note all fields must be exported or binding will fail
func Bind(pools interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(pools)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	// get write access by using pointer + Elem()
	poolValue := rv.Elem()
	poolType := poolValue.Type()
	handleType := reflect.TypeOf((*PoolHandle)(nil))

	poolData.Lock()
	defer poolData.Unlock()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		field := poolValue.Field(i)

		if fieldInfo.Type != handleType || !field.CanSet() {
			return fmt.Errorf("pool: %s is not an exported *PoolHandle: %w", fieldInfo.Name, fault.ErrInvalidStructPointer)
		}

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %s has invalid prefix: %q: %w", fieldInfo.Name, prefixTag, fault.ErrInvalidPoolPrefix)
		}

		name := fieldInfo.Tag.Get("pool")
		if "" == name {
			name = fieldInfo.Name
		}

		p, err := register(name, prefixTag[0])
		if nil != err {
			return fmt.Errorf("pool: %s: %w", fieldInfo.Name, err)
		}
		field.Set(reflect.ValueOf(p))
	}
	return nil
}

// Lookup - find a registered pool by name
func Lookup(name string) (*PoolHandle, bool) {
	poolData.RLock()
	defer poolData.RUnlock()
	p, ok := poolData.pools[name]
	return p, ok
}

// Pools - all registered pools in prefix order
func Pools() []*PoolHandle {
	poolData.RLock()
	pools := make([]*PoolHandle, 0, len(poolData.pools))
	for _, p := range poolData.pools {
		pools = append(pools, p)
	}
	poolData.RUnlock()

	sort.Slice(pools, func(i, j int) bool {
		return pools[i].prefix < pools[j].prefix
	})
	return pools
}

// NewDBTransaction - start the single write transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.ErrDatabaseIsNotSet
	}

	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}
