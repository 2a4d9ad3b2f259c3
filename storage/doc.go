// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk store of bounded vectors
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte, either from the prefix tag
// in a struct passed to Bind or from an explicit Register call.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++            = concatenation of byte data
// 3. prefix 0x00   = reserved for database metadata
// 4. H(k)          = key hasher applied to the encoded key k
// 5. vector        = compact(count) ++ element[0] ++ ... ++ element[count-1]
//
// Value pools:
//
//   P                        - a single vector
//                              data: vector
//
// Map pools:
//
//   P ++ H(k)                - one vector per key
//                              data: vector
//
// Double map pools:
//
//   P ++ H1(k1) ++ H2(k2)    - one vector per key pair
//                              data: vector
//
// Metadata:
//
//   0x00 ++ "VERSION"        - database version
//                              data: big endian uint32
package storage
