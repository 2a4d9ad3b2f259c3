// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - length-prefixed binary encoding of sequences
//
// A sequence is stored as:
//
//   compact(count) ++ element_0 ++ element_1 ++ ... ++ element_(count-1)
//
// Notes:
// 1. ++       = concatenation of byte data
// 2. compact  = Varint64, 7 bits per byte with a continuation bit,
//               the 9th byte (if any) carries a full 8 bits
// 3. element  = encoding produced by a Codec, must be self delimiting
//
// Since compact is self delimiting the count can be read from the
// head of a buffer without knowing anything about the elements, and a
// new element can be appended by rewriting only the prefix.
package codec
