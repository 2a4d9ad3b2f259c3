// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bounded - vectors with a hard upper limit on their length
//
// A Vec[T, S] holds at most S.Get() elements. The bound belongs to the
// type, not to the value: S is normally an empty struct with a Get
// method returning a constant or a named configuration parameter.
//
//   type maxOwners struct{}
//   func (maxOwners) Get() uint32 { return 16 }
//
//   owners, err := bounded.TryFrom[string, maxOwners](names)
//
// Every mutator either keeps len <= bound or fails with
// fault.ErrBoundExceeded and leaves the vector unchanged. Index
// arguments out of range are programming errors and panic.
//
// Once stored, a vector is grown with TryAppend which looks only at the
// count prefix of the stored bytes and never decodes the elements.
package bounded
