// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

// Bound - supplies the maximum length for a vector type
//
// implementations must be usable as their zero value, since the bound
// is looked up from a fresh S each time it is needed
type Bound interface {
	Get() uint32
}

// BoundOf - the bound of S as an int
func BoundOf[S Bound]() int {
	var s S
	return int(s.Get())
}
