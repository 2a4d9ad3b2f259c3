// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/boundedvec/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidEncoding = fault.InvalidError("invalid text encoding")
	ErrKeyCount        = fault.InvalidError("wrong number of keys")
	ErrMissingElement  = fault.InvalidError("element argument is missing")
	ErrMissingPool     = fault.InvalidError("pool name is missing")
	ErrNotFound        = fault.NotFoundError("no vector stored under key")
	ErrUnknownPool     = fault.NotFoundError("pool not found")
)
