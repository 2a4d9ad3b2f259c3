// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - bounded queues carrying notifications between
// background processes
//
// a sender never blocks: when a queue is full the message is dropped
// and counted
package messagebus
