// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/boundedvec/counter"
)

var statistics struct {
	reads    counter.Counter
	writes   counter.Counter
	deletes  counter.Counter
	appends  counter.Counter
	rejected counter.Counter
	commits  counter.Counter
	aborts   counter.Counter
}

// Statistics - transaction operation counts since start or last reset
type Statistics struct {
	Reads    uint64 `json:"reads"`
	Writes   uint64 `json:"writes"`
	Deletes  uint64 `json:"deletes"`
	Appends  uint64 `json:"appends"`
	Rejected uint64 `json:"rejected_appends"`
	Commits  uint64 `json:"commits"`
	Aborts   uint64 `json:"aborts"`
}

// Stats - current counts
func Stats() Statistics {
	return Statistics{
		Reads:    statistics.reads.Uint64(),
		Writes:   statistics.writes.Uint64(),
		Deletes:  statistics.deletes.Uint64(),
		Appends:  statistics.appends.Uint64(),
		Rejected: statistics.rejected.Uint64(),
		Commits:  statistics.commits.Uint64(),
		Aborts:   statistics.aborts.Uint64(),
	}
}

// ResetStats - zero all counts
func ResetStats() {
	statistics.reads.Reset()
	statistics.writes.Reset()
	statistics.deletes.Reset()
	statistics.appends.Reset()
	statistics.rejected.Reset()
	statistics.commits.Reset()
	statistics.aborts.Reset()
}
