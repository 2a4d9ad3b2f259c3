// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/boundedvec/codec"
)

// Summary - committed contents of one pool
type Summary struct {
	Name      string `json:"name"`
	Prefix    string `json:"prefix"`
	Vectors   uint64 `json:"vectors"`
	Elements  uint64 `json:"elements"`
	Bytes     uint64 `json:"bytes"`
	Longest   uint64 `json:"longest"`
	OverBound uint64 `json:"over_bound"`
	Malformed uint64 `json:"malformed"`
}

// Summarise - scan the pool counting vectors against bound
//
// undecodable values are counted, not returned as errors
func (p *PoolHandle) Summarise(bound int) (Summary, error) {
	s := Summary{
		Name:   p.name,
		Prefix: string([]byte{p.prefix}),
	}

	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		s.Vectors += 1
		s.Bytes += uint64(len(value))

		if 0 == len(value) {
			return nil
		}
		n, err := codec.DecodeLength(value)
		if nil != err {
			s.Malformed += 1
			return nil
		}
		s.Elements += n
		if n > s.Longest {
			s.Longest = n
		}
		if n > uint64(bound) {
			s.OverBound += 1
		}
		return nil
	})
	return s, err
}
