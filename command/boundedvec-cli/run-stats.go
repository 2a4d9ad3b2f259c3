// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/boundedvec/storage"
)

type maxLenResult struct {
	Pool          string `json:"pool"`
	Bound         int    `json:"bound"`
	ElementMax    int    `json:"element_max_encoded_length"`
	MaxEncodedLen int    `json:"max_encoded_length"`
}

func runMaxLen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := selectPool(c, m)
	if nil != err {
		return err
	}

	return printJson(m.w, maxLenResult{
		Pool:          p.config.Name,
		Bound:         p.layout.Bound(),
		ElementMax:    p.element.maxEncodedLen,
		MaxEncodedLen: p.maxEncodedLen(),
	})
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result := []storage.Summary{}
	for _, handle := range storage.Pools() {
		p, ok := m.pools[handle.Name()]
		if !ok {
			continue
		}
		s, err := handle.Summarise(p.layout.Bound())
		if nil != err {
			return err
		}
		result = append(result, s)
	}

	return printJson(m.w, result)
}
