// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/boundedvec/storage"
)

func runPools(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// registration order is by prefix
	result := []poolInfo{}
	for _, handle := range storage.Pools() {
		if p, ok := m.pools[handle.Name()]; ok {
			result = append(result, p.info())
		}
	}

	return printJson(m.w, result)
}
