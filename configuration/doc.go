// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file returns a table describing the database, the named bound
// parameters and the set of storage pools, e.g.
//
//   local M = {}
//   M.data_directory = "."
//   M.parameters = { max_owners = 16 }
//   M.pools = {
//       {
//           name = "owners",
//           prefix = "O",
//           kind = "map",
//           hashers = { "blake2_128_concat" },
//           bound = "max_owners",
//           element = { type = "bytes", maximum = 32 },
//       },
//   }
//   return M
package configuration
