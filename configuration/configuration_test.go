// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/boundedvec/configuration"
	"github.com/bitmark-inc/boundedvec/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, validConfiguration)
	dir := filepath.Dir(fileName)

	options, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "configuration error")

	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "test.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, "boundedvec.log", options.Logging.File, "default log file lost")
	assert.Equal(t, 4096, options.Logging.Size, "wrong log size")
	assert.Equal(t, "info", options.Logging.Levels["bounded"], "log level not overridden")
	assert.Equal(t, "critical", options.Logging.Levels[logger.DefaultTag], "default log level lost")

	assert.Equal(t, map[string]uint32{"max_owners": 2, "max_tags": 7}, options.Parameters, "wrong parameters")

	require.Equal(t, 3, len(options.Pools), "wrong pool count")

	owners, ok := options.Pool("owners")
	require.True(t, ok, "owners pool missing")
	assert.Equal(t, "O", owners.Prefix, "wrong prefix")
	assert.Equal(t, configuration.KindValue, owners.Kind, "wrong kind")
	assert.Equal(t, 0, owners.KeyCount(), "wrong key count")
	assert.Equal(t, configuration.ElementU32, owners.Element.Type, "wrong element type")

	tags, ok := options.Pool("tags")
	require.True(t, ok, "tags pool missing")
	assert.Equal(t, []string{"blake2_128_concat"}, tags.Hashers, "wrong hashers")
	assert.Equal(t, 32, tags.Element.Maximum, "wrong maximum")
	assert.Equal(t, "max_tags", tags.Bound, "wrong bound")

	grants, ok := options.Pool("grants")
	require.True(t, ok, "grants pool missing")
	assert.Equal(t, configuration.KindDoubleMap, grants.Kind, "kind not lower cased")
	assert.Equal(t, 2, grants.KeyCount(), "wrong key count")

	_, ok = options.Pool("missing")
	assert.False(t, ok, "unknown pool found")
}

func TestInvalidPools(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected error
	}{
		{"duplicate prefix", `prefix = "T"`, `prefix = "O"`, fault.ErrDuplicatePoolPrefix},
		{"long prefix", `prefix = "T"`, `prefix = "TT"`, fault.ErrInvalidPoolPrefix},
		{"duplicate name", `name = "tags"`, `name = "owners"`, fault.ErrDuplicatePoolName},
		{"unknown kind", `kind = "map"`, `kind = "tree"`, fault.ErrInvalidPoolKind},
		{"missing hasher", `hashers = { "blake2_128_concat" }`, `hashers = { "identity", "identity" }`, fault.ErrInvalidKeyCount},
		{"missing bound", `bound = "max_owners"`, `bound = "max_things"`, fault.ErrMissingParameter},
		{"unknown element", `type = "u32"`, `type = "u128"`, fault.ErrUnknownElementType},
		{"unsized element", `maximum = 32`, `maximum = 0`, fault.ErrParameterOutOfRange},
	}

	for _, test := range tests {
		text := strings.Replace(validConfiguration, test.from, test.to, 1)
		require.NotEqual(t, validConfiguration, text, "%s: replacement did not apply", test.name)

		_, err := configuration.GetConfiguration(writeConfiguration(t, text))
		assert.True(t, errors.Is(err, test.expected), "%s: expected: %v  actual: %v", test.name, test.expected, err)
	}
}

func TestInvalidDataDirectory(t *testing.T) {
	text := strings.Replace(validConfiguration, `M.data_directory = "."`, `M.data_directory = ""`, 1)
	_, err := configuration.GetConfiguration(writeConfiguration(t, text))
	assert.NotNil(t, err, "empty data directory accepted")

	text = strings.Replace(validConfiguration, `name = "test.leveldb"`, `name = "sub/test.leveldb"`, 1)
	_, err = configuration.GetConfiguration(writeConfiguration(t, text))
	assert.NotNil(t, err, "database path accepted as a name")
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeConfiguration(t, `return { data_directory = arg[0] }`)

	var options configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, &options)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, fileName, options.DataDirectory, "arg[0] is not the file name")

	err = configuration.ParseConfigurationFile(fileName, options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer accepted")

	err = configuration.ParseConfigurationFile(writeConfiguration(t, `return 5`), &options)
	assert.Equal(t, fault.ErrMissingParameter, err, "non table accepted")

	err = configuration.ParseConfigurationFile(writeConfiguration(t, `return {`), &options)
	assert.NotNil(t, err, "Lua syntax error accepted")
}
