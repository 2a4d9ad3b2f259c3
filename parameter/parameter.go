// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package parameter - named numeric configuration values
//
// bounds that must come from configuration rather than being compiled
// in are read from here, e.g.
//
//   type maxOwners struct{}
//
//   func (maxOwners) Get() uint32 { return parameter.Get("max_owners") }
package parameter

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/boundedvec/fault"
)

var globalData struct {
	sync.RWMutex
	values map[string]uint32
}

// Load - replace all parameters
func Load(values map[string]uint32) error {
	loaded := make(map[string]uint32, len(values))
	for name, value := range values {
		if "" == name {
			return fault.ErrMissingParameter
		}
		loaded[name] = value
	}

	globalData.Lock()
	globalData.values = loaded
	globalData.Unlock()
	return nil
}

// Set - add or change one parameter
func Set(name string, value uint32) error {
	if "" == name {
		return fault.ErrMissingParameter
	}

	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.values {
		globalData.values = make(map[string]uint32)
	}
	globalData.values[name] = value
	return nil
}

// Lookup - value of a parameter and whether it is set
func Lookup(name string) (uint32, bool) {
	globalData.RLock()
	value, ok := globalData.values[name]
	globalData.RUnlock()
	return value, ok
}

// Get - value of a parameter, zero if it was never set
//
// a missing bound therefore admits no elements
func Get(name string) uint32 {
	value, _ := Lookup(name)
	return value
}

// Names - all parameter names in sorted order
func Names() []string {
	globalData.RLock()
	names := make([]string, 0, len(globalData.values))
	for name := range globalData.values {
		names = append(names, name)
	}
	globalData.RUnlock()

	sort.Strings(names)
	return names
}
