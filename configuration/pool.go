// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/boundedvec/fault"
)

// pool kinds
const (
	KindValue     = "value"
	KindMap       = "map"
	KindDoubleMap = "double_map"
)

// element types
const (
	ElementU32    = "u32"
	ElementU64    = "u64"
	ElementBool   = "bool"
	ElementBytes  = "bytes"
	ElementString = "string"
	ElementCBOR   = "cbor"
)

// number of key hashers each kind needs
var kindKeys = map[string]int{
	KindValue:     0,
	KindMap:       1,
	KindDoubleMap: 2,
}

// element types that need a maximum size
var elementSized = map[string]bool{
	ElementU32:    false,
	ElementU64:    false,
	ElementBool:   false,
	ElementBytes:  true,
	ElementString: true,
	ElementCBOR:   true,
}

// ElementConfiguration - how the elements of a pool are encoded
type ElementConfiguration struct {
	Type    string `gluamapper:"type" json:"type"`
	Maximum int    `gluamapper:"maximum" json:"maximum,omitempty"`
}

// PoolConfiguration - one storage pool holding bounded vectors
type PoolConfiguration struct {
	Name    string               `gluamapper:"name" json:"name"`
	Prefix  string               `gluamapper:"prefix" json:"prefix"`
	Kind    string               `gluamapper:"kind" json:"kind"`
	Hashers []string             `gluamapper:"hashers" json:"hashers,omitempty"`
	Bound   string               `gluamapper:"bound" json:"bound"`
	Element ElementConfiguration `gluamapper:"element" json:"element"`
}

// KeyCount - number of key parts needed to address one vector
func (p *PoolConfiguration) KeyCount() int {
	return kindKeys[p.Kind]
}

func validatePools(pools []PoolConfiguration, parameters map[string]uint32) error {
	names := make(map[string]struct{})
	prefixes := make(map[byte]string)

	for i := range pools {
		p := &pools[i]

		p.Kind = strings.ToLower(p.Kind)
		p.Element.Type = strings.ToLower(p.Element.Type)

		if "" == p.Name {
			return fault.ErrInvalidPoolName
		}
		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("pool: %q: %w", p.Name, fault.ErrDuplicatePoolName)
		}
		names[p.Name] = struct{}{}

		// prefix 0x00 is reserved for the database version
		if 1 != len(p.Prefix) || 0 == p.Prefix[0] {
			return fmt.Errorf("pool: %q prefix: %q: %w", p.Name, p.Prefix, fault.ErrInvalidPoolPrefix)
		}
		if other, ok := prefixes[p.Prefix[0]]; ok {
			return fmt.Errorf("pool: %q shares prefix with: %q: %w", p.Name, other, fault.ErrDuplicatePoolPrefix)
		}
		prefixes[p.Prefix[0]] = p.Name

		keys, ok := kindKeys[p.Kind]
		if !ok {
			return fmt.Errorf("pool: %q kind: %q: %w", p.Name, p.Kind, fault.ErrInvalidPoolKind)
		}
		if keys != len(p.Hashers) {
			return fmt.Errorf("pool: %q needs %d hashers: %w", p.Name, keys, fault.ErrInvalidKeyCount)
		}

		if _, ok := parameters[p.Bound]; !ok {
			return fmt.Errorf("pool: %q bound: %q: %w", p.Name, p.Bound, fault.ErrMissingParameter)
		}

		sized, ok := elementSized[p.Element.Type]
		if !ok {
			return fmt.Errorf("pool: %q element: %q: %w", p.Name, p.Element.Type, fault.ErrUnknownElementType)
		}
		if sized && p.Element.Maximum <= 0 {
			return fmt.Errorf("pool: %q element maximum: %d: %w", p.Name, p.Element.Maximum, fault.ErrParameterOutOfRange)
		}
	}
	return nil
}
