// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/configuration"
	"github.com/bitmark-inc/boundedvec/parameter"
	"github.com/bitmark-inc/boundedvec/storage"
)

// a configured pool ready for use
type pool struct {
	config  *configuration.PoolConfiguration
	layout  *storage.Layout
	element *elementHandler
}

type poolInfo struct {
	Name          string   `json:"name"`
	Prefix        string   `json:"prefix"`
	Kind          string   `json:"kind"`
	Hashers       []string `json:"hashers"`
	Bound         string   `json:"bound"`
	Current       uint32   `json:"current_bound"`
	Element       string   `json:"element"`
	MaxEncodedLen int      `json:"max_encoded_length"`
}

func registerPools(pools []configuration.PoolConfiguration) (map[string]*pool, error) {
	result := make(map[string]*pool, len(pools))

	for i := range pools {
		config := &pools[i]

		handle, err := storage.Register(config.Name, config.Prefix[0])
		if nil != err {
			return nil, fmt.Errorf("pool: %q: %w", config.Name, err)
		}

		name := config.Bound
		layout, err := storage.NewLayout(handle, config.Hashers, func() uint32 {
			return parameter.Get(name)
		})
		if nil != err {
			return nil, fmt.Errorf("pool: %q: %w", config.Name, err)
		}

		element, err := newElementHandler(config.Element)
		if nil != err {
			return nil, fmt.Errorf("pool: %q: %w", config.Name, err)
		}

		result[config.Name] = &pool{
			config:  config,
			layout:  layout,
			element: element,
		}
	}
	return result, nil
}

// the largest encoding of a full vector in this pool
func (p *pool) maxEncodedLen() int {
	return codec.MaxSequenceLen(uint32(p.layout.Bound()), p.element.maxEncodedLen)
}

func (p *pool) info() poolInfo {
	return poolInfo{
		Name:          p.config.Name,
		Prefix:        p.config.Prefix,
		Kind:          p.config.Kind,
		Hashers:       p.config.Hashers,
		Bound:         p.config.Bound,
		Current:       uint32(p.layout.Bound()),
		Element:       p.config.Element.Type,
		MaxEncodedLen: p.maxEncodedLen(),
	}
}

// the pool named by --pool
func selectPool(c *cli.Context, m *metadata) (*pool, error) {
	name := c.String("pool")
	if "" == name {
		return nil, ErrMissingPool
	}
	p, ok := m.pools[name]
	if !ok {
		return nil, fmt.Errorf("pool: %q: %w", name, ErrUnknownPool)
	}
	return p, nil
}

// the key parts given by --key, one per hasher
func keyParts(c *cli.Context, m *metadata, p *pool) ([][]byte, error) {
	keys := c.StringSlice("key")
	if len(keys) != p.config.KeyCount() {
		return nil, fmt.Errorf("pool: %q needs %d key(s) but %d given: %w", p.config.Name, p.config.KeyCount(), len(keys), ErrKeyCount)
	}

	decode, err := textDecoder(m.encoding)
	if nil != err {
		return nil, err
	}

	parts := make([][]byte, len(keys))
	for i, k := range keys {
		parts[i], err = decode(k)
		if nil != err {
			return nil, fmt.Errorf("key: %q: %w", k, err)
		}
	}
	return parts, nil
}
