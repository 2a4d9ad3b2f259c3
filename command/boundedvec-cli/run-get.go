// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/boundedvec/codec"
)

type getResult struct {
	Pool     string        `json:"pool"`
	Bound    int           `json:"bound"`
	Length   int           `json:"length"`
	Elements []interface{} `json:"elements"`
}

type lenResult struct {
	Pool   string `json:"pool"`
	Bound  int    `json:"bound"`
	Exists bool   `json:"exists"`
	Length uint64 `json:"length"`
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, parts, err := poolAndKeys(c, m)
	if nil != err {
		return err
	}

	data, err := readVector(p, parts)
	if nil != err {
		return err
	}
	if nil == data {
		return ErrNotFound
	}

	encode, err := textEncoder(m.encoding)
	if nil != err {
		return err
	}

	elements, err := p.element.decode(data, encode)
	if nil != err {
		return err
	}

	bound := p.layout.Bound()
	if m.verbose && len(elements) > bound {
		fmt.Fprintf(m.e, "warning: stored length: %d exceeds bound: %d\n", len(elements), bound)
	}

	result := getResult{
		Pool:     p.config.Name,
		Bound:    bound,
		Length:   len(elements),
		Elements: elements,
	}
	return printJson(m.w, result)
}

func runLen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, parts, err := poolAndKeys(c, m)
	if nil != err {
		return err
	}

	data, err := readVector(p, parts)
	if nil != err {
		return err
	}

	result := lenResult{
		Pool:   p.config.Name,
		Bound:  p.layout.Bound(),
		Exists: nil != data,
	}
	if nil != data {
		// only the count prefix is examined
		n, err := codec.DecodeLength(data)
		if nil != err {
			return err
		}
		result.Length = n
	}
	return printJson(m.w, result)
}

func poolAndKeys(c *cli.Context, m *metadata) (*pool, [][]byte, error) {
	p, err := selectPool(c, m)
	if nil != err {
		return nil, nil, err
	}
	parts, err := keyParts(c, m, p)
	if nil != err {
		return nil, nil, err
	}
	return p, parts, nil
}

// committed data only
func readVector(p *pool, parts [][]byte) ([]byte, error) {
	key, err := p.layout.Key(parts...)
	if nil != err {
		return nil, err
	}
	return p.layout.Pool().Get(key), nil
}
