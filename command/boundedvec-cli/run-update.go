// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/boundedvec/storage"
)

type updateResult struct {
	Pool   string `json:"pool"`
	Action string `json:"action"`
	Length uint64 `json:"length"`
}

func runPut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, parts, err := poolAndKeys(c, m)
	if nil != err {
		return err
	}

	decode, err := textDecoder(m.encoding)
	if nil != err {
		return err
	}

	args := c.Args()
	elements := make([][]byte, len(args))
	for i, arg := range args {
		elements[i], err = p.element.encode(arg, decode)
		if nil != err {
			return fmt.Errorf("element: %q: %w", arg, err)
		}
	}

	err = update(func(trx storage.Transaction) error {
		return p.layout.Put(trx, elements, parts...)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, updateResult{
		Pool:   p.config.Name,
		Action: "put",
		Length: uint64(len(args)),
	})
}

func runAppend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, parts, err := poolAndKeys(c, m)
	if nil != err {
		return err
	}

	if 1 != len(c.Args()) {
		return ErrMissingElement
	}
	arg := c.Args().First()

	decode, err := textDecoder(m.encoding)
	if nil != err {
		return err
	}
	element, err := p.element.encode(arg, decode)
	if nil != err {
		return fmt.Errorf("element: %q: %w", arg, err)
	}

	n := uint64(0)
	err = update(func(trx storage.Transaction) error {
		err := p.layout.TryAppend(trx, element, parts...)
		if nil != err {
			return err
		}
		n, _, err = p.layout.DecodeLength(trx, parts...)
		return err
	})
	if nil != err {
		return err
	}

	return printJson(m.w, updateResult{
		Pool:   p.config.Name,
		Action: "append",
		Length: n,
	})
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, parts, err := poolAndKeys(c, m)
	if nil != err {
		return err
	}

	err = update(func(trx storage.Transaction) error {
		return p.layout.Remove(trx, parts...)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, updateResult{
		Pool:   p.config.Name,
		Action: "remove",
	})
}

// run f in a transaction, committing only if it succeeds
func update(f func(storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	if err := f(trx); nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}
