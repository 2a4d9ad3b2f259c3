// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/boundedvec/bounded"
	"github.com/bitmark-inc/boundedvec/configuration"
	"github.com/bitmark-inc/boundedvec/fault"
	"github.com/bitmark-inc/boundedvec/parameter"
	"github.com/bitmark-inc/boundedvec/storage"
)

type metadata struct {
	file     string
	config   *configuration.Configuration
	pools    map[string]*pool
	encoding string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that never write to the database
var readOnlyCommands = map[string]bool{
	"pools":  true,
	"get":    true,
	"len":    true,
	"maxlen": true,
	"stats":  true,
	"watch":  true,
}

func main() {

	app := cli.NewApp()
	app.Name = "boundedvec-cli"
	app.Usage = "inspect and update bounded vectors held in a leveldb store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	keyFlag := cli.StringSliceFlag{
		Name:  "key, k",
		Usage: " storage key `KEY`, repeat once per hasher of the pool",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "boundedvec.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "encoding, e",
			Value: encodingString,
			Usage: " text form of keys and byte elements `ENCODING` [string|hex|base58]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "pools",
			Usage:  "list the configured pools with their current bounds",
			Action: runPools,
		},
		{
			Name:      "get",
			Usage:     "show the vector stored under a key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag(),
				keyFlag,
			},
			Action: runGet,
		},
		{
			Name:      "len",
			Usage:     "show the number of elements stored under a key without decoding them",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag(),
				keyFlag,
			},
			Action: runLen,
		},
		{
			Name:      "put",
			Usage:     "replace the vector stored under a key",
			ArgsUsage: "[ELEMENT...]\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag(),
				keyFlag,
			},
			Action: runPut,
		},
		{
			Name:      "append",
			Usage:     "append one element if the vector is below its bound",
			ArgsUsage: "ELEMENT\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag(),
				keyFlag,
			},
			Action: runAppend,
		},
		{
			Name:      "remove",
			Usage:     "delete the vector stored under a key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag(),
				keyFlag,
			},
			Action: runRemove,
		},
		{
			Name:      "maxlen",
			Usage:     "show the largest possible encoding of a vector in a pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag(),
			},
			Action: runMaxLen,
		},
		{
			Name:   "stats",
			Usage:  "summarise the stored vectors of every pool",
			Action: runStats,
		},
		{
			Name:   "watch",
			Usage:  "reload bound parameters whenever the configuration file changes",
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display boundedvec-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		encoding := c.GlobalString("encoding")
		if _, err := textDecoder(encoding); nil != err {
			return err
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		config.Logging.Console = false
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}
		if err := bounded.Initialise(); nil != err {
			return err
		}
		if err := parameter.Load(config.Parameters); nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "opening database: %s\n", config.Database.Name)
		}
		if err := storage.Initialise(config.Database.Name, readOnlyCommands[command]); nil != err {
			return err
		}

		pools, err := registerPools(config.Pools)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:     file,
			config:   config,
			pools:    pools,
			encoding: encoding,
			verbose:  verbose,
			e:        e,
			w:        w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "statistics:\n")
			printJson(m.e, storage.Stats())
		}
		storage.Finalise()
		bounded.Finalise()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func poolFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "pool, p",
		Value: "",
		Usage: "*pool name `NAME`",
	}
}
