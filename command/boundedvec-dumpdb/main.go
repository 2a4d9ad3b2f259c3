// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/configuration"
	"github.com/bitmark-inc/boundedvec/parameter"
	"github.com/bitmark-inc/boundedvec/storage"
	"github.com/bitmark-inc/boundedvec/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	lenColour1 = "\033[1;32m"
	overColour = "\033[1;35m"
	badColour  = "\033[0;31m"
	endColour  = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "early", HasArg: getoptions.NO_ARGUMENT, Short: 'e'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "literal", HasArg: getoptions.NO_ARGUMENT, Short: 'L'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'C'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	// pool names and bounds are only known from a configuration file
	var config *configuration.Configuration
	if len(options["config"]) > 0 {
		config, err = configuration.GetConfiguration(options["config"][0])
		if nil != err {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
		if err := parameter.Load(config.Parameters); nil != err {
			exitwithstatus.Message("%s: parameter error: %s", program, err)
		}
	}

	if len(options["list"]) > 0 {
		if nil == config {
			exitwithstatus.Message("%s: --list requires --config", program)
		}

		// print all configured prefixes
		fmt.Printf(" tags:\n")
		for _, p := range config.Pools {
			fmt.Printf("       %s → %s  (%s, bound: %s = %d)\n", p.Prefix, p.Name, p.Kind, p.Bound, parameter.Get(p.Bound))
		}
		return
	}

	filename := ""
	if 1 == len(options["file"]) {
		filename = options["file"][0]
	} else if nil != config {
		filename = config.Database.Name
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || "" == filename {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--ascii] [--literal] [--early] [--count=N] [--config=FILE] [--list] --file=FILE tag [key-prefix]", program)
	}

	earlyStop := len(options["early"]) > 0
	colour := len(options["colour"]) > 0
	ascii := len(options["ascii"]) > 0
	literal := len(options["literal"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	tag := arguments[0]
	if 1 != len(tag) || 0 == tag[0] {
		exitwithstatus.Message("%s: tag must be a single character: %q", program, tag)
	}
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	prefix := []byte(nil)
	if len(arguments) > 1 {
		prefix, err = hex.DecodeString(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}

	// name and bound of the pool if configured
	name := tag
	bound := -1
	if nil != config {
		for _, p := range config.Pools {
			if tag == p.Prefix {
				name = p.Name
				bound = int(parameter.Get(p.Bound))
			}
		}
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "boundedvec-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	err = storage.Initialise(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	p, err := storage.Register(name, tag[0])
	if nil != err {
		exitwithstatus.Message("%s: no pool corresponding to: %q  error: %s", program, tag, err)
	}

	cursor := p.NewFetchCursor()
	if len(prefix) > 0 {
		cursor.Seek(prefix)
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}

	l := len(prefix)

	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	cl := ""
	co := ""
	cb := ""
	ce := ""
	if colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		cl = lenColour1
		co = overColour
		cb = badColour
		ce = endColour
	}
print_loop:
	for i, e := range data {
		if earlyStop && len(e.Key) >= len(prefix) && !bytes.Equal(prefix, e.Key[:l]) {
			fmt.Printf("*** early stop\n")
			break print_loop
		}

		fmt.Printf("%d: %sKey: %s%x%s\n", i, ck1, ck2, e.Key, ce)

		n, err := codec.DecodeLength(e.Value)
		switch {
		case nil != err:
			fmt.Printf("%d: %sLen: malformed: %s%s\n", i, cb, err, ce)
		case bound >= 0 && n > uint64(bound):
			fmt.Printf("%d: %sLen: %d  exceeds bound: %d  size: %d%s\n", i, co, n, bound, len(e.Value), ce)
		default:
			fmt.Printf("%d: %sLen: %d  size: %d%s\n", i, cl, n, len(e.Value), ce)
		}

		if literal {
			fmt.Printf("%s\n", util.FormatBytes(fmt.Sprintf("value%d", i), e.Value))

		} else if ascii {
			prefix := fmt.Sprintf("%d: %sVal: %s", i, cv1, cv2)
			suffix := ce
			hexDump(prefix, suffix, e.Value)

		} else if verbose {
			fmt.Printf("%d: %sVal: %s%x%s\n", i, cv1, cv2, e.Value, ce)
		}
	}
}

// dump hex data on stdout
func hexDump(prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Printf("%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Printf(" ")
			}
			if i+j < len(data) {
				fmt.Printf("%02x ", data[i+j])
			} else {
				fmt.Printf("   ")
			}
		}
		fmt.Printf(" |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Printf("%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Printf("|%s\n", suffix)
	}
}
