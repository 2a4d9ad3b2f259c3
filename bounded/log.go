// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boundedvec/fault"
)

// channel for bound diagnostics
var log *logger.L

// Initialise - create the log channel
//
// the logger must already be initialised
func Initialise() error {
	if nil != log {
		return fault.ErrAlreadyInitialised
	}
	log = logger.New("bounded")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the log channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

func warnf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** "+format+"\n", arguments...)
		return
	}
	log.Warnf(format, arguments...)
}
