// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/boundedvec/background"
	"github.com/bitmark-inc/boundedvec/configuration"
	"github.com/bitmark-inc/boundedvec/messagebus"
)

// keep bound parameters in step with the configuration file until
// interrupted or the file is removed
func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	log := logger.New("watch")

	watcher, err := configuration.NewWatcher(m.file, log)
	if nil != err {
		return err
	}
	notify := messagebus.New(0)
	reloader := configuration.NewReloader(m.file, log, watcher.Change(), notify)

	processes := background.Start(background.Processes{
		watcher,
		reloader,
	}, nil)
	defer processes.Stop()

	fmt.Fprintf(m.e, "watching: %s\n", m.file)
	printJson(m.w, currentBounds(m))

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop
		case <-watcher.Remove():
			log.Warnf("configuration removed: %s", m.file)
			fmt.Fprintf(m.e, "configuration removed: %s\n", m.file)
			break loop
		case message := <-notify.Chan():
			if c, ok := message.Item.(configuration.ParameterChange); ok {
				printJson(m.w, c)
			}
		}
	}

	printJson(m.w, currentBounds(m))
	return nil
}

func currentBounds(m *metadata) map[string]int {
	result := make(map[string]int, len(m.pools))
	for name, p := range m.pools {
		result[name] = p.layout.Bound()
	}
	return result
}
