// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// Watcher - background process reporting changes to a configuration file
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

// NewWatcher - watch an existing file
//
// events are delivered once Run is started
func NewWatcher(fileName string, log *logger.L) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := watcher.Add(filePath); nil != err {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Change - signalled after the file is written
func (w *Watcher) Change() <-chan struct{} {
	return w.change
}

// Remove - signalled once if the file is removed
func (w *Watcher) Remove() <-chan struct{} {
	return w.remove
}

// Run - background process loop
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	log := w.log
	log.Infof("watching: %s", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue loop
			}

			if "" == event.Name || 0 != event.Op&(fsnotify.Remove|fsnotify.Rename) {
				log.Warnf("file: %s removed", w.filePath)
				send(w.remove)
				continue loop
			}

			if 0 != event.Op&(fsnotify.Write|fsnotify.Chmod) {
				send(w.change)
			}
		}
	}
	log.Info("watcher stopped")
}

// non-blocking; a pending signal already covers this one
func send(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
