// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boundedvec/messagebus"
	"github.com/bitmark-inc/boundedvec/parameter"
)

// ParameterChange - sent on the notify queue for each parameter that a
// reload added or altered
type ParameterChange struct {
	Name     string `json:"name"`
	Previous uint32 `json:"previous"`
	Value    uint32 `json:"value"`
	Added    bool   `json:"added"`
}

// Reloader - background process reloading bound parameters when the
// configuration file changes
//
// only parameters are reloaded: a change to the pool layout needs a
// restart
type Reloader struct {
	log      *logger.L
	fileName string
	change   <-chan struct{}
	notify   *messagebus.Queue
}

// NewReloader - reload fileName on each signal from change
//
// notify may be nil
func NewReloader(fileName string, log *logger.L, change <-chan struct{}, notify *messagebus.Queue) *Reloader {
	return &Reloader{
		log:      log,
		fileName: fileName,
		change:   change,
		notify:   notify,
	}
}

// Run - background process loop
func (r *Reloader) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.change:
			if err := r.Reload(); nil != err {
				log.Errorf("reload: %s  error: %s", r.fileName, err)
			}
		}
	}
}

// Reload - read the file and replace all parameters
//
// on error the current parameters are left unchanged
func (r *Reloader) Reload() error {
	options, err := GetConfiguration(r.fileName)
	if nil != err {
		return err
	}

	changes := []ParameterChange{}
	for name, value := range options.Parameters {
		old, ok := parameter.Lookup(name)
		if !ok || old != value {
			r.log.Infof("parameter: %s = %d", name, value)
			changes = append(changes, ParameterChange{
				Name:     name,
				Previous: old,
				Value:    value,
				Added:    !ok,
			})
		}
	}

	if err := parameter.Load(options.Parameters); nil != err {
		return err
	}

	if nil != r.notify {
		for _, c := range changes {
			if !r.notify.Send("reloader", c) {
				r.log.Warnf("notify queue full, dropped: %s", c.Name)
			}
		}
	}
	return nil
}
