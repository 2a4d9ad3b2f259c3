// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boundedvec/background"
)

type ticker struct {
	ticks   uint64
	stopped bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddUint64(&state.ticks, 1)
		}
	}
	state.stopped = true
}

func TestStartStop(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.stopped, "first process did not finish")
	assert.True(t, proc2.stopped, "second process did not finish")
	assert.NotEqual(t, uint64(0), atomic.LoadUint64(&proc1.ticks), "first process did not run")
	assert.NotEqual(t, uint64(0), atomic.LoadUint64(&proc2.ticks), "second process did not run")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	assert.NotPanics(t, p.Stop, "stop of nil handle")
}
