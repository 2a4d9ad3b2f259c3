// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/boundedvec/counter"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - a notification and the name of its sender
type Message struct {
	From string
	Item interface{}
}

// Queue - a single consumer notification queue
type Queue struct {
	dropped counter.Counter // first for 64 bit alignment
	queue   chan Message
}

// New - queue holding up to size messages, a size < 1 uses the default
func New(size int) *Queue {
	if size < 1 {
		size = defaultQueueSize
	}
	return &Queue{
		queue: make(chan Message, size),
	}
}

// Send - queue item without blocking, false if it was dropped
func (q *Queue) Send(from string, item interface{}) bool {
	select {
	case q.queue <- Message{From: from, Item: item}:
		return true
	default:
		q.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.queue
}

// Dropped - number of messages lost because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
