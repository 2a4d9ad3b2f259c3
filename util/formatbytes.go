// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

const bytesPerLine = 8

// FormatBytes - data as a Go byte slice literal assigned to name,
// for pasting stored values into test fixtures
func FormatBytes(name string, data []byte) string {
	var b strings.Builder

	b.WriteString(name)
	b.WriteString(" := []byte{")
	for i, c := range data {
		if 0 == i%bytesPerLine {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "0x%02x,", c)
	}
	if len(data) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
