// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// text forms of keys and byte elements
const (
	encodingString = "string"
	encodingHex    = "hex"
	encodingBase58 = "base58"
)

type decoder func(string) ([]byte, error)
type encoder func([]byte) string

func textDecoder(encoding string) (decoder, error) {
	switch encoding {
	case encodingString:
		return func(s string) ([]byte, error) {
			return []byte(s), nil
		}, nil
	case encodingHex:
		return hex.DecodeString, nil
	case encodingBase58:
		return base58.Decode, nil
	default:
		return nil, fmt.Errorf("encoding: %q: %w", encoding, ErrInvalidEncoding)
	}
}

func textEncoder(encoding string) (encoder, error) {
	switch encoding {
	case encodingString:
		return func(b []byte) string {
			return string(b)
		}, nil
	case encodingHex:
		return hex.EncodeToString, nil
	case encodingBase58:
		return base58.Encode, nil
	default:
		return nil, fmt.Errorf("encoding: %q: %w", encoding, ErrInvalidEncoding)
	}
}
