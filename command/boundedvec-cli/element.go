// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/configuration"
	"github.com/bitmark-inc/boundedvec/fault"
)

// converts between command line text and encoded elements of one pool
type elementHandler struct {
	maxEncodedLen int

	// text argument to encoded element
	encode func(text string, decode decoder) ([]byte, error)

	// encoded vector to printable elements
	decode func(data []byte, encode encoder) ([]interface{}, error)
}

func newElementHandler(config configuration.ElementConfiguration) (*elementHandler, error) {
	switch config.Type {
	case configuration.ElementU32:
		return makeHandler(codec.Uint32, func(s string, _ decoder) (uint32, error) {
			n, err := strconv.ParseUint(s, 0, 32)
			return uint32(n), err
		}, func(n uint32, _ encoder) interface{} {
			return n
		}), nil

	case configuration.ElementU64:
		return makeHandler(codec.Uint64, func(s string, _ decoder) (uint64, error) {
			return strconv.ParseUint(s, 0, 64)
		}, func(n uint64, _ encoder) interface{} {
			return n
		}), nil

	case configuration.ElementBool:
		return makeHandler(codec.Bool, func(s string, _ decoder) (bool, error) {
			return strconv.ParseBool(s)
		}, func(b bool, _ encoder) interface{} {
			return b
		}), nil

	case configuration.ElementBytes:
		return makeHandler(codec.Bytes(config.Maximum), func(s string, d decoder) ([]byte, error) {
			return d(s)
		}, func(b []byte, e encoder) interface{} {
			return e(b)
		}), nil

	case configuration.ElementString:
		return makeHandler(codec.String(config.Maximum), func(s string, _ decoder) (string, error) {
			return s, nil
		}, func(s string, _ encoder) interface{} {
			return s
		}), nil

	case configuration.ElementCBOR:
		return makeHandler(codec.CBOR[interface{}](config.Maximum), func(s string, _ decoder) (interface{}, error) {
			var value interface{}
			err := json.Unmarshal([]byte(s), &value)
			return value, err
		}, func(value interface{}, _ encoder) interface{} {
			return jsonSafe(value)
		}), nil

	default:
		return nil, fmt.Errorf("element: %q: %w", config.Type, fault.ErrUnknownElementType)
	}
}

func makeHandler[T any](c codec.Codec[T], parse func(string, decoder) (T, error), render func(T, encoder) interface{}) *elementHandler {
	return &elementHandler{
		maxEncodedLen: c.MaxEncodedLen(),
		encode: func(text string, d decoder) ([]byte, error) {
			value, err := parse(text, d)
			if nil != err {
				return nil, err
			}
			return codec.Marshal(c, value)
		},
		decode: func(data []byte, e encoder) ([]interface{}, error) {
			items, err := codec.DecodeSequence(c, data)
			if nil != err {
				return nil, err
			}
			result := make([]interface{}, len(items))
			for i, item := range items {
				result[i] = render(item, e)
			}
			return result, nil
		},
	}
}

// CBOR maps may have non-string keys which JSON cannot represent
func jsonSafe(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[fmt.Sprint(key)] = jsonSafe(item)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(v))
		for i, item := range v {
			a[i] = jsonSafe(item)
		}
		return a
	default:
		return v
	}
}
