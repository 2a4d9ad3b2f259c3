// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/boundedvec/codec"
	"github.com/bitmark-inc/boundedvec/configuration"
	"github.com/bitmark-inc/boundedvec/fault"
)

func encodeAll(t *testing.T, h *elementHandler, d decoder, args ...string) []byte {
	data := codec.AppendCompact(nil, uint64(len(args)))
	for _, arg := range args {
		element, err := h.encode(arg, d)
		require.Nil(t, err, "encode: %q", arg)
		data = append(data, element...)
	}
	return data
}

func TestUint32Elements(t *testing.T) {
	h, err := newElementHandler(configuration.ElementConfiguration{Type: configuration.ElementU32})
	require.Nil(t, err, "handler error")
	assert.Equal(t, 4, h.maxEncodedLen, "wrong max length")

	d, _ := textDecoder(encodingString)
	e, _ := textEncoder(encodingString)

	data := encodeAll(t, h, d, "1", "0x10")
	assert.Equal(t, []byte{2, 1, 0, 0, 0, 16, 0, 0, 0}, data, "wrong encoding")

	elements, err := h.decode(data, e)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, []interface{}{uint32(1), uint32(16)}, elements, "wrong elements")

	_, err = h.encode("4294967296", d)
	assert.NotNil(t, err, "out of range value accepted")
}

func TestBytesElements(t *testing.T) {
	h, err := newElementHandler(configuration.ElementConfiguration{Type: configuration.ElementBytes, Maximum: 4})
	require.Nil(t, err, "handler error")
	assert.Equal(t, 5, h.maxEncodedLen, "wrong max length")

	d, _ := textDecoder(encodingHex)
	e, _ := textEncoder(encodingHex)

	data := encodeAll(t, h, d, "0102", "ff")
	assert.Equal(t, []byte{2, 2, 1, 2, 1, 0xff}, data, "wrong encoding")

	elements, err := h.decode(data, e)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, []interface{}{"0102", "ff"}, elements, "wrong elements")

	_, err = h.encode("0102030405", d)
	assert.Equal(t, fault.ErrElementTooLarge, err, "oversized element accepted")
}

func TestStringElements(t *testing.T) {
	h, err := newElementHandler(configuration.ElementConfiguration{Type: configuration.ElementString, Maximum: 8})
	require.Nil(t, err, "handler error")

	d, _ := textDecoder(encodingBase58)
	e, _ := textEncoder(encodingBase58)

	// strings are never transformed by the encoding
	data := encodeAll(t, h, d, "abc")
	assert.Equal(t, []byte{1, 3, 'a', 'b', 'c'}, data, "wrong encoding")

	elements, err := h.decode(data, e)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, []interface{}{"abc"}, elements, "wrong elements")
}

func TestCBORElements(t *testing.T) {
	h, err := newElementHandler(configuration.ElementConfiguration{Type: configuration.ElementCBOR, Maximum: 64})
	require.Nil(t, err, "handler error")

	d, _ := textDecoder(encodingString)
	e, _ := textEncoder(encodingString)

	data := encodeAll(t, h, d, `{"name":"x","tags":["a","b"]}`, `true`)

	elements, err := h.decode(data, e)
	require.Nil(t, err, "decode error")
	require.Equal(t, 2, len(elements), "wrong count")

	m, ok := elements[0].(map[string]interface{})
	require.True(t, ok, "map not converted: %T", elements[0])
	assert.Equal(t, "x", m["name"], "wrong name")
	assert.Equal(t, []interface{}{"a", "b"}, m["tags"], "wrong tags")
	assert.Equal(t, true, elements[1], "wrong second element")

	_, err = h.encode(`{"name":`, d)
	assert.NotNil(t, err, "invalid JSON accepted")
}

func TestUnknownElementType(t *testing.T) {
	_, err := newElementHandler(configuration.ElementConfiguration{Type: "float"})
	assert.True(t, errors.Is(err, fault.ErrUnknownElementType), "unknown type accepted: %v", err)
}

func TestJsonSafe(t *testing.T) {
	value := map[interface{}]interface{}{
		uint64(1): []interface{}{
			map[interface{}]interface{}{"a": "b"},
		},
	}
	expected := map[string]interface{}{
		"1": []interface{}{
			map[string]interface{}{"a": "b"},
		},
	}
	assert.Equal(t, expected, jsonSafe(value), "wrong conversion")
}
