// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/boundedvec/fault"
)

// Hasher - turns an encoded map key into its stored form
type Hasher func(key []byte) []byte

// hasher names as used in the configuration file
const (
	IdentityName         = "identity"
	Blake2b128ConcatName = "blake2_128_concat"
	Sha3DigestName       = "sha3_256"
)

var hashers = map[string]Hasher{
	IdentityName:         Identity,
	Blake2b128ConcatName: Blake2b128Concat,
	Sha3DigestName:       Sha3Digest,
}

// HasherByName - resolve a configured hasher
func HasherByName(name string) (Hasher, error) {
	h, ok := hashers[name]
	if !ok {
		return nil, fault.ErrInvalidHasher
	}
	return h, nil
}

// Identity - the key itself, keeps map keys in key order
func Identity(key []byte) []byte {
	return append([]byte{}, key...)
}

// Blake2b128Concat - 16 byte BLAKE2b digest followed by the key, so
// stored keys are spread evenly yet the key can still be recovered
func Blake2b128Concat(key []byte) []byte {
	h, err := blake2b.New(16, nil)
	fault.PanicIfError("blake2b.New", err)
	h.Write(key)
	return append(h.Sum(nil), key...)
}

// Sha3Digest - 32 byte SHA3-256 digest, the key is not recoverable
func Sha3Digest(key []byte) []byte {
	digest := sha3.Sum256(key)
	return digest[:]
}
