// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HashLength is the expected length of the common.Hash type
const HashLength = 32

// EmptyHash is the all-zero hash
var EmptyHash = Hash{}

// Hash is a 32-byte blake2b digest
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash
// if the input is longer than 32 bytes, it takes the first 32 bytes
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// ToBytes turns a hash to a byte slice
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is empty, false otherwise.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// HexToHash turns a 0x prefixed hex string into type Hash
func HexToHash(in string) (Hash, error) {
	out, err := HexToBytes(in)
	if err != nil {
		return Hash{}, err
	}

	var buf = [HashLength]byte{}
	copy(buf[:], out)
	return buf, nil
}

// MustHexToHash turns a 0x prefixed hex string into type Hash,
// it panics if it cannot turn the string into a Hash
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}

// MarshalJSON converts hash to hex data
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON converts hex data to hash
func (h *Hash) UnmarshalJSON(data []byte) error {
	trimmedData := strings.Trim(string(data), "\"")
	if len(trimmedData) < 2 {
		return errors.New("invalid hash format")
	}

	var err error
	if *h, err = HexToHash(trimmedData); err != nil {
		return err
	}
	return nil
}
