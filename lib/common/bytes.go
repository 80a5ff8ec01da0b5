// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrNoPrefix is returned when a hex string is missing its 0x prefix.
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	return fmt.Sprintf("0x%x", in)
}

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, ErrNoPrefix
	}
	return hex.DecodeString(in[2:])
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice,
// it panics if it cannot decode the string
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return out
}
