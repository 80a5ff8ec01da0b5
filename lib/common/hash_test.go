// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexToHash(t *testing.T) {
	in := "0x8550326cee1e7b768d1b614e8cd2fc29fb94e9f9988bb76ef0da16ca9a48d09b"

	hash, err := HexToHash(in)
	require.NoError(t, err)
	require.Equal(t, in, hash.String())
	require.False(t, hash.IsEmpty())

	_, err = HexToHash("8550326cee1e7b768d")
	require.ErrorIs(t, err, ErrNoPrefix)
}

func TestNewHash(t *testing.T) {
	in := make([]byte, 40)
	in[0] = 1
	in[39] = 9

	// longer input is truncated to 32 bytes
	hash := NewHash(in)
	require.Equal(t, byte(1), hash[0])
	require.Equal(t, in[:32], hash.ToBytes())
}

func TestHash_MarshalAndUnmarshalJSON(t *testing.T) {
	hash := MustHexToHash("0x8550326cee1e7b768d1b614e8cd2fc29fb94e9f9988bb76ef0da16ca9a48d09b")

	enc, err := json.Marshal(hash)
	require.NoError(t, err)
	require.Equal(t, `"`+hash.String()+`"`, string(enc))

	var decoded Hash
	err = json.Unmarshal(enc, &decoded)
	require.NoError(t, err)
	require.Equal(t, hash, decoded)
}
