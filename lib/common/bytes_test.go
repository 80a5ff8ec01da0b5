// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesToHex(t *testing.T) {
	require.Equal(t, "0x01020a", BytesToHex([]byte{1, 2, 10}))
	require.Equal(t, "0x", BytesToHex(nil))
}

func TestHexToBytes(t *testing.T) {
	out, err := HexToBytes("0x01020a")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 10}, out)

	_, err = HexToBytes("01020a")
	require.ErrorIs(t, err, ErrNoPrefix)

	_, err = HexToBytes("0xzz")
	require.Error(t, err)
}

func TestMustHexToBytes(t *testing.T) {
	require.Equal(t, []byte{0xde, 0xad}, MustHexToBytes("0xdead"))
	require.Panics(t, func() {
		MustHexToBytes("dead")
	})
}
