// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemType_String(t *testing.T) {
	testCases := map[ItemType]string{
		OtherType:             "Other",
		AuthoritiesChangeType: "AuthoritiesChange",
		ChangesTrieRootType:   "ChangesTrieRoot",
		ConsensusType:         "Consensus",
		SealType:              "Seal",
		PreRuntimeType:        "PreRuntime",
		ItemType(3):           "ItemType(3)",
		ItemType(9):           "ItemType(9)",
	}

	for typ, expected := range testCases {
		require.Equal(t, expected, typ.String())
	}
}

// TestItemType_WireValues pins the tag table, including the gap at 3.
func TestItemType_WireValues(t *testing.T) {
	require.Equal(t, byte(0), byte(OtherType))
	require.Equal(t, byte(1), byte(AuthoritiesChangeType))
	require.Equal(t, byte(2), byte(ChangesTrieRootType))
	require.Equal(t, byte(4), byte(ConsensusType))
	require.Equal(t, byte(5), byte(SealType))
	require.Equal(t, byte(6), byte(PreRuntimeType))
}
