// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import "fmt"

// ItemType is the wire discriminant identifying a digest item variant. It is
// written as a single byte before the item payload. Values are explicit so
// the wire format stays stable if the declarations are ever reordered.
type ItemType byte

const (
	// OtherType is any non-system digest item, opaque to the native code.
	OtherType ItemType = 0
	// AuthoritiesChangeType announces that the authority set changed in the
	// block and carries the new set.
	AuthoritiesChangeType ItemType = 1
	// ChangesTrieRootType carries the root of the changes trie at the block.
	ChangesTrieRootType ItemType = 2

	// 3 is reserved and never appears on the wire.

	// ConsensusType is a message from the runtime to the consensus engine.
	ConsensusType ItemType = 4
	// SealType carries the seal signature over the block.
	SealType ItemType = 5
	// PreRuntimeType is a message from the consensus engine to the runtime.
	PreRuntimeType ItemType = 6
)

// String returns the name of the item type
func (t ItemType) String() string {
	switch t {
	case OtherType:
		return "Other"
	case AuthoritiesChangeType:
		return "AuthoritiesChange"
	case ChangesTrieRootType:
		return "ChangesTrieRoot"
	case ConsensusType:
		return "Consensus"
	case SealType:
		return "Seal"
	case PreRuntimeType:
		return "PreRuntime"
	}
	return fmt.Sprintf("ItemType(%d)", byte(t))
}
