// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"

	"github.com/ChainSafe/runtime-primitives/lib/common"
)

// ErrInvalidItemType is returned when decoding hits a tag outside the item
// type table, including the reserved value 3.
var ErrInvalidItemType = errors.New("invalid digest item type")

// Item is one entry of a block header digest: a tagged union holding exactly
// one of the six digest payload kinds. It is generic over the hash (H),
// authority id (A) and seal signature (S) types of the chain, which only
// need to be scale codec compatible. Items are immutable values; use the
// New*Item constructors. The zero Item is an Other item with no payload.
type Item[H, A, S any] struct {
	itemType    ItemType
	authorities []A
	hash        H
	engineID    ConsensusEngineID
	data        []byte
	seal        S
}

// NewOtherItem returns a non-system digest item carrying opaque bytes.
func NewOtherItem[H, A, S any](data []byte) Item[H, A, S] {
	return Item[H, A, S]{itemType: OtherType, data: data}
}

// NewAuthoritiesChangeItem returns a digest item announcing that the
// authority set changed in the block, carrying the new set.
func NewAuthoritiesChangeItem[H, A, S any](authorities []A) Item[H, A, S] {
	return Item[H, A, S]{itemType: AuthoritiesChangeType, authorities: authorities}
}

// NewChangesTrieRootItem returns a digest item carrying the root of the
// changes trie at the block.
func NewChangesTrieRootItem[H, A, S any](root H) Item[H, A, S] {
	return Item[H, A, S]{itemType: ChangesTrieRootType, hash: root}
}

// NewConsensusItem returns a runtime-to-engine message item. These should
// never be produced by the native code of a consensus engine.
func NewConsensusItem[H, A, S any](id ConsensusEngineID, data []byte) Item[H, A, S] {
	return Item[H, A, S]{itemType: ConsensusType, engineID: id, data: data}
}

// NewSealItem returns a digest item carrying the seal over the block.
func NewSealItem[H, A, S any](id ConsensusEngineID, seal S) Item[H, A, S] {
	return Item[H, A, S]{itemType: SealType, engineID: id, seal: seal}
}

// NewPreRuntimeItem returns an engine-to-runtime message item.
func NewPreRuntimeItem[H, A, S any](id ConsensusEngineID, data []byte) Item[H, A, S] {
	return Item[H, A, S]{itemType: PreRuntimeType, engineID: id, data: data}
}

// NewBABEPreRuntimeItem returns a PreRuntime item with the BABE engine id.
func NewBABEPreRuntimeItem[H, A, S any](data []byte) Item[H, A, S] {
	return NewPreRuntimeItem[H, A, S](BabeEngineID, data)
}

// Type returns the wire discriminant of the held variant.
func (it Item[H, A, S]) Type() ItemType {
	return it.itemType
}

// Ref returns the borrowing view of the item. The ref aliases the item's
// payload without copying it and must not outlive the item.
func (it *Item[H, A, S]) Ref() ItemRef[H, A, S] {
	switch it.itemType {
	case AuthoritiesChangeType:
		return AuthoritiesChangeRef[H, A, S](it.authorities)
	case ChangesTrieRootType:
		return ChangesTrieRootRef[H, A, S](&it.hash)
	case ConsensusType:
		return ConsensusRef[H, A, S](&it.engineID, it.data)
	case SealType:
		return SealRef[H, A, S](&it.engineID, &it.seal)
	case PreRuntimeType:
		return PreRuntimeRef[H, A, S](&it.engineID, it.data)
	default:
		return OtherRef[H, A, S](it.data)
	}
}

// AsOther returns the payload bytes if the item is an Other item.
func (it Item[H, A, S]) AsOther() ([]byte, bool) {
	return it.Ref().AsOther()
}

// AsAuthoritiesChange returns the authority set if the item is an
// AuthoritiesChange item.
func (it Item[H, A, S]) AsAuthoritiesChange() ([]A, bool) {
	return it.Ref().AsAuthoritiesChange()
}

// AsChangesTrieRoot returns the root if the item is a ChangesTrieRoot item.
func (it Item[H, A, S]) AsChangesTrieRoot() (H, bool) {
	root, ok := it.Ref().AsChangesTrieRoot()
	if !ok {
		var zero H
		return zero, false
	}
	return *root, true
}

// AsPreRuntime returns the engine id and message bytes if the item is a
// PreRuntime item.
func (it Item[H, A, S]) AsPreRuntime() (ConsensusEngineID, []byte, bool) {
	return it.Ref().AsPreRuntime()
}

// Encode writes the item in its wire form, the tag byte then the payload. It
// projects to the item's ref first so encoding never copies the payload.
func (it Item[H, A, S]) Encode(encoder scale.Encoder) error {
	return it.Ref().Encode(encoder)
}

// Decode reads one item from the decoder, dispatching on the tag byte. On
// failure the decoder position is indeterminate and the item is unchanged.
func (it *Item[H, A, S]) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	decoded := Item[H, A, S]{itemType: ItemType(b)}

	switch decoded.itemType {
	case OtherType:
		decoded.data, err = decodeByteSlice(decoder)
	case AuthoritiesChangeType:
		decoded.authorities, err = decodeSequence[A](decoder)
	case ChangesTrieRootType:
		err = decoder.Decode(&decoded.hash)
	case ConsensusType, PreRuntimeType:
		var pair engineData
		err = decoder.Decode(&pair)
		decoded.engineID, decoded.data = pair.ID, pair.Data
	case SealType:
		var pair engineSeal[S]
		err = decoder.Decode(&pair)
		decoded.engineID, decoded.seal = pair.ID, pair.Seal
	default:
		return fmt.Errorf("%w: %d", ErrInvalidItemType, b)
	}
	if err != nil {
		return err
	}

	*it = decoded
	return nil
}

// Hash returns the blake2b-256 hash of the item's wire encoding.
func (it Item[H, A, S]) Hash() (common.Hash, error) {
	enc, err := Encode(it)
	if err != nil {
		return common.EmptyHash, err
	}
	return common.Blake2bHash(enc)
}

// String returns the item as a string
func (it Item[H, A, S]) String() string {
	switch it.itemType {
	case AuthoritiesChangeType:
		return fmt.Sprintf("AuthoritiesChange Authorities=%v", it.authorities)
	case ChangesTrieRootType:
		return fmt.Sprintf("ChangesTrieRoot Hash=%v", it.hash)
	case ConsensusType:
		return fmt.Sprintf("Consensus ConsensusEngineID=%s Data=0x%x", it.engineID, it.data)
	case SealType:
		return fmt.Sprintf("Seal ConsensusEngineID=%s Signature=%v", it.engineID, it.seal)
	case PreRuntimeType:
		return fmt.Sprintf("PreRuntime ConsensusEngineID=%s Data=0x%x", it.engineID, it.data)
	default:
		return fmt.Sprintf("Other Data=0x%x", it.data)
	}
}

// MarshalJSON returns the item as the 0x prefixed hex string of its exact
// wire encoding.
func (it Item[H, A, S]) MarshalJSON() ([]byte, error) {
	enc, err := Encode(it)
	if err != nil {
		return nil, err
	}
	return json.Marshal(common.BytesToHex(enc))
}

// UnmarshalJSON decodes the item from the 0x prefixed hex string of its wire
// encoding.
func (it *Item[H, A, S]) UnmarshalJSON(in []byte) error {
	var s string
	if err := json.Unmarshal(in, &s); err != nil {
		return err
	}

	enc, err := common.HexToBytes(s)
	if err != nil {
		return err
	}

	return Decode(enc, it)
}
