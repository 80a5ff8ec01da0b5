// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// ItemRef is a non-owning view of an Item. It references payload data owned
// elsewhere, either an Item or caller storage, and exists to drive encoding
// without copying that data. A ref must not be retained past the lifetime of
// the value it points into. Decoding always targets Item; there is no
// borrowed decode.
type ItemRef[H, A, S any] struct {
	itemType    ItemType
	authorities []A
	hash        *H
	engineID    *ConsensusEngineID
	data        []byte
	seal        *S
}

// OtherRef returns a ref over a non-system digest payload.
func OtherRef[H, A, S any](data []byte) ItemRef[H, A, S] {
	return ItemRef[H, A, S]{itemType: OtherType, data: data}
}

// AuthoritiesChangeRef returns a ref over a new authority set.
func AuthoritiesChangeRef[H, A, S any](authorities []A) ItemRef[H, A, S] {
	return ItemRef[H, A, S]{itemType: AuthoritiesChangeType, authorities: authorities}
}

// ChangesTrieRootRef returns a ref over a changes trie root.
func ChangesTrieRootRef[H, A, S any](root *H) ItemRef[H, A, S] {
	return ItemRef[H, A, S]{itemType: ChangesTrieRootType, hash: root}
}

// ConsensusRef returns a ref over a runtime-to-engine message.
func ConsensusRef[H, A, S any](id *ConsensusEngineID, data []byte) ItemRef[H, A, S] {
	return ItemRef[H, A, S]{itemType: ConsensusType, engineID: id, data: data}
}

// SealRef returns a ref over a seal signature.
func SealRef[H, A, S any](id *ConsensusEngineID, seal *S) ItemRef[H, A, S] {
	return ItemRef[H, A, S]{itemType: SealType, engineID: id, seal: seal}
}

// PreRuntimeRef returns a ref over an engine-to-runtime message.
func PreRuntimeRef[H, A, S any](id *ConsensusEngineID, data []byte) ItemRef[H, A, S] {
	return ItemRef[H, A, S]{itemType: PreRuntimeType, engineID: id, data: data}
}

// Type returns the wire discriminant of the referenced variant.
func (r ItemRef[H, A, S]) Type() ItemType {
	return r.itemType
}

// AsOther returns the referenced bytes if the variant is Other.
func (r ItemRef[H, A, S]) AsOther() ([]byte, bool) {
	if r.itemType != OtherType {
		return nil, false
	}
	return r.data, true
}

// AsAuthoritiesChange returns the referenced authority set if the variant is
// AuthoritiesChange.
func (r ItemRef[H, A, S]) AsAuthoritiesChange() ([]A, bool) {
	if r.itemType != AuthoritiesChangeType {
		return nil, false
	}
	return r.authorities, true
}

// AsChangesTrieRoot returns the referenced root if the variant is
// ChangesTrieRoot.
func (r ItemRef[H, A, S]) AsChangesTrieRoot() (*H, bool) {
	if r.itemType != ChangesTrieRootType {
		return nil, false
	}
	return r.hash, true
}

// AsPreRuntime returns the engine id and referenced message bytes if the
// variant is PreRuntime.
func (r ItemRef[H, A, S]) AsPreRuntime() (ConsensusEngineID, []byte, bool) {
	if r.itemType != PreRuntimeType {
		return ConsensusEngineID{}, nil, false
	}
	return *r.engineID, r.data, true
}

// engineData and engineSeal keep the (engine id, body) pair a single codec
// unit, so decode reads it back as one tuple.
type engineData struct {
	ID   ConsensusEngineID
	Data []byte
}

type engineSeal[S any] struct {
	ID   ConsensusEngineID
	Seal S
}

// Decode reads the (engine id, byte vector) tuple with every read checked;
// the decoder's reflection path would let a stream exhausted before the byte
// vector's compact length pass as an empty vector.
func (p *engineData) Decode(decoder scale.Decoder) error {
	if err := decoder.Decode(&p.ID); err != nil {
		return err
	}

	data, err := decodeByteSlice(decoder)
	if err != nil {
		return err
	}

	p.Data = data
	return nil
}

// Encode writes the variant tag followed by its payload to the encoder.
func (r ItemRef[H, A, S]) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(byte(r.itemType)); err != nil {
		return err
	}

	switch r.itemType {
	case OtherType:
		return encoder.Encode(r.data)
	case AuthoritiesChangeType:
		return encoder.Encode(r.authorities)
	case ChangesTrieRootType:
		return encoder.Encode(*r.hash)
	case ConsensusType, PreRuntimeType:
		return encoder.Encode(engineData{ID: *r.engineID, Data: r.data})
	case SealType:
		return encoder.Encode(engineSeal[S]{ID: *r.engineID, Seal: *r.seal})
	}

	return fmt.Errorf("%w: %d", ErrInvalidItemType, byte(r.itemType))
}
