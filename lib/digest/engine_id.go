// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

// ConsensusEngineID is a 4-character identifier of the consensus engine that
// produced the digest item.
type ConsensusEngineID [4]byte

// NewConsensusEngineID casts a byte slice to ConsensusEngineID
// if the input is longer than 4 bytes, it takes the first 4 bytes
func NewConsensusEngineID(in []byte) (res ConsensusEngineID) {
	copy(res[:], in)
	return res
}

// ToBytes turns ConsensusEngineID to a byte slice
func (id ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(id)
	return b[:]
}

// String returns the engine id as a string
func (id ConsensusEngineID) String() string {
	return string(id.ToBytes())
}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

// GrandpaEngineID is the hard-coded grandpa ID
var GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}
