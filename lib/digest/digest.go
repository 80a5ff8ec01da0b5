// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package digest implements the ordered log of items attached to a block
// header and its scale wire codec. Items are produced during block authoring
// and read back by consensus engines and client code on import.
package digest

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Digest is the ordered log attached to a block header. Items keep their
// append order, which reflects the order they were produced in during block
// authoring; duplicates are legal. The zero Digest is empty and ready to use.
type Digest[H, A, S any] struct {
	logs []Item[H, A, S]
}

// NewDigest returns a digest holding the given items, in order.
func NewDigest[H, A, S any](items ...Item[H, A, S]) Digest[H, A, S] {
	return Digest[H, A, S]{logs: items}
}

// Push appends item to the end of the log.
func (d *Digest[H, A, S]) Push(item Item[H, A, S]) {
	d.logs = append(d.logs, item)
}

// Pop removes and returns the last pushed item. The second return value is
// false when the digest is empty.
func (d *Digest[H, A, S]) Pop() (Item[H, A, S], bool) {
	if len(d.logs) == 0 {
		var zero Item[H, A, S]
		return zero, false
	}

	item := d.logs[len(d.logs)-1]
	d.logs = d.logs[:len(d.logs)-1]
	return item, true
}

// Logs returns the items in append order. Callers must not modify the
// returned slice.
func (d *Digest[H, A, S]) Logs() []Item[H, A, S] {
	return d.logs
}

// Len returns the number of items in the digest.
func (d *Digest[H, A, S]) Len() int {
	return len(d.logs)
}

// Encode writes the digest as the length-prefixed sequence of its items.
func (d Digest[H, A, S]) Encode(encoder scale.Encoder) error {
	if err := encoder.EncodeUintCompact(*big.NewInt(int64(len(d.logs)))); err != nil {
		return fmt.Errorf("could not encode length of digest items: %w", err)
	}

	for i, item := range d.logs {
		if err := item.Encode(encoder); err != nil {
			return fmt.Errorf("could not encode digest item %d: %w", i, err)
		}
	}

	return nil
}

// Decode reads a length-prefixed sequence of items, preserving their order.
// Items are decoded one at a time so a corrupt length prefix fails at the
// first missing item instead of sizing an allocation from untrusted input.
func (d *Digest[H, A, S]) Decode(decoder scale.Decoder) error {
	length, err := decodeCompactLength(decoder)
	if err != nil {
		return fmt.Errorf("could not decode length of digest items: %w", err)
	}

	logs := make([]Item[H, A, S], 0)
	for i := uint64(0); i < length; i++ {
		var item Item[H, A, S]
		if err := item.Decode(decoder); err != nil {
			return fmt.Errorf("could not decode digest item %d: %w", i, err)
		}
		logs = append(logs, item)
	}

	d.logs = logs
	return nil
}

// MarshalJSON returns the digest as an ordered list of hex encoded items
// under the "logs" key.
func (d Digest[H, A, S]) MarshalJSON() ([]byte, error) {
	logs := d.logs
	if logs == nil {
		logs = []Item[H, A, S]{}
	}

	return json.Marshal(struct {
		Logs []Item[H, A, S] `json:"logs"`
	}{Logs: logs})
}

// UnmarshalJSON decodes the digest from an ordered list of hex encoded items
// under the "logs" key.
func (d *Digest[H, A, S]) UnmarshalJSON(in []byte) error {
	var decoded struct {
		Logs []Item[H, A, S] `json:"logs"`
	}
	if err := json.Unmarshal(in, &decoded); err != nil {
		return err
	}

	d.logs = decoded.Logs
	return nil
}
