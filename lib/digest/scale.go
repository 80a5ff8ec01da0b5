// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"bytes"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Encode returns the scale encoding of value.
func Encode(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := scale.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode scale decodes data into target, which must be a pointer.
func Decode(data []byte, target interface{}) error {
	return scale.NewDecoder(bytes.NewReader(data)).Decode(target)
}

// decodeCompactLength reads a compact encoded sequence length, checking every
// byte read. The decoder's own DecodeUintCompact ignores the error on its
// first byte read, so an exhausted stream would otherwise decode as length 0.
func decodeCompactLength(decoder scale.Decoder) (uint64, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return 0, err
	}

	switch b & 0x03 {
	case 0:
		return uint64(b >> 2), nil
	case 1:
		next, err := decoder.ReadOneByte()
		if err != nil {
			return 0, err
		}
		return (uint64(b) | uint64(next)<<8) >> 2, nil
	case 2:
		buf := make([]byte, 3)
		if err := decoder.Read(buf); err != nil {
			return 0, err
		}
		return (uint64(b) | uint64(buf[0])<<8 | uint64(buf[1])<<16 | uint64(buf[2])<<24) >> 2, nil
	default:
		n := int(b>>2) + 4
		if n > 8 {
			return 0, fmt.Errorf("could not decode compact length: %d bytes exceeds uint64", n)
		}

		buf := make([]byte, n)
		if err := decoder.Read(buf); err != nil {
			return 0, err
		}

		var length uint64
		for i, bb := range buf {
			length |= uint64(bb) << (8 * uint(i))
		}
		return length, nil
	}
}

// decodeByteSlice reads a compact length prefixed byte vector. Bytes are read
// in bounded chunks so a corrupt length cannot force a huge allocation before
// the stream runs dry.
func decodeByteSlice(decoder scale.Decoder) ([]byte, error) {
	length, err := decodeCompactLength(decoder)
	if err != nil {
		return nil, err
	}

	const chunkSize = 4096
	data := make([]byte, 0)
	buf := make([]byte, chunkSize)
	for remaining := length; remaining > 0; {
		n := uint64(chunkSize)
		if remaining < n {
			n = remaining
		}

		chunk := buf[:n]
		if err := decoder.Read(chunk); err != nil {
			return nil, err
		}

		data = append(data, chunk...)
		remaining -= n
	}

	return data, nil
}

// decodeSequence reads a compact length prefixed sequence of T, growing the
// result one decoded element at a time rather than preallocating from the
// untrusted length.
func decodeSequence[T any](decoder scale.Decoder) ([]T, error) {
	length, err := decodeCompactLength(decoder)
	if err != nil {
		return nil, err
	}

	sequence := make([]T, 0)
	for i := uint64(0); i < length; i++ {
		var elem T
		if err := decoder.Decode(&elem); err != nil {
			return nil, err
		}
		sequence = append(sequence, elem)
	}

	return sequence, nil
}
