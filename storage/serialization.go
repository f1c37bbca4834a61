// Copyright 2025 The Carvisor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/carvisor/carvisor/core"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for stored records. Timestamps are encoded
// as Unix microseconds; the metadata map is encoded with sorted keys so
// that marshaling is deterministic.

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(id), nil
}

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, sizeDocument(doc))
	n := varint.Uint64.Marshal(uint64(doc.Id), buf)
	n += ord.String.Marshal(doc.Content, buf[n:])
	n += ord.String.Marshal(doc.Source, buf[n:])

	// Metadata: count followed by sorted key/value pairs
	keys := sortedKeys(doc.Metadata)
	n += varint.Int.Marshal(len(keys), buf[n:])
	for _, key := range keys {
		n += ord.String.Marshal(key, buf[n:])
		n += ord.String.Marshal(doc.Metadata[key], buf[n:])
	}

	// Vector: count followed by float32 bit patterns
	n += varint.Int.Marshal(len(doc.Vector), buf[n:])
	for _, v := range doc.Vector {
		n += varint.Uint32.Marshal(math.Float32bits(v), buf[n:])
	}

	n += varint.Int64.Marshal(doc.InsertedAt.UnixMicro(), buf[n:])
	varint.Int64.Marshal(doc.UpdatedAt.UnixMicro(), buf[n:])
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	doc, err := unmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return doc, nil
}

func sizeDocument(doc *core.Document) int {
	size := varint.Uint64.Size(uint64(doc.Id))
	size += ord.String.Size(doc.Content)
	size += ord.String.Size(doc.Source)

	size += varint.Int.Size(len(doc.Metadata))
	for key, value := range doc.Metadata {
		size += ord.String.Size(key)
		size += ord.String.Size(value)
	}

	size += varint.Int.Size(len(doc.Vector))
	for _, v := range doc.Vector {
		size += varint.Uint32.Size(math.Float32bits(v))
	}

	size += varint.Int64.Size(doc.InsertedAt.UnixMicro())
	size += varint.Int64.Size(doc.UpdatedAt.UnixMicro())
	return size
}

func unmarshalDocument(data []byte) (*core.Document, error) {
	doc := &core.Document{}

	id, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	doc.Id = core.ID(id)

	doc.Content, n, err = unmarshalStringAt(data, n)
	if err != nil {
		return nil, err
	}
	doc.Source, n, err = unmarshalStringAt(data, n)
	if err != nil {
		return nil, err
	}

	metaCount, m, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	if metaCount > 0 {
		doc.Metadata = make(map[string]string, metaCount)
		for i := 0; i < metaCount; i++ {
			var key, value string
			key, n, err = unmarshalStringAt(data, n)
			if err != nil {
				return nil, err
			}
			value, n, err = unmarshalStringAt(data, n)
			if err != nil {
				return nil, err
			}
			doc.Metadata[key] = value
		}
	}

	vecCount, m, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	if vecCount > 0 {
		doc.Vector = make([]float32, vecCount)
		for i := 0; i < vecCount; i++ {
			bits, m, err := varint.Uint32.Unmarshal(data[n:])
			if err != nil {
				return nil, err
			}
			n += m
			doc.Vector[i] = math.Float32frombits(bits)
		}
	}

	insertedAt, m, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	updatedAt, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}

	doc.InsertedAt = time.UnixMicro(insertedAt).UTC()
	doc.UpdatedAt = time.UnixMicro(updatedAt).UTC()
	return doc, nil
}

// unmarshalStringAt reads a string starting at offset and returns the new offset.
func unmarshalStringAt(data []byte, offset int) (string, int, error) {
	s, n, err := ord.String.Unmarshal(data[offset:])
	if err != nil {
		return "", offset, err
	}
	return s, offset + n, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
