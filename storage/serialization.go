// Copyright 2025 Poiesic Systems
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
	"encoding/binary"
	"fmt"

	"github.com/poiesic/cvfind/core"
)

// MarshalRecord serializes a CVRecord to bytes.
func MarshalRecord(record *core.CVRecord) []byte {
	buf := make([]byte, core.CVRecordMUS.Size(*record))
	core.CVRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalRecord deserializes a CVRecord from bytes.
// Trailing bytes after a complete record are reported as ErrSerializationFailed.
// Empty lists decode as nil, matching records that never had them.
func UnmarshalRecord(data []byte) (*core.CVRecord, error) {
	record, n, err := core.CVRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	record.Education = nilIfEmpty(record.Education)
	record.Experience = nilIfEmpty(record.Experience)
	record.Skills = nilIfEmpty(record.Skills)
	record.Languages = nilIfEmpty(record.Languages)
	record.Publications = nilIfEmpty(record.Publications)
	record.Tags = nilIfEmpty(record.Tags)
	return &record, nil
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// MarshalPosition serializes a collection position to bytes.
// Big-endian encoding keeps lexicographic key order equal to numeric order.
func MarshalPosition(pos uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, pos)
	return buf
}

// UnmarshalPosition deserializes a collection position from bytes.
func UnmarshalPosition(data []byte) (uint64, error) {
	if len(data) < 8 {
		return 0, ErrTruncatedData
	}
	return binary.BigEndian.Uint64(data), nil
}
