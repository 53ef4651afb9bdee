// Copyright 2024 The Inspektor Gadget authors
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

package sort

import (
	"strings"
)

// Direction defines the sorting order of a column
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// SortKey is a single sort criterion
type SortKey struct {
	ColumnID  string
	Direction Direction
}

func (k SortKey) String() string {
	if k.Direction == Descending {
		return "-" + k.ColumnID
	}
	return k.ColumnID
}

// SortSpec holds the sort keys in priority order; Dirty is set whenever the keys changed and the rows
// need to be sorted again. Sort itself never touches Dirty.
type SortSpec struct {
	Keys  []SortKey
	Dirty bool
}

// ParseSortSpec creates a SortSpec from column names, optionally prefixed with "-" to switch to descending
// order. Empty names are skipped. The returned spec is dirty.
func ParseSortSpec(sortBy []string) *SortSpec {
	spec := &SortSpec{
		Keys:  make([]SortKey, 0, len(sortBy)),
		Dirty: true,
	}
	for _, field := range sortBy {
		field = strings.TrimSpace(field)

		direction := Ascending
		if strings.HasPrefix(field, "-") {
			direction = Descending
			field = field[1:]
		}
		if field == "" {
			continue
		}

		spec.Keys = append(spec.Keys, SortKey{ColumnID: field, Direction: direction})
	}
	return spec
}

// ColumnIDs returns the column names of all keys
func (s *SortSpec) ColumnIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.Keys))
	for _, k := range s.Keys {
		ids = append(ids, k.ColumnID)
	}
	return ids
}

// Clone returns a deep copy of s
func (s *SortSpec) Clone() *SortSpec {
	if s == nil {
		return nil
	}
	return &SortSpec{
		Keys:  append([]SortKey(nil), s.Keys...),
		Dirty: s.Dirty,
	}
}

// String returns the keys in the format accepted by ParseSortSpec, joined by ","
func (s *SortSpec) String() string {
	if s == nil {
		return ""
	}
	keys := make([]string, 0, len(s.Keys))
	for _, k := range s.Keys {
		keys = append(keys, k.String())
	}
	return strings.Join(keys, ",")
}
