// Copyright 2022-2024 The Inspektor Gadget authors
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
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
)

// CompareFunc returns a negative number if a sorts before b, a positive number if a sorts after b and zero
// otherwise. Entries are never nil.
type CompareFunc[T any] func(a, b *T) int

// Registry maps column names to comparison functions
type Registry[T any] struct {
	compare   map[string]CompareFunc[T]
	names     []string
	idCompare CompareFunc[T]
}

// NewRegistry creates an empty Registry; id must return the unique identity of an entry and is used to order
// entries that are equal on all sort keys.
func NewRegistry[T any](id func(*T) int64) *Registry[T] {
	if id == nil {
		panic("sort: id func must be non-nil")
	}
	return NewRegistryWithIDCompare(orderedComparator(id))
}

// NewRegistryWithIDCompare is like NewRegistry for identities that do not fit into an int64; idCompare must
// order entries by their unique identity.
func NewRegistryWithIDCompare[T any](idCompare CompareFunc[T]) *Registry[T] {
	if idCompare == nil {
		panic("sort: id compare func must be non-nil")
	}
	return &Registry[T]{
		compare:   make(map[string]CompareFunc[T]),
		idCompare: idCompare,
	}
}

// Register adds a comparison function for a column; column names are case-insensitive
func (r *Registry[T]) Register(columnID string, cmp CompareFunc[T]) error {
	if columnID == "" {
		return errors.New("no column name given")
	}
	if cmp == nil {
		return fmt.Errorf("no compare func given for column %q", columnID)
	}
	lowerName := strings.ToLower(columnID)
	if _, ok := r.compare[lowerName]; ok {
		return fmt.Errorf("column already registered: %q", lowerName)
	}
	r.compare[lowerName] = cmp
	r.names = append(r.names, columnID)
	return nil
}

// MustRegister adds a comparison function for a column and panics if it cannot successfully do so
func (r *Registry[T]) MustRegister(columnID string, cmp CompareFunc[T]) {
	if err := r.Register(columnID, cmp); err != nil {
		panic(err)
	}
}

// Columns returns the names of all registered columns in the order they were registered
func (r *Registry[T]) Columns() []string {
	return append([]string(nil), r.names...)
}

type resolvedKey[T any] struct {
	cmp        CompareFunc[T]
	descending bool
}

func (r *Registry[T]) resolve(spec *SortSpec) ([]resolvedKey[T], error) {
	if spec == nil {
		return nil, nil
	}
	keys := make([]resolvedKey[T], 0, len(spec.Keys))
	for _, k := range spec.Keys {
		cmp, ok := r.compare[strings.ToLower(k.ColumnID)]
		if !ok {
			return nil, &UnknownColumnError{ColumnID: k.ColumnID}
		}
		keys = append(keys, resolvedKey[T]{cmp: cmp, descending: k.Direction == Descending})
	}
	return keys, nil
}

// Comparator returns a comparison function implementing spec. The keys are resolved once, so later changes to
// spec have no effect on the returned function. Nil entries sort last.
func (r *Registry[T]) Comparator(spec *SortSpec) (func(a, b *T) int, error) {
	keys, err := r.resolve(spec)
	if err != nil {
		return nil, err
	}

	idCompare := r.idCompare
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}
		for _, k := range keys {
			res := k.cmp(a, b)
			if res == 0 {
				continue
			}
			if k.descending {
				return -res
			}
			return res
		}
		return idCompare(a, b)
	}, nil
}

// Sort sorts rows in place according to spec. All keys are checked before any row is moved, so on error rows are
// left as they were. A nil or empty spec sorts by ID.
func (r *Registry[T]) Sort(rows []*T, spec *SortSpec) error {
	if len(rows) == 0 {
		return nil
	}
	cmp, err := r.Comparator(spec)
	if err != nil {
		return err
	}
	slices.SortFunc(rows, cmp)
	return nil
}

// CanSortBy returns true if all keys of spec can be resolved
func (r *Registry[T]) CanSortBy(spec *SortSpec) bool {
	_, err := r.resolve(spec)
	return err == nil
}

// FilterSortableColumns returns two lists, one containing the entries of sortBy that can be sorted by and one
// with the remaining entries. Entries keep their "-" prefix and order.
func (r *Registry[T]) FilterSortableColumns(sortBy []string) (valid []string, invalid []string) {
	for _, field := range sortBy {
		name := strings.TrimPrefix(strings.TrimSpace(field), "-")
		if _, ok := r.compare[strings.ToLower(name)]; ok {
			valid = append(valid, field)
			continue
		}
		invalid = append(invalid, field)
	}
	return
}

// SortEntries sorts entries by the columns named in sortBy, optionally prefixed with "-" for descending order.
// The first entry has the highest priority.
func SortEntries[T any](cols *columns.Columns[T], entries []*T, sortBy []string) error {
	reg, err := RegistryFromColumns(cols)
	if err != nil {
		return err
	}
	return reg.Sort(entries, ParseSortSpec(sortBy))
}
