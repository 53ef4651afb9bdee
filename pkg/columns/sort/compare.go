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
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
)

// compareOrdered compares two ordered values; NaN sorts before any other float and equal to itself
func compareOrdered[V constraints.Ordered](a, b V) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func orderedComparator[OT constraints.Ordered, T any](ff func(*T) OT) CompareFunc[T] {
	return func(a, b *T) int {
		return compareOrdered(ff(a), ff(b))
	}
}

// ComparatorForColumn returns a comparison function fitting the kind of column: numbers compare by value,
// strings lexicographically (virtual columns by the result of their extractor) and false sorts before true.
// The second return value is false if the kind is not sortable.
func ComparatorForColumn[T any](column *columns.Column[T]) (CompareFunc[T], bool) {
	switch column.Kind() {
	case reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64:
		return orderedComparator(columns.GetFieldAsNumberFunc[int64, T](column)), true
	case reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64:
		return orderedComparator(columns.GetFieldAsNumberFunc[uint64, T](column)), true
	case reflect.Float32,
		reflect.Float64:
		return orderedComparator(columns.GetFieldAsNumberFunc[float64, T](column)), true
	case reflect.String:
		return orderedComparator(columns.GetFieldFunc[string, T](column)), true
	case reflect.Bool:
		ff := columns.GetFieldFunc[bool, T](column)
		return func(a, b *T) int {
			return compareBool(ff(a), ff(b))
		}, true
	}
	return nil, false
}

// RegistryFromColumns creates a Registry with a comparison function for every sortable column of cols. cols
// must have a column tagged with "id".
func RegistryFromColumns[T any](cols *columns.Columns[T]) (*Registry[T], error) {
	idColumn, ok := cols.IDColumn()
	if !ok {
		return nil, fmt.Errorf("no id column defined")
	}

	var idCompare CompareFunc[T]
	if idColumn.Kind() >= reflect.Uint && idColumn.Kind() <= reflect.Uint64 {
		idCompare = orderedComparator(columns.GetFieldAsNumberFunc[uint64, T](idColumn))
	} else {
		idCompare = orderedComparator(columns.GetFieldAsNumberFunc[int64, T](idColumn))
	}

	reg := NewRegistryWithIDCompare(idCompare)
	for _, column := range cols.GetOrderedColumns() {
		cmp, ok := ComparatorForColumn(column)
		if !ok {
			continue
		}
		if err := reg.Register(column.Name, cmp); err != nil {
			return nil, fmt.Errorf("registering column %q: %w", column.Name, err)
		}
	}
	return reg, nil
}
