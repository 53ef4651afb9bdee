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

/*
Package sort orders rows by an ordered list of sort keys, each naming a column and a direction.

A [Registry] maps column names to comparison functions and knows how to get the unique ID of a row. It is usually
built from a column map:

	reg, err := sort.RegistryFromColumns(cols)
	err = reg.Sort(entries, sort.ParseSortSpec([]string{"name", "-quantity"}))

sorts by name in ascending order and, for rows with the same name, by quantity in descending order. The first key
always has the highest priority.

Rows that compare equal on every key are ordered by their ID in ascending order, so the result is the same on every
run even though the underlying sort algorithm is not stable. An empty spec sorts by ID only.

Keys naming a column without a comparison function are not skipped: Sort returns an [*UnknownColumnError] and leaves
the rows untouched. Use [Registry.FilterSortableColumns] to check user input beforehand.

Sort neither logs nor locks. Callers must not modify the rows slice from another goroutine while sorting.
*/
package sort
