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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortSpec(t *testing.T) {
	spec := ParseSortSpec([]string{"name", " -quantity ", "", "-", "ID"})
	require.True(t, spec.Dirty)
	assert.Equal(t, []SortKey{
		{ColumnID: "name", Direction: Ascending},
		{ColumnID: "quantity", Direction: Descending},
		{ColumnID: "ID", Direction: Ascending},
	}, spec.Keys)
	assert.Equal(t, "name,-quantity,ID", spec.String())
	assert.Equal(t, []string{"name", "quantity", "ID"}, spec.ColumnIDs())

	empty := ParseSortSpec(nil)
	assert.Empty(t, empty.Keys)
	assert.Equal(t, "", empty.String())
}

func TestSortSpecNil(t *testing.T) {
	var spec *SortSpec
	assert.Equal(t, "", spec.String())
	assert.Nil(t, spec.ColumnIDs())
	assert.Nil(t, spec.Clone())
}

func TestSortSpecClone(t *testing.T) {
	spec := ParseSortSpec([]string{"name"})
	clone := spec.Clone()
	clone.Keys[0].Direction = Descending
	clone.Dirty = false

	assert.Equal(t, Ascending, spec.Keys[0].Direction)
	assert.True(t, spec.Dirty)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "descending", Descending.String())
	assert.Equal(t, "-name", SortKey{ColumnID: "name", Direction: Descending}.String())
}
