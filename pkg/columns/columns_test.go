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

package columns

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"
)

func expectColumnsSuccess[T any](t *testing.T, options ...Option) *Columns[T] {
	t.Helper()
	cols, err := NewColumns[T](options...)
	require.NoError(t, err)
	return cols
}

func expectColumnsFail[T any](t *testing.T, name string, options ...Option) {
	t.Helper()
	_, err := NewColumns[T](options...)
	require.Error(t, err, name)
}

func expectColumn[T any](t *testing.T, cols *Columns[T], name string) *Column[T] {
	t.Helper()
	col, ok := cols.GetColumn(name)
	require.True(t, ok, "column %q not found", name)
	return col
}

func TestColumnMap(t *testing.T) {
	type testStruct struct {
		StringField string `column:"stringField"`
		IntField    int    `column:"intField"`
		Untagged    int
	}
	cols := expectColumnsSuccess[testStruct](t)
	assert.Len(t, cols.ColumnMap, 2)
	assert.Contains(t, cols.ColumnMap, "stringfield")
	assert.Contains(t, cols.ColumnMap, "intfield")

	// lookups are case-insensitive
	expectColumn(t, cols, "STRINGFIELD")
}

func TestWithoutColumnDefinition(t *testing.T) {
	type testStruct struct {
		StringField string
		IntField    int
		internal    int
	}
	assert.Empty(t, expectColumnsSuccess[testStruct](t).ColumnMap)

	cols := expectColumnsSuccess[testStruct](t, WithRequireColumnDefinition(false))
	assert.ElementsMatch(t, []string{"StringField", "IntField"}, cols.GetColumnNames())
}

func TestOptions(t *testing.T) {
	type testStruct struct {
		Name string `column:"name"`
		Age  int    `column:"age,width:3"`
	}
	cols := expectColumnsSuccess[testStruct](t, WithWidth(20), WithWidth(-1), WithAlignment(AlignRight), WithEllipsis(ellipsis.Middle))
	name := expectColumn(t, cols, "name")
	assert.Equal(t, 20, name.Width)
	assert.Equal(t, AlignRight, name.Alignment)
	assert.Equal(t, ellipsis.Middle, name.EllipsisType)
	assert.Equal(t, 3, expectColumn(t, cols, "age").Width)
}

func TestNonStruct(t *testing.T) {
	expectColumnsFail[int](t, "int")
	expectColumnsFail[[]string](t, "slice")
}

func TestFieldsWithTypeDefinition(t *testing.T) {
	type StringAlias string
	type IntAlias int
	type testStruct struct {
		StringField StringAlias `column:"stringField"`
		IntField    IntAlias    `column:"intField"`
	}

	entry := &testStruct{StringField: "abc", IntField: 123}

	cols := expectColumnsSuccess[testStruct](t)
	assert.Equal(t, entry.StringField, expectColumn(t, cols, "stringField").Get(entry).Interface())
	assert.Equal(t, entry.IntField, expectColumn(t, cols, "intField").Get(entry).Interface())
	assert.Equal(t, reflect.String, expectColumn(t, cols, "stringField").Kind())

	assert.Equal(t, "abc", GetFieldFunc[string](expectColumn(t, cols, "stringField"))(entry))
	assert.Equal(t, int64(123), GetFieldAsNumberFunc[int64](expectColumn(t, cols, "intField"))(entry))
	assert.Equal(t, int64(0), GetFieldAsNumberFunc[int64](expectColumn(t, cols, "intField"))(nil))
}

func TestGetOrderedColumns(t *testing.T) {
	type testStruct struct {
		StringField string `column:"stringField,order:500"`
		IntField    int    `column:"intField,order:200"`
	}
	ocols := expectColumnsSuccess[testStruct](t).GetOrderedColumns()
	require.Len(t, ocols, 2)
	assert.Equal(t, "intField", ocols[0].Name)
	assert.Equal(t, "stringField", ocols[1].Name)
	assert.Equal(t, []string{"intField", "stringField"}, expectColumnsSuccess[testStruct](t).GetColumnNames())
}

func TestEmbedded(t *testing.T) {
	type embeddedStruct struct {
		EmbeddedString string `column:"embeddedString"`
	}
	type testStruct struct {
		embeddedStruct
		Name string `column:"name"`
	}

	cols := expectColumnsSuccess[testStruct](t)
	entry := &testStruct{embeddedStruct: embeddedStruct{EmbeddedString: "inner"}, Name: "outer"}
	assert.Equal(t, "inner", expectColumn(t, cols, "embeddedString").Get(entry).String())
	assert.Equal(t, "outer", expectColumn(t, cols, "name").Get(entry).String())
	assert.Equal(t, "", expectColumn(t, cols, "name").Get(nil).String())
}

func TestNoEmbed(t *testing.T) {
	type Inner struct {
		InnerString string `column:"innerString"`
	}
	type testStruct struct {
		Inner `column:"inner,noembed"`
		Name  string `column:"name"`
	}

	cols := expectColumnsSuccess[testStruct](t)
	assert.Equal(t, reflect.Struct, expectColumn(t, cols, "inner").Kind())
	_, ok := cols.GetColumn("innerString")
	assert.False(t, ok)

	type invalidNoEmbed struct {
		Inner `column:"inner,noembed:yes"`
	}
	expectColumnsFail[invalidNoEmbed](t, "noembed with value")
}

func TestTags(t *testing.T) {
	type testStruct struct {
		ID     uint32 `column:"id,id,align:right,width:4,fixed"`
		Name   string `column:"name,ellipsis:middle,hide,order:1"`
		Secret string `column:"secret,ellipsis"`
	}
	cols := expectColumnsSuccess[testStruct](t)

	id := expectColumn(t, cols, "id")
	assert.True(t, id.IsID())
	assert.Equal(t, AlignRight, id.Alignment)
	assert.Equal(t, 4, id.Width)
	assert.True(t, id.FixedWidth)

	idCol, ok := cols.IDColumn()
	require.True(t, ok)
	assert.Same(t, id, idCol)

	name := expectColumn(t, cols, "name")
	assert.False(t, name.Visible)
	assert.Equal(t, ellipsis.Middle, name.EllipsisType)
	assert.Equal(t, 1, name.Order)
	assert.Equal(t, 16, name.Width)

	assert.Equal(t, ellipsis.End, expectColumn(t, cols, "secret").EllipsisType)
}

func TestInvalidTags(t *testing.T) {
	expectColumnsFail[struct {
		Field string `column:"field,align"`
	}](t, "missing alignment")
	expectColumnsFail[struct {
		Field string `column:"field,align:top"`
	}](t, "invalid alignment")
	expectColumnsFail[struct {
		Field string `column:"field,ellipsis:sideways"`
	}](t, "invalid ellipsis")
	expectColumnsFail[struct {
		Field string `column:"field,width:abc"`
	}](t, "invalid width")
	expectColumnsFail[struct {
		Field string `column:"field,width:-2"`
	}](t, "negative width")
	expectColumnsFail[struct {
		Field string `column:"field,hide:yes"`
	}](t, "hide with value")
	expectColumnsFail[struct {
		Field string `column:"field,unknown"`
	}](t, "unknown parameter")
	expectColumnsFail[struct {
		Field  string `column:"field"`
		Field2 string `column:"FIELD"`
	}](t, "duplicate")
	expectColumnsFail[struct {
		Field string `column:"field,id"`
	}](t, "string id")
	expectColumnsFail[struct {
		ID  int `column:"id,id"`
		ID2 int `column:"id2,id"`
	}](t, "two ids")
}

func TestVerifyColumnNames(t *testing.T) {
	type testStruct struct {
		Name     string `column:"name"`
		Quantity int    `column:"quantity"`
	}
	cols := expectColumnsSuccess[testStruct](t)
	valid, invalid := cols.VerifyColumnNames([]string{"Name", "-quantity", "price"})
	assert.Equal(t, []string{"name", "quantity"}, valid)
	assert.Equal(t, []string{"price"}, invalid)
}

func TestVirtualColumns(t *testing.T) {
	type testStruct struct {
		Name string `column:"name"`
	}
	cols := expectColumnsSuccess[testStruct](t)

	require.Error(t, cols.AddColumn(Column[testStruct]{Name: ""}), "no name")
	require.Error(t, cols.AddColumn(Column[testStruct]{Name: "virtual"}), "no extractor")
	require.Error(t, cols.AddColumn(Column[testStruct]{
		Name:      "NAME",
		Extractor: func(*testStruct) string { return "" },
	}), "duplicate")

	cols.MustAddColumn(Column[testStruct]{
		Name: "upper",
		Extractor: func(e *testStruct) string {
			return "<" + e.Name + ">"
		},
	})

	col := expectColumn(t, cols, "upper")
	assert.True(t, col.IsVirtual())
	assert.Equal(t, reflect.String, col.Kind())
	assert.Equal(t, 16, col.Width)

	entry := &testStruct{Name: "kiwi"}
	assert.Equal(t, "<kiwi>", col.Get(entry).String())
	assert.Equal(t, "<kiwi>", GetFieldFunc[string](col)(entry))
	assert.Equal(t, "<kiwi>", GetFieldAsString(col)(entry))
	assert.Equal(t, "", GetFieldAsString(col)(nil))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-3", FormatValue(reflect.ValueOf(int8(-3))))
	assert.Equal(t, "3", FormatValue(reflect.ValueOf(uint(3))))
	assert.Equal(t, "1.5", FormatValue(reflect.ValueOf(1.5)))
	assert.Equal(t, "true", FormatValue(reflect.ValueOf(true)))
	assert.Equal(t, "apple", FormatValue(reflect.ValueOf("apple")))
}
