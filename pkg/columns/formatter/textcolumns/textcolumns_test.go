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

package textcolumns

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
)

type testStruct struct {
	Name     string  `column:"name,width:10"`
	Age      uint    `column:"age,width:4,align:right,fixed"`
	Size     float32 `column:"size,width:6,align:right"`
	Balance  int     `column:"balance,width:8,align:right"`
	CanDance bool    `column:"canDance,width:8"`
	Secret   string  `column:"secret,hide"`
}

var testEntries = []*testStruct{
	{"Alice", 32, 1.74, 1000, true, "a"},
	{"Bob", 26, 1.73, -200, true, "b"},
	{"Eve", 99, 5.12, 1000000, false, "e"},
	nil,
}

var testColumns = columns.MustCreateColumns[testStruct]().ColumnMap

func TestTextColumnsFormatter_FormatEntry(t *testing.T) {
	expected := []string{
		"Alice        32   1.74     1000 true    ",
		"Bob          26   1.73     -200 true    ",
		"Eve          99   5.12  1000000 false   ",
		"",
	}
	formatter := NewFormatter(testColumns, WithAutoScale(false), WithRowDivider(DividerDash))
	for i, entry := range testEntries {
		assert.Equal(t, expected[i], formatter.FormatEntry(entry))
	}

	b := bytes.NewBuffer(nil)
	require.NoError(t, formatter.WriteTable(b, testEntries))
	lines := append([]string{"NAME        AGE   SIZE  BALANCE CANDANCE", strings.Repeat("—", 40)}, expected[:3]...)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", b.String())
}

func TestTextColumnsFormatter_FormatHeader(t *testing.T) {
	formatter := NewFormatter(testColumns)
	assert.Equal(t, "NAME        AGE   SIZE  BALANCE CANDANCE", formatter.FormatHeader())

	formatter = NewFormatter(testColumns, WithHeaderStyle(HeaderStyleLowercase))
	assert.Equal(t, "name        age   size  balance candance", formatter.FormatHeader())

	formatter = NewFormatter(testColumns, WithHeaderStyle(HeaderStyleNormal), WithColumnDivider("|"))
	assert.Equal(t, "name      | age|  size| balance|canDance", formatter.FormatHeader())
}

func TestTextColumnsFormatter_FormatRowDivider(t *testing.T) {
	formatter := NewFormatter(testColumns)
	assert.Empty(t, formatter.FormatRowDivider())

	formatter = NewFormatter(testColumns, WithRowDivider("=-"))
	divider := formatter.FormatRowDivider()
	assert.Len(t, divider, 40)
	assert.True(t, strings.HasPrefix(divider, "=-=-"))
}

func TestTextColumnsFormatter_SetShowColumns(t *testing.T) {
	formatter := NewFormatter(testColumns, WithAutoScale(false))
	assert.Equal(t, []string{"name", "age", "size", "balance", "canDance"}, formatter.ShownColumns())

	require.NoError(t, formatter.SetShowColumns([]string{"AGE", " name"}))
	assert.Equal(t, " AGE NAME      ", formatter.FormatHeader())
	assert.Equal(t, "  32 Alice     ", formatter.FormatEntry(testEntries[0]))

	err := formatter.SetShowColumns([]string{"name", "unknown"})
	require.Error(t, err)
	assert.Equal(t, []string{"age", "name"}, formatter.ShownColumns())

	require.NoError(t, formatter.SetShowColumns([]string{"secret"}))
	assert.Equal(t, "e               ", formatter.FormatEntry(testEntries[2]))

	require.NoError(t, formatter.SetShowColumns(nil))
	assert.Equal(t, []string{"name", "age", "size", "balance", "canDance"}, formatter.ShownColumns())
}

func TestTextColumnsFormatter_DefaultColumns(t *testing.T) {
	formatter := NewFormatter(testColumns, WithDefaultColumns([]string{"balance", "name"}))
	assert.Equal(t, []string{"balance", "name"}, formatter.ShownColumns())

	formatter = NewFormatter(testColumns, WithDefaultColumns([]string{"nope"}))
	assert.Equal(t, []string{"name", "age", "size", "balance", "canDance"}, formatter.ShownColumns())
}

func TestTextColumnsFormatter_AdjustWidthsToContent(t *testing.T) {
	formatter := NewFormatter(testColumns, WithRowDivider(DividerDash))
	formatter.AdjustWidthsToContent(testEntries, true, 0)
	assert.Equal(t, "NAME   AGE SIZE BALANCE CANDANCE", formatter.FormatHeader())
	assert.Equal(t, strings.Repeat("—", 32), formatter.FormatRowDivider())
	assert.Equal(t, "Alice   32 1.74    1000 true    ", formatter.FormatEntry(testEntries[0]))

	formatter.ResetWidths()
	assert.Equal(t, "NAME        AGE   SIZE  BALANCE CANDANCE", formatter.FormatHeader())
}

func TestTextColumnsFormatter_AdjustWidthsToContentNoHeaders(t *testing.T) {
	formatter := NewFormatter(testColumns)
	formatter.AdjustWidthsToContent(testEntries, false, 0)
	assert.Equal(t, "NAME   AGE SIZE BALANCE CAND…", formatter.FormatHeader())
	assert.Equal(t, "Alice   32 1.74    1000 true ", formatter.FormatEntry(testEntries[0]))
}

func TestTextColumnsFormatter_AdjustWidthsMaxWidth(t *testing.T) {
	formatter := NewFormatter(testColumns)
	formatter.AdjustWidthsToContent(testEntries, true, 20)
	assert.Equal(t, "NA…  AGE SI… BA… CA…", formatter.FormatHeader())
	assert.Equal(t, "Al…   32 1.… 10… tr…", formatter.FormatEntry(testEntries[0]))

	// fixed columns and dividers are never shrunk
	formatter.AdjustWidthsToContent(testEntries, true, 1)
	assert.Equal(t, "…  AGE … … …", formatter.FormatHeader())
}

func TestTextColumnsFormatter_WriteTableAutoScale(t *testing.T) {
	formatter := NewFormatter(testColumns, WithRowDivider(DividerDash))
	b := bytes.NewBuffer(nil)
	require.NoError(t, formatter.WriteTable(b, testEntries))

	expected := strings.Join([]string{
		"NAME   AGE SIZE BALANCE CANDANCE",
		strings.Repeat("—", 32),
		"Alice   32 1.74    1000 true    ",
		"Bob     26 1.73    -200 true    ",
		"Eve     99 5.12 1000000 false   ",
	}, "\n") + "\n"
	assert.Equal(t, expected, b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTextColumnsFormatter_WriteTableError(t *testing.T) {
	formatter := NewFormatter(testColumns)
	err := formatter.WriteTable(failingWriter{}, testEntries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestOptions(t *testing.T) {
	opts := &Options{}

	WithAutoScale(true)(opts)
	WithColumnDivider("X")(opts)
	WithDefaultColumns([]string{"abc"})(opts)
	WithHeaderStyle(HeaderStyleLowercase)(opts)
	WithMaxWidth(80)(opts)
	WithRowDivider("Y")(opts)

	assert.Equal(t, &Options{
		AutoScale:      true,
		ColumnDivider:  "X",
		DefaultColumns: []string{"abc"},
		HeaderStyle:    HeaderStyleLowercase,
		MaxWidth:       80,
		RowDivider:     "Y",
	}, opts)
}
