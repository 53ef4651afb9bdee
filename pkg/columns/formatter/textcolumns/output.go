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
	"fmt"
	"io"
	"strings"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
	"github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"
)

// FormatEntry returns an entry as a formatted string, respecting the given formatting settings
func (tf *TextColumnsFormatter[T]) FormatEntry(entry *T) string {
	if entry == nil {
		return ""
	}

	var row strings.Builder
	for i, c := range tf.showColumns {
		if i > 0 {
			row.WriteString(tf.options.ColumnDivider)
		}
		row.WriteString(ellipsis.Fit(c.value(entry), c.width, c.col.EllipsisType, c.col.Alignment == columns.AlignRight))
	}
	return row.String()
}

// FormatHeader returns the formatted header line with all shown column names, separated by ColumnDivider
func (tf *TextColumnsFormatter[T]) FormatHeader() string {
	var row strings.Builder
	for i, c := range tf.showColumns {
		if i > 0 {
			row.WriteString(tf.options.ColumnDivider)
		}
		name := c.col.Name
		switch tf.options.HeaderStyle {
		case HeaderStyleUppercase:
			name = strings.ToUpper(name)
		case HeaderStyleLowercase:
			name = strings.ToLower(name)
		}
		row.WriteString(ellipsis.Fit(name, c.width, ellipsis.End, c.col.Alignment == columns.AlignRight))
	}
	return row.String()
}

// FormatRowDivider returns a string that repeats the defined RowDivider until the total length of a row is reached
func (tf *TextColumnsFormatter[T]) FormatRowDivider() string {
	if tf.options.RowDivider == DividerNone {
		return ""
	}
	width := tf.rowWidth()
	divider := []rune(tf.options.RowDivider)
	return string([]rune(strings.Repeat(string(divider), width/len(divider)+1))[:width])
}

// WriteTable writes header, divider and body with the current settings. With AutoScale enabled, widths are
// fitted to entries first. Nil entries are skipped.
func (tf *TextColumnsFormatter[T]) WriteTable(writer io.Writer, entries []*T) error {
	if tf.options.AutoScale {
		tf.AdjustWidthsToContent(entries, true, tf.options.MaxWidth)
	}

	var out strings.Builder
	out.WriteString(tf.FormatHeader())
	out.WriteString("\n")
	if tf.options.RowDivider != DividerNone {
		out.WriteString(tf.FormatRowDivider())
		out.WriteString("\n")
	}
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		out.WriteString(tf.FormatEntry(entry))
		out.WriteString("\n")
	}

	if _, err := io.WriteString(writer, out.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
