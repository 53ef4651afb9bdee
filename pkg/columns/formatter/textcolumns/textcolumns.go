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
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
)

type Column[T any] struct {
	col   *columns.Column[T]
	width int
	value func(*T) string
}

type TextColumnsFormatter[T any] struct {
	options     *Options
	columns     map[string]*Column[T]
	showColumns []*Column[T]
}

// NewFormatter returns a TextColumnsFormatter that will turn entries of type T into tables that can be shown
// on terminals or other frontends using fixed-width characters
func NewFormatter[T any](cols columns.ColumnMap[T], options ...Option) *TextColumnsFormatter[T] {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	tf := &TextColumnsFormatter[T]{
		options: opts,
		columns: make(map[string]*Column[T], len(cols)),
	}
	for columnName, column := range cols {
		tf.columns[columnName] = &Column[T]{
			col:   column,
			width: column.Width,
			value: columns.GetFieldAsString(column),
		}
	}

	if err := tf.SetShowColumns(opts.DefaultColumns); err != nil {
		tf.SetShowDefaultColumns()
	}
	return tf
}

// SetShowDefaultColumns shows all visible columns in their default order
func (tf *TextColumnsFormatter[T]) SetShowDefaultColumns() {
	newColumns := make([]*Column[T], 0, len(tf.columns))
	for _, c := range tf.columns {
		if !c.col.Visible {
			continue
		}
		newColumns = append(newColumns, c)
	}
	slices.SortFunc(newColumns, func(a, b *Column[T]) int {
		if a.col.Order != b.col.Order {
			return a.col.Order - b.col.Order
		}
		return strings.Compare(a.col.Name, b.col.Name)
	})
	tf.showColumns = newColumns
}

// SetShowColumns takes a list of column names that will be displayed when using the output methods. nil restores
// the default columns. Returns an error if any of the columns is not available, leaving the shown columns as
// they were.
func (tf *TextColumnsFormatter[T]) SetShowColumns(names []string) error {
	if names == nil {
		tf.SetShowDefaultColumns()
		return nil
	}

	newColumns := make([]*Column[T], 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		column, ok := tf.columns[name]
		if !ok {
			return fmt.Errorf("column %q is invalid", name)
		}
		newColumns = append(newColumns, column)
	}
	tf.showColumns = newColumns
	return nil
}

// ShownColumns returns the names of the columns currently shown
func (tf *TextColumnsFormatter[T]) ShownColumns() []string {
	names := make([]string, 0, len(tf.showColumns))
	for _, c := range tf.showColumns {
		names = append(names, c.col.Name)
	}
	return names
}

// ResetWidths sets all columns back to their configured widths
func (tf *TextColumnsFormatter[T]) ResetWidths() {
	for _, c := range tf.columns {
		c.width = c.col.Width
	}
}

// AdjustWidthsToContent sets the width of every shown column to the widest value it has in entries; if
// considerHeaders is set, column names count as values. Columns with a fixed width keep it. If maxWidth is
// greater than zero, the widest columns are shrunk until a row fits into maxWidth or every column is down to a
// single character.
func (tf *TextColumnsFormatter[T]) AdjustWidthsToContent(entries []*T, considerHeaders bool, maxWidth int) {
	for _, c := range tf.showColumns {
		if c.col.FixedWidth {
			c.width = c.col.Width
			continue
		}
		width := 1
		if considerHeaders {
			width = max(width, utf8.RuneCountInString(c.col.Name))
		}
		for _, entry := range entries {
			if entry == nil {
				continue
			}
			width = max(width, utf8.RuneCountInString(c.value(entry)))
		}
		c.width = width
	}

	if maxWidth <= 0 {
		return
	}
	for tf.rowWidth() > maxWidth {
		var widest *Column[T]
		for _, c := range tf.showColumns {
			if c.col.FixedWidth || c.width <= 1 {
				continue
			}
			if widest == nil || c.width > widest.width {
				widest = c
			}
		}
		if widest == nil {
			return
		}
		widest.width--
	}
}

func (tf *TextColumnsFormatter[T]) rowWidth() int {
	width := 0
	for i, c := range tf.showColumns {
		if i > 0 {
			width += utf8.RuneCountInString(tf.options.ColumnDivider)
		}
		width += c.width
	}
	return width
}
