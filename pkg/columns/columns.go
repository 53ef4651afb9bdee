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
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

type ColumnMap[T any] map[string]*Column[T]

type Columns[T any] struct {
	ColumnMap[T]
	options  *Options
	idColumn *Column[T]
}

const virtualIndex = -1

var stringType = reflect.TypeOf("") // used for virtual columns

// MustCreateColumns creates a new column helper and panics if it cannot successfully be created; useful if you
// want to initialize Columns as a global variable inside a package (similar to regexp.MustCompile)
func MustCreateColumns[T any](options ...Option) *Columns[T] {
	cols, err := NewColumns[T](options...)
	if err != nil {
		panic(err)
	}
	return cols
}

// NewColumns creates a new column helper. T must be of type struct and its fields must have a column tag if they
// should be considered. Embedded structs are traversed. Options can be passed to change the default behavior.
func NewColumns[T any](options ...Option) (*Columns[T], error) {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	t := reflect.TypeOf((*T)(nil)).Elem()

	// Generics sadly don't provide a way to constraint to a type like struct{}, so we need to check here
	if t.Kind() != reflect.Struct {
		return nil, errors.New("NewColumns works only on structs")
	}

	columns := &Columns[T]{
		ColumnMap: make(ColumnMap[T]),
		options:   opts,
	}

	if err := columns.iterateFields(t, nil); err != nil {
		return nil, fmt.Errorf("initializing columns on type %s: %w", t.String(), err)
	}

	return columns, nil
}

// GetColumn returns a specific column by its name
func (c ColumnMap[T]) GetColumn(columnName string) (*Column[T], bool) {
	column, ok := c[strings.ToLower(columnName)]
	return column, ok
}

// GetOrderedColumns returns an ordered list of columns according to their order values
func (c ColumnMap[T]) GetOrderedColumns() []*Column[T] {
	columns := make([]*Column[T], 0, len(c))
	for _, column := range c {
		columns = append(columns, column)
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].Order == columns[j].Order {
			return columns[i].Name < columns[j].Name
		}
		return columns[i].Order < columns[j].Order
	})
	return columns
}

// GetColumnNames returns a list of column names, ordered by the column order values
func (c ColumnMap[T]) GetColumnNames() []string {
	sorted := c.GetOrderedColumns()
	names := make([]string, 0, len(sorted))
	for _, column := range sorted {
		names = append(names, column.Name)
	}
	return names
}

// VerifyColumnNames takes a list of column names and returns two lists, one containing the valid column names
// and another containing the invalid column names. Prefixes like "-" for descending sorting will be ignored.
func (c ColumnMap[T]) VerifyColumnNames(columnNames []string) (valid []string, invalid []string) {
	for _, cname := range columnNames {
		cname = strings.TrimPrefix(strings.ToLower(cname), "-")
		if _, ok := c[cname]; ok {
			valid = append(valid, cname)
			continue
		}
		invalid = append(invalid, cname)
	}
	return
}

// IDColumn returns the column tagged with "id", if any
func (c *Columns[T]) IDColumn() (*Column[T], bool) {
	return c.idColumn, c.idColumn != nil
}

func (c *Columns[T]) iterateFields(t reflect.Type, sub []int) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("column")

		if f.Anonymous && f.Type.Kind() == reflect.Struct && !strings.Contains(tag, ",noembed") {
			if err := c.iterateFields(f.Type, append(append([]int{}, sub...), i)); err != nil {
				return err
			}
			continue
		}

		if tag == "" && c.options.RequireColumnDefinition {
			continue
		}
		if tag == "" {
			if !f.IsExported() {
				continue
			}
			tag = f.Name
		}

		column := &Column[T]{
			EllipsisType: c.options.DefaultEllipsis,
			Alignment:    c.options.DefaultAlignment,
			Visible:      true,
			Order:        len(c.ColumnMap) * 10,
			fieldIndex:   append(append([]int{}, sub...), i),
			kind:         f.Type.Kind(),
			columnType:   f.Type,
		}

		if err := column.fromTag(tag); err != nil {
			return fmt.Errorf("parsing tag on field %q: %w", f.Name, err)
		}

		if column.Name == "" {
			column.Name = f.Name
		}
		if column.Width == 0 {
			column.Width = c.options.DefaultWidth
		}
		column.Description = f.Tag.Get("columnDesc")

		lowerName := strings.ToLower(column.Name)
		if _, ok := c.ColumnMap[lowerName]; ok {
			return fmt.Errorf("duplicate column %q", lowerName)
		}

		if column.isID {
			if c.idColumn != nil {
				return fmt.Errorf("column %q: id already set on column %q", column.Name, c.idColumn.Name)
			}
			if !isIntegerKind(column.kind) {
				return fmt.Errorf("column %q: id column must be of integer kind, got %s", column.Name, column.kind)
			}
			c.idColumn = column
		}

		c.ColumnMap[lowerName] = column
	}
	return nil
}

// AddColumn adds a virtual column to the table. This virtual column requires at least a
// name and an Extractor
func (c *Columns[T]) AddColumn(column Column[T]) error {
	if column.Name == "" {
		return errors.New("no name set for column")
	}

	columnName := strings.ToLower(column.Name)
	if _, ok := c.ColumnMap[columnName]; ok {
		return fmt.Errorf("column already exists: %q", columnName)
	}

	if column.Extractor == nil {
		return fmt.Errorf("no extractor set for column %q", column.Name)
	}

	if column.Width == 0 {
		column.Width = c.options.DefaultWidth
	}
	if column.Order == 0 {
		column.Order = len(c.ColumnMap) * 10
	}

	column.Visible = true
	column.isID = false
	column.fieldIndex = []int{virtualIndex}

	// Virtual columns always go through the extractor func
	column.kind = reflect.String
	column.columnType = stringType

	c.ColumnMap[columnName] = &column
	return nil
}

// MustAddColumn adds a new column and panics if it cannot successfully do so
func (c *Columns[T]) MustAddColumn(column Column[T]) {
	if err := c.AddColumn(column); err != nil {
		panic(err)
	}
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
