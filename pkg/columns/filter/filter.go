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

package filter

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
)

type operator int

const (
	opEqual operator = iota
	opRegex
	opLess
	opLessEqual
	opGreater
	opGreaterEqual
)

// longer prefixes first
var operators = []struct {
	prefix string
	op     operator
}{
	{"~", opRegex},
	{">=", opGreaterEqual},
	{">", opGreater},
	{"<=", opLessEqual},
	{"<", opLess},
}

type Filter[T any] struct {
	expr   string
	column *columns.Column[T]
	negate bool
	match  func(*T) bool
}

type Filters[T any] []*Filter[T]

// Parse prepares a filter from an expression like "quantity:>=10"
func Parse[T any](cols columns.ColumnMap[T], expr string) (*Filter[T], error) {
	name, rule, _ := strings.Cut(expr, ":")

	column, ok := cols.GetColumn(strings.TrimSpace(name))
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}

	f := &Filter[T]{
		expr:   expr,
		column: column,
	}

	if strings.HasPrefix(rule, "!") {
		f.negate = true
		rule = rule[1:]
	}

	op := opEqual
	for _, o := range operators {
		if strings.HasPrefix(rule, o.prefix) {
			op = o.op
			rule = strings.TrimPrefix(rule, o.prefix)
			break
		}
	}

	match, err := matcherFor(column, op, rule)
	if err != nil {
		return nil, err
	}
	f.match = match
	return f, nil
}

// ParseAll prepares a filter for every expression
func ParseAll[T any](cols columns.ColumnMap[T], exprs []string) (Filters[T], error) {
	filters := make(Filters[T], 0, len(exprs))
	for _, expr := range exprs {
		f, err := Parse(cols, expr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func matcherFor[T any](column *columns.Column[T], op operator, value string) (func(*T) bool, error) {
	if op == opRegex {
		if column.Kind() != reflect.String {
			return nil, fmt.Errorf("regular expression on non-string column %q", column.Name)
		}
		re, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compiling regular expression %q: %w", value, err)
		}
		ff := columns.GetFieldFunc[string, T](column)
		return func(entry *T) bool {
			return re.MatchString(ff(entry))
		}, nil
	}

	// a bare column name matches the zero value
	if value == "" && op == opEqual {
		switch column.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			value = "0"
		case reflect.Bool:
			value = "false"
		}
	}

	switch column.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ref, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("comparing %q to int column %q", value, column.Name)
		}
		return orderedMatcher(columns.GetFieldAsNumberFunc[int64, T](column), op, ref), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ref, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("comparing %q to uint column %q", value, column.Name)
		}
		return orderedMatcher(columns.GetFieldAsNumberFunc[uint64, T](column), op, ref), nil
	case reflect.Float32, reflect.Float64:
		ref, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("comparing %q to float column %q", value, column.Name)
		}
		return orderedMatcher(columns.GetFieldAsNumberFunc[float64, T](column), op, ref), nil
	case reflect.String:
		return orderedMatcher(columns.GetFieldFunc[string, T](column), op, value), nil
	case reflect.Bool:
		if op != opEqual {
			return nil, fmt.Errorf("bool column %q only supports equality", column.Name)
		}
		ref, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("comparing %q to bool column %q", value, column.Name)
		}
		ff := columns.GetFieldFunc[bool, T](column)
		return func(entry *T) bool {
			return ff(entry) == ref
		}, nil
	}
	return nil, fmt.Errorf("column %q of kind %s cannot be filtered", column.Name, column.Kind())
}

func orderedMatcher[OT constraints.Ordered, T any](ff func(*T) OT, op operator, ref OT) func(*T) bool {
	switch op {
	case opLess:
		return func(entry *T) bool { return ff(entry) < ref }
	case opLessEqual:
		return func(entry *T) bool { return ff(entry) <= ref }
	case opGreater:
		return func(entry *T) bool { return ff(entry) > ref }
	case opGreaterEqual:
		return func(entry *T) bool { return ff(entry) >= ref }
	}
	return func(entry *T) bool { return ff(entry) == ref }
}

// Match returns true if entry matches the filter; nil entries only match negated filters
func (f *Filter[T]) Match(entry *T) bool {
	if entry == nil {
		return f.negate
	}
	return f.match(entry) != f.negate
}

func (f *Filter[T]) String() string {
	return f.expr
}

// MatchAll returns true if entry matches all filters
func (fs Filters[T]) MatchAll(entry *T) bool {
	for _, f := range fs {
		if !f.Match(entry) {
			return false
		}
	}
	return true
}

// MatchAny returns true if entry matches at least one filter
func (fs Filters[T]) MatchAny(entry *T) bool {
	for _, f := range fs {
		if f.Match(entry) {
			return true
		}
	}
	return false
}

// FilterEntries returns the non-nil entries matching all exprs, keeping their order. entries is not modified.
func FilterEntries[T any](cols columns.ColumnMap[T], entries []*T, exprs []string) ([]*T, error) {
	filters, err := ParseAll(cols, exprs)
	if err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(entries))
	for _, entry := range entries {
		if entry != nil && filters.MatchAll(entry) {
			out = append(out, entry)
		}
	}
	return out, nil
}
