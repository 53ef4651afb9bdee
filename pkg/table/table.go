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

/*
Package table keeps rows together with the SortSpec they are displayed in and sorts them only when needed.

A Table is either clean or dirty. Changing the SortSpec, appending rows or calling MarkDirty makes it dirty; the next
call to Rows sorts and makes it clean again. Changing a field of a row does not: call MarkDirty afterwards if the new
value should be taken into account.

A Table does no locking. Callers sharing a Table between goroutines must serialize access themselves.
*/
package table

import (
	"time"

	"github.com/inspektor-gadget/tablesort/pkg/columns/sort"
	"github.com/inspektor-gadget/tablesort/pkg/logger"
	"github.com/inspektor-gadget/tablesort/pkg/metrics"
)

type Table[T any] struct {
	name     string
	rows     []*T
	registry *sort.Registry[T]
	spec     *sort.SortSpec
	logger   logger.Logger
	metrics  *metrics.SortMetrics
}

type Option[T any] func(*Table[T])

// WithLogger sets the logger used to report state changes; defaults to logger.DefaultLogger()
func WithLogger[T any](l logger.Logger) Option[T] {
	return func(t *Table[T]) {
		t.logger = l
	}
}

// WithMetrics enables recording of sort metrics
func WithMetrics[T any](m *metrics.SortMetrics) Option[T] {
	return func(t *Table[T]) {
		t.metrics = m
	}
}

// WithSortSpec sets the initial spec; the table starts dirty
func WithSortSpec[T any](spec *sort.SortSpec) Option[T] {
	return func(t *Table[T]) {
		t.spec = spec.Clone()
	}
}

// New creates a Table named name holding rows. The table starts dirty, so the first call to Rows sorts.
func New[T any](name string, registry *sort.Registry[T], rows []*T, options ...Option[T]) *Table[T] {
	t := &Table[T]{
		name:     name,
		rows:     rows,
		registry: registry,
		logger:   logger.DefaultLogger(),
	}
	for _, o := range options {
		o(t)
	}
	if t.spec == nil {
		t.spec = &sort.SortSpec{}
	}
	t.spec.Dirty = true
	return t
}

// Name returns the name of the table, used as metrics label
func (t *Table[T]) Name() string {
	return t.name
}

// SortSpec returns a copy of the current spec
func (t *Table[T]) SortSpec() *sort.SortSpec {
	return t.spec.Clone()
}

// SetSortSpec replaces the SortSpec and marks the table dirty. The keys are not checked until the next sort.
func (t *Table[T]) SetSortSpec(spec *sort.SortSpec) {
	t.spec = spec.Clone()
	if t.spec == nil {
		t.spec = &sort.SortSpec{}
	}
	t.logger.Debugf("table %q: sort spec set to %q", t.name, t.spec.String())
	t.MarkDirty()
}

// MarkDirty makes the next call to Rows sort again
func (t *Table[T]) MarkDirty() {
	if !t.spec.Dirty {
		t.logger.Tracef("table %q: marked dirty", t.name)
	}
	t.spec.Dirty = true
}

// IsDirty returns true if the rows need to be sorted before they are used
func (t *Table[T]) IsDirty() bool {
	return t.spec.Dirty
}

// Append adds rows to the table and marks it dirty
func (t *Table[T]) Append(rows ...*T) {
	if len(rows) == 0 {
		return
	}
	t.rows = append(t.rows, rows...)
	t.MarkDirty()
}

// Len returns the number of rows
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Rows returns all rows in the order given by the current spec, sorting first if the table is dirty. If sorting
// fails, the table stays dirty and the rows keep their previous order.
func (t *Table[T]) Rows() ([]*T, error) {
	if err := t.sortIfDirty(); err != nil {
		return nil, err
	}
	return t.rows, nil
}

// Head is like Rows but returns at most n rows; n <= 0 means all rows
func (t *Table[T]) Head(n int) ([]*T, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	if n > 0 && n < len(rows) {
		return rows[:n], nil
	}
	return rows, nil
}

func (t *Table[T]) sortIfDirty() error {
	if !t.spec.Dirty {
		return nil
	}

	start := time.Now()
	err := t.registry.Sort(t.rows, t.spec)
	t.metrics.ObserveSort(t.name, len(t.rows), time.Since(start), err)
	if err != nil {
		t.logger.Warnf("table %q: sorting by %q: %v", t.name, t.spec.String(), err)
		return err
	}

	t.spec.Dirty = false
	t.logger.Debugf("table %q: sorted %d rows by %q", t.name, len(t.rows), t.spec.String())
	return nil
}
