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

// Package metrics exports Prometheus collectors describing how often and how long tables are sorted.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tablesort"

type SortMetrics struct {
	sorts    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     *prometheus.GaugeVec
}

// NewSortMetrics creates the collectors and registers them with reg
func NewSortMetrics(reg prometheus.Registerer) (*SortMetrics, error) {
	m := &SortMetrics{
		sorts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sorts_total",
				Help:      "Number of sorts performed",
			}, []string{"table"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sort_errors_total",
				Help:      "Number of sorts that failed",
			}, []string{"table"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sort_duration_seconds",
				Help:      "Time spent sorting",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			}, []string{"table"},
		),
		rows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rows",
				Help:      "Number of rows in the table at the last sort",
			}, []string{"table"},
		),
	}

	for _, c := range []prometheus.Collector{m.sorts, m.errors, m.duration, m.rows} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return m, nil
}

// MustNewSortMetrics is like NewSortMetrics but panics on error
func MustNewSortMetrics(reg prometheus.Registerer) *SortMetrics {
	m, err := NewSortMetrics(reg)
	if err != nil {
		panic(err)
	}
	return m
}

// ObserveSort records a single sort of table; a nil receiver is a no-op
func (m *SortMetrics) ObserveSort(table string, rows int, took time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.errors.WithLabelValues(table).Inc()
		return
	}
	m.sorts.WithLabelValues(table).Inc()
	m.duration.WithLabelValues(table).Observe(took.Seconds())
	m.rows.WithLabelValues(table).Set(float64(rows))
}
