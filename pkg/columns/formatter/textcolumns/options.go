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

type HeaderStyle int

const (
	HeaderStyleNormal HeaderStyle = iota
	HeaderStyleUppercase
	HeaderStyleLowercase
)

const (
	DividerSpace = " "
	DividerTab   = "\t"
	DividerDash  = "—"
	DividerNone  = ""
)

type Option func(*Options)

type Options struct {
	AutoScale      bool        // if enabled, WriteTable fits column widths to its entries; default: true
	ColumnDivider  string      // text between two columns; default: DividerSpace
	DefaultColumns []string    // columns shown by default; nil means all visible columns
	HeaderStyle    HeaderStyle // casing of the header line; default: HeaderStyleUppercase
	MaxWidth       int         // upper bound for the total width when scaling; 0 disables it
	RowDivider     string      // repeated below the header; default: DividerNone
}

func DefaultOptions() *Options {
	return &Options{
		AutoScale:     true,
		ColumnDivider: DividerSpace,
		HeaderStyle:   HeaderStyleUppercase,
		RowDivider:    DividerNone,
	}
}

// WithAutoScale sets whether column widths are fitted to the content when writing tables
func WithAutoScale(autoScale bool) Option {
	return func(opts *Options) {
		opts.AutoScale = autoScale
	}
}

// WithColumnDivider sets the string that is put between two columns
func WithColumnDivider(divider string) Option {
	return func(opts *Options) {
		opts.ColumnDivider = divider
	}
}

// WithDefaultColumns sets the columns that are shown by default
func WithDefaultColumns(columns []string) Option {
	return func(opts *Options) {
		opts.DefaultColumns = columns
	}
}

// WithHeaderStyle sets the casing of the header
func WithHeaderStyle(headerStyle HeaderStyle) Option {
	return func(opts *Options) {
		opts.HeaderStyle = headerStyle
	}
}

// WithMaxWidth limits the total width of a row when widths are fitted to the content
func WithMaxWidth(maxWidth int) Option {
	return func(opts *Options) {
		opts.MaxWidth = maxWidth
	}
}

// WithRowDivider sets the string that is repeated to separate header and body
func WithRowDivider(divider string) Option {
	return func(opts *Options) {
		opts.RowDivider = divider
	}
}
