// Copyright 2022 The Inspektor Gadget authors
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

import "github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"

// Options control how NewColumns turns struct fields into columns
type Options struct {
	DefaultAlignment        Alignment             // used for columns without align attribute; default: AlignLeft
	DefaultEllipsis         ellipsis.EllipsisType // used for columns without ellipsis attribute; default: ellipsis.End
	DefaultWidth            int                   // used for columns without width attribute; default: 16
	RequireColumnDefinition bool                  // skip fields without column tag; default: true
}

type Option func(*Options)

func DefaultOptions() *Options {
	return &Options{
		DefaultAlignment:        AlignLeft,
		DefaultEllipsis:         ellipsis.End,
		DefaultWidth:            16,
		RequireColumnDefinition: true,
	}
}

func WithAlignment(a Alignment) Option {
	return func(opts *Options) {
		opts.DefaultAlignment = a
	}
}

func WithEllipsis(e ellipsis.EllipsisType) Option {
	return func(opts *Options) {
		opts.DefaultEllipsis = e
	}
}

// WithRequireColumnDefinition set to false turns every exported field into a column named like the field
func WithRequireColumnDefinition(require bool) Option {
	return func(opts *Options) {
		opts.RequireColumnDefinition = require
	}
}

// WithWidth sets the default width; values below 1 are ignored
func WithWidth(w int) Option {
	return func(opts *Options) {
		if w > 0 {
			opts.DefaultWidth = w
		}
	}
}
