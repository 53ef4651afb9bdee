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
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/inspektor-gadget/tablesort/pkg/columns/ellipsis"
)

type Column[T any] struct {
	Name         string                // Name of the column; case-insensitive for most use cases
	Width        int                   // Width to reserve for this column
	Alignment    Alignment             // Alignment of this column (left or right)
	Extractor    func(*T) string       // Extractor is used by virtual columns to retrieve their value
	Visible      bool                  // Visible defines whether a column is to be shown by default
	EllipsisType ellipsis.EllipsisType // EllipsisType defines how to abbreviate this column if the value needs more space than is available
	FixedWidth   bool                  // FixedWidth keeps Width even when widths are fitted to content
	Description  string                // Description can hold a short description of the field that can be used to aid the user
	Order        int                   // Order defines the default order in which columns are shown

	isID       bool
	fieldIndex []int
	kind       reflect.Kind
	columnType reflect.Type
}

func (ci *Column[T]) fromTag(tag string) error {
	tagInfo := strings.Split(tag, ",")
	ci.Name = tagInfo[0]

	for _, subTag := range tagInfo[1:] {
		params := strings.SplitN(subTag, ":", 2)
		paramsLen := len(params)
		switch params[0] {
		case "align":
			if paramsLen == 1 {
				return fmt.Errorf("missing alignment value for field %q", ci.Name)
			}
			switch params[1] {
			case "left":
				ci.Alignment = AlignLeft
			case "right":
				ci.Alignment = AlignRight
			default:
				return fmt.Errorf("invalid alignment %q for field %q", params[1], ci.Name)
			}
		case "ellipsis":
			value := ""
			if paramsLen == 2 {
				value = params[1]
			}
			et, err := ellipsis.Parse(value)
			if err != nil {
				return fmt.Errorf("field %q: %w", ci.Name, err)
			}
			ci.EllipsisType = et
		case "fixed":
			if paramsLen != 1 {
				return fmt.Errorf("parameter fixed on field %q must not have a value", ci.Name)
			}
			ci.FixedWidth = true
		case "hide":
			if paramsLen != 1 {
				return fmt.Errorf("parameter hide on field %q must not have a value", ci.Name)
			}
			ci.Visible = false
		case "id":
			if paramsLen != 1 {
				return fmt.Errorf("parameter id on field %q must not have a value", ci.Name)
			}
			ci.isID = true
		case "noembed":
			if paramsLen != 1 {
				return fmt.Errorf("parameter noembed on field %q must not have a value", ci.Name)
			}
		case "order":
			if paramsLen == 1 {
				return fmt.Errorf("missing order value for field %q", ci.Name)
			}
			o, err := strconv.Atoi(params[1])
			if err != nil {
				return fmt.Errorf("invalid order value %q for field %q: %w", params[1], ci.Name, err)
			}
			ci.Order = o
		case "width":
			if paramsLen == 1 {
				return fmt.Errorf("missing width value for field %q", ci.Name)
			}
			w, err := strconv.Atoi(params[1])
			if err != nil {
				return fmt.Errorf("invalid width %q for field %q: %w", params[1], ci.Name, err)
			}
			if w < 0 {
				return fmt.Errorf("negative width %d for field %q", w, ci.Name)
			}
			ci.Width = w
		default:
			return fmt.Errorf("invalid column parameter %q for field %q", params[0], ci.Name)
		}
	}
	return nil
}

// Get returns the reflected value of an entry for the current column; if given nil, it will return the zero value of
// the underlying type
func (ci *Column[T]) Get(entry *T) reflect.Value {
	if entry == nil {
		return reflect.Zero(ci.Type())
	}
	if ci.IsVirtual() {
		return reflect.ValueOf(ci.Extractor(entry))
	}
	return reflect.ValueOf(entry).Elem().FieldByIndex(ci.fieldIndex)
}

// Kind returns the underlying kind of the column (always reflect.String in case of virtual columns)
func (ci *Column[T]) Kind() reflect.Kind {
	return ci.kind
}

// Type returns the underlying type of the column
func (ci *Column[T]) Type() reflect.Type {
	return ci.columnType
}

// IsVirtual returns true for columns added using AddColumn
func (ci *Column[T]) IsVirtual() bool {
	return len(ci.fieldIndex) == 1 && ci.fieldIndex[0] == virtualIndex
}

// IsID returns true if this column holds the identity of an entry
func (ci *Column[T]) IsID() bool {
	return ci.isID
}
