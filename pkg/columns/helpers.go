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
)

// ToLowerStrings transforms the elements of an array of strings into lowercase.
func ToLowerStrings(in []string) []string {
	for i := range in {
		in[i] = strings.ToLower(in[i])
	}
	return in
}

// GetFieldFunc returns a helper function to access the value of type OT of a column of entries of type *T. The
// underlying type of the column must be convertible to OT; nil entries yield the zero value.
func GetFieldFunc[OT any, T any](column *Column[T]) func(entry *T) OT {
	outType := reflect.TypeOf((*OT)(nil)).Elem()
	if !column.Type().ConvertibleTo(outType) {
		panic(fmt.Sprintf("column %q of type %s cannot be accessed as %s", column.Name, column.Type(), outType))
	}
	if column.IsVirtual() {
		return func(entry *T) OT {
			var res OT
			if entry == nil {
				return res
			}
			return reflect.ValueOf(column.Extractor(entry)).Convert(outType).Interface().(OT)
		}
	}
	idx := column.fieldIndex
	return func(entry *T) OT {
		var res OT
		if entry == nil {
			return res
		}
		return detach(reflect.ValueOf(entry).Elem().FieldByIndex(idx)).Convert(outType).Interface().(OT)
	}
}

// detach copies basic values so fields promoted through unexported embedded structs can be read
func detach(v reflect.Value) reflect.Value {
	if v.CanInterface() {
		return v
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(v.Uint())
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(v.Float())
	case reflect.String:
		return reflect.ValueOf(v.String())
	case reflect.Bool:
		return reflect.ValueOf(v.Bool())
	}
	return v
}

// GetFieldAsNumberFunc returns a helper function that reads any signed, unsigned or float column as OT
func GetFieldAsNumberFunc[OT int64 | uint64 | float64, T any](column *Column[T]) func(entry *T) OT {
	switch column.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return GetFieldFunc[OT, T](column)
	}
	panic(fmt.Sprintf("column %q of kind %s is not numeric", column.Name, column.Kind()))
}

// GetFieldAsString returns a helper function that renders the value of any column as string
func GetFieldAsString[T any](column *Column[T]) func(entry *T) string {
	if column.IsVirtual() {
		return func(entry *T) string {
			if entry == nil {
				return ""
			}
			return column.Extractor(entry)
		}
	}
	return func(entry *T) string {
		return FormatValue(column.Get(entry))
	}
}

// FormatValue renders a reflected value the way columns are printed
func FormatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	}
	return fmt.Sprintf("%v", detach(v))
}
