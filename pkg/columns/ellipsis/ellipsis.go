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

package ellipsis

import (
	"fmt"
	"strings"
)

type EllipsisType int

const (
	None   EllipsisType = iota // None cuts the text at the maximum width
	End                        // End keeps the beginning of the text and puts "…" last
	Start                      // Start puts "…" first, followed by the end of the text
	Middle                     // Middle keeps both ends of the text and joins them with "…"
)

const ellipsisRune = '…'

var names = map[EllipsisType]string{
	None:   "none",
	End:    "end",
	Start:  "start",
	Middle: "middle",
}

func (et EllipsisType) String() string {
	if name, ok := names[et]; ok {
		return name
	}
	return names[None]
}

// Parse returns the EllipsisType for its name; an empty string means End
func Parse(name string) (EllipsisType, error) {
	if name == "" {
		return End, nil
	}
	for et, n := range names {
		if strings.EqualFold(n, name) {
			return et, nil
		}
	}
	return None, fmt.Errorf("invalid ellipsis type %q", name)
}

func ShortenString(str string, maxLength int, ellipsisType EllipsisType) string {
	return string(Shorten([]rune(str), maxLength, ellipsisType))
}

// Shorten returns rs cut to at most maxLength runes. rs is not modified.
func Shorten(rs []rune, maxLength int, ellipsisType EllipsisType) []rune {
	switch {
	case maxLength <= 0:
		return []rune{}
	case len(rs) <= maxLength:
		return rs
	case ellipsisType == None:
		return rs[:maxLength]
	case maxLength == 1:
		return []rune{ellipsisRune}
	}

	out := make([]rune, 0, maxLength)
	switch ellipsisType {
	case Start:
		out = append(out, ellipsisRune)
		out = append(out, rs[len(rs)-maxLength+1:]...)
	case Middle:
		head := maxLength / 2
		tail := maxLength - head - 1
		out = append(out, rs[:head]...)
		out = append(out, ellipsisRune)
		out = append(out, rs[len(rs)-tail:]...)
	default:
		out = append(out, rs[:maxLength-1]...)
		out = append(out, ellipsisRune)
	}
	return out
}

// Fit shortens str to width runes and pads it with spaces up to width. If alignRight is set, padding is put in
// front of the text.
func Fit(str string, width int, ellipsisType EllipsisType, alignRight bool) string {
	rs := Shorten([]rune(str), width, ellipsisType)
	pad := width - len(rs)
	if pad <= 0 {
		return string(rs)
	}
	if alignRight {
		return strings.Repeat(" ", pad) + string(rs)
	}
	return string(rs) + strings.Repeat(" ", pad)
}
