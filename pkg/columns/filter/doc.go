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

/*
Package filter selects entries by the value of one of their columns before they are sorted or printed.

A filter expression starts with the column name, followed by a colon and the rule:

	"name:Apple"     - name equals "Apple"
	"name:!Apple"    - name does not equal "Apple"
	"quantity:>=10"  - quantity is at least 10
	"name:~^P"       - name matches the regular expression ^P (re2 syntax)

A "!" directly after the colon negates the rule. The operators ">", ">=", "<" and "<=" work on numeric and string
columns, "~" only on string columns. A column without a rule matches the zero value, e.g. "name" matches entries
with an empty name.

	items, err := filter.FilterEntries(cols.ColumnMap, items, []string{"quantity:>0", "name:!Kiwi"})

returns the entries matching all expressions, in their original order.
*/
package filter
