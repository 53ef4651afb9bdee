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
Package textcolumns prints entries as tables using the metadata of a [columns.ColumnMap], for terminals or other
frontends with fixed-width fonts.

	tc := textcolumns.NewFormatter(cols.ColumnMap, textcolumns.WithRowDivider(textcolumns.DividerDash))
	err := tc.WriteTable(os.Stdout, entries)

prints

	ID NAME   QUANTITY
	——————————————————
	 0 Banana        0
	 1 Apple         0
	 2 Cherry        2

By default every visible column is shown; SetShowColumns selects and orders them explicitly. Widths are taken from
the column definitions, or fitted to the entries when AutoScale is enabled, in which case MaxWidth bounds the
total width of a row. Values that do not fit are shortened using the ellipsis type of their column.
*/
package textcolumns
