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
Package columns describes the columns of a row type using struct tags. The resulting column map is what the sort
package resolves sort keys against, and what the text formatter prints.

# How does it work?

Add a "column" tag to the members of the struct you want to handle:

	type Item struct {
		ID       int    `column:"id,id,align:right,width:4"`
		Name     string `column:"name,width:12,ellipsis:middle"`
		Quantity int    `column:"quantity,align:right,width:8"`
		Comment  string
	}

  - Only fields with a column tag are considered, so `Comment` is ignored (see WithRequireColumnDefinition).
  - The tag starts with the name of the column. Names are case-insensitive and must be unique.
  - Additional attributes follow as a comma separated list; key and value are separated by a colon.

Initialize `Columns` by passing the struct type:

	cols, err := columns.NewColumns[Item]()

# Attributes

	| Attribute | Value(s)               | Description                                                                   |
	|-----------|------------------------|-------------------------------------------------------------------------------|
	| align     | left,right             | alignment of the column                                                       |
	| ellipsis  | none,start,middle,end  | where to cut values that are wider than the column                            |
	| fixed     | none                   | keep the configured width when widths are fitted to content                   |
	| hide      | none                   | do not show this column by default                                            |
	| id        | none                   | the column holds the unique identity of a row; integer kinds only, at most one |
	| noembed   | none                   | keep an embedded struct as a single column instead of promoting its fields     |
	| order     | int                    | position of the column when listing columns                                    |
	| width     | int                    | space allocated for the column                                                |

# Virtual Columns

Columns that are not backed by a field can be added with an extractor:

	cols.AddColumn(columns.Column[Item]{
		Name: "label",
		Extractor: func(i *Item) string {
			return fmt.Sprintf("%s x%d", i.Name, i.Quantity)
		},
	})
*/
package columns
