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

package main

import (
	"github.com/spf13/cobra"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
	"github.com/inspektor-gadget/tablesort/pkg/columns/formatter/textcolumns"
	"github.com/inspektor-gadget/tablesort/pkg/columns/sort"
	"github.com/inspektor-gadget/tablesort/pkg/dataset"
)

type columnInfo struct {
	Name        string `column:"name,width:10"`
	Width       int    `column:"width,width:5,align:right"`
	Align       string `column:"align,width:5"`
	Sortable    bool   `column:"sortable,width:8"`
	Description string `column:"description,width:40"`
}

var columnInfoColumns = columns.MustCreateColumns[columnInfo]()

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the columns of items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := sort.RegistryFromColumns(dataset.GetColumns())
			if err != nil {
				return err
			}

			infos := make([]*columnInfo, 0)
			for _, c := range dataset.GetColumns().GetOrderedColumns() {
				align := "left"
				if c.Alignment == columns.AlignRight {
					align = "right"
				}
				infos = append(infos, &columnInfo{
					Name:        c.Name,
					Width:       c.Width,
					Align:       align,
					Sortable:    registry.CanSortBy(sort.ParseSortSpec([]string{c.Name})),
					Description: c.Description,
				})
			}

			formatter := textcolumns.NewFormatter(columnInfoColumns.ColumnMap)
			return formatter.WriteTable(cmd.OutOrStdout(), infos)
		},
	}
}
