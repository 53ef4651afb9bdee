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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"sigs.k8s.io/yaml"

	"github.com/inspektor-gadget/tablesort/pkg/columns/filter"
	"github.com/inspektor-gadget/tablesort/pkg/columns/formatter/textcolumns"
	"github.com/inspektor-gadget/tablesort/pkg/columns/sort"
	"github.com/inspektor-gadget/tablesort/pkg/dataset"
	"github.com/inspektor-gadget/tablesort/pkg/logger"
	"github.com/inspektor-gadget/tablesort/pkg/metrics"
	"github.com/inspektor-gadget/tablesort/pkg/table"
)

const (
	OutputModeColumns = "columns"
	OutputModeJSON    = "json"
	OutputModeYAML    = "yaml"
)

type sortOptions struct {
	input       string
	generate    int
	sortBy      []string
	filters     []string
	output      string
	columns     []string
	head        int
	maxWidth    int
	rowDivider  bool
	showMetrics bool
}

func newSortCmd(l logger.Logger) *cobra.Command {
	o := &sortOptions{}

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort items and print them",
		Long: `Sort items read from a YAML or JSON file, or generated ones, by one or more columns.

Columns are given in priority order. Prefix a column with "-" to sort it in descending order. Items that are
equal on all given columns are ordered by their id.`,
		Example: `  tablesort sort --generate 50 --sort-by name,-quantity
  tablesort sort --input items.yaml --sort-by -quantity --output json
  tablesort sort --filter 'name:~^P' --filter quantity:>0 --sort-by name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.OutOrStdout(), cmd.ErrOrStderr(), l, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.input, "input", "i", "", "read items from this YAML or JSON file")
	flags.IntVarP(&o.generate, "generate", "g", 15, "number of items to generate if no input is given")
	flags.StringSliceVarP(&o.sortBy, "sort-by", "s", nil, "columns to sort by, e.g. name,-quantity")
	flags.StringArrayVarP(&o.filters, "filter", "f", nil, "only keep items matching this filter, e.g. quantity:>=10; can be repeated")
	flags.StringVarP(&o.output, "output", "o", OutputModeColumns,
		fmt.Sprintf("output format. One of: %s", strings.Join([]string{OutputModeColumns, OutputModeJSON, OutputModeYAML}, ", ")))
	flags.StringSliceVarP(&o.columns, "columns", "c", nil, "columns to print in columns output")
	flags.IntVar(&o.head, "head", 0, "print only the first N items; 0 prints all")
	flags.IntVar(&o.maxWidth, "max-width", 0, "maximum width of columns output; 0 uses the terminal width")
	flags.BoolVar(&o.rowDivider, "row-divider", false, "print a line below the header")
	flags.BoolVar(&o.showMetrics, "show-metrics", false, "print sort metrics to stderr when done")
	cmd.MarkFlagsMutuallyExclusive("input", "generate")

	return cmd
}

func loadItems(o *sortOptions) ([]*dataset.Item, error) {
	if o.input != "" {
		return dataset.LoadFile(o.input)
	}
	if o.generate < 0 {
		return nil, fmt.Errorf("--generate must not be negative, got %d", o.generate)
	}
	return dataset.Generate(o.generate), nil
}

func runSort(out, errOut io.Writer, l logger.Logger, o *sortOptions) error {
	items, err := loadItems(o)
	if err != nil {
		return err
	}
	l.Debugf("loaded %d items", len(items))

	if len(o.filters) > 0 {
		items, err = filter.FilterEntries(dataset.GetColumns().ColumnMap, items, o.filters)
		if err != nil {
			return err
		}
		l.Debugf("%d items left after filtering", len(items))
	}

	registry, err := sort.RegistryFromColumns(dataset.GetColumns())
	if err != nil {
		return fmt.Errorf("creating sort registry: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	sortMetrics, err := metrics.NewSortMetrics(promRegistry)
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	t := table.New("items", registry, items,
		table.WithLogger[dataset.Item](l),
		table.WithMetrics[dataset.Item](sortMetrics),
		table.WithSortSpec[dataset.Item](sort.ParseSortSpec(o.sortBy)),
	)

	rows, err := t.Head(o.head)
	if err != nil {
		var unknown *sort.UnknownColumnError
		if errors.As(err, &unknown) {
			return fmt.Errorf("%w (sortable columns: %s)", err, strings.Join(registry.Columns(), ", "))
		}
		return fmt.Errorf("sorting items: %w", err)
	}

	if err := printItems(out, rows, o); err != nil {
		return err
	}

	if o.showMetrics {
		return writeMetrics(errOut, promRegistry)
	}
	return nil
}

func printItems(out io.Writer, rows []*dataset.Item, o *sortOptions) error {
	switch strings.ToLower(o.output) {
	case OutputModeColumns:
		opts := []textcolumns.Option{textcolumns.WithMaxWidth(maxWidth(out, o.maxWidth))}
		if o.rowDivider {
			opts = append(opts, textcolumns.WithRowDivider(textcolumns.DividerDash))
		}
		formatter := textcolumns.NewFormatter(dataset.GetColumns().ColumnMap, opts...)
		if len(o.columns) > 0 {
			if err := formatter.SetShowColumns(o.columns); err != nil {
				return err
			}
		}
		return formatter.WriteTable(out, rows)
	case OutputModeJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case OutputModeYAML:
		b, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshaling items: %w", err)
		}
		_, err = out.Write(b)
		return err
	}
	return fmt.Errorf("invalid output mode %q", o.output)
}

// maxWidth returns the configured width, falling back to the width of the terminal out writes to
func maxWidth(out io.Writer, configured int) int {
	if configured > 0 {
		return configured
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metrics: %w", err)
		}
	}
	return nil
}
