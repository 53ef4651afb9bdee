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

// Package dataset provides the Item rows used by the tablesort command, either generated or read from a file.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/inspektor-gadget/tablesort/pkg/columns"
)

type Item struct {
	ID       int    `json:"id" yaml:"id" column:"id,id,align:right,width:4" columnDesc:"Unique ID of the item"`
	Name     string `json:"name" yaml:"name" column:"name,width:12,ellipsis:end" columnDesc:"Name of the item"`
	Quantity int    `json:"quantity" yaml:"quantity" column:"quantity,align:right,width:8" columnDesc:"Number of items in stock"`
}

// TemplateNames are cycled through by Generate
var TemplateNames = []string{
	"Banana", "Apple", "Cherry", "Watermelon", "Grapefruit",
	"Strawberry", "Mango", "Kiwi", "Orange", "Pineapple",
	"Blueberry", "Plum", "Coconut", "Pear", "Apricot",
}

var itemColumns = columns.MustCreateColumns[Item]()

// GetColumns returns the column helper for Item
func GetColumns() *columns.Columns[Item] {
	return itemColumns
}

// Generate returns n items with IDs 0 to n-1
func Generate(n int) []*Item {
	if n <= 0 {
		return []*Item{}
	}
	items := make([]*Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &Item{
			ID:       i,
			Name:     TemplateNames[i%len(TemplateNames)],
			Quantity: (i*i - i) % 20,
		})
	}
	return items
}

// Load reads a list of items in YAML or JSON format from r. IDs must be unique.
func Load(r io.Reader) ([]*Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}

	items := make([]*Item, 0)
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&items); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding items: %w", err)
	}

	if err := validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// validate reports every empty item and every duplicate id
func validate(items []*Item) error {
	var result *multierror.Error
	seen := make(map[int]int, len(items))
	for i, item := range items {
		if item == nil {
			result = multierror.Append(result, fmt.Errorf("item %d is empty", i))
			continue
		}
		if prev, ok := seen[item.ID]; ok {
			result = multierror.Append(result, fmt.Errorf("items %d and %d share id %d", prev, i, item.ID))
			continue
		}
		seen[item.ID] = i
	}
	return result.ErrorOrNil()
}

// LoadFile is like Load but reads from the file at path
func LoadFile(path string) ([]*Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	items, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return items, nil
}
