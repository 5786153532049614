// Copyright 2025 Poiesic Systems
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


package catalog

import (
	"github.com/poiesic/toolscout/core"
)

// Catalog is an immutable in-memory view of the tool catalog.
// All accessors return data derived at construction time.
type Catalog struct {
	records    []*core.ToolRecord
	byName     map[string]*core.ToolRecord
	categories []string
	pricing    []string
}

// New builds a catalog from tool records.
// Records keep their input order. When multiple records share a name,
// ByName resolves to the first one.
func New(records []*core.ToolRecord) *Catalog {
	c := &Catalog{
		records: records,
		byName:  make(map[string]*core.ToolRecord, len(records)),
	}

	seenCategory := make(map[string]bool)
	seenPricing := make(map[string]bool)

	for _, r := range records {
		if _, ok := c.byName[r.Name]; !ok {
			c.byName[r.Name] = r
		}
		if r.Category != "" && !seenCategory[r.Category] {
			seenCategory[r.Category] = true
			c.categories = append(c.categories, r.Category)
		}
		if r.Pricing != "" && !seenPricing[r.Pricing] {
			seenPricing[r.Pricing] = true
			c.pricing = append(c.pricing, r.Pricing)
		}
	}

	return c
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns all tool records in catalog order.
// Callers must not modify the returned slice.
func (c *Catalog) Records() []*core.ToolRecord {
	return c.records
}

// ByName returns the tool record with the given name, or nil if absent.
func (c *Catalog) ByName(name string) *core.ToolRecord {
	return c.byName[name]
}

// Categories returns the distinct category values in first-appearance order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Pricing returns the distinct pricing values in first-appearance order.
func (c *Catalog) Pricing() []string {
	return c.pricing
}
