// Package query turns a search/filter/sort request into a read against the
// catalog store. It keeps no state between calls.
package query

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"stockctl/internal/catalog"
)

// Kind selects which store read a Descriptor maps to.
type Kind int

const (
	All Kind = iota
	Search
	ByCategory
	ByLocation
	LowStock
)

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case All:
		return "All"
	case Search:
		return "Search"
	case ByCategory:
		return "ByCategory"
	case ByLocation:
		return "ByLocation"
	case LowStock:
		return "LowStock"
	default:
		return "Unknown"
	}
}

// Descriptor is a complete read request. Term is used by Search, Value by
// ByCategory and ByLocation, Threshold by LowStock.
type Descriptor struct {
	Kind      Kind
	Term      string
	Value     string
	Threshold int
	Sort      catalog.Sort
}

// Reader is the subset of the catalog store the engine reads from.
type Reader interface {
	GetAll(ctx context.Context, sort catalog.Sort) ([]catalog.Product, error)
	Search(ctx context.Context, term string) ([]catalog.Product, error)
	FilterByCategory(ctx context.Context, value string) ([]catalog.Product, error)
	FilterByLocation(ctx context.Context, value string) ([]catalog.Product, error)
	LowStock(ctx context.Context, threshold int) ([]catalog.Product, error)
}

// Evaluate runs d against r. Reads other than All come back in id order and
// are sorted here with the same rules the store applies to GetAll.
func Evaluate(ctx context.Context, r Reader, d Descriptor) ([]catalog.Product, error) {
	if err := d.Sort.Validate(); err != nil {
		return nil, err
	}

	var (
		rows []catalog.Product
		err  error
	)
	switch d.Kind {
	case All:
		return r.GetAll(ctx, d.Sort)
	case Search:
		rows, err = r.Search(ctx, d.Term)
	case ByCategory:
		rows, err = r.FilterByCategory(ctx, d.Value)
	case ByLocation:
		rows, err = r.FilterByLocation(ctx, d.Value)
	case LowStock:
		rows, err = r.LowStock(ctx, d.Threshold)
	default:
		return nil, fmt.Errorf("unknown query kind %d", int(d.Kind))
	}
	if err != nil {
		return nil, err
	}

	if d.Sort.Field != catalog.SortNone || d.Sort.Descending {
		sort.SliceStable(rows, func(i, j int) bool {
			return d.Sort.Less(rows[i], rows[j])
		})
	}
	return rows, nil
}

// IsFiltered reports whether d narrows the catalog.
func (d Descriptor) IsFiltered() bool {
	return d.Kind != All
}

// WithoutFilter keeps the sort and drops every filter criterion.
func (d Descriptor) WithoutFilter() Descriptor {
	return Descriptor{Kind: All, Sort: d.Sort}
}

// Description is the human-readable filter text shown in titles.
func (d Descriptor) Description() string {
	switch d.Kind {
	case Search:
		return fmt.Sprintf("search %q", d.Term)
	case ByCategory:
		return fmt.Sprintf("category = %q", strings.TrimSpace(d.Value))
	case ByLocation:
		return fmt.Sprintf("location = %q", strings.TrimSpace(d.Value))
	case LowStock:
		return fmt.Sprintf("quantity <= %d", d.Threshold)
	default:
		return "all products"
	}
}

// SortDescription is the human-readable sort text, empty when unsorted.
func (d Descriptor) SortDescription() string {
	if d.Sort.Field == catalog.SortNone {
		if d.Sort.Descending {
			return "id ↓"
		}
		return ""
	}
	arrow := "↑"
	if d.Sort.Descending {
		arrow = "↓"
	}
	return fmt.Sprintf("%s %s", d.Sort.Field, arrow)
}
