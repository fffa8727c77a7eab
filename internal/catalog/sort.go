package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// SortField names a column rows can be ordered by. The zero value means
// store-native order.
type SortField string

const (
	SortNone     SortField = ""
	SortID       SortField = "id"
	SortCode     SortField = "code"
	SortName     SortField = "name"
	SortQuantity SortField = "quantity"
	SortPrice    SortField = "price"
	SortCategory SortField = "category"
	SortLocation SortField = "location"
)

var orderableColumns = map[SortField]struct{}{
	SortID:       {},
	SortCode:     {},
	SortName:     {},
	SortQuantity: {},
	SortPrice:    {},
	SortCategory: {},
	SortLocation: {},
}

// SortFields returns the orderable field names in alphabetical order.
func SortFields() []string {
	names := make([]string, 0, len(orderableColumns))
	for f := range orderableColumns {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Valid reports whether f is SortNone or one of the orderable columns.
func (f SortField) Valid() bool {
	if f == SortNone {
		return true
	}
	_, ok := orderableColumns[f]
	return ok
}

// ParseSortField normalises user input into a SortField.
func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return SortNone, fmt.Errorf("%w %q: choose one of %s", ErrInvalidSortField, s, strings.Join(SortFields(), ", "))
	}
	return f, nil
}

// Sort is an ordering request. Ties are broken by id in the same direction,
// so ascending and descending orders are exact reverses of each other.
type Sort struct {
	Field      SortField
	Descending bool
}

// Validate fails with ErrInvalidSortField for unknown fields.
func (s Sort) Validate() error {
	if !s.Field.Valid() {
		return fmt.Errorf("%w %q: choose one of %s", ErrInvalidSortField, string(s.Field), strings.Join(SortFields(), ", "))
	}
	return nil
}

func (s Sort) orderClause() string {
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	if s.Field == SortNone || s.Field == SortID {
		return "id " + dir
	}
	return fmt.Sprintf("%s %s, id %s", s.Field, dir, dir)
}

// Less orders a before b according to s, using the same rules as the SQL
// ORDER BY the store emits.
func (s Sort) Less(a, b Product) bool {
	c := compareBy(s.Field, a, b)
	if c == 0 {
		c = cmpInt64(a.ID, b.ID)
	}
	if s.Descending {
		return c > 0
	}
	return c < 0
}

func compareBy(f SortField, a, b Product) int {
	switch f {
	case SortCode:
		return strings.Compare(a.Code, b.Code)
	case SortName:
		return strings.Compare(a.Name, b.Name)
	case SortCategory:
		return strings.Compare(a.Category, b.Category)
	case SortLocation:
		return strings.Compare(a.Location, b.Location)
	case SortQuantity:
		return cmpInt64(int64(a.Quantity), int64(b.Quantity))
	case SortPrice:
		return a.Price.Cmp(b.Price)
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
