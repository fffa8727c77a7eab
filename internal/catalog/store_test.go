package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustAdd(t *testing.T, s *Store, np NewProduct) int64 {
	t.Helper()
	id, err := s.Add(context.Background(), np)
	require.NoError(t, err)
	return id
}

func ids(rows []Product) []int64 {
	out := make([]int64, len(rows))
	for i, p := range rows {
		out[i] = p.ID
	}
	return out
}

func codes(rows []Product) []string {
	out := make([]string, len(rows))
	for i, p := range rows {
		out[i] = p.Code
	}
	return out
}

func TestStore_AddAndGetAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id1 := mustAdd(t, s, NewProduct{Code: "A1", Name: "Widget", Description: "small", Category: "Tools", Quantity: 10, Price: price("2.50"), Location: "Shelf1"})
	id2 := mustAdd(t, s, NewProduct{Code: "A2", Name: "Gadget", Category: "Tools", Quantity: 3, Price: price("9.99"), Location: "Shelf2"})
	assert.NotEqual(t, id1, id2)

	rows, err := s.GetAll(ctx, Sort{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := rows[0]
	assert.Equal(t, id1, got.ID)
	assert.Equal(t, "A1", got.Code)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "small", got.Description)
	assert.Equal(t, "Tools", got.Category)
	assert.Equal(t, 10, got.Quantity)
	assert.True(t, price("2.50").Equal(got.Price), "price = %s", got.Price)
	assert.Equal(t, "Shelf1", got.Location)
	assert.True(t, price("25").Equal(got.Value()))
}

func TestStore_AddTrimsFreeText(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id := mustAdd(t, s, NewProduct{Code: "T1", Name: "  Bolt ", Description: " m6 ", Category: " Hardware", Quantity: 1, Price: price("0.10"), Location: "Bin 4  "})

	p, found, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Bolt", p.Name)
	assert.Equal(t, "m6", p.Description)
	assert.Equal(t, "Hardware", p.Category)
	assert.Equal(t, "Bin 4", p.Location)
}

func TestStore_AddValidation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		product NewProduct
		wantErr error
	}{
		{
			name:    "negative quantity",
			product: NewProduct{Code: "X", Name: "X", Quantity: -1, Price: price("1")},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative price",
			product: NewProduct{Code: "X", Name: "X", Quantity: 1, Price: price("-0.01")},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "quantity is checked before price",
			product: NewProduct{Code: "X", Name: "X", Quantity: -1, Price: price("-1")},
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "blank code",
			product: NewProduct{Code: "  ", Name: "X", Quantity: 1, Price: price("1")},
			wantErr: ErrMissingCode,
		},
		{
			name:    "blank name",
			product: NewProduct{Code: "X", Name: "", Quantity: 1, Price: price("1")},
			wantErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			_, err := s.Add(ctx, tt.product)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))

			n, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestStore_AddZeroValuesAllowed(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add(context.Background(), NewProduct{Code: "Z", Name: "Zero", Quantity: 0, Price: decimal.Zero})
	assert.NoError(t, err)
}

func TestStore_AddDuplicateCode(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mustAdd(t, s, NewProduct{Code: "DUP", Name: "First", Quantity: 1, Price: price("1")})

	_, err := s.Add(ctx, NewProduct{Code: "DUP", Name: "Second", Quantity: 2, Price: price("2")})
	require.ErrorIs(t, err, ErrDuplicateCode)
	assert.NotErrorIs(t, err, ErrStorageFailure)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mustAdd(t, s, NewProduct{Code: "A", Name: "A", Quantity: 1, Price: price("1")})
	last := mustAdd(t, s, NewProduct{Code: "B", Name: "B", Quantity: 1, Price: price("1")})

	found, err := s.Delete(ctx, last)
	require.NoError(t, err)
	require.True(t, found)

	next := mustAdd(t, s, NewProduct{Code: "C", Name: "C", Quantity: 1, Price: price("1")})
	assert.Greater(t, next, last)
}

func TestStore_UpdateNoFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := mustAdd(t, s, NewProduct{Code: "U", Name: "Before", Quantity: 1, Price: price("1")})

	found, err := s.Update(ctx, id, Patch{})
	require.ErrorIs(t, err, ErrNoFieldsProvided)
	assert.False(t, found)

	p, _, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Before", p.Name)
}

func TestStore_UpdateOnlyQuantity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := mustAdd(t, s, NewProduct{Code: "U", Name: "Name", Description: "Desc", Category: "Cat", Quantity: 1, Price: price("4.25"), Location: "Loc"})

	before, _, err := s.Get(ctx, id)
	require.NoError(t, err)

	found, err := s.Update(ctx, id, Patch{Quantity: Some(5)})
	require.NoError(t, err)
	require.True(t, found)

	after, _, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, after.Quantity)

	after.Quantity = before.Quantity
	assert.Equal(t, before.Code, after.Code)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.Category, after.Category)
	assert.Equal(t, before.Location, after.Location)
	assert.True(t, before.Price.Equal(after.Price))
}

func TestStore_UpdateEmptyStringIsAValue(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := mustAdd(t, s, NewProduct{Code: "E", Name: "Name", Description: "to be cleared", Quantity: 1, Price: price("1")})

	found, err := s.Update(ctx, id, Patch{Description: Some("")})
	require.NoError(t, err)
	require.True(t, found)

	p, _, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, "Name", p.Name)
}

func TestStore_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := mustAdd(t, s, NewProduct{Code: "V", Name: "Name", Quantity: 7, Price: price("3")})

	_, err := s.Update(ctx, id, Patch{Quantity: Some(-2), Name: Some("Changed")})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = s.Update(ctx, id, Patch{Price: Some(price("-1"))})
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = s.Update(ctx, id, Patch{Name: Some("   ")})
	require.ErrorIs(t, err, ErrMissingName)

	p, _, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Name", p.Name, "nothing may be partially applied")
	assert.Equal(t, 7, p.Quantity)
}

func TestStore_UpdateAndDeleteMissingID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mustAdd(t, s, NewProduct{Code: "M", Name: "M", Quantity: 1, Price: price("1")})

	found, err := s.Update(ctx, 999, Patch{Quantity: Some(1)})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = s.Delete(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_TotalValue(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	total, err := s.TotalValue(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	mustAdd(t, s, NewProduct{Code: "1", Name: "a", Quantity: 4, Price: price("0.10")})
	mustAdd(t, s, NewProduct{Code: "2", Name: "b", Quantity: 3, Price: price("1.333")})
	mustAdd(t, s, NewProduct{Code: "3", Name: "c", Quantity: 0, Price: price("100")})

	total, err = s.TotalValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4.399", total.String())
}

func TestStore_Search(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mustAdd(t, s, NewProduct{Code: "SCR-10", Name: "Wood screw", Quantity: 1, Price: price("1")})
	mustAdd(t, s, NewProduct{Code: "NAIL-1", Name: "Nail", Quantity: 1, Price: price("1")})
	mustAdd(t, s, NewProduct{Code: "HAM", Name: "Hammer (SCREW-proof)", Quantity: 1, Price: price("1")})
	mustAdd(t, s, NewProduct{Code: "P_50%", Name: "Promo", Quantity: 1, Price: price("1")})

	tests := []struct {
		term string
		want []string
	}{
		{"screw", []string{"SCR-10", "HAM"}},
		{"SCR", []string{"SCR-10", "HAM"}},
		{"nail", []string{"NAIL-1"}},
		{"", []string{"SCR-10", "NAIL-1", "HAM", "P_50%"}},
		{"%", []string{"P_50%"}},
		{"_", []string{"P_50%"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			rows, err := s.Search(ctx, tt.term)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, codes(rows))
		})
	}
}

func TestStore_FilterByCategoryAndLocation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mustAdd(t, s, NewProduct{Code: "1", Name: "a", Category: "Tools", Location: "Shelf1", Quantity: 1, Price: price("1")})
	mustAdd(t, s, NewProduct{Code: "2", Name: "b", Category: "Tools", Location: "Shelf2", Quantity: 1, Price: price("1")})
	mustAdd(t, s, NewProduct{Code: "3", Name: "c", Category: "tools", Location: "Shelf1", Quantity: 1, Price: price("1")})

	rows, err := s.FilterByCategory(ctx, "  Tools ")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, codes(rows))

	rows, err = s.FilterByLocation(ctx, "Shelf1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, codes(rows))

	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools", "tools"}, cats)

	locs, err := s.Locations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shelf1", "Shelf2"}, locs)
}

func TestStore_LowStock(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mustAdd(t, s, NewProduct{Code: "empty", Name: "a", Quantity: 0, Price: price("1")})
	mustAdd(t, s, NewProduct{Code: "few", Name: "b", Quantity: 2, Price: price("1")})
	mustAdd(t, s, NewProduct{Code: "many", Name: "c", Quantity: 50, Price: price("1")})

	rows, err := s.LowStock(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"empty"}, codes(rows))

	rows, err = s.LowStock(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "few"}, codes(rows))

	_, err = s.LowStock(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestStore_GetAllSorting(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mustAdd(t, s, NewProduct{Code: "c", Name: "x", Quantity: 5, Price: price("3.00")})
	mustAdd(t, s, NewProduct{Code: "a", Name: "y", Quantity: 1, Price: price("1.50")})
	mustAdd(t, s, NewProduct{Code: "b", Name: "z", Quantity: 9, Price: price("3.00")})
	mustAdd(t, s, NewProduct{Code: "d", Name: "w", Quantity: 2, Price: price("0.25")})

	asc, err := s.GetAll(ctx, Sort{Field: SortPrice})
	require.NoError(t, err)
	desc, err := s.GetAll(ctx, Sort{Field: SortPrice, Descending: true})
	require.NoError(t, err)

	ascIDs := ids(asc)
	descIDs := ids(desc)
	require.Len(t, descIDs, len(ascIDs))
	for i := range ascIDs {
		assert.Equal(t, ascIDs[i], descIDs[len(descIDs)-1-i])
	}
	assert.Equal(t, []string{"d", "a", "c", "b"}, codes(asc))

	byCode, err := s.GetAll(ctx, Sort{Field: SortCode})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, codes(byCode))

	_, err = s.GetAll(ctx, Sort{Field: "price; DROP TABLE products"})
	assert.ErrorIs(t, err, ErrInvalidSortField)
}

func TestParseSortField(t *testing.T) {
	f, err := ParseSortField(" Price ")
	require.NoError(t, err)
	assert.Equal(t, SortPrice, f)

	f, err = ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortNone, f)

	_, err = ParseSortField("colour")
	assert.ErrorIs(t, err, ErrInvalidSortField)
}

func TestStore_ExampleScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a1 := mustAdd(t, s, NewProduct{Code: "A1", Name: "Widget", Category: "Tools", Quantity: 10, Price: price("2.50"), Location: "Shelf1"})
	a2 := mustAdd(t, s, NewProduct{Code: "A2", Name: "Gadget", Category: "Tools", Quantity: 3, Price: price("9.99"), Location: "Shelf2"})

	low, err := s.LowStock(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"A2"}, codes(low))

	total, err := s.TotalValue(ctx)
	require.NoError(t, err)
	assert.True(t, price("54.97").Equal(total), "total = %s", total)

	found, err := s.Update(ctx, a1, Patch{Quantity: Some(0)})
	require.NoError(t, err)
	require.True(t, found)

	low, err = s.LowStock(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, codes(low))

	found, err = s.Delete(ctx, a2)
	require.NoError(t, err)
	require.True(t, found)

	rows, err := s.GetAll(ctx, Sort{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, codes(rows))

	total, err = s.TotalValue(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestOpen_MemoryDatabase(t *testing.T) {
	s, err := Open(MemoryPath)
	require.NoError(t, err)
	defer s.Close()

	mustAdd(t, s, NewProduct{Code: "M", Name: "Mem", Quantity: 1, Price: price("1")})
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestStore_ClosedDatabaseIsStorageFailure(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.GetAll(context.Background(), Sort{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.False(t, IsValidationError(err))
}
