package query

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"stockctl/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *catalog.Store {
	t.Helper()
	s, err := catalog.Open(filepath.Join(t.TempDir(), "query.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	for _, np := range []catalog.NewProduct{
		{Code: "B-2", Name: "Bolt", Category: "Hardware", Location: "Bin1", Quantity: 40, Price: decimal.RequireFromString("0.20")},
		{Code: "A-1", Name: "Anchor", Category: "Hardware", Location: "Bin2", Quantity: 2, Price: decimal.RequireFromString("1.10")},
		{Code: "D-4", Name: "Drill", Category: "Tools", Location: "Bin1", Quantity: 1, Price: decimal.RequireFromString("89.00")},
		{Code: "C-3", Name: "Chisel", Category: "Tools", Location: "Bin2", Quantity: 4, Price: decimal.RequireFromString("12.50")},
	} {
		_, err := s.Add(context.Background(), np)
		require.NoError(t, err)
	}
	return s
}

func codes(rows []catalog.Product) []string {
	out := make([]string, len(rows))
	for i, p := range rows {
		out[i] = p.Code
	}
	return out
}

func TestEvaluate(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		desc Descriptor
		want []string
	}{
		{
			name: "all in store order",
			desc: Descriptor{Kind: All},
			want: []string{"B-2", "A-1", "D-4", "C-3"},
		},
		{
			name: "all sorted by code",
			desc: Descriptor{Kind: All, Sort: catalog.Sort{Field: catalog.SortCode}},
			want: []string{"A-1", "B-2", "C-3", "D-4"},
		},
		{
			name: "search ignores case",
			desc: Descriptor{Kind: Search, Term: "dRi"},
			want: []string{"D-4"},
		},
		{
			name: "category sorted by price descending",
			desc: Descriptor{Kind: ByCategory, Value: "Hardware", Sort: catalog.Sort{Field: catalog.SortPrice, Descending: true}},
			want: []string{"A-1", "B-2"},
		},
		{
			name: "location sorted by name",
			desc: Descriptor{Kind: ByLocation, Value: " Bin2 ", Sort: catalog.Sort{Field: catalog.SortName}},
			want: []string{"A-1", "C-3"},
		},
		{
			name: "low stock sorted by quantity",
			desc: Descriptor{Kind: LowStock, Threshold: 4, Sort: catalog.Sort{Field: catalog.SortQuantity}},
			want: []string{"D-4", "A-1", "C-3"},
		},
		{
			name: "low stock descending id",
			desc: Descriptor{Kind: LowStock, Threshold: 4, Sort: catalog.Sort{Descending: true}},
			want: []string{"C-3", "D-4", "A-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Evaluate(ctx, s, tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, codes(rows))
		})
	}
}

func TestEvaluate_InvalidSortRejectedForEveryKind(t *testing.T) {
	s := seededStore(t)
	for _, k := range []Kind{All, Search, ByCategory, ByLocation, LowStock} {
		_, err := Evaluate(context.Background(), s, Descriptor{Kind: k, Sort: catalog.Sort{Field: "weight"}})
		assert.ErrorIs(t, err, catalog.ErrInvalidSortField, "kind %s", k)
	}
}

func TestEvaluate_NegativeThreshold(t *testing.T) {
	s := seededStore(t)
	_, err := Evaluate(context.Background(), s, Descriptor{Kind: LowStock, Threshold: -3})
	assert.ErrorIs(t, err, catalog.ErrInvalidThreshold)
}

// failingReader fails every read with err.
type failingReader struct{ err error }

func (f failingReader) GetAll(context.Context, catalog.Sort) ([]catalog.Product, error) {
	return nil, f.err
}
func (f failingReader) Search(context.Context, string) ([]catalog.Product, error) {
	return nil, f.err
}
func (f failingReader) FilterByCategory(context.Context, string) ([]catalog.Product, error) {
	return nil, f.err
}
func (f failingReader) FilterByLocation(context.Context, string) ([]catalog.Product, error) {
	return nil, f.err
}
func (f failingReader) LowStock(context.Context, int) ([]catalog.Product, error) {
	return nil, f.err
}

func TestEvaluate_PropagatesReaderErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Evaluate(context.Background(), failingReader{err: boom}, Descriptor{Kind: Search, Term: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestDescriptor_Descriptions(t *testing.T) {
	assert.Equal(t, "all products", Descriptor{}.Description())
	assert.Equal(t, `search "bo"`, Descriptor{Kind: Search, Term: "bo"}.Description())
	assert.Equal(t, `category = "Tools"`, Descriptor{Kind: ByCategory, Value: " Tools"}.Description())
	assert.Equal(t, `location = "Bin1"`, Descriptor{Kind: ByLocation, Value: "Bin1"}.Description())
	assert.Equal(t, "quantity <= 3", Descriptor{Kind: LowStock, Threshold: 3}.Description())

	assert.Equal(t, "", Descriptor{}.SortDescription())
	assert.Equal(t, "price ↓", Descriptor{Sort: catalog.Sort{Field: catalog.SortPrice, Descending: true}}.SortDescription())
	assert.Equal(t, "name ↑", Descriptor{Sort: catalog.Sort{Field: catalog.SortName}}.SortDescription())
}

func TestDescriptor_WithoutFilterKeepsSort(t *testing.T) {
	d := Descriptor{Kind: Search, Term: "x", Sort: catalog.Sort{Field: catalog.SortCode, Descending: true}}
	cleared := d.WithoutFilter()
	assert.False(t, cleared.IsFiltered())
	assert.Equal(t, d.Sort, cleared.Sort)
	assert.Empty(t, cleared.Term)
}
