package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is a row of the products table.
type Product struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Code        string          `gorm:"column:code"`
	Name        string          `gorm:"column:name"`
	Description string          `gorm:"column:description"`
	Category    string          `gorm:"column:category"`
	Quantity    int             `gorm:"column:quantity"`
	Price       decimal.Decimal `gorm:"column:price"`
	Location    string          `gorm:"column:location"`
}

// TableName binds Product to the products table.
func (Product) TableName() string {
	return "products"
}

// Value is quantity × price. It is derived on read and never stored.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// NewProduct carries the fields supplied to Store.Add.
type NewProduct struct {
	Code        string
	Name        string
	Description string
	Category    string
	Quantity    int
	Price       decimal.Decimal
	Location    string
}

// TotalValue sums Value over rows.
func TotalValue(rows []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range rows {
		total = total.Add(p.Value())
	}
	return total
}
