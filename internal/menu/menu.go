// Package menu implements the numbered, line-oriented catalog menu.
package menu

import (
	"context"
	"errors"
	"io"
	"strings"

	"stockctl/internal/catalog"
	"stockctl/internal/export"
	"stockctl/internal/prompt"
	"stockctl/internal/query"
	"stockctl/pkg/logging"

	"github.com/shopspring/decimal"
)

const subsystem = "Menu"

// Catalog is the store surface the menu drives.
type Catalog interface {
	query.Reader
	Add(ctx context.Context, np catalog.NewProduct) (int64, error)
	Update(ctx context.Context, id int64, patch catalog.Patch) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
}

type action struct {
	key     string
	label   string
	handler func(context.Context) error
}

// Menu runs the interactive numbered menu over a Prompter.
type Menu struct {
	store    Catalog
	exporter export.Exporter
	currency string
	p        *prompt.Prompter
	actions  []action
}

// New creates a menu reading answers from in and writing to out.
func New(store Catalog, exporter export.Exporter, currency string, in io.Reader, out io.Writer) *Menu {
	m := &Menu{
		store:    store,
		exporter: exporter,
		currency: currency,
		p:        prompt.New(in, out),
	}
	m.actions = []action{
		{"1", "Add product", m.addProduct},
		{"2", "View inventory", m.viewProducts},
		{"3", "Update product", m.updateProduct},
		{"4", "Delete product", m.deleteProduct},
		{"5", "Search products", m.searchProducts},
		{"6", "Filter by category", m.filterCategory},
		{"7", "Filter by location", m.filterLocation},
		{"8", "Show low-stock products", m.lowStock},
		{"9", "Compute total value", m.totalValue},
		{"10", "Export inventory to CSV", m.exportCSV},
	}
	return m
}

// Run loops until the user picks 0 or input ends. Validation errors are
// printed and the loop continues; any other error ends the session and is
// returned.
func (m *Menu) Run(ctx context.Context) error {
	logging.Debug(subsystem, "Menu session started")
	for {
		m.display()
		choice, err := m.p.Text("\nSelect an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "0" {
			m.p.Println("Goodbye!")
			return nil
		}

		a, ok := m.lookup(choice)
		if !ok {
			m.p.Println("Invalid option. Please try again.")
			continue
		}
		if err := a.handler(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if catalog.IsValidationError(err) {
				m.p.Printf("Error: %v\n", err)
				continue
			}
			logging.Error(subsystem, err, "Menu action %q failed", a.label)
			return err
		}
	}
}

func (m *Menu) display() {
	m.p.Println()
	m.p.Println("============================")
	m.p.Println(" Inventory Manager - Menu")
	m.p.Println("============================")
	for _, a := range m.actions {
		m.p.Printf(" %s. %s\n", a.key, a.label)
	}
	m.p.Println(" 0. Exit")
}

func (m *Menu) lookup(key string) (action, bool) {
	for _, a := range m.actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

func (m *Menu) addProduct(ctx context.Context) error {
	m.p.Println("\n=== Add product ===")
	var np catalog.NewProduct
	var err error

	if np.Code, err = m.p.Text("Code: "); err != nil {
		return err
	}
	if np.Name, err = m.p.Text("Name: "); err != nil {
		return err
	}
	if np.Description, err = m.p.Text("Description: "); err != nil {
		return err
	}
	if np.Category, err = m.p.Text("Category: "); err != nil {
		return err
	}
	if np.Quantity, _, err = m.quantity("Quantity: ", false); err != nil {
		return err
	}
	if np.Price, _, err = m.price("Unit price: ", false); err != nil {
		return err
	}
	if np.Location, err = m.p.Text("Location (aisle/shelf): "); err != nil {
		return err
	}

	if _, err := m.store.Add(ctx, np); err != nil {
		return err
	}
	m.p.Println("Product added.")
	return nil
}

func (m *Menu) viewProducts(ctx context.Context) error {
	m.p.Println("\n=== Inventory ===")
	return m.runQuery(ctx, query.Descriptor{Kind: query.All})
}

func (m *Menu) updateProduct(ctx context.Context) error {
	m.p.Println("\n=== Update product ===")
	id, err := m.productID()
	if err != nil {
		return err
	}
	m.p.Println("Leave a field blank to keep its current value.")

	var patch catalog.Patch
	text := func(label string, f *catalog.Field[string]) error {
		v, err := m.p.Text(label)
		if err != nil {
			return err
		}
		if v != "" {
			*f = catalog.Some(v)
		}
		return nil
	}

	if err := text("New name: ", &patch.Name); err != nil {
		return err
	}
	if err := text("New description: ", &patch.Description); err != nil {
		return err
	}
	if err := text("New category: ", &patch.Category); err != nil {
		return err
	}
	if q, ok, err := m.quantity("New quantity: ", true); err != nil {
		return err
	} else if ok {
		patch.Quantity = catalog.Some(q)
	}
	if pr, ok, err := m.price("New unit price: ", true); err != nil {
		return err
	} else if ok {
		patch.Price = catalog.Some(pr)
	}
	if err := text("New location: ", &patch.Location); err != nil {
		return err
	}

	found, err := m.store.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if !found {
		m.p.Println("No product found with that ID.")
		return nil
	}
	m.p.Println("Product updated.")
	return nil
}

func (m *Menu) deleteProduct(ctx context.Context) error {
	m.p.Println("\n=== Delete product ===")
	id, err := m.productID()
	if err != nil {
		return err
	}
	found, err := m.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		m.p.Println("No product found with that ID.")
		return nil
	}
	m.p.Println("Product deleted.")
	return nil
}

func (m *Menu) searchProducts(ctx context.Context) error {
	m.p.Println("\n=== Search products ===")
	term, err := m.p.Text("Search term (name or code): ")
	if err != nil {
		return err
	}
	return m.runQuery(ctx, query.Descriptor{Kind: query.Search, Term: term})
}

func (m *Menu) filterCategory(ctx context.Context) error {
	m.p.Println("\n=== Filter by category ===")
	v, err := m.p.Text("Category: ")
	if err != nil {
		return err
	}
	return m.runQuery(ctx, query.Descriptor{Kind: query.ByCategory, Value: v})
}

func (m *Menu) filterLocation(ctx context.Context) error {
	m.p.Println("\n=== Filter by location ===")
	v, err := m.p.Text("Location: ")
	if err != nil {
		return err
	}
	return m.runQuery(ctx, query.Descriptor{Kind: query.ByLocation, Value: v})
}

func (m *Menu) lowStock(ctx context.Context) error {
	m.p.Println("\n=== Low-stock check ===")
	threshold, _, err := m.quantity("Minimum threshold: ", false)
	if err != nil {
		return err
	}
	rows, err := query.Evaluate(ctx, m.store, query.Descriptor{Kind: query.LowStock, Threshold: threshold})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		m.p.Println("No products at or below the given threshold.")
		return nil
	}
	m.p.Println("Warning! The following products are at or below the threshold:")
	m.p.Println(FormatTable(rows))
	return nil
}

func (m *Menu) totalValue(ctx context.Context) error {
	m.p.Println("\n=== Total inventory value ===")
	total, err := m.store.TotalValue(ctx)
	if err != nil {
		return err
	}
	m.p.Printf("Total value: %s %s\n", m.currency, total.StringFixed(2))
	return nil
}

func (m *Menu) exportCSV(ctx context.Context) error {
	m.p.Println("\n=== CSV export ===")
	name, err := m.p.Text("CSV file name (blank for default): ")
	if err != nil {
		return err
	}
	path, err := m.exporter.Export(ctx, m.store, name)
	if err != nil {
		return err
	}
	m.p.Printf("Inventory exported to: %s\n", path)
	return nil
}

// runQuery asks for the sort and prints the result table.
func (m *Menu) runQuery(ctx context.Context, d query.Descriptor) error {
	s, err := m.sortChoice()
	if err != nil {
		return err
	}
	d.Sort = s
	rows, err := query.Evaluate(ctx, m.store, d)
	if err != nil {
		return err
	}
	m.p.Println(FormatTable(rows))
	return nil
}

func (m *Menu) sortChoice() (catalog.Sort, error) {
	m.p.Printf("\nSortable fields: %s\n", strings.Join(catalog.SortFields(), ", "))
	raw, err := m.p.Text("Sort field (blank for none): ")
	if err != nil {
		return catalog.Sort{}, err
	}
	if raw == "" {
		return catalog.Sort{}, nil
	}
	field, err := catalog.ParseSortField(raw)
	if err != nil {
		return catalog.Sort{}, err
	}
	desc, err := m.p.YesNo("Descending? (y/N): ")
	if err != nil {
		return catalog.Sort{}, err
	}
	return catalog.Sort{Field: field, Descending: desc}, nil
}

func (m *Menu) productID() (int64, error) {
	id, _, err := m.p.Int("Product ID: ", false)
	return int64(id), err
}

// quantity re-asks until the answer is a valid quantity.
func (m *Menu) quantity(label string, allowEmpty bool) (int, bool, error) {
	for {
		q, ok, err := m.p.Int(label, allowEmpty)
		if err != nil || !ok {
			return 0, false, err
		}
		if verr := catalog.ValidateQuantity(q); verr != nil {
			m.p.Println(verr)
			continue
		}
		return q, true, nil
	}
}

// price re-asks until the answer is a valid price.
func (m *Menu) price(label string, allowEmpty bool) (decimal.Decimal, bool, error) {
	for {
		pr, ok, err := m.p.Decimal(label, allowEmpty)
		if err != nil || !ok {
			return decimal.Zero, false, err
		}
		if verr := catalog.ValidatePrice(pr); verr != nil {
			m.p.Println(verr)
			continue
		}
		return pr, true, nil
	}
}
