package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stockctl/pkg/logging"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const storeSubsystem = "CatalogStore"

// MemoryPath opens a private in-memory catalog.
const MemoryPath = ":memory:"

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	code        TEXT    NOT NULL UNIQUE,
	name        TEXT    NOT NULL,
	description TEXT    NOT NULL DEFAULT '',
	category    TEXT    NOT NULL DEFAULT '',
	quantity    INTEGER NOT NULL CHECK (quantity >= 0),
	price       REAL    NOT NULL CHECK (price >= 0),
	location    TEXT    NOT NULL DEFAULT ''
)`

// Store is the catalog persistence layer. Each method is one self-contained
// unit of work; nothing is cached between calls.
type Store struct {
	db   *gorm.DB
	path string
}

// Open opens (creating if needed) the SQLite catalog at path and makes sure
// the products table exists.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("catalog: database path is empty")
	}
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, storageErr("create database directory", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         newSQLLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, storageErr("open database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, storageErr("open database", err)
	}
	// One writer, one connection: this also keeps ":memory:" databases alive
	// across calls.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec(createProductsTable).Error; err != nil {
		_ = sqlDB.Close()
		return nil, storageErr("create products table", err)
	}

	logging.Debug(storeSubsystem, "Opened catalog at %s", path)
	return &Store{db: db, path: path}, nil
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storageErr("close database", err)
	}
	if err := sqlDB.Close(); err != nil {
		return storageErr("close database", err)
	}
	return nil
}

// Add inserts a new product and returns its freshly assigned id.
func (s *Store) Add(ctx context.Context, np NewProduct) (int64, error) {
	if err := validateNew(np); err != nil {
		return 0, err
	}

	p := Product{
		Code:        np.Code,
		Name:        strings.TrimSpace(np.Name),
		Description: strings.TrimSpace(np.Description),
		Category:    strings.TrimSpace(np.Category),
		Quantity:    np.Quantity,
		Price:       np.Price,
		Location:    strings.TrimSpace(np.Location),
	}

	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("cannot add product: %w: %q", ErrDuplicateCode, np.Code)
		}
		return 0, storageErr("add product", err)
	}

	logging.Info(storeSubsystem, "Added product %s (id %d)", p.Code, p.ID)
	return p.ID, nil
}

// Update applies the present fields of patch to the product with id. It
// reports false, without error, when no such product exists.
func (s *Store) Update(ctx context.Context, id int64, patch Patch) (bool, error) {
	if patch.IsEmpty() {
		return false, ErrNoFieldsProvided
	}
	if err := validatePatch(patch); err != nil {
		return false, err
	}

	updates := make(map[string]interface{}, 6)
	if v, ok := patch.Name.Get(); ok {
		updates["name"] = strings.TrimSpace(v)
	}
	if v, ok := patch.Description.Get(); ok {
		updates["description"] = strings.TrimSpace(v)
	}
	if v, ok := patch.Category.Get(); ok {
		updates["category"] = strings.TrimSpace(v)
	}
	if v, ok := patch.Quantity.Get(); ok {
		updates["quantity"] = v
	}
	if v, ok := patch.Price.Get(); ok {
		updates["price"] = v
	}
	if v, ok := patch.Location.Get(); ok {
		updates["location"] = strings.TrimSpace(v)
	}

	res := s.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return false, storageErr("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		logging.Debug(storeSubsystem, "Update: no product with id %d", id)
		return false, nil
	}

	logging.Info(storeSubsystem, "Updated product id %d (%d fields)", id, len(updates))
	return true, nil
}

// Delete removes the product with id permanently. It reports false when no
// such product exists.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{})
	if res.Error != nil {
		return false, storageErr("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	logging.Info(storeSubsystem, "Deleted product id %d", id)
	return true, nil
}

// Get loads one product by id.
func (s *Store) Get(ctx context.Context, id int64) (Product, bool, error) {
	var p Product
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, storageErr("get product", err)
	}
	return p, true, nil
}

// GetAll returns every product ordered by sort. An empty sort field yields
// id order.
func (s *Store) GetAll(ctx context.Context, sort Sort) ([]Product, error) {
	if err := sort.Validate(); err != nil {
		return nil, err
	}
	var rows []Product
	if err := s.db.WithContext(ctx).Order(sort.orderClause()).Find(&rows).Error; err != nil {
		return nil, storageErr("list products", err)
	}
	return rows, nil
}

// Search returns products whose code or name contains term, ignoring case.
// An empty term matches every product.
func (s *Store) Search(ctx context.Context, term string) ([]Product, error) {
	pattern := "%" + escapeLike(term) + "%"
	var rows []Product
	err := s.db.WithContext(ctx).
		Where(`code LIKE ? ESCAPE '\' OR name LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr("search products", err)
	}
	return rows, nil
}

// FilterByCategory returns products whose category equals value after trimming.
func (s *Store) FilterByCategory(ctx context.Context, value string) ([]Product, error) {
	return s.filterBy(ctx, "category", value)
}

// FilterByLocation returns products whose location equals value after trimming.
func (s *Store) FilterByLocation(ctx context.Context, value string) ([]Product, error) {
	return s.filterBy(ctx, "location", value)
}

func (s *Store) filterBy(ctx context.Context, column, value string) ([]Product, error) {
	var rows []Product
	err := s.db.WithContext(ctx).
		Where(column+" = ?", strings.TrimSpace(value)).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr("filter products by "+column, err)
	}
	return rows, nil
}

// LowStock returns products with quantity at or below threshold.
func (s *Store) LowStock(ctx context.Context, threshold int) ([]Product, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}
	var rows []Product
	err := s.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr("list low-stock products", err)
	}
	return rows, nil
}

// TotalValue is Σ quantity × price over the whole catalog, computed with
// exact decimal arithmetic. It is zero for an empty catalog.
func (s *Store) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	var rows []Product
	if err := s.db.WithContext(ctx).Select("quantity", "price").Find(&rows).Error; err != nil {
		return decimal.Zero, storageErr("compute total value", err)
	}
	return TotalValue(rows), nil
}

// Count returns the number of live products.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Product{}).Count(&n).Error; err != nil {
		return 0, storageErr("count products", err)
	}
	return n, nil
}

// Categories lists the distinct non-empty categories in use, sorted.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "category")
}

// Locations lists the distinct non-empty locations in use, sorted.
func (s *Store) Locations(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "location")
}

func (s *Store) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := s.db.WithContext(ctx).
		Model(&Product{}).
		Where(column+" <> ?", "").
		Distinct().
		Order(column+" ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, storageErr("list distinct "+column, err)
	}
	return values, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
