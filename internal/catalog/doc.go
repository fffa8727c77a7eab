// Package catalog owns the persisted product records of stockctl.
//
// The Store is the only component that talks to the database. It validates
// every write before it reaches SQLite, relies on the UNIQUE constraint on
// products.code to detect duplicate codes at write time, and never caches
// rows between calls: every read goes back to the database, so callers see
// the effect of a mutation on their next read.
//
// # Errors
//
// Validation failures are reported with sentinel errors that callers match
// with errors.Is:
//
//   - ErrDuplicateCode, ErrMissingCode, ErrMissingName
//   - ErrInvalidQuantity, ErrInvalidPrice, ErrInvalidThreshold
//   - ErrInvalidSortField, ErrNoFieldsProvided
//
// Faults raised by the database itself wrap ErrStorageFailure. A missing id on
// Update or Delete is not an error; it is reported through the boolean result.
//
// # Usage
//
//	store, err := catalog.Open("inventory.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	id, err := store.Add(ctx, catalog.NewProduct{
//	    Code:     "A1",
//	    Name:     "Widget",
//	    Quantity: 10,
//	    Price:    decimal.RequireFromString("2.50"),
//	})
package catalog
