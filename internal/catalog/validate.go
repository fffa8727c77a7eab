package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// productInput is the shape the validator sees; string fields are trimmed
// first so whitespace-only values count as missing.
type productInput struct {
	Code     string `validate:"required"`
	Name     string `validate:"required"`
	Quantity int    `validate:"gte=0"`
}

func validateNew(np NewProduct) error {
	in := productInput{
		Code:     strings.TrimSpace(np.Code),
		Name:     strings.TrimSpace(np.Name),
		Quantity: np.Quantity,
	}

	var failed map[string]bool
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		failed = make(map[string]bool, len(verrs))
		for _, fe := range verrs {
			failed[fe.Field()] = true
		}
	}

	switch {
	case failed["Quantity"]:
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, np.Quantity)
	case np.Price.IsNegative():
		return fmt.Errorf("%w: %s", ErrInvalidPrice, np.Price)
	case failed["Code"]:
		return ErrMissingCode
	case failed["Name"]:
		return ErrMissingName
	}
	return nil
}

func validatePatch(p Patch) error {
	if q, ok := p.Quantity.Get(); ok {
		if err := validate.Var(q, "gte=0"); err != nil {
			return fmt.Errorf("%w: %d", ErrInvalidQuantity, q)
		}
	}
	if price, ok := p.Price.Get(); ok && price.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}
	if name, ok := p.Name.Get(); ok {
		if err := validate.Var(strings.TrimSpace(name), "required"); err != nil {
			return ErrMissingName
		}
	}
	return nil
}

// ValidateQuantity applies the store's quantity rule without touching the database.
func ValidateQuantity(q int) error {
	if err := validate.Var(q, "gte=0"); err != nil {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, q)
	}
	return nil
}

// ValidatePrice applies the store's price rule without touching the database.
func ValidatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, p)
	}
	return nil
}
