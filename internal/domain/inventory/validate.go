package inventory

import (
	"strconv"
	"strings"

	"github.com/candicorner/inventory/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// The Parse helpers turn raw operator input into typed field values.
// Each returns the parsed value or a validation error naming the field;
// there are no sentinel values, so a valid zero is distinguishable from
// a failure.

// ParseID validates and normalizes a bracelet id
func ParseID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", shared.NewDomainError("INVALID_ID", "ID cannot be empty")
	}
	return id, nil
}

// ParseDescription validates and normalizes a description
func ParseDescription(raw string) (string, error) {
	desc := strings.TrimSpace(raw)
	if desc == "" {
		return "", shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	return desc, nil
}

// ParseQuantity parses a quantity, rejecting anything that is not a
// non-negative integer
func ParseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 0 {
		return 0, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a non-negative integer")
	}
	return qty, nil
}

// ParsePrice parses a price, rejecting anything that is not a
// non-negative number
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, shared.NewDomainError("INVALID_PRICE", "Price must be a non-negative number")
	}
	return price, nil
}

// ParseStatus parses a stock status, matching the two known values
// case-insensitively and returning the canonical form
func ParseStatus(raw string) (Status, error) {
	s := strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(s, string(StatusInStock)):
		return StatusInStock, nil
	case strings.EqualFold(s, string(StatusOutOfStock)):
		return StatusOutOfStock, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", `Status must be "In Stock" or "Out of Stock"`)
	}
}
