package inventory

import (
	"github.com/shopspring/decimal"
)

// Status represents the stock status of a catalog item
type Status string

const (
	StatusInStock    Status = "In Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// Bracelet represents one catalog entry. The id is immutable after
// creation and unique across the catalog under case-insensitive compare.
type Bracelet struct {
	ID          string          `gorm:"primaryKey;type:text"`
	Description string          `gorm:"type:text;not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status      Status          `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Bracelet) TableName() string {
	return "bracelets"
}

// NewBracelet validates the raw field values and assembles a record.
// Fields are checked in order description, quantity, price (the id is
// expected to have passed ParseID already, but is re-checked). Status
// defaults to In Stock regardless of the quantity supplied; the status
// rule only engages on later quantity updates.
func NewBracelet(id, description, quantity, price string) (*Bracelet, error) {
	parsedID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	desc, err := ParseDescription(description)
	if err != nil {
		return nil, err
	}
	qty, err := ParseQuantity(quantity)
	if err != nil {
		return nil, err
	}
	pr, err := ParsePrice(price)
	if err != nil {
		return nil, err
	}

	return &Bracelet{
		ID:          parsedID,
		Description: desc,
		Quantity:    qty,
		Price:       pr,
		Status:      StatusInStock,
	}, nil
}

// NewBraceletWithStatus builds a record with a caller-supplied status.
// The status is stored as given, without reconciling it against the
// quantity; a record can therefore start out inconsistent (say quantity 5
// with status Out of Stock) until a quantity update fires.
func NewBraceletWithStatus(id, description, quantity, price, status string) (*Bracelet, error) {
	b, err := NewBracelet(id, description, quantity, price)
	if err != nil {
		return nil, err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	b.Status = st
	return b, nil
}

// ApplyQuantity sets the quantity, reconciles the stock status against
// it, and reports whether the status flipped as a result.
func (b *Bracelet) ApplyQuantity(quantity int) bool {
	old := b.Status
	b.Quantity = quantity
	b.Status = ReconcileStatus(old, quantity)
	return b.Status != old
}

// SetPrice replaces the price. No side effects on other fields.
func (b *Bracelet) SetPrice(price decimal.Decimal) {
	b.Price = price
}

// SetStatus assigns the status directly. There is deliberately no
// cross-check against the current quantity: manual overrides are allowed
// and the quantity rule only runs on the quantity-update path.
func (b *Bracelet) SetStatus(status Status) {
	b.Status = status
}

// IsInStock returns true if the record is marked In Stock
func (b *Bracelet) IsInStock() bool {
	return b.Status == StatusInStock
}

// IsOutOfStock returns true if the record is marked Out of Stock
func (b *Bracelet) IsOutOfStock() bool {
	return b.Status == StatusOutOfStock
}

// IsBelow returns true if the quantity is strictly below the threshold
func (b *Bracelet) IsBelow(threshold int) bool {
	return b.Quantity < threshold
}

// ReconcileStatus computes the status a record must carry after its
// quantity changes: zero forces Out of Stock, a positive quantity lifts
// Out of Stock back to In Stock, and anything else keeps the current
// status. This is the only automatic status transition in the system.
func ReconcileStatus(current Status, quantity int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case current == StatusOutOfStock:
		return StatusInStock
	default:
		return current
	}
}
