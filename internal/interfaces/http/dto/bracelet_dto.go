package dto

import (
	invapp "github.com/candicorner/inventory/internal/application/inventory"
	invdomain "github.com/candicorner/inventory/internal/domain/inventory"
)

// CreateBraceletRequest represents the request to create a bracelet.
// All fields arrive as raw text and are validated by the domain layer,
// so none of them carry binding constraints here.
type CreateBraceletRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
}

// UpdateFieldRequest represents the request to update a single field
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// BraceletResponse represents a bracelet in API responses. The price is
// rendered as a decimal string to avoid float rounding on the wire.
type BraceletResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Status      string `json:"status"`
}

// NewBraceletResponse converts a domain record to its response form
func NewBraceletResponse(b *invdomain.Bracelet) BraceletResponse {
	return BraceletResponse{
		ID:          b.ID,
		Description: b.Description,
		Quantity:    b.Quantity,
		Price:       b.Price.String(),
		Status:      string(b.Status),
	}
}

// NewBraceletListResponse converts a slice of domain records
func NewBraceletListResponse(items []invdomain.Bracelet) []BraceletResponse {
	out := make([]BraceletResponse, 0, len(items))
	for i := range items {
		out = append(out, NewBraceletResponse(&items[i]))
	}
	return out
}

// UpdateFieldResponse represents the outcome of a field update
type UpdateFieldResponse struct {
	Bracelet      BraceletResponse `json:"bracelet"`
	Field         string           `json:"field"`
	Changed       bool             `json:"changed"`
	StatusFlipped bool             `json:"status_flipped"`
}

// NewUpdateFieldResponse converts an application update result
func NewUpdateFieldResponse(r *invapp.UpdateResult) UpdateFieldResponse {
	return UpdateFieldResponse{
		Bracelet:      NewBraceletResponse(r.Bracelet),
		Field:         r.Field,
		Changed:       r.Changed,
		StatusFlipped: r.StatusFlipped,
	}
}
