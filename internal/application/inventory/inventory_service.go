package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/candicorner/inventory/internal/domain/inventory"
	"github.com/candicorner/inventory/internal/domain/shared"
)

// Updatable fields accepted by UpdateField
const (
	FieldQuantity = "quantity"
	FieldPrice    = "price"
	FieldStatus   = "status"
)

// InventoryService handles catalog business operations: validation,
// uniqueness enforcement and the stock-status rule. Storage is reached
// only through the repository port; the service holds no state of its
// own, so one instance serves any number of callers.
type InventoryService struct {
	repo inventory.BraceletRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(repo inventory.BraceletRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// Add validates the raw field values and inserts a new record. Fields
// are checked in order id, uniqueness, description, quantity, price and
// the first failure wins. The new record starts In Stock.
func (s *InventoryService) Add(ctx context.Context, id, description, quantity, price string) (*inventory.Bracelet, error) {
	parsedID, err := inventory.ParseID(id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByID(ctx, parsedID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists,
			fmt.Sprintf("A bracelet with ID %q already exists", parsedID))
	}

	bracelet, err := inventory.NewBracelet(parsedID, description, quantity, price)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, bracelet); err != nil {
		return nil, err
	}
	return bracelet, nil
}

// Remove deletes the record with the given id and reports its
// description for operator feedback.
func (s *InventoryService) Remove(ctx context.Context, id string) (*RemoveResult, error) {
	bracelet, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, bracelet.ID); err != nil {
		return nil, err
	}
	return &RemoveResult{ID: bracelet.ID, Description: bracelet.Description}, nil
}

// UpdateField updates one of quantity, price or status on an existing
// record. A quantity update reconciles the stock status and reports
// whether it flipped; price and status updates touch only their own
// field. Supplying the already-stored value is a successful no-op and
// writes nothing, except that a quantity update still fires when
// reconciliation would change the status.
func (s *InventoryService) UpdateField(ctx context.Context, id, field, value string) (*UpdateResult, error) {
	bracelet, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{Bracelet: bracelet}

	switch strings.ToLower(strings.TrimSpace(field)) {
	case FieldQuantity:
		result.Field = FieldQuantity
		qty, err := inventory.ParseQuantity(value)
		if err != nil {
			return nil, err
		}
		if qty == bracelet.Quantity && inventory.ReconcileStatus(bracelet.Status, qty) == bracelet.Status {
			return result, nil
		}
		result.StatusFlipped = bracelet.ApplyQuantity(qty)

	case FieldPrice:
		result.Field = FieldPrice
		price, err := inventory.ParsePrice(value)
		if err != nil {
			return nil, err
		}
		if price.Equal(bracelet.Price) {
			return result, nil
		}
		bracelet.SetPrice(price)

	case FieldStatus:
		result.Field = FieldStatus
		status, err := inventory.ParseStatus(value)
		if err != nil {
			return nil, err
		}
		if status == bracelet.Status {
			return result, nil
		}
		bracelet.SetStatus(status)

	default:
		return nil, shared.NewDomainError("INVALID_FIELD",
			fmt.Sprintf("Field must be one of %s, %s, %s", FieldQuantity, FieldPrice, FieldStatus))
	}

	if err := s.repo.Update(ctx, bracelet); err != nil {
		return nil, err
	}
	result.Changed = true
	return result, nil
}

// LowStock returns the records with quantity strictly below the given
// threshold, sorted ascending by quantity. Ties keep storage order. An
// invalid threshold is a validation failure, distinct from an empty
// result.
func (s *InventoryService) LowStock(ctx context.Context, threshold string) ([]inventory.Bracelet, error) {
	limit, err := inventory.ParseQuantity(threshold)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_THRESHOLD", "Threshold must be a non-negative integer")
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]inventory.Bracelet, 0)
	for _, b := range all {
		if b.IsBelow(limit) {
			low = append(low, b)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	return low, nil
}

// List returns every record in storage order
func (s *InventoryService) List(ctx context.Context) ([]inventory.Bracelet, error) {
	return s.repo.FindAll(ctx)
}

// Get returns the record with the given id
func (s *InventoryService) Get(ctx context.Context, id string) (*inventory.Bracelet, error) {
	return s.find(ctx, id)
}

// find validates the id and fetches the record, translating the port's
// not-found sentinel into an error naming the id.
func (s *InventoryService) find(ctx context.Context, id string) (*inventory.Bracelet, error) {
	parsedID, err := inventory.ParseID(id)
	if err != nil {
		return nil, err
	}

	bracelet, err := s.repo.FindByID(ctx, parsedID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound,
				fmt.Sprintf("No bracelet found with ID %q", parsedID))
		}
		return nil, err
	}
	return bracelet, nil
}
