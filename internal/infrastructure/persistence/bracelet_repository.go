package persistence

import (
	"context"
	"errors"

	"github.com/candicorner/inventory/internal/domain/inventory"
	"github.com/candicorner/inventory/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBraceletRepository implements BraceletRepository using GORM.
// ID matching is case-insensitive: lookups compare LOWER(id) so that
// "B001" and "b001" address the same row while the stored casing is
// preserved.
type GormBraceletRepository struct {
	db *gorm.DB
}

// NewGormBraceletRepository creates a new GormBraceletRepository
func NewGormBraceletRepository(db *gorm.DB) *GormBraceletRepository {
	return &GormBraceletRepository{db: db}
}

// FindAll returns all bracelets ordered by ID
func (r *GormBraceletRepository) FindAll(ctx context.Context) ([]inventory.Bracelet, error) {
	var bracelets []inventory.Bracelet
	if err := r.db.WithContext(ctx).Order("id").Find(&bracelets).Error; err != nil {
		return nil, shared.NewStorageError("list bracelets", err)
	}
	return bracelets, nil
}

// FindByID finds a bracelet by its ID, ignoring case
func (r *GormBraceletRepository) FindByID(ctx context.Context, id string) (*inventory.Bracelet, error) {
	var bracelet inventory.Bracelet
	if err := r.db.WithContext(ctx).
		Where("LOWER(id) = LOWER(?)", id).
		First(&bracelet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStorageError("find bracelet", err)
	}
	return &bracelet, nil
}

// ExistsByID reports whether a bracelet with the given ID exists, ignoring case
func (r *GormBraceletRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Bracelet{}).
		Where("LOWER(id) = LOWER(?)", id).
		Count(&count).Error; err != nil {
		return false, shared.NewStorageError("check bracelet existence", err)
	}
	return count > 0, nil
}

// Insert creates a new bracelet record
func (r *GormBraceletRepository) Insert(ctx context.Context, bracelet *inventory.Bracelet) error {
	if err := r.db.WithContext(ctx).Create(bracelet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return shared.NewStorageError("insert bracelet", err)
	}
	return nil
}

// Update rewrites the mutable columns of an existing bracelet
func (r *GormBraceletRepository) Update(ctx context.Context, bracelet *inventory.Bracelet) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.Bracelet{}).
		Where("LOWER(id) = LOWER(?)", bracelet.ID).
		Updates(map[string]any{
			"description": bracelet.Description,
			"quantity":    bracelet.Quantity,
			"price":       bracelet.Price,
			"status":      bracelet.Status,
		})
	if result.Error != nil {
		return shared.NewStorageError("update bracelet", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a bracelet by its ID, ignoring case
func (r *GormBraceletRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("LOWER(id) = LOWER(?)", id).
		Delete(&inventory.Bracelet{})
	if result.Error != nil {
		return shared.NewStorageError("delete bracelet", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
