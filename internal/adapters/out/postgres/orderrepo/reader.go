package orderrepo

import (
	"context"
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"

	"gorm.io/gorm"
)

// GormOrderReader implements ports.OrderReader outside any transaction.
type GormOrderReader struct {
	db *gorm.DB
}

func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

func (r *GormOrderReader) ListByOwner(ctx context.Context, ownerID kernel.UUID, page ports.Page) ([]*order.Order, error) {
	q := withLines(r.db.WithContext(ctx)).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at DESC").
		Order("id DESC")
	if page.Limit > 0 {
		q = q.Limit(page.Limit).Offset(page.Offset())
	}

	var dtos []OrderDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormOrderReader) GetByIDForOwner(ctx context.Context, id, ownerID kernel.UUID) (*order.Order, error) {
	var dto OrderDTO
	err := withLines(r.db.WithContext(ctx)).
		First(&dto, "id = ? AND owner_id = ?", id.Bytes(), ownerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(dto)
}
