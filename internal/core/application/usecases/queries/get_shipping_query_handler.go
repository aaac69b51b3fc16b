package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"checkout/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetShippingQueryHandler reads shipping columns straight from the orders
// table without loading the aggregate.
type GetShippingQueryHandler struct {
	db *gorm.DB
}

func NewGetShippingQueryHandler(db *gorm.DB) GetShippingQueryHandler {
	return GetShippingQueryHandler{db: db}
}

// Handle returns nil, nil when the owner has no such order.
func (h GetShippingQueryHandler) Handle(
	ctx context.Context,
	query GetShippingQuery,
) (*GetShippingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			shipping_carrier,
			shipping_tracking_number,
			shipping_status,
			shipping_shipped_at,
			shipping_delivered_at
		FROM orders
		WHERE id = ? AND owner_id = ?
	`, query.OrderID().Bytes(), query.OwnerID().Bytes()).Row()

	var (
		status, shippingStatus string
		carrier, tracking      string
		shippedAt, deliveredAt sql.NullTime
	)
	err := row.Scan(&status, &carrier, &tracking, &shippingStatus, &shippedAt, &deliveredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return nil, err
	}
	parsedShippingStatus, err := order.ShippingStatusFromString(shippingStatus)
	if err != nil {
		return nil, err
	}

	return &GetShippingQueryResponse{
		OrderID:        query.OrderID(),
		Status:         orderStatus,
		Carrier:        carrier,
		TrackingNumber: tracking,
		ShippingStatus: parsedShippingStatus,
		ShippedAt:      nullTimePtr(shippedAt),
		DeliveredAt:    nullTimePtr(deliveredAt),
	}, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
