package queries

import (
	"context"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
)

type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns nil, nil when the order does not exist or belongs to someone
// else. Absence is not an error here.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.GetByIDForOwner(ctx, query.OrderID(), query.OwnerID())
}
