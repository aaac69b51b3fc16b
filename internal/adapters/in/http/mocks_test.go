package http

import (
	"context"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

func orderResult(args mock.Arguments) (*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	return orderResult(m.Called(ctx, cmd))
}

type MockPaymentConfirmer struct{ mock.Mock }

func (m *MockPaymentConfirmer) Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error) {
	return orderResult(m.Called(ctx, cmd))
}

type MockOrderCanceler struct{ mock.Mock }

func (m *MockOrderCanceler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	return orderResult(m.Called(ctx, cmd))
}

type MockOrderShipper struct{ mock.Mock }

func (m *MockOrderShipper) Handle(ctx context.Context, cmd commands.ShipOrderCommand) (*order.Order, error) {
	return orderResult(m.Called(ctx, cmd))
}

type MockDeliveryMarker struct{ mock.Mock }

func (m *MockDeliveryMarker) Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error) {
	return orderResult(m.Called(ctx, cmd))
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderGetter struct{ mock.Mock }

func (m *MockOrderGetter) Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error) {
	return orderResult(m.Called(ctx, query))
}

type MockShippingGetter struct{ mock.Mock }

func (m *MockShippingGetter) Handle(
	ctx context.Context,
	query queries.GetShippingQuery,
) (*queries.GetShippingQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.GetShippingQueryResponse), args.Error(1)
}
