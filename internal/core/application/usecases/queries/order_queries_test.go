package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) ListByOwner(ctx context.Context, ownerID kernel.UUID, page ports.Page) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID, page)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) GetByIDForOwner(ctx context.Context, id, ownerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, ownerID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func newOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	line, err := order.NewLine("p1", "MAT-1", "Mug", kernel.MustMoney("10"), 1, "")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(kernel.MustMoney("10"), kernel.MustMoney("49.9"), kernel.ZeroMoney, kernel.ZeroMoney)
	require.NoError(t, err)
	address, err := kernel.NewAddressSnapshot("", "Street 1", "Ankara", "", "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), owner, []order.Line{line}, amounts, address, "", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestNewListOrdersQuery(t *testing.T) {
	owner := kernel.NewUUID()

	tests := []struct {
		name     string
		page     int
		limit    int
		wantPage ports.Page
		wantErr  error
	}{
		{name: "no paging", page: 0, limit: 0, wantPage: ports.Page{}},
		{name: "first page", page: 1, limit: 20, wantPage: ports.Page{Number: 1, Limit: 20}},
		{name: "max limit", page: 3, limit: 100, wantPage: ports.Page{Number: 3, Limit: 100}},
		{name: "page zero with limit", page: 0, limit: 10, wantErr: errs.ErrValueIsOutOfRange},
		{name: "limit too large", page: 1, limit: 101, wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative limit", page: 1, limit: -1, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewListOrdersQuery(owner, tt.page, tt.limit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, q.Page())
			assert.Equal(t, owner, q.OwnerID())
		})
	}
}

func TestNewListOrdersQuery_InvalidOwner(t *testing.T) {
	_, err := queries.NewListOrdersQuery(kernel.UUID{}, 1, 10)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	orders := []*order.Order{newOrder(t, owner), newOrder(t, owner)}

	reader := new(MockOrderReader)
	reader.On("ListByOwner", ctx, owner, ports.Page{Number: 2, Limit: 5}).Return(orders, nil).Once()

	q, err := queries.NewListOrdersQuery(owner, 2, 5)
	require.NoError(t, err)

	result, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, orders, result)
	reader.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_EmptyIsNotNil(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()

	reader := new(MockOrderReader)
	reader.On("ListByOwner", ctx, owner, ports.Page{}).Return(nil, nil).Once()

	q, _ := queries.NewListOrdersQuery(owner, 0, 0)
	result, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, q)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestListOrdersQueryHandler_Handle_Errors(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	handler := queries.NewListOrdersQueryHandler(reader)

	_, err := handler.Handle(ctx, queries.ListOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)

	owner := kernel.NewUUID()
	reader.On("ListByOwner", ctx, owner, ports.Page{}).Return(nil, errors.New("db down")).Once()
	q, _ := queries.NewListOrdersQuery(owner, 0, 0)
	_, err = handler.Handle(ctx, q)
	require.EqualError(t, err, "db down")
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	o := newOrder(t, owner)

	reader := new(MockOrderReader)
	reader.On("GetByIDForOwner", ctx, o.ID(), owner).Return(o, nil).Once()

	q, err := queries.NewGetOrderQuery(o.ID(), owner)
	require.NoError(t, err)

	result, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, q)

	require.NoError(t, err)
	assert.Same(t, o, result)
}

func TestGetOrderQueryHandler_Handle_AbsentIsNotAnError(t *testing.T) {
	ctx := t.Context()
	id, owner := kernel.NewUUID(), kernel.NewUUID()

	reader := new(MockOrderReader)
	reader.On("GetByIDForOwner", ctx, id, owner).Return(nil, nil).Once()

	q, _ := queries.NewGetOrderQuery(id, owner)
	result, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, q)

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetOrderQuery_Validation(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQueryHandler(new(MockOrderReader)).Handle(t.Context(), queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
