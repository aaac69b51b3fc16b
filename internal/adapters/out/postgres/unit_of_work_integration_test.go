package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "checkout/internal/adapters/out/postgres"
	"checkout/internal/adapters/out/postgres/migrations"
	"checkout/internal/adapters/out/postgres/outboxrepo"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(dsn))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines, outbox").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Begin twice is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesEventsToOutbox() {
	ctx := context.Background()
	o := newTestOrder(suite.T())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(o.DomainEvents(), "events are cleared once stored")

	messages, err := suite.factory.Create().OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(string(order.EventOrderCreated), messages[0].EventType)
	suite.True(messages[0].AggregateID.IsEqual(o.ID()))

	var payload outboxrepo.EventPayload
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &payload))
	suite.Equal(o.ID().String(), payload.OrderID)
	suite.Equal("pending", payload.Status)
	suite.Equal("249.90", payload.GrandTotal)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_EventsFollowUpdatesInOrder() {
	ctx := context.Background()
	o := newTestOrder(suite.T())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = loaded.ConfirmPayment("txn_1", "mock", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Ship("", "", time.Now().UTC()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	messages, err := suite.factory.Create().OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 3)
	suite.Equal(string(order.EventOrderCreated), messages[0].EventType)
	suite.Equal(string(order.EventPaymentConfirmed), messages[1].EventType)
	suite.Equal(string(order.EventOrderShipped), messages[2].EventType)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndEvents() {
	ctx := context.Background()
	o := newTestOrder(suite.T())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err)

	messages, err := suite.factory.Create().OutboxRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(messages)
	suite.Len(o.DomainEvents(), 1, "rolled back events stay on the aggregate")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutbox_MarkPublishedHidesMessages() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newTestOrder(suite.T())))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newTestOrder(suite.T())))
	suite.Require().NoError(uow.Commit(ctx))

	outbox := suite.factory.Create().OutboxRepository()
	messages, err := outbox.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	suite.Less(messages[0].ID, messages[1].ID)

	suite.Require().NoError(outbox.MarkPublished(ctx, []int64{messages[0].ID}, time.Now().UTC()))

	remaining, err := outbox.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(messages[1].ID, remaining[0].ID)
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	line, err := order.NewLine("p1", "MAT-1", "Mug", kernel.MustMoney("100"), 2, "")
	if err != nil {
		t.Fatal(err)
	}
	amounts, err := order.NewAmounts(kernel.MustMoney("200"), kernel.MustMoney("49.9"), kernel.ZeroMoney, kernel.ZeroMoney)
	if err != nil {
		t.Fatal(err)
	}
	address, err := kernel.NewAddressSnapshot("Home", "Street 1", "Istanbul", "", "")
	if err != nil {
		t.Fatal(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{line}, amounts, address, "", time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
