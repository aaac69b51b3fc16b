package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	httpin "checkout/internal/adapters/in/http"
	"checkout/internal/adapters/out/kafka"
	"checkout/internal/adapters/out/mongo"
	"checkout/internal/adapters/out/mongo/cartstore"
	"checkout/internal/adapters/out/mongo/catalog"
	"checkout/internal/adapters/out/mongo/userdir"
	"checkout/internal/adapters/out/payment"
	"checkout/internal/adapters/out/postgres"
	"checkout/internal/adapters/out/postgres/orderrepo"
	"checkout/internal/adapters/out/redis/catalogcache"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/services"
	"checkout/internal/core/ports"
	"checkout/internal/jobs"
	"checkout/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	mongoDB    *mongodriver.Database
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	catalog    ports.ProductCatalog
	publisher  *kafka.EventPublisher
	redis      *redis.Client
}

func NewCompositionRoot(
	ctx context.Context,
	config Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	mongoDB, err := mongo.ConnectMongoDB(ctx, config.MongoURI, config.MongoDatabase)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		mongoDB:    mongoDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		metrics:    metrics.New(registry),
	}

	c.catalog = catalog.NewMongoProductCatalog(mongoDB)
	if config.RedisAddr != "" {
		c.redis = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		c.catalog = catalogcache.NewCachedProductCatalog(c.catalog, c.redis, config.CatalogCacheTTL, logger)
	} else {
		logger.WarnContext(ctx, "REDIS_ADDR is not set, product lookups are not cached")
	}

	if config.KafkaHost != "" {
		c.publisher = kafka.NewEventPublisher(
			strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic, logger)
	} else {
		logger.WarnContext(ctx, "KAFKA_HOST is not set, outbox events stay unpublished")
	}

	return c, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (*commands.CreateOrderCommandHandler, error) {
	snapshots, err := services.NewCartSnapshotBuilder(c.catalog)
	if err != nil {
		return nil, err
	}
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		cartstore.NewMongoCartStore(c.mongoDB),
		userdir.NewMongoUserDirectory(c.mongoDB),
		snapshots,
		services.NewPricingEngine(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() (*commands.ConfirmPaymentCommandHandler, error) {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), payment.NewMockGateway())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() (*commands.CancelOrderCommandHandler, error) {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() (*commands.ShipOrderCommandHandler, error) {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() (*commands.MarkDeliveredCommandHandler, error) {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() (*commands.CancelStaleOrdersCommandHandler, error) {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() (*commands.RelayOutboxCommandHandler, error) {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderReader(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderReader(c.gormDB))
}

func (c *CompositionRoot) CreateGetShippingQueryHandler() queries.GetShippingQueryHandler {
	return queries.NewGetShippingQueryHandler(c.gormDB)
}

// CreateHTTPHandler builds the echo router with every use case attached.
func (c *CompositionRoot) CreateHTTPHandler(ctx context.Context) (*echo.Echo, error) {
	createOrder, err := c.CreateCreateOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	confirmPayment, err := c.CreateConfirmPaymentCommandHandler()
	if err != nil {
		return nil, err
	}
	cancelOrder, err := c.CreateCancelOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	shipOrder, err := c.CreateShipOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	markDelivered, err := c.CreateMarkDeliveredCommandHandler()
	if err != nil {
		return nil, err
	}

	server, err := httpin.NewServer(httpin.Handlers{
		CreateOrder:    createOrder,
		ConfirmPayment: confirmPayment,
		CancelOrder:    cancelOrder,
		ShipOrder:      shipOrder,
		MarkDelivered:  markDelivered,
		ListOrders:     c.CreateListOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		GetShipping:    c.CreateGetShippingQueryHandler(),
	})
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(ctx, server, httpin.RouterConfig{
		CORSOrigins: c.config.CORSOrigins,
		Metrics:     c.metrics,
		Gatherer:    c.registry,
		Logger:      c.logger,
	})
}

// CreateJobManager schedules the outbox relay when a broker is configured and
// the stale order job when PendingOrderTTL is positive.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var relayJob *jobs.OutboxRelayJob
	if c.publisher != nil {
		relay, err := c.CreateRelayOutboxCommandHandler()
		if err != nil {
			return nil, err
		}
		relayJob = jobs.NewOutboxRelayJob(relay, c.config.OutboxBatchSize,
			c.metrics.OutboxPublished, c.metrics.OutboxFailed, c.logger)
	}

	var staleJob *jobs.StaleOrderJob
	if c.config.PendingOrderTTL > 0 {
		stale, err := c.CreateCancelStaleOrdersCommandHandler()
		if err != nil {
			return nil, err
		}
		staleJob = jobs.NewStaleOrderJob(stale, c.config.PendingOrderTTL, c.metrics.StaleCanceled, c.logger)
	}

	return jobs.NewJobManager(relayJob, staleJob, c.logger), nil
}

// Close releases the broker, cache and document store connections.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var errList []error
	if c.publisher != nil {
		errList = append(errList, c.publisher.Close())
	}
	if c.redis != nil {
		errList = append(errList, c.redis.Close())
	}
	if err := c.mongoDB.Client().Disconnect(ctx); err != nil {
		errList = append(errList, fmt.Errorf("disconnect mongo: %w", err))
	}
	return errors.Join(errList...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
