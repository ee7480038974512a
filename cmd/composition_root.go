package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "market/internal/adapters/in/http"
	"market/internal/adapters/out/bcrypt"
	"market/internal/adapters/out/notify"
	"market/internal/adapters/out/postgres"
	"market/internal/core/application/usecases/commands"
	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/user"
	"market/internal/core/ports"
	"market/internal/jobs"
	"market/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics
	hasher     *bcrypt.Hasher
	dispatcher *notify.AsyncDispatcher
	closeFn    func() error
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	transport, closeFn, err := newNotifier(configs, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    m,
		hasher:     bcrypt.NewHasher(configs.BcryptCost),
		dispatcher: notify.NewAsyncDispatcher(transport, configs.Notifier, configs.NotifyTimeout, m.Notifications, logger),
		closeFn:    closeFn,
	}, nil
}

func newNotifier(configs Config, logger *slog.Logger) (ports.Notifier, func() error, error) {
	switch configs.Notifier {
	case NotifierKafka:
		n := notify.NewKafkaNotifier(configs.KafkaBrokers, configs.KafkaTopic)
		return n, n.Close, nil
	case NotifierRabbitMQ:
		n, err := notify.DialRabbitMQ(configs.RabbitMQURL, configs.RabbitMQExchange)
		if err != nil {
			return nil, nil, err
		}
		return n, n.Close, nil
	case NotifierLog, "":
		return notify.NewLogNotifier(logger), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown notifier %q", configs.Notifier)
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserContactCommandHandler() commands.UpdateUserContactCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserContactCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateAddOrderProductsCommandHandler() commands.AddOrderProductsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderProductsCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderProductsCommandHandler() commands.RemoveOrderProductsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderProductsCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeEmptyOrdersCommandHandler() commands.PurgeEmptyOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeEmptyOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderProductsQueryHandler() queries.GetOrderProductsQueryHandler {
	return queries.NewGetOrderProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticator() *httpin.Authenticator {
	finder := httpin.UserFinderFunc(func(ctx context.Context, email string) (*user.User, error) {
		return c.uowFactory.Create().UserRepository().GetByEmail(ctx, email)
	})
	return httpin.NewAuthenticator(finder, c.hasher)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		RegisterUser:        c.CreateRegisterUserCommandHandler(),
		UpdateUserContact:   c.CreateUpdateUserContactCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		AddOrderProducts:    c.CreateAddOrderProductsCommandHandler(),
		RemoveOrderProducts: c.CreateRemoveOrderProductsCommandHandler(),
		GetUser:             c.CreateGetUserQueryHandler(),
		GetUserOrders:       c.CreateGetUserOrdersQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetOrderProducts:    c.CreateGetOrderProductsQueryHandler(),
		GetProducts:         c.CreateGetProductsQueryHandler(),
	})

	return httpin.NewRouter(server, c.CreateAuthenticator(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purgeJob := jobs.NewEmptyOrderPurgeJob(
		c.CreatePurgeEmptyOrdersCommandHandler(),
		c.configs.PurgeSchedule,
		c.configs.PurgeBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(purgeJob)
}

// Close drains pending notifications and releases the notifier transport.
func (c *CompositionRoot) Close() error {
	c.dispatcher.Wait()
	return c.closeFn()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
