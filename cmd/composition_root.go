package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/keylock"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Command handlers
// share one entity lock manager so cross-request serialization actually
// serializes.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	locks      *keylock.Manager
}

// NewCompositionRoot creates the application object graph root.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      keylock.NewManager(config.LockTimeout),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.dispatchUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateBuildBatchesCommandHandler() commands.BuildBatchesCommandHandler {
	return commands.NewBuildBatchesCommandHandler(c.batchUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.dispatchUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateStartBatchCommandHandler() commands.StartBatchCommandHandler {
	return commands.NewStartBatchCommandHandler(c.dispatchUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateMarkArrivedCommandHandler() commands.MarkArrivedCommandHandler {
	return commands.NewMarkArrivedCommandHandler(c.dispatchUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.dispatchUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateVerifyOTPCommandHandler() commands.VerifyOTPCommandHandler {
	return commands.NewVerifyOTPCommandHandler(c.deliveryUoWFactory(), c.locks, c.config.OTPTTL)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.paymentUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateSettleCommandHandler() commands.SettleCommandHandler {
	return commands.NewSettleCommandHandler(c.settlementUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodayBatchesQueryHandler() queries.GetTodayBatchesQueryHandler {
	return queries.NewGetTodayBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchOrdersQueryHandler() queries.GetBatchOrdersQueryHandler {
	return queries.NewGetBatchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCashLedgerQueryHandler() queries.GetCashLedgerQueryHandler {
	return queries.NewGetCashLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateVerifyPaymentQueryHandler() queries.VerifyPaymentQueryHandler {
	return queries.NewVerifyPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	defaults := httpin.BatchDefaults{
		Algorithm: c.config.BatchAlgorithm,
		MaxWeight: c.config.BatchMaxWeight,
		MaxOrders: c.config.BatchMaxOrders,
	}

	return httpin.NewServer(
		defaults,
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateBuildBatchesCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateStartBatchCommandHandler(),
		c.CreateMarkArrivedCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateVerifyOTPCommandHandler(),
		c.CreateRecordPaymentCommandHandler(),
		c.CreateRefundPaymentCommandHandler(),
		c.CreateCreateDriverCommandHandler(),
		c.CreateUpdateDriverLocationCommandHandler(),
		c.CreateSettleCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetTodayBatchesQueryHandler(),
		c.CreateGetBatchOrdersQueryHandler(),
		c.CreateGetDriversQueryHandler(),
		c.CreateGetCashLedgerQueryHandler(),
		c.CreateVerifyPaymentQueryHandler(),
		c.CreateGetTrackingQueryHandler(),
	)
}

// CreateJobManager builds the scheduled jobs behind one start/stop surface.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	autoBatch := jobs.NewAutoBatchJob(
		c.CreateBuildBatchesCommandHandler(),
		c.config.AutoBatchSchedule,
		c.config.BatchAlgorithm,
		c.config.BatchMaxWeight,
		c.config.BatchMaxOrders,
		logger,
	)
	return jobs.NewJobManager(autoBatch)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW { return f() }

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW { return f() }

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW { return f() }

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW { return f() }

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW { return f() }

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW { return f() }
