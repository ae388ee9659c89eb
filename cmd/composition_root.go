package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "artmarket/internal/adapters/in/http"
	"artmarket/internal/adapters/out/identity"
	"artmarket/internal/adapters/out/postgres"
	"artmarket/internal/adapters/out/postgres/partnerrepo"
	"artmarket/internal/adapters/out/postgres/profilerepo"
	"artmarket/internal/core/application/usecases/commands"
	"artmarket/internal/core/application/usecases/queries"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
	"artmarket/internal/jobs"
)

// CompositionRoot wires adapters into use case handlers. Each Create method
// hands out a fully assembled handler; shared infrastructure (DB, publisher,
// logger) lives here once.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.DeliveryEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.DeliveryEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDeliveryCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f,
		partnerrepo.NewGormPartnerRepository(c.gormDB), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateMarkOutForDeliveryCommandHandler() commands.MarkOutForDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOutForDeliveryCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateOverrideDeliveryStatusCommandHandler() commands.OverrideDeliveryStatusCommandHandler {
	var f commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideDeliveryStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveryInfoQueryHandler() queries.GetDeliveryInfoQueryHandler {
	resolver := services.NewAddressResolver(profilerepo.NewGormProfileRepository(c.gormDB))
	return queries.NewGetDeliveryInfoQueryHandler(c.gormDB, resolver, c.logger)
}

func (c *CompositionRoot) CreateListDeliveryRequestsQueryHandler() queries.ListDeliveryRequestsQueryHandler {
	return queries.NewListDeliveryRequestsQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateIdentityVerifier() ports.IdentityVerifier {
	return identity.NewClient(c.configs.IdentityServiceURL, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRequestDeliveryCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreateMarkOutForDeliveryCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateOverrideDeliveryStatusCommandHandler(),
		c.CreateGetDeliveryInfoQueryHandler(),
		c.CreateListDeliveryRequestsQueryHandler(),
		c.CreateIdentityVerifier(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(threshold time.Duration) *jobs.JobManager {
	lister := c.CreateListDeliveryRequestsQueryHandler()
	return jobs.NewJobManager(lister, c.configs.StaleReminderSchedule, threshold, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}
