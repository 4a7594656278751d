package cmd

import (
	"log/slog"
	"time"

	"radiopharm/internal/adapters/in/http"
	"radiopharm/internal/adapters/out/postgres"
	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/application/usecases/queries"
	"radiopharm/internal/core/domain/services"
	"radiopharm/internal/core/ports"
	"radiopharm/internal/jobs"

	"gorm.io/gorm"
)

// systemClock is the production Clock implementation.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	eventSink  ports.EventSink
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, eventSink ports.EventSink, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventSink:  eventSink,
		clock:      systemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.eventSink, c.clock, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.eventSink, c.clock, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusBulkCommandHandler() commands.ChangeOrderStatusBulkCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusBulkCommandHandler(f, c.eventSink, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRunArchivalSweepCommandHandler() commands.RunArchivalSweepCommandHandler {
	var f commands.CycleUoWFactory = FuncCycleUoWFactory(func() commands.CycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunArchivalSweepCommandHandler(f, services.NewArchivalClassifier(), c.logger)
}

func (c *CompositionRoot) CreateCreateReactorCycleCommandHandler() commands.CreateReactorCycleCommandHandler {
	var f commands.CycleAdminUoWFactory = FuncCycleAdminUoWFactory(func() commands.CycleAdminUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReactorCycleCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateReactorCycleCommandHandler() commands.UpdateReactorCycleCommandHandler {
	var f commands.CycleAdminUoWFactory = FuncCycleAdminUoWFactory(func() commands.CycleAdminUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReactorCycleCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRemoveReactorCycleCommandHandler() commands.RemoveReactorCycleCommandHandler {
	var f commands.CycleUoWFactory = FuncCycleUoWFactory(func() commands.CycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveReactorCycleCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCheckAvailabilityQueryHandler() queries.CheckAvailabilityQueryHandler {
	return queries.NewCheckAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArchivedCyclesQueryHandler() queries.GetArchivedCyclesQueryHandler {
	return queries.NewGetArchivedCyclesQueryHandler(
		c.gormDB, c.CreateRunArchivalSweepCommandHandler(), c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateChangeOrderStatusBulkCommandHandler(),
		c.CreateCreateReactorCycleCommandHandler(),
		c.CreateUpdateReactorCycleCommandHandler(),
		c.CreateRemoveReactorCycleCommandHandler(),
		c.CreateCheckAvailabilityQueryHandler(),
		c.CreateGetArchivedCyclesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRunArchivalSweepCommandHandler(), c.clock, c.logger)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncCycleUoWFactory func() commands.CycleUoW

func (f FuncCycleUoWFactory) Create() commands.CycleUoW {
	return f()
}

type FuncCycleAdminUoWFactory func() commands.CycleAdminUoW

func (f FuncCycleAdminUoWFactory) Create() commands.CycleAdminUoW {
	return f()
}
