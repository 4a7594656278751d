package postgres_test

import (
	"context"
	"testing"
	"time"

	"radiopharm/internal/adapters/out/postgres"
	"radiopharm/internal/adapters/out/postgres/clinicrepo"
	"radiopharm/internal/adapters/out/postgres/cyclerepo"
	"radiopharm/internal/adapters/out/postgres/orderrepo"
	"radiopharm/internal/adapters/out/postgres/reactorrepo"
	"radiopharm/internal/core/domain/model/clinic"
	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/core/domain/model/reactor"
	"radiopharm/internal/core/domain/model/reactorcycle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across
// the aggregate repositories: a rolled back placement leaves neither the
// order nor the mass debit behind.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&clinicrepo.ClinicDTO{},
		&reactorrepo.ReactorDTO{},
		&cyclerepo.ReactorCycleDTO{},
		&orderrepo.OrderDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, reactor_cycles, reactors, clinics").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCatalogue(ctx context.Context) *reactorcycle.ReactorCycle {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	placingClinic, err := clinic.NewClinic("St. Mary Hospital", "nuclear@stmary.example")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ClinicRepository().Add(ctx, placingClinic))

	owningReactor, err := reactor.NewReactor("TRIGA-II")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ReactorRepository().Add(ctx, owningReactor))

	mass, err := kernel.DosageFromString("30")
	suite.Require().NoError(err)
	window, err := kernel.NewDateWindow(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	cycle, err := reactorcycle.NewReactorCycle("CYC-2026-09A", owningReactor.ID(), mass, window)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ReactorCycleRepository().Add(ctx, cycle))

	suite.Require().NoError(uow.Commit(ctx))
	return cycle
}

func (suite *UnitOfWorkIntegrationTestSuite) placeOrder(
	ctx context.Context,
	cycleID int64,
	commit bool,
) error {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cycle, err := uow.ReactorCycleRepository().GetForUpdate(ctx, cycleID)
	if err != nil {
		return err
	}

	perElbow, err := kernel.DosageFromString("7.5")
	if err != nil {
		return err
	}
	injectionDate := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	placed, err := order.NewOrder(1, 1, cycleID, 2, perElbow, injectionDate, "",
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}

	if err = cycle.Allocate(injectionDate, placed.TotalDosage()); err != nil {
		return err
	}
	if err = uow.ReactorCycleRepository().Update(ctx, cycle); err != nil {
		return err
	}
	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	if !commit {
		return nil
	}
	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsDebitAndOrder() {
	ctx := context.Background()
	cycle := suite.seedCatalogue(ctx)

	suite.Require().NoError(suite.placeOrder(ctx, cycle.ID(), true))

	loaded, err := cyclerepo.NewGormReactorCycleRepository(suite.db).Get(ctx, cycle.ID())
	suite.Require().NoError(err)
	remaining, err := kernel.DosageFromString("15")
	suite.Require().NoError(err)
	suite.True(loaded.Mass().IsEqual(remaining))

	var orderCount int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Equal(int64(1), orderCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNothingBehind() {
	ctx := context.Background()
	cycle := suite.seedCatalogue(ctx)

	suite.Require().NoError(suite.placeOrder(ctx, cycle.ID(), false))

	loaded, err := cyclerepo.NewGormReactorCycleRepository(suite.db).Get(ctx, cycle.ID())
	suite.Require().NoError(err)
	initial, err := kernel.DosageFromString("30")
	suite.Require().NoError(err)
	suite.True(loaded.Mass().IsEqual(initial))

	var orderCount int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Zero(orderCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_ReturnsInvalidTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
