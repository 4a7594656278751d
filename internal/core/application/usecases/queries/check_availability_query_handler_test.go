package queries_test

import (
	"context"
	"testing"
	"time"

	"radiopharm/internal/adapters/out/postgres/cyclerepo"
	"radiopharm/internal/adapters/out/postgres/orderrepo"
	"radiopharm/internal/adapters/out/postgres/reactorrepo"
	"radiopharm/internal/core/application/usecases/queries"
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

// CheckAvailabilityQueryHandlerTestSuite verifies the availability read
// side against a real PostgreSQL container, including the notional
// restore of an excluded order's dosage.
type CheckAvailabilityQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.CheckAvailabilityQueryHandler
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) SetupSuite() {
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
		&reactorrepo.ReactorDTO{},
		&cyclerepo.ReactorCycleDTO{},
		&orderrepo.OrderDTO{},
	))

	suite.handler = queries.NewCheckAvailabilityQueryHandler(db)
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reactors, reactor_cycles, orders").Error)
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) seedReactor(name string) int64 {
	r, err := reactor.NewReactor(name)
	suite.Require().NoError(err)
	suite.Require().NoError(reactorrepo.NewGormReactorRepository(suite.db).Add(context.Background(), r))
	return r.ID()
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) seedCycle(
	name string,
	reactorID int64,
	mass string,
	start, end time.Time,
) *reactorcycle.ReactorCycle {
	m, err := kernel.DosageFromString(mass)
	suite.Require().NoError(err)
	window, err := kernel.NewDateWindow(start, end)
	suite.Require().NoError(err)
	cycle, err := reactorcycle.NewReactorCycle(name, reactorID, m, window)
	suite.Require().NoError(err)
	suite.Require().NoError(cyclerepo.NewGormReactorCycleRepository(suite.db).Add(context.Background(), cycle))
	return cycle
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) TestHandle_ReturnsCoveringCyclesOrderedByID() {
	septemberDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	trigaID := suite.seedReactor("TRIGA-II")
	opalID := suite.seedReactor("OPAL")

	early := suite.seedCycle("CYC-2026-09A", trigaID, "120",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	overlapping := suite.seedCycle("CYC-2026-09B", trigaID, "80",
		time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	suite.seedCycle("CYC-2026-09C", trigaID, "60",
		time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	suite.seedCycle("CYC-OPAL-09A", opalID, "90",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewCheckAvailabilityQuery("TRIGA-II", septemberDate, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(early.ID(), result[0].CycleID)
	suite.Equal("CYC-2026-09A", result[0].Name)
	suite.True(result[0].AvailableMass.IsEqual(early.Mass()))
	suite.True(result[0].Window.IsEqual(early.Window()))
	suite.Equal(overlapping.ID(), result[1].CycleID)
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) TestHandle_SkipsDisabledArchivedAndExhaustedCycles() {
	ctx := context.Background()
	septemberDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	reactorID := suite.seedReactor("TRIGA-II")
	repo := cyclerepo.NewGormReactorCycleRepository(suite.db)

	available := suite.seedCycle("CYC-AVAILABLE", reactorID, "50", start, end)

	disabled := suite.seedCycle("CYC-DISABLED", reactorID, "50", start, end)
	disabled.Disable()
	suite.Require().NoError(repo.Update(ctx, disabled))

	archived := suite.seedCycle("CYC-ARCHIVED", reactorID, "50", start, end)
	suite.Require().NoError(archived.MarkArchived(reactorcycle.ArchiveExpired))
	suite.Require().NoError(repo.Update(ctx, archived))

	exhausted := suite.seedCycle("CYC-EXHAUSTED", reactorID, "50", start, end)
	full, err := kernel.DosageFromString("50")
	suite.Require().NoError(err)
	suite.Require().NoError(exhausted.Allocate(septemberDate, full))
	suite.Require().NoError(repo.Update(ctx, exhausted))

	query, err := queries.NewCheckAvailabilityQuery("TRIGA-II", septemberDate, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(available.ID(), result[0].CycleID)
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) TestHandle_ExcludedOrderDosageIsRestored() {
	ctx := context.Background()
	septemberDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	reactorID := suite.seedReactor("TRIGA-II")
	cycle := suite.seedCycle("CYC-2026-09A", reactorID, "30",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))

	perElbow, err := kernel.DosageFromString("10")
	suite.Require().NoError(err)
	existing, err := order.NewOrder(1, reactorID, cycle.ID(), 2, perElbow,
		septemberDate, "", time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db).Add(ctx, existing))

	suite.Require().NoError(cycle.Allocate(septemberDate, existing.TotalDosage()))
	suite.Require().NoError(cyclerepo.NewGormReactorCycleRepository(suite.db).Update(ctx, cycle))

	plain, err := queries.NewCheckAvailabilityQuery("TRIGA-II", septemberDate, 0)
	suite.Require().NoError(err)
	result, err := suite.handler.Handle(ctx, plain)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	remaining, err := kernel.DosageFromString("10")
	suite.Require().NoError(err)
	suite.True(result[0].AvailableMass.IsEqual(remaining))

	excluding, err := queries.NewCheckAvailabilityQuery("TRIGA-II", septemberDate, existing.ID())
	suite.Require().NoError(err)
	result, err = suite.handler.Handle(ctx, excluding)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	restored, err := kernel.DosageFromString("30")
	suite.Require().NoError(err)
	suite.True(result[0].AvailableMass.IsEqual(restored))
}

func (suite *CheckAvailabilityQueryHandlerTestSuite) TestHandle_UnconstructedQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.CheckAvailabilityQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewCheckAvailabilityQuery constructor")
}

func TestCheckAvailabilityQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CheckAvailabilityQueryHandlerTestSuite))
}
