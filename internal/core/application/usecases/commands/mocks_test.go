package commands_test

import (
	"context"
	"testing"
	"time"

	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/domain/model/clinic"
	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/core/domain/model/reactor"
	"radiopharm/internal/core/domain/model/reactorcycle"
	"radiopharm/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBatch(ctx context.Context, ids []int64) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockReactorCycleRepository struct{ mock.Mock }

func (m *MockReactorCycleRepository) Add(ctx context.Context, c *reactorcycle.ReactorCycle) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockReactorCycleRepository) Update(ctx context.Context, c *reactorcycle.ReactorCycle) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockReactorCycleRepository) Get(ctx context.Context, id int64) (*reactorcycle.ReactorCycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reactorcycle.ReactorCycle), args.Error(1)
}

func (m *MockReactorCycleRepository) GetForUpdate(ctx context.Context, id int64) (*reactorcycle.ReactorCycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reactorcycle.ReactorCycle), args.Error(1)
}

func (m *MockReactorCycleRepository) GetAll(ctx context.Context) ([]*reactorcycle.ReactorCycle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reactorcycle.ReactorCycle), args.Error(1)
}

func (m *MockReactorCycleRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClinicRepository struct{ mock.Mock }

func (m *MockClinicRepository) Add(ctx context.Context, c *clinic.Clinic) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClinicRepository) Get(ctx context.Context, id int64) (*clinic.Clinic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic.Clinic), args.Error(1)
}

type MockReactorRepository struct{ mock.Mock }

func (m *MockReactorRepository) Add(ctx context.Context, r *reactor.Reactor) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReactorRepository) Get(ctx context.Context, id int64) (*reactor.Reactor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reactor.Reactor), args.Error(1)
}

func (m *MockReactorRepository) GetByName(ctx context.Context, name string) (*reactor.Reactor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reactor.Reactor), args.Error(1)
}

// MockUoW implements every unit of work interface in this package, so
// each test wires only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ReactorCycleRepository() ports.ReactorCycleRepository {
	args := m.Called()
	return args.Get(0).(ports.ReactorCycleRepository)
}

func (m *MockUoW) ClinicRepository() ports.ClinicRepository {
	args := m.Called()
	return args.Get(0).(ports.ClinicRepository)
}

func (m *MockUoW) ReactorRepository() ports.ReactorRepository {
	args := m.Called()
	return args.Get(0).(ports.ReactorRepository)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockCycleUoWFactory struct{ mock.Mock }

func (m *MockCycleUoWFactory) Create() commands.CycleUoW {
	args := m.Called()
	return args.Get(0).(commands.CycleUoW)
}

type MockCycleAdminUoWFactory struct{ mock.Mock }

func (m *MockCycleAdminUoWFactory) Create() commands.CycleAdminUoW {
	args := m.Called()
	return args.Get(0).(commands.CycleAdminUoW)
}

type MockEventSink struct{ mock.Mock }

func (m *MockEventSink) PublishStatusNotification(ctx context.Context, n ports.StatusNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockEventSink) RequestStatusEmail(ctx context.Context, e ports.StatusEmail) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// silentEventSink accepts everything; for tests that do not assert on
// emitted events.
type silentEventSink struct{}

func (silentEventSink) PublishStatusNotification(context.Context, ports.StatusNotification) error {
	return nil
}

func (silentEventSink) RequestStatusEmail(context.Context, ports.StatusEmail) error {
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testClinic(t *testing.T, id int64) *clinic.Clinic {
	t.Helper()
	c, err := clinic.RestoreClinic(id, "St. Mary Hospital", "nuclear@stmary.example")
	require.NoError(t, err)
	return c
}

func testReactor(t *testing.T, id int64, name string) *reactor.Reactor {
	t.Helper()
	r, err := reactor.RestoreReactor(id, name)
	require.NoError(t, err)
	return r
}

func testCycle(t *testing.T, id, reactorID int64, mass string, start, end time.Time) *reactorcycle.ReactorCycle {
	t.Helper()
	m, err := kernel.DosageFromString(mass)
	require.NoError(t, err)
	window, err := kernel.NewDateWindow(start, end)
	require.NoError(t, err)
	c, err := reactorcycle.RestoreReactorCycle(id, "CYC-2026-08", reactorID, m, window,
		true, false, reactorcycle.ArchiveNone)
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, id int64, status order.Status, placedAt time.Time) *order.Order {
	t.Helper()
	perElbow, err := kernel.DosageFromString("7.5")
	require.NoError(t, err)
	total, err := perElbow.MulUnits(2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, 1, 1, 1, 2, perElbow, total,
		placedAt.AddDate(0, 0, 3), "", status, placedAt, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return o
}
