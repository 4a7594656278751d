package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/domain/model/kernel"
	"radiopharm/internal/core/domain/model/reactorcycle"
	"radiopharm/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sweepCycle(t *testing.T, id int64, enabled, archived bool, status reactorcycle.ArchiveStatus,
	start, end time.Time,
) *reactorcycle.ReactorCycle {
	t.Helper()
	mass, err := kernel.DosageFromString("30")
	require.NoError(t, err)
	window, err := kernel.NewDateWindow(start, end)
	require.NoError(t, err)
	c, err := reactorcycle.RestoreReactorCycle(id, "CYC-"+window.String(), 1, mass, window,
		enabled, archived, status)
	require.NoError(t, err)
	return c
}

func TestRunArchivalSweepCommandHandler_Handle_UpdatesOnlyChangedCycles(t *testing.T) {
	ctx := t.Context()
	today := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	past := today.AddDate(0, 0, -10)
	future := today.AddDate(0, 0, 10)

	active := sweepCycle(t, 1, true, false, reactorcycle.ArchiveNone, past, future)
	expired := sweepCycle(t, 2, true, false, reactorcycle.ArchiveNone, past, today.AddDate(0, 0, -1))
	disabled := sweepCycle(t, 3, false, false, reactorcycle.ArchiveNone, past, future)
	alreadyArchived := sweepCycle(t, 4, false, true, reactorcycle.ArchiveDisabled, past, future)

	cmd, err := commands.NewRunArchivalSweepCommand(today)
	require.NoError(t, err)

	cycleRepo := new(MockReactorCycleRepository)
	cycleRepo.On("GetAll", ctx).
		Return([]*reactorcycle.ReactorCycle{active, expired, disabled, alreadyArchived}, nil).Once()
	cycleRepo.On("Update", ctx, expired).Return(nil).Once()
	cycleRepo.On("Update", ctx, disabled).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ReactorCycleRepository").Return(cycleRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRunArchivalSweepCommandHandler(factory, services.NewArchivalClassifier(), slog.Default())
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, changed)
	assert.Equal(t, reactorcycle.ArchiveExpired, expired.ArchivedStatus())
	assert.Equal(t, reactorcycle.ArchiveDisabled, disabled.ArchivedStatus())
	assert.False(t, active.IsArchived())
	cycleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRunArchivalSweepCommandHandler_Handle_UnarchivesReenabledCycle(t *testing.T) {
	ctx := t.Context()
	today := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)

	// archived as Disabled, since re-enabled, window still open
	revived := sweepCycle(t, 5, true, true, reactorcycle.ArchiveDisabled,
		today.AddDate(0, 0, -5), today.AddDate(0, 0, 5))

	cmd, err := commands.NewRunArchivalSweepCommand(today)
	require.NoError(t, err)

	cycleRepo := new(MockReactorCycleRepository)
	cycleRepo.On("GetAll", ctx).Return([]*reactorcycle.ReactorCycle{revived}, nil).Once()
	cycleRepo.On("Update", ctx, revived).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ReactorCycleRepository").Return(cycleRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRunArchivalSweepCommandHandler(factory, services.NewArchivalClassifier(), slog.Default())
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, changed)
	assert.False(t, revived.IsArchived())
}

func TestRunArchivalSweepCommandHandler_Handle_IdempotentSecondPass(t *testing.T) {
	ctx := t.Context()
	today := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)

	settled := sweepCycle(t, 6, true, true, reactorcycle.ArchiveExpired,
		today.AddDate(0, 0, -20), today.AddDate(0, 0, -10))
	settled.Disable()

	cmd, err := commands.NewRunArchivalSweepCommand(today)
	require.NoError(t, err)

	cycleRepo := new(MockReactorCycleRepository)
	cycleRepo.On("GetAll", ctx).Return([]*reactorcycle.ReactorCycle{settled}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ReactorCycleRepository").Return(cycleRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRunArchivalSweepCommandHandler(factory, services.NewArchivalClassifier(), slog.Default())
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 0, changed)
	cycleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
