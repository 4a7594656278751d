package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"radiopharm/internal/core/application/usecases/commands"
	"radiopharm/internal/core/domain/model/order"
	"radiopharm/internal/core/ports"
	"radiopharm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	placedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	target := testOrder(t, 42, order.Pending, placedAt)

	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Confirmed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	clinicRepo := new(MockClinicRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(target, nil).Once(),
		orderRepo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("ClinicRepository").Return(clinicRepo).Once(),
		clinicRepo.On("Get", ctx, int64(1)).Return(testClinic(t, 1), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockEventSink)
	sink.On("PublishStatusNotification", ctx, mock.MatchedBy(func(n ports.StatusNotification) bool {
		return n.OrderID == 42 && n.Status == "confirmed" && n.OccurredAt.Equal(now)
	})).Return(nil).Once()
	sink.On("RequestStatusEmail", ctx, mock.MatchedBy(func(e ports.StatusEmail) bool {
		return e.Status == "confirmed" && e.RecipientEmail == "nuclear@stmary.example"
	})).Return(nil).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, sink, fixedClock{now}, slog.Default())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Confirmed, updated.Status())
	require.NotNil(t, updated.ConfirmedAt())
	assert.Equal(t, now, *updated.ConfirmedAt())

	uow.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SkippedMilestonesBackfilled(t *testing.T) {
	ctx := t.Context()
	placedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 3, 16, 0, 0, 0, time.UTC)
	target := testOrder(t, 42, order.Pending, placedAt)

	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(42)).Return(target, nil).Once()
	orderRepo.On("Update", ctx, target).Return(nil).Once()
	clinicRepo := new(MockClinicRepository)
	clinicRepo.On("Get", ctx, int64(1)).Return(testClinic(t, 1), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ClinicRepository").Return(clinicRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, silentEventSink{}, fixedClock{now}, slog.Default())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// pending -> delivered fills every intermediate milestone with now
	require.NotNil(t, updated.ConfirmedAt())
	require.NotNil(t, updated.ShippedAt())
	require.NotNil(t, updated.OutForDeliveryAt())
	require.NotNil(t, updated.DeliveredAt())
	assert.Equal(t, now, *updated.ConfirmedAt())
	assert.Equal(t, now, *updated.DeliveredAt())
	assert.Nil(t, updated.CancelledAt())
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	placedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	target := testOrder(t, 42, order.Shipped, placedAt)

	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Confirmed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(42)).Return(target, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, silentEventSink{}, fixedClock{time.Now()}, slog.Default())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.Shipped, target.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(404, order.Confirmed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(404)).
		Return(nil, errs.NewObjectNotFoundError("order id", int64(404))).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, silentEventSink{}, fixedClock{time.Now()}, slog.Default())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelSetsOnlyCancelledAt(t *testing.T) {
	ctx := t.Context()
	placedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC)
	target := testOrder(t, 42, order.Pending, placedAt)

	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(42)).Return(target, nil).Once()
	orderRepo.On("Update", ctx, target).Return(nil).Once()
	clinicRepo := new(MockClinicRepository)
	clinicRepo.On("Get", ctx, int64(1)).Return(testClinic(t, 1), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ClinicRepository").Return(clinicRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, silentEventSink{}, fixedClock{now}, slog.Default())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Cancelled, updated.Status())
	require.NotNil(t, updated.CancelledAt())
	assert.Equal(t, now, *updated.CancelledAt())
	assert.Nil(t, updated.ConfirmedAt())
	assert.Nil(t, updated.DeliveredAt())
}
