package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

func expectStatusWrite(
	t *testing.T,
	o *order.Order,
	expected order.Status,
	resulting string,
) (*MockOrderUoWFactory, *MockOrderRepository, *MockUoW) {
	t.Helper()
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o, expected).Return(nil).Once()
	orderRepo.On("AppendHistory", ctx, mock.MatchedBy(func(e order.HistoryEntry) bool {
		return e.OrderID == o.ID() && e.Status == resulting
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, orderRepo, uow
}

func TestUpdateOrderStatusCommandHandler_Handle_ShipperWalksThroughDelivery(t *testing.T) {
	o := restoredOrder(t, 100, order.PickedUp, ptr(shipperID))

	factory, orderRepo, uow := expectStatusWrite(t, o, order.PickedUp, "in_transit")
	handler := commands.NewUpdateOrderStatusCommandHandler(factory, testClock, false, discardLogger())

	cmd, err := commands.NewUpdateOrderStatusCommand(shipperActor(), 100, "in_transit", "on the way", "")
	require.NoError(t, err)
	require.NoError(t, handler.Handle(t.Context(), cmd))
	assert.Equal(t, order.InTransit, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	factory, _, _ = expectStatusWrite(t, o, order.InTransit, "delivered")
	handler = commands.NewUpdateOrderStatusCommandHandler(factory, testClock, false, discardLogger())

	cmd, err = commands.NewUpdateOrderStatusCommand(shipperActor(), 100, "delivered", "", "https://cdn/p.jpg")
	require.NoError(t, err)
	require.NoError(t, handler.Handle(t.Context(), cmd))
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, "https://cdn/p.jpg", o.ProofImage())
}

func TestUpdateOrderStatusCommandHandler_Handle_SkippingPickupIsRejected(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, 100, order.Assigned, ptr(shipperID))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, int64(100)).Return(o, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(shipperActor(), 100, "in_transit", "", "")
	require.NoError(t, err)

	err = commands.NewUpdateOrderStatusCommandHandler(factory, testClock, false, discardLogger()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Assigned, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_OtherShippersOrder(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, 100, order.Assigned, ptr(int64(99)))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, int64(100)).Return(o, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(shipperActor(), 100, "picked_up", "", "")
	require.NoError(t, err)

	err = commands.NewUpdateOrderStatusCommandHandler(factory, testClock, false, discardLogger()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestUpdateOrderStatusCommandHandler_Handle_ProofRequiredOnDelivery(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, 100, order.InTransit, ptr(shipperID))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, int64(100)).Return(o, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(shipperActor(), 100, "delivered", "", "")
	require.NoError(t, err)

	err = commands.NewUpdateOrderStatusCommandHandler(factory, testClock, true, discardLogger()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, order.InTransit, o.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_ShipperCannotCancel(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(shipperActor(), 100, "cancelled", "", "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	err = commands.NewUpdateOrderStatusCommandHandler(factory, testClock, false, discardLogger()).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_AdminOverride(t *testing.T) {
	o := restoredOrder(t, 100, order.InTransit, ptr(shipperID))

	factory, orderRepo, _ := expectStatusWrite(t, o, order.InTransit, "cancelled")
	cmd, err := commands.NewUpdateOrderStatusCommand(adminActor, 100, "cancelled", "customer request", "")
	require.NoError(t, err)

	err = commands.NewUpdateOrderStatusCommandHandler(factory, testClock, false, discardLogger()).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Nil(t, o.Shipper())
	orderRepo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CustomerIsDenied(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.Actor{ID: 7, Role: kernel.RoleCustomer}, 100, "delivered", "", "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	err = commands.NewUpdateOrderStatusCommandHandler(factory, testClock, false, discardLogger()).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestNewUpdateOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(shipperActor(), 0, "teleported", "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
