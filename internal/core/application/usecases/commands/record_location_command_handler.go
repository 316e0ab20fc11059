package commands

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/tracking"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

type RecordLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	clock      ports.Clock
}

func NewRecordLocationCommandHandler(uowFactory LocationUoWFactory, clock ports.Clock) RecordLocationCommandHandler {
	return RecordLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RecordLocationCommandHandler) Handle(ctx context.Context, cmd RecordLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := services.Authorize(cmd.Actor(), services.ActionRecordLocation); err != nil {
		return err
	}

	point, err := tracking.NewPoint(cmd.Actor().ID, cmd.Location(), cmd.AccuracyM(), cmd.OrderID(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().Add(ctx, point); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
