package commands

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrRecordLocationCommandIsNotConstructed = errors.New(
	"RecordLocationCommand must be created via NewRecordLocationCommand constructor",
)

// RecordLocationCommand is a single GPS fix reported by a shipper.
type RecordLocationCommand struct {
	actor     kernel.Actor
	location  kernel.Location
	accuracyM *float64
	orderID   *int64

	guard guard.ConstructorGuard
}

func NewRecordLocationCommand(
	actor kernel.Actor,
	latitude, longitude float64,
	accuracyM *float64,
	orderID *int64,
) (RecordLocationCommand, error) {
	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return RecordLocationCommand{}, err
	}

	return RecordLocationCommand{
		actor:     actor,
		location:  location,
		accuracyM: accuracyM,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationCommandIsNotConstructed)
}

func (c RecordLocationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RecordLocationCommand) Location() kernel.Location {
	return c.location
}

func (c RecordLocationCommand) AccuracyM() *float64 {
	return c.accuracyM
}

func (c RecordLocationCommand) OrderID() *int64 {
	return c.orderID
}
