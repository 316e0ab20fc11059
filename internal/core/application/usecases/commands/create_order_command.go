package commands

import (
	"errors"
	"math"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, 0, pickup, delivery, 5.2, "food", weight, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPricingEngine(), clock, logger)
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor              kernel.Actor
	customerID         int64
	pickup             order.Stop
	delivery           order.Stop
	distanceKm         float64
	category           order.Category
	categoryRecognized bool
	rawCategory        string
	weight             order.Weight
	notes              string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates order input. customerID may be zero when
// the actor is the customer; an unknown category falls back to regular.
func NewCreateOrderCommand(
	actor kernel.Actor,
	customerID int64,
	pickup, delivery order.Stop,
	distanceKm float64,
	category string,
	weight order.Weight,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:       actor,
		rawCategory: category,
		guard:       guard.NewConstructorGuard(),
	}
	cmd.category, cmd.categoryRecognized = order.ParseCategory(category)

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setStops(pickup, delivery),
		cmd.setDistance(distanceKm),
		cmd.setWeight(weight),
		cmd.setNotes(notes),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

func (c CreateOrderCommand) Pickup() order.Stop {
	return c.pickup
}

func (c CreateOrderCommand) Delivery() order.Stop {
	return c.delivery
}

// DistanceKm returns the client-supplied road distance.
func (c CreateOrderCommand) DistanceKm() float64 {
	return c.distanceKm
}

func (c CreateOrderCommand) Category() order.Category {
	return c.category
}

func (c CreateOrderCommand) Weight() order.Weight {
	return c.weight
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID == 0 && c.actor.IsCustomer() {
		customerID = c.actor.ID
	}
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setStops(pickup, delivery order.Stop) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.delivery = delivery
	return nil
}

func (c *CreateOrderCommand) setDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 || distanceKm > order.MaxDistanceKm {
		return errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, order.MaxDistanceKm)
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *CreateOrderCommand) setWeight(weight order.Weight) error {
	if err := weight.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("weight", err)
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setNotes(notes string) error {
	if err := order.ValidateNotes(notes); err != nil {
		return err
	}

	c.notes = notes
	return nil
}
