package queries

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists a shipper's orders in assigned, picked_up or in_transit.
type GetActiveOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(actor kernel.Actor) GetActiveOrdersQuery {
	return GetActiveOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
