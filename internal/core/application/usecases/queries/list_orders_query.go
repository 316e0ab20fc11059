package queries

import (
	"errors"
	"strings"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to the actor, optionally filtered by status.
type ListOrdersQuery struct {
	actor  kernel.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status as "no filter".
func NewListOrdersQuery(actor kernel.Actor, status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &parsed
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Status returns the filter, or nil when every status is wanted.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}
