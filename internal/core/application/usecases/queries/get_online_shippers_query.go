package queries

import (
	"errors"
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrGetOnlineShippersQueryIsNotConstructed = errors.New(
	"GetOnlineShippersQuery must be created via NewGetOnlineShippersQuery constructor",
)

type GetOnlineShippersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetOnlineShippersQuery(actor kernel.Actor) GetOnlineShippersQuery {
	return GetOnlineShippersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetOnlineShippersQuery) Validate() error {
	return q.guard.Validate(ErrGetOnlineShippersQueryIsNotConstructed)
}

func (q GetOnlineShippersQuery) Actor() kernel.Actor {
	return q.actor
}

// ShipperView is an online shipper with their current workload.
type ShipperView struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	LastOnline   *time.Time `db:"last_online"`
	ActiveOrders int64      `db:"active_orders"`
}
