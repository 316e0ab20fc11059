// Package postgres provides the GORM-based Unit of Work and database setup.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it run inside that transaction once Begin was called, and against the
// plain connection otherwise. Order aggregates touched through the order
// repository are tracked, and on Commit their pending events are written to
// the outbox inside the same transaction, so a state change and its event
// are stored together or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o, order.Pending); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is single-goroutine; concurrent operations use
// separate instances.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/locationrepo"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/orderrepo"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/outboxrepo"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/userrepo"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// eventSource is implemented by aggregates that raise domain events.
type eventSource interface {
	PullEvents() []order.ChangedEvent
}

type trackedAggregate struct {
	ID        int64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction and no tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and the aggregates changed in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewInfrastructureError("begin transaction", tx.Error)
	}
	uow.tx = tx
	return nil
}

// Commit writes the outbox messages of all tracked aggregates and commits.
// If writing the outbox fails the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushEvents(ctx); err != nil {
		_ = uow.tx.Rollback().Error
		uow.reset()
		return err
	}

	err := uow.tx.Commit().Error
	uow.reset()
	if err != nil {
		return errs.NewInfrastructureError("commit transaction", err)
	}
	return nil
}

// Rollback discards the transaction. Without an open transaction it returns
// gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return locationrepo.NewGormLocationRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate whose events are flushed on Commit.
// An aggregate tracked twice is drained once, on the first pull.
func (uow *GormUnitOfWork) TrackAggregate(id int64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
}

func (uow *GormUnitOfWork) flushEvents(ctx context.Context) error {
	var messages []ports.OutboxMessage
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		for _, event := range source.PullEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("marshal %s event: %w", event.Type, err)
			}
			messages = append(messages, ports.OutboxMessage{
				ID:          event.ID,
				AggregateID: tracked.ID,
				EventType:   event.Type,
				Payload:     payload,
				CreatedAt:   event.OccurredAt,
			})
		}
	}

	return uow.OutboxRepository().Add(ctx, messages...)
}
