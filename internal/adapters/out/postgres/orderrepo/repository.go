package orderrepo

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// ActiveShipperIndex is the partial unique index over orders(shipper_id)
// restricted to active statuses.
const ActiveShipperIndex = "ux_orders_active_shipper"

const uniqueViolation = "23505"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects aggregates whose pending events are written to
// the outbox on commit.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and stamps the generated id onto the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError("insert order", err)
	}
	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns in one statement guarded by the expected
// status. Zero affected rows means another writer moved the order first, or
// the order is gone.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID(), expected.String()).
		Updates(mutableColumns(aggregate))
	if result.Error != nil {
		return translateWriteError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ErrOrderStatusChanged
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewInfrastructureError("get order", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) CountActiveByShipper(ctx context.Context, shipperID int64) (int64, error) {
	active := make([]string, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		active = append(active, s.String())
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("shipper_id = ? AND status IN ?", shipperID, active).
		Count(&count).Error
	if err != nil {
		return 0, errs.NewInfrastructureError("count active orders", err)
	}
	return count, nil
}

func (r *GormOrderRepository) AppendHistory(ctx context.Context, entry order.HistoryEntry) error {
	dto := historyFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewInfrastructureError("append order history", err)
	}
	return nil
}

// translateWriteError maps the active-shipper index violation to a domain
// conflict and wraps everything else as infrastructure failure.
func translateWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == ActiveShipperIndex {
		return ports.ErrShipperAlreadyBusy
	}
	return errs.NewInfrastructureError(op, err)
}
