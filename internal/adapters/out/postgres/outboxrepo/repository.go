// Package outboxrepo stores domain events awaiting relay in outbox_messages.
package outboxrepo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// lastErrorMaxLen bounds the stored delivery error.
const lastErrorMaxLen = 1000

// MessageDTO is one row of outbox_messages. Rows with a null published_at
// are pending.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID int64      `gorm:"not null;index"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	Attempts    int        `gorm:"not null;default:0"`
	LastError   string     `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, MessageDTO{
			ID:          m.ID,
			AggregateID: m.AggregateID,
			EventType:   m.EventType,
			Payload:     m.Payload,
			Attempts:    m.Attempts,
			CreatedAt:   m.CreatedAt,
		})
	}
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewInfrastructureError("insert outbox messages", err)
	}
	return nil
}

// GetUnpublished locks up to limit pending rows with FOR UPDATE SKIP LOCKED
// so that concurrent relays never pick the same message.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewInfrastructureError("get unpublished outbox messages", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			ID:          dto.ID,
			AggregateID: dto.AggregateID,
			EventType:   dto.EventType,
			Payload:     dto.Payload,
			Attempts:    dto.Attempts,
			CreatedAt:   dto.CreatedAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Update("published_at", at).Error
	if err != nil {
		return errs.NewInfrastructureError("mark outbox message published", err)
	}
	return nil
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	if len(lastError) > lastErrorMaxLen {
		lastError = strings.ToValidUTF8(lastError[:lastErrorMaxLen], "")
	}

	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error
	if err != nil {
		return errs.NewInfrastructureError("mark outbox message failed", err)
	}
	return nil
}
