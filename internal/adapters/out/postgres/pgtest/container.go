// Package pgtest starts a disposable PostgreSQL with the application schema
// for repository integration tests.
package pgtest

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres"
)

type Container struct {
	container *tcpostgres.PostgresContainer
	DB        *postgres.Database
}

// Start runs postgres:15-alpine, connects through postgres.Open and migrates.
func Start(ctx context.Context) (*Container, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	if err := postgres.Migrate(db.Gorm); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Container{container: container, DB: db}, nil
}

// Truncate empties every table and resets identity sequences.
func (c *Container) Truncate() error {
	return c.DB.Gorm.Exec(
		"TRUNCATE TABLE users, orders, order_history, shipper_locations, outbox_messages RESTART IDENTITY",
	).Error
}

func (c *Container) Terminate(ctx context.Context) error {
	_ = c.DB.Close()
	return c.container.Terminate(ctx)
}
