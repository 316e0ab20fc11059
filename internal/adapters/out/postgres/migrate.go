package postgres

import (
	"fmt"

	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/locationrepo"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/orderrepo"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/outboxrepo"
	"github.com/FIT-dev-AI/Delivery-app/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// ActiveShipperIndex guarantees at most one active order per shipper.
// orderrepo maps its violation to ports.ErrShipperAlreadyBusy.
const ActiveShipperIndex = orderrepo.ActiveShipperIndex

// Migrate creates or updates all tables and the partial unique index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&locationrepo.PointDTO{},
		&outboxrepo.MessageDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ` + ActiveShipperIndex +
		` ON orders (shipper_id) WHERE status IN ('assigned', 'picked_up', 'in_transit')`).Error
	if err != nil {
		return fmt.Errorf("create %s: %w", ActiveShipperIndex, err)
	}
	return nil
}
