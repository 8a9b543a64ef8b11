package postgres

import (
	"dispatch/internal/adapters/out/postgres/batchrepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/ledgerrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/paymentrepo"
	"dispatch/internal/adapters/out/postgres/trackingrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&batchrepo.BatchDTO{},
		&driverrepo.DriverDTO{},
		&deliveryrepo.DeliveryDTO{},
		&paymentrepo.PaymentDTO{},
		&ledgerrepo.EntryDTO{},
		&ledgerrepo.SettlementDTO{},
		&trackingrepo.EventDTO{},
	)
}
