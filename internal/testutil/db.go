// Package testutil opens throwaway databases and inserts fixtures for
// package tests.
package testutil

import (
	"testing"
	"time"

	"invoicing-dashboard-backend/internal/config"
	"invoicing-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated in-memory sqlite database private to t.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func Customer(t testing.TB, db *gorm.DB, name, email string) models.Customer {
	t.Helper()
	c := models.Customer{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		ImageURL: "/customers/" + uuid.NewString() + ".png",
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create customer %q: %v", name, err)
	}
	return c
}

// Invoice inserts an invoice of cents dated day (YYYY-MM-DD).
func Invoice(t testing.TB, db *gorm.DB, customerID uuid.UUID, cents int64, status models.InvoiceStatus, day string) models.Invoice {
	t.Helper()
	d, err := time.Parse(time.DateOnly, day)
	if err != nil {
		t.Fatalf("parse date %q: %v", day, err)
	}
	inv := models.Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     cents,
		Date:       datatypes.Date(d),
		Status:     status,
	}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	return inv
}

func Revenue(t testing.TB, db *gorm.DB, month string, amount int64) {
	t.Helper()
	if err := db.Create(&models.Revenue{Month: month, Revenue: decimal.NewFromInt(amount)}).Error; err != nil {
		t.Fatalf("create revenue %s: %v", month, err)
	}
}
