// Package seed loads the demo users, customers, invoices and revenue.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/services/auth"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Summary counts the rows inserted by one run. Rows that already existed
// are not counted.
type Summary struct {
	Users     int64
	Customers int64
	Invoices  int64
	Revenue   int64
}

// Run inserts every fixture in a single transaction. It is safe to run
// repeatedly.
func Run(ctx context.Context, db *gorm.DB, log *logrus.Logger) (Summary, error) {
	if db == nil {
		return Summary{}, errors.New("seed database handle is required")
	}

	var summary Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if summary.Users, err = seedUsers(tx); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if summary.Customers, err = seedCustomers(tx); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		if summary.Invoices, err = seedInvoices(tx); err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
		if summary.Revenue, err = seedRevenue(tx); err != nil {
			return fmt.Errorf("seed revenue: %w", err)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	log.WithFields(logrus.Fields{
		"users":     summary.Users,
		"customers": summary.Customers,
		"invoices":  summary.Invoices,
		"revenue":   summary.Revenue,
	}).Info("database seeded")
	return summary, nil
}

func insertIgnore(tx *gorm.DB, rows any) (int64, error) {
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return result.RowsAffected, result.Error
}

func seedUsers(tx *gorm.DB) (int64, error) {
	rows := make([]models.User, 0, len(users))
	for _, u := range users {
		hashed, err := auth.HashPassword(u.Password)
		if err != nil {
			return 0, err
		}
		rows = append(rows, models.User{
			ID:       uuid.MustParse(u.ID),
			Name:     u.Name,
			Email:    u.Email,
			Password: hashed,
		})
	}
	return insertIgnore(tx, &rows)
}

func seedCustomers(tx *gorm.DB) (int64, error) {
	rows := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, models.Customer{
			ID:       uuid.MustParse(c.ID),
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	return insertIgnore(tx, &rows)
}

func seedInvoices(tx *gorm.DB) (int64, error) {
	rows := make([]models.Invoice, 0, len(invoices))
	for i, inv := range invoices {
		date, err := time.Parse(time.DateOnly, inv.Date)
		if err != nil {
			return 0, err
		}
		rows = append(rows, models.Invoice{
			ID:         invoiceID(i),
			CustomerID: uuid.MustParse(customers[inv.Customer].ID),
			Amount:     inv.Amount,
			Date:       datatypes.Date(date),
			Status:     models.InvoiceStatus(inv.Status),
		})
	}
	return insertIgnore(tx, &rows)
}

func seedRevenue(tx *gorm.DB) (int64, error) {
	rows := make([]models.Revenue, 0, len(revenue))
	for _, r := range revenue {
		rows = append(rows, models.Revenue{Month: r.Month, Revenue: decimal.NewFromInt(r.Revenue)})
	}
	return insertIgnore(tx, &rows)
}
