package repository

import (
	"context"
	"strings"

	"invoicing-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Fields lists every customer as an id/name pair, ordered by name.
func (r *CustomerRepository) Fields(ctx context.Context) ([]models.CustomerField, error) {
	var fields []models.CustomerField
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&fields).Error
	return fields, err
}

// Table aggregates invoices per customer for customers whose name or email
// contains query. Customers without invoices are included with zero totals.
// Only the cents columns of each row are filled.
func (r *CustomerRepository) Table(ctx context.Context, query string) ([]models.CustomersTableRow, error) {
	like := "%" + strings.ToLower(query) + "%"

	var rows []models.CustomersTableRow
	err := r.db.WithContext(ctx).
		Table("customers").
		Select("customers.id, customers.name, customers.email, customers.image_url, " +
			"COUNT(invoices.id) AS total_invoices, " +
			"COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending_cents, " +
			"COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid_cents").
		Joins("LEFT JOIN invoices ON customers.id = invoices.customer_id").
		Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?", like, like).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error
	return n, err
}
