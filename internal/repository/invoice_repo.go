package repository

import (
	"context"
	"errors"
	"strings"

	"invoicing-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceRowColumns = "invoices.id, invoices.customer_id, customers.name, customers.email, " +
	"customers.image_url, invoices.date, invoices.amount, invoices.status"

func (r *InvoiceRepository) withCustomer(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices").
		Joins("JOIN customers ON invoices.customer_id = customers.id")
}

// matching narrows invoices to those whose customer name or email, or whose
// amount, date or status rendered as text, contains query. Casing is ignored.
func matching(query string) func(*gorm.DB) *gorm.DB {
	like := "%" + strings.ToLower(query) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR "+
				"CAST(invoices.amount AS TEXT) LIKE ? OR LOWER(CAST(invoices.date AS TEXT)) LIKE ? OR "+
				"LOWER(CAST(invoices.status AS TEXT)) LIKE ?",
			like, like, like, like, like,
		)
	}
}

// Latest returns the newest invoices joined with their customer.
func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.withCustomer(ctx).
		Select(invoiceRowColumns).
		Order("invoices.date DESC").
		Order("invoices.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Filtered returns one page of invoices matching query, newest first.
func (r *InvoiceRepository) Filtered(ctx context.Context, query string, limit, offset int) ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.withCustomer(ctx).
		Select(invoiceRowColumns).
		Scopes(matching(query)).
		Order("invoices.date DESC").
		Order("invoices.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

// CountFiltered counts the invoices Filtered would page through.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	var n int64
	err := r.withCustomer(ctx).
		Scopes(matching(query)).
		Count(&n).Error
	return n, err
}

// GetByID returns nil without error when no invoice has the id.
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&n).Error
	return n, err
}

type StatusTotals struct {
	Paid    int64
	Pending int64
}

// StatusTotals sums invoice amounts per status, in cents.
func (r *InvoiceRepository) StatusTotals(ctx context.Context) (StatusTotals, error) {
	var totals StatusTotals
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Select("COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid, " +
			"COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending").
		Scan(&totals).Error
	return totals, err
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Update overwrites the customer, amount and status of one invoice and
// reports how many rows changed.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, cents int64, status models.InvoiceStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      cents,
			"status":      status,
		})
	return result.RowsAffected, result.Error
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
