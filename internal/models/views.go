package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Read-side projections returned by the dashboard queries.

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// LatestInvoice carries the amount already formatted for display.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
	TotalPaidCents       int64  `json:"total_paid_cents"`
	TotalPendingCents    int64  `json:"total_pending_cents"`
}

// InvoiceRow is one line of the invoices table. Amount is in cents.
type InvoiceRow struct {
	ID         uuid.UUID      `json:"id"`
	CustomerID uuid.UUID      `json:"customer_id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	ImageURL   string         `json:"image_url"`
	Date       datatypes.Date `json:"date"`
	Amount     int64          `json:"amount"`
	Status     InvoiceStatus  `json:"status"`
}

// InvoiceForm is the edit-form view of an invoice. Amount is in major units.
type InvoiceForm struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CustomersTableRow struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	ImageURL          string    `json:"image_url"`
	TotalInvoices     int64     `json:"total_invoices"`
	TotalPending      string    `json:"total_pending"`
	TotalPaid         string    `json:"total_paid"`
	TotalPendingCents int64     `json:"total_pending_cents"`
	TotalPaidCents    int64     `json:"total_paid_cents"`
}
