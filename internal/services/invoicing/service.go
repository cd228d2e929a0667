package invoicing

import (
	"context"
	"time"

	"invoicing-dashboard-backend/internal/apperror"
	"invoicing-dashboard-backend/internal/cache"
	"invoicing-dashboard-backend/internal/config"
	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// ListingPath is where callers are sent after a successful mutation.
const ListingPath = "/dashboard/invoices"

const moduleName = "invoicing"

// Tags of every view an invoice mutation can change.
var affectedViews = []string{cache.TagInvoices, cache.TagCustomers, cache.TagDashboard}

type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
	views       cache.Invalidator
	log         *logrus.Logger
	now         func() time.Time
}

func NewInvoiceService(invoiceRepo *repository.InvoiceRepository, views cache.Invalidator, log *logrus.Logger) *InvoiceService {
	if views == nil {
		views = cache.Nop{}
	}
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		views:       views,
		log:         log,
		now:         time.Now,
	}
}

// CreateInvoice validates form and inserts a new invoice dated today (UTC).
func (s *InvoiceService) CreateInvoice(ctx context.Context, form InvoiceForm) (*models.Invoice, error) {
	input, err := form.Validate()
	if err != nil {
		return nil, err
	}

	y, m, d := s.now().UTC().Date()
	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: input.CustomerID,
		Amount:     input.AmountCents,
		Date:       datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)),
		Status:     input.Status,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		config.LogError(s.log, moduleName, "CreateInvoice", "database error: failed to create invoice", input, err)
		return nil, apperror.NewDataAccessError("CreateInvoice", "failed to create invoice")
	}

	s.log.WithFields(logrus.Fields{"invoice_id": invoice.ID, "amount": invoice.Amount}).Info("invoice created")
	s.refreshViews(ctx)
	return invoice, nil
}

// UpdateInvoice overwrites customer, amount and status. An unknown id is a
// no-op.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, form InvoiceForm) error {
	invoiceID, err := parseID(id)
	if err != nil {
		return err
	}
	input, err := form.Validate()
	if err != nil {
		return err
	}

	n, err := s.invoiceRepo.Update(ctx, invoiceID, input.CustomerID, input.AmountCents, input.Status)
	if err != nil {
		config.LogError(s.log, moduleName, "UpdateInvoice", "database error: failed to update invoice",
			logrus.Fields{"id": id}, err)
		return apperror.NewDataAccessError("UpdateInvoice", "failed to update invoice")
	}
	if n == 0 {
		s.log.WithField("invoice_id", invoiceID).Warn("update matched no invoice")
	}

	s.refreshViews(ctx)
	return nil
}

// DeleteInvoice removes the invoice; views are refreshed only once the
// delete has completed.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	invoiceID, err := parseID(id)
	if err != nil {
		return err
	}

	n, err := s.invoiceRepo.Delete(ctx, invoiceID)
	if err != nil {
		config.LogError(s.log, moduleName, "DeleteInvoice", "database error: failed to delete invoice",
			logrus.Fields{"id": id}, err)
		return apperror.NewDataAccessError("DeleteInvoice", "failed to delete invoice")
	}
	s.log.WithFields(logrus.Fields{"invoice_id": invoiceID, "deleted": n}).Info("invoice deleted")

	s.refreshViews(ctx)
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.NewValidationError("id", "Invalid invoice id.")
	}
	return parsed, nil
}

// refreshViews drops the cached listing views. A cache failure is logged
// and does not undo the write.
func (s *InvoiceService) refreshViews(ctx context.Context) {
	if err := s.views.Invalidate(ctx, affectedViews...); err != nil {
		s.log.WithError(err).Warn("failed to invalidate invoice views")
	}
}
