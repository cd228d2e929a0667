package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"invoicing-dashboard-backend/internal/apperror"
	"invoicing-dashboard-backend/internal/cache"
	"invoicing-dashboard-backend/internal/config"
	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/money"
	"invoicing-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	ItemsPerPage       = 6
	LatestInvoiceCount = 5

	moduleName = "dashboard"
)

// DashboardService answers the read-only queries behind the dashboard and
// invoice pages. Listing views are served through a tag-invalidated cache.
type DashboardService struct {
	invoiceRepo  *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
	revenueRepo  *repository.RevenueRepository
	userRepo     *repository.UserRepository
	views        cache.Store
	viewTTL      time.Duration
	log          *logrus.Logger
}

func NewDashboardService(
	invoiceRepo *repository.InvoiceRepository,
	customerRepo *repository.CustomerRepository,
	revenueRepo *repository.RevenueRepository,
	userRepo *repository.UserRepository,
	views cache.Store,
	viewTTL time.Duration,
	log *logrus.Logger,
) *DashboardService {
	if views == nil {
		views = cache.Nop{}
	}
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		userRepo:     userRepo,
		views:        views,
		viewTTL:      viewTTL,
		log:          log,
	}
}

// fail logs the store error and replaces it with a generic one.
func (s *DashboardService) fail(op, message string, data any, err error) error {
	config.LogError(s.log, moduleName, op, message, data, err)
	return apperror.NewDataAccessError(op, message)
}

// cached serves key from the view cache, loading and storing it on a miss.
// The tag generation is read before loading so a view that raced with an
// invalidation is not stored. Cache errors never fail the read.
func cached[T any](ctx context.Context, s *DashboardService, key, tag string, load func(context.Context) (T, error)) (T, error) {
	gen, genErr := s.views.Generation(ctx, tag)
	if genErr != nil {
		s.log.WithError(genErr).WithField("tag", tag).Warn("view cache generation read failed")
	}

	var view T
	ok, err := s.views.Get(ctx, key, &view)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("view cache read failed")
	}
	if ok && err == nil {
		return view, nil
	}

	view, err = load(ctx)
	if err != nil || genErr != nil {
		return view, err
	}
	if err := s.views.Set(ctx, key, tag, gen, view, s.viewTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("view cache write failed")
	}
	return view, nil
}

// FetchRevenue returns the monthly revenue series in calendar order.
func (s *DashboardService) FetchRevenue(ctx context.Context) ([]models.RevenuePoint, error) {
	return cached(ctx, s, "revenue:chart", cache.TagRevenue, func(ctx context.Context) ([]models.RevenuePoint, error) {
		rows, err := s.revenueRepo.All(ctx)
		if err != nil {
			return nil, s.fail("FetchRevenue", "failed to fetch revenue data", nil, err)
		}

		points := make([]models.RevenuePoint, len(rows))
		for i, r := range rows {
			points[i] = models.RevenuePoint{Month: r.Month, Revenue: r.Revenue.InexactFloat64()}
		}
		sort.SliceStable(points, func(i, j int) bool {
			return monthIndex(points[i].Month) < monthIndex(points[j].Month)
		})
		return points, nil
	})
}

// monthIndex maps "Jan" or "January" (any case) to 0..11; unknown labels
// sort after December.
func monthIndex(label string) int {
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(label, name) || strings.EqualFold(label, name[:3]) {
			return int(m) - 1
		}
	}
	return 12
}

func (s *DashboardService) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	return cached(ctx, s, "dashboard:latest-invoices", cache.TagDashboard, func(ctx context.Context) ([]models.LatestInvoice, error) {
		rows, err := s.invoiceRepo.Latest(ctx, LatestInvoiceCount)
		if err != nil {
			return nil, s.fail("FetchLatestInvoices", "failed to fetch the latest invoices", nil, err)
		}

		latest := make([]models.LatestInvoice, len(rows))
		for i, r := range rows {
			latest[i] = models.LatestInvoice{
				ID:       r.ID,
				Name:     r.Name,
				Email:    r.Email,
				ImageURL: r.ImageURL,
				Amount:   money.Format(r.Amount),
			}
		}
		return latest, nil
	})
}

// FetchCardData runs the invoice count, customer count and status totals
// concurrently. Any failure fails the whole snapshot.
func (s *DashboardService) FetchCardData(ctx context.Context) (models.CardData, error) {
	return cached(ctx, s, "dashboard:cards", cache.TagDashboard, func(ctx context.Context) (models.CardData, error) {
		var (
			invoices  int64
			customers int64
			totals    repository.StatusTotals
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			n, err := s.invoiceRepo.Count(gctx)
			invoices = n
			return err
		})
		g.Go(func() error {
			n, err := s.customerRepo.Count(gctx)
			customers = n
			return err
		})
		g.Go(func() error {
			t, err := s.invoiceRepo.StatusTotals(gctx)
			totals = t
			return err
		})
		if err := g.Wait(); err != nil {
			return models.CardData{}, s.fail("FetchCardData", "failed to fetch card data", nil, err)
		}

		return models.CardData{
			NumberOfInvoices:     invoices,
			NumberOfCustomers:    customers,
			TotalPaidInvoices:    money.Format(totals.Paid),
			TotalPendingInvoices: money.Format(totals.Pending),
			TotalPaidCents:       totals.Paid,
			TotalPendingCents:    totals.Pending,
		}, nil
	})
}

// FetchFilteredInvoices returns one page of matching invoices, newest first.
// Pages start at 1; anything lower is treated as the first page. Amounts are
// in cents.
func (s *DashboardService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	key := fmt.Sprintf("invoices:list:%d:%s", page, query)
	return cached(ctx, s, key, cache.TagInvoices, func(ctx context.Context) ([]models.InvoiceRow, error) {
		rows, err := s.invoiceRepo.Filtered(ctx, query, ItemsPerPage, (page-1)*ItemsPerPage)
		if err != nil {
			return nil, s.fail("FetchFilteredInvoices", "failed to fetch invoices",
				logrus.Fields{"query": query, "page": page}, err)
		}
		if rows == nil {
			rows = []models.InvoiceRow{}
		}
		return rows, nil
	})
}

// FetchInvoicesPages returns how many pages FetchFilteredInvoices has for query.
func (s *DashboardService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	return cached(ctx, s, "invoices:pages:"+query, cache.TagInvoices, func(ctx context.Context) (int, error) {
		n, err := s.invoiceRepo.CountFiltered(ctx, query)
		if err != nil {
			return 0, s.fail("FetchInvoicesPages", "failed to fetch total number of invoices",
				logrus.Fields{"query": query}, err)
		}
		return TotalPages(n), nil
	})
}

func TotalPages(count int64) int {
	return int((count + ItemsPerPage - 1) / ItemsPerPage)
}

// FetchInvoiceByID returns the invoice with its amount in dollars, or nil
// when id is malformed or unknown.
func (s *DashboardService) FetchInvoiceByID(ctx context.Context, id string) (*models.InvoiceForm, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, s.fail("FetchInvoiceByID", "failed to fetch invoice", logrus.Fields{"id": id}, err)
	}
	if invoice == nil {
		return nil, nil
	}
	return &models.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     money.Dollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (s *DashboardService) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	fields, err := s.customerRepo.Fields(ctx)
	if err != nil {
		return nil, s.fail("FetchCustomers", "failed to fetch all customers", nil, err)
	}
	return fields, nil
}

// FetchFilteredCustomers returns per-customer invoice totals for customers
// whose name or email contains query.
func (s *DashboardService) FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomersTableRow, error) {
	return cached(ctx, s, "customers:table:"+query, cache.TagCustomers, func(ctx context.Context) ([]models.CustomersTableRow, error) {
		rows, err := s.customerRepo.Table(ctx, query)
		if err != nil {
			return nil, s.fail("FetchFilteredCustomers", "failed to fetch customer table",
				logrus.Fields{"query": query}, err)
		}
		for i := range rows {
			rows[i].TotalPending = money.Format(rows[i].TotalPendingCents)
			rows[i].TotalPaid = money.Format(rows[i].TotalPaidCents)
		}
		if rows == nil {
			rows = []models.CustomersTableRow{}
		}
		return rows, nil
	})
}

// GetUser looks a user up by exact email; nil means no such user.
func (s *DashboardService) GetUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.fail("GetUser", "failed to fetch user", logrus.Fields{"email": email}, err)
	}
	return user, nil
}
