package handler

import (
	"net/http"
	"strconv"

	"invoicing-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *dashboard.DashboardService
}

func NewDashboardHandler(s *dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	revenue, err := h.service.FetchRevenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": revenue})
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.service.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": latest})
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.service.FetchCardData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

// ListInvoices serves one page of the invoices table together with the
// page count for the same query.
func (h *DashboardHandler) ListInvoices(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	items, err := h.service.FetchFilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		respondError(c, err)
		return
	}
	totalPages, err := h.service.FetchInvoicesPages(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"page":        page,
		"total_pages": totalPages,
	})
}

func (h *DashboardHandler) InvoicePages(c *gin.Context) {
	totalPages, err := h.service.FetchInvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": totalPages})
}

func (h *DashboardHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.FetchInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (h *DashboardHandler) Customers(c *gin.Context) {
	customers, err := h.service.FetchCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}

func (h *DashboardHandler) CustomersTable(c *gin.Context) {
	rows, err := h.service.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
