package handler

import (
	"net/http"

	"invoicing-dashboard-backend/internal/services/invoicing"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service *invoicing.InvoiceService
}

func NewInvoiceHandler(s *invoicing.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var form invoicing.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	navigate(c, http.StatusCreated, invoicing.ListingPath, gin.H{"message": "invoice created", "invoice": invoice})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	var form invoicing.InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.service.UpdateInvoice(c.Request.Context(), c.Param("id"), form); err != nil {
		respondError(c, err)
		return
	}
	navigate(c, http.StatusOK, invoicing.ListingPath, gin.H{"message": "invoice updated"})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	navigate(c, http.StatusOK, invoicing.ListingPath, gin.H{"message": "invoice deleted"})
}
