package handler

import (
	"errors"
	"net/http"
	"strconv"

	"invoice-builder-backend/internal/models"
	service "invoice-builder-backend/internal/services/invoiceops"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	service *service.InvoiceService
}

func NewInvoiceHandler(s *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// Draft returns a fresh default snapshot for a new form session.
func (h *InvoiceHandler) Draft(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"invoice": h.service.NewDraft()})
}

// Preview is the reactive recompute endpoint: the form posts the current
// candidate after each (debounced) edit and gets back the normalized
// snapshot with derived fields plus any field errors to render inline.
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var candidate models.Invoice
	if err := c.BindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	normalized, errs := h.service.Preview(&candidate)
	c.JSON(http.StatusOK, gin.H{"invoice": normalized, "errors": errs})
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var candidate models.Invoice
	if err := c.BindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	rec, errs, err := h.service.SaveInvoice(&candidate)
	if errs.Any() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "invoice saved", "record": rec})
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var candidate models.Invoice
	if err := c.BindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	rec, errs, err := h.service.UpdateInvoice(c.Param("id"), &candidate)
	if errs.Any() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice updated", "record": rec})
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, errs, err := h.service.LoadInvoice(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv, "errors": errs})
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	recs, err := h.service.ListInvoices(c.Query("q"), c.Query("currency"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": recs})
}

func (h *InvoiceHandler) CreateSeller(c *gin.Context) {
	var payload models.Seller
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	saved, err := h.service.SaveSeller(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seller": saved})
}

func (h *InvoiceHandler) ListSellers(c *gin.Context) {
	sellers, err := h.service.ListSellers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sellers": sellers})
}

func (h *InvoiceHandler) CreateBuyer(c *gin.Context) {
	var payload models.Buyer
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	saved, err := h.service.SaveBuyer(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"buyer": saved})
}

func (h *InvoiceHandler) ListBuyers(c *gin.Context) {
	buyers, err := h.service.ListBuyers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"buyers": buyers})
}

// ApplySeller fills the posted invoice with a saved seller's fields and
// returns the recomputed snapshot.
func (h *InvoiceHandler) ApplySeller(c *gin.Context) {
	var candidate models.Invoice
	if err := c.BindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.service.ApplySeller(&candidate, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "seller not found"})
		return
	}
	normalized, errs := h.service.Preview(&candidate)
	c.JSON(http.StatusOK, gin.H{"invoice": normalized, "errors": errs})
}

func (h *InvoiceHandler) ApplyBuyer(c *gin.Context) {
	var candidate models.Invoice
	if err := c.BindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.service.ApplyBuyer(&candidate, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "buyer not found"})
		return
	}
	normalized, errs := h.service.Preview(&candidate)
	c.JSON(http.StatusOK, gin.H{"invoice": normalized, "errors": errs})
}

func (h *InvoiceHandler) CreateShareLink(c *gin.Context) {
	var candidate models.Invoice
	if err := c.BindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	link, errs, err := h.service.CreateShareLink(&candidate)
	if errs.Any() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": link.Token})
}

func (h *InvoiceHandler) ResolveShareLink(c *gin.Context) {
	inv, errs, err := h.service.ResolveShareLink(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "share link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv, "errors": errs})
}
