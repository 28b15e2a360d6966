package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davortiz/cliniadmin/internal/invoice/application"
	"github.com/davortiz/cliniadmin/internal/invoice/domain"
	"github.com/davortiz/cliniadmin/pkg/httpx"
)

// InvoiceHandler encapsula los endpoints HTTP relacionados con Invoice
type InvoiceHandler struct {
	service *application.InvoiceService
}

// NewInvoiceHandler crea un nuevo InvoiceHandler
func NewInvoiceHandler(service *application.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// ---------------- Handlers ----------------

// ListInvoicesByPatient endpoint GET /invoices/:patientId
func (h *InvoiceHandler) ListInvoicesByPatient(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil {
		httpx.SendBadRequest(c, "invalid patient id")
		return
	}

	invoices, err := h.service.ListInvoicesByPatient(c.Request.Context(), patientID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if invoices == nil {
		invoices = []*domain.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

// CreateInvoice endpoint POST /invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req struct {
		PatientID   int64   `json:"patient_id" binding:"required"`
		Descripcion string  `json:"descripcion"`
		Monto       float64 `json:"monto" binding:"required,gt=0"`
		Pagada      bool    `json:"pagada"` // default false si se omite
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.SendBadRequest(c, err.Error())
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), req.PatientID, req.Monto, req.Descripcion, req.Pagada)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}
