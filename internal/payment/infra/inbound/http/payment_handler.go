package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davortiz/cliniadmin/internal/payment/application"
	"github.com/davortiz/cliniadmin/internal/payment/domain"
	"github.com/davortiz/cliniadmin/pkg/httpx"
)

// PaymentHandler encapsula los endpoints HTTP relacionados con Payment
type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler crea un nuevo PaymentHandler
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// ---------------- Handlers ----------------

// ListPaymentsByPatient endpoint GET /payments/:patientId
func (h *PaymentHandler) ListPaymentsByPatient(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil {
		httpx.SendBadRequest(c, "invalid patient id")
		return
	}

	payments, err := h.service.ListPaymentsByPatient(c.Request.Context(), patientID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if payments == nil {
		payments = []*domain.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePayment endpoint POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req struct {
		PatientID   int64   `json:"patient_id" binding:"required"`
		Monto       float64 `json:"monto" binding:"required,gt=0"`
		MetodoPago  string  `json:"metodo_pago" binding:"required"`
		Estado      string  `json:"estado"`
		Descripcion string  `json:"descripcion"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.SendBadRequest(c, err.Error())
		return
	}

	// Normalización de defaults antes de tocar el servicio
	if req.Estado == "" {
		req.Estado = domain.EstadoCompleted
	}

	payment, err := h.service.CreatePayment(c.Request.Context(), req.PatientID, req.Monto, req.MetodoPago, req.Estado, req.Descripcion)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}
