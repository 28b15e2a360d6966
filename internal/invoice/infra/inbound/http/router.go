package http

import "github.com/gin-gonic/gin"

func RegisterInvoiceRoutes(r *gin.Engine, handler *InvoiceHandler) {
	invoices := r.Group("/invoices")
	{
		invoices.GET("/:patientId", handler.ListInvoicesByPatient)
		invoices.POST("", handler.CreateInvoice)
	}
}
