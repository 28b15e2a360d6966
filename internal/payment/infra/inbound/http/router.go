package http

import "github.com/gin-gonic/gin"

func RegisterPaymentRoutes(r *gin.Engine, handler *PaymentHandler) {
	payments := r.Group("/payments")
	{
		payments.GET("/:patientId", handler.ListPaymentsByPatient)
		payments.POST("", handler.CreatePayment)
	}
}
