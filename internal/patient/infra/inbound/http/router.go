package http

import "github.com/gin-gonic/gin"

func RegisterPatientRoutes(r *gin.Engine, handler *PatientHandler) {
	patients := r.Group("/patients")
	{
		patients.GET("", handler.ListPatients)
		patients.GET("/:id", handler.GetPatient)
		patients.POST("", handler.CreatePatient)
		patients.PUT("/:id", handler.UpdatePatient)
		patients.DELETE("/:id", handler.DeletePatient)
	}
}
