// en pkg/httpx/response.go
package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody define la estructura estándar para las respuestas de error.
// Todas las respuestas no-2xx del servicio usan este sobre:
// {"error": {"message": "...", "status": 404}}
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// SendError envía una respuesta de error con el formato estandarizado.
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": ErrorBody{
			Message: message,
			Status:  statusCode,
		},
	})
}

// --- Helpers específicos para errores comunes ---

func SendBadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, message)
}

func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message)
}

func SendConflict(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, message)
}

func SendInternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, message)
}
