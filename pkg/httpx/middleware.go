package httpx

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID asigna un identificador único a cada request entrante y lo
// devuelve en la cabecera X-Request-ID. Si el cliente ya envía uno, se respeta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger registra cada request con método, ruta, status y latencia.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// ErrorHandler es el traductor terminal de errores del pipeline.
// Cualquier fallo que un handler no haya resuelto localmente (adjuntado vía
// c.Error) se convierte aquí en un sobre JSON con status 500. Debe ser el
// último middleware registrado antes de los handlers y nunca falla él mismo.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			log.Error("unhandled error",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString("request_id")),
				zap.Error(e.Err),
			)
		}

		if c.Writer.Written() {
			return
		}
		SendInternalServerError(c, "internal server error")
	}
}
