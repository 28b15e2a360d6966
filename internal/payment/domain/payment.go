package domain

import (
	"time"
)

// Estados de un pago. Los pagos se registran ya cursados, por eso el
// valor por defecto es EstadoCompleted.
const (
	EstadoCompleted = "completed"
	EstadoPending   = "pending"
)

// Payment es una transacción monetaria registrada a nombre de un paciente.
// Solo se crea y se consulta; desaparece en cascada con su paciente.
type Payment struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	Monto       float64   `json:"monto"`
	Fecha       time.Time `json:"fecha"`
	MetodoPago  string    `json:"metodo_pago"`
	Estado      string    `json:"estado"`
	Descripcion string    `json:"descripcion,omitempty"`
}
