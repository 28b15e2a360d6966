package domain

import (
	"time"
)

// Invoice es un documento de cobro emitido a un paciente. Puede marcarse
// como pagada en origen, pero por defecto nace pendiente.
type Invoice struct {
	ID           int64     `json:"id"`
	PatientID    int64     `json:"patient_id"`
	Descripcion  string    `json:"descripcion,omitempty"`
	Monto        float64   `json:"monto"`
	FechaEmision time.Time `json:"fecha_emision"`
	Pagada       bool      `json:"pagada"`
}
