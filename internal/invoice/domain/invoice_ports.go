package domain

import (
	"context"
)

// InvoiceRepository define las operaciones persistentes para Invoice.
type InvoiceRepository interface {
	// Create inserta la factura y rellena i.ID. Si patient_id no referencia
	// un paciente existente, la foreign key de la BD rechaza la escritura.
	Create(ctx context.Context, i *Invoice) error

	// ListByPatient devuelve las facturas del paciente; lista vacía si no
	// hay ninguna, incluso si el paciente no existe.
	ListByPatient(ctx context.Context, patientID int64) ([]*Invoice, error)
}
