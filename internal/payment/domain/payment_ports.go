package domain

import (
	"context"
)

// PaymentRepository define las operaciones persistentes para Payment.
type PaymentRepository interface {
	// Create inserta el pago y rellena p.ID. Si patient_id no referencia un
	// paciente existente, la foreign key de la BD rechaza la escritura.
	Create(ctx context.Context, p *Payment) error

	// ListByPatient devuelve los pagos del paciente; lista vacía si no hay
	// ninguno, incluso si el paciente no existe.
	ListByPatient(ctx context.Context, patientID int64) ([]*Payment, error)
}
