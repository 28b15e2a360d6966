package application

import (
	"context"
	"time"

	"github.com/davortiz/cliniadmin/internal/payment/domain"
	"go.uber.org/zap"
)

// PaymentService define los casos de uso relacionados con Payment.
type PaymentService struct {
	repo domain.PaymentRepository
	log  *zap.Logger
}

// NewPaymentService constructor
func NewPaymentService(repo domain.PaymentRepository, log *zap.Logger) *PaymentService {
	return &PaymentService{repo: repo, log: log}
}

// CreatePayment registra un pago. La fecha la asigna el servidor; el estado
// llega ya normalizado desde la capa de validación.
func (s *PaymentService) CreatePayment(ctx context.Context, patientID int64, monto float64, metodoPago, estado, descripcion string) (*domain.Payment, error) {
	payment := &domain.Payment{
		PatientID:   patientID,
		Monto:       monto,
		Fecha:       time.Now().UTC(),
		MetodoPago:  metodoPago,
		Estado:      estado,
		Descripcion: descripcion,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		s.log.Error("failed to create payment", zap.Int64("patient_id", patientID), zap.Error(err))
		return nil, err
	}

	return payment, nil
}

// ListPaymentsByPatient devuelve los pagos del paciente.
func (s *PaymentService) ListPaymentsByPatient(ctx context.Context, patientID int64) ([]*domain.Payment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
