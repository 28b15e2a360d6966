package application

import (
	"context"
	"time"

	"github.com/davortiz/cliniadmin/internal/invoice/domain"
	"go.uber.org/zap"
)

// InvoiceService define los casos de uso relacionados con Invoice.
type InvoiceService struct {
	repo domain.InvoiceRepository
	log  *zap.Logger
}

// NewInvoiceService constructor
func NewInvoiceService(repo domain.InvoiceRepository, log *zap.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, log: log}
}

// CreateInvoice emite una factura. La fecha de emisión la asigna el servidor.
func (s *InvoiceService) CreateInvoice(ctx context.Context, patientID int64, monto float64, descripcion string, pagada bool) (*domain.Invoice, error) {
	invoice := &domain.Invoice{
		PatientID:    patientID,
		Descripcion:  descripcion,
		Monto:        monto,
		FechaEmision: time.Now().UTC(),
		Pagada:       pagada,
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		s.log.Error("failed to create invoice", zap.Int64("patient_id", patientID), zap.Error(err))
		return nil, err
	}

	return invoice, nil
}

// ListInvoicesByPatient devuelve las facturas del paciente.
func (s *InvoiceService) ListInvoicesByPatient(ctx context.Context, patientID int64) ([]*domain.Invoice, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
