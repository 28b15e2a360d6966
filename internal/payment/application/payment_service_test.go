package application

import (
	"context"
	"testing"

	"github.com/davortiz/cliniadmin/internal/payment/domain"
	"github.com/davortiz/cliniadmin/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCreatePayment_Success(t *testing.T) {
	repo := mocks.NewInMemoryPaymentRepo()
	service := NewPaymentService(repo, zap.NewNop())

	payment, err := service.CreatePayment(context.Background(), 1, 50000, "tarjeta", domain.EstadoCompleted, "")
	assert.NoError(t, err)
	assert.NotZero(t, payment.ID)
	assert.Equal(t, int64(1), payment.PatientID)
	assert.Equal(t, 50000.0, payment.Monto)
	assert.Equal(t, "tarjeta", payment.MetodoPago)
	assert.Equal(t, domain.EstadoCompleted, payment.Estado)
	assert.False(t, payment.Fecha.IsZero())
}

func TestListPaymentsByPatient_FiltersByOwner(t *testing.T) {
	repo := mocks.NewInMemoryPaymentRepo()
	service := NewPaymentService(repo, zap.NewNop())

	_, _ = service.CreatePayment(context.Background(), 1, 10000, "efectivo", domain.EstadoCompleted, "")
	_, _ = service.CreatePayment(context.Background(), 2, 20000, "tarjeta", domain.EstadoCompleted, "")
	_, _ = service.CreatePayment(context.Background(), 1, 30000, "transferencia", domain.EstadoCompleted, "control mensual")

	payments, err := service.ListPaymentsByPatient(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	for _, p := range payments {
		assert.Equal(t, int64(1), p.PatientID)
	}
}

func TestListPaymentsByPatient_EmptyForUnknownPatient(t *testing.T) {
	repo := mocks.NewInMemoryPaymentRepo()
	service := NewPaymentService(repo, zap.NewNop())

	// Paciente inexistente: lista vacía, nunca error
	payments, err := service.ListPaymentsByPatient(context.Background(), 999)
	assert.NoError(t, err)
	assert.Empty(t, payments)
}
