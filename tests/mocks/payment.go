package mocks

import (
	"context"
	"sync"

	paymentDomain "github.com/davortiz/cliniadmin/internal/payment/domain"
)

// InMemoryPaymentRepo simula PaymentRepository.
type InMemoryPaymentRepo struct {
	Payments []*paymentDomain.Payment
	nextID   int64
	mu       sync.Mutex
}

func NewInMemoryPaymentRepo() *InMemoryPaymentRepo {
	return &InMemoryPaymentRepo{}
}

func (r *InMemoryPaymentRepo) Create(ctx context.Context, p *paymentDomain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.Payments = append(r.Payments, p)
	return nil
}

func (r *InMemoryPaymentRepo) ListByPatient(ctx context.Context, patientID int64) ([]*paymentDomain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*paymentDomain.Payment
	for _, p := range r.Payments {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}
