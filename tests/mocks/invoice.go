package mocks

import (
	"context"
	"sync"

	invoiceDomain "github.com/davortiz/cliniadmin/internal/invoice/domain"
)

// InMemoryInvoiceRepo simula InvoiceRepository.
type InMemoryInvoiceRepo struct {
	Invoices []*invoiceDomain.Invoice
	nextID   int64
	mu       sync.Mutex
}

func NewInMemoryInvoiceRepo() *InMemoryInvoiceRepo {
	return &InMemoryInvoiceRepo{}
}

func (r *InMemoryInvoiceRepo) Create(ctx context.Context, i *invoiceDomain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	i.ID = r.nextID
	r.Invoices = append(r.Invoices, i)
	return nil
}

func (r *InMemoryInvoiceRepo) ListByPatient(ctx context.Context, patientID int64) ([]*invoiceDomain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*invoiceDomain.Invoice
	for _, i := range r.Invoices {
		if i.PatientID == patientID {
			out = append(out, i)
		}
	}
	return out, nil
}
