package postgre

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/davortiz/cliniadmin/internal/invoice/domain"
)

type InvoiceRepoPostgres struct {
	db *sql.DB
}

func NewInvoiceRepoPostgres(db *sql.DB) *InvoiceRepoPostgres {
	return &InvoiceRepoPostgres{db: db}
}

func (r *InvoiceRepoPostgres) Create(ctx context.Context, i *domain.Invoice) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO invoices (patient_id, descripcion, monto, fecha_emision, pagada)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		i.PatientID, i.Descripcion, i.Monto, i.FechaEmision, i.Pagada,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepoPostgres) ListByPatient(ctx context.Context, patientID int64) ([]*domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, patient_id, descripcion, monto, fecha_emision, pagada
		 FROM invoices WHERE patient_id = $1 ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		var i domain.Invoice
		if err := rows.Scan(&i.ID, &i.PatientID, &i.Descripcion, &i.Monto, &i.FechaEmision, &i.Pagada); err != nil {
			return nil, err
		}
		invoices = append(invoices, &i)
	}
	return invoices, rows.Err()
}

// ------------------ Inicialización de DB ------------------

// InitPostgres crea la tabla invoices si no existe.
func InitPostgres(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS invoices (
            id BIGSERIAL PRIMARY KEY,
            patient_id BIGINT NOT NULL REFERENCES patients(id)
                ON UPDATE CASCADE ON DELETE CASCADE,
            descripcion TEXT NOT NULL DEFAULT '',
            monto NUMERIC(10,2) NOT NULL,
            fecha_emision TIMESTAMPTZ NOT NULL DEFAULT now(),
            pagada BOOLEAN NOT NULL DEFAULT false
        )
    `)
	return err
}
