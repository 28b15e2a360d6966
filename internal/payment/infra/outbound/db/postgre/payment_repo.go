package postgre

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/davortiz/cliniadmin/internal/payment/domain"
)

type PaymentRepoPostgres struct {
	db *sql.DB
}

func NewPaymentRepoPostgres(db *sql.DB) *PaymentRepoPostgres {
	return &PaymentRepoPostgres{db: db}
}

func (r *PaymentRepoPostgres) Create(ctx context.Context, p *domain.Payment) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO payments (patient_id, monto, fecha, metodo_pago, estado, descripcion)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.PatientID, p.Monto, p.Fecha, p.MetodoPago, p.Estado, p.Descripcion,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepoPostgres) ListByPatient(ctx context.Context, patientID int64) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, patient_id, monto, fecha, metodo_pago, estado, descripcion
		 FROM payments WHERE patient_id = $1 ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Monto, &p.Fecha, &p.MetodoPago, &p.Estado, &p.Descripcion); err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// ------------------ Inicialización de DB ------------------

// InitPostgres crea la tabla payments si no existe.
func InitPostgres(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS payments (
            id BIGSERIAL PRIMARY KEY,
            patient_id BIGINT NOT NULL REFERENCES patients(id)
                ON UPDATE CASCADE ON DELETE CASCADE,
            monto NUMERIC(10,2) NOT NULL,
            fecha TIMESTAMPTZ NOT NULL DEFAULT now(),
            metodo_pago TEXT NOT NULL,
            estado TEXT NOT NULL DEFAULT 'completed',
            descripcion TEXT NOT NULL DEFAULT ''
        )
    `)
	return err
}
