package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/davortiz/cliniadmin/internal/payment/domain"
)

type PaymentRepoSQLite struct {
	db *sql.DB
}

func NewPaymentRepoSQLite(db *sql.DB) *PaymentRepoSQLite {
	return &PaymentRepoSQLite{db: db}
}

// Create inserta el pago; la FK a patients valida la referencia.
func (r *PaymentRepoSQLite) Create(ctx context.Context, p *domain.Payment) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (patient_id, monto, fecha, metodo_pago, estado, descripcion)
		 VALUES (?,?,?,?,?,?)`,
		p.PatientID, p.Monto, p.Fecha, p.MetodoPago, p.Estado, p.Descripcion,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *PaymentRepoSQLite) ListByPatient(ctx context.Context, patientID int64) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, patient_id, monto, fecha, metodo_pago, estado, descripcion
		 FROM payments WHERE patient_id = ? ORDER BY id`, patientID)
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

// InitSQLite crea la tabla payments si no existe. Requiere que la tabla
// patients exista previamente por la foreign key.
func InitSQLite(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS payments (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            patient_id INTEGER NOT NULL,
            monto NUMERIC(10,2) NOT NULL,
            fecha DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            metodo_pago TEXT NOT NULL,
            estado TEXT NOT NULL DEFAULT 'completed',
            descripcion TEXT NOT NULL DEFAULT '',
            FOREIGN KEY (patient_id) REFERENCES patients(id)
                ON UPDATE CASCADE ON DELETE CASCADE
        )
    `)
	return err
}
