package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/davortiz/cliniadmin/internal/invoice/domain"
)

type InvoiceRepoSQLite struct {
	db *sql.DB
}

func NewInvoiceRepoSQLite(db *sql.DB) *InvoiceRepoSQLite {
	return &InvoiceRepoSQLite{db: db}
}

// Create inserta la factura; la FK a patients valida la referencia.
func (r *InvoiceRepoSQLite) Create(ctx context.Context, i *domain.Invoice) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (patient_id, descripcion, monto, fecha_emision, pagada)
		 VALUES (?,?,?,?,?)`,
		i.PatientID, i.Descripcion, i.Monto, i.FechaEmision, i.Pagada,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	i.ID = id
	return nil
}

func (r *InvoiceRepoSQLite) ListByPatient(ctx context.Context, patientID int64) ([]*domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, patient_id, descripcion, monto, fecha_emision, pagada
		 FROM invoices WHERE patient_id = ? ORDER BY id`, patientID)
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

// InitSQLite crea la tabla invoices si no existe. Requiere que la tabla
// patients exista previamente por la foreign key.
func InitSQLite(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS invoices (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            patient_id INTEGER NOT NULL,
            descripcion TEXT NOT NULL DEFAULT '',
            monto NUMERIC(10,2) NOT NULL,
            fecha_emision DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            pagada BOOLEAN NOT NULL DEFAULT 0,
            FOREIGN KEY (patient_id) REFERENCES patients(id)
                ON UPDATE CASCADE ON DELETE CASCADE
        )
    `)
	return err
}
