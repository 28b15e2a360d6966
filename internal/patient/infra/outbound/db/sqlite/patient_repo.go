package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/davortiz/cliniadmin/internal/patient/domain"
)

type PatientRepoSQLite struct {
	db *sql.DB
}

func NewPatientRepoSQLite(db *sql.DB) *PatientRepoSQLite {
	return &PatientRepoSQLite{db: db}
}

// ------------------ Métodos ------------------

// Create inserta el paciente y recupera el id autoincremental asignado.
func (r *PatientRepoSQLite) Create(ctx context.Context, p *domain.Patient) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO patients (rut, nombre, email, telefono, direccion, fecha_registro)
		 VALUES (?,?,?,?,?,?)`,
		p.Rut, p.Nombre, p.Email, p.Telefono, p.Direccion, p.FechaRegistro,
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

func (r *PatientRepoSQLite) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, rut, nombre, email, telefono, direccion, fecha_registro
		 FROM patients WHERE id = ?`, id)
	return scanPatient(row)
}

func (r *PatientRepoSQLite) GetByRut(ctx context.Context, rut string) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, rut, nombre, email, telefono, direccion, fecha_registro
		 FROM patients WHERE rut = ?`, rut)
	return scanPatient(row)
}

func (r *PatientRepoSQLite) Update(ctx context.Context, p *domain.Patient) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE patients SET rut=?, nombre=?, email=?, telefono=?, direccion=? WHERE id=?`,
		p.Rut, p.Nombre, p.Email, p.Telefono, p.Direccion, p.ID,
	)
	if err != nil {
		return err
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

// DeleteByID elimina el paciente; pagos y facturas caen por ON DELETE CASCADE.
func (r *PatientRepoSQLite) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id=?`, id)
	if err != nil {
		return err
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepoSQLite) List(ctx context.Context) ([]*domain.Patient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, rut, nombre, email, telefono, direccion, fecha_registro
		 FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []*domain.Patient
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.ID, &p.Rut, &p.Nombre, &p.Email, &p.Telefono, &p.Direccion, &p.FechaRegistro); err != nil {
			return nil, err
		}
		patients = append(patients, &p)
	}
	return patients, rows.Err()
}

func scanPatient(row *sql.Row) (*domain.Patient, error) {
	var p domain.Patient
	if err := row.Scan(&p.ID, &p.Rut, &p.Nombre, &p.Email, &p.Telefono, &p.Direccion, &p.FechaRegistro); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ------------------ Inicialización de DB ------------------

// InitSQLite activa las foreign keys y crea la tabla patients si no existe.
func InitSQLite(db *sql.DB) error {
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return err
	}

	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS patients (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            rut TEXT NOT NULL UNIQUE,
            nombre TEXT NOT NULL,
            email TEXT NOT NULL,
            telefono TEXT NOT NULL DEFAULT '',
            direccion TEXT NOT NULL DEFAULT '',
            fecha_registro DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        )
    `)
	return err
}
