package postgre

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/davortiz/cliniadmin/internal/patient/domain"
)

type PatientRepoPostgres struct {
	db *sql.DB
}

func NewPatientRepoPostgres(db *sql.DB) *PatientRepoPostgres {
	return &PatientRepoPostgres{db: db}
}

// ------------------ CRUD ------------------

func (r *PatientRepoPostgres) Create(ctx context.Context, p *domain.Patient) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO patients (rut, nombre, email, telefono, direccion, fecha_registro)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.Rut, p.Nombre, p.Email, p.Telefono, p.Direccion, p.FechaRegistro,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}
	return nil
}

func (r *PatientRepoPostgres) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, rut, nombre, email, telefono, direccion, fecha_registro
		 FROM patients WHERE id = $1`, id)
	return scanPatient(row)
}

func (r *PatientRepoPostgres) GetByRut(ctx context.Context, rut string) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, rut, nombre, email, telefono, direccion, fecha_registro
		 FROM patients WHERE rut = $1`, rut)
	return scanPatient(row)
}

func (r *PatientRepoPostgres) Update(ctx context.Context, p *domain.Patient) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE patients SET rut=$1, nombre=$2, email=$3, telefono=$4, direccion=$5 WHERE id=$6`,
		p.Rut, p.Nombre, p.Email, p.Telefono, p.Direccion, p.ID,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepoPostgres) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepoPostgres) List(ctx context.Context) ([]*domain.Patient, error) {
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

// InitPostgres crea la tabla patients si no existe.
func InitPostgres(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS patients (
            id BIGSERIAL PRIMARY KEY,
            rut TEXT NOT NULL UNIQUE,
            nombre TEXT NOT NULL,
            email TEXT NOT NULL,
            telefono TEXT NOT NULL DEFAULT '',
            direccion TEXT NOT NULL DEFAULT '',
            fecha_registro TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `)
	return err
}
