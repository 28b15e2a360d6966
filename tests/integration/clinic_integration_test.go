package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	invoiceDomain "github.com/davortiz/cliniadmin/internal/invoice/domain"
	invoiceSqlite "github.com/davortiz/cliniadmin/internal/invoice/infra/outbound/db/sqlite"
	patientDomain "github.com/davortiz/cliniadmin/internal/patient/domain"
	patientSqlite "github.com/davortiz/cliniadmin/internal/patient/infra/outbound/db/sqlite"
	paymentDomain "github.com/davortiz/cliniadmin/internal/payment/domain"
	paymentSqlite "github.com/davortiz/cliniadmin/internal/payment/infra/outbound/db/sqlite"
	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	assert.NoError(t, err)
	// una sola conexión para que la BD en memoria y el PRAGMA persistan
	db.SetMaxOpenConns(1)

	assert.NoError(t, patientSqlite.InitSQLite(db))
	assert.NoError(t, paymentSqlite.InitSQLite(db))
	assert.NoError(t, invoiceSqlite.InitSQLite(db))
	return db
}

func newPatient(rut string) *patientDomain.Patient {
	return &patientDomain.Patient{
		Rut:           rut,
		Nombre:        "Integrado",
		Email:         "integration@example.com",
		FechaRegistro: time.Now().UTC(),
	}
}

func TestPatientSQLiteIntegration_CreateGetUpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := patientSqlite.NewPatientRepoSQLite(db)

	patient := newPatient("11111111-1")
	err := repo.Create(context.Background(), patient)
	assert.NoError(t, err)
	assert.NotZero(t, patient.ID)

	got, err := repo.GetByID(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, patient.Rut, got.Rut)
	assert.Equal(t, patient.Nombre, got.Nombre)

	got, err = repo.GetByRut(context.Background(), "11111111-1")
	assert.NoError(t, err)
	assert.Equal(t, patient.ID, got.ID)

	patient.Nombre = "Actualizado"
	err = repo.Update(context.Background(), patient)
	assert.NoError(t, err)
	got, err = repo.GetByID(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Actualizado", got.Nombre)

	patients, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, patients, 1)

	err = repo.DeleteByID(context.Background(), patient.ID)
	assert.NoError(t, err)
	_, err = repo.GetByID(context.Background(), patient.ID)
	assert.ErrorIs(t, err, patientDomain.ErrPatientNotFound)
}

func TestPatientSQLiteIntegration_UniqueRut(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := patientSqlite.NewPatientRepoSQLite(db)

	assert.NoError(t, repo.Create(context.Background(), newPatient("11111111-1")))

	// Mismo rut: la restricción UNIQUE rechaza la escritura
	err := repo.Create(context.Background(), newPatient("11111111-1"))
	assert.Error(t, err)

	patients, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, patients, 1)
}

func TestPaymentSQLiteIntegration_ForeignKeyEnforced(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := paymentSqlite.NewPaymentRepoSQLite(db)

	// patient_id sin referente: la FK rechaza la escritura
	err := repo.Create(context.Background(), &paymentDomain.Payment{
		PatientID:  12345,
		Monto:      50000,
		Fecha:      time.Now().UTC(),
		MetodoPago: "tarjeta",
		Estado:     paymentDomain.EstadoCompleted,
	})
	assert.Error(t, err)
}

func TestSQLiteIntegration_CascadeDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	patientRepo := patientSqlite.NewPatientRepoSQLite(db)
	paymentRepo := paymentSqlite.NewPaymentRepoSQLite(db)
	invoiceRepo := invoiceSqlite.NewInvoiceRepoSQLite(db)

	patient := newPatient("11111111-1")
	assert.NoError(t, patientRepo.Create(context.Background(), patient))

	assert.NoError(t, paymentRepo.Create(context.Background(), &paymentDomain.Payment{
		PatientID:  patient.ID,
		Monto:      50000,
		Fecha:      time.Now().UTC(),
		MetodoPago: "tarjeta",
		Estado:     paymentDomain.EstadoCompleted,
	}))
	assert.NoError(t, invoiceRepo.Create(context.Background(), &invoiceDomain.Invoice{
		PatientID:    patient.ID,
		Monto:        25000,
		FechaEmision: time.Now().UTC(),
	}))

	payments, err := paymentRepo.ListByPatient(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)

	// Borrar el paciente arrastra pagos y facturas vía ON DELETE CASCADE
	assert.NoError(t, patientRepo.DeleteByID(context.Background(), patient.ID))

	payments, err = paymentRepo.ListByPatient(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Empty(t, payments)

	invoices, err := invoiceRepo.ListByPatient(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestPaymentSQLiteIntegration_CreateAndListRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	patientRepo := patientSqlite.NewPatientRepoSQLite(db)
	paymentRepo := paymentSqlite.NewPaymentRepoSQLite(db)

	patient := newPatient("22222222-2")
	assert.NoError(t, patientRepo.Create(context.Background(), patient))

	created := &paymentDomain.Payment{
		PatientID:   patient.ID,
		Monto:       15990.50,
		Fecha:       time.Now().UTC(),
		MetodoPago:  "transferencia",
		Estado:      paymentDomain.EstadoCompleted,
		Descripcion: "control mensual",
	}
	assert.NoError(t, paymentRepo.Create(context.Background(), created))
	assert.NotZero(t, created.ID)

	payments, err := paymentRepo.ListByPatient(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, created.Monto, payments[0].Monto)
	assert.Equal(t, created.MetodoPago, payments[0].MetodoPago)
	assert.Equal(t, created.Descripcion, payments[0].Descripcion)
}

func TestInvoiceSQLiteIntegration_CreateAndListRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	patientRepo := patientSqlite.NewPatientRepoSQLite(db)
	invoiceRepo := invoiceSqlite.NewInvoiceRepoSQLite(db)

	patient := newPatient("33333333-3")
	assert.NoError(t, patientRepo.Create(context.Background(), patient))

	created := &invoiceDomain.Invoice{
		PatientID:    patient.ID,
		Descripcion:  "ortodoncia",
		Monto:        120000,
		FechaEmision: time.Now().UTC(),
		Pagada:       false,
	}
	assert.NoError(t, invoiceRepo.Create(context.Background(), created))

	invoices, err := invoiceRepo.ListByPatient(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Len(t, invoices, 1)
	assert.Equal(t, created.Monto, invoices[0].Monto)
	assert.False(t, invoices[0].Pagada)
}
