package application

import (
	"context"
	"testing"

	"github.com/davortiz/cliniadmin/internal/patient/domain"
	"github.com/davortiz/cliniadmin/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCreatePatient_Success(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	patient, err := service.CreatePatient(context.Background(), "11111111-1", "Juan Perez", "juan.perez@example.com", "+56911112222", "Av. Siempre Viva 742")
	assert.NoError(t, err)
	assert.NotNil(t, patient)
	assert.NotZero(t, patient.ID)
	assert.Equal(t, "11111111-1", patient.Rut)
	assert.Equal(t, "Juan Perez", patient.Nombre)
	assert.Equal(t, "juan.perez@example.com", patient.Email)
	assert.False(t, patient.FechaRegistro.IsZero())
}

func TestCreatePatient_DuplicateRut(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	_, err := service.CreatePatient(context.Background(), "11111111-1", "Juan Perez", "juan@example.com", "", "")
	assert.NoError(t, err)

	_, err = service.CreatePatient(context.Background(), "11111111-1", "Otro Paciente", "otro@example.com", "", "")
	assert.ErrorIs(t, err, domain.ErrPatientAlreadyExists)

	// El repo sigue con un solo paciente para ese rut
	patients, _ := repo.List(context.Background())
	assert.Len(t, patients, 1)
}

func TestGetPatient_NotFound(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	_, err := service.GetPatient(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}

func TestGetPatientByRut(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	created, _ := service.CreatePatient(context.Background(), "22222222-2", "Ana Soto", "ana@example.com", "", "")

	got, err := service.GetPatientByRut(context.Background(), "22222222-2")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = service.GetPatientByRut(context.Background(), "99999999-9")
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}

func TestUpdatePatient_Success(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	patient, _ := service.CreatePatient(context.Background(), "33333333-3", "Ana", "ana@example.com", "", "")
	patient.Nombre = "Ana Actualizada"

	err := service.UpdatePatient(context.Background(), patient)
	assert.NoError(t, err)

	got, _ := repo.GetByID(context.Background(), patient.ID)
	assert.Equal(t, "Ana Actualizada", got.Nombre)
}

func TestUpdatePatient_NotFound(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	err := service.UpdatePatient(context.Background(), &domain.Patient{ID: 999, Nombre: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)

	patients, _ := repo.List(context.Background())
	assert.Empty(t, patients)
}

func TestDeletePatient_Success(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	patient, _ := service.CreatePatient(context.Background(), "44444444-4", "Borrar", "borrar@example.com", "", "")

	err := service.DeletePatient(context.Background(), patient.ID)
	assert.NoError(t, err)

	_, err = repo.GetByID(context.Background(), patient.ID)
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}

func TestDeletePatient_NotFound(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	err := service.DeletePatient(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}

func TestListPatients(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, nil, zap.NewNop())

	_, _ = service.CreatePatient(context.Background(), "55555555-5", "Primero", "p1@example.com", "", "")
	_, _ = service.CreatePatient(context.Background(), "66666666-6", "Segundo", "p2@example.com", "", "")

	patients, err := service.ListPatients(context.Background())
	assert.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.Equal(t, "Primero", patients[0].Nombre)
	assert.Equal(t, "Segundo", patients[1].Nombre)
}

// -------------------- GetPatient con Cache --------------------

func TestGetPatient_CacheHit(t *testing.T) {
	cached := &domain.Patient{
		ID:     7,
		Rut:    "77777777-7",
		Nombre: "Cacheado",
		Email:  "cache@example.com",
	}

	cache := mocks.NewDummyPatientCache()
	cache.SetForTest(domain.CacheKeyByID(cached.ID), cached)

	// Repo vacío: si el servicio responde, vino del cache
	repo := mocks.NewInMemoryPatientRepo()
	service := NewPatientService(repo, cache, zap.NewNop())

	got, err := service.GetPatient(context.Background(), cached.ID)
	assert.NoError(t, err)
	assert.Equal(t, cached.Rut, got.Rut)
	assert.Equal(t, cached.Nombre, got.Nombre)
}

func TestGetPatient_CacheMissFallsBackToRepo(t *testing.T) {
	repo := mocks.NewInMemoryPatientRepo()
	cache := mocks.NewDummyPatientCache()
	service := NewPatientService(repo, cache, zap.NewNop())

	created, _ := service.CreatePatient(context.Background(), "88888888-8", "Directo", "directo@example.com", "", "")

	got, err := service.GetPatient(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
