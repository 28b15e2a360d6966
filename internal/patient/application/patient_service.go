package application

import (
	"context"
	"errors"
	"time"

	"github.com/davortiz/cliniadmin/internal/patient/domain"
	"go.uber.org/zap"
)

// PatientService define los casos de uso relacionados con Patient.
type PatientService struct {
	repo  domain.PatientRepository
	cache domain.PatientCache
	log   *zap.Logger
}

// NewPatientService constructor
func NewPatientService(repo domain.PatientRepository, cache domain.PatientCache, log *zap.Logger) *PatientService {
	return &PatientService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// CreatePatient persiste un paciente nuevo. El rut es clave natural única:
// si ya existe devuelve ErrPatientAlreadyExists. La restricción UNIQUE de la
// BD sigue siendo la garantía atómica; este chequeo solo mejora el error.
func (s *PatientService) CreatePatient(ctx context.Context, rut, nombre, email, telefono, direccion string) (*domain.Patient, error) {
	if _, err := s.repo.GetByRut(ctx, rut); err == nil {
		return nil, domain.ErrPatientAlreadyExists
	} else if !errors.Is(err, domain.ErrPatientNotFound) {
		return nil, err
	}

	patient := &domain.Patient{
		Rut:           rut,
		Nombre:        nombre,
		Email:         email,
		Telefono:      telefono,
		Direccion:     direccion,
		FechaRegistro: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		s.log.Error("failed to create patient", zap.String("rut", rut), zap.Error(err))
		return nil, err
	}

	s.cacheSet(patient)
	return patient, nil
}

// GetPatient obtiene un paciente (primero intenta desde cache).
func (s *PatientService) GetPatient(ctx context.Context, id int64) (*domain.Patient, error) {
	if s.cache != nil {
		var p domain.Patient
		if ok, _ := s.cache.Get(ctx, domain.CacheKeyByID(id), &p); ok {
			return &p, nil
		}
	}

	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(patient)
	return patient, nil
}

// GetPatientByRut busca por clave natural.
func (s *PatientService) GetPatientByRut(ctx context.Context, rut string) (*domain.Patient, error) {
	return s.repo.GetByRut(ctx, rut)
}

// UpdatePatient persiste los campos ya aplicados sobre la entidad.
func (s *PatientService) UpdatePatient(ctx context.Context, p *domain.Patient) error {
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.cacheSet(p)
	return nil
}

// DeletePatient elimina el paciente; la BD elimina en cascada sus pagos y
// facturas.
func (s *PatientService) DeletePatient(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.cacheDelete(id)
	return nil
}

// ListPatients devuelve todos los pacientes.
func (s *PatientService) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	return s.repo.List(ctx)
}

// --- Cache en segundo plano, sin bloquear la respuesta ---

func (s *PatientService) cacheSet(p *domain.Patient) {
	if s.cache == nil {
		return
	}
	go func(p *domain.Patient) {
		ctxCache, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		if err := s.cache.Set(ctxCache, domain.CacheKeyByID(p.ID), p); err != nil {
			s.log.Warn("cache update failed", zap.Int64("patient_id", p.ID), zap.Error(err))
		}
	}(p)
}

func (s *PatientService) cacheDelete(id int64) {
	if s.cache == nil {
		return
	}
	go func(id int64) {
		ctxCache, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		if err := s.cache.Delete(ctxCache, domain.CacheKeyByID(id)); err != nil {
			s.log.Warn("cache delete failed", zap.Int64("patient_id", id), zap.Error(err))
		}
	}(id)
}
