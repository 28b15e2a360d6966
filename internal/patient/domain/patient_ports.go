package domain

import (
	"context"
	"errors"
	"fmt"
)

// ---------- Errores de dominio ----------
var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("patient already exists")
)

// ---------- Interfaces (Ports) ----------

// PatientRepository define las operaciones persistentes para Patient.
type PatientRepository interface {
	// Create inserta el paciente y rellena p.ID con el id asignado por la BD.
	Create(ctx context.Context, p *Patient) error

	// Debe devolver ErrPatientNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*Patient, error)

	// GetByRut busca por la clave natural. Debe devolver ErrPatientNotFound
	// si no existe.
	GetByRut(ctx context.Context, rut string) (*Patient, error)

	// Debe devolver ErrPatientNotFound si el paciente no existe.
	Update(ctx context.Context, p *Patient) error

	// DeleteByID elimina el paciente. Los pagos y facturas dependientes los
	// elimina el motor relacional vía ON DELETE CASCADE, nunca esta capa.
	DeleteByID(ctx context.Context, id int64) error

	// List devuelve todos los pacientes.
	List(ctx context.Context) ([]*Patient, error)
}

// PatientCache cachea lecturas por id. Puede ser nil (cache deshabilitado).
type PatientCache interface {
	// Get intenta poblar dest (puntero) con el valor asociado a la key.
	// Devuelve (true, nil) si hay hit y dest fue rellenado.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set serializa y guarda el valor con el TTL del adapter.
	Set(ctx context.Context, key string, val interface{}) error

	// Delete elimina la key del cache.
	Delete(ctx context.Context, key string) error
}

// ---------- Helpers comunes (cache keys, etc.) ----------

// CacheKeyByID forma una key consistente para cache usando ID.
func CacheKeyByID(id int64) string {
	return fmt.Sprintf("patient:id:%d", id)
}
