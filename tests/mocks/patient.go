package mocks

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	patientDomain "github.com/davortiz/cliniadmin/internal/patient/domain"
)

// InMemoryPatientRepo simula PatientRepository replicando las restricciones
// de la BD que importan al dominio (id autoincremental, rut único).
type InMemoryPatientRepo struct {
	Patients map[int64]*patientDomain.Patient
	nextID   int64
	mu       sync.Mutex
}

func NewInMemoryPatientRepo() *InMemoryPatientRepo {
	return &InMemoryPatientRepo{
		Patients: make(map[int64]*patientDomain.Patient),
	}
}

func (r *InMemoryPatientRepo) Create(ctx context.Context, p *patientDomain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.Patients {
		if existing.Rut == p.Rut {
			return patientDomain.ErrPatientAlreadyExists
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.Patients[p.ID] = p
	return nil
}

func (r *InMemoryPatientRepo) GetByID(ctx context.Context, id int64) (*patientDomain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Patients[id]
	if !ok {
		return nil, patientDomain.ErrPatientNotFound
	}
	return p, nil
}

func (r *InMemoryPatientRepo) GetByRut(ctx context.Context, rut string) (*patientDomain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.Patients {
		if p.Rut == rut {
			return p, nil
		}
	}
	return nil, patientDomain.ErrPatientNotFound
}

func (r *InMemoryPatientRepo) Update(ctx context.Context, p *patientDomain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Patients[p.ID]; !ok {
		return patientDomain.ErrPatientNotFound
	}
	r.Patients[p.ID] = p
	return nil
}

func (r *InMemoryPatientRepo) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Patients[id]; !ok {
		return patientDomain.ErrPatientNotFound
	}
	delete(r.Patients, id)
	return nil
}

func (r *InMemoryPatientRepo) List(ctx context.Context) ([]*patientDomain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patients := make([]*patientDomain.Patient, 0, len(r.Patients))
	for _, p := range r.Patients {
		patients = append(patients, p)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

// DummyPatientCache simula PatientCache serializando igual que Redis.
type DummyPatientCache struct {
	data map[string][]byte
	mu   sync.Mutex
}

func NewDummyPatientCache() *DummyPatientCache {
	return &DummyPatientCache{data: make(map[string][]byte)}
}

func (c *DummyPatientCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *DummyPatientCache) Set(ctx context.Context, key string, val interface{}) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *DummyPatientCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// SetForTest inserta directamente un valor, para preparar hits en tests.
func (c *DummyPatientCache) SetForTest(key string, val interface{}) {
	_ = c.Set(context.Background(), key, val)
}
