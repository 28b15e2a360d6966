package domain

import (
	"time"
)

// Patient representa al paciente de la clínica. Es la raíz del agregado:
// pagos y facturas le pertenecen y no pueden sobrevivirle.
type Patient struct {
	ID            int64     `json:"id"`
	Rut           string    `json:"rut"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
