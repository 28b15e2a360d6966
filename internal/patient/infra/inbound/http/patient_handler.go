package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davortiz/cliniadmin/internal/patient/application"
	"github.com/davortiz/cliniadmin/internal/patient/domain"
	"github.com/davortiz/cliniadmin/pkg/httpx"
)

// PatientHandler encapsula los endpoints HTTP relacionados con Patient
type PatientHandler struct {
	service *application.PatientService
}

// NewPatientHandler crea un nuevo PatientHandler
func NewPatientHandler(service *application.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// ---------------- Handlers ----------------

// ListPatients endpoint GET /patients
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if patients == nil {
		patients = []*domain.Patient{}
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatient endpoint GET /patients/:id
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.SendBadRequest(c, "invalid patient id")
		return
	}

	patient, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			httpx.SendNotFound(c, "Patient not found")
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

// CreatePatient endpoint POST /patients
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req struct {
		Rut       string `json:"rut" binding:"required"`
		Nombre    string `json:"nombre" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Telefono  string `json:"telefono"`
		Direccion string `json:"direccion"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.SendBadRequest(c, err.Error())
		return
	}

	patient, err := h.service.CreatePatient(c.Request.Context(), req.Rut, req.Nombre, req.Email, req.Telefono, req.Direccion)
	if err != nil {
		if errors.Is(err, domain.ErrPatientAlreadyExists) {
			httpx.SendConflict(c, "Patient with this rut already exists")
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// UpdatePatient endpoint PUT /patients/:id
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.SendBadRequest(c, "invalid patient id")
		return
	}

	// Punteros para que los campos sean opcionales en el JSON (reemplazo parcial)
	var req struct {
		Rut       *string `json:"rut,omitempty"`
		Nombre    *string `json:"nombre,omitempty"`
		Email     *string `json:"email,omitempty" binding:"omitempty,email"`
		Telefono  *string `json:"telefono,omitempty"`
		Direccion *string `json:"direccion,omitempty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.SendBadRequest(c, err.Error())
		return
	}

	patient, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			httpx.SendNotFound(c, "Patient not found")
			return
		}
		_ = c.Error(err)
		return
	}

	if req.Rut != nil {
		patient.Rut = *req.Rut
	}
	if req.Nombre != nil {
		patient.Nombre = *req.Nombre
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Telefono != nil {
		patient.Telefono = *req.Telefono
	}
	if req.Direccion != nil {
		patient.Direccion = *req.Direccion
	}

	if err := h.service.UpdatePatient(c.Request.Context(), patient); err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			httpx.SendNotFound(c, "Patient not found")
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient endpoint DELETE /patients/:id
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.SendBadRequest(c, "invalid patient id")
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			httpx.SendNotFound(c, "Patient not found")
			return
		}
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
