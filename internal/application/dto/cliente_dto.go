package dto

import "time"

// ClienteCreateRequest alta de un tenant (solo super admin).
type ClienteCreateRequest struct {
	Nombre        string         `json:"nombre"`
	Subdominio    string         `json:"subdominio"`
	Configuracion map[string]any `json:"configuracion"`
}

// ClienteUpdateRequest actualización parcial de un tenant.
type ClienteUpdateRequest struct {
	Nombre        *string        `json:"nombre"`
	Estado        *string        `json:"estado"`
	Configuracion map[string]any `json:"configuracion"`
}

// ClienteResponse proyección pública de un tenant.
type ClienteResponse struct {
	ID            string         `json:"id"`
	Nombre        string         `json:"nombre"`
	Subdominio    string         `json:"subdominio"`
	Estado        string         `json:"estado"`
	Configuracion map[string]any `json:"configuracion,omitempty"`
	FechaCreacion time.Time      `json:"fecha_creacion"`
}

// ContactoClienteCreateRequest alta de contacto de un tenant.
type ContactoClienteCreateRequest struct {
	NombreContacto string `json:"nombre_contacto"`
	Rol            string `json:"rol"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}

// ContactoClienteResponse proyección de un contacto.
type ContactoClienteResponse struct {
	ID             string `json:"id"`
	ClienteID      string `json:"cliente_id"`
	NombreContacto string `json:"nombre_contacto"`
	Rol            string `json:"rol"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
}
