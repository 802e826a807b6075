package dto

// RolCreateRequest alta de rol de cliente con su conjunto inicial de permisos.
type RolCreateRequest struct {
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	PermisoIDs  []string `json:"permiso_ids"`
}

// RolUpdateRequest actualización parcial. PermisoIDs nil = no tocar permisos;
// no-nil reemplaza el conjunto completo de forma atómica.
type RolUpdateRequest struct {
	Nombre      *string   `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	PermisoIDs  *[]string `json:"permiso_ids"`
}

// RolResponse proyección de un rol con sus permisos asignados.
type RolResponse struct {
	ID           string            `json:"id"`
	ClienteID    *string           `json:"cliente_id"`
	Nombre       string            `json:"nombre"`
	Descripcion  string            `json:"descripcion"`
	EsRolSistema bool              `json:"es_rol_sistema"`
	Permisos     []PermisoResponse `json:"permisos"`
}

// PermisoResponse un permiso del catálogo del sistema.
type PermisoResponse struct {
	ID          string `json:"id"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Modulo      string `json:"modulo"`
}

// AsignarRolRequest asigna un rol existente a un usuario del mismo ámbito.
type AsignarRolRequest struct {
	UsuarioID string `json:"usuario_id"`
	RolID     string `json:"rol_id"`
}
