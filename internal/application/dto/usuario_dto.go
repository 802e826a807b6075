package dto

import "time"

// UsuarioCreateRequest alta de usuario. ClienteID solo lo respeta el super
// admin; para usuarios operativos se fuerza el cliente del token.
type UsuarioCreateRequest struct {
	ClienteID     *string `json:"cliente_id"`
	NombreUsuario string  `json:"nombre_usuario"`
	Email         string  `json:"email"`
	Contrasena    string  `json:"contrasena"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
}

// UsuarioUpdateRequest actualización parcial. Contrasena no vacía se rehashea.
type UsuarioUpdateRequest struct {
	Email      *string `json:"email"`
	Nombre     *string `json:"nombre"`
	Apellido   *string `json:"apellido"`
	Estado     *string `json:"estado"`
	Contrasena *string `json:"contrasena"`
}

// UsuarioResponse proyección pública de un usuario (sin hash).
type UsuarioResponse struct {
	ID            string     `json:"id"`
	ClienteID     *string    `json:"cliente_id"`
	NombreUsuario string     `json:"nombre_usuario"`
	Email         string     `json:"email"`
	Nombre        string     `json:"nombre"`
	Apellido      string     `json:"apellido"`
	Estado        string     `json:"estado"`
	UltimoLogin   *time.Time `json:"ultimo_login,omitempty"`
	FechaCreacion time.Time  `json:"fecha_creacion"`
}
