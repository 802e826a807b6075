package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"contrasena"`
}

// LoginResponse token emitido más la proyección de roles/permisos resueltos al
// momento del login. Es una foto puntual: cambios posteriores de autorización
// no se reflejan hasta que el token expire.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"` // siempre "bearer"
	Usuario     UsuarioResponse `json:"usuario"`
	Roles       []string        `json:"roles"`
	Permisos    []string        `json:"permisos"`
}
