package auth

import (
	"time"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
	"github.com/nexusgestion/admin-api/pkg/password"
	"github.com/nexusgestion/admin-api/pkg/token"
)

// AuthUseCase autenticación: valida credenciales, resuelve roles y permisos
// efectivos, y emite el token firmado con ese snapshot.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	rolRepo     repository.RolRepository
	codec       *token.Codec
	ttl         time.Duration
}

// NewAuthUseCase construye el caso de uso de auth. Con ttl <= 0 se usa el
// TTL por defecto del codec (60 minutos).
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, rolRepo repository.RolRepository, codec *token.Codec, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, rolRepo: rolRepo, codec: codec, ttl: ttl}
}

// Login verifica nombre de usuario y contraseña, y retorna el token con los
// claims de autorización resueltos al momento del login.
//
// Usuario inexistente y contraseña incorrecta colapsan en el mismo
// ErrCredencialesInvalidas: la respuesta nunca revela si el usuario existe.
// Los permisos viajan dentro del token; una revocación posterior no surte
// efecto hasta que el token expire (limitación documentada del diseño).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByNombreUsuario(in.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !password.Verificar(in.Contrasena, usuario.ContrasenaHash) {
		return nil, domain.ErrCredencialesInvalidas
	}

	roles, err := uc.rolRepo.RolesDeUsuario(usuario.ID)
	if err != nil {
		return nil, err
	}
	permisos, err := uc.rolRepo.PermisosDeUsuario(usuario.ID)
	if err != nil {
		return nil, err
	}

	tok, err := uc.codec.Emitir(usuario.NombreUsuario, usuario.ID, usuario.ClienteID, roles, permisos, uc.ttl)
	if err != nil {
		return nil, err
	}

	// Best effort: el login no falla si no se pudo registrar la marca.
	_ = uc.usuarioRepo.ActualizarUltimoLogin(usuario.ID)

	return &dto.LoginResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		Usuario:     ToUsuarioResponse(usuario),
		Roles:       roles,
		Permisos:    permisos,
	}, nil
}

// ToUsuarioResponse proyección pública de un usuario (sin hash de contraseña).
func ToUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:            u.ID,
		ClienteID:     u.ClienteID,
		NombreUsuario: u.NombreUsuario,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		Estado:        u.Estado,
		UltimoLogin:   u.UltimoLogin,
		FechaCreacion: u.FechaCreacion,
	}
}
