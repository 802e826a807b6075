package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgestion/admin-api/internal/application/auth"
	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/pkg/password"
	"github.com/nexusgestion/admin-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type usuarioRepoFake struct {
	porNombre map[string]*entity.Usuario
	logins    []string
}

func (f *usuarioRepoFake) Create(*entity.Usuario) error                    { return nil }
func (f *usuarioRepoFake) GetByID(string) (*entity.Usuario, error)         { return nil, nil }
func (f *usuarioRepoFake) ListByCliente(*string) ([]*entity.Usuario, error) { return nil, nil }
func (f *usuarioRepoFake) Update(*entity.Usuario) error                    { return nil }

func (f *usuarioRepoFake) FindByNombreUsuario(nombre string) (*entity.Usuario, error) {
	return f.porNombre[nombre], nil
}

func (f *usuarioRepoFake) ActualizarUltimoLogin(id string) error {
	f.logins = append(f.logins, id)
	return nil
}

type rolRepoFake struct {
	roles    map[string][]string // usuarioID -> nombres de rol
	permisos map[string][]string // usuarioID -> códigos
}

func (f *rolRepoFake) Create(*entity.Rol, []string) error                         { return nil }
func (f *rolRepoFake) GetByID(string, *string) (*entity.Rol, error)               { return nil, nil }
func (f *rolRepoFake) GetByNombre(string, *string) (*entity.Rol, error)           { return nil, nil }
func (f *rolRepoFake) ListByCliente(*string) ([]*entity.Rol, error)               { return nil, nil }
func (f *rolRepoFake) Update(*entity.Rol) error                                   { return nil }
func (f *rolRepoFake) ReemplazarPermisos(string, []string) error                  { return nil }
func (f *rolRepoFake) Delete(string) error                                        { return nil }
func (f *rolRepoFake) ListPermisosDeRol(string) ([]*entity.Permiso, error)        { return nil, nil }
func (f *rolRepoFake) AsignarRolAUsuario(*entity.AsignacionRol) error             { return nil }
func (f *rolRepoFake) QuitarRolAUsuario(string, string) error                     { return nil }

func (f *rolRepoFake) RolesDeUsuario(usuarioID string) ([]string, error) {
	return f.roles[usuarioID], nil
}

func (f *rolRepoFake) PermisosDeUsuario(usuarioID string) ([]string, error) {
	return f.permisos[usuarioID], nil
}

func nuevoUseCase(t *testing.T, usuarios *usuarioRepoFake, roles *rolRepoFake) *auth.AuthUseCase {
	t.Helper()
	codec, err := token.NewCodec("secreto-test", nil)
	require.NoError(t, err)
	return auth.NewAuthUseCase(usuarios, roles, codec, 0)
}

func usuarioConContrasena(t *testing.T, nombre, contrasena string, clienteID *string) *entity.Usuario {
	t.Helper()
	hash, err := password.Hash(contrasena)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:             "user-" + nombre,
		ClienteID:      clienteID,
		NombreUsuario:  nombre,
		Email:          nombre + "@test.com",
		ContrasenaHash: hash,
		Estado:         entity.UsuarioActivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_ClaimsResueltos(t *testing.T) {
	clienteID := "11111111-1111-1111-1111-111111111111"
	u := usuarioConContrasena(t, "admin_karumbe", "12345", &clienteID)

	usuarios := &usuarioRepoFake{porNombre: map[string]*entity.Usuario{u.NombreUsuario: u}}
	roles := &rolRepoFake{
		roles:    map[string][]string{u.ID: {"Administrador"}},
		permisos: map[string][]string{u.ID: {"compras.crear", "compras.leer"}},
	}
	uc := nuevoUseCase(t, usuarios, roles)

	out, err := uc.Login(dto.LoginRequest{NombreUsuario: "admin_karumbe", Contrasena: "12345"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, []string{"Administrador"}, out.Roles)
	assert.Equal(t, []string{"compras.crear", "compras.leer"}, out.Permisos)
	assert.Equal(t, "admin_karumbe", out.Usuario.NombreUsuario)
	assert.Equal(t, []string{u.ID}, usuarios.logins, "debe registrarse el último login")

	// El token emitido carga los mismos claims.
	codec, err := token.NewCodec("secreto-test", nil)
	require.NoError(t, err)
	claims, err := codec.Decodificar(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	require.NotNil(t, claims.ClienteID)
	assert.Equal(t, clienteID, *claims.ClienteID)
	assert.Equal(t, out.Roles, claims.Roles)
	assert.Equal(t, out.Permisos, claims.Permisos)
}

// Usuario inexistente y contraseña incorrecta producen exactamente el mismo
// resultado: no se revela cuál de los dos falló.
func TestLogin_RechazoIndistinguible(t *testing.T) {
	u := usuarioConContrasena(t, "alice", "correcta", nil)
	usuarios := &usuarioRepoFake{porNombre: map[string]*entity.Usuario{"alice": u}}
	uc := nuevoUseCase(t, usuarios, &rolRepoFake{})

	_, errInexistente := uc.Login(dto.LoginRequest{NombreUsuario: "no_existe", Contrasena: "da-igual"})
	_, errContrasena := uc.Login(dto.LoginRequest{NombreUsuario: "alice", Contrasena: "incorrecta"})

	assert.ErrorIs(t, errInexistente, domain.ErrCredencialesInvalidas)
	assert.ErrorIs(t, errContrasena, domain.ErrCredencialesInvalidas)
	assert.Equal(t, errInexistente, errContrasena)
	assert.Empty(t, usuarios.logins, "un login fallido no registra último login")
}

func TestLogin_SuperAdmin_SinCliente(t *testing.T) {
	u := usuarioConContrasena(t, "super_admin", "12345", nil)
	usuarios := &usuarioRepoFake{porNombre: map[string]*entity.Usuario{"super_admin": u}}
	roles := &rolRepoFake{roles: map[string][]string{u.ID: {entity.SuperAdminRol}}}
	uc := nuevoUseCase(t, usuarios, roles)

	out, err := uc.Login(dto.LoginRequest{NombreUsuario: "super_admin", Contrasena: "12345"})
	require.NoError(t, err)

	assert.Nil(t, out.Usuario.ClienteID)
	assert.Equal(t, []string{entity.SuperAdminRol}, out.Roles)
	assert.Empty(t, out.Permisos, "el super admin no necesita permisos explícitos")
}

func TestLogin_UsuarioSinRoles_NoEsError(t *testing.T) {
	clienteID := "22222222-2222-2222-2222-222222222222"
	u := usuarioConContrasena(t, "nuevo", "12345", &clienteID)
	usuarios := &usuarioRepoFake{porNombre: map[string]*entity.Usuario{"nuevo": u}}
	uc := nuevoUseCase(t, usuarios, &rolRepoFake{})

	out, err := uc.Login(dto.LoginRequest{NombreUsuario: "nuevo", Contrasena: "12345"})
	require.NoError(t, err)
	assert.Empty(t, out.Roles)
	assert.Empty(t, out.Permisos)
}
