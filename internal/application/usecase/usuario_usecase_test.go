package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/pkg/password"
)

type usuarioRepoMem struct {
	usuarios map[string]*entity.Usuario
}

func (m *usuarioRepoMem) Create(u *entity.Usuario) error { m.usuarios[u.ID] = u; return nil }

func (m *usuarioRepoMem) GetByID(id string) (*entity.Usuario, error) {
	return m.usuarios[id], nil
}

func (m *usuarioRepoMem) FindByNombreUsuario(nombre string) (*entity.Usuario, error) {
	for _, u := range m.usuarios {
		if u.NombreUsuario == nombre {
			return u, nil
		}
	}
	return nil, nil
}

func (m *usuarioRepoMem) ListByCliente(clienteID *string) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range m.usuarios {
		if clienteID == nil || (u.ClienteID != nil && *u.ClienteID == *clienteID) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *usuarioRepoMem) Update(u *entity.Usuario) error   { m.usuarios[u.ID] = u; return nil }
func (m *usuarioRepoMem) ActualizarUltimoLogin(string) error { return nil }

type clienteRepoMem struct {
	clientes map[string]*entity.Cliente
}

func (m *clienteRepoMem) Create(c *entity.Cliente) error { m.clientes[c.ID] = c; return nil }

func (m *clienteRepoMem) GetByID(id string) (*entity.Cliente, error) { return m.clientes[id], nil }

func (m *clienteRepoMem) GetBySubdominio(sub string) (*entity.Cliente, error) {
	for _, c := range m.clientes {
		if c.Subdominio == sub {
			return c, nil
		}
	}
	return nil, nil
}

func (m *clienteRepoMem) List() ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range m.clientes {
		out = append(out, c)
	}
	return out, nil
}

func (m *clienteRepoMem) Update(c *entity.Cliente) error { m.clientes[c.ID] = c; return nil }

func (m *clienteRepoMem) CreateContacto(*entity.ContactoCliente) error { return nil }
func (m *clienteRepoMem) ListContactos(string) ([]*entity.ContactoCliente, error) {
	return nil, nil
}

func setupUsuarioUC(t *testing.T) (*usecase.UsuarioUseCase, *usuarioRepoMem, *clienteRepoMem) {
	t.Helper()
	usuarios := &usuarioRepoMem{usuarios: map[string]*entity.Usuario{}}
	clientes := &clienteRepoMem{clientes: map[string]*entity.Cliente{
		clienteKarumbe: {ID: clienteKarumbe, Nombre: "Karumbe", Subdominio: "karumbe", Estado: entity.ClienteActivo},
	}}
	return usecase.NewUsuarioUseCase(usuarios, clientes), usuarios, clientes
}

func TestCrearUsuario_AmbitoForzaClienteDelToken(t *testing.T) {
	uc, repo, _ := setupUsuarioUC(t)

	// El body trae otro cliente_id: debe ignorarse por completo.
	ajeno := "99999999-9999-9999-9999-999999999999"
	out, err := uc.Create(&clienteKarumbe, dto.UsuarioCreateRequest{
		ClienteID:     &ajeno,
		NombreUsuario: "vendedor",
		Email:         "vendedor@karumbe.com",
		Contrasena:    "12345",
		Nombre:        "Ana",
		Apellido:      "Pérez",
	})
	require.NoError(t, err)
	require.NotNil(t, out.ClienteID)
	assert.Equal(t, clienteKarumbe, *out.ClienteID)

	guardado := repo.usuarios[out.ID]
	assert.Equal(t, entity.UsuarioActivo, guardado.Estado)
	assert.True(t, password.Verificar("12345", guardado.ContrasenaHash))
}

func TestCrearUsuario_SuperAdminEligeCliente(t *testing.T) {
	uc, _, _ := setupUsuarioUC(t)

	out, err := uc.Create(nil, dto.UsuarioCreateRequest{
		ClienteID:     &clienteKarumbe,
		NombreUsuario: "admin_karumbe",
		Contrasena:    "12345",
	})
	require.NoError(t, err)
	assert.Equal(t, clienteKarumbe, *out.ClienteID)

	// Cliente inexistente en el payload del super admin.
	fantasma := "00000000-0000-0000-0000-00000000beef"
	_, err = uc.Create(nil, dto.UsuarioCreateRequest{
		ClienteID:     &fantasma,
		NombreUsuario: "otro",
		Contrasena:    "12345",
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestCrearUsuario_NombreDuplicado(t *testing.T) {
	uc, _, _ := setupUsuarioUC(t)

	_, err := uc.Create(&clienteKarumbe, dto.UsuarioCreateRequest{NombreUsuario: "vendedor", Contrasena: "12345"})
	require.NoError(t, err)
	_, err = uc.Create(&clienteKarumbe, dto.UsuarioCreateRequest{NombreUsuario: "vendedor", Contrasena: "otra"})
	assert.ErrorIs(t, err, domain.ErrUsuarioExiste)
}

func TestGetUsuario_OtroClienteProhibido(t *testing.T) {
	uc, repo, _ := setupUsuarioUC(t)
	otro := "22222222-2222-2222-2222-222222222222"
	repo.usuarios["u1"] = &entity.Usuario{ID: "u1", ClienteID: &otro, NombreUsuario: "ajeno"}

	_, err := uc.GetByID(&clienteKarumbe, "u1")
	assert.ErrorIs(t, err, domain.ErrProhibido, "la fila existe pero está fuera del ámbito")

	// El super admin sí lo alcanza.
	out, err := uc.GetByID(nil, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ajeno", out.NombreUsuario)
}

func TestActualizarUsuario_RehashDeContrasena(t *testing.T) {
	uc, repo, _ := setupUsuarioUC(t)
	out, err := uc.Create(&clienteKarumbe, dto.UsuarioCreateRequest{NombreUsuario: "vendedor", Contrasena: "12345"})
	require.NoError(t, err)
	hashOriginal := repo.usuarios[out.ID].ContrasenaHash

	nueva := "secreta"
	_, err = uc.Update(&clienteKarumbe, out.ID, dto.UsuarioUpdateRequest{Contrasena: &nueva})
	require.NoError(t, err)

	guardado := repo.usuarios[out.ID]
	assert.NotEqual(t, hashOriginal, guardado.ContrasenaHash)
	assert.True(t, password.Verificar("secreta", guardado.ContrasenaHash))
}

func TestDesactivarUsuario_EliminacionLogica(t *testing.T) {
	uc, repo, _ := setupUsuarioUC(t)
	out, err := uc.Create(&clienteKarumbe, dto.UsuarioCreateRequest{NombreUsuario: "vendedor", Contrasena: "12345"})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(&clienteKarumbe, out.ID))

	guardado, quedan := repo.usuarios[out.ID]
	require.True(t, quedan, "la fila no se borra")
	assert.Equal(t, entity.UsuarioInactivo, guardado.Estado)
}
