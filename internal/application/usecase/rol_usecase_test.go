package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type rolRepoMem struct {
	roles        map[string]*entity.Rol
	permisosRol  map[string][]string // rolID -> permisoIDs
	eliminados   []string
	asignaciones []*entity.AsignacionRol
}

func nuevoRolRepoMem() *rolRepoMem {
	return &rolRepoMem{roles: map[string]*entity.Rol{}, permisosRol: map[string][]string{}}
}

func (m *rolRepoMem) Create(rol *entity.Rol, permisoIDs []string) error {
	m.roles[rol.ID] = rol
	m.permisosRol[rol.ID] = permisoIDs
	return nil
}

func (m *rolRepoMem) GetByID(id string, clienteID *string) (*entity.Rol, error) {
	rol, ok := m.roles[id]
	if !ok {
		return nil, nil
	}
	// mismo ámbito del cliente, o rol global
	if rol.ClienteID == nil {
		return rol, nil
	}
	if clienteID != nil && *rol.ClienteID == *clienteID {
		return rol, nil
	}
	return nil, nil
}

func (m *rolRepoMem) GetByNombre(nombre string, clienteID *string) (*entity.Rol, error) {
	for _, rol := range m.roles {
		if rol.Nombre != nombre {
			continue
		}
		if rol.ClienteID == nil && clienteID == nil {
			return rol, nil
		}
		if rol.ClienteID != nil && clienteID != nil && *rol.ClienteID == *clienteID {
			return rol, nil
		}
	}
	return nil, nil
}

func (m *rolRepoMem) ListByCliente(clienteID *string) ([]*entity.Rol, error) {
	var out []*entity.Rol
	for _, rol := range m.roles {
		if rol.ClienteID == nil || (clienteID != nil && *rol.ClienteID == *clienteID) {
			out = append(out, rol)
		}
	}
	return out, nil
}

func (m *rolRepoMem) Update(rol *entity.Rol) error {
	m.roles[rol.ID] = rol
	return nil
}

func (m *rolRepoMem) ReemplazarPermisos(rolID string, permisoIDs []string) error {
	m.permisosRol[rolID] = permisoIDs
	return nil
}

func (m *rolRepoMem) Delete(id string) error {
	delete(m.roles, id)
	delete(m.permisosRol, id) // cascada de permisos_roles
	m.eliminados = append(m.eliminados, id)
	return nil
}

func (m *rolRepoMem) ListPermisosDeRol(rolID string) ([]*entity.Permiso, error) {
	var out []*entity.Permiso
	for _, id := range m.permisosRol[rolID] {
		out = append(out, &entity.Permiso{ID: id, Codigo: "codigo-" + id})
	}
	return out, nil
}

func (m *rolRepoMem) AsignarRolAUsuario(a *entity.AsignacionRol) error {
	m.asignaciones = append(m.asignaciones, a)
	return nil
}

func (m *rolRepoMem) QuitarRolAUsuario(usuarioID, rolID string) error {
	quedan := m.asignaciones[:0]
	for _, a := range m.asignaciones {
		if a.UsuarioID != usuarioID || a.RolID != rolID {
			quedan = append(quedan, a)
		}
	}
	m.asignaciones = quedan
	return nil
}

func (m *rolRepoMem) RolesDeUsuario(string) ([]string, error)        { return nil, nil }
func (m *rolRepoMem) PermisosDeUsuario(string) ([]string, error)     { return nil, nil }

type permisoRepoMem struct {
	permisos map[string]*entity.Permiso
}

func (m *permisoRepoMem) Create(p *entity.Permiso) error {
	m.permisos[p.ID] = p
	return nil
}

func (m *permisoRepoMem) List() ([]*entity.Permiso, error) {
	var out []*entity.Permiso
	for _, p := range m.permisos {
		out = append(out, p)
	}
	return out, nil
}

func (m *permisoRepoMem) GetByIDs(ids []string) ([]*entity.Permiso, error) {
	var out []*entity.Permiso
	for _, id := range ids {
		if p, ok := m.permisos[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

var clienteKarumbe = "11111111-1111-1111-1111-111111111111"

func setupRolUC(t *testing.T) (*usecase.RolUseCase, *rolRepoMem, *usuarioRepoMem) {
	t.Helper()
	roles := nuevoRolRepoMem()
	permisos := &permisoRepoMem{permisos: map[string]*entity.Permiso{
		"p1": {ID: "p1", Codigo: "ventas.leer"},
		"p2": {ID: "p2", Codigo: "ventas.crear"},
	}}
	usuarios := &usuarioRepoMem{usuarios: map[string]*entity.Usuario{}}
	return usecase.NewRolUseCase(roles, permisos, usuarios), roles, usuarios
}

func TestCrearRol_ConPermisos(t *testing.T) {
	uc, repo, _ := setupRolUC(t)

	out, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{
		Nombre:     "Cajero",
		PermisoIDs: []string{"p1", "p2"},
	})
	require.NoError(t, err)

	assert.False(t, out.EsRolSistema, "los roles creados por clientes nunca son de sistema")
	assert.Len(t, out.Permisos, 2)
	assert.Equal(t, []string{"p1", "p2"}, repo.permisosRol[out.ID])
}

func TestCrearRol_NombreDuplicadoMismoCliente(t *testing.T) {
	uc, _, _ := setupRolUC(t)

	_, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero"})
	require.NoError(t, err)

	_, err = uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero"})
	assert.ErrorIs(t, err, domain.ErrRolExiste)

	// El mismo nombre en otro cliente sí es válido.
	otroCliente := "22222222-2222-2222-2222-222222222222"
	_, err = uc.Create(&otroCliente, dto.RolCreateRequest{Nombre: "Cajero"})
	assert.NoError(t, err, "la unicidad del nombre es por ámbito de cliente")
}

func TestCrearRol_PermisoInexistente(t *testing.T) {
	uc, _, _ := setupRolUC(t)

	_, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{
		Nombre:     "Cajero",
		PermisoIDs: []string{"p1", "no-existe"},
	})
	assert.ErrorIs(t, err, domain.ErrPermisoInvalido)
}

func TestActualizarRol_RolDeSistemaInmutable(t *testing.T) {
	uc, repo, _ := setupRolUC(t)
	repo.roles["sys"] = &entity.Rol{ID: "sys", ClienteID: &clienteKarumbe, Nombre: "Administrador", EsRolSistema: true}

	nombre := "Otro"
	_, err := uc.Update(&clienteKarumbe, "sys", dto.RolUpdateRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrRolDeSistema)

	err = uc.Delete(&clienteKarumbe, "sys")
	assert.ErrorIs(t, err, domain.ErrRolDeSistema)
}

func TestActualizarRol_ReemplazaPermisosComoConjunto(t *testing.T) {
	uc, repo, _ := setupRolUC(t)
	out, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero", PermisoIDs: []string{"p1", "p2"}})
	require.NoError(t, err)

	nuevos := []string{"p2"}
	_, err = uc.Update(&clienteKarumbe, out.ID, dto.RolUpdateRequest{PermisoIDs: &nuevos})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, repo.permisosRol[out.ID], "el conjunto anterior se reemplaza completo")
}

func TestEliminarRol_CascadaDePermisos(t *testing.T) {
	uc, repo, _ := setupRolUC(t)
	out, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Temporal", PermisoIDs: []string{"p1"}})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(&clienteKarumbe, out.ID))
	_, quedan := repo.permisosRol[out.ID]
	assert.False(t, quedan, "al eliminar el rol caen sus filas de permisos_roles")
}

func TestGetRol_OtroClienteNoLoVe(t *testing.T) {
	uc, _, _ := setupRolUC(t)
	out, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero"})
	require.NoError(t, err)

	otroCliente := "22222222-2222-2222-2222-222222222222"
	_, err = uc.GetByID(&otroCliente, out.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestListRoles_IncluyeGlobales(t *testing.T) {
	uc, repo, _ := setupRolUC(t)
	repo.roles["global"] = &entity.Rol{ID: "global", ClienteID: nil, Nombre: entity.SuperAdminRol, EsRolSistema: true}
	_, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero"})
	require.NoError(t, err)

	roles, err := uc.List(&clienteKarumbe)
	require.NoError(t, err)
	assert.Len(t, roles, 2, "roles del cliente más roles globales")
}

func TestAsignarRol_RegistraQuienAsigna(t *testing.T) {
	uc, repo, usuarios := setupRolUC(t)
	usuarios.usuarios["u1"] = &entity.Usuario{ID: "u1", ClienteID: &clienteKarumbe, NombreUsuario: "vendedor1"}
	out, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero"})
	require.NoError(t, err)

	err = uc.AsignarRol(&clienteKarumbe, "admin-id", dto.AsignarRolRequest{UsuarioID: "u1", RolID: out.ID})
	require.NoError(t, err)

	require.Len(t, repo.asignaciones, 1)
	assert.Equal(t, "admin-id", repo.asignaciones[0].AsignadoPor)
	assert.Equal(t, "u1", repo.asignaciones[0].UsuarioID)
}

func TestAsignarRol_RolGlobalVedadoParaActoresDeCliente(t *testing.T) {
	uc, repo, usuarios := setupRolUC(t)
	repo.roles["global"] = &entity.Rol{ID: "global", ClienteID: nil, Nombre: entity.SuperAdminRol, EsRolSistema: true}
	usuarios.usuarios["u1"] = &entity.Usuario{ID: "u1", ClienteID: &clienteKarumbe, NombreUsuario: "vendedor1"}

	// Un administrador de cliente no puede auto-asignarse (ni asignar a nadie)
	// un rol global: eso lo convertiría en super admin en su próximo login.
	err := uc.AsignarRol(&clienteKarumbe, "u1", dto.AsignarRolRequest{UsuarioID: "u1", RolID: "global"})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Empty(t, repo.asignaciones)

	// El super admin (ámbito nil) sí puede.
	usuarios.usuarios["u2"] = &entity.Usuario{ID: "u2", ClienteID: nil, NombreUsuario: "root2"}
	err = uc.AsignarRol(nil, "root-id", dto.AsignarRolRequest{UsuarioID: "u2", RolID: "global"})
	require.NoError(t, err)
	assert.Len(t, repo.asignaciones, 1)
}

func TestAsignarRol_UsuarioDeOtroClienteProhibido(t *testing.T) {
	uc, repo, usuarios := setupRolUC(t)
	otro := "22222222-2222-2222-2222-222222222222"
	usuarios.usuarios["ajeno"] = &entity.Usuario{ID: "ajeno", ClienteID: &otro, NombreUsuario: "ajeno"}
	out, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero"})
	require.NoError(t, err)

	err = uc.AsignarRol(&clienteKarumbe, "admin-id", dto.AsignarRolRequest{UsuarioID: "ajeno", RolID: out.ID})
	assert.ErrorIs(t, err, domain.ErrProhibido)
	assert.Empty(t, repo.asignaciones)
}

func TestQuitarRol_MismasReglasDeAmbito(t *testing.T) {
	uc, repo, usuarios := setupRolUC(t)
	repo.roles["global"] = &entity.Rol{ID: "global", ClienteID: nil, Nombre: entity.SuperAdminRol, EsRolSistema: true}
	usuarios.usuarios["root"] = &entity.Usuario{ID: "root", ClienteID: nil, NombreUsuario: "super_admin"}
	repo.asignaciones = append(repo.asignaciones, &entity.AsignacionRol{UsuarioID: "root", RolID: "global"})

	// Un actor de cliente no puede quitarle el rol global al super admin.
	err := uc.QuitarRol(&clienteKarumbe, "root", "global")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Len(t, repo.asignaciones, 1)

	// Dentro de su propio ámbito la operación sí procede.
	usuarios.usuarios["u1"] = &entity.Usuario{ID: "u1", ClienteID: &clienteKarumbe, NombreUsuario: "vendedor1"}
	out, err := uc.Create(&clienteKarumbe, dto.RolCreateRequest{Nombre: "Cajero"})
	require.NoError(t, err)
	require.NoError(t, uc.AsignarRol(&clienteKarumbe, "admin-id", dto.AsignarRolRequest{UsuarioID: "u1", RolID: out.ID}))
	require.NoError(t, uc.QuitarRol(&clienteKarumbe, "u1", out.ID))
	assert.Len(t, repo.asignaciones, 1, "solo queda la asignación global del super admin")
}

func TestActualizarRol_GlobalFueraDelAmbitoDeCliente(t *testing.T) {
	uc, repo, _ := setupRolUC(t)
	repo.roles["global"] = &entity.Rol{ID: "global", ClienteID: nil, Nombre: "Auditor"}

	// Visible en listados, pero inmutable para actores de cliente.
	nombre := "Otro"
	_, err := uc.Update(&clienteKarumbe, "global", dto.RolUpdateRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)

	err = uc.Delete(&clienteKarumbe, "global")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Empty(t, repo.eliminados)
}
