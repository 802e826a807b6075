package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// RolUseCase gestión de roles y del catálogo de permisos dentro del ámbito de
// un cliente. Los roles de sistema son inmutables para actores de cliente; la
// asignación de permisos reemplaza el conjunto completo de forma atómica.
//
// Los roles globales (ClienteID nil) son visibles para todos los tenants pero
// solo mutables y asignables por el super admin: un actor de cliente jamás
// puede escribir sobre un rol fuera de su propio ámbito.
type RolUseCase struct {
	rolRepo     repository.RolRepository
	permisoRepo repository.PermisoRepository
	usuarioRepo repository.UsuarioRepository
}

// NewRolUseCase construye el caso de uso de roles.
func NewRolUseCase(rolRepo repository.RolRepository, permisoRepo repository.PermisoRepository, usuarioRepo repository.UsuarioRepository) *RolUseCase {
	return &RolUseCase{rolRepo: rolRepo, permisoRepo: permisoRepo, usuarioRepo: usuarioRepo}
}

// ListPermisos catálogo completo de permisos del sistema.
func (uc *RolUseCase) ListPermisos() ([]dto.PermisoResponse, error) {
	permisos, err := uc.permisoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermisoResponse, 0, len(permisos))
	for _, p := range permisos {
		out = append(out, toPermisoResponse(p))
	}
	return out, nil
}

// Create crea un rol de cliente (nunca de sistema) con su conjunto de permisos.
// El nombre debe ser único dentro del cliente; los IDs de permiso deben existir.
func (uc *RolUseCase) Create(clienteID *string, in dto.RolCreateRequest) (*dto.RolResponse, error) {
	existente, err := uc.rolRepo.GetByNombre(in.Nombre, clienteID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrRolExiste
	}
	if err := uc.validarPermisos(in.PermisoIDs); err != nil {
		return nil, err
	}
	rol := &entity.Rol{
		ID:            uuid.New().String(),
		ClienteID:     clienteID,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		EsRolSistema:  false,
		FechaCreacion: time.Now(),
	}
	if err := uc.rolRepo.Create(rol, in.PermisoIDs); err != nil {
		return nil, err
	}
	return uc.toRolResponse(rol)
}

// List roles del cliente más los roles globales (cliente_id NULL), que son
// visibles para todos los tenants.
func (uc *RolUseCase) List(clienteID *string) ([]*dto.RolResponse, error) {
	roles, err := uc.rolRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		resp, err := uc.toRolResponse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// GetByID retorna un rol del cliente o global.
func (uc *RolUseCase) GetByID(clienteID *string, id string) (*dto.RolResponse, error) {
	rol, err := uc.rolRepo.GetByID(id, clienteID)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, domain.ErrNoEncontrado
	}
	return uc.toRolResponse(rol)
}

// Update modifica nombre/descripción y, si PermisoIDs no es nil, reemplaza el
// conjunto completo de permisos en una sola transacción. Roles de sistema no
// se tocan.
func (uc *RolUseCase) Update(clienteID *string, id string, in dto.RolUpdateRequest) (*dto.RolResponse, error) {
	rol, err := uc.rolRepo.GetByID(id, clienteID)
	if err != nil {
		return nil, err
	}
	if rol == nil || fueraDeAmbito(rol, clienteID) {
		return nil, domain.ErrNoEncontrado
	}
	if rol.EsRolSistema {
		return nil, domain.ErrRolDeSistema
	}
	if in.Nombre != nil && *in.Nombre != rol.Nombre {
		duplicado, err := uc.rolRepo.GetByNombre(*in.Nombre, clienteID)
		if err != nil {
			return nil, err
		}
		if duplicado != nil {
			return nil, domain.ErrRolExiste
		}
		rol.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		rol.Descripcion = *in.Descripcion
	}
	if err := uc.rolRepo.Update(rol); err != nil {
		return nil, err
	}
	if in.PermisoIDs != nil {
		if err := uc.validarPermisos(*in.PermisoIDs); err != nil {
			return nil, err
		}
		if err := uc.rolRepo.ReemplazarPermisos(rol.ID, *in.PermisoIDs); err != nil {
			return nil, err
		}
	}
	return uc.toRolResponse(rol)
}

// Delete elimina un rol de cliente; la fila de permisos_roles cae en cascada.
// Roles de sistema no se eliminan.
func (uc *RolUseCase) Delete(clienteID *string, id string) error {
	rol, err := uc.rolRepo.GetByID(id, clienteID)
	if err != nil {
		return err
	}
	if rol == nil || fueraDeAmbito(rol, clienteID) {
		return domain.ErrNoEncontrado
	}
	if rol.EsRolSistema {
		return domain.ErrRolDeSistema
	}
	return uc.rolRepo.Delete(rol.ID)
}

// AsignarRol asigna un rol a un usuario registrando quién lo asignó. Un actor
// de cliente solo puede asignar roles de su propio cliente, y solo a usuarios
// de su propio cliente; los roles globales los asigna únicamente el super admin.
func (uc *RolUseCase) AsignarRol(clienteID *string, asignadoPor string, in dto.AsignarRolRequest) error {
	rol, err := uc.rolRepo.GetByID(in.RolID, clienteID)
	if err != nil {
		return err
	}
	if rol == nil || fueraDeAmbito(rol, clienteID) {
		return domain.ErrNoEncontrado
	}
	if err := uc.validarUsuarioEnAmbito(in.UsuarioID, clienteID); err != nil {
		return err
	}
	return uc.rolRepo.AsignarRolAUsuario(&entity.AsignacionRol{
		UsuarioID:       in.UsuarioID,
		RolID:           in.RolID,
		AsignadoPor:     asignadoPor,
		FechaAsignacion: time.Now(),
	})
}

// QuitarRol revierte una asignación usuario-rol, con las mismas reglas de
// ámbito que AsignarRol.
func (uc *RolUseCase) QuitarRol(clienteID *string, usuarioID, rolID string) error {
	rol, err := uc.rolRepo.GetByID(rolID, clienteID)
	if err != nil {
		return err
	}
	if rol == nil || fueraDeAmbito(rol, clienteID) {
		return domain.ErrNoEncontrado
	}
	if err := uc.validarUsuarioEnAmbito(usuarioID, clienteID); err != nil {
		return err
	}
	return uc.rolRepo.QuitarRolAUsuario(usuarioID, rolID)
}

// fueraDeAmbito reporta si un actor con ámbito de cliente intenta mutar un rol
// global o de otro cliente. Con ámbito nil (super admin) nada queda fuera.
func fueraDeAmbito(rol *entity.Rol, clienteID *string) bool {
	if clienteID == nil {
		return false
	}
	return rol.ClienteID == nil || *rol.ClienteID != *clienteID
}

// validarUsuarioEnAmbito verifica que el usuario objetivo exista y, para
// actores de cliente, que pertenezca a su mismo cliente.
func (uc *RolUseCase) validarUsuarioEnAmbito(usuarioID string, clienteID *string) error {
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNoEncontrado
	}
	if clienteID != nil && (usuario.ClienteID == nil || *usuario.ClienteID != *clienteID) {
		return domain.ErrProhibido
	}
	return nil
}

func (uc *RolUseCase) validarPermisos(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	permisos, err := uc.permisoRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	if len(permisos) != len(ids) {
		return domain.ErrPermisoInvalido
	}
	return nil
}

func (uc *RolUseCase) toRolResponse(r *entity.Rol) (*dto.RolResponse, error) {
	permisos, err := uc.rolRepo.ListPermisosDeRol(r.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.RolResponse{
		ID:           r.ID,
		ClienteID:    r.ClienteID,
		Nombre:       r.Nombre,
		Descripcion:  r.Descripcion,
		EsRolSistema: r.EsRolSistema,
		Permisos:     make([]dto.PermisoResponse, 0, len(permisos)),
	}
	for _, p := range permisos {
		resp.Permisos = append(resp.Permisos, toPermisoResponse(p))
	}
	return resp, nil
}

func toPermisoResponse(p *entity.Permiso) dto.PermisoResponse {
	return dto.PermisoResponse{ID: p.ID, Codigo: p.Codigo, Descripcion: p.Descripcion, Modulo: p.Modulo}
}
