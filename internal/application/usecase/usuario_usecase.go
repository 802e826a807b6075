package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nexusgestion/admin-api/internal/application/auth"
	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
	"github.com/nexusgestion/admin-api/pkg/password"
)

// UsuarioUseCase CRUD de usuarios bajo disciplina multi-tenant: el ámbito del
// llamador (clienteID del token, nil = super admin) acota cada operación.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
	clienteRepo repository.ClienteRepository
}

// NewUsuarioUseCase construye el caso de uso de usuarios.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository, clienteRepo repository.ClienteRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo, clienteRepo: clienteRepo}
}

// Create registra un usuario. Para llamadores operativos el cliente_id del
// payload se SOBREESCRIBE con el del token (nunca se acepta el del body);
// el super admin debe especificarlo explícitamente.
func (uc *UsuarioUseCase) Create(ambito *string, in dto.UsuarioCreateRequest) (*dto.UsuarioResponse, error) {
	clienteID := in.ClienteID
	if ambito != nil {
		clienteID = ambito
	}
	if clienteID != nil {
		cliente, err := uc.clienteRepo.GetByID(*clienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNoEncontrado
		}
	}
	existente, err := uc.usuarioRepo.FindByNombreUsuario(in.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrUsuarioExiste
	}
	hash, err := password.Hash(in.Contrasena)
	if err != nil {
		return nil, err
	}
	ahora := time.Now()
	usuario := &entity.Usuario{
		ID:                 uuid.New().String(),
		ClienteID:          clienteID,
		NombreUsuario:      in.NombreUsuario,
		Email:              in.Email,
		ContrasenaHash:     hash,
		Nombre:             in.Nombre,
		Apellido:           in.Apellido,
		Estado:             entity.UsuarioActivo,
		FechaCreacion:      ahora,
		FechaActualizacion: ahora,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	resp := auth.ToUsuarioResponse(usuario)
	return &resp, nil
}

// List lista los usuarios del ámbito. Super admin (ambito nil) ve todos.
func (uc *UsuarioUseCase) List(ambito *string) ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.ListByCliente(ambito)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		resp := auth.ToUsuarioResponse(u)
		out = append(out, &resp)
	}
	return out, nil
}

// GetByID retorna un usuario solo si pertenece al ámbito del llamador.
func (uc *UsuarioUseCase) GetByID(ambito *string, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.buscarEnAmbito(ambito, id)
	if err != nil {
		return nil, err
	}
	resp := auth.ToUsuarioResponse(usuario)
	return &resp, nil
}

// Update actualiza datos básicos; contraseña presente se rehashea.
func (uc *UsuarioUseCase) Update(ambito *string, id string, in dto.UsuarioUpdateRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.buscarEnAmbito(ambito, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		usuario.Email = *in.Email
	}
	if in.Nombre != nil {
		usuario.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		usuario.Apellido = *in.Apellido
	}
	if in.Estado != nil {
		usuario.Estado = *in.Estado
	}
	if in.Contrasena != nil && *in.Contrasena != "" {
		hash, err := password.Hash(*in.Contrasena)
		if err != nil {
			return nil, err
		}
		usuario.ContrasenaHash = hash
	}
	usuario.FechaActualizacion = time.Now()
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}
	resp := auth.ToUsuarioResponse(usuario)
	return &resp, nil
}

// Desactivar eliminación lógica: estado pasa a inactivo, la fila permanece.
func (uc *UsuarioUseCase) Desactivar(ambito *string, id string) error {
	usuario, err := uc.buscarEnAmbito(ambito, id)
	if err != nil {
		return err
	}
	usuario.Estado = entity.UsuarioInactivo
	usuario.FechaActualizacion = time.Now()
	return uc.usuarioRepo.Update(usuario)
}

// buscarEnAmbito aplica la verificación de tenancy sobre la fila destino: un
// llamador operativo solo alcanza usuarios de su propio cliente.
func (uc *UsuarioUseCase) buscarEnAmbito(ambito *string, id string) (*entity.Usuario, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNoEncontrado
	}
	if ambito != nil {
		if usuario.ClienteID == nil || *usuario.ClienteID != *ambito {
			return nil, domain.ErrProhibido
		}
	}
	return usuario, nil
}
