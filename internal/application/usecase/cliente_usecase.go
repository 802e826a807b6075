package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// ClienteUseCase administración global de tenants. Todas las operaciones se
// exponen únicamente detrás del guard de super admin.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso de clientes.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// NormalizarSubdominio convierte un subdominio a su forma canónica: minúsculas,
// sin acentos ni marcas diacríticas (NFD + remoción de combining marks), y sin
// espacios. "Karumbé Pizzas" -> "karumbepizzas".
func NormalizarSubdominio(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, s)
	if err != nil {
		plano = s
	}
	plano = strings.ToLower(strings.TrimSpace(plano))
	return strings.ReplaceAll(plano, " ", "")
}

// Create registra un nuevo tenant. El subdominio se normaliza y debe ser único
// en todo el sistema.
func (uc *ClienteUseCase) Create(in dto.ClienteCreateRequest) (*dto.ClienteResponse, error) {
	subdominio := NormalizarSubdominio(in.Subdominio)
	if subdominio == "" || in.Nombre == "" {
		return nil, domain.ErrConflicto
	}
	existente, err := uc.clienteRepo.GetBySubdominio(subdominio)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrSubdominioExiste
	}
	cliente := &entity.Cliente{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Subdominio:    subdominio,
		Estado:        entity.ClienteActivo,
		Configuracion: in.Configuracion,
		FechaCreacion: time.Now(),
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List retorna la lista maestra de tenants.
func (uc *ClienteUseCase) List() ([]*dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// GetByID retorna un tenant por su ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toClienteResponse(cliente), nil
}

// Update actualiza nombre, estado o configuración de un tenant.
func (uc *ClienteUseCase) Update(id string, in dto.ClienteUpdateRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.Estado != nil {
		cliente.Estado = *in.Estado
	}
	if in.Configuracion != nil {
		cliente.Configuracion = in.Configuracion
	}
	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Suspender eliminación lógica: el tenant pasa a estado suspendido, nunca se
// borra la fila.
func (uc *ClienteUseCase) Suspender(id string) error {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNoEncontrado
	}
	cliente.Estado = entity.ClienteSuspendido
	return uc.clienteRepo.Update(cliente)
}

// CrearContacto agrega un contacto a un tenant existente.
func (uc *ClienteUseCase) CrearContacto(clienteID string, in dto.ContactoClienteCreateRequest) (*dto.ContactoClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado
	}
	contacto := &entity.ContactoCliente{
		ID:             uuid.New().String(),
		ClienteID:      clienteID,
		NombreContacto: in.NombreContacto,
		Rol:            in.Rol,
		Telefono:       in.Telefono,
		Email:          in.Email,
	}
	if err := uc.clienteRepo.CreateContacto(contacto); err != nil {
		return nil, err
	}
	return toContactoResponse(contacto), nil
}

// ListContactos lista los contactos de un tenant.
func (uc *ClienteUseCase) ListContactos(clienteID string) ([]*dto.ContactoClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado
	}
	contactos, err := uc.clienteRepo.ListContactos(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactoClienteResponse, 0, len(contactos))
	for _, c := range contactos {
		out = append(out, toContactoResponse(c))
	}
	return out, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Subdominio:    c.Subdominio,
		Estado:        c.Estado,
		Configuracion: c.Configuracion,
		FechaCreacion: c.FechaCreacion,
	}
}

func toContactoResponse(c *entity.ContactoCliente) *dto.ContactoClienteResponse {
	return &dto.ContactoClienteResponse{
		ID:             c.ID,
		ClienteID:      c.ClienteID,
		NombreContacto: c.NombreContacto,
		Rol:            c.Rol,
		Telefono:       c.Telefono,
		Email:          c.Email,
	}
}
