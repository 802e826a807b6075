package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
// FindByNombreUsuario devuelve también el hash de contraseña y el cliente_id,
// es la consulta que alimenta la autenticación.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByNombreUsuario(nombreUsuario string) (*entity.Usuario, error)
	// ListByCliente lista los usuarios de un cliente. Con clienteID nil lista
	// todos los usuarios del sistema (ruta exclusiva del super admin).
	ListByCliente(clienteID *string) ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	ActualizarUltimoLogin(id string) error
}
