package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente (tenants).
// Solo lo consumen operaciones globales de super admin; no filtra por tenant.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetBySubdominio(subdominio string) (*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	CreateContacto(contacto *entity.ContactoCliente) error
	ListContactos(clienteID string) ([]*entity.ContactoCliente, error)
}
