package seed

import (
	"context"
	"time"

	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
	"github.com/nexusgestion/admin-api/pkg/password"
)

// TxRunner abre una transacción y ejecuta el callback con repos atados a ella.
// La carga completa corre en una sola tx: o se siembra todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		usuarioRepo repository.UsuarioRepository,
		rolRepo repository.RolRepository,
		permisoRepo repository.PermisoRepository,
	) error) error
}

// IDs fijos para garantizar idempotencia entre ejecuciones.
const (
	SuperAdminRolID    = "50000000-0000-0000-0000-000000000001"
	ClienteAdminRolID  = "50000000-0000-0000-0000-000000000002"
	VendedorRolID      = "50000000-0000-0000-0000-000000000003"

	ClienteGlobalID     = "00000000-0000-0000-0000-000000000000"
	ClienteKarumbeID    = "11111111-1111-1111-1111-111111111111"
	ClienteMartilloID   = "22222222-2222-2222-2222-222222222222"
	ClienteDulceSaborID = "33333333-3333-3333-3333-333333333333"

	UsuarioSuperAdminID     = "eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee"
	UsuarioAdminKarumbeID   = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	UsuarioVendedorKarumbeID = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	UsuarioAdminMartilloID  = "cccccccc-cccc-cccc-cccc-cccccccccccc"
	UsuarioAdminDulceSaborID = "dddddddd-dddd-dddd-dddd-dddddddddddd"
)

// contrasenaPrueba es la contraseña de todos los usuarios sembrados.
const contrasenaPrueba = "12345"

// Catalogo retorna el catálogo completo de permisos del sistema con sus IDs fijos.
func Catalogo() []*entity.Permiso {
	return []*entity.Permiso{
		// Administración - Clientes/Tenants (global, solo Super Admin)
		{ID: "40000000-0000-0000-0000-000000000001", Codigo: "administracion.clientes.leer", Descripcion: "Ver lista y detalles de Clientes/Tenants.", Modulo: "Clientes (Global)"},
		{ID: "40000000-0000-0000-0000-000000000002", Codigo: "administracion.clientes.crear", Descripcion: "Crear nuevos Clientes/Tenants.", Modulo: "Clientes (Global)"},
		{ID: "40000000-0000-0000-0000-000000000003", Codigo: "administracion.clientes.actualizar", Descripcion: "Modificar datos de Clientes/Tenants.", Modulo: "Clientes (Global)"},
		{ID: "40000000-0000-0000-0000-000000000004", Codigo: "administracion.clientes.eliminar", Descripcion: "Eliminar o desactivar Clientes/Tenants.", Modulo: "Clientes (Global)"},
		// Administración - Usuarios
		{ID: "40000000-0000-0000-0000-000000000005", Codigo: "administracion.usuarios.leer", Descripcion: "Ver lista y detalles de usuarios.", Modulo: "Usuarios"},
		{ID: "40000000-0000-0000-0000-000000000006", Codigo: "administracion.usuarios.crear", Descripcion: "Crear nuevos usuarios.", Modulo: "Usuarios"},
		{ID: "40000000-0000-0000-0000-000000000007", Codigo: "administracion.usuarios.actualizar", Descripcion: "Modificar datos de usuarios.", Modulo: "Usuarios"},
		{ID: "40000000-0000-0000-0000-000000000008", Codigo: "administracion.usuarios.eliminar", Descripcion: "Desactivar o eliminar usuarios.", Modulo: "Usuarios"},
		// Administración - Roles
		{ID: "40000000-0000-0000-0000-000000000009", Codigo: "administracion.roles.leer", Descripcion: "Ver lista de roles y permisos.", Modulo: "Roles"},
		{ID: "40000000-0000-0000-0000-00000000000a", Codigo: "administracion.roles.crear", Descripcion: "Crear nuevos roles.", Modulo: "Roles"},
		{ID: "40000000-0000-0000-0000-00000000000b", Codigo: "administracion.roles.actualizar", Descripcion: "Modificar roles y asignar permisos.", Modulo: "Roles"},
		{ID: "40000000-0000-0000-0000-00000000000c", Codigo: "administracion.roles.eliminar", Descripcion: "Eliminar roles (si no están asignados).", Modulo: "Roles"},
		// Inventario
		{ID: "40000000-0000-0000-0000-00000000000d", Codigo: "inventario.productos.leer", Descripcion: "Ver lista y detalles de productos y stock.", Modulo: "Inventario"},
		{ID: "40000000-0000-0000-0000-00000000000e", Codigo: "inventario.productos.crear", Descripcion: "Crear nuevos productos.", Modulo: "Inventario"},
		{ID: "40000000-0000-0000-0000-00000000000f", Codigo: "inventario.productos.actualizar", Descripcion: "Modificar datos de productos y stock.", Modulo: "Inventario"},
		{ID: "40000000-0000-0000-0000-000000000010", Codigo: "inventario.productos.eliminar", Descripcion: "Eliminar o desactivar productos.", Modulo: "Inventario"},
		// Ventas
		{ID: "40000000-0000-0000-0000-000000000011", Codigo: "ventas.leer", Descripcion: "Ver reportes y registros de ventas.", Modulo: "Ventas"},
		{ID: "40000000-0000-0000-0000-000000000012", Codigo: "ventas.crear", Descripcion: "Registrar nuevas transacciones de venta.", Modulo: "Ventas"},
		{ID: "40000000-0000-0000-0000-000000000013", Codigo: "ventas.actualizar", Descripcion: "Editar transacciones de venta.", Modulo: "Ventas"},
		{ID: "40000000-0000-0000-0000-000000000014", Codigo: "ventas.eliminar", Descripcion: "Anular transacciones de venta.", Modulo: "Ventas"},
		// Compras
		{ID: "40000000-0000-0000-0000-000000000015", Codigo: "compras.leer", Descripcion: "Ver registros de compras a proveedores.", Modulo: "Compras"},
		{ID: "40000000-0000-0000-0000-000000000016", Codigo: "compras.crear", Descripcion: "Registrar nuevas transacciones de compra.", Modulo: "Compras"},
		{ID: "40000000-0000-0000-0000-000000000017", Codigo: "compras.actualizar", Descripcion: "Modificar transacciones de compra.", Modulo: "Compras"},
		{ID: "40000000-0000-0000-0000-000000000018", Codigo: "compras.eliminar", Descripcion: "Anular transacciones de compra.", Modulo: "Compras"},
		// Pedidos
		{ID: "40000000-0000-0000-0000-000000000019", Codigo: "pedidos.leer", Descripcion: "Ver pedidos de clientes.", Modulo: "Pedidos"},
		{ID: "40000000-0000-0000-0000-00000000001a", Codigo: "pedidos.crear", Descripcion: "Registrar nuevos pedidos.", Modulo: "Pedidos"},
		{ID: "40000000-0000-0000-0000-00000000001b", Codigo: "pedidos.actualizar", Descripcion: "Actualizar estado de pedidos.", Modulo: "Pedidos"},
		{ID: "40000000-0000-0000-0000-00000000001c", Codigo: "pedidos.eliminar", Descripcion: "Cancelar pedidos.", Modulo: "Pedidos"},
		// Presupuestos
		{ID: "40000000-0000-0000-0000-00000000001d", Codigo: "presupuestos.leer", Descripcion: "Ver cotizaciones y presupuestos.", Modulo: "Presupuestos"},
		{ID: "40000000-0000-0000-0000-00000000001e", Codigo: "presupuestos.crear", Descripcion: "Crear nuevas cotizaciones.", Modulo: "Presupuestos"},
		{ID: "40000000-0000-0000-0000-00000000001f", Codigo: "presupuestos.actualizar", Descripcion: "Modificar presupuestos.", Modulo: "Presupuestos"},
		{ID: "40000000-0000-0000-0000-000000000020", Codigo: "presupuestos.eliminar", Descripcion: "Eliminar presupuestos.", Modulo: "Presupuestos"},
		// Contactos y Configuración
		{ID: "40000000-0000-0000-0000-000000000021", Codigo: "contactos.leer", Descripcion: "Ver lista de Clientes y Proveedores.", Modulo: "Contactos"},
		{ID: "40000000-0000-0000-0000-000000000022", Codigo: "contactos.crud", Descripcion: "CRUD de Clientes y Proveedores.", Modulo: "Contactos"},
		{ID: "40000000-0000-0000-0000-000000000023", Codigo: "configuracion.leer", Descripcion: "Ver ajustes de configuración del cliente (moneda, impuestos).", Modulo: "Configuración"},
		{ID: "40000000-0000-0000-0000-000000000024", Codigo: "configuracion.actualizar", Descripcion: "Modificar ajustes de configuración del cliente.", Modulo: "Configuración"},
	}
}

// Seeder carga los datos iniciales del sistema de forma idempotente.
type Seeder struct {
	runner TxRunner
}

// NewSeeder construye el cargador.
func NewSeeder(runner TxRunner) *Seeder {
	return &Seeder{runner: runner}
}

// Cargar siembra catálogo de permisos, clientes, roles, usuarios y
// asignaciones. Si el primer permiso del catálogo ya existe se asume que una
// corrida anterior completó la carga y no se toca nada. Retorna true si esta
// corrida efectivamente sembró datos.
func (s *Seeder) Cargar(ctx context.Context) (bool, error) {
	sembrado := false
	err := s.runner.Run(ctx, func(
		clienteRepo repository.ClienteRepository,
		usuarioRepo repository.UsuarioRepository,
		rolRepo repository.RolRepository,
		permisoRepo repository.PermisoRepository,
	) error {
		catalogo := Catalogo()

		existentes, err := permisoRepo.GetByIDs([]string{catalogo[0].ID})
		if err != nil {
			return err
		}
		if len(existentes) > 0 {
			return nil
		}

		porCodigo := make(map[string]string, len(catalogo))
		for _, p := range catalogo {
			if err := permisoRepo.Create(p); err != nil {
				return err
			}
			porCodigo[p.Codigo] = p.ID
		}

		if err := sembrarClientes(clienteRepo); err != nil {
			return err
		}
		if err := sembrarRoles(rolRepo, porCodigo); err != nil {
			return err
		}
		if err := sembrarUsuarios(usuarioRepo); err != nil {
			return err
		}
		if err := sembrarAsignaciones(rolRepo); err != nil {
			return err
		}
		sembrado = true
		return nil
	})
	return sembrado, err
}

func sembrarClientes(clienteRepo repository.ClienteRepository) error {
	ahora := time.Now()
	clientes := []*entity.Cliente{
		{ID: ClienteGlobalID, Nombre: "Global", Subdominio: "global", Estado: entity.ClienteActivo, Configuracion: map[string]any{}, FechaCreacion: ahora},
		{ID: ClienteKarumbeID, Nombre: "Karumbe Pizzas", Subdominio: "karumbe", Estado: entity.ClienteActivo, Configuracion: configEmpresa("12345678901"), FechaCreacion: ahora},
		{ID: ClienteMartilloID, Nombre: "Ferretería El Martillo", Subdominio: "martillo", Estado: entity.ClienteActivo, Configuracion: configEmpresa("98765432109"), FechaCreacion: ahora},
		{ID: ClienteDulceSaborID, Nombre: "Repostería Dulce Sabor", Subdominio: "dulcesabor", Estado: entity.ClienteActivo, Configuracion: configEmpresa("55555555555"), FechaCreacion: ahora},
	}
	for _, c := range clientes {
		if err := clienteRepo.Create(c); err != nil {
			return err
		}
	}
	return nil
}

func configEmpresa(ruc string) map[string]any {
	return map[string]any{"empresa": map[string]any{"ruc": ruc, "moneda": "USD", "impuesto": 10}}
}

func sembrarRoles(rolRepo repository.RolRepository, porCodigo map[string]string) error {
	ahora := time.Now()
	karumbe := ClienteKarumbeID

	superAdmin := &entity.Rol{
		ID: SuperAdminRolID, ClienteID: nil, Nombre: entity.SuperAdminRol,
		Descripcion: "Administrador Global", EsRolSistema: true, FechaCreacion: ahora,
	}
	if err := rolRepo.Create(superAdmin, ids(porCodigo,
		"administracion.clientes.leer", "administracion.clientes.crear",
		"administracion.clientes.actualizar", "administracion.clientes.eliminar",
	)); err != nil {
		return err
	}

	admin := &entity.Rol{
		ID: ClienteAdminRolID, ClienteID: &karumbe, Nombre: "Administrador",
		Descripcion: "Administrador de una empresa cliente", EsRolSistema: true, FechaCreacion: ahora,
	}
	if err := rolRepo.Create(admin, ids(porCodigo,
		"administracion.usuarios.leer", "administracion.usuarios.crear", "administracion.usuarios.actualizar", "administracion.usuarios.eliminar",
		"administracion.roles.leer", "administracion.roles.crear", "administracion.roles.actualizar", "administracion.roles.eliminar",
		"inventario.productos.leer", "inventario.productos.crear", "inventario.productos.actualizar", "inventario.productos.eliminar",
		"ventas.leer", "ventas.crear", "ventas.actualizar", "ventas.eliminar",
		"compras.leer", "compras.crear", "compras.actualizar", "compras.eliminar",
		"pedidos.leer", "pedidos.crear", "pedidos.actualizar", "pedidos.eliminar",
		"presupuestos.leer", "presupuestos.crear", "presupuestos.actualizar", "presupuestos.eliminar",
		"contactos.leer", "contactos.crud", "configuracion.leer", "configuracion.actualizar",
	)); err != nil {
		return err
	}

	vendedor := &entity.Rol{
		ID: VendedorRolID, ClienteID: &karumbe, Nombre: "Vendedor",
		Descripcion: "Rol básico para la operación de ventas", EsRolSistema: true, FechaCreacion: ahora,
	}
	return rolRepo.Create(vendedor, ids(porCodigo,
		"ventas.crear", "ventas.leer",
		"pedidos.crear", "pedidos.leer",
		"presupuestos.crear", "presupuestos.leer",
		"contactos.leer",
	))
}

func ids(porCodigo map[string]string, codigos ...string) []string {
	out := make([]string, 0, len(codigos))
	for _, c := range codigos {
		out = append(out, porCodigo[c])
	}
	return out
}

func sembrarUsuarios(usuarioRepo repository.UsuarioRepository) error {
	hash, err := password.Hash(contrasenaPrueba)
	if err != nil {
		return err
	}
	ahora := time.Now()
	karumbe, martillo, dulcesabor := ClienteKarumbeID, ClienteMartilloID, ClienteDulceSaborID
	usuarios := []*entity.Usuario{
		{ID: UsuarioSuperAdminID, ClienteID: nil, NombreUsuario: "super_admin", Email: "super@admin.com", Nombre: "Mr.", Apellido: "Global"},
		{ID: UsuarioAdminKarumbeID, ClienteID: &karumbe, NombreUsuario: "admin_karumbe", Email: "admin@karumbe.com", Nombre: "Carlos", Apellido: "Rodríguez"},
		{ID: UsuarioVendedorKarumbeID, ClienteID: &karumbe, NombreUsuario: "vendedor_karumbe", Email: "vendedor@karumbe.com", Nombre: "María", Apellido: "González"},
		{ID: UsuarioAdminMartilloID, ClienteID: &martillo, NombreUsuario: "admin_martillo", Email: "admin@martillo.com", Nombre: "Roberto", Apellido: "Silva"},
		{ID: UsuarioAdminDulceSaborID, ClienteID: &dulcesabor, NombreUsuario: "admin_dulcesabor", Email: "admin@dulcesabor.com", Nombre: "Ana", Apellido: "Martínez"},
	}
	for _, u := range usuarios {
		u.ContrasenaHash = hash
		u.Estado = entity.UsuarioActivo
		u.FechaCreacion = ahora
		u.FechaActualizacion = ahora
		if err := usuarioRepo.Create(u); err != nil {
			return err
		}
	}
	return nil
}

func sembrarAsignaciones(rolRepo repository.RolRepository) error {
	ahora := time.Now()
	asignaciones := []*entity.AsignacionRol{
		{UsuarioID: UsuarioSuperAdminID, RolID: SuperAdminRolID, AsignadoPor: UsuarioSuperAdminID, FechaAsignacion: ahora},
		{UsuarioID: UsuarioAdminKarumbeID, RolID: ClienteAdminRolID, AsignadoPor: UsuarioSuperAdminID, FechaAsignacion: ahora},
		{UsuarioID: UsuarioAdminMartilloID, RolID: ClienteAdminRolID, AsignadoPor: UsuarioSuperAdminID, FechaAsignacion: ahora},
		{UsuarioID: UsuarioAdminDulceSaborID, RolID: ClienteAdminRolID, AsignadoPor: UsuarioSuperAdminID, FechaAsignacion: ahora},
		{UsuarioID: UsuarioVendedorKarumbeID, RolID: VendedorRolID, AsignadoPor: UsuarioAdminKarumbeID, FechaAsignacion: ahora},
	}
	for _, a := range asignaciones {
		if err := rolRepo.AsignarRolAUsuario(a); err != nil {
			return err
		}
	}
	return nil
}
