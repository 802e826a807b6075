package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexusgestion/admin-api/internal/application/auth"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClienteUC    *usecase.ClienteUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	RolUC        *usecase.RolUseCase
	ComprasUC    *usecase.ComprasUseCase
	InventarioUC *usecase.InventarioUseCase
	TokenCodec   *token.Codec
}

// Router registra las rutas de la API. Cada ruta protegida declara el
// permiso que exige; el super admin pasa todos los guards de permiso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.TokenCodec))

	// Clientes (solo super admin)
	clientes := protected.Group("/clientes", RequireSuperAdmin())
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Suspender)
	clientes.Post("/:id/contactos", clienteHandler.CrearContacto)
	clientes.Get("/:id/contactos", clienteHandler.ListContactos)

	// Usuarios (protegido por permiso)
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", RequirePermission("administracion.usuarios.crear"), usuarioHandler.Create)
	usuarios.Get("/", RequirePermission("administracion.usuarios.leer"), usuarioHandler.List)
	usuarios.Get("/:id", RequirePermission("administracion.usuarios.leer"), usuarioHandler.GetByID)
	usuarios.Put("/:id", RequirePermission("administracion.usuarios.actualizar"), usuarioHandler.Update)
	usuarios.Delete("/:id", RequirePermission("administracion.usuarios.eliminar"), usuarioHandler.Desactivar)

	// Roles y permisos (protegido por permiso)
	roles := protected.Group("/roles")
	rolHandler := NewRolHandler(deps.RolUC)
	roles.Get("/permisos", RequirePermission("administracion.roles.leer"), rolHandler.ListPermisos)
	roles.Post("/asignar", RequirePermission("administracion.roles.actualizar"), rolHandler.AsignarRol)
	roles.Delete("/asignar/:usuarioId/:rolId", RequirePermission("administracion.roles.actualizar"), rolHandler.QuitarRol)
	roles.Post("/", RequirePermission("administracion.roles.crear"), rolHandler.Create)
	roles.Get("/", RequirePermission("administracion.roles.leer"), rolHandler.List)
	roles.Get("/:id", RequirePermission("administracion.roles.leer"), rolHandler.GetByID)
	roles.Put("/:id", RequirePermission("administracion.roles.actualizar"), rolHandler.Update)
	roles.Delete("/:id", RequirePermission("administracion.roles.eliminar"), rolHandler.Delete)

	// Compras: proveedores, órdenes y facturas (protegido por permiso)
	compras := protected.Group("/compras")
	comprasHandler := NewComprasHandler(deps.ComprasUC)
	compras.Post("/proveedores", RequirePermission("compras.crear"), comprasHandler.CrearProveedor)
	compras.Get("/proveedores", RequirePermission("compras.leer"), comprasHandler.ListProveedores)
	compras.Get("/proveedores/:id", RequirePermission("compras.leer"), comprasHandler.GetProveedor)
	compras.Post("/ordenes", RequirePermission("compras.crear"), comprasHandler.CrearOrden)
	compras.Get("/ordenes", RequirePermission("compras.leer"), comprasHandler.ListOrdenes)
	compras.Get("/ordenes/:id", RequirePermission("compras.leer"), comprasHandler.GetOrden)
	compras.Post("/ordenes/:id/items", RequirePermission("compras.actualizar"), comprasHandler.AgregarItem)
	compras.Get("/ordenes/:id/pdf", RequirePermission("compras.leer"), comprasHandler.DescargarOrdenPDF)
	compras.Post("/facturas", RequirePermission("compras.crear"), comprasHandler.CrearFactura)
	compras.Get("/facturas", RequirePermission("compras.leer"), comprasHandler.ListFacturas)

	// Inventario: categorías, productos, ajustes y alertas (protegido por permiso)
	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Post("/categorias", RequirePermission("inventario.productos.crear"), inventarioHandler.CrearCategoria)
	inventario.Get("/categorias", RequirePermission("inventario.productos.leer"), inventarioHandler.ListCategorias)
	inventario.Post("/productos", RequirePermission("inventario.productos.crear"), inventarioHandler.CrearProducto)
	inventario.Get("/productos", RequirePermission("inventario.productos.leer"), inventarioHandler.ListProductos)
	inventario.Get("/productos/:id", RequirePermission("inventario.productos.leer"), inventarioHandler.GetProducto)
	inventario.Post("/ajustes", RequirePermission("inventario.productos.actualizar"), inventarioHandler.CrearAjuste)
	inventario.Get("/ajustes", RequirePermission("inventario.productos.leer"), inventarioHandler.ListAjustes)
	inventario.Get("/alertas", RequirePermission("inventario.productos.leer"), inventarioHandler.ListAlertas)
	inventario.Put("/alertas/:id/leida", RequirePermission("inventario.productos.actualizar"), inventarioHandler.MarcarAlertaLeida)
}
