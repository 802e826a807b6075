package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// InventarioUseCase categorías, productos, ajustes y alertas de stock, todo
// acotado al cliente resuelto por el guard.
type InventarioUseCase struct {
	categoriaRepo repository.CategoriaRepository
	productoRepo  repository.ProductoRepository
	ajusteRepo    repository.AjusteInventarioRepository
	alertaRepo    repository.AlertaStockRepository
}

// NewInventarioUseCase construye el caso de uso de inventario.
func NewInventarioUseCase(
	categoriaRepo repository.CategoriaRepository,
	productoRepo repository.ProductoRepository,
	ajusteRepo repository.AjusteInventarioRepository,
	alertaRepo repository.AlertaStockRepository,
) *InventarioUseCase {
	return &InventarioUseCase{
		categoriaRepo: categoriaRepo,
		productoRepo:  productoRepo,
		ajusteRepo:    ajusteRepo,
		alertaRepo:    alertaRepo,
	}
}

// ── Categorías ───────────────────────────────────────────────────────────────

// CrearCategoria alta de categoría; nombre único por cliente. PadreID apunta a
// otra fila de la misma tabla (árbol plano, sin estructura en memoria).
func (uc *InventarioUseCase) CrearCategoria(clienteID string, in dto.CategoriaCreateRequest) (*dto.CategoriaResponse, error) {
	existente, err := uc.categoriaRepo.GetByNombre(clienteID, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	categoria := &entity.CategoriaProducto{
		ID:            uuid.New().String(),
		ClienteID:     clienteID,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		PadreID:       in.PadreID,
		FechaCreacion: time.Now(),
	}
	if err := uc.categoriaRepo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// ListCategorias categorías del cliente.
func (uc *InventarioUseCase) ListCategorias(clienteID string) ([]*dto.CategoriaResponse, error) {
	categorias, err := uc.categoriaRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// ── Productos ────────────────────────────────────────────────────────────────

// CrearProducto alta de producto con stock en cero; código único por cliente.
func (uc *InventarioUseCase) CrearProducto(clienteID string, in dto.ProductoCreateRequest) (*dto.ProductoResponse, error) {
	existente, err := uc.productoRepo.GetByCodigo(clienteID, in.CodigoProducto)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	producto := &entity.Producto{
		ID:             uuid.New().String(),
		ClienteID:      clienteID,
		CategoriaID:    in.CategoriaID,
		ProveedorID:    in.ProveedorID,
		CodigoProducto: in.CodigoProducto,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		PrecioCompra:   in.PrecioCompra,
		PrecioVenta:    in.PrecioVenta,
		StockMinimo:    in.StockMinimo,
		Estado:         "activo",
		FechaCreacion:  time.Now(),
	}
	if err := uc.productoRepo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// ListProductos productos del cliente con filtros opcionales.
func (uc *InventarioUseCase) ListProductos(clienteID string, filtro repository.FiltroProductos) ([]*dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.ListByCliente(clienteID, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// GetProducto retorna un producto del cliente.
func (uc *InventarioUseCase) GetProducto(clienteID, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id, clienteID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toProductoResponse(producto), nil
}

// ── Ajustes de inventario ────────────────────────────────────────────────────

// CrearAjuste alta de ajuste manual; número único por cliente, registra creador.
func (uc *InventarioUseCase) CrearAjuste(clienteID, usuarioID string, in dto.AjusteInventarioCreateRequest) (*dto.AjusteInventarioResponse, error) {
	existente, err := uc.ajusteRepo.GetByNumero(clienteID, in.NumeroAjuste)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	ajuste := &entity.AjusteInventario{
		ID:               uuid.New().String(),
		ClienteID:        clienteID,
		UsuarioCreadorID: usuarioID,
		NumeroAjuste:     in.NumeroAjuste,
		TipoAjuste:       in.TipoAjuste,
		Estado:           "pendiente",
		Motivo:           in.Motivo,
		FechaAjuste:      time.Now(),
	}
	if err := uc.ajusteRepo.Create(ajuste); err != nil {
		return nil, err
	}
	return toAjusteResponse(ajuste), nil
}

// ListAjustes ajustes del cliente con filtros opcionales.
func (uc *InventarioUseCase) ListAjustes(clienteID, estado, tipoAjuste string) ([]*dto.AjusteInventarioResponse, error) {
	ajustes, err := uc.ajusteRepo.ListByCliente(clienteID, estado, tipoAjuste)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AjusteInventarioResponse, 0, len(ajustes))
	for _, a := range ajustes {
		out = append(out, toAjusteResponse(a))
	}
	return out, nil
}

// ── Alertas de stock ─────────────────────────────────────────────────────────

// ListAlertas alertas del cliente, opcionalmente filtradas por estado de
// lectura y tipo.
func (uc *InventarioUseCase) ListAlertas(clienteID string, leida *bool, tipoAlerta string) ([]*dto.AlertaStockResponse, error) {
	alertas, err := uc.alertaRepo.ListByCliente(clienteID, leida, tipoAlerta)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AlertaStockResponse, 0, len(alertas))
	for _, a := range alertas {
		out = append(out, toAlertaResponse(a))
	}
	return out, nil
}

// MarcarAlertaLeida marca como leída una alerta del cliente.
func (uc *InventarioUseCase) MarcarAlertaLeida(clienteID, id string) (*dto.AlertaStockResponse, error) {
	alerta, err := uc.alertaRepo.GetByID(id, clienteID)
	if err != nil {
		return nil, err
	}
	if alerta == nil {
		return nil, domain.ErrNoEncontrado
	}
	if err := uc.alertaRepo.MarcarLeida(alerta.ID); err != nil {
		return nil, err
	}
	alerta.Leida = true
	return toAlertaResponse(alerta), nil
}

// ── mapeos ───────────────────────────────────────────────────────────────────

func toCategoriaResponse(c *entity.CategoriaProducto) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID,
		ClienteID:   c.ClienteID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		PadreID:     c.PadreID,
	}
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		CategoriaID:     p.CategoriaID,
		ProveedorID:     p.ProveedorID,
		CodigoProducto:  p.CodigoProducto,
		Nombre:          p.Nombre,
		Descripcion:     p.Descripcion,
		PrecioCompra:    p.PrecioCompra,
		PrecioVenta:     p.PrecioVenta,
		StockActual:     p.StockActual,
		StockReservado:  p.StockReservado,
		StockDisponible: p.StockDisponible,
		StockMinimo:     p.StockMinimo,
		Estado:          p.Estado,
	}
}

func toAjusteResponse(a *entity.AjusteInventario) *dto.AjusteInventarioResponse {
	return &dto.AjusteInventarioResponse{
		ID:           a.ID,
		ClienteID:    a.ClienteID,
		NumeroAjuste: a.NumeroAjuste,
		TipoAjuste:   a.TipoAjuste,
		Estado:       a.Estado,
		Motivo:       a.Motivo,
		FechaAjuste:  a.FechaAjuste,
	}
}

func toAlertaResponse(a *entity.AlertaStock) *dto.AlertaStockResponse {
	return &dto.AlertaStockResponse{
		ID:          a.ID,
		ClienteID:   a.ClienteID,
		ProductoID:  a.ProductoID,
		TipoAlerta:  a.TipoAlerta,
		Mensaje:     a.Mensaje,
		Leida:       a.Leida,
		FechaAlerta: a.FechaAlerta,
	}
}
