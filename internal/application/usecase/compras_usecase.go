package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// ItemOrdenParaPDF línea de orden enriquecida con el nombre del producto.
type ItemOrdenParaPDF struct {
	entity.OrdenCompraItem
	NombreProducto string
}

// OrdenPDFGenerator genera la representación imprimible de una orden de compra.
type OrdenPDFGenerator interface {
	GenerarOrdenPDF(ctx context.Context, orden *entity.OrdenCompra, proveedor *entity.Proveedor, cliente *entity.Cliente, items []ItemOrdenParaPDF) ([]byte, error)
}

// ComprasUseCase proveedores, órdenes de compra y facturas de proveedor.
// Toda operación recibe el clienteID resuelto por el guard y lo propaga a cada
// consulta: ninguna fila de otro tenant es alcanzable desde aquí.
type ComprasUseCase struct {
	proveedorRepo repository.ProveedorRepository
	productoRepo  repository.ProductoRepository
	ordenRepo     repository.OrdenCompraRepository
	facturaRepo   repository.FacturaProveedorRepository
	clienteRepo   repository.ClienteRepository
	pdfGenerator  OrdenPDFGenerator
}

// NewComprasUseCase construye el caso de uso de compras.
func NewComprasUseCase(
	proveedorRepo repository.ProveedorRepository,
	productoRepo repository.ProductoRepository,
	ordenRepo repository.OrdenCompraRepository,
	facturaRepo repository.FacturaProveedorRepository,
	clienteRepo repository.ClienteRepository,
	pdfGenerator OrdenPDFGenerator,
) *ComprasUseCase {
	return &ComprasUseCase{
		proveedorRepo: proveedorRepo,
		productoRepo:  productoRepo,
		ordenRepo:     ordenRepo,
		facturaRepo:   facturaRepo,
		clienteRepo:   clienteRepo,
		pdfGenerator:  pdfGenerator,
	}
}

// ── Proveedores ──────────────────────────────────────────────────────────────

// CrearProveedor alta de proveedor; el código es único por cliente.
func (uc *ComprasUseCase) CrearProveedor(clienteID string, in dto.ProveedorCreateRequest) (*dto.ProveedorResponse, error) {
	existente, err := uc.proveedorRepo.GetByCodigo(clienteID, in.CodigoProveedor)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	proveedor := &entity.Proveedor{
		ID:              uuid.New().String(),
		ClienteID:       clienteID,
		CodigoProveedor: in.CodigoProveedor,
		Nombre:          in.Nombre,
		RazonSocial:     in.RazonSocial,
		RUC:             in.RUC,
		Telefono:        in.Telefono,
		Email:           in.Email,
		Direccion:       in.Direccion,
		Estado:          "activo",
		FechaCreacion:   time.Now(),
	}
	if err := uc.proveedorRepo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// ListProveedores lista los proveedores del cliente, opcionalmente por estado.
func (uc *ComprasUseCase) ListProveedores(clienteID, estado string) ([]*dto.ProveedorResponse, error) {
	proveedores, err := uc.proveedorRepo.ListByCliente(clienteID, estado)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, toProveedorResponse(p))
	}
	return out, nil
}

// GetProveedor retorna un proveedor del cliente.
func (uc *ComprasUseCase) GetProveedor(clienteID, id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.proveedorRepo.GetByID(id, clienteID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toProveedorResponse(proveedor), nil
}

// ── Órdenes de compra ────────────────────────────────────────────────────────

// CrearOrden alta de orden de compra con totales en cero; el número es único
// por cliente y el creador queda registrado.
func (uc *ComprasUseCase) CrearOrden(clienteID, usuarioID string, in dto.OrdenCompraCreateRequest) (*dto.OrdenCompraResponse, error) {
	existente, err := uc.ordenRepo.GetByNumero(clienteID, in.NumeroOrden)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID, clienteID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNoEncontrado
	}
	orden := &entity.OrdenCompra{
		ID:               uuid.New().String(),
		ClienteID:        clienteID,
		ProveedorID:      in.ProveedorID,
		UsuarioCreadorID: usuarioID,
		NumeroOrden:      in.NumeroOrden,
		Estado:           entity.OrdenPendiente,
		Subtotal:         decimal.Zero,
		Impuestos:        decimal.Zero,
		Total:            decimal.Zero,
		FechaOrden:       time.Now(),
		FechaEntrega:     in.FechaEntrega,
		Observaciones:    in.Observaciones,
	}
	if err := uc.ordenRepo.Create(orden); err != nil {
		return nil, err
	}
	return toOrdenResponse(orden), nil
}

// AgregarItem agrega una línea a una orden existente. El producto debe
// pertenecer al mismo cliente. Subtotal = cantidad × precio unitario;
// luego se recalculan los totales de la orden completa.
func (uc *ComprasUseCase) AgregarItem(clienteID, ordenID string, in dto.OrdenCompraItemCreateRequest) (*dto.OrdenCompraItemResponse, error) {
	orden, err := uc.ordenRepo.GetByID(ordenID, clienteID)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNoEncontrado
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID, clienteID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNoEncontrado
	}

	subtotal := in.PrecioUnitario.Mul(decimal.NewFromInt(int64(in.CantidadSolicitada)))
	item := &entity.OrdenCompraItem{
		ID:                 uuid.New().String(),
		OrdenCompraID:      orden.ID,
		ProductoID:         in.ProductoID,
		CantidadSolicitada: in.CantidadSolicitada,
		PrecioUnitario:     in.PrecioUnitario,
		Impuestos:          in.Impuestos,
		Subtotal:           subtotal,
		Total:              subtotal.Add(in.Impuestos),
	}
	if err := uc.ordenRepo.CreateItem(item); err != nil {
		return nil, err
	}
	if err := uc.recalcularTotales(orden); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ListOrdenes órdenes del cliente con filtros opcionales.
func (uc *ComprasUseCase) ListOrdenes(clienteID string, filtro repository.FiltroOrdenes) ([]*dto.OrdenCompraResponse, error) {
	ordenes, err := uc.ordenRepo.ListByCliente(clienteID, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrdenCompraResponse, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, toOrdenResponse(o))
	}
	return out, nil
}

// GetOrden retorna una orden del cliente con sus items.
func (uc *ComprasUseCase) GetOrden(clienteID, id string) (*dto.OrdenCompraResponse, []*dto.OrdenCompraItemResponse, error) {
	orden, err := uc.ordenRepo.GetByID(id, clienteID)
	if err != nil {
		return nil, nil, err
	}
	if orden == nil {
		return nil, nil, domain.ErrNoEncontrado
	}
	items, err := uc.ordenRepo.ListItems(orden.ID)
	if err != nil {
		return nil, nil, err
	}
	itemsOut := make([]*dto.OrdenCompraItemResponse, 0, len(items))
	for _, it := range items {
		itemsOut = append(itemsOut, toItemResponse(it))
	}
	return toOrdenResponse(orden), itemsOut, nil
}

// DescargarOrdenPDF recupera la orden con su proveedor e items, enriquece cada
// línea con el nombre del producto y genera el PDF imprimible.
func (uc *ComprasUseCase) DescargarOrdenPDF(ctx context.Context, clienteID, ordenID string) (pdfBytes []byte, filename string, err error) {
	orden, err := uc.ordenRepo.GetByID(ordenID, clienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if orden == nil {
		return nil, "", domain.ErrNoEncontrado
	}
	proveedor, err := uc.proveedorRepo.GetByID(orden.ProveedorID, clienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener proveedor: %w", err)
	}
	if proveedor == nil {
		return nil, "", domain.ErrNoEncontrado
	}
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", domain.ErrNoEncontrado
	}

	items, err := uc.ordenRepo.ListItems(orden.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener items: %w", err)
	}
	enriquecidos := make([]ItemOrdenParaPDF, 0, len(items))
	for _, it := range items {
		nombre := "Producto " + it.ProductoID // fallback
		if producto, pErr := uc.productoRepo.GetByID(it.ProductoID, clienteID); pErr == nil && producto != nil {
			nombre = producto.Nombre
		}
		enriquecidos = append(enriquecidos, ItemOrdenParaPDF{
			OrdenCompraItem: *it,
			NombreProducto:  nombre,
		})
	}

	pdfBytes, err = uc.pdfGenerator.GenerarOrdenPDF(ctx, orden, proveedor, cliente, enriquecidos)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("orden_compra_%s.pdf", orden.NumeroOrden), nil
}

// recalcularTotales suma subtotal e impuestos de todos los items y persiste
// los nuevos totales de la orden.
func (uc *ComprasUseCase) recalcularTotales(orden *entity.OrdenCompra) error {
	items, err := uc.ordenRepo.ListItems(orden.ID)
	if err != nil {
		return err
	}
	subtotal := decimal.Zero
	impuestos := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal)
		impuestos = impuestos.Add(it.Impuestos)
	}
	orden.Subtotal = subtotal
	orden.Impuestos = impuestos
	orden.Total = subtotal.Add(impuestos)
	return uc.ordenRepo.ActualizarTotales(orden)
}

// ── Facturas de proveedores ──────────────────────────────────────────────────

// CrearFactura alta de factura; el número es único por proveedor dentro del
// cliente y el saldo pendiente arranca igual al total.
func (uc *ComprasUseCase) CrearFactura(clienteID string, in dto.FacturaProveedorCreateRequest) (*dto.FacturaProveedorResponse, error) {
	existente, err := uc.facturaRepo.GetByNumero(clienteID, in.ProveedorID, in.NumeroFactura)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID, clienteID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNoEncontrado
	}
	factura := &entity.FacturaProveedor{
		ID:               uuid.New().String(),
		ClienteID:        clienteID,
		ProveedorID:      in.ProveedorID,
		OrdenCompraID:    in.OrdenCompraID,
		NumeroFactura:    in.NumeroFactura,
		Estado:           "pendiente",
		Subtotal:         in.Subtotal,
		Impuestos:        in.Impuestos,
		Total:            in.Total,
		SaldoPendiente:   in.Total,
		FechaEmision:     in.FechaEmision,
		FechaVencimiento: in.FechaVencimiento,
	}
	if err := uc.facturaRepo.Create(factura); err != nil {
		return nil, err
	}
	return toFacturaResponse(factura), nil
}

// ListFacturas facturas del cliente con filtros opcionales.
func (uc *ComprasUseCase) ListFacturas(clienteID, estado string, proveedorID *string) ([]*dto.FacturaProveedorResponse, error) {
	facturas, err := uc.facturaRepo.ListByCliente(clienteID, estado, proveedorID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaProveedorResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, toFacturaResponse(f))
	}
	return out, nil
}

// ── mapeos ───────────────────────────────────────────────────────────────────

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		CodigoProveedor: p.CodigoProveedor,
		Nombre:          p.Nombre,
		RazonSocial:     p.RazonSocial,
		RUC:             p.RUC,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Direccion:       p.Direccion,
		Estado:          p.Estado,
		FechaCreacion:   p.FechaCreacion,
	}
}

func toOrdenResponse(o *entity.OrdenCompra) *dto.OrdenCompraResponse {
	return &dto.OrdenCompraResponse{
		ID:            o.ID,
		ClienteID:     o.ClienteID,
		ProveedorID:   o.ProveedorID,
		NumeroOrden:   o.NumeroOrden,
		Estado:        o.Estado,
		Subtotal:      o.Subtotal,
		Impuestos:     o.Impuestos,
		Total:         o.Total,
		FechaOrden:    o.FechaOrden,
		FechaEntrega:  o.FechaEntrega,
		Observaciones: o.Observaciones,
	}
}

func toItemResponse(it *entity.OrdenCompraItem) *dto.OrdenCompraItemResponse {
	return &dto.OrdenCompraItemResponse{
		ID:                 it.ID,
		OrdenCompraID:      it.OrdenCompraID,
		ProductoID:         it.ProductoID,
		CantidadSolicitada: it.CantidadSolicitada,
		CantidadRecibida:   it.CantidadRecibida,
		PrecioUnitario:     it.PrecioUnitario,
		Impuestos:          it.Impuestos,
		Subtotal:           it.Subtotal,
		Total:              it.Total,
	}
}

func toFacturaResponse(f *entity.FacturaProveedor) *dto.FacturaProveedorResponse {
	return &dto.FacturaProveedorResponse{
		ID:               f.ID,
		ClienteID:        f.ClienteID,
		ProveedorID:      f.ProveedorID,
		OrdenCompraID:    f.OrdenCompraID,
		NumeroFactura:    f.NumeroFactura,
		Estado:           f.Estado,
		Subtotal:         f.Subtotal,
		Impuestos:        f.Impuestos,
		Total:            f.Total,
		SaldoPendiente:   f.SaldoPendiente,
		FechaEmision:     f.FechaEmision,
		FechaVencimiento: f.FechaVencimiento,
	}
}
