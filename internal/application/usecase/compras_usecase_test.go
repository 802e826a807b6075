package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type proveedorRepoMem struct {
	proveedores map[string]*entity.Proveedor
}

func (m *proveedorRepoMem) Create(p *entity.Proveedor) error { m.proveedores[p.ID] = p; return nil }

func (m *proveedorRepoMem) GetByID(id, clienteID string) (*entity.Proveedor, error) {
	p := m.proveedores[id]
	if p == nil || p.ClienteID != clienteID {
		return nil, nil
	}
	return p, nil
}

func (m *proveedorRepoMem) GetByCodigo(clienteID, codigo string) (*entity.Proveedor, error) {
	for _, p := range m.proveedores {
		if p.ClienteID == clienteID && p.CodigoProveedor == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (m *proveedorRepoMem) ListByCliente(clienteID, estado string) ([]*entity.Proveedor, error) {
	var out []*entity.Proveedor
	for _, p := range m.proveedores {
		if p.ClienteID != clienteID {
			continue
		}
		if estado != "" && p.Estado != estado {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *proveedorRepoMem) Update(p *entity.Proveedor) error { m.proveedores[p.ID] = p; return nil }

type productoRepoMem struct {
	productos map[string]*entity.Producto
}

func (m *productoRepoMem) Create(p *entity.Producto) error { m.productos[p.ID] = p; return nil }

func (m *productoRepoMem) GetByID(id, clienteID string) (*entity.Producto, error) {
	p := m.productos[id]
	if p == nil || p.ClienteID != clienteID {
		return nil, nil
	}
	return p, nil
}

func (m *productoRepoMem) GetByCodigo(clienteID, codigo string) (*entity.Producto, error) {
	for _, p := range m.productos {
		if p.ClienteID == clienteID && p.CodigoProducto == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (m *productoRepoMem) ListByCliente(clienteID string, filtro repository.FiltroProductos) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range m.productos {
		if p.ClienteID != clienteID {
			continue
		}
		if filtro.Estado != "" && p.Estado != filtro.Estado {
			continue
		}
		if filtro.CategoriaID != nil && (p.CategoriaID == nil || *p.CategoriaID != *filtro.CategoriaID) {
			continue
		}
		if filtro.ProveedorID != nil && (p.ProveedorID == nil || *p.ProveedorID != *filtro.ProveedorID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *productoRepoMem) Update(p *entity.Producto) error { m.productos[p.ID] = p; return nil }

type ordenRepoMem struct {
	ordenes map[string]*entity.OrdenCompra
	items   map[string][]*entity.OrdenCompraItem
}

func (m *ordenRepoMem) Create(o *entity.OrdenCompra) error { m.ordenes[o.ID] = o; return nil }

func (m *ordenRepoMem) GetByID(id, clienteID string) (*entity.OrdenCompra, error) {
	o := m.ordenes[id]
	if o == nil || o.ClienteID != clienteID {
		return nil, nil
	}
	return o, nil
}

func (m *ordenRepoMem) GetByNumero(clienteID, numeroOrden string) (*entity.OrdenCompra, error) {
	for _, o := range m.ordenes {
		if o.ClienteID == clienteID && o.NumeroOrden == numeroOrden {
			return o, nil
		}
	}
	return nil, nil
}

func (m *ordenRepoMem) ListByCliente(clienteID string, filtro repository.FiltroOrdenes) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, o := range m.ordenes {
		if o.ClienteID != clienteID {
			continue
		}
		if filtro.Estado != "" && o.Estado != filtro.Estado {
			continue
		}
		if filtro.ProveedorID != nil && o.ProveedorID != *filtro.ProveedorID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *ordenRepoMem) CreateItem(it *entity.OrdenCompraItem) error {
	m.items[it.OrdenCompraID] = append(m.items[it.OrdenCompraID], it)
	return nil
}

func (m *ordenRepoMem) ListItems(ordenID string) ([]*entity.OrdenCompraItem, error) {
	return m.items[ordenID], nil
}

func (m *ordenRepoMem) ActualizarTotales(o *entity.OrdenCompra) error {
	m.ordenes[o.ID] = o
	return nil
}

type facturaRepoMem struct {
	facturas map[string]*entity.FacturaProveedor
}

func (m *facturaRepoMem) Create(f *entity.FacturaProveedor) error { m.facturas[f.ID] = f; return nil }

func (m *facturaRepoMem) GetByNumero(clienteID, proveedorID, numeroFactura string) (*entity.FacturaProveedor, error) {
	for _, f := range m.facturas {
		if f.ClienteID == clienteID && f.ProveedorID == proveedorID && f.NumeroFactura == numeroFactura {
			return f, nil
		}
	}
	return nil, nil
}

func (m *facturaRepoMem) ListByCliente(clienteID string, estado string, proveedorID *string) ([]*entity.FacturaProveedor, error) {
	var out []*entity.FacturaProveedor
	for _, f := range m.facturas {
		if f.ClienteID != clienteID {
			continue
		}
		if estado != "" && f.Estado != estado {
			continue
		}
		if proveedorID != nil && f.ProveedorID != *proveedorID {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// pdfGenMem registra la última invocación y devuelve bytes fijos.
type pdfGenMem struct {
	llamadas int
	items    []usecase.ItemOrdenParaPDF
}

func (m *pdfGenMem) GenerarOrdenPDF(_ context.Context, _ *entity.OrdenCompra, _ *entity.Proveedor, _ *entity.Cliente, items []usecase.ItemOrdenParaPDF) ([]byte, error) {
	m.llamadas++
	m.items = items
	return []byte("%PDF-fake"), nil
}

func setupComprasUC(t *testing.T) (*usecase.ComprasUseCase, *proveedorRepoMem, *productoRepoMem, *ordenRepoMem, *pdfGenMem) {
	t.Helper()
	proveedores := &proveedorRepoMem{proveedores: map[string]*entity.Proveedor{}}
	productos := &productoRepoMem{productos: map[string]*entity.Producto{}}
	ordenes := &ordenRepoMem{ordenes: map[string]*entity.OrdenCompra{}, items: map[string][]*entity.OrdenCompraItem{}}
	facturas := &facturaRepoMem{facturas: map[string]*entity.FacturaProveedor{}}
	clientes := &clienteRepoMem{clientes: map[string]*entity.Cliente{
		clienteKarumbe: {ID: clienteKarumbe, Nombre: "Karumbe Pizzas", Subdominio: "karumbe", Estado: entity.ClienteActivo},
	}}
	pdfGen := &pdfGenMem{}
	uc := usecase.NewComprasUseCase(proveedores, productos, ordenes, facturas, clientes, pdfGen)
	return uc, proveedores, productos, ordenes, pdfGen
}

func crearProveedorDePrueba(t *testing.T, uc *usecase.ComprasUseCase) *dto.ProveedorResponse {
	t.Helper()
	proveedor, err := uc.CrearProveedor(clienteKarumbe, dto.ProveedorCreateRequest{
		CodigoProveedor: "PROV-001",
		Nombre:          "Harinas del Sur",
		RUC:             "80012345-6",
	})
	require.NoError(t, err)
	return proveedor
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearProveedor_CodigoDuplicado(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)
	crearProveedorDePrueba(t, uc)

	_, err := uc.CrearProveedor(clienteKarumbe, dto.ProveedorCreateRequest{
		CodigoProveedor: "PROV-001",
		Nombre:          "Otro nombre, mismo código",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestCrearProveedor_MismoCodigoEnOtroClienteEsValido(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)
	crearProveedorDePrueba(t, uc)

	otroCliente := "22222222-2222-2222-2222-222222222222"
	out, err := uc.CrearProveedor(otroCliente, dto.ProveedorCreateRequest{
		CodigoProveedor: "PROV-001",
		Nombre:          "Tornillos SA",
	})
	require.NoError(t, err)
	assert.Equal(t, otroCliente, out.ClienteID)
}

func TestCrearOrden_ArrancaPendienteConTotalesEnCero(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	out, err := uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: proveedor.ID,
		NumeroOrden: "OC-0001",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenPendiente, out.Estado)
	assert.True(t, out.Subtotal.IsZero())
	assert.True(t, out.Total.IsZero())
}

func TestCrearOrden_NumeroDuplicado(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	_, err := uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: proveedor.ID,
		NumeroOrden: "OC-0001",
	})
	require.NoError(t, err)

	_, err = uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: proveedor.ID,
		NumeroOrden: "OC-0001",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestCrearOrden_ProveedorInexistente(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)

	_, err := uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: "no-existe",
		NumeroOrden: "OC-0001",
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// Cada item agregado recalcula los totales de la orden completa:
// subtotal = Σ cantidad×precio, total = subtotal + Σ impuestos.
func TestAgregarItem_RecalculaTotalesDeLaOrden(t *testing.T) {
	uc, _, productos, ordenes, _ := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	productos.productos["prod-1"] = &entity.Producto{ID: "prod-1", ClienteID: clienteKarumbe, Nombre: "Harina 000"}
	productos.productos["prod-2"] = &entity.Producto{ID: "prod-2", ClienteID: clienteKarumbe, Nombre: "Levadura"}

	orden, err := uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: proveedor.ID,
		NumeroOrden: "OC-0001",
	})
	require.NoError(t, err)

	item, err := uc.AgregarItem(clienteKarumbe, orden.ID, dto.OrdenCompraItemCreateRequest{
		ProductoID:         "prod-1",
		CantidadSolicitada: 10,
		PrecioUnitario:     decimal.NewFromInt(500),
		Impuestos:          decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	assert.Equal(t, "5000", item.Subtotal.String())
	assert.Equal(t, "5250", item.Total.String())

	_, err = uc.AgregarItem(clienteKarumbe, orden.ID, dto.OrdenCompraItemCreateRequest{
		ProductoID:         "prod-2",
		CantidadSolicitada: 2,
		PrecioUnitario:     decimal.NewFromInt(1000),
		Impuestos:          decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	guardada := ordenes.ordenes[orden.ID]
	assert.Equal(t, "7000", guardada.Subtotal.String())
	assert.Equal(t, "350", guardada.Impuestos.String())
	assert.Equal(t, "7350", guardada.Total.String())
}

func TestAgregarItem_ProductoDeOtroClienteNoSeVe(t *testing.T) {
	uc, _, productos, _, _ := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	productos.productos["prod-ajeno"] = &entity.Producto{
		ID: "prod-ajeno", ClienteID: "99999999-9999-9999-9999-999999999999", Nombre: "Ajeno",
	}
	orden, err := uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: proveedor.ID,
		NumeroOrden: "OC-0001",
	})
	require.NoError(t, err)

	_, err = uc.AgregarItem(clienteKarumbe, orden.ID, dto.OrdenCompraItemCreateRequest{
		ProductoID:         "prod-ajeno",
		CantidadSolicitada: 1,
		PrecioUnitario:     decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestGetOrden_OtroClienteNoLaVe(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	orden, err := uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: proveedor.ID,
		NumeroOrden: "OC-0001",
	})
	require.NoError(t, err)

	_, _, err = uc.GetOrden("99999999-9999-9999-9999-999999999999", orden.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestDescargarOrdenPDF_EnriqueceItemsConNombre(t *testing.T) {
	uc, _, productos, _, pdfGen := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	productos.productos["prod-1"] = &entity.Producto{ID: "prod-1", ClienteID: clienteKarumbe, Nombre: "Harina 000"}

	orden, err := uc.CrearOrden(clienteKarumbe, "user-1", dto.OrdenCompraCreateRequest{
		ProveedorID: proveedor.ID,
		NumeroOrden: "OC-0042",
	})
	require.NoError(t, err)
	_, err = uc.AgregarItem(clienteKarumbe, orden.ID, dto.OrdenCompraItemCreateRequest{
		ProductoID:         "prod-1",
		CantidadSolicitada: 3,
		PrecioUnitario:     decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	pdfBytes, filename, err := uc.DescargarOrdenPDF(context.Background(), clienteKarumbe, orden.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "orden_compra_OC-0042.pdf", filename)
	assert.Equal(t, 1, pdfGen.llamadas)
	require.Len(t, pdfGen.items, 1)
	assert.Equal(t, "Harina 000", pdfGen.items[0].NombreProducto)
}

func TestDescargarOrdenPDF_OrdenInexistente(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)

	_, _, err := uc.DescargarOrdenPDF(context.Background(), clienteKarumbe, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestDescargarOrdenPDF_ProveedorAusenteEsNoEncontrado(t *testing.T) {
	uc, _, _, ordenes, _ := setupComprasUC(t)

	// Orden cuyo proveedor ya no está en el ámbito del cliente.
	ordenes.ordenes["o1"] = &entity.OrdenCompra{
		ID:          "o1",
		ClienteID:   clienteKarumbe,
		ProveedorID: "proveedor-borrado",
		NumeroOrden: "OC-0099",
	}

	_, _, err := uc.DescargarOrdenPDF(context.Background(), clienteKarumbe, "o1")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestCrearFactura_SaldoPendienteIgualAlTotal(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	out, err := uc.CrearFactura(clienteKarumbe, dto.FacturaProveedorCreateRequest{
		ProveedorID:   proveedor.ID,
		NumeroFactura: "FC-001",
		Subtotal:      decimal.NewFromInt(10000),
		Impuestos:     decimal.NewFromInt(2100),
		Total:         decimal.NewFromInt(12100),
	})
	require.NoError(t, err)
	assert.Equal(t, "pendiente", out.Estado)
	assert.True(t, out.SaldoPendiente.Equal(out.Total))
}

func TestCrearFactura_NumeroDuplicadoPorProveedor(t *testing.T) {
	uc, _, _, _, _ := setupComprasUC(t)
	proveedor := crearProveedorDePrueba(t, uc)

	_, err := uc.CrearFactura(clienteKarumbe, dto.FacturaProveedorCreateRequest{
		ProveedorID:   proveedor.ID,
		NumeroFactura: "FC-001",
		Total:         decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = uc.CrearFactura(clienteKarumbe, dto.FacturaProveedorCreateRequest{
		ProveedorID:   proveedor.ID,
		NumeroFactura: "FC-001",
		Total:         decimal.NewFromInt(200),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}
