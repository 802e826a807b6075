// Package pdf implementa la representación imprimible de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa compradora  │  N° Orden + Fecha + Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Razón social / RUC / contacto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Impuestos | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuestos / TOTAL                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: Observaciones + entrega                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoOrdenPDFGenerator implementa usecase.OrdenPDFGenerator usando Maroto v2.
type MarotoOrdenPDFGenerator struct{}

var _ usecase.OrdenPDFGenerator = (*MarotoOrdenPDFGenerator)(nil)

// NewMarotoOrdenPDFGenerator construye el generador.
func NewMarotoOrdenPDFGenerator() *MarotoOrdenPDFGenerator { return &MarotoOrdenPDFGenerator{} }

// GenerarOrdenPDF genera el PDF y devuelve sus bytes.
func (g *MarotoOrdenPDFGenerator) GenerarOrdenPDF(
	_ context.Context,
	orden *entity.OrdenCompra,
	proveedor *entity.Proveedor,
	cliente *entity.Cliente,
	items []usecase.ItemOrdenParaPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+orden.NumeroOrden, true).
		WithAuthor(cliente.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(orden, cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(proveedorRow(proveedor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(orden))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range pieRows(orden) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa compradora (izq) y número + fecha + estado (der).
func headerRow(orden *entity.OrdenCompra, cliente *entity.Cliente) core.Row {
	fecha := orden.FechaOrden.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(cliente.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Subdominio: "+cliente.Subdominio, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(orden.NumeroOrden, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", fecha, orden.Estado), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// proveedorRow: datos del proveedor al que se emite la orden.
func proveedorRow(proveedor *entity.Proveedor) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(proveedor.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RUC: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(proveedor.RUC, "—"),
				nonEmpty(proveedor.Email, "—"),
				nonEmpty(proveedor.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de items.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Impuestos", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: una fila por línea de la orden.
func tableItemRows(items []usecase.ItemOrdenParaPDF) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.CantidadSolicitada),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.NombreProducto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.Impuestos.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(orden *entity.OrdenCompra) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Impuestos:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+orden.Subtotal.StringFixed(2)),
			value("$"+orden.Impuestos.StringFixed(2)),
			grandValue("$"+orden.Total.StringFixed(2)),
		),
		col.New(3),
	)
}

// pieRows: observaciones y fecha de entrega comprometida.
func pieRows(orden *entity.OrdenCompra) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONDICIONES DE LA ORDEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	entrega := "a coordinar"
	if orden.FechaEntrega != nil {
		entrega = orden.FechaEntrega.Format("02/01/2006")
	}
	rows = append(rows, row.New(5).Add(col.New(12).Add(
		text.New("Fecha de entrega: "+entrega, props.Text{Size: 8, Top: 1, Color: colorGray}),
	)))

	if orden.Observaciones != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Observaciones: "+orden.Observaciones, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento generado por el sistema de administración. "+
				"Las cantidades recibidas se registran contra esta orden.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
