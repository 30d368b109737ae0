// Package pdf implementa la generación del PDF de etiquetas de stock de un
// producto: una etiqueta por combinación de la matriz, o una sola con el stock
// base si el producto no tiene combinaciones.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto + SKU  │  Fecha de emisión     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ETIQUETA: Atributos (Color: Rojo / Talle: M)               │
//	│            Stock: 7          QR con el SKU                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ETIQUETA: ...  (una por combinación)                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Stock total del producto                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/muycriollo/catalogo-api/internal/application/catalog"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/variant"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ catalog.StockLabelGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa catalog.StockLabelGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateStockLabels genera el PDF y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateStockLabels(
	_ context.Context,
	product *entity.Product,
	combinations []entity.Combination,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de stock", true).
		WithAuthor(product.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(combinations) == 0 {
		m.AddRows(baseStockRow(product))
	} else {
		for _, c := range combinations {
			m.AddRows(labelRow(product, c))
			m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
		}
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(footerRow(product, combinations))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + SKU (izq) y fecha de emisión (der).
func headerRow(product *entity.Product) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(16).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+product.SKU, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("ETIQUETAS DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// labelRow: una etiqueta por combinación, con atributos, stock y QR del SKU.
func labelRow(product *entity.Product, c entity.Combination) core.Row {
	return row.New(30).Add(
		col.New(7).Add(
			text.New(attributesLine(c.Attributes), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 4,
			}),
			text.New(stockLine(c.Stock), props.Text{
				Size: 10, Top: 14, Color: stockColor(c.Stock),
			}),
		),
		col.New(5).Add(code.NewQr(qrData(product.SKU, c), props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// baseStockRow: etiqueta única para productos sin matriz de combinaciones.
func baseStockRow(product *entity.Product) core.Row {
	return row.New(30).Add(
		col.New(7).Add(
			text.New("Producto sin variantes", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 4,
			}),
			text.New(stockLine(product.BaseStock), props.Text{
				Size: 10, Top: 14, Color: stockColor(product.BaseStock),
			}),
		),
		col.New(5).Add(code.NewQr(product.SKU, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// footerRow: stock total del producto (suma de combinaciones o stock base).
func footerRow(product *entity.Product, combinations []entity.Combination) core.Row {
	total := variant.TotalStock(combinations, product.BaseStock)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("STOCK TOTAL: %d unidades", total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// attributesLine formatea los atributos con ejes en orden alfabético.
// Ej: "Color: Rojo  /  Talle: M"
func attributesLine(attrs entity.AttributeSet) string {
	axes := make([]string, 0, len(attrs))
	for axis := range attrs {
		axes = append(axes, axis)
	}
	sort.Strings(axes)
	out := ""
	for i, axis := range axes {
		if i > 0 {
			out += "  /  "
		}
		out += axis + ": " + attrs[axis]
	}
	return out
}

func stockLine(stock int) string {
	if stock == 0 {
		return "Stock: AGOTADO"
	}
	return fmt.Sprintf("Stock: %d", stock)
}

func stockColor(stock int) *props.Color {
	if stock == 0 {
		return colorAlert
	}
	return colorGray
}

// qrData codifica SKU y atributos en el QR para escanear en bodega.
func qrData(sku string, c entity.Combination) string {
	return sku + "|" + c.Attributes.Key()
}
