// Package pdf implementa el reporte PDF del catálogo de productos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del catálogo + fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Subcategoría | Precio         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos                                  │
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

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ catalog.ReportGenerator = (*CatalogReportGenerator)(nil)

// CatalogReportGenerator implementa catalog.ReportGenerator usando Maroto v2.
type CatalogReportGenerator struct{}

// NewCatalogReportGenerator construye el generador.
func NewCatalogReportGenerator() *CatalogReportGenerator { return &CatalogReportGenerator{} }

// GenerateCatalogPDF genera el PDF del catálogo y devuelve sus bytes.
func (g *CatalogReportGenerator) GenerateCatalogPDF(_ context.Context, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Catálogo de productos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(4).Add(text.New("Producto", header)),
		col.New(3).Add(text.New("Categoría", header)),
		col.New(3).Add(text.New("Subcategoría", header)),
		col.New(2).Add(text.New("Precio", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	categoryName, subcategoryName := "", ""
	if p.Category != nil {
		categoryName = p.Category.Name
	}
	if p.Subcategory != nil {
		subcategoryName = p.Subcategory.Name
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(3).Add(text.New(categoryName, cell)),
		col.New(3).Add(text.New(subcategoryName, cell)),
		col.New(2).Add(text.New("$ "+p.Price.StringFixed(2), props.Text{
			Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d productos", total), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
	)
}
