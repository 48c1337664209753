package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ReportGenerator genera la representación PDF del catálogo de productos.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el use case a Maroto.
type ReportGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
}
