package catalog

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
)

// LabelUseCase genera el PDF de etiquetas de góndola de un producto: una
// etiqueta por combinación con sus atributos y stock, o una sola con el stock
// base si el producto no tiene matriz.
type LabelUseCase struct {
	productRepo     repository.ProductRepository
	combinationRepo repository.CombinationRepository
	generator       StockLabelGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(
	productRepo repository.ProductRepository,
	combinationRepo repository.CombinationRepository,
	generator StockLabelGenerator,
) *LabelUseCase {
	return &LabelUseCase{
		productRepo:     productRepo,
		combinationRepo: combinationRepo,
		generator:       generator,
	}
}

// Generate devuelve los bytes del PDF y un nombre de archivo seguro derivado
// del nombre del producto.
func (uc *LabelUseCase) Generate(ctx context.Context, productID string) ([]byte, string, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", domain.ErrNotFound
	}
	combos, err := uc.combinationRepo.ListByProduct(productID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateStockLabels(ctx, product, combos)
	if err != nil {
		return nil, "", err
	}
	return pdf, slugify(product.Name) + "-etiquetas.pdf", nil
}

// slugify normaliza el nombre para usarlo como nombre de archivo: descompone
// acentos (NFD), quita las marcas diacríticas y deja solo [a-z0-9-].
func slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "producto"
	}
	return slug
}
