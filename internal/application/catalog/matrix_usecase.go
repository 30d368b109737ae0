package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/muycriollo/catalogo-api/internal/application/dto"
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
	"github.com/muycriollo/catalogo-api/internal/domain/variant"
)

// MatrixUseCase orquesta el motor de variantes contra la persistencia:
// regeneración de la matriz, edición de stock por combinación y stock base.
// Toda mutación escribe combinaciones y total_stock en la misma transacción,
// con el total recalculado por el motor sobre una lectura autoritativa.
type MatrixUseCase struct {
	txRunner        TxRunner
	productRepo     repository.ProductRepository
	variantRepo     repository.VariantRepository
	combinationRepo repository.CombinationRepository
}

// NewMatrixUseCase construye el caso de uso.
func NewMatrixUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	combinationRepo repository.CombinationRepository,
) *MatrixUseCase {
	return &MatrixUseCase{
		txRunner:        txRunner,
		productRepo:     productRepo,
		variantRepo:     variantRepo,
		combinationRepo: combinationRepo,
	}
}

// GenerateMatrix regenera la matriz de combinaciones del producto: agrupa el
// catálogo de variantes, genera el producto cartesiano, reconcilia contra lo
// persistido (preservando ID y stock de las coincidencias), borra las
// inalcanzables y recalcula total_stock — todo en una transacción.
//
// Si el catálogo quedó sin ejes y existen combinaciones, no se persiste nada y
// la respuesta trae RequiresConfirmation en true; repetir con confirmed=true
// colapsa la matriz (borra todas las combinaciones y el producto vuelve a modo
// stock base). Una vez confirmada, la regeneración no es cancelable.
func (uc *MatrixUseCase) GenerateMatrix(ctx context.Context, productID string, confirmed bool) (*dto.MatrixResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	variants, err := uc.variantRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	cat, err := variant.NewCatalog(variants)
	if err != nil {
		return nil, err
	}
	candidates := cat.Combinations()

	var out *dto.MatrixResponse
	err = uc.txRunner.Run(ctx, func(
		combinationRepo repository.CombinationRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Lectura autoritativa con bloqueo de filas: reconciliar contra lo que
		// realmente está persistido al momento de escribir. Un edit de stock que
		// comiteó entre la petición y esta transacción se preserva en el total.
		existing, err := combinationRepo.ListByProductForUpdate(productID)
		if err != nil {
			return err
		}

		res, err := variant.Reconcile(candidates, existing, confirmed)
		if err != nil {
			if errors.Is(err, domain.ErrDestructiveRegeneration) {
				// Nada se tocó: el admin debe confirmar el colapso explícitamente.
				out = &dto.MatrixResponse{
					Combinations:         toCombinationResponses(existing),
					TotalStock:           product.TotalStock,
					RequiresConfirmation: true,
				}
				return nil
			}
			return err
		}

		// Asignar identidad a las combinaciones nuevas antes de persistir.
		var created []int
		for i := range res.Combinations {
			if res.Combinations[i].IsNew() {
				res.Combinations[i].ID = uuid.New().String()
				res.Combinations[i].ProductID = productID
				created = append(created, i)
			}
		}
		total := variant.TotalStock(res.Combinations, product.BaseStock)

		if len(res.Deletions) > 0 {
			ids := make([]string, len(res.Deletions))
			for i, d := range res.Deletions {
				ids[i] = d.ID
			}
			if err := combinationRepo.DeleteByIDs(ids); err != nil {
				return err
			}
		}
		for _, i := range created {
			if err := combinationRepo.Create(&res.Combinations[i]); err != nil {
				return err
			}
		}
		if err := productRepo.UpdateStocks(productID, product.BaseStock, total); err != nil {
			return err
		}

		out = &dto.MatrixResponse{
			Combinations: toCombinationResponses(res.Combinations),
			Deleted:      len(res.Deletions),
			TotalStock:   total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetCombinationStock fija el stock de una combinación y recalcula el total
// del producto en la misma transacción, sobre las filas bloqueadas. Un edit
// rechazado (stock negativo, combinación inexistente) no altera nada.
func (uc *MatrixUseCase) SetCombinationStock(ctx context.Context, combinationID string, stock int) (*dto.StockResponse, error) {
	if stock < 0 {
		return nil, domain.ErrStockOutOfRange
	}
	comb, err := uc.combinationRepo.GetByID(combinationID)
	if err != nil {
		return nil, err
	}
	if comb == nil {
		return nil, domain.ErrNotFound
	}

	var out dto.StockResponse
	err = uc.txRunner.Run(ctx, func(
		combinationRepo repository.CombinationRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(comb.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Lectura autoritativa con bloqueo de filas: dos edits concurrentes del
		// mismo producto se serializan y ninguno pierde la actualización del total.
		combos, err := combinationRepo.ListByProductForUpdate(comb.ProductID)
		if err != nil {
			return err
		}
		updated, total, err := variant.SetStock(combos, combinationID, stock)
		if err != nil {
			return err
		}
		if err := combinationRepo.UpdateStock(combinationID, stock); err != nil {
			return err
		}
		if err := productRepo.UpdateStocks(comb.ProductID, product.BaseStock, total); err != nil {
			return err
		}
		for i := range updated {
			if updated[i].ID == combinationID {
				resp := toCombinationResponse(updated[i])
				out = dto.StockResponse{Combination: &resp, TotalStock: total}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetBaseStock fija el stock base del producto. Solo es válido cuando el
// producto no tiene combinaciones; con matriz activa el stock se edita por
// combinación y total_stock se deriva de la suma.
func (uc *MatrixUseCase) SetBaseStock(ctx context.Context, productID string, stock int) (*dto.StockResponse, error) {
	if stock < 0 {
		return nil, domain.ErrStockOutOfRange
	}
	var out dto.StockResponse
	err := uc.txRunner.Run(ctx, func(
		combinationRepo repository.CombinationRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		combos, err := combinationRepo.ListByProductForUpdate(productID)
		if err != nil {
			return err
		}
		if len(combos) > 0 {
			return domain.ErrHasCombinations
		}
		if err := productRepo.UpdateStocks(productID, stock, variant.TotalStock(nil, stock)); err != nil {
			return err
		}
		out = dto.StockResponse{TotalStock: stock}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func toCombinationResponse(c entity.Combination) dto.CombinationResponse {
	return dto.CombinationResponse{
		ID:         c.ID,
		ProductID:  c.ProductID,
		Attributes: c.Attributes,
		Stock:      c.Stock,
	}
}

func toCombinationResponses(list []entity.Combination) []dto.CombinationResponse {
	out := make([]dto.CombinationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCombinationResponse(c))
	}
	return out
}
