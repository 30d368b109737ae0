package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muycriollo/catalogo-api/internal/application/catalog"
	"github.com/muycriollo/catalogo-api/internal/domain"
	"github.com/muycriollo/catalogo-api/internal/domain/entity"
	"github.com/muycriollo/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStocks(productID string, baseStock, totalStock int) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.BaseStock = baseStock
	p.TotalStock = totalStock
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.Active {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeVariantRepo struct {
	variants []entity.ProductVariant
}

func (r *fakeVariantRepo) Create(v *entity.ProductVariant) error {
	r.variants = append(r.variants, *v)
	return nil
}

func (r *fakeVariantRepo) ListByProduct(productID string) ([]entity.ProductVariant, error) {
	var list []entity.ProductVariant
	for _, v := range r.variants {
		if v.ProductID == productID {
			list = append(list, v)
		}
	}
	return list, nil
}

func (r *fakeVariantRepo) Delete(id string) error {
	out := r.variants[:0]
	for _, v := range r.variants {
		if v.ID != id {
			out = append(out, v)
		}
	}
	r.variants = out
	return nil
}

type fakeCombinationRepo struct {
	combos []entity.Combination

	// failUpdateStock fuerza el fallo de UpdateStock para simular un error de
	// persistencia a mitad de transacción.
	failUpdateStock bool
}

func (r *fakeCombinationRepo) Create(c *entity.Combination) error {
	cp := *c
	cp.Attributes = c.Attributes.Clone()
	r.combos = append(r.combos, cp)
	return nil
}

func (r *fakeCombinationRepo) GetByID(id string) (*entity.Combination, error) {
	for _, c := range r.combos {
		if c.ID == id {
			cp := c
			cp.Attributes = c.Attributes.Clone()
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCombinationRepo) ListByProduct(productID string) ([]entity.Combination, error) {
	var list []entity.Combination
	for _, c := range r.combos {
		if c.ProductID == productID {
			cp := c
			cp.Attributes = c.Attributes.Clone()
			list = append(list, cp)
		}
	}
	return list, nil
}

func (r *fakeCombinationRepo) ListByProductForUpdate(productID string) ([]entity.Combination, error) {
	return r.ListByProduct(productID)
}

func (r *fakeCombinationRepo) UpdateStock(id string, stock int) error {
	if r.failUpdateStock {
		return errors.New("falla simulada de persistencia")
	}
	for i := range r.combos {
		if r.combos[i].ID == id {
			r.combos[i].Stock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCombinationRepo) DeleteByIDs(ids []string) error {
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	out := r.combos[:0]
	for _, c := range r.combos {
		if !drop[c.ID] {
			out = append(out, c)
		}
	}
	r.combos = out
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los repos en memoria.
type fakeTxRunner struct {
	combinationRepo *fakeCombinationRepo
	productRepo     *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	combinationRepo repository.CombinationRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.combinationRepo, r.productRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newProduct(id string, baseStock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:         id,
		SKU:        "SKU-" + id,
		Name:       "Camiseta criolla",
		Active:     true,
		BaseStock:  baseStock,
		TotalStock: baseStock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func variantEntry(id, productID, axis, value string) entity.ProductVariant {
	return entity.ProductVariant{ID: id, ProductID: productID, Axis: axis, Value: value}
}

type matrixFixture struct {
	uc          *catalog.MatrixUseCase
	productRepo *fakeProductRepo
	variantRepo *fakeVariantRepo
	comboRepo   *fakeCombinationRepo
}

func newMatrixFixture(product *entity.Product, variants []entity.ProductVariant, combos []entity.Combination) *matrixFixture {
	productRepo := newFakeProductRepo(product)
	variantRepo := &fakeVariantRepo{variants: variants}
	comboRepo := &fakeCombinationRepo{combos: combos}
	tx := &fakeTxRunner{combinationRepo: comboRepo, productRepo: productRepo}
	return &matrixFixture{
		uc:          catalog.NewMatrixUseCase(tx, productRepo, variantRepo, comboRepo),
		productRepo: productRepo,
		variantRepo: variantRepo,
		comboRepo:   comboRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerateMatrix
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: producto con Color {Rojo, Azul} y Talle {M, L} sin matriz previa.
// La regeneración debe crear las 4 combinaciones con stock 0 y dejar
// total_stock en 0 (la suma manda apenas existen combinaciones).
func TestGenerateMatrix_CreaProductoCartesiano(t *testing.T) {
	f := newMatrixFixture(newProduct("p1", 10), []entity.ProductVariant{
		variantEntry("v1", "p1", "Color", "Rojo"),
		variantEntry("v2", "p1", "Color", "Azul"),
		variantEntry("v3", "p1", "Talle", "M"),
		variantEntry("v4", "p1", "Talle", "L"),
	}, nil)

	out, err := f.uc.GenerateMatrix(context.Background(), "p1", false)
	require.NoError(t, err)

	require.Len(t, out.Combinations, 4, "2 colores x 2 talles = 4 combinaciones")
	assert.False(t, out.RequiresConfirmation)
	assert.Equal(t, 0, out.Deleted)
	assert.Equal(t, 0, out.TotalStock, "combinaciones nuevas arrancan en 0 y la suma manda")
	for _, c := range out.Combinations {
		assert.NotEmpty(t, c.ID, "toda combinación persistida debe tener ID")
		assert.Equal(t, 0, c.Stock)
	}

	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 0, p.TotalStock, "total_stock del producto debe persistirse")
	assert.Equal(t, 10, p.BaseStock, "el stock base no se toca")
	assert.Len(t, f.comboRepo.combos, 4)
}

// Escenario: la combinación (Rojo, M) ya existe con stock cargado. Agregar el
// valor Azul y regenerar debe preservar su ID y stock, crear las nuevas en 0 y
// recalcular el total.
func TestGenerateMatrix_PreservaIDYStockDeCoincidencias(t *testing.T) {
	existing := entity.Combination{
		ID:         "c-rojo-m",
		ProductID:  "p1",
		Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo", "Talle": "M"}),
		Stock:      7,
	}
	f := newMatrixFixture(newProduct("p1", 10), []entity.ProductVariant{
		variantEntry("v1", "p1", "Color", "Rojo"),
		variantEntry("v2", "p1", "Color", "Azul"),
		variantEntry("v3", "p1", "Talle", "M"),
	}, []entity.Combination{existing})

	out, err := f.uc.GenerateMatrix(context.Background(), "p1", false)
	require.NoError(t, err)
	require.Len(t, out.Combinations, 2)

	var preserved, created int
	for _, c := range out.Combinations {
		if c.Attributes["Color"] == "Rojo" {
			assert.Equal(t, "c-rojo-m", c.ID, "la coincidencia conserva su ID")
			assert.Equal(t, 7, c.Stock, "la coincidencia conserva su stock")
			preserved++
		} else {
			assert.NotEmpty(t, c.ID)
			assert.Equal(t, 0, c.Stock, "combinación nueva arranca en 0")
			created++
		}
	}
	assert.Equal(t, 1, preserved)
	assert.Equal(t, 1, created)
	assert.Equal(t, 7, out.TotalStock, "total = suma de stocks de la matriz")
}

// Escenario: quitar un eje entero deja combinaciones inalcanzables; la
// regeneración debe borrarlas y reportar cuántas.
func TestGenerateMatrix_BorraCombinacionesInalcanzables(t *testing.T) {
	combos := []entity.Combination{
		{ID: "c1", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo", "Talle": "M"}), Stock: 3},
		{ID: "c2", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo", "Talle": "L"}), Stock: 4},
	}
	// El catálogo ya no tiene el eje Talle.
	f := newMatrixFixture(newProduct("p1", 10), []entity.ProductVariant{
		variantEntry("v1", "p1", "Color", "Rojo"),
	}, combos)

	out, err := f.uc.GenerateMatrix(context.Background(), "p1", false)
	require.NoError(t, err)

	require.Len(t, out.Combinations, 1, "queda solo la combinación {Color: Rojo}")
	assert.Equal(t, 2, out.Deleted, "las dos combinaciones con Talle son inalcanzables")
	assert.Len(t, f.comboRepo.combos, 1)
}

// Escenario: catálogo vacío con matriz existente. Sin confirmación no se toca
// nada y se pide confirmar; con confirmación se colapsa la matriz y el producto
// vuelve a modo stock base.
func TestGenerateMatrix_ColapsoRequiereConfirmacion(t *testing.T) {
	combos := []entity.Combination{
		{ID: "c1", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo"}), Stock: 5},
	}
	f := newMatrixFixture(newProduct("p1", 10), nil, combos)

	// Primer intento: sin confirmar no se escribe nada.
	out, err := f.uc.GenerateMatrix(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.True(t, out.RequiresConfirmation, "colapsar la matriz exige confirmación explícita")
	assert.Len(t, f.comboRepo.combos, 1, "ninguna combinación se borra sin confirmar")

	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 5, p.TotalStock, "el total tampoco cambia sin confirmar")

	// Segundo intento confirmado: la matriz se colapsa.
	out, err = f.uc.GenerateMatrix(context.Background(), "p1", true)
	require.NoError(t, err)
	assert.False(t, out.RequiresConfirmation)
	assert.Equal(t, 1, out.Deleted)
	assert.Empty(t, out.Combinations)
	assert.Empty(t, f.comboRepo.combos)

	p, _ = f.productRepo.GetByID("p1")
	assert.Equal(t, 10, p.TotalStock, "sin combinaciones el total vuelve al stock base")
}

// concurrentEditTxRunner simula otra sesión que comitea un edit de stock justo
// antes de que arranque la transacción de la regeneración.
type concurrentEditTxRunner struct {
	inner      *fakeTxRunner
	beforeOnce func()
}

func (r *concurrentEditTxRunner) Run(ctx context.Context, fn func(
	combinationRepo repository.CombinationRepository,
	productRepo repository.ProductRepository,
) error) error {
	if r.beforeOnce != nil {
		r.beforeOnce()
		r.beforeOnce = nil
	}
	return r.inner.Run(ctx, fn)
}

// Escenario: mientras la regeneración está en vuelo, otra sesión comitea un
// edit de stock (c-rojo: 7 → 50). La reconciliación lee lo persistido dentro de
// la transacción, así que el edit se preserva y total_stock queda igual a la
// suma de los stocks persistidos, nunca al valor leído antes del edit.
func TestGenerateMatrix_EditConcurrenteNoSePisa(t *testing.T) {
	existing := entity.Combination{
		ID:         "c-rojo",
		ProductID:  "p1",
		Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo"}),
		Stock:      7,
	}
	productRepo := newFakeProductRepo(newProduct("p1", 10))
	variantRepo := &fakeVariantRepo{variants: []entity.ProductVariant{
		variantEntry("v1", "p1", "Color", "Rojo"),
		variantEntry("v2", "p1", "Color", "Azul"),
	}}
	comboRepo := &fakeCombinationRepo{combos: []entity.Combination{existing}}
	tx := &concurrentEditTxRunner{
		inner: &fakeTxRunner{combinationRepo: comboRepo, productRepo: productRepo},
		beforeOnce: func() {
			require.NoError(t, comboRepo.UpdateStock("c-rojo", 50))
			require.NoError(t, productRepo.UpdateStocks("p1", 10, 50))
		},
	}
	uc := catalog.NewMatrixUseCase(tx, productRepo, variantRepo, comboRepo)

	out, err := uc.GenerateMatrix(context.Background(), "p1", false)
	require.NoError(t, err)
	require.Len(t, out.Combinations, 2)

	assert.Equal(t, 50, out.TotalStock, "el total refleja el edit concurrente, no la lectura vieja")
	for _, c := range out.Combinations {
		if c.ID == "c-rojo" {
			assert.Equal(t, 50, c.Stock, "el stock comiteado por la otra sesión se preserva")
		}
	}

	// La suma de stocks persistidos y el total persistido deben coincidir.
	sum := 0
	for _, c := range comboRepo.combos {
		sum += c.Stock
	}
	p, _ := productRepo.GetByID("p1")
	assert.Equal(t, sum, p.TotalStock, "total_stock == suma de stocks persistidos")
}

func TestGenerateMatrix_ProductoInexistente(t *testing.T) {
	f := newMatrixFixture(newProduct("p1", 0), nil, nil)

	_, err := f.uc.GenerateMatrix(context.Background(), "no-existe", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetCombinationStock
// ──────────────────────────────────────────────────────────────────────────────

func TestSetCombinationStock_ActualizaYRecalculaTotal(t *testing.T) {
	combos := []entity.Combination{
		{ID: "c1", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo"}), Stock: 2},
		{ID: "c2", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Azul"}), Stock: 3},
	}
	f := newMatrixFixture(newProduct("p1", 10), nil, combos)

	out, err := f.uc.SetCombinationStock(context.Background(), "c1", 8)
	require.NoError(t, err)

	require.NotNil(t, out.Combination)
	assert.Equal(t, 8, out.Combination.Stock)
	assert.Equal(t, 11, out.TotalStock, "total = 8 + 3")

	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 11, p.TotalStock, "el total recalculado se persiste en el producto")
}

func TestSetCombinationStock_RechazaNegativo(t *testing.T) {
	combos := []entity.Combination{
		{ID: "c1", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo"}), Stock: 2},
	}
	f := newMatrixFixture(newProduct("p1", 10), nil, combos)

	_, err := f.uc.SetCombinationStock(context.Background(), "c1", -1)
	assert.ErrorIs(t, err, domain.ErrStockOutOfRange)

	got, _ := f.comboRepo.GetByID("c1")
	assert.Equal(t, 2, got.Stock, "un edit rechazado no altera el stock")
}

func TestSetCombinationStock_CombinacionInexistente(t *testing.T) {
	f := newMatrixFixture(newProduct("p1", 10), nil, nil)

	_, err := f.uc.SetCombinationStock(context.Background(), "no-existe", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Escenario: la persistencia falla a mitad de la transacción. El caso de uso
// propaga el error y ni el stock ni el total quedan a medias.
func TestSetCombinationStock_FalloDePersistenciaNoDejaEstadoParcial(t *testing.T) {
	combos := []entity.Combination{
		{ID: "c1", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo"}), Stock: 2},
	}
	f := newMatrixFixture(newProduct("p1", 10), nil, combos)
	f.comboRepo.failUpdateStock = true

	_, err := f.uc.SetCombinationStock(context.Background(), "c1", 9)
	require.Error(t, err)

	got, _ := f.comboRepo.GetByID("c1")
	assert.Equal(t, 2, got.Stock)
	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 10, p.TotalStock, "el total del producto no se actualiza si el edit falló")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetBaseStock
// ──────────────────────────────────────────────────────────────────────────────

func TestSetBaseStock_ProductoSinMatriz(t *testing.T) {
	f := newMatrixFixture(newProduct("p1", 10), nil, nil)

	out, err := f.uc.SetBaseStock(context.Background(), "p1", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, out.TotalStock, "sin matriz el total es el stock base")

	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 25, p.BaseStock)
	assert.Equal(t, 25, p.TotalStock)
}

func TestSetBaseStock_RechazadoConMatrizActiva(t *testing.T) {
	combos := []entity.Combination{
		{ID: "c1", ProductID: "p1", Attributes: entity.NewAttributeSet(map[string]string{"Color": "Rojo"}), Stock: 5},
	}
	f := newMatrixFixture(newProduct("p1", 10), nil, combos)

	_, err := f.uc.SetBaseStock(context.Background(), "p1", 25)
	assert.ErrorIs(t, err, domain.ErrHasCombinations)

	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 10, p.BaseStock, "con matriz activa el stock base no se toca")
}

func TestSetBaseStock_RechazaNegativo(t *testing.T) {
	f := newMatrixFixture(newProduct("p1", 10), nil, nil)

	_, err := f.uc.SetBaseStock(context.Background(), "p1", -3)
	assert.ErrorIs(t, err, domain.ErrStockOutOfRange)
}
