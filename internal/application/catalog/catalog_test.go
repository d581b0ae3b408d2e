package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/catalog"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fixture agrupa los casos de uso del catálogo sobre un almacén en memoria
// fresco, para ejercitarlos de punta a punta sin base de datos.
type fixture struct {
	categories *catalog.CategoryUseCase
	shops      *catalog.ShopUseCase
	menus      *catalog.MenuUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	categoryRepo := memory.NewCategoryRepository(store)
	shopRepo := memory.NewShopRepository(store)
	menuRepo := memory.NewMenuItemRepository(store)
	return &fixture{
		categories: catalog.NewCategoryUseCase(categoryRepo, shopRepo),
		shops:      catalog.NewShopUseCase(shopRepo, categoryRepo, menuRepo),
		menus:      catalog.NewMenuUseCase(menuRepo, shopRepo),
	}
}

// mustCategory crea una categoría o falla el test.
func mustCategory(t *testing.T, f *fixture, name string) *dto.CategoryResponse {
	t.Helper()
	out, err := f.categories.Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err, "debe crearse la categoría %s", name)
	return out
}

// mustShop crea un shop o falla el test.
func mustShop(t *testing.T, f *fixture, categoryID, name string) *dto.ShopResponse {
	t.Helper()
	out, err := f.shops.Create(dto.CreateShopRequest{CategoryID: categoryID, Name: name})
	require.NoError(t, err, "debe crearse el shop %s", name)
	return out
}

// mustMenuItem crea un ítem de menú o falla el test.
func mustMenuItem(t *testing.T, f *fixture, shopID, itemName string, price string) *dto.MenuItemResponse {
	t.Helper()
	p := dec(price)
	out, err := f.menus.Create(dto.CreateMenuItemRequest{ShopID: shopID, ItemName: itemName, Price: &p})
	require.NoError(t, err, "debe crearse el ítem %s", itemName)
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_NombreVacio(t *testing.T) {
	f := newFixture()
	_, err := f.categories.Create(dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	f := newFixture()
	mustCategory(t, f, "Beverages")

	_, err := f.categories.Create(dto.CreateCategoryRequest{Name: "Beverages"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"un segundo create con el mismo nombre debe rechazarse")

	list, err := f.categories.List()
	require.NoError(t, err)
	assert.Len(t, list, 1, "el duplicado rechazado no debe dejar filas")
}

func TestCategoryEnsure_Idempotente(t *testing.T) {
	f := newFixture()

	first, err := f.categories.Ensure("Beverages", "https://example.com/bev.png", true)
	require.NoError(t, err)

	// Segunda llamada con otros atributos: devuelve la fila existente intacta.
	second, err := f.categories.Ensure("Beverages", "https://example.com/otro.png", false)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "ensure debe devolver la misma categoría")
	assert.Equal(t, first.ImageURL, second.ImageURL, "ensure nunca pisa datos existentes")
	assert.True(t, second.IsActive)

	list, err := f.categories.List()
	require.NoError(t, err)
	assert.Len(t, list, 1, "dos ensure con el mismo nombre crean una sola fila")
}

func TestCategoryUpdate_Parcial(t *testing.T) {
	f := newFixture()
	created := mustCategory(t, f, "Desserts")

	img := "https://example.com/desserts.png"
	out, err := f.categories.Update(created.ID, dto.UpdateCategoryRequest{ImageURL: &img})
	require.NoError(t, err)

	assert.Equal(t, "Desserts", out.Name, "los campos omitidos se conservan")
	assert.Equal(t, img, out.ImageURL)
	assert.True(t, out.IsActive)
}

func TestCategoryUpdate_RenombrarANombreOcupado(t *testing.T) {
	f := newFixture()
	mustCategory(t, f, "Beverages")
	ff := mustCategory(t, f, "Fast Food")

	// Renombrar hacia un nombre ya ocupado rompería la clave del ensure.
	ocupado := "Beverages"
	_, err := f.categories.Update(ff.ID, dto.UpdateCategoryRequest{Name: &ocupado})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el rename respeta la misma unicidad de nombre que el create")

	// Ninguna fila cambió: sigue habiendo una sola "Beverages".
	list, err := f.categories.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	var beverages int
	for _, c := range list {
		if c.Name == "Beverages" {
			beverages++
		}
	}
	assert.Equal(t, 1, beverages)

	// Re-enviar el nombre propio no es un duplicado.
	propio := "Fast Food"
	out, err := f.categories.Update(ff.ID, dto.UpdateCategoryRequest{Name: &propio})
	require.NoError(t, err)
	assert.Equal(t, "Fast Food", out.Name)
}

func TestCategoryUpdate_NoExiste(t *testing.T) {
	f := newFixture()
	name := "X"
	_, err := f.categories.Update("no-existe", dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_ConShops_Rechazado(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Fast Food")
	shop := mustShop(t, f, cat.ID, "Burger Barn")

	err := f.categories.Delete(cat.ID)
	assert.ErrorIs(t, err, domain.ErrHasDependents,
		"una categoría con shops no se borra en cascada")

	// Ni la categoría ni el shop fueron tocados.
	list, err := f.categories.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ShopCount)

	detail, err := f.shops.GetDetail(shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger Barn", detail.Name)
}

func TestCategoryDelete_SinShops(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Vacía")

	require.NoError(t, f.categories.Delete(cat.ID))

	list, err := f.categories.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCategoryList_ConteoYOrden(t *testing.T) {
	f := newFixture()
	first := mustCategory(t, f, "Beverages")
	second := mustCategory(t, f, "Fast Food")
	mustShop(t, f, second.ID, "Burger Barn")
	mustShop(t, f, second.ID, "Pizza Corner")

	list, err := f.categories.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Más recientes primero, con el conteo derivado de shops.
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, int64(2), list[0].ShopCount)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, int64(0), list[1].ShopCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Shops
// ──────────────────────────────────────────────────────────────────────────────

func TestShopCreate_CategoriaInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.shops.Create(dto.CreateShopRequest{CategoryID: "no-existe", Name: "Cafe Good"})
	assert.ErrorIs(t, err, domain.ErrConstraint,
		"crear un shop contra una categoría inexistente debe rechazarse sin escribir nada")

	list, err := f.shops.List("", false)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestShopEnsure_ScopePorCategoria(t *testing.T) {
	f := newFixture()
	bev := mustCategory(t, f, "Beverages")
	ff := mustCategory(t, f, "Fast Food")

	// El mismo nombre en dos categorías son dos shops distintos.
	inBev, err := f.shops.Ensure(dto.CreateShopRequest{CategoryID: bev.ID, Name: "Corner"})
	require.NoError(t, err)
	inFF, err := f.shops.Ensure(dto.CreateShopRequest{CategoryID: ff.ID, Name: "Corner"})
	require.NoError(t, err)
	assert.NotEqual(t, inBev.ID, inFF.ID)

	// Repetir el ensure en la misma categoría devuelve la fila existente.
	again, err := f.shops.Ensure(dto.CreateShopRequest{CategoryID: bev.ID, Name: "Corner", Description: "otra"})
	require.NoError(t, err)
	assert.Equal(t, inBev.ID, again.ID)
	assert.Empty(t, again.Description, "ensure no modifica el shop existente")

	list, err := f.shops.List("", false)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestShopUpdate_RecategorizarAInexistente(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	shop := mustShop(t, f, cat.ID, "Cafe Good")

	bad := "no-existe"
	_, err := f.shops.Update(shop.ID, dto.UpdateShopRequest{CategoryID: &bad})
	assert.ErrorIs(t, err, domain.ErrConstraint)

	// El shop conserva su categoría original.
	detail, err := f.shops.GetDetail(shop.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, detail.CategoryID)
}

func TestShopUpdate_Parcial(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	created, err := f.shops.Create(dto.CreateShopRequest{
		CategoryID:  cat.ID,
		Name:        "Cafe Good",
		Address:     "123 Coffee St",
		PhoneNumber: "9876543210",
	})
	require.NoError(t, err)

	city := "Bogotá"
	out, err := f.shops.Update(created.ID, dto.UpdateShopRequest{City: &city})
	require.NoError(t, err)

	assert.Equal(t, "Cafe Good", out.Name)
	assert.Equal(t, "123 Coffee St", out.Address, "los campos omitidos se conservan")
	assert.Equal(t, city, out.City)
}

func TestShopDelete_CascadaSobreMenu(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Fast Food")
	barn := mustShop(t, f, cat.ID, "Burger Barn")
	otro := mustShop(t, f, cat.ID, "Pizza Corner")

	mustMenuItem(t, f, barn.ID, "Classic Burger", "220")
	mustMenuItem(t, f, barn.ID, "Fries", "70")
	keep := mustMenuItem(t, f, otro.ID, "Margherita", "310")

	require.NoError(t, f.shops.Delete(barn.ID))

	// El shop y todo su menú desaparecen juntos.
	_, err := f.shops.GetDetail(barn.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	menus, err := f.menus.ListByShop(barn.ID)
	require.NoError(t, err)
	assert.Empty(t, menus, "los ítems del shop borrado no deben sobrevivir")

	// El menú de otros shops queda intacto.
	rest, err := f.menus.ListByShop(otro.ID)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, keep.ID, rest[0].ID)
}

func TestShopDelete_NoExiste(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.shops.Delete("no-existe"), domain.ErrNotFound)
}

func TestShopGetDetail_IncluyeCategoriaYMenuOrdenado(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Fast Food")
	shop := mustShop(t, f, cat.ID, "Burger Barn")
	mustMenuItem(t, f, shop.ID, "Fries", "70")
	mustMenuItem(t, f, shop.ID, "Classic Burger", "220")
	mustMenuItem(t, f, shop.ID, "Cola", "40")

	detail, err := f.shops.GetDetail(shop.ID)
	require.NoError(t, err)

	require.NotNil(t, detail.Category)
	assert.Equal(t, "Fast Food", detail.Category.Name)

	require.Len(t, detail.Menus, 3)
	assert.Equal(t, "Classic Burger", detail.Menus[0].ItemName)
	assert.Equal(t, "Cola", detail.Menus[1].ItemName)
	assert.Equal(t, "Fries", detail.Menus[2].ItemName)
}

func TestShopList_FiltroPorCategoria(t *testing.T) {
	f := newFixture()
	bev := mustCategory(t, f, "Beverages")
	ff := mustCategory(t, f, "Fast Food")
	mustShop(t, f, bev.ID, "Cafe Good")
	mustShop(t, f, ff.ID, "Burger Barn")

	list, err := f.shops.List(bev.ID, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cafe Good", list[0].Name)
	require.NotNil(t, list[0].Category)
	assert.Equal(t, "Beverages", list[0].Category.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems de menú
// ──────────────────────────────────────────────────────────────────────────────

func TestMenuCreate_PrecioObligatorio(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	shop := mustShop(t, f, cat.ID, "Cafe Good")

	// Precio ausente
	_, err := f.menus.Create(dto.CreateMenuItemRequest{ShopID: shop.ID, ItemName: "Cappuccino"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un precio ausente nunca se convierte en 0")

	// Precio negativo
	neg := dec("-1")
	_, err = f.menus.Create(dto.CreateMenuItemRequest{ShopID: shop.ID, ItemName: "Cappuccino", Price: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	menus, err := f.menus.ListByShop(shop.ID)
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestMenuCreate_PrecioCero_Valido(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	shop := mustShop(t, f, cat.ID, "Cafe Good")

	out := mustMenuItem(t, f, shop.ID, "Agua", "0")
	assert.True(t, out.Price.IsZero(), "precio 0 explícito es válido")
}

func TestMenuCreate_ShopInexistente(t *testing.T) {
	f := newFixture()
	p := dec("120")
	_, err := f.menus.Create(dto.CreateMenuItemRequest{ShopID: "no-existe", ItemName: "Cappuccino", Price: &p})
	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestMenuCreate_DisponiblePorDefecto(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	shop := mustShop(t, f, cat.ID, "Cafe Good")

	out := mustMenuItem(t, f, shop.ID, "Cappuccino", "120")
	assert.True(t, out.IsAvailable, "is_available omitido toma true por defecto")
	assert.Nil(t, out.Quantity, "quantity omitido queda sin valor, no 0")
}

func TestMenuEnsure_Idempotente(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	shop := mustShop(t, f, cat.ID, "Cafe Good")

	p := dec("120")
	first, err := f.menus.Ensure(dto.CreateMenuItemRequest{ShopID: shop.ID, ItemName: "Cappuccino", Price: &p})
	require.NoError(t, err)

	otro := dec("999")
	second, err := f.menus.Ensure(dto.CreateMenuItemRequest{ShopID: shop.ID, ItemName: "Cappuccino", Price: &otro})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Price.Equal(dec("120")), "ensure no modifica el precio existente")

	menus, err := f.menus.ListByShop(shop.ID)
	require.NoError(t, err)
	assert.Len(t, menus, 1)
}

func TestMenuUpdate_PrecioNegativo_NoModifica(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	shop := mustShop(t, f, cat.ID, "Cafe Good")
	item := mustMenuItem(t, f, shop.ID, "Cappuccino", "120")

	neg := dec("-5")
	_, err := f.menus.Update(item.ID, dto.UpdateMenuItemRequest{Price: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	menus, err := f.menus.ListByShop(shop.ID)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.True(t, menus[0].Price.Equal(dec("120")), "el precio almacenado queda intacto")
}

func TestMenuUpdate_Parcial(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Beverages")
	shop := mustShop(t, f, cat.ID, "Cafe Good")
	item := mustMenuItem(t, f, shop.ID, "Cappuccino", "120")

	nuevo := dec("135.50")
	out, err := f.menus.Update(item.ID, dto.UpdateMenuItemRequest{Price: &nuevo})
	require.NoError(t, err)

	assert.Equal(t, "Cappuccino", out.ItemName, "los campos omitidos se conservan")
	assert.True(t, out.Price.Equal(dec("135.50")))
}

func TestMenuListByShop_OrdenAlfabetico(t *testing.T) {
	f := newFixture()
	cat := mustCategory(t, f, "Fast Food")
	shop := mustShop(t, f, cat.ID, "Burger Barn")
	mustMenuItem(t, f, shop.ID, "Fries", "70")
	mustMenuItem(t, f, shop.ID, "Classic Burger", "220")
	mustMenuItem(t, f, shop.ID, "Cola", "40")

	menus, err := f.menus.ListByShop(shop.ID)
	require.NoError(t, err)
	require.Len(t, menus, 3)
	assert.Equal(t, "Classic Burger", menus[0].ItemName)
	assert.Equal(t, "Cola", menus[1].ItemName)
	assert.Equal(t, "Fries", menus[2].ItemName)
}

func TestMenuDelete_NoExiste(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.menus.Delete("no-existe"), domain.ErrNotFound)
}
