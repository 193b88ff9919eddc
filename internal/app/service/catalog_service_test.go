package service

import (
	"testing"

	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (CatalogService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	categoryRepo := repository.NewCategoryRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	return NewCatalogService(categoryRepo, productRepo), testDB
}

func seedCatalog(t *testing.T, testDB *gorm.DB) (model.Category, model.Category) {
	t.Helper()

	drinks := model.Category{Name: "Bebidas", SortOrder: 2}
	burgers := model.Category{Name: "Hamburguesas", SortOrder: 1}
	require.NoError(t, testDB.Create(&drinks).Error)
	require.NoError(t, testDB.Create(&burgers).Error)

	products := []model.Product{
		{Name: "Hamburguesa Clásica", Price: 3500, CategoryID: burgers.ID, Active: true},
		{Name: "Hamburguesa Doble Queso", Price: 4500, CategoryID: burgers.ID, Active: true},
		{Name: "Gaseosa 350ml", Price: 1200, CategoryID: drinks.ID, Active: true},
		{Name: "Batido descontinuado", Price: 2000, CategoryID: drinks.ID, Active: false},
	}
	for i := range products {
		require.NoError(t, testDB.Create(&products[i]).Error)
	}

	return burgers, drinks
}

func TestCatalogService_ListCategories_SortedBySortOrder(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)
	seedCatalog(t, testDB)

	categories, err := catalogService.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Hamburguesas", categories[0].Name)
	assert.Equal(t, "Bebidas", categories[1].Name)
}

func TestCatalogService_ListProducts_All(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)
	seedCatalog(t, testDB)

	products, err := catalogService.ListProducts(nil)
	require.NoError(t, err)

	// Inactive products are hidden
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.Active)
	}
}

func TestCatalogService_ListProducts_ByCategory(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)
	burgers, drinks := seedCatalog(t, testDB)

	products, err := catalogService.ListProducts(&burgers.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = catalogService.ListProducts(&drinks.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Gaseosa 350ml", products[0].Name)
}

func TestCatalogService_ListProducts_EmptyCategory(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)
	seedCatalog(t, testDB)

	empty := model.Category{Name: "Postres", SortOrder: 3}
	require.NoError(t, testDB.Create(&empty).Error)

	products, err := catalogService.ListProducts(&empty.ID)
	require.NoError(t, err)
	assert.Len(t, products, 0)
}

func TestCatalogService_GetProduct_WithExtras(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)
	burgers, _ := seedCatalog(t, testDB)

	product := model.Product{
		Name:       "Hamburguesa BBQ",
		Price:      4000,
		CategoryID: burgers.ID,
		Active:     true,
		Extras: []model.ProductExtra{
			{Code: "tocino", Label: "Tocino", Surcharge: 700},
			{Code: "salsa_bbq", Label: "Salsa BBQ extra", Surcharge: 300},
		},
	}
	require.NoError(t, testDB.Create(&product).Error)

	found, err := catalogService.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hamburguesa BBQ", found.Name)
	assert.Equal(t, "Hamburguesas", found.Category.Name)
	require.Len(t, found.Extras, 2)
	assert.Equal(t, "tocino", found.Extras[0].Code)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	_, err := catalogService.GetProduct(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
