package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogController_Menu_ListsActiveProducts(t *testing.T) {
	env := setupControllerTest(t)
	cookie := env.loginAs(t, env.createUser(t, "juan"))

	env.createProduct(t, "Hamburguesa Clásica", 3500)
	env.createProduct(t, "Hamburguesa Doble Queso", 4500)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := env.request(req, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "menu items=2")
}

func TestCatalogController_Menu_FiltersByCategory(t *testing.T) {
	env := setupControllerTest(t)
	cookie := env.loginAs(t, env.createUser(t, "juan"))
	env.createProduct(t, "Hamburguesa Clásica", 3500)

	drinks := &model.Category{Name: "Bebidas", SortOrder: 2}
	require.NoError(t, env.db.Create(drinks).Error)
	require.NoError(t, env.db.Create(&model.Product{
		Name: "Gaseosa 350ml", Price: 1200, CategoryID: drinks.ID, Active: true,
	}).Error)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/menu?category=%d", drinks.ID), nil)
	w := env.request(req, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "menu items=1")
}

func TestCatalogController_Menu_BadCategoryParam(t *testing.T) {
	env := setupControllerTest(t)
	cookie := env.loginAs(t, env.createUser(t, "juan"))

	req := httptest.NewRequest(http.MethodGet, "/menu?category=abc", nil)
	w := env.request(req, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogController_ProductDetail(t *testing.T) {
	env := setupControllerTest(t)
	cookie := env.loginAs(t, env.createUser(t, "juan"))
	product := env.createProduct(t, "Hamburguesa Clásica", 3500)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil)
	w := env.request(req, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "product Hamburguesa Clásica")
}

func TestCatalogController_ProductDetail_NotFound(t *testing.T) {
	env := setupControllerTest(t)
	cookie := env.loginAs(t, env.createUser(t, "juan"))

	req := httptest.NewRequest(http.MethodGet, "/products/9999", nil)
	w := env.request(req, cookie)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
