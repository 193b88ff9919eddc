package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jcastror/elfogon-backend/internal/app/service"
	apperrors "github.com/jcastror/elfogon-backend/internal/errors"
	"github.com/jcastror/elfogon-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Home renders the landing page
// GET /
func (ctrl *CatalogController) Home(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"User": sessionUser(sess),
	})
}

// Contact renders the contact page
// GET /contact
func (ctrl *CatalogController) Contact(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"User": sessionUser(sess),
	})
}

// Menu renders the category-browsable product menu
// GET /menu?category=<id>
func (ctrl *CatalogController) Menu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	categories, err := ctrl.catalogService.ListCategories()
	if err != nil {
		log.Error("Failed to load menu categories", err, nil)
		apperrors.InternalError(c, "Could not load the menu")
		return
	}

	var selected *uint
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Unknown category")
			return
		}
		v := uint(id)
		selected = &v
	}

	products, err := ctrl.catalogService.ListProducts(selected)
	if err != nil {
		log.Error("Failed to load menu products", err, map[string]interface{}{
			"category_id": selected,
		})
		apperrors.InternalError(c, "Could not load the menu")
		return
	}

	// Zero means no filter; real category IDs start at one.
	var selectedID uint
	if selected != nil {
		selectedID = *selected
	}

	c.HTML(http.StatusOK, "menu.html", gin.H{
		"User":             sessionUser(sess),
		"Categories":       categories,
		"Products":         products,
		"SelectedCategory": selectedID,
		"CartCount":        len(sess.Cart.Items),
	})
}

// ProductDetail renders one product with its extras
// GET /products/:id
func (ctrl *CatalogController) ProductDetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Unknown product")
		return
	}

	product, err := ctrl.catalogService.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to load product detail", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.HTML(http.StatusOK, "product_detail.html", gin.H{
		"User":    sessionUser(sess),
		"Product": product,
	})
}
