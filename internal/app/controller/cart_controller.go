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

type CartController struct {
	cartService service.CartService
	sessions    *middleware.SessionMiddleware
}

func NewCartController(cartService service.CartService, sessions *middleware.SessionMiddleware) *CartController {
	return &CartController{
		cartService: cartService,
		sessions:    sessions,
	}
}

// Show renders the cart with its total
// GET /cart
func (ctrl *CartController) Show(c *gin.Context) {
	sess := middleware.GetSession(c)

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"User":  sessionUser(sess),
		"Items": sess.Cart.Items,
		"Total": ctrl.cartService.Total(&sess.Cart),
	})
}

// Add puts a product into the session cart and redirects to the cart view
// POST /cart/add/:id  (form: qty, extras)
func (ctrl *CartController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Unknown product")
		return
	}

	// Malformed or missing quantity defaults to 1.
	qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
	if err != nil || qty < 1 {
		qty = 1
	}

	extras := c.PostFormArray("extras")

	if err := ctrl.cartService.Add(&sess.Cart, uint(productID), qty, extras); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Could not add the product to the cart")
		return
	}

	if err := ctrl.sessions.SaveSession(c); err != nil {
		log.Error("Failed to save session after cart add", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Could not add the product to the cart")
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

// Remove drops a product from the cart; removing an absent product is fine
// POST /cart/remove/:id
func (ctrl *CartController) Remove(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Unknown product")
		return
	}

	ctrl.cartService.Remove(&sess.Cart, uint(productID))

	if err := ctrl.sessions.SaveSession(c); err != nil {
		log.Error("Failed to save session after cart remove", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Could not update the cart")
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

// Clear empties the cart
// POST /cart/clear
func (ctrl *CartController) Clear(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	ctrl.cartService.Clear(&sess.Cart)

	if err := ctrl.sessions.SaveSession(c); err != nil {
		log.Error("Failed to save session after cart clear", err, nil)
		apperrors.InternalError(c, "Could not update the cart")
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}
