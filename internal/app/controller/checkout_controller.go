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

type CheckoutController struct {
	checkoutService service.CheckoutService
	sessions        *middleware.SessionMiddleware
}

func NewCheckoutController(checkoutService service.CheckoutService, sessions *middleware.SessionMiddleware) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
		sessions:        sessions,
	}
}

// Show renders the confirmation page. Visitors with an empty cart are sent
// back to the cart, and visitors with no saved address are sent to the
// address book first.
// GET /checkout
func (ctrl *CheckoutController) Show(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)
	userID, _ := middleware.GetUserID(c)

	addresses, err := ctrl.checkoutService.Prepare(userID, &sess.Cart)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.Redirect(http.StatusFound, "/cart")
		case errors.Is(err, service.ErrNoAddresses):
			c.Redirect(http.StatusFound, "/addresses")
		default:
			log.Error("Failed to prepare checkout", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.InternalError(c, "Could not start checkout")
		}
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"User":      sessionUser(sess),
		"Addresses": addresses,
		"Items":     sess.Cart.Items,
		"Total":     sess.Cart.Total(),
	})
}

// Confirm places the order against the chosen address and empties the cart.
// POST /checkout
func (ctrl *CheckoutController) Confirm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)
	userID, _ := middleware.GetUserID(c)

	addressID, err := strconv.ParseUint(c.PostForm("address_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.CheckoutInvalidAddress, "Pick one of your delivery addresses")
		return
	}

	order, err := ctrl.checkoutService.Confirm(userID, uint(addressID), &sess.Cart)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.Redirect(http.StatusFound, "/cart")
		case errors.Is(err, service.ErrInvalidAddress):
			apperrors.BadRequest(c, apperrors.CheckoutInvalidAddress, "Pick one of your delivery addresses")
		default:
			log.Error("Failed to confirm order", err, map[string]interface{}{
				"user_id":    userID,
				"address_id": addressID,
			})
			apperrors.InternalError(c, "Could not place the order")
		}
		return
	}

	// The order exists at this point. A failed session save leaves stale
	// items in the cart but must not undo the order.
	if err := ctrl.sessions.SaveSession(c); err != nil {
		log.Error("Order placed but cart was not persisted as empty", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": order.ID,
		})
	}

	log.Info("Order placed", map[string]interface{}{
		"user_id":  userID,
		"order_id": order.ID,
		"total":    order.Total,
	})

	c.Redirect(http.StatusFound, "/profile")
}
