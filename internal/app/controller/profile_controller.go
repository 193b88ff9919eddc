package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jcastror/elfogon-backend/internal/app/service"
	apperrors "github.com/jcastror/elfogon-backend/internal/errors"
	"github.com/jcastror/elfogon-backend/internal/middleware"
)

type ProfileController struct {
	orderService   service.OrderService
	addressService service.AddressService
}

func NewProfileController(orderService service.OrderService, addressService service.AddressService) *ProfileController {
	return &ProfileController{
		orderService:   orderService,
		addressService: addressService,
	}
}

// Show renders the account page with the user's order history and
// saved addresses.
// GET /profile
func (ctrl *ProfileController) Show(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)
	userID, _ := middleware.GetUserID(c)

	orders, err := ctrl.orderService.ListByUser(userID)
	if err != nil {
		log.Error("Failed to load order history", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Could not load your profile")
		return
	}

	addresses, err := ctrl.addressService.ListByUser(userID)
	if err != nil {
		log.Error("Failed to load addresses for profile", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Could not load your profile")
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":      sessionUser(sess),
		"Orders":    orders,
		"Addresses": addresses,
	})
}
