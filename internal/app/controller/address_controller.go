package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/service"
	apperrors "github.com/jcastror/elfogon-backend/internal/errors"
	"github.com/jcastror/elfogon-backend/internal/middleware"
)

type AddressController struct {
	addressService service.AddressService
}

func NewAddressController(addressService service.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

type AddressForm struct {
	Label     string `form:"label"`
	Line1     string `form:"line1"`
	Line2     string `form:"line2"`
	City      string `form:"city"`
	Province  string `form:"province"`
	Reference string `form:"reference"`
}

// List renders the user's delivery addresses, newest first
// GET /addresses
func (ctrl *AddressController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)
	userID, _ := middleware.GetUserID(c)

	addresses, err := ctrl.addressService.ListByUser(userID)
	if err != nil {
		log.Error("Failed to load addresses", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Could not load your addresses")
		return
	}

	c.HTML(http.StatusOK, "addresses.html", gin.H{
		"User":      sessionUser(sess),
		"Addresses": addresses,
	})
}

// Create saves a new address and returns to the list
// POST /addresses
func (ctrl *AddressController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)
	userID, _ := middleware.GetUserID(c)

	var form AddressForm
	if err := c.ShouldBind(&form); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The form could not be read")
		return
	}

	address := &model.Address{
		Label:     form.Label,
		Line1:     form.Line1,
		Line2:     form.Line2,
		City:      form.City,
		Province:  form.Province,
		Reference: form.Reference,
	}

	if err := ctrl.addressService.Create(userID, address); err != nil {
		if errors.Is(err, service.ErrAddressFieldsMissing) {
			addresses, listErr := ctrl.addressService.ListByUser(userID)
			if listErr != nil {
				addresses = nil
			}
			c.HTML(http.StatusBadRequest, "addresses.html", gin.H{
				"User":      sessionUser(sess),
				"Addresses": addresses,
				"Error":     "Label and address line are required",
			})
			return
		}
		log.Error("Failed to create address", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Could not save the address")
		return
	}

	c.Redirect(http.StatusFound, "/addresses")
}

// Delete removes an address when the visitor owns it; otherwise nothing
// happens and the list is re-rendered unchanged
// POST /addresses/:id/delete
func (ctrl *AddressController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Unknown address")
		return
	}

	if err := ctrl.addressService.Delete(userID, uint(addressID)); err != nil {
		log.Error("Failed to delete address", err, map[string]interface{}{
			"user_id":    userID,
			"address_id": addressID,
		})
		apperrors.InternalError(c, "Could not delete the address")
		return
	}

	c.Redirect(http.StatusFound, "/addresses")
}
