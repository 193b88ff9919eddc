package service

import (
	"errors"

	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNoAddresses    = errors.New("no addresses on file")
	ErrInvalidAddress = errors.New("address not found or not owned by user")
)

// CheckoutService converts a session cart plus a chosen address into a
// durable order. One checkout attempt walks: empty-cart check, address
// ownership check, total recomputation from the server-held cart, order
// creation, cart clear.
type CheckoutService interface {
	Prepare(userID uint, cart *model.Cart) ([]model.Address, error)
	Confirm(userID, addressID uint, cart *model.Cart) (*model.Order, error)
}

type checkoutService struct {
	orderRepo   repository.OrderRepository
	addressRepo repository.AddressRepository
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	addressRepo repository.AddressRepository,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
	}
}

// Prepare gates the confirm page: an empty cart aborts to the cart view and
// a user with no addresses on file aborts to the address view. On success it
// returns the user's addresses for the address picker.
func (s *checkoutService) Prepare(userID uint, cart *model.Cart) ([]model.Address, error) {
	if cart.IsEmpty() {
		logger.Debug("Checkout aborted: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	addresses, err := s.addressRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch addresses for checkout", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	if len(addresses) == 0 {
		logger.Debug("Checkout aborted: no addresses on file", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrNoAddresses
	}

	return addresses, nil
}

// Confirm materializes the order. The address is re-validated against the
// address book regardless of what the client submitted, and the total is
// recomputed from the server-held cart; no client-sent monetary value is
// ever read. On success the cart value is cleared before returning, so from
// the caller's view order-create and cart-clear are one step. A crash after
// the order insert can leave the cart populated ("order created but cart not
// cleared"); the reverse is impossible because the cart is only cleared
// after the insert succeeds.
func (s *checkoutService) Confirm(userID, addressID uint, cart *model.Cart) (*model.Order, error) {
	logger.Info("Confirming checkout", map[string]interface{}{
		"user_id":    userID,
		"address_id": addressID,
		"item_count": len(cart.Items),
	})

	if cart.IsEmpty() {
		logger.Warn("Checkout rejected: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	// Ownership validation comes before any order materialization.
	address, err := s.addressRepo.FindOwned(userID, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Checkout rejected: address not owned by user", map[string]interface{}{
				"user_id":    userID,
				"address_id": addressID,
			})
			return nil, ErrInvalidAddress
		}
		logger.Error("Failed to verify address ownership", err, map[string]interface{}{
			"user_id":    userID,
			"address_id": addressID,
		})
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	var total int64
	for _, item := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
		total += item.UnitPrice * int64(item.Quantity)
	}

	order := &model.Order{
		UserID:    userID,
		AddressID: address.ID,
		Items:     items,
		Total:     total,
		Status:    model.OrderStatusPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
			"total":   total,
		})
		return nil, err
	}

	cart.Clear()

	logger.Info("Order created, cart cleared", map[string]interface{}{
		"user_id":    userID,
		"order_id":   order.ID,
		"address_id": address.ID,
		"total":      total,
		"item_count": len(items),
	})
	return order, nil
}
