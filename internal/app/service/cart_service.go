package service

import (
	"errors"

	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CartService mutates a session-scoped cart. The cart is an explicit value
// owned by the caller's session; this service never holds cart state itself,
// so there is no cross-session visibility.
type CartService interface {
	Add(cart *model.Cart, productID uint, quantity int, extraCodes []string) error
	Remove(cart *model.Cart, productID uint)
	Clear(cart *model.Cart)
	Total(cart *model.Cart) int64
}

type cartService struct {
	productRepo repository.ProductRepository
}

func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{productRepo: productRepo}
}

// Add puts quantity units of a product into the cart, snapshotting the unit
// price at add-time. Re-adding a product increments the existing item's
// quantity; extras from the new call are ignored rather than merged.
// Quantity is coerced to at least 1.
func (s *cartService) Add(cart *model.Cart, productID uint, quantity int, extraCodes []string) error {
	if quantity < 1 {
		quantity = 1
	}

	logger.Debug("Adding item to cart", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
		"extras":     extraCodes,
	})

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"product_id": productID,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to fetch product for cart", err, map[string]interface{}{
			"product_id": productID,
		})
		return err
	}

	if existing := cart.Find(productID); existing != nil {
		existing.Quantity += quantity
		logger.Debug("Incremented existing cart item", map[string]interface{}{
			"product_id": productID,
			"quantity":   existing.Quantity,
		})
		return nil
	}

	cart.Items = append(cart.Items, model.CartItem{
		ProductID:  product.ID,
		Name:       product.Name,
		UnitPrice:  product.Price,
		Quantity:   quantity,
		ExtraCodes: extraCodes,
	})

	logger.Info("Cart item added", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
		"unit_price": product.Price,
	})
	return nil
}

// Remove drops the product's line from the cart. Removing an absent product
// is not an error.
func (s *cartService) Remove(cart *model.Cart, productID uint) {
	cart.Remove(productID)
}

// Clear empties the cart unconditionally.
func (s *cartService) Clear(cart *model.Cart) {
	cart.Clear()
}

// Total returns the cart total: sum of unit price times quantity.
// Extra surcharges are stored on items but do not contribute.
func (s *cartService) Total(cart *model.Cart) int64 {
	return cart.Total()
}
