package service

import (
	"errors"
	"strings"

	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/pkg/logger"
)

var (
	ErrAddressFieldsMissing = errors.New("address label and line1 are required")
)

type AddressService interface {
	ListByUser(userID uint) ([]model.Address, error)
	Create(userID uint, address *model.Address) error
	Delete(userID, addressID uint) error
}

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

// ListByUser returns the user's addresses, most recently created first.
func (s *addressService) ListByUser(userID uint) ([]model.Address, error) {
	addresses, err := s.addressRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user addresses", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return addresses, nil
}

// Create persists a new address for userID. Label and Line1 are required.
func (s *addressService) Create(userID uint, address *model.Address) error {
	address.Label = strings.TrimSpace(address.Label)
	address.Line1 = strings.TrimSpace(address.Line1)

	if address.Label == "" || address.Line1 == "" {
		logger.Warn("Address rejected: missing required fields", map[string]interface{}{
			"user_id": userID,
		})
		return ErrAddressFieldsMissing
	}

	address.UserID = userID

	if err := s.addressRepo.Create(address); err != nil {
		logger.Error("Failed to create address", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("Address created successfully", map[string]interface{}{
		"address_id": address.ID,
		"user_id":    userID,
	})
	return nil
}

// Delete removes the address only when userID owns it. Deleting someone
// else's address, or one that does not exist, is a silent no-op so the call
// leaks nothing about other users' data.
func (s *addressService) Delete(userID, addressID uint) error {
	logger.Info("Deleting address", map[string]interface{}{
		"user_id":    userID,
		"address_id": addressID,
	})

	return s.addressRepo.DeleteOwned(userID, addressID)
}
