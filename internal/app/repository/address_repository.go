package repository

import (
	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/pkg/logger"
	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(address *model.Address) error
	FindByUserID(userID uint) ([]model.Address, error)
	FindOwned(userID, addressID uint) (*model.Address, error)
	DeleteOwned(userID, addressID uint) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *model.Address) error {
	logger.Debug("Creating address in database", map[string]interface{}{
		"user_id": address.UserID,
		"label":   address.Label,
	})

	if err := r.db.Create(address).Error; err != nil {
		logger.Error("Failed to create address in database", err, map[string]interface{}{
			"user_id": address.UserID,
			"label":   address.Label,
		})
		return err
	}

	logger.Debug("Address created in database", map[string]interface{}{
		"address_id": address.ID,
		"user_id":    address.UserID,
	})
	return nil
}

func (r *addressRepository) FindByUserID(userID uint) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error
	if err != nil {
		logger.Error("Failed to find addresses by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return addresses, nil
}

// FindOwned resolves an address only when it belongs to userID.
// A foreign address surfaces as record-not-found, the same as a missing one,
// so ownership probes leak nothing.
func (r *addressRepository) FindOwned(userID, addressID uint) (*model.Address, error) {
	var address model.Address
	err := r.db.Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// DeleteOwned deletes the address only when the owner matches. Deleting a
// foreign or missing address is a silent no-op.
func (r *addressRepository) DeleteOwned(userID, addressID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&model.Address{})
	if result.Error != nil {
		logger.Error("Failed to delete address from database", result.Error, map[string]interface{}{
			"user_id":    userID,
			"address_id": addressID,
		})
		return result.Error
	}

	logger.Debug("Address delete finished", map[string]interface{}{
		"user_id":       userID,
		"address_id":    addressID,
		"rows_affected": result.RowsAffected,
	})
	return nil
}
