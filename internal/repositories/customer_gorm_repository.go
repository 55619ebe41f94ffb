package repositories

import (
	"errors"
	"fmt"

	"resto/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{db: db}
}

// ListAddresses returns a customer's address book.
func (r *GORMCustomerRepository) ListAddresses(customerID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Find(&addresses, "owner_customer_id = ?", customerID).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses for customer %s: %w", customerID, err)
	}
	return addresses, nil
}

// GetAddress returns a customer's address by its literal text.
func (r *GORMCustomerRepository) GetAddress(customerID, text string) (*models.Address, error) {
	var address models.Address
	err := r.db.First(&address, "owner_customer_id = ? AND text = ?", customerID, text).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address %q: %w", text, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get address %q: %w", text, err)
	}
	return &address, nil
}

// CreateAddress adds an address to the customer's address book.
func (r *GORMCustomerRepository) CreateAddress(address *models.Address) error {
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// RenameAddress rewrites the address identified by its current text.
func (r *GORMCustomerRepository) RenameAddress(customerID, oldText, newText string) error {
	res := r.db.Model(&models.Address{}).
		Where("owner_customer_id = ? AND text = ?", customerID, oldText).
		Update("text", newText)
	if res.Error != nil {
		return fmt.Errorf("failed to rename address %q: %w", oldText, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address %q: %w", oldText, ErrNotFound)
	}
	return nil
}

// DeleteAddress removes an address identified by its literal text.
func (r *GORMCustomerRepository) DeleteAddress(customerID, text string) error {
	res := r.db.Where("owner_customer_id = ? AND text = ?", customerID, text).Delete(&models.Address{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete address %q: %w", text, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address %q: %w", text, ErrNotFound)
	}
	return nil
}

// ListMessages returns every message the account sent or received, oldest first.
func (r *GORMCustomerRepository) ListMessages(accountID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("sender_id = ? OR recipient_id = ?", accountID, accountID).
		Order("sent_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for account %s: %w", accountID, err)
	}
	return messages, nil
}

// CreateMessage stores a direct message.
func (r *GORMCustomerRepository) CreateMessage(message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}
