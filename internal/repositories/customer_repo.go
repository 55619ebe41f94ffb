package repositories

import "resto/internal/models"

// CustomerRepository defines the interface for customer-owned data that is
// not its own aggregate: the address book and direct messages.
type CustomerRepository interface {
	ListAddresses(customerID string) ([]models.Address, error)
	GetAddress(customerID, text string) (*models.Address, error)
	CreateAddress(address *models.Address) error
	// RenameAddress rewrites the address identified by its current text.
	RenameAddress(customerID, oldText, newText string) error
	DeleteAddress(customerID, text string) error

	// ListMessages returns every message the account sent or received.
	ListMessages(accountID string) ([]models.Message, error)
	CreateMessage(message *models.Message) error
}
