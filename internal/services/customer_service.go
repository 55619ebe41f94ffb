package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resto/internal/models"
	"resto/internal/repositories"
)

// CustomerService handles the customer address book and direct messages.
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	userRepo     repositories.UserRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo repositories.CustomerRepository, userRepo repositories.UserRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// ListAddresses returns the customer's address book.
func (s *CustomerService) ListAddresses(customerID string) ([]models.Address, error) {
	return s.customerRepo.ListAddresses(customerID)
}

// AddAddress appends an address. Addresses are identified by their literal
// text on the wire, so a duplicate text for the same customer is rejected.
func (s *CustomerService) AddAddress(customerID, text string) (*models.Address, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("address must not be empty")
	}
	if existing, err := s.customerRepo.GetAddress(customerID, text); err == nil && existing != nil {
		return nil, ErrDuplicateAddress
	}
	address := &models.Address{OwnerCustomerID: customerID, Text: text}
	if err := s.customerRepo.CreateAddress(address); err != nil {
		return nil, err
	}
	return address, nil
}

// RenameAddress rewrites an address identified by its current text.
func (s *CustomerService) RenameAddress(customerID, oldText, newText string) error {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return fmt.Errorf("address must not be empty")
	}
	if oldText == newText {
		return nil
	}
	if existing, err := s.customerRepo.GetAddress(customerID, newText); err == nil && existing != nil {
		return ErrDuplicateAddress
	}
	return s.customerRepo.RenameAddress(customerID, oldText, newText)
}

// DeleteAddress removes an address identified by its literal text.
func (s *CustomerService) DeleteAddress(customerID, text string) error {
	return s.customerRepo.DeleteAddress(customerID, text)
}

// ListMessages returns every message the account sent or received.
func (s *CustomerService) ListMessages(accountID string) ([]models.Message, error) {
	return s.customerRepo.ListMessages(accountID)
}

// SendMessage stores a direct message after checking the recipient exists.
func (s *CustomerService) SendMessage(senderID, recipientID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content must not be empty")
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}
	if _, err := s.userRepo.GetByID(recipientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("recipient %s: %w", recipientID, repositories.ErrNotFound)
		}
		return nil, err
	}
	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		SentAt:      time.Now(),
	}
	if err := s.customerRepo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}
