package models

import (
	"time"

	"gorm.io/gorm"
)

// Address is a delivery address owned by a customer. The API identifies
// addresses by their literal text, so duplicate texts per customer are
// rejected at creation to keep that scheme unambiguous. The surrogate ID
// exists only for storage.
type Address struct {
	ID              uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	OwnerCustomerID string `json:"-" gorm:"index;type:varchar(36)"`
	Text            string `json:"address" validate:"required,max=255"`
	gorm.Model      `json:"-"`
}

// Message is a direct message between two accounts.
type Message struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SenderID    string    `json:"senderId" gorm:"index;type:varchar(36)"`
	RecipientID string    `json:"recipientId" gorm:"index;type:varchar(36)" validate:"required"`
	Content     string    `json:"content" gorm:"type:text" validate:"required,max=4000"`
	SentAt      time.Time `json:"sentAt"`
}
