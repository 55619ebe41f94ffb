package api

import (
	"context"
	"net/http"
)

// Addresses returns the authenticated customer's address book.
func (c *Client) Addresses(ctx context.Context) ([]Address, error) {
	var addresses []Address
	if err := c.do(ctx, http.MethodGet, "/customers/address", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress appends an address to the address book. A duplicate of an
// existing address is rejected with 409.
func (c *Client) AddAddress(ctx context.Context, text string) (*Address, error) {
	body := map[string]string{"address": text}
	var resp struct {
		Address Address `json:"address"`
	}
	if err := c.do(ctx, http.MethodPost, "/customers/address", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Address, nil
}

// RenameAddress rewrites an address identified by its current text.
func (c *Client) RenameAddress(ctx context.Context, oldText, newText string) error {
	body := map[string]string{
		"old_address": oldText,
		"new_address": newText,
	}
	return c.do(ctx, http.MethodPut, "/customers/address", body, nil)
}

// DeleteAddress removes an address identified by its literal text.
func (c *Client) DeleteAddress(ctx context.Context, text string) error {
	body := map[string]string{"address": text}
	return c.do(ctx, http.MethodDelete, "/customers/address", body, nil)
}

// Messages returns every message the authenticated account sent or received.
func (c *Client) Messages(ctx context.Context) ([]Message, error) {
	var messages []Message
	if err := c.do(ctx, http.MethodGet, "/customers/messages", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage sends a direct message to another account.
func (c *Client) SendMessage(ctx context.Context, recipientID, content string) (*Message, error) {
	body := map[string]string{
		"recipientId": recipientID,
		"content":     content,
	}
	var message Message
	if err := c.do(ctx, http.MethodPost, "/messages", body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}
