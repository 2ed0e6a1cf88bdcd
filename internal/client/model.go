package client

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("client not found")

// Roles as issued by the authentication service.
const (
	RoleClient   = "CLIENT"
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// Client is the business owner a restaurant belongs to.
type Client struct {
	ID      string
	Name    string
	Surname string
	Email   string
	Role    string
}

// DisplayName is the name shown next to a restaurant.
func (c *Client) DisplayName() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Name + " " + c.Surname)
}
