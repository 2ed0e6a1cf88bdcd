package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryDirectory struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{
		clients: make(map[string]*Client),
	}
}

// Add stores a copy of c, generating an id if it has none.
func (d *InMemoryDirectory) Add(c Client) *Client {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.clients[c.ID] = &c
	return &c
}

func (d *InMemoryDirectory) FindByID(_ context.Context, id string) (*Client, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *c
	return &found, nil
}
