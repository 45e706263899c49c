package repositories

import (
	"context"
	"fmt"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type ClientRepository struct {
	Store store.Store
}

func NewClientRepository(s store.Store) *ClientRepository {
	return &ClientRepository{Store: s}
}

func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	clients := []*models.Client{}
	if err := loadInto(ctx, r.Store, store.KeyClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	clients, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("client %s not found", id)
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	clients, err := r.List(ctx)
	if err != nil {
		return err
	}
	clients = append([]*models.Client{client}, clients...)
	return saveAll(ctx, r.Store, store.KeyClients, clients)
}

func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	clients, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, c := range clients {
		if c.ID == client.ID {
			clients[i] = client
			return saveAll(ctx, r.Store, store.KeyClients, clients)
		}
	}
	return fmt.Errorf("client %s not found", client.ID)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	clients, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return saveAll(ctx, r.Store, store.KeyClients, kept)
}
