package backend

import (
	"context"
	"net/http"

	"import_admin/internal/domain/entities"
)

func (c *Client) ListClients(ctx context.Context) ([]entities.Client, error) {
	return list[entities.Client](ctx, c, "clients.list", "/clients")
}

func (c *Client) GetClient(ctx context.Context, id string) (entities.Client, error) {
	var out entities.Client
	err := c.do(ctx, "clients.get", http.MethodGet, escape("clients", id), nil, &out)
	return out, err
}

func (c *Client) CreateClient(ctx context.Context, in entities.ClientCreate) (entities.Client, error) {
	var out entities.Client
	err := c.do(ctx, "clients.create", http.MethodPost, "/clients", in, &out)
	return out, err
}

func (c *Client) UpdateClient(ctx context.Context, id string, in entities.ClientUpdate) (entities.Client, error) {
	var out entities.Client
	err := c.do(ctx, "clients.update", http.MethodPut, escape("clients", id), in, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, "clients.delete", http.MethodDelete, escape("clients", id), nil, nil)
}
