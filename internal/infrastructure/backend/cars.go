package backend

import (
	"context"
	"net/http"

	"import_admin/internal/domain/entities"
)

func (c *Client) ListCars(ctx context.Context) ([]entities.Car, error) {
	return list[entities.Car](ctx, c, "cars.list", "/cars")
}

func (c *Client) GetCar(ctx context.Context, id string) (entities.Car, error) {
	var out entities.Car
	err := c.do(ctx, "cars.get", http.MethodGet, escape("cars", id), nil, &out)
	return out, err
}

func (c *Client) CreateCar(ctx context.Context, in entities.CarCreate) (entities.Car, error) {
	var out entities.Car
	err := c.do(ctx, "cars.create", http.MethodPost, "/cars", in, &out)
	return out, err
}

func (c *Client) UpdateCar(ctx context.Context, id string, in entities.CarUpdate) (entities.Car, error) {
	var out entities.Car
	err := c.do(ctx, "cars.update", http.MethodPut, escape("cars", id), in, &out)
	return out, err
}

func (c *Client) DeleteCar(ctx context.Context, id string) error {
	return c.do(ctx, "cars.delete", http.MethodDelete, escape("cars", id), nil, nil)
}
