package backend

import (
	"context"
	"net/http"

	"import_admin/internal/domain/entities"
)

func (c *Client) ListImports(ctx context.Context) ([]entities.Import, error) {
	return list[entities.Import](ctx, c, "imports.list", "/imports")
}

func (c *Client) GetImport(ctx context.Context, id string) (entities.Import, error) {
	var out entities.Import
	err := c.do(ctx, "imports.get", http.MethodGet, escape("imports", id), nil, &out)
	return out, err
}

// ListImportsByCar treats a 404 as "no imports for this car".
func (c *Client) ListImportsByCar(ctx context.Context, carID string) ([]entities.Import, error) {
	return emptyOnNotFound(list[entities.Import](ctx, c, "imports.by_car", escape("imports", "car", carID)))
}

func (c *Client) ListImportsByClient(ctx context.Context, clientID string) ([]entities.Import, error) {
	return emptyOnNotFound(list[entities.Import](ctx, c, "imports.by_client", escape("imports", "client", clientID)))
}

func (c *Client) CreateImport(ctx context.Context, in entities.ImportCreate) (entities.Import, error) {
	var out entities.Import
	err := c.do(ctx, "imports.create", http.MethodPost, "/imports", in, &out)
	return out, err
}

func (c *Client) UpdateImport(ctx context.Context, id string, in entities.ImportUpdate) (entities.Import, error) {
	var out entities.Import
	err := c.do(ctx, "imports.update", http.MethodPut, escape("imports", id), in, &out)
	return out, err
}

func (c *Client) DeleteImport(ctx context.Context, id string) error {
	return c.do(ctx, "imports.delete", http.MethodDelete, escape("imports", id), nil, nil)
}

func (c *Client) GetImportHistory(ctx context.Context, id string) (entities.ImportHistory, error) {
	var out entities.ImportHistory
	err := c.do(ctx, "imports.history", http.MethodGet, escape("imports", id, "history"), nil, &out)
	if out.History == nil {
		out.History = []entities.StatusHistoryEntry{}
	}
	return out, err
}
