package backend

import (
	"context"
	"net/http"

	"import_admin/internal/domain/entities"
)

func (c *Client) CreateShare(ctx context.Context, importID string, in entities.ShareCreate) (entities.ShareToken, error) {
	var out entities.ShareToken
	err := c.do(ctx, "shares.create", http.MethodPost, escape("imports", importID, "share"), in, &out)
	return out, err
}

func (c *Client) ListShares(ctx context.Context, importID string) ([]entities.ShareToken, error) {
	return list[entities.ShareToken](ctx, c, "shares.list", escape("imports", importID, "share"))
}

func (c *Client) DeleteShare(ctx context.Context, importID, token string) error {
	return c.do(ctx, "shares.delete", http.MethodDelete, escape("imports", importID, "share", token), nil, nil)
}

// GetSharedImport reads the public projection; real costs are dropped by the type.
func (c *Client) GetSharedImport(ctx context.Context, token string) (entities.PublicImport, error) {
	var out entities.PublicImport
	err := c.do(ctx, "shares.public", http.MethodGet, escape("share", token), nil, &out)
	return out, err
}
