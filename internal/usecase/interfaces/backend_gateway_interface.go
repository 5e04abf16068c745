package interfaces

//go:generate mockgen -source=backend_gateway_interface.go -destination=mocks/backend_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"
	"import_admin/internal/domain/entities"
)

// The gateways abstract the imports REST backend. Failures are *backend.Error values.

type ICarGateway interface {
	ListCars(ctx context.Context) ([]entities.Car, error)
	GetCar(ctx context.Context, id string) (entities.Car, error)
	CreateCar(ctx context.Context, in entities.CarCreate) (entities.Car, error)
	UpdateCar(ctx context.Context, id string, in entities.CarUpdate) (entities.Car, error)
	DeleteCar(ctx context.Context, id string) error
}

type IClientGateway interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	CreateClient(ctx context.Context, in entities.ClientCreate) (entities.Client, error)
	UpdateClient(ctx context.Context, id string, in entities.ClientUpdate) (entities.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// IImportGateway covers imports and their status history.
// ListImportsByCar and ListImportsByClient return an empty list on 404.
type IImportGateway interface {
	ListImports(ctx context.Context) ([]entities.Import, error)
	GetImport(ctx context.Context, id string) (entities.Import, error)
	ListImportsByCar(ctx context.Context, carID string) ([]entities.Import, error)
	ListImportsByClient(ctx context.Context, clientID string) ([]entities.Import, error)
	CreateImport(ctx context.Context, in entities.ImportCreate) (entities.Import, error)
	UpdateImport(ctx context.Context, id string, in entities.ImportUpdate) (entities.Import, error)
	DeleteImport(ctx context.Context, id string) error
	GetImportHistory(ctx context.Context, id string) (entities.ImportHistory, error)
}

type IShareGateway interface {
	CreateShare(ctx context.Context, importID string, in entities.ShareCreate) (entities.ShareToken, error)
	ListShares(ctx context.Context, importID string) ([]entities.ShareToken, error)
	DeleteShare(ctx context.Context, importID, token string) error
	GetSharedImport(ctx context.Context, token string) (entities.PublicImport, error)
}

type IImageGateway interface {
	UploadImage(ctx context.Context, importID, filename, contentType string, data []byte) (entities.ImageUpload, error)
	DeleteImage(ctx context.Context, importID, filename string) (entities.ImageDelete, error)
	// ImageURL resolves a stored image path to an absolute URL.
	ImageURL(path string) string
}
