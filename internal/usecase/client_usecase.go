package usecase

//go:generate mockgen -source=client_usecase.go -destination=../adapter/http/handlers/mocks/client_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrInvalidClientID = errors.New("invalid client id")

type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	Get(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, in entities.ClientCreate) (entities.Client, error)
	Update(ctx context.Context, id string, in entities.ClientUpdate) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	Imports(ctx context.Context, id string) (RelatedImports, error)
}

type ClientUseCase struct {
	clients interfaces.IClientGateway
	imports interfaces.IImportGateway
	lookup  lookup[entities.Client]
	log     logrus.FieldLogger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientGateway, imports interfaces.IImportGateway, cache interfaces.ILookupCache, ttl time.Duration, log logrus.FieldLogger) *ClientUseCase {
	return &ClientUseCase{
		clients: clients,
		imports: imports,
		lookup:  lookup[entities.Client]{cache: cache, key: LookupClientsKey, ttl: ttl, log: log},
		log:     log,
	}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.lookup.load(ctx, u.clients.ListClients)
}

func (u *ClientUseCase) Get(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	return u.clients.GetClient(ctx, id)
}

func (u *ClientUseCase) Create(ctx context.Context, in entities.ClientCreate) (entities.Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validateStruct(in); err != nil {
		return entities.Client{}, err
	}

	client, err := u.clients.CreateClient(ctx, in)
	if err != nil {
		return entities.Client{}, err
	}
	u.lookup.invalidate(ctx)
	u.log.WithField("client_id", client.ID).Info("[client][usecase] created")
	return client, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in entities.ClientUpdate) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if err := validateStruct(in); err != nil {
		return entities.Client{}, err
	}

	client, err := u.clients.UpdateClient(ctx, id, in)
	if err != nil {
		return entities.Client{}, err
	}
	u.lookup.invalidate(ctx)
	return client, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if err := u.clients.DeleteClient(ctx, id); err != nil {
		return err
	}
	u.lookup.invalidate(ctx)
	u.log.WithField("client_id", id).Info("[client][usecase] deleted")
	return nil
}

func (u *ClientUseCase) Imports(ctx context.Context, id string) (RelatedImports, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RelatedImports{}, ErrInvalidClientID
	}
	imports, err := u.imports.ListImportsByClient(ctx, id)
	if err != nil {
		return RelatedImports{}, err
	}
	return relatedImports(imports), nil
}
