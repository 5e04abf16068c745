package usecase

//go:generate mockgen -source=import_usecase.go -destination=../adapter/http/handlers/mocks/import_usecase_mock.go -package=mocks

import (
	"context"
	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ImportSummary is one row of the imports list.
type ImportSummary struct {
	Import      entities.Import
	TotalReal   decimal.Decimal
	TotalClient decimal.Decimal
	Countdown   delivery.Countdown
}

type IImportUseCase interface {
	List(ctx context.Context) ([]ImportSummary, error)
	Get(ctx context.Context, id string) (entities.Import, error)
	Delete(ctx context.Context, id string) error
}

type ImportUseCase struct {
	imports interfaces.IImportGateway
	cars    interfaces.ICarGateway
	clients interfaces.IClientGateway
	carList lookup[entities.Car]
	clList  lookup[entities.Client]
	tracker *delivery.Tracker
	log     logrus.FieldLogger
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(
	imports interfaces.IImportGateway,
	cars interfaces.ICarGateway,
	clients interfaces.IClientGateway,
	cache interfaces.ILookupCache,
	ttl time.Duration,
	tracker *delivery.Tracker,
	log logrus.FieldLogger,
) *ImportUseCase {
	return &ImportUseCase{
		imports: imports,
		cars:    cars,
		clients: clients,
		carList: lookup[entities.Car]{cache: cache, key: LookupCarsKey, ttl: ttl, log: log},
		clList:  lookup[entities.Client]{cache: cache, key: LookupClientsKey, ttl: ttl, log: log},
		tracker: tracker,
		log:     log,
	}
}

// List returns every import with its car and client attached. Missing car or
// client lists only leave the rows unjoined.
func (u *ImportUseCase) List(ctx context.Context) ([]ImportSummary, error) {
	var (
		imports []entities.Import
		cars    []entities.Car
		clients []entities.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		imports, err = u.imports.ListImports(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if cars, err = u.carList.load(gctx, u.cars.ListCars); err != nil {
			u.log.WithError(err).Warn("[import][usecase] list_cars_failed")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if clients, err = u.clList.load(gctx, u.clients.ListClients); err != nil {
			u.log.WithError(err).Warn("[import][usecase] list_clients_failed")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	carsByID := make(map[string]entities.Car, len(cars))
	for _, c := range cars {
		carsByID[c.ID] = c
	}
	clientsByID := make(map[string]entities.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ID] = c
	}

	out := make([]ImportSummary, 0, len(imports))
	for _, imp := range imports {
		if imp.Car == nil {
			if c, ok := carsByID[imp.CarID]; ok {
				imp.Car = &c
			}
		}
		if imp.Client == nil {
			if c, ok := clientsByID[imp.ClientID]; ok {
				imp.Client = &c
			}
		}
		out = append(out, ImportSummary{
			Import:      imp,
			TotalReal:   ledger.Sum(imp.CostosReales),
			TotalClient: ledger.Sum(imp.CostosCliente),
			Countdown:   u.tracker.Countdown(imp.FechaTentativaEntrega.TimePtr()),
		})
	}
	return out, nil
}

func (u *ImportUseCase) Get(ctx context.Context, id string) (entities.Import, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Import{}, ErrInvalidImportID
	}
	return u.imports.GetImport(ctx, id)
}

func (u *ImportUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidImportID
	}
	if err := u.imports.DeleteImport(ctx, id); err != nil {
		return err
	}
	u.log.WithField("import_id", id).Info("[import][usecase] deleted")
	return nil
}
