package usecase

//go:generate mockgen -source=car_usecase.go -destination=../adapter/http/handlers/mocks/car_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCarID = errors.New("invalid car id")

// RelatedImports are the imports of one car or client and the sum of what the client is charged.
type RelatedImports struct {
	Imports     []entities.Import
	TotalClient decimal.Decimal
}

func relatedImports(imports []entities.Import) RelatedImports {
	total := decimal.Zero
	for _, imp := range imports {
		total = total.Add(ledger.Sum(imp.CostosCliente))
	}
	return RelatedImports{Imports: imports, TotalClient: total}
}

type ICarUseCase interface {
	List(ctx context.Context) ([]entities.Car, error)
	Get(ctx context.Context, id string) (entities.Car, error)
	Create(ctx context.Context, in entities.CarCreate) (entities.Car, error)
	Update(ctx context.Context, id string, in entities.CarUpdate) (entities.Car, error)
	Delete(ctx context.Context, id string) error
	Imports(ctx context.Context, id string) (RelatedImports, error)
}

type CarUseCase struct {
	cars    interfaces.ICarGateway
	imports interfaces.IImportGateway
	lookup  lookup[entities.Car]
	log     logrus.FieldLogger
}

var _ ICarUseCase = (*CarUseCase)(nil)

func NewCarUseCase(cars interfaces.ICarGateway, imports interfaces.IImportGateway, cache interfaces.ILookupCache, ttl time.Duration, log logrus.FieldLogger) *CarUseCase {
	return &CarUseCase{
		cars:    cars,
		imports: imports,
		lookup:  lookup[entities.Car]{cache: cache, key: LookupCarsKey, ttl: ttl, log: log},
		log:     log,
	}
}

func (u *CarUseCase) List(ctx context.Context) ([]entities.Car, error) {
	return u.lookup.load(ctx, u.cars.ListCars)
}

func (u *CarUseCase) Get(ctx context.Context, id string) (entities.Car, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Car{}, ErrInvalidCarID
	}
	return u.cars.GetCar(ctx, id)
}

func (u *CarUseCase) Create(ctx context.Context, in entities.CarCreate) (entities.Car, error) {
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	if err := validateStruct(in); err != nil {
		return entities.Car{}, err
	}

	car, err := u.cars.CreateCar(ctx, in)
	if err != nil {
		return entities.Car{}, err
	}
	u.lookup.invalidate(ctx)
	u.log.WithField("car_id", car.ID).Info("[car][usecase] created")
	return car, nil
}

func (u *CarUseCase) Update(ctx context.Context, id string, in entities.CarUpdate) (entities.Car, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Car{}, ErrInvalidCarID
	}
	if err := validateStruct(in); err != nil {
		return entities.Car{}, err
	}

	car, err := u.cars.UpdateCar(ctx, id, in)
	if err != nil {
		return entities.Car{}, err
	}
	u.lookup.invalidate(ctx)
	return car, nil
}

func (u *CarUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCarID
	}
	if err := u.cars.DeleteCar(ctx, id); err != nil {
		return err
	}
	u.lookup.invalidate(ctx)
	u.log.WithField("car_id", id).Info("[car][usecase] deleted")
	return nil
}

func (u *CarUseCase) Imports(ctx context.Context, id string) (RelatedImports, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RelatedImports{}, ErrInvalidCarID
	}
	imports, err := u.imports.ListImportsByCar(ctx, id)
	if err != nil {
		return RelatedImports{}, err
	}
	return relatedImports(imports), nil
}
