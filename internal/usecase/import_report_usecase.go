package usecase

//go:generate mockgen -source=import_report_usecase.go -destination=../adapter/http/handlers/mocks/import_report_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
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

// Report is a rendered file ready to be served as an attachment.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

type IImportReportUseCase interface {
	CostSheet(ctx context.Context, importID string) (Report, error)
}

type ImportReportUseCase struct {
	imports  interfaces.IImportGateway
	cars     interfaces.ICarGateway
	clients  interfaces.IClientGateway
	exporter interfaces.ICostSheetExporter
	tracker  *delivery.Tracker
	log      logrus.FieldLogger
	now      func() time.Time
}

var _ IImportReportUseCase = (*ImportReportUseCase)(nil)

func NewImportReportUseCase(
	imports interfaces.IImportGateway,
	cars interfaces.ICarGateway,
	clients interfaces.IClientGateway,
	exporter interfaces.ICostSheetExporter,
	tracker *delivery.Tracker,
	log logrus.FieldLogger,
) *ImportReportUseCase {
	return &ImportReportUseCase{
		imports:  imports,
		cars:     cars,
		clients:  clients,
		exporter: exporter,
		tracker:  tracker,
		log:      log,
		now:      time.Now,
	}
}

// CostSheet renders the merged cost list of one import with per-line margins.
func (u *ImportReportUseCase) CostSheet(ctx context.Context, importID string) (Report, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return Report{}, ErrInvalidImportID
	}

	imp, err := u.imports.GetImport(ctx, importID)
	if err != nil {
		return Report{}, err
	}
	car, client := u.parties(ctx, imp)

	sheet := entities.CostSheet{
		ImportID:    imp.ID,
		CarLabel:    imp.CarID,
		ClientName:  imp.ClientID,
		Status:      imp.Status,
		GeneratedAt: u.now(),
		TotalReal:   ledger.Sum(imp.CostosReales),
		TotalClient: ledger.Sum(imp.CostosCliente),
	}
	if car != nil {
		sheet.CarLabel = strings.TrimSpace(fmt.Sprintf("%s %s %d", car.Brand, car.Model, car.Year))
	}
	if client != nil {
		sheet.ClientName = client.Name
	}
	if t := imp.FechaTentativaEntrega.TimePtr(); t != nil {
		sheet.Delivery = u.tracker.FormatDate(*t)
	}

	for _, e := range ledger.Merge(imp.CostosReales, imp.CostosCliente).Entries() {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		r := decimal.NewFromFloat(e.RealAmount)
		c := decimal.NewFromFloat(e.ClientAmount)
		sheet.Rows = append(sheet.Rows, entities.CostSheetRow{Name: e.Name, Real: r, Client: c, Margin: c.Sub(r)})
	}

	data, err := u.exporter.Render(sheet)
	if err != nil {
		u.log.WithField("import_id", importID).WithError(err).Error("[report][usecase] render_failed")
		return Report{}, err
	}
	return Report{
		Filename:    fmt.Sprintf("costos-%s.xlsx", imp.ID),
		ContentType: u.exporter.ContentType(),
		Data:        data,
	}, nil
}

// parties resolves the car and client of imp, fetching whatever the import does
// not embed. Lookup failures leave the value nil.
func (u *ImportReportUseCase) parties(ctx context.Context, imp entities.Import) (*entities.Car, *entities.Client) {
	car, client := imp.Car, imp.Client

	var g errgroup.Group
	if car == nil && imp.CarID != "" {
		g.Go(func() error {
			c, err := u.cars.GetCar(ctx, imp.CarID)
			if err != nil {
				u.log.WithField("car_id", imp.CarID).WithError(err).Warn("[report][usecase] car_lookup_failed")
				return nil
			}
			car = &c
			return nil
		})
	}
	if client == nil && imp.ClientID != "" {
		g.Go(func() error {
			c, err := u.clients.GetClient(ctx, imp.ClientID)
			if err != nil {
				u.log.WithField("client_id", imp.ClientID).WithError(err).Warn("[report][usecase] client_lookup_failed")
				return nil
			}
			client = &c
			return nil
		})
	}
	_ = g.Wait()
	return car, client
}
