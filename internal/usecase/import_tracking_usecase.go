package usecase

//go:generate mockgen -source=import_tracking_usecase.go -destination=../adapter/http/handlers/mocks/import_tracking_usecase_mock.go -package=mocks

import (
	"context"
	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/usecase/interfaces"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ImportDetail is an import with its ledger totals and delivery countdown.
type ImportDetail struct {
	Import      entities.Import
	TotalReal   decimal.Decimal
	TotalClient decimal.Decimal
	Margin      decimal.Decimal
	Countdown   delivery.Countdown
	ImageURLs   []string
}

// ImportTracking is the status view of an import.
//
// HistoryAvailable is false when the history endpoint failed and the timeline
// was built from the history embedded in the import.
type ImportTracking struct {
	ImportID         string
	Status           entities.ImportStatus
	Countdown        delivery.Countdown
	Timeline         delivery.TimelineView
	HistoryAvailable bool
}

type IImportTrackingUseCase interface {
	Detail(ctx context.Context, importID string) (ImportDetail, error)
	Tracking(ctx context.Context, importID string) (ImportTracking, error)
}

type ImportTrackingUseCase struct {
	imports interfaces.IImportGateway
	images  interfaces.IImageGateway
	tracker *delivery.Tracker
	log     logrus.FieldLogger
}

var _ IImportTrackingUseCase = (*ImportTrackingUseCase)(nil)

func NewImportTrackingUseCase(imports interfaces.IImportGateway, images interfaces.IImageGateway, tracker *delivery.Tracker, log logrus.FieldLogger) *ImportTrackingUseCase {
	return &ImportTrackingUseCase{imports: imports, images: images, tracker: tracker, log: log}
}

func (u *ImportTrackingUseCase) Detail(ctx context.Context, importID string) (ImportDetail, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return ImportDetail{}, ErrInvalidImportID
	}

	imp, err := u.imports.GetImport(ctx, importID)
	if err != nil {
		return ImportDetail{}, err
	}

	totalReal := ledger.Sum(imp.CostosReales)
	totalClient := ledger.Sum(imp.CostosCliente)
	urls := make([]string, 0, len(imp.Images))
	for _, p := range imp.Images {
		urls = append(urls, u.images.ImageURL(p))
	}

	return ImportDetail{
		Import:      imp,
		TotalReal:   totalReal,
		TotalClient: totalClient,
		Margin:      totalClient.Sub(totalReal),
		Countdown:   u.tracker.Countdown(imp.FechaTentativaEntrega.TimePtr()),
		ImageURLs:   urls,
	}, nil
}

func (u *ImportTrackingUseCase) Tracking(ctx context.Context, importID string) (ImportTracking, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return ImportTracking{}, ErrInvalidImportID
	}

	var (
		imp        entities.Import
		history    entities.ImportHistory
		historyErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		imp, err = u.imports.GetImport(gctx, importID)
		return err
	})
	g.Go(func() error {
		history, historyErr = u.imports.GetImportHistory(gctx, importID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return ImportTracking{}, err
	}

	available := historyErr == nil
	if !available {
		if err := ctx.Err(); err != nil {
			return ImportTracking{}, err
		}
		u.log.WithField("import_id", importID).WithError(historyErr).Warn("[import][usecase] history_unavailable")
		history = entities.ImportHistory{}
	}

	estimate := history.FechaTentativaEntrega.TimePtr()
	if estimate == nil {
		estimate = imp.FechaTentativaEntrega.TimePtr()
	}
	entries := delivery.MergeHistory(imp.StatusHistory, history.History)

	return ImportTracking{
		ImportID:         imp.ID,
		Status:           imp.Status,
		Countdown:        u.tracker.Countdown(estimate),
		Timeline:         u.tracker.Timeline(entries, imp.Status),
		HistoryAvailable: available,
	}, nil
}
