package usecase

//go:generate mockgen -source=share_usecase.go -destination=../adapter/http/handlers/mocks/share_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/usecase/interfaces"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultShareDays = 30
	MaxShareDays     = 365
)

var (
	ErrInvalidDaysValid = errors.New("days_valid must be between 1 and 365")
	ErrInvalidToken     = errors.New("invalid share token")
)

// SharedImport is what an anonymous share link shows. It never carries real costs.
type SharedImport struct {
	Import      entities.PublicImport
	TotalClient decimal.Decimal
	Countdown   delivery.Countdown
	ImageURLs   []string
}

type IShareUseCase interface {
	Create(ctx context.Context, importID string, daysValid *int) (entities.ShareToken, error)
	List(ctx context.Context, importID string) ([]entities.ShareToken, error)
	Revoke(ctx context.Context, importID, token string) error
	Public(ctx context.Context, token string) (SharedImport, error)
}

type ShareUseCase struct {
	shares  interfaces.IShareGateway
	images  interfaces.IImageGateway
	tracker *delivery.Tracker
	log     logrus.FieldLogger
}

var _ IShareUseCase = (*ShareUseCase)(nil)

func NewShareUseCase(shares interfaces.IShareGateway, images interfaces.IImageGateway, tracker *delivery.Tracker, log logrus.FieldLogger) *ShareUseCase {
	return &ShareUseCase{shares: shares, images: images, tracker: tracker, log: log}
}

// Create issues a share link; a nil daysValid means DefaultShareDays.
func (u *ShareUseCase) Create(ctx context.Context, importID string, daysValid *int) (entities.ShareToken, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return entities.ShareToken{}, ErrInvalidImportID
	}
	days := DefaultShareDays
	if daysValid != nil {
		days = *daysValid
	}
	if days < 1 || days > MaxShareDays {
		return entities.ShareToken{}, ErrInvalidDaysValid
	}

	token, err := u.shares.CreateShare(ctx, importID, entities.ShareCreate{DaysValid: days})
	if err != nil {
		return entities.ShareToken{}, err
	}
	u.log.WithFields(logrus.Fields{"import_id": importID, "days_valid": days}).Info("[share][usecase] created")
	return token, nil
}

func (u *ShareUseCase) List(ctx context.Context, importID string) ([]entities.ShareToken, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return nil, ErrInvalidImportID
	}
	return u.shares.ListShares(ctx, importID)
}

func (u *ShareUseCase) Revoke(ctx context.Context, importID, token string) error {
	importID = strings.TrimSpace(importID)
	token = strings.TrimSpace(token)
	if importID == "" {
		return ErrInvalidImportID
	}
	if token == "" {
		return ErrInvalidToken
	}
	if err := u.shares.DeleteShare(ctx, importID, token); err != nil {
		return err
	}
	u.log.WithField("import_id", importID).Info("[share][usecase] revoked")
	return nil
}

func (u *ShareUseCase) Public(ctx context.Context, token string) (SharedImport, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return SharedImport{}, ErrInvalidToken
	}
	imp, err := u.shares.GetSharedImport(ctx, token)
	if err != nil {
		return SharedImport{}, err
	}

	urls := make([]string, 0, len(imp.Images))
	for _, p := range imp.Images {
		urls = append(urls, u.images.ImageURL(p))
	}
	return SharedImport{
		Import:      imp,
		TotalClient: ledger.Sum(imp.CostosCliente),
		Countdown:   u.tracker.Countdown(imp.FechaTentativaEntrega.TimePtr()),
		ImageURLs:   urls,
	}, nil
}
