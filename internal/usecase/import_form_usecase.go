package usecase

//go:generate mockgen -source=import_form_usecase.go -destination=../adapter/http/handlers/mocks/import_form_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/infrastructure/metrics"
	"import_admin/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDraftNotFound         = errors.New("import draft not found")
	ErrDraftConflict         = errors.New("import draft was modified concurrently")
	ErrInvalidDraftID        = errors.New("invalid draft id")
	ErrInvalidImportID       = errors.New("invalid import id")
	ErrDuplicateCostNames    = errors.New("duplicate cost names")
	ErrCostEntryNotFound     = errors.New("cost entry not found")
	ErrInvalidCostField      = errors.New("invalid cost entry field")
	ErrInvalidStatus         = errors.New("invalid import status")
	ErrInvalidDeliveryDate   = errors.New("invalid delivery date")
	ErrCarAndClientRequired  = errors.New("car and client are required")
	ErrCarClientLockedOnEdit = errors.New("car and client cannot change on an existing import")
)

// ImportDraftFields are the non-cost form fields. Nil means unchanged;
// an empty DeliveryDate clears the estimate.
type ImportDraftFields struct {
	CarID        *string
	ClientID     *string
	Notes        *string
	Status       *entities.ImportStatus
	DeliveryDate *string
}

// IImportFormUseCase drives an import form kept server side.
//
// Mutations take the version the caller last saw; zero skips that check.
// The stored version is always checked on write.
type IImportFormUseCase interface {
	Open(ctx context.Context, importID string) (entities.ImportDraft, error)
	OpenNew(ctx context.Context, carID, clientID string) (entities.ImportDraft, error)
	Get(ctx context.Context, draftID string) (entities.ImportDraft, error)
	SetEntryField(ctx context.Context, draftID string, version int64, entryID string, field ledger.Field, value string) (entities.ImportDraft, error)
	AddEntry(ctx context.Context, draftID string, version int64) (entities.ImportDraft, error)
	RemoveEntry(ctx context.Context, draftID string, version int64, entryID string) (entities.ImportDraft, error)
	UpdateFields(ctx context.Context, draftID string, version int64, fields ImportDraftFields) (entities.ImportDraft, error)
	Submit(ctx context.Context, draftID string, version int64) (entities.Import, error)
	Discard(ctx context.Context, draftID string) error
}

type ImportFormUseCase struct {
	drafts     interfaces.IImportDraftRepository
	imports    interfaces.IImportGateway
	tracker    *delivery.Tracker
	ttl        time.Duration
	log        logrus.FieldLogger
	now        func() time.Time
	newID      func() string
	ledgerOpts []ledger.Option
}

var _ IImportFormUseCase = (*ImportFormUseCase)(nil)

func NewImportFormUseCase(
	drafts interfaces.IImportDraftRepository,
	imports interfaces.IImportGateway,
	tracker *delivery.Tracker,
	ttl time.Duration,
	log logrus.FieldLogger,
) *ImportFormUseCase {
	return &ImportFormUseCase{
		drafts:  drafts,
		imports: imports,
		tracker: tracker,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (u *ImportFormUseCase) Open(ctx context.Context, importID string) (entities.ImportDraft, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return entities.ImportDraft{}, ErrInvalidImportID
	}

	imp, err := u.imports.GetImport(ctx, importID)
	if err != nil {
		return entities.ImportDraft{}, err
	}

	l := ledger.Merge(imp.CostosReales, imp.CostosCliente, u.ledgerOpts...)
	date := ""
	if t := imp.FechaTentativaEntrega.TimePtr(); t != nil {
		date = u.tracker.DateKey(*t)
	}
	d := u.newDraft()
	d.ImportID = imp.ID
	d.CarID = imp.CarID
	d.ClientID = imp.ClientID
	d.Notes = imp.Notes
	d.Status = imp.Status
	d.OriginalStatus = imp.Status
	d.DeliveryDate = date
	d.OriginalDeliveryDate = date
	d.Original = l.Original()
	d.Apply(l)

	created, err := u.drafts.Create(ctx, d)
	if err != nil {
		return entities.ImportDraft{}, err
	}
	u.log.WithFields(logrus.Fields{
		"draft_id":  created.ID,
		"import_id": importID,
		"entries":   len(created.Entries),
	}).Info("[import][usecase] draft_opened")
	return created, nil
}

func (u *ImportFormUseCase) OpenNew(ctx context.Context, carID, clientID string) (entities.ImportDraft, error) {
	l := ledger.New(u.ledgerOpts...)

	d := u.newDraft()
	d.CarID = strings.TrimSpace(carID)
	d.ClientID = strings.TrimSpace(clientID)
	d.Status = entities.ImportStatusEnProceso
	d.Apply(l)

	created, err := u.drafts.Create(ctx, d)
	if err != nil {
		return entities.ImportDraft{}, err
	}
	u.log.WithField("draft_id", created.ID).Info("[import][usecase] draft_opened_new")
	return created, nil
}

func (u *ImportFormUseCase) newDraft() entities.ImportDraft {
	now := u.now().UTC()
	return entities.ImportDraft{
		ID:        u.newID(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
}

func (u *ImportFormUseCase) Get(ctx context.Context, draftID string) (entities.ImportDraft, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return entities.ImportDraft{}, ErrInvalidDraftID
	}
	d, err := u.drafts.Get(ctx, draftID)
	if err != nil {
		return entities.ImportDraft{}, err
	}
	if d == nil {
		return entities.ImportDraft{}, ErrDraftNotFound
	}
	return *d, nil
}

// mutate loads the draft, applies fn and writes it back under the version condition.
func (u *ImportFormUseCase) mutate(ctx context.Context, draftID string, version int64, fn func(d *entities.ImportDraft) error) (entities.ImportDraft, error) {
	d, err := u.Get(ctx, draftID)
	if err != nil {
		return entities.ImportDraft{}, err
	}
	if version > 0 && version != d.Version {
		return entities.ImportDraft{}, ErrDraftConflict
	}

	stored := d.Version
	if err := fn(&d); err != nil {
		return entities.ImportDraft{}, err
	}
	d.ExpiresAt = u.now().UTC().Add(u.ttl)

	updated, err := u.drafts.Update(ctx, d, stored)
	switch {
	case errors.Is(err, interfaces.ErrVersionMismatch):
		return entities.ImportDraft{}, ErrDraftConflict
	case errors.Is(err, interfaces.ErrRecordNotFound):
		return entities.ImportDraft{}, ErrDraftNotFound
	case err != nil:
		return entities.ImportDraft{}, err
	}
	return updated, nil
}

func (u *ImportFormUseCase) SetEntryField(ctx context.Context, draftID string, version int64, entryID string, field ledger.Field, value string) (entities.ImportDraft, error) {
	if !field.IsValid() {
		return entities.ImportDraft{}, ErrInvalidCostField
	}
	return u.mutate(ctx, draftID, version, func(d *entities.ImportDraft) error {
		l := d.Ledger(u.ledgerOpts...)
		if err := l.SetField(entryID, field, value); err != nil {
			return mapLedgerError(err)
		}
		d.Apply(l)
		return nil
	})
}

func (u *ImportFormUseCase) AddEntry(ctx context.Context, draftID string, version int64) (entities.ImportDraft, error) {
	return u.mutate(ctx, draftID, version, func(d *entities.ImportDraft) error {
		l := d.Ledger(u.ledgerOpts...)
		l.AddEntry()
		d.Apply(l)
		return nil
	})
}

func (u *ImportFormUseCase) RemoveEntry(ctx context.Context, draftID string, version int64, entryID string) (entities.ImportDraft, error) {
	return u.mutate(ctx, draftID, version, func(d *entities.ImportDraft) error {
		l := d.Ledger(u.ledgerOpts...)
		if err := l.RemoveEntry(entryID); err != nil {
			return mapLedgerError(err)
		}
		d.Apply(l)
		return nil
	})
}

func (u *ImportFormUseCase) UpdateFields(ctx context.Context, draftID string, version int64, f ImportDraftFields) (entities.ImportDraft, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return entities.ImportDraft{}, ErrInvalidStatus
	}
	if f.DeliveryDate != nil {
		v := strings.TrimSpace(*f.DeliveryDate)
		if v != "" {
			if _, err := time.Parse(entities.DraftDateLayout, v); err != nil {
				return entities.ImportDraft{}, ErrInvalidDeliveryDate
			}
		}
		f.DeliveryDate = &v
	}

	return u.mutate(ctx, draftID, version, func(d *entities.ImportDraft) error {
		if d.IsEdit() && (changes(f.CarID, d.CarID) || changes(f.ClientID, d.ClientID)) {
			return ErrCarClientLockedOnEdit
		}
		if f.CarID != nil {
			d.CarID = strings.TrimSpace(*f.CarID)
		}
		if f.ClientID != nil {
			d.ClientID = strings.TrimSpace(*f.ClientID)
		}
		if f.Notes != nil {
			d.Notes = *f.Notes
		}
		if f.Status != nil {
			d.Status = *f.Status
		}
		if f.DeliveryDate != nil {
			d.DeliveryDate = *f.DeliveryDate
		}
		return nil
	})
}

func changes(next *string, current string) bool {
	return next != nil && strings.TrimSpace(*next) != current
}

// Submit commits the working list and sends it to the backend. On failure the
// draft is left as it was so the caller can retry.
func (u *ImportFormUseCase) Submit(ctx context.Context, draftID string, version int64) (entities.Import, error) {
	d, err := u.Get(ctx, draftID)
	if err != nil {
		return entities.Import{}, err
	}
	if version > 0 && version != d.Version {
		return entities.Import{}, ErrDraftConflict
	}

	res := d.Ledger(u.ledgerOpts...).Commit()
	if len(res.Duplicates) > 0 {
		return entities.Import{}, fmt.Errorf("%w: %s", ErrDuplicateCostNames, strings.Join(res.Duplicates, ", "))
	}

	mode := "create"
	var imp entities.Import
	if d.IsEdit() {
		mode = "update"
		imp, err = u.imports.UpdateImport(ctx, d.ImportID, buildImportUpdate(d, res))
	} else {
		if d.CarID == "" || d.ClientID == "" {
			return entities.Import{}, ErrCarAndClientRequired
		}
		imp, err = u.imports.CreateImport(ctx, buildImportCreate(d, res))
	}
	if err != nil {
		metrics.LedgerCommitsTotal.WithLabelValues(mode, "error").Inc()
		u.log.WithFields(logrus.Fields{
			"draft_id":  d.ID,
			"import_id": d.ImportID,
			"mode":      mode,
		}).WithError(err).Warn("[import][usecase] submit_failed")
		return entities.Import{}, err
	}
	metrics.LedgerCommitsTotal.WithLabelValues(mode, "ok").Inc()

	if err := u.drafts.Delete(ctx, d.ID); err != nil {
		u.log.WithField("draft_id", d.ID).WithError(err).Warn("[import][usecase] draft_cleanup_failed")
	}
	u.log.WithFields(logrus.Fields{
		"draft_id":        d.ID,
		"import_id":       imp.ID,
		"mode":            mode,
		"reales_deleted":  len(res.RealesToDelete),
		"cliente_deleted": len(res.ClienteToDelete),
	}).Info("[import][usecase] submitted")
	return imp, nil
}

func (u *ImportFormUseCase) Discard(ctx context.Context, draftID string) error {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return ErrInvalidDraftID
	}
	return u.drafts.Delete(ctx, draftID)
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrEntryNotFound):
		return ErrCostEntryNotFound
	case errors.Is(err, ledger.ErrUnknownField):
		return ErrInvalidCostField
	default:
		return err
	}
}
