package entities

import (
	"time"

	"import_admin/internal/domain/ledger"
)

// DraftDateLayout is the form representation of the delivery estimate.
const DraftDateLayout = "2006-01-02"

// ImportDraft is an open import form kept server side between requests.
//
// ImportID is empty while creating. Original is the cost snapshot taken when an
// existing import was opened and is never rewritten afterwards. Version drives
// optimistic concurrency in the draft repository.
type ImportDraft struct {
	ID                   string             `json:"id"`
	ImportID             string             `json:"import_id,omitempty"`
	CarID                string             `json:"car_id"`
	ClientID             string             `json:"client_id"`
	Notes                string             `json:"notes"`
	Status               ImportStatus       `json:"status"`
	OriginalStatus       ImportStatus       `json:"-"`
	DeliveryDate         string             `json:"fecha_tentativa_entrega"`
	OriginalDeliveryDate string             `json:"-"`
	Entries              []ledger.CostEntry `json:"entries"`
	Original             *ledger.Snapshot   `json:"-"`
	Version              int64              `json:"version"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
	ExpiresAt            time.Time          `json:"expires_at"`
}

func (d *ImportDraft) IsEdit() bool {
	return d.ImportID != ""
}

// Ledger rebuilds the working list of the draft.
func (d *ImportDraft) Ledger(opts ...ledger.Option) *ledger.Ledger {
	return ledger.Restore(d.Entries, d.Original, opts...)
}

// Apply stores the working list of l back into the draft.
func (d *ImportDraft) Apply(l *ledger.Ledger) {
	d.Entries = l.Entries()
}

// DeliveryTime parses DeliveryDate. An empty or malformed value yields nil.
func (d *ImportDraft) DeliveryTime() *time.Time {
	if d.DeliveryDate == "" {
		return nil
	}
	t, err := time.Parse(DraftDateLayout, d.DeliveryDate)
	if err != nil {
		return nil
	}
	return &t
}

// StatusChanged reports whether the status differs from the one the import had when opened.
func (d *ImportDraft) StatusChanged() bool {
	return d.Status != d.OriginalStatus
}

// DeliveryChanged reports whether the estimate differs from the one the import had when opened.
func (d *ImportDraft) DeliveryChanged() bool {
	return d.DeliveryDate != d.OriginalDeliveryDate
}
