package response

import (
	"time"

	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

// ImportFormResponse is an open form: its working cost list, running totals and
// what a submit would delete right now.
type ImportFormResponse struct {
	ID                    string                `json:"id"`
	Mode                  string                `json:"mode"`
	ImportID              string                `json:"import_id,omitempty"`
	CarID                 string                `json:"car_id"`
	ClientID              string                `json:"client_id"`
	Notes                 string                `json:"notes"`
	Status                entities.ImportStatus `json:"status"`
	FechaTentativaEntrega string                `json:"fecha_tentativa_entrega"`
	Entries               []ledger.CostEntry    `json:"entries"`
	TotalReal             decimal.Decimal       `json:"total_real"`
	TotalClient           decimal.Decimal       `json:"total_client"`
	Pending               PendingChanges        `json:"pending"`
	Version               int64                 `json:"version"`
	ExpiresAt             time.Time             `json:"expires_at"`
}

type PendingChanges struct {
	CostosRealesToDelete  []string `json:"costos_reales_to_delete"`
	CostosClienteToDelete []string `json:"costos_cliente_to_delete"`
	DuplicateNames        []string `json:"duplicate_names"`
}

func FromImportDraft(d entities.ImportDraft) ImportFormResponse {
	l := d.Ledger()
	totals := l.Totals()
	res := l.Commit()

	mode := "create"
	if d.IsEdit() {
		mode = "edit"
	}
	return ImportFormResponse{
		ID:                    d.ID,
		Mode:                  mode,
		ImportID:              d.ImportID,
		CarID:                 d.CarID,
		ClientID:              d.ClientID,
		Notes:                 d.Notes,
		Status:                d.Status,
		FechaTentativaEntrega: d.DeliveryDate,
		Entries:               l.Entries(),
		TotalReal:             totals.Real,
		TotalClient:           totals.Client,
		Pending: PendingChanges{
			CostosRealesToDelete:  nonNil(res.RealesToDelete),
			CostosClienteToDelete: nonNil(res.ClienteToDelete),
			DuplicateNames:        nonNil(res.Duplicates),
		},
		Version:   d.Version,
		ExpiresAt: d.ExpiresAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
