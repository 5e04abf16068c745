package request

import (
	"strings"

	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase"
)

// OpenImportFormRequest opens a form for an existing import when ImportID is
// set, otherwise a form for a new import.
type OpenImportFormRequest struct {
	ImportID string `json:"import_id"`
	CarID    string `json:"car_id"`
	ClientID string `json:"client_id"`
}

func (r OpenImportFormRequest) IsEdit() bool {
	return strings.TrimSpace(r.ImportID) != ""
}

// VersionRequest carries the draft version the caller last saw. Zero skips the check.
type VersionRequest struct {
	Version int64 `json:"version" binding:"gte=0"`
}

type SetCostEntryFieldRequest struct {
	Version int64  `json:"version" binding:"gte=0"`
	Field   string `json:"field" binding:"required,oneof=name realAmount clientAmount"`
	Value   string `json:"value"`
}

// UpdateImportFormRequest changes the non-cost fields of a form. An empty
// fecha_tentativa_entrega clears the estimate.
type UpdateImportFormRequest struct {
	Version               int64   `json:"version" binding:"gte=0"`
	CarID                 *string `json:"car_id"`
	ClientID              *string `json:"client_id"`
	Notes                 *string `json:"notes"`
	Status                *string `json:"status"`
	FechaTentativaEntrega *string `json:"fecha_tentativa_entrega"`
}

func (r UpdateImportFormRequest) ToFields() usecase.ImportDraftFields {
	f := usecase.ImportDraftFields{
		CarID:        r.CarID,
		ClientID:     r.ClientID,
		Notes:        r.Notes,
		DeliveryDate: r.FechaTentativaEntrega,
	}
	if r.Status != nil {
		s := entities.ImportStatus(strings.TrimSpace(*r.Status))
		f.Status = &s
	}
	return f
}
