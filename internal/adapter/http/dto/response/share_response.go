package response

import (
	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase"

	"github.com/shopspring/decimal"
)

type SharedImportResponse struct {
	entities.PublicImport
	StatusLabel string             `json:"status_label"`
	TotalClient decimal.Decimal    `json:"total_client"`
	Countdown   delivery.Countdown `json:"countdown"`
	ImageURLs   []string           `json:"image_urls"`
}

func FromSharedImport(s usecase.SharedImport) SharedImportResponse {
	return SharedImportResponse{
		PublicImport: s.Import,
		StatusLabel:  s.Import.Status.Label(),
		TotalClient:  s.TotalClient,
		Countdown:    s.Countdown,
		ImageURLs:    s.ImageURLs,
	}
}
