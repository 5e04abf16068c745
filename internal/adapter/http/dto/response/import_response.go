package response

import (
	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase"

	"github.com/shopspring/decimal"
)

type ImportSummaryResponse struct {
	entities.Import
	StatusLabel string             `json:"status_label"`
	TotalReal   decimal.Decimal    `json:"total_real"`
	TotalClient decimal.Decimal    `json:"total_client"`
	Countdown   delivery.Countdown `json:"countdown"`
}

func FromImportSummaries(items []usecase.ImportSummary) []ImportSummaryResponse {
	out := make([]ImportSummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, ImportSummaryResponse{
			Import:      s.Import,
			StatusLabel: s.Import.Status.Label(),
			TotalReal:   s.TotalReal,
			TotalClient: s.TotalClient,
			Countdown:   s.Countdown,
		})
	}
	return out
}

type ImportDetailResponse struct {
	entities.Import
	StatusLabel string             `json:"status_label"`
	TotalReal   decimal.Decimal    `json:"total_real"`
	TotalClient decimal.Decimal    `json:"total_client"`
	Margin      decimal.Decimal    `json:"margin"`
	Countdown   delivery.Countdown `json:"countdown"`
	ImageURLs   []string           `json:"image_urls"`
}

func FromImportDetail(d usecase.ImportDetail) ImportDetailResponse {
	return ImportDetailResponse{
		Import:      d.Import,
		StatusLabel: d.Import.Status.Label(),
		TotalReal:   d.TotalReal,
		TotalClient: d.TotalClient,
		Margin:      d.Margin,
		Countdown:   d.Countdown,
		ImageURLs:   d.ImageURLs,
	}
}

type ImportTrackingResponse struct {
	ImportID         string                `json:"import_id"`
	Status           entities.ImportStatus `json:"status"`
	StatusLabel      string                `json:"status_label"`
	Countdown        delivery.Countdown    `json:"countdown"`
	Timeline         delivery.TimelineView `json:"timeline"`
	HistoryAvailable bool                  `json:"history_available"`
}

func FromImportTracking(t usecase.ImportTracking) ImportTrackingResponse {
	return ImportTrackingResponse{
		ImportID:         t.ImportID,
		Status:           t.Status,
		StatusLabel:      t.Status.Label(),
		Countdown:        t.Countdown,
		Timeline:         t.Timeline,
		HistoryAvailable: t.HistoryAvailable,
	}
}

type RelatedImportsResponse struct {
	Imports     []entities.Import `json:"imports"`
	Count       int               `json:"count"`
	TotalClient decimal.Decimal   `json:"total_client"`
}

func FromRelatedImports(r usecase.RelatedImports) RelatedImportsResponse {
	imports := r.Imports
	if imports == nil {
		imports = []entities.Import{}
	}
	return RelatedImportsResponse{Imports: imports, Count: len(imports), TotalClient: r.TotalClient}
}

type StatusOptionResponse struct {
	Value entities.ImportStatus `json:"value"`
	Label string                `json:"label"`
}

func StatusOptions() []StatusOptionResponse {
	statuses := entities.ImportStatuses()
	out := make([]StatusOptionResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusOptionResponse{Value: s, Label: s.Label()})
	}
	return out
}
