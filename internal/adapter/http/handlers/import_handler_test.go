package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"import_admin/internal/adapter/http/handlers/mocks"
	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type importMocks struct {
	imports  *mocks.MockIImportUseCase
	tracking *mocks.MockIImportTrackingUseCase
	reports  *mocks.MockIImportReportUseCase
}

func newImportRouter(t *testing.T) (*gin.Engine, importMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := importMocks{
		imports:  mocks.NewMockIImportUseCase(ctrl),
		tracking: mocks.NewMockIImportTrackingUseCase(ctrl),
		reports:  mocks.NewMockIImportReportUseCase(ctrl),
	}
	h := NewImportHandler(m.imports, m.tracking, m.reports)

	r := gin.New()
	r.GET("/v1/imports", h.ListImports)
	r.GET("/v1/imports/statuses", h.ListStatuses)
	r.GET("/v1/imports/:id", h.GetImport)
	r.DELETE("/v1/imports/:id", h.DeleteImport)
	r.GET("/v1/imports/:id/tracking", h.GetImportTracking)
	r.GET("/v1/imports/:id/cost-sheet", h.ExportCostSheet)
	return r, m
}

func TestImportHandler_ListImports(t *testing.T) {
	r, m := newImportRouter(t)
	days := 2
	m.imports.EXPECT().List(gomock.Any()).Return([]usecase.ImportSummary{{
		Import:      entities.Import{ID: "imp-1", Status: entities.ImportStatusEnAduana},
		TotalReal:   decimal.NewFromInt(10),
		TotalClient: decimal.NewFromInt(15),
		Countdown:   delivery.Countdown{DaysRemaining: &days, Bucket: delivery.BucketUrgent, Text: "2 days remaining"},
	}}, nil)

	w := performRequest(r, http.MethodGet, "/v1/imports", "")
	expectStatus(t, w, http.StatusOK)

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "imp-1" || body[0]["status_label"] != "En Aduana" || body[0]["total_client"] != "15" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	countdown := body[0]["countdown"].(map[string]any)
	if countdown["bucket"] != "urgent" || countdown["days_remaining"] != float64(2) {
		t.Fatalf("unexpected countdown %v", countdown)
	}
}

func TestImportHandler_GetImport(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, m := newImportRouter(t)
		m.tracking.EXPECT().Detail(gomock.Any(), " ").Return(usecase.ImportDetail{}, usecase.ErrInvalidImportID)

		w := performRequest(r, http.MethodGet, "/v1/imports/%20", "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("detail", func(t *testing.T) {
		r, m := newImportRouter(t)
		m.tracking.EXPECT().Detail(gomock.Any(), "imp-1").Return(usecase.ImportDetail{
			Import:    entities.Import{ID: "imp-1"},
			ImageURLs: []string{"http://backend/uploads/a.jpg"},
		}, nil)

		w := performRequest(r, http.MethodGet, "/v1/imports/imp-1", "")
		expectStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), `"image_urls":["http://backend/uploads/a.jpg"]`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestImportHandler_GetImportTracking(t *testing.T) {
	r, m := newImportRouter(t)
	m.tracking.EXPECT().Tracking(gomock.Any(), "imp-1").Return(usecase.ImportTracking{
		ImportID: "imp-1",
		Status:   entities.ImportStatusEntregado,
		Timeline: delivery.TimelineView{Entries: []delivery.TimelineEntry{}, LiveStatus: entities.ImportStatusEntregado, Consistent: true},
	}, nil)

	w := performRequest(r, http.MethodGet, "/v1/imports/imp-1/tracking", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"history_available":false`) || !strings.Contains(w.Body.String(), `"status_label":"Entregado"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestImportHandler_ExportCostSheet(t *testing.T) {
	r, m := newImportRouter(t)
	m.reports.EXPECT().CostSheet(gomock.Any(), "imp-1").Return(usecase.Report{
		Filename:    "costos-imp-1.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK"),
	}, nil)

	w := performRequest(r, http.MethodGet, "/v1/imports/imp-1/cost-sheet", "")
	expectStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="costos-imp-1.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if w.Body.String() != "PK" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestImportHandler_DeleteAndStatuses(t *testing.T) {
	r, m := newImportRouter(t)
	m.imports.EXPECT().Delete(gomock.Any(), "imp-1").Return(nil)

	w := performRequest(r, http.MethodDelete, "/v1/imports/imp-1", "")
	expectStatus(t, w, http.StatusNoContent)

	w = performRequest(r, http.MethodGet, "/v1/imports/statuses", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.HasPrefix(w.Body.String(), `[{"value":"EN_PROCESO","label":"En Proceso"}`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
