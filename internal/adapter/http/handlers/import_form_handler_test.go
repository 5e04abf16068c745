package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"import_admin/internal/adapter/http/handlers/mocks"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newImportFormRouter(t *testing.T) (*gin.Engine, *mocks.MockIImportFormUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIImportFormUseCase(ctrl)
	h := NewImportFormHandler(uc)

	r := gin.New()
	r.POST("/v1/import-forms", h.OpenImportForm)
	r.GET("/v1/import-forms/:id", h.GetImportForm)
	r.PATCH("/v1/import-forms/:id", h.UpdateImportForm)
	r.DELETE("/v1/import-forms/:id", h.DiscardImportForm)
	r.POST("/v1/import-forms/:id/entries", h.AddCostEntry)
	r.PATCH("/v1/import-forms/:id/entries/:entry_id", h.SetCostEntryField)
	r.DELETE("/v1/import-forms/:id/entries/:entry_id", h.RemoveCostEntry)
	r.POST("/v1/import-forms/:id/submit", h.SubmitImportForm)
	return r, uc
}

func sampleDraft() entities.ImportDraft {
	return entities.ImportDraft{
		ID:       "draft-1",
		ImportID: "imp-1",
		Entries:  []ledger.CostEntry{{ID: "cost-1", Name: "flete", RealAmount: 100, ClientAmount: 150}},
		Original: ledger.NewSnapshot(map[string]float64{"flete": 100}, map[string]float64{"flete": 150, "seguro": 50}),
		Version:  2,
	}
}

func TestImportFormHandler_OpenImportForm(t *testing.T) {
	t.Run("edit mode", func(t *testing.T) {
		r, uc := newImportFormRouter(t)
		uc.EXPECT().Open(gomock.Any(), "imp-1").Return(sampleDraft(), nil)

		w := performRequest(r, http.MethodPost, "/v1/import-forms", `{"import_id":"imp-1"}`)
		expectStatus(t, w, http.StatusCreated)

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["mode"] != "edit" || body["total_client"] != "150" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		pending := body["pending"].(map[string]any)
		if fmt.Sprint(pending["costos_cliente_to_delete"]) != "[seguro]" {
			t.Fatalf("unexpected pending %v", pending)
		}
	})

	t.Run("create mode", func(t *testing.T) {
		r, uc := newImportFormRouter(t)
		uc.EXPECT().OpenNew(gomock.Any(), "car-1", "cli-1").Return(entities.ImportDraft{ID: "draft-2", Version: 1}, nil)

		w := performRequest(r, http.MethodPost, "/v1/import-forms", `{"car_id":"car-1","client_id":"cli-1"}`)
		expectStatus(t, w, http.StatusCreated)
	})
}

func TestImportFormHandler_SetCostEntryField(t *testing.T) {
	t.Run("unknown field rejected by binding", func(t *testing.T) {
		r, _ := newImportFormRouter(t)
		w := performRequest(r, http.MethodPatch, "/v1/import-forms/draft-1/entries/cost-1", `{"version":2,"field":"color","value":"x"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("conflict", func(t *testing.T) {
		r, uc := newImportFormRouter(t)
		uc.EXPECT().SetEntryField(gomock.Any(), "draft-1", int64(1), "cost-1", ledger.FieldRealAmount, "12").
			Return(entities.ImportDraft{}, usecase.ErrDraftConflict)

		w := performRequest(r, http.MethodPatch, "/v1/import-forms/draft-1/entries/cost-1", `{"version":1,"field":"realAmount","value":"12"}`)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newImportFormRouter(t)
		uc.EXPECT().SetEntryField(gomock.Any(), "draft-1", int64(2), "cost-1", ledger.FieldName, "Flete").
			Return(sampleDraft(), nil)

		w := performRequest(r, http.MethodPatch, "/v1/import-forms/draft-1/entries/cost-1", `{"version":2,"field":"name","value":"Flete"}`)
		expectStatus(t, w, http.StatusOK)
	})
}

func TestImportFormHandler_RemoveCostEntry(t *testing.T) {
	r, uc := newImportFormRouter(t)

	w := performRequest(r, http.MethodDelete, "/v1/import-forms/draft-1/entries/cost-1?version=abc", "")
	expectStatus(t, w, http.StatusBadRequest)

	uc.EXPECT().RemoveEntry(gomock.Any(), "draft-1", int64(2), "cost-9").Return(entities.ImportDraft{}, usecase.ErrCostEntryNotFound)
	w = performRequest(r, http.MethodDelete, "/v1/import-forms/draft-1/entries/cost-9?version=2", "")
	expectStatus(t, w, http.StatusNotFound)
}

func TestImportFormHandler_UpdateImportForm(t *testing.T) {
	r, uc := newImportFormRouter(t)
	uc.EXPECT().UpdateFields(gomock.Any(), "draft-1", int64(2), gomock.Any()).DoAndReturn(
		func(_ any, _ string, _ int64, f usecase.ImportDraftFields) (entities.ImportDraft, error) {
			if f.DeliveryDate == nil || *f.DeliveryDate != "" || f.Notes != nil {
				t.Errorf("unexpected fields %+v", f)
			}
			return sampleDraft(), nil
		},
	)

	w := performRequest(r, http.MethodPatch, "/v1/import-forms/draft-1", `{"version":2,"fecha_tentativa_entrega":""}`)
	expectStatus(t, w, http.StatusOK)
}

func TestImportFormHandler_SubmitImportForm(t *testing.T) {
	t.Run("duplicates", func(t *testing.T) {
		r, uc := newImportFormRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "draft-1", int64(2)).
			Return(entities.Import{}, fmt.Errorf("%w: flete", usecase.ErrDuplicateCostNames))

		w := performRequest(r, http.MethodPost, "/v1/import-forms/draft-1/submit", `{"version":2}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
		if body := decodeError(t, w); body.Code != "DUPLICATE_COST_NAMES" || body.Detail != "duplicate cost names: flete" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("expired form", func(t *testing.T) {
		r, uc := newImportFormRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "draft-1", int64(0)).Return(entities.Import{}, usecase.ErrDraftNotFound)

		w := performRequest(r, http.MethodPost, "/v1/import-forms/draft-1/submit", `{}`)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newImportFormRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "draft-1", int64(2)).Return(entities.Import{ID: "imp-1"}, nil)

		w := performRequest(r, http.MethodPost, "/v1/import-forms/draft-1/submit", `{"version":2}`)
		expectStatus(t, w, http.StatusOK)
	})
}

func TestImportFormHandler_GetAndDiscard(t *testing.T) {
	r, uc := newImportFormRouter(t)
	uc.EXPECT().Get(gomock.Any(), "draft-1").Return(sampleDraft(), nil)
	w := performRequest(r, http.MethodGet, "/v1/import-forms/draft-1", "")
	expectStatus(t, w, http.StatusOK)

	uc.EXPECT().Discard(gomock.Any(), "draft-1").Return(nil)
	w = performRequest(r, http.MethodDelete, "/v1/import-forms/draft-1", "")
	expectStatus(t, w, http.StatusNoContent)

	uc.EXPECT().AddEntry(gomock.Any(), "draft-1", int64(2)).Return(sampleDraft(), nil)
	w = performRequest(r, http.MethodPost, "/v1/import-forms/draft-1/entries", `{"version":2}`)
	expectStatus(t, w, http.StatusOK)
}
