package handlers

import (
	"errors"
	"net/http"
	"testing"

	"import_admin/internal/adapter/http/handlers/mocks"
	"import_admin/internal/domain/entities"
	"import_admin/internal/infrastructure/backend"
	"import_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCarRouter(t *testing.T) (*gin.Engine, *mocks.MockICarUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICarUseCase(ctrl)
	h := NewCarHandler(uc)

	r := gin.New()
	r.GET("/v1/cars", h.ListCars)
	r.GET("/v1/cars/:id", h.GetCar)
	r.POST("/v1/cars", h.CreateCar)
	r.PUT("/v1/cars/:id", h.UpdateCar)
	r.DELETE("/v1/cars/:id", h.DeleteCar)
	r.GET("/v1/cars/:id/imports", h.ListCarImports)
	return r, uc
}

func TestCarHandler_ListCars(t *testing.T) {
	t.Run("empty list encodes as array", func(t *testing.T) {
		r, uc := newCarRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/cars", "")
		expectStatus(t, w, http.StatusOK)
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("backend unreachable", func(t *testing.T) {
		r, uc := newCarRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, &backend.Error{Kind: backend.KindNoResponse, Operation: "list_cars", Detail: "could not connect to the server"})

		w := performRequest(r, http.MethodGet, "/v1/cars", "")
		expectStatus(t, w, http.StatusServiceUnavailable)
		if body := decodeError(t, w); body.Code != "BACKEND_UNAVAILABLE" || body.Detail != "could not connect to the server" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestCarHandler_GetCar(t *testing.T) {
	t.Run("not found keeps the backend detail", func(t *testing.T) {
		r, uc := newCarRouter(t)
		uc.EXPECT().Get(gomock.Any(), "car-9").Return(entities.Car{}, &backend.Error{Kind: backend.KindNotFound, Status: 404, Detail: "Car not found"})

		w := performRequest(r, http.MethodGet, "/v1/cars/car-9", "")
		expectStatus(t, w, http.StatusNotFound)
		if body := decodeError(t, w); body.Detail != "Car not found" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("backend rejection", func(t *testing.T) {
		r, uc := newCarRouter(t)
		uc.EXPECT().Get(gomock.Any(), "car-1").Return(entities.Car{}, &backend.Error{Kind: backend.KindResponse, Status: 500, Detail: "request failed"})

		w := performRequest(r, http.MethodGet, "/v1/cars/car-1", "")
		expectStatus(t, w, http.StatusBadGateway)
	})
}

func TestCarHandler_CreateCar(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCarRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/cars", "{")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("validation error", func(t *testing.T) {
		r, uc := newCarRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Car{}, &usecase.ValidationError{Fields: map[string]string{"year": "must be greater than or equal to 1900"}})

		w := performRequest(r, http.MethodPost, "/v1/cars", `{"brand":"Ford","model":"T","year":1800}`)
		expectStatus(t, w, http.StatusBadRequest)
		if body := decodeError(t, w); body.Code != "INVALID_INPUT" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("backend 422 passes through", func(t *testing.T) {
		r, uc := newCarRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Car{}, &backend.Error{Kind: backend.KindResponse, Status: 422, Detail: "vin already registered"})

		w := performRequest(r, http.MethodPost, "/v1/cars", `{"brand":"Ford","model":"T","year":2000}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCarRouter(t)
		uc.EXPECT().Create(gomock.Any(), entities.CarCreate{Brand: "Ford", Model: "Ranger", Year: 2022, SalePrice: 100}).
			Return(entities.Car{ID: "car-1", Brand: "Ford", Model: "Ranger", Year: 2022, SalePrice: 100}, nil)

		w := performRequest(r, http.MethodPost, "/v1/cars", `{"brand":"Ford","model":"Ranger","year":2022,"sale_price":100}`)
		expectStatus(t, w, http.StatusCreated)
	})
}

func TestCarHandler_UpdateDelete(t *testing.T) {
	r, uc := newCarRouter(t)

	uc.EXPECT().Update(gomock.Any(), "car-1", gomock.Any()).Return(entities.Car{}, usecase.ErrInvalidCarID)
	w := performRequest(r, http.MethodPut, "/v1/cars/car-1", `{"year":2020}`)
	expectStatus(t, w, http.StatusBadRequest)

	uc.EXPECT().Delete(gomock.Any(), "car-1").Return(nil)
	w = performRequest(r, http.MethodDelete, "/v1/cars/car-1", "")
	expectStatus(t, w, http.StatusNoContent)

	uc.EXPECT().Delete(gomock.Any(), "car-2").Return(errors.New("boom"))
	w = performRequest(r, http.MethodDelete, "/v1/cars/car-2", "")
	expectStatus(t, w, http.StatusInternalServerError)
}

func TestCarHandler_ListCarImports(t *testing.T) {
	r, uc := newCarRouter(t)
	uc.EXPECT().Imports(gomock.Any(), "car-1").Return(usecase.RelatedImports{}, nil)

	w := performRequest(r, http.MethodGet, "/v1/cars/car-1/imports", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != `{"imports":[],"count":0,"total_client":"0"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
