package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"import_admin/internal/domain/entities"
	"import_admin/internal/infrastructure/logging"
	mock_interfaces "import_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestImportReportUseCase_CostSheet(t *testing.T) {
	t.Run("builds rows and totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		cars := mock_interfaces.NewMockICarGateway(ctrl)
		clients := mock_interfaces.NewMockIClientGateway(ctrl)
		exporter := mock_interfaces.NewMockICostSheetExporter(ctrl)
		uc := NewImportReportUseCase(imports, cars, clients, exporter, newTestTracker(), logging.Discard())
		uc.now = func() time.Time { return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) }

		imports.EXPECT().GetImport(gomock.Any(), "imp-1").Return(entities.Import{
			ID:                    "imp-1",
			CarID:                 "car-1",
			ClientID:              "cli-1",
			Status:                entities.ImportStatusEnAduana,
			CostosReales:          map[string]float64{"flete": 100, "aduana": 40},
			CostosCliente:         map[string]float64{"flete": 150, "seguro": 30},
			FechaTentativaEntrega: tsPtr(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		}, nil)
		cars.EXPECT().GetCar(gomock.Any(), "car-1").Return(entities.Car{Brand: "Toyota", Model: "Hilux", Year: 2020}, nil)
		clients.EXPECT().GetClient(gomock.Any(), "cli-1").Return(entities.Client{}, errors.New("gone"))
		exporter.EXPECT().Render(gomock.Any()).DoAndReturn(func(s entities.CostSheet) ([]byte, error) {
			if s.CarLabel != "Toyota Hilux 2020" || s.ClientName != "cli-1" {
				t.Fatalf("unexpected header %+v", s)
			}
			if s.Delivery != "February 1, 2024" {
				t.Fatalf("unexpected delivery %q", s.Delivery)
			}
			if len(s.Rows) != 3 || s.Rows[0].Name != "aduana" || s.Rows[2].Name != "seguro" {
				t.Fatalf("unexpected rows %+v", s.Rows)
			}
			if s.Rows[1].Margin.String() != "50" || s.Rows[0].Margin.String() != "-40" {
				t.Fatalf("unexpected margins %+v", s.Rows)
			}
			if s.TotalReal.String() != "140" || s.TotalClient.String() != "180" || s.TotalMargin().String() != "40" {
				t.Fatalf("unexpected totals %+v", s)
			}
			return []byte("xlsx"), nil
		})
		exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		r, err := uc.CostSheet(context.Background(), "imp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Filename != "costos-imp-1.xlsx" || string(r.Data) != "xlsx" {
			t.Fatalf("unexpected report %+v", r)
		}
	})

	t.Run("render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		exporter := mock_interfaces.NewMockICostSheetExporter(ctrl)
		uc := NewImportReportUseCase(imports, nil, nil, exporter, newTestTracker(), logging.Discard())

		imports.EXPECT().GetImport(gomock.Any(), "imp-1").Return(entities.Import{
			ID:     "imp-1",
			Car:    &entities.Car{Brand: "Ford"},
			Client: &entities.Client{Name: "Ana"},
		}, nil)
		exporter.EXPECT().Render(gomock.Any()).Return(nil, errors.New("disk full"))

		if _, err := uc.CostSheet(context.Background(), "imp-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
