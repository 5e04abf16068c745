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

func TestImportUseCase_List(t *testing.T) {
	t.Run("joins cars and clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		cars := mock_interfaces.NewMockICarGateway(ctrl)
		clients := mock_interfaces.NewMockIClientGateway(ctrl)
		uc := NewImportUseCase(imports, cars, clients, nil, time.Minute, newTestTracker(), logging.Discard())

		imports.EXPECT().ListImports(gomock.Any()).Return([]entities.Import{
			{ID: "imp-1", CarID: "car-1", ClientID: "cli-1", CostosCliente: map[string]float64{"flete": 10}},
			{ID: "imp-2", CarID: "car-9", ClientID: "cli-1", Client: &entities.Client{ID: "cli-1", Name: "embedded"}},
		}, nil)
		cars.EXPECT().ListCars(gomock.Any()).Return([]entities.Car{{ID: "car-1", Model: "Hilux"}}, nil)
		clients.EXPECT().ListClients(gomock.Any()).Return([]entities.Client{{ID: "cli-1", Name: "Ana"}}, nil)

		got, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(got))
		}
		if got[0].Import.Car == nil || got[0].Import.Car.Model != "Hilux" || got[0].Import.Client.Name != "Ana" {
			t.Fatalf("expected joined row, got %+v", got[0].Import)
		}
		if got[0].TotalClient.String() != "10" || got[0].Countdown.Bucket != "neutral" {
			t.Fatalf("unexpected summary %+v", got[0])
		}
		if got[1].Import.Car != nil || got[1].Import.Client.Name != "embedded" {
			t.Fatalf("unexpected second row %+v", got[1].Import)
		}
	})

	t.Run("lookup failures leave rows unjoined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		cars := mock_interfaces.NewMockICarGateway(ctrl)
		clients := mock_interfaces.NewMockIClientGateway(ctrl)
		uc := NewImportUseCase(imports, cars, clients, nil, time.Minute, newTestTracker(), logging.Discard())

		imports.EXPECT().ListImports(gomock.Any()).Return([]entities.Import{{ID: "imp-1", CarID: "car-1"}}, nil)
		cars.EXPECT().ListCars(gomock.Any()).Return(nil, errors.New("boom"))
		clients.EXPECT().ListClients(gomock.Any()).Return(nil, errors.New("boom"))

		got, err := uc.List(context.Background())
		if err != nil || len(got) != 1 || got[0].Import.Car != nil {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
	})

	t.Run("imports failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		cars := mock_interfaces.NewMockICarGateway(ctrl)
		clients := mock_interfaces.NewMockIClientGateway(ctrl)
		uc := NewImportUseCase(imports, cars, clients, nil, time.Minute, newTestTracker(), logging.Discard())

		imports.EXPECT().ListImports(gomock.Any()).Return(nil, errors.New("backend down"))
		cars.EXPECT().ListCars(gomock.Any()).Return(nil, nil).AnyTimes()
		clients.EXPECT().ListClients(gomock.Any()).Return(nil, nil).AnyTimes()

		if _, err := uc.List(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestImportUseCase_GetDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	imports := mock_interfaces.NewMockIImportGateway(ctrl)
	uc := NewImportUseCase(imports, nil, nil, nil, time.Minute, newTestTracker(), logging.Discard())

	if _, err := uc.Get(context.Background(), " "); !errors.Is(err, ErrInvalidImportID) {
		t.Fatalf("expected ErrInvalidImportID, got %v", err)
	}

	imports.EXPECT().GetImport(gomock.Any(), "imp-1").Return(entities.Import{ID: "imp-1"}, nil)
	if imp, err := uc.Get(context.Background(), "imp-1"); err != nil || imp.ID != "imp-1" {
		t.Fatalf("unexpected result %+v, %v", imp, err)
	}

	imports.EXPECT().DeleteImport(gomock.Any(), "imp-1").Return(nil)
	if err := uc.Delete(context.Background(), "imp-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
