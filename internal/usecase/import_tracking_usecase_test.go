package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"import_admin/internal/domain/delivery"
	"import_admin/internal/domain/entities"
	"import_admin/internal/infrastructure/logging"
	mock_interfaces "import_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestTracker() *delivery.Tracker {
	tr := delivery.NewTracker(time.UTC, delivery.LocaleEN)
	tr.Now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }
	return tr
}

func tsPtr(t time.Time) *entities.Timestamp {
	ts := entities.NewTimestamp(t)
	return &ts
}

func TestImportTrackingUseCase_Detail(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewImportTrackingUseCase(nil, nil, newTestTracker(), logging.Discard())
		if _, err := uc.Detail(context.Background(), ""); !errors.Is(err, ErrInvalidImportID) {
			t.Fatalf("expected ErrInvalidImportID, got %v", err)
		}
	})

	t.Run("totals countdown and image urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		images := mock_interfaces.NewMockIImageGateway(ctrl)
		uc := NewImportTrackingUseCase(imports, images, newTestTracker(), logging.Discard())

		imports.EXPECT().GetImport(gomock.Any(), "imp-1").Return(entities.Import{
			ID:                    "imp-1",
			CostosReales:          map[string]float64{"flete": 0.1, "seguro": 0.2},
			CostosCliente:         map[string]float64{"flete": 1},
			FechaTentativaEntrega: tsPtr(time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)),
			Images:                []string{"/uploads/a.jpg"},
		}, nil)
		images.EXPECT().ImageURL("/uploads/a.jpg").Return("http://backend/uploads/a.jpg")

		d, err := uc.Detail(context.Background(), "imp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.TotalReal.String() != "0.3" || d.TotalClient.String() != "1" || d.Margin.String() != "0.7" {
			t.Fatalf("unexpected totals %s %s %s", d.TotalReal, d.TotalClient, d.Margin)
		}
		if d.Countdown.DaysRemaining == nil || *d.Countdown.DaysRemaining != 3 || d.Countdown.Bucket != delivery.BucketUrgent {
			t.Fatalf("unexpected countdown %+v", d.Countdown)
		}
		if len(d.ImageURLs) != 1 || d.ImageURLs[0] != "http://backend/uploads/a.jpg" {
			t.Fatalf("unexpected urls %v", d.ImageURLs)
		}
	})
}

func TestImportTrackingUseCase_Tracking(t *testing.T) {
	inline := []entities.StatusHistoryEntry{
		{Status: entities.ImportStatusEnProceso, ChangedAt: entities.NewTimestamp(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))},
	}

	t.Run("prefers the fetched history and its estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		uc := NewImportTrackingUseCase(imports, nil, newTestTracker(), logging.Discard())

		imports.EXPECT().GetImport(gomock.Any(), "imp-1").Return(entities.Import{
			ID:                    "imp-1",
			Status:                entities.ImportStatusEnTransito,
			StatusHistory:         inline,
			FechaTentativaEntrega: tsPtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		}, nil)
		imports.EXPECT().GetImportHistory(gomock.Any(), "imp-1").Return(entities.ImportHistory{
			History: []entities.StatusHistoryEntry{
				{Status: entities.ImportStatusEnTransito, ChangedAt: entities.NewTimestamp(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))},
				{Status: entities.ImportStatusEnProceso, ChangedAt: entities.NewTimestamp(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))},
			},
			CurrentStatus:         entities.ImportStatusEnTransito,
			FechaTentativaEntrega: tsPtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		}, nil)

		tr, err := uc.Tracking(context.Background(), "imp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tr.HistoryAvailable {
			t.Fatalf("expected history to be available")
		}
		if tr.Countdown.Bucket != delivery.BucketDueToday {
			t.Fatalf("expected due today from the history estimate, got %+v", tr.Countdown)
		}
		entries := tr.Timeline.Entries
		if len(entries) != 2 || entries[0].Status != entities.ImportStatusEnProceso || !entries[1].Current {
			t.Fatalf("unexpected timeline %+v", entries)
		}
		if !tr.Timeline.Consistent {
			t.Fatalf("expected consistent timeline")
		}
	})

	t.Run("history failure degrades to inline history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		uc := NewImportTrackingUseCase(imports, nil, newTestTracker(), logging.Discard())

		imports.EXPECT().GetImport(gomock.Any(), "imp-1").Return(entities.Import{
			ID:                    "imp-1",
			Status:                entities.ImportStatusEnAduana,
			StatusHistory:         inline,
			FechaTentativaEntrega: tsPtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		}, nil)
		imports.EXPECT().GetImportHistory(gomock.Any(), "imp-1").Return(entities.ImportHistory{}, errors.New("timeout"))

		tr, err := uc.Tracking(context.Background(), "imp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.HistoryAvailable {
			t.Fatalf("expected degraded history")
		}
		if tr.Countdown.Bucket != delivery.BucketOverdue {
			t.Fatalf("expected overdue from the import estimate, got %+v", tr.Countdown)
		}
		if len(tr.Timeline.Entries) != 1 || tr.Timeline.Entries[0].Current || tr.Timeline.Consistent {
			t.Fatalf("last entry does not match the live status: %+v", tr.Timeline)
		}
	})

	t.Run("import failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		imports := mock_interfaces.NewMockIImportGateway(ctrl)
		uc := NewImportTrackingUseCase(imports, nil, newTestTracker(), logging.Discard())

		imports.EXPECT().GetImport(gomock.Any(), "imp-1").Return(entities.Import{}, errors.New("not found"))
		imports.EXPECT().GetImportHistory(gomock.Any(), "imp-1").Return(entities.ImportHistory{}, nil).AnyTimes()

		if _, err := uc.Tracking(context.Background(), "imp-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
