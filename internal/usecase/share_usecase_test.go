package usecase

import (
	"context"
	"errors"
	"testing"

	"import_admin/internal/domain/entities"
	"import_admin/internal/infrastructure/logging"
	mock_interfaces "import_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestShareUseCase_Create(t *testing.T) {
	tests := []struct {
		name     string
		days     *int
		wantDays int
		wantErr  error
	}{
		{name: "default validity", days: nil, wantDays: 30},
		{name: "one day", days: intPtr(1), wantDays: 1},
		{name: "one year", days: intPtr(365), wantDays: 365},
		{name: "zero", days: intPtr(0), wantErr: ErrInvalidDaysValid},
		{name: "too long", days: intPtr(366), wantErr: ErrInvalidDaysValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			shares := mock_interfaces.NewMockIShareGateway(ctrl)
			uc := NewShareUseCase(shares, nil, newTestTracker(), logging.Discard())

			if tt.wantErr == nil {
				shares.EXPECT().CreateShare(gomock.Any(), "imp-1", entities.ShareCreate{DaysValid: tt.wantDays}).
					Return(entities.ShareToken{Token: "tok", IsActive: true}, nil)
			}

			tok, err := uc.Create(context.Background(), "imp-1", tt.days)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil || tok.Token != "tok" {
				t.Fatalf("unexpected result %+v, %v", tok, err)
			}
		})
	}
}

func TestShareUseCase_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	shares := mock_interfaces.NewMockIShareGateway(ctrl)
	uc := NewShareUseCase(shares, nil, newTestTracker(), logging.Discard())

	if err := uc.Revoke(context.Background(), "imp-1", " "); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	shares.EXPECT().DeleteShare(gomock.Any(), "imp-1", "tok").Return(nil)
	if err := uc.Revoke(context.Background(), "imp-1", "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShareUseCase_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	shares := mock_interfaces.NewMockIShareGateway(ctrl)
	images := mock_interfaces.NewMockIImageGateway(ctrl)
	uc := NewShareUseCase(shares, images, newTestTracker(), logging.Discard())

	shares.EXPECT().GetSharedImport(gomock.Any(), "tok").Return(entities.PublicImport{
		ID:            "imp-1",
		CostosCliente: map[string]float64{"flete": 150, "seguro": 50},
		Images:        []string{"https://cdn.example.com/a.jpg"},
	}, nil)
	images.EXPECT().ImageURL("https://cdn.example.com/a.jpg").Return("https://cdn.example.com/a.jpg")

	got, err := uc.Public(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalClient.String() != "200" || len(got.ImageURLs) != 1 {
		t.Fatalf("unexpected shared import %+v", got)
	}
}
