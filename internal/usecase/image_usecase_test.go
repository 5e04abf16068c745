package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/media"
	"import_admin/internal/infrastructure/logging"
	mock_interfaces "import_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestImageUseCase_Upload(t *testing.T) {
	t.Run("invalid file never reaches the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		images := mock_interfaces.NewMockIImageGateway(ctrl)
		uc := NewImageUseCase(images, logging.Discard())

		_, err := uc.Upload(context.Background(), "imp-1", "notes.txt", []byte("hello"))
		var verr *media.ValidationError
		if !errors.As(err, &verr) || len(verr.Problems) == 0 {
			t.Fatalf("expected media.ValidationError, got %v", err)
		}
	})

	t.Run("missing filename", func(t *testing.T) {
		uc := NewImageUseCase(nil, logging.Discard())
		if _, err := uc.Upload(context.Background(), "imp-1", " ", pngBytes(t)); !errors.Is(err, ErrInvalidFilename) {
			t.Fatalf("expected ErrInvalidFilename, got %v", err)
		}
	})

	t.Run("uploads a valid image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		images := mock_interfaces.NewMockIImageGateway(ctrl)
		uc := NewImageUseCase(images, logging.Discard())
		data := pngBytes(t)

		images.EXPECT().UploadImage(gomock.Any(), "imp-1", "car.png", "image/png", data).
			Return(entities.ImageUpload{ImageURL: "/uploads/imp-1/car.png", Filename: "car.png"}, nil)
		images.EXPECT().ImageURL("/uploads/imp-1/car.png").Return("http://backend/uploads/imp-1/car.png")

		got, err := uc.Upload(context.Background(), "imp-1", `C:\fotos\car.png`, data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Filename != "car.png" || got.URL != "http://backend/uploads/imp-1/car.png" || len(got.Warnings) != 0 {
			t.Fatalf("unexpected upload %+v", got)
		}
	})
}

func TestImageUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock_interfaces.NewMockIImageGateway(ctrl)
	uc := NewImageUseCase(images, logging.Discard())

	if _, err := uc.Delete(context.Background(), "imp-1", "../etc/passwd"); !errors.Is(err, ErrInvalidFilename) {
		t.Fatalf("expected ErrInvalidFilename, got %v", err)
	}
	images.EXPECT().DeleteImage(gomock.Any(), "imp-1", "car.png").Return(entities.ImageDelete{Filename: "car.png"}, nil)
	if res, err := uc.Delete(context.Background(), "imp-1", "car.png"); err != nil || res.Filename != "car.png" {
		t.Fatalf("unexpected result %+v, %v", res, err)
	}
}
