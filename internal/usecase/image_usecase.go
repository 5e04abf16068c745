package usecase

//go:generate mockgen -source=image_usecase.go -destination=../adapter/http/handlers/mocks/image_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/media"
	"import_admin/internal/usecase/interfaces"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrInvalidFilename = errors.New("invalid image filename")

// UploadedImage is the result of an accepted upload. Warnings are the non-blocking
// findings of validation.
type UploadedImage struct {
	Filename string
	URL      string
	Size     string
	Warnings []string
}

type IImageUseCase interface {
	Upload(ctx context.Context, importID, filename string, data []byte) (UploadedImage, error)
	Delete(ctx context.Context, importID, filename string) (entities.ImageDelete, error)
}

type ImageUseCase struct {
	images interfaces.IImageGateway
	log    logrus.FieldLogger
}

var _ IImageUseCase = (*ImageUseCase)(nil)

func NewImageUseCase(images interfaces.IImageGateway, log logrus.FieldLogger) *ImageUseCase {
	return &ImageUseCase{images: images, log: log}
}

// Upload validates the file and only then sends it to the backend. Validation
// failures are *media.ValidationError.
func (u *ImageUseCase) Upload(ctx context.Context, importID, filename string, data []byte) (UploadedImage, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return UploadedImage{}, ErrInvalidImportID
	}
	filename = path.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	if filename == "" || filename == "." || filename == "/" {
		return UploadedImage{}, ErrInvalidFilename
	}

	img, err := media.Validate(filename, data)
	if err != nil {
		return UploadedImage{}, err
	}

	res, err := u.images.UploadImage(ctx, importID, img.Filename, img.MIMEType, img.Data)
	if err != nil {
		return UploadedImage{}, err
	}
	u.log.WithFields(logrus.Fields{
		"import_id": importID,
		"filename":  res.Filename,
		"size":      img.Size,
	}).Info("[image][usecase] uploaded")

	name := res.Filename
	if name == "" {
		name = img.Filename
	}
	return UploadedImage{
		Filename: name,
		URL:      u.images.ImageURL(res.ImageURL),
		Size:     media.FormatFileSize(img.Size),
		Warnings: img.Warnings,
	}, nil
}

func (u *ImageUseCase) Delete(ctx context.Context, importID, filename string) (entities.ImageDelete, error) {
	importID = strings.TrimSpace(importID)
	filename = strings.TrimSpace(filename)
	if importID == "" {
		return entities.ImageDelete{}, ErrInvalidImportID
	}
	if filename == "" || strings.ContainsAny(filename, `/\`) {
		return entities.ImageDelete{}, ErrInvalidFilename
	}
	res, err := u.images.DeleteImage(ctx, importID, filename)
	if err != nil {
		return entities.ImageDelete{}, err
	}
	u.log.WithFields(logrus.Fields{"import_id": importID, "filename": filename}).Info("[image][usecase] deleted")
	return res, nil
}
