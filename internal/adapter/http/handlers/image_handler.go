package handlers

import (
	"errors"
	response "import_admin/internal/adapter/http/dto/response"
	"import_admin/internal/domain/media"
	"import_admin/internal/usecase"
	"import_admin/pkg"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const uploadFormField = "file"

// multipart overhead allowed on top of the image itself
const uploadOverhead = 1 << 20

type ImageHandler struct {
	usecase usecase.IImageUseCase
}

func NewImageHandler(uc usecase.IImageUseCase) *ImageHandler {
	return &ImageHandler{usecase: uc}
}

// UploadImage godoc
// @Summary      Attach an image to an import
// @Description  Accepts jpg, jpeg, png, gif and webp up to 10MB. Invalid files are never forwarded.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Import ID"
// @Param        file  formData  file    true  "Image"
// @Success      201   {object}  response.UploadedImageResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Router       /imports/{id}/images [post]
func (h *ImageHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxFileSize+uploadOverhead)

	fh, err := c.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds the maximum size", http.StatusRequestEntityTooLarge))
			return
		}
		writeError(c, errInvalidPayload)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxFileSize+1))
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	uploaded, err := h.usecase.Upload(c.Request.Context(), c.Param("id"), fh.Filename, data)
	if err != nil {
		writeError(c, mapImageError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUploadedImage(uploaded))
}

// DeleteImage godoc
// @Summary      Remove an image from an import
// @Tags         images
// @Produce      json
// @Param        id        path      string  true  "Import ID"
// @Param        filename  path      string  true  "Stored filename"
// @Success      200       {object}  entities.ImageDelete
// @Failure      404       {object}  pkg.HTTPError
// @Router       /imports/{id}/images/{filename} [delete]
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	res, err := h.usecase.Delete(c.Request.Context(), c.Param("id"), c.Param("filename"))
	if err != nil {
		writeError(c, mapImageError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapImageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImportID), errors.Is(err, usecase.ErrInvalidFilename):
		return errInvalidRequest
	default:
		return mapCommonError(err)
	}
}
