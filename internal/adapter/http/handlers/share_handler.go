package handlers

import (
	"errors"
	request "import_admin/internal/adapter/http/dto/request"
	response "import_admin/internal/adapter/http/dto/response"
	"import_admin/internal/domain/entities"
	"import_admin/internal/usecase"
	"import_admin/pkg"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	usecase usecase.IShareUseCase
}

func NewShareHandler(uc usecase.IShareUseCase) *ShareHandler {
	return &ShareHandler{usecase: uc}
}

// CreateShare godoc
// @Summary      Create a public share link
// @Description  days_valid defaults to 30 and must be between 1 and 365.
// @Tags         shares
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true   "Import ID"
// @Param        body  body      request.CreateShareRequest  false  "Validity"
// @Success      201   {object}  entities.ShareToken
// @Failure      400   {object}  pkg.HTTPError
// @Router       /imports/{id}/shares [post]
func (h *ShareHandler) CreateShare(c *gin.Context) {
	var payload request.CreateShareRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidPayload)
		return
	}
	token, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.DaysValid)
	if err != nil {
		writeError(c, mapShareError(err))
		return
	}
	c.JSON(http.StatusCreated, token)
}

// ListShares godoc
// @Summary      List share links of an import
// @Tags         shares
// @Produce      json
// @Param        id   path      string  true  "Import ID"
// @Success      200  {array}   entities.ShareToken
// @Router       /imports/{id}/shares [get]
func (h *ShareHandler) ListShares(c *gin.Context) {
	tokens, err := h.usecase.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapShareError(err))
		return
	}
	if tokens == nil {
		tokens = []entities.ShareToken{}
	}
	c.JSON(http.StatusOK, tokens)
}

// RevokeShare godoc
// @Summary      Revoke a share link
// @Tags         shares
// @Param        id     path  string  true  "Import ID"
// @Param        token  path  string  true  "Share token"
// @Success      204
// @Router       /imports/{id}/shares/{token} [delete]
func (h *ShareHandler) RevokeShare(c *gin.Context) {
	if err := h.usecase.Revoke(c.Request.Context(), c.Param("id"), c.Param("token")); err != nil {
		writeError(c, mapShareError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSharedImport godoc
// @Summary      Public view of a shared import
// @Description  Client-facing projection: real costs are never included.
// @Tags         public
// @Produce      json
// @Param        token  path      string  true  "Share token"
// @Success      200    {object}  response.SharedImportResponse
// @Failure      404    {object}  pkg.HTTPError
// @Router       /public/shares/{token} [get]
func (h *ShareHandler) GetSharedImport(c *gin.Context) {
	shared, err := h.usecase.Public(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, mapShareError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSharedImport(shared))
}

func mapShareError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImportID), errors.Is(err, usecase.ErrInvalidToken):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidDaysValid):
		return pkg.NewDomainErrorSimple("INVALID_DAYS_VALID", "days_valid must be between 1 and 365", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
