package handlers

import (
	"errors"
	request "import_admin/internal/adapter/http/dto/request"
	response "import_admin/internal/adapter/http/dto/response"
	"import_admin/internal/domain/entities"
	"import_admin/internal/domain/ledger"
	"import_admin/internal/usecase"
	"import_admin/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ImportFormHandler exposes the server-side import form: open, edit the cost
// list, submit or discard.
type ImportFormHandler struct {
	usecase usecase.IImportFormUseCase
}

func NewImportFormHandler(uc usecase.IImportFormUseCase) *ImportFormHandler {
	return &ImportFormHandler{usecase: uc}
}

// OpenImportForm godoc
// @Summary      Open an import form
// @Description  With import_id the form edits that import; otherwise it creates a new one.
// @Tags         import-forms
// @Accept       json
// @Produce      json
// @Param        body  body      request.OpenImportFormRequest  true  "Form target"
// @Success      201   {object}  response.ImportFormResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /import-forms [post]
func (h *ImportFormHandler) OpenImportForm(c *gin.Context) {
	var payload request.OpenImportFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	var (
		draft entities.ImportDraft
		err   error
	)
	if payload.IsEdit() {
		draft, err = h.usecase.Open(c.Request.Context(), payload.ImportID)
	} else {
		draft, err = h.usecase.OpenNew(c.Request.Context(), payload.CarID, payload.ClientID)
	}
	if err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromImportDraft(draft))
}

// GetImportForm godoc
// @Summary      Get an open import form
// @Tags         import-forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  response.ImportFormResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /import-forms/{id} [get]
func (h *ImportFormHandler) GetImportForm(c *gin.Context) {
	draft, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportDraft(draft))
}

// UpdateImportForm godoc
// @Summary      Change notes, status, delivery date, car or client
// @Tags         import-forms
// @Accept       json
// @Produce      json
// @Param        id    path      string                            true  "Form ID"
// @Param        body  body      request.UpdateImportFormRequest  true  "Fields to change"
// @Success      200   {object}  response.ImportFormResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /import-forms/{id} [patch]
func (h *ImportFormHandler) UpdateImportForm(c *gin.Context) {
	var payload request.UpdateImportFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	draft, err := h.usecase.UpdateFields(c.Request.Context(), c.Param("id"), payload.Version, payload.ToFields())
	if err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportDraft(draft))
}

// AddCostEntry godoc
// @Summary      Append a blank cost line
// @Tags         import-forms
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Form ID"
// @Param        body  body      request.VersionRequest  true  "Version"
// @Success      200   {object}  response.ImportFormResponse
// @Router       /import-forms/{id}/entries [post]
func (h *ImportFormHandler) AddCostEntry(c *gin.Context) {
	var payload request.VersionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	draft, err := h.usecase.AddEntry(c.Request.Context(), c.Param("id"), payload.Version)
	if err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportDraft(draft))
}

// SetCostEntryField godoc
// @Summary      Edit one field of a cost line
// @Description  Amounts that do not parse as numbers are stored as 0.
// @Tags         import-forms
// @Accept       json
// @Produce      json
// @Param        id        path      string                            true  "Form ID"
// @Param        entry_id  path      string                            true  "Cost line ID"
// @Param        body      body      request.SetCostEntryFieldRequest  true  "Field and value"
// @Success      200       {object}  response.ImportFormResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /import-forms/{id}/entries/{entry_id} [patch]
func (h *ImportFormHandler) SetCostEntryField(c *gin.Context) {
	var payload request.SetCostEntryFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	draft, err := h.usecase.SetEntryField(c.Request.Context(), c.Param("id"), payload.Version, c.Param("entry_id"), ledger.Field(payload.Field), payload.Value)
	if err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportDraft(draft))
}

// RemoveCostEntry godoc
// @Summary      Remove a cost line
// @Tags         import-forms
// @Produce      json
// @Param        id        path      string  true   "Form ID"
// @Param        entry_id  path      string  true   "Cost line ID"
// @Param        version   query     int     false  "Expected form version"
// @Success      200       {object}  response.ImportFormResponse
// @Router       /import-forms/{id}/entries/{entry_id} [delete]
func (h *ImportFormHandler) RemoveCostEntry(c *gin.Context) {
	version, ok := queryVersion(c)
	if !ok {
		writeError(c, errInvalidRequest)
		return
	}
	draft, err := h.usecase.RemoveEntry(c.Request.Context(), c.Param("id"), version, c.Param("entry_id"))
	if err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportDraft(draft))
}

// SubmitImportForm godoc
// @Summary      Save the form to the backend
// @Description  Creates or updates the import. On failure the form stays open for a retry.
// @Tags         import-forms
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Form ID"
// @Param        body  body      request.VersionRequest  true  "Version"
// @Success      200   {object}  entities.Import
// @Failure      422   {object}  pkg.HTTPError
// @Router       /import-forms/{id}/submit [post]
func (h *ImportFormHandler) SubmitImportForm(c *gin.Context) {
	var payload request.VersionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	imp, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), payload.Version)
	if err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.JSON(http.StatusOK, imp)
}

// DiscardImportForm godoc
// @Summary      Close a form without saving
// @Tags         import-forms
// @Param        id   path  string  true  "Form ID"
// @Success      204
// @Router       /import-forms/{id} [delete]
func (h *ImportFormHandler) DiscardImportForm(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapImportFormError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func queryVersion(c *gin.Context) (int64, bool) {
	raw := c.Query("version")
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func mapImportFormError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidImportID),
		errors.Is(err, usecase.ErrInvalidCostField):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid import status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDeliveryDate):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERY_DATE", "Delivery date must be YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("IMPORT_FORM_NOT_FOUND", "Import form not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCostEntryNotFound):
		return pkg.NewDomainErrorSimple("COST_ENTRY_NOT_FOUND", "Cost line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftConflict):
		return pkg.NewDomainErrorSimple("IMPORT_FORM_CONFLICT", "Import form was changed by another request", http.StatusConflict)
	case errors.Is(err, usecase.ErrCarClientLockedOnEdit):
		return pkg.NewDomainErrorSimple("CAR_CLIENT_LOCKED", "Car and client cannot change on an existing import", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateCostNames):
		return pkg.NewDomainErrorSimple("DUPLICATE_COST_NAMES", "Cost names must be unique", http.StatusUnprocessableEntity).WithDetail(err.Error())
	case errors.Is(err, usecase.ErrCarAndClientRequired):
		return pkg.NewDomainErrorSimple("CAR_CLIENT_REQUIRED", "Car and client are required", http.StatusUnprocessableEntity)
	default:
		return mapCommonError(err)
	}
}
