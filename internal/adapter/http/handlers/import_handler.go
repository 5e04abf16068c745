package handlers

import (
	"errors"
	"fmt"
	response "import_admin/internal/adapter/http/dto/response"
	"import_admin/internal/usecase"
	"import_admin/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImportHandler serves import listing, detail, tracking and the cost sheet.
type ImportHandler struct {
	imports  usecase.IImportUseCase
	tracking usecase.IImportTrackingUseCase
	reports  usecase.IImportReportUseCase
}

func NewImportHandler(imports usecase.IImportUseCase, tracking usecase.IImportTrackingUseCase, reports usecase.IImportReportUseCase) *ImportHandler {
	return &ImportHandler{imports: imports, tracking: tracking, reports: reports}
}

// ListImports godoc
// @Summary      List imports
// @Description  Every import with its car, client, ledger totals and delivery countdown.
// @Tags         imports
// @Produce      json
// @Success      200  {array}   response.ImportSummaryResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /imports [get]
func (h *ImportHandler) ListImports(c *gin.Context) {
	items, err := h.imports.List(c.Request.Context())
	if err != nil {
		writeError(c, mapImportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportSummaries(items))
}

// GetImport godoc
// @Summary      Import detail
// @Tags         imports
// @Produce      json
// @Param        id   path      string  true  "Import ID"
// @Success      200  {object}  response.ImportDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /imports/{id} [get]
func (h *ImportHandler) GetImport(c *gin.Context) {
	detail, err := h.tracking.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapImportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportDetail(detail))
}

// GetImportTracking godoc
// @Summary      Import status timeline and delivery countdown
// @Tags         imports
// @Produce      json
// @Param        id   path      string  true  "Import ID"
// @Success      200  {object}  response.ImportTrackingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /imports/{id}/tracking [get]
func (h *ImportHandler) GetImportTracking(c *gin.Context) {
	tr, err := h.tracking.Tracking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapImportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportTracking(tr))
}

// DeleteImport godoc
// @Summary      Delete an import
// @Tags         imports
// @Param        id   path  string  true  "Import ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /imports/{id} [delete]
func (h *ImportHandler) DeleteImport(c *gin.Context) {
	if err := h.imports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapImportError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportCostSheet godoc
// @Summary      Cost sheet as XLSX
// @Tags         imports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "Import ID"
// @Success      200  {file}  file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /imports/{id}/cost-sheet [get]
func (h *ImportHandler) ExportCostSheet(c *gin.Context) {
	report, err := h.reports.CostSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapImportError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.ContentType, report.Data)
}

// ListStatuses godoc
// @Summary      Import statuses in lifecycle order
// @Tags         imports
// @Produce      json
// @Success      200  {array}  response.StatusOptionResponse
// @Router       /imports/statuses [get]
func (h *ImportHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusOptions())
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImportID):
		return errInvalidRequest
	default:
		return mapCommonError(err)
	}
}
