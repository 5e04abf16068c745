package handlers

import (
	"context"
	"errors"
	"import_admin/internal/domain/media"
	"import_admin/internal/infrastructure/backend"
	"import_admin/internal/usecase"
	"import_admin/pkg"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// writeError sends appErr and records it on the context for the request logger.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError handles the failures every resource shares: input validation,
// image validation and backend errors. The backend detail is passed through.
func mapCommonError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid input", http.StatusBadRequest).WithDetail(vErr.Error())
	}
	var mErr *media.ValidationError
	if errors.As(err, &mErr) {
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Invalid image file", http.StatusBadRequest).
			WithDetail(strings.Join(mErr.Problems, "; "))
	}

	// Timeouts are checked first: a backend call that ran out of time also
	// carries the no-response kind.
	if isTimeout(err) {
		return pkg.NewDomainError("TIMEOUT", "The request timed out", err, http.StatusGatewayTimeout)
	}

	if be, ok := backend.AsError(err); ok {
		switch be.Kind {
		case backend.KindNotFound:
			return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound).WithDetail(be.Detail)
		case backend.KindNoResponse:
			return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Imports backend is unavailable", err, http.StatusServiceUnavailable).WithDetail(be.Detail)
		default:
			status := http.StatusBadGateway
			if be.Status == http.StatusBadRequest || be.Status == http.StatusConflict || be.Status == http.StatusUnprocessableEntity {
				status = be.Status
			}
			return pkg.NewDomainError("BACKEND_ERROR", "Imports backend rejected the request", err, status).WithDetail(be.Detail)
		}
	}

	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nErr net.Error
	return errors.As(err, &nErr) && nErr.Timeout()
}
