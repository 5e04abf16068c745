package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	withDetail := simple.WithDetail("Import no encontrada")
	if simple.Detail != "" {
		t.Fatalf("expected original to stay untouched")
	}
	body := withDetail.ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Message != "Not found" || body.Detail != "Import no encontrada" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
