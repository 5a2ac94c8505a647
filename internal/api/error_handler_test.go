package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workforcehub/employee-system/internal/core/domain"
)

func newErrorContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestResolveError_DomainMappings(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"department not found", domain.ErrDepartmentNotFound, http.StatusNotFound, "Department not found"},
		{"invalid password", domain.ErrInvalidPassword, http.StatusUnauthorized, "Invalid password"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := resolveError(tt.err, zerolog.Nop(), newErrorContext())
			if code != tt.wantCode || msg != tt.wantMsg {
				t.Fatalf("got (%d, %q), want (%d, %q)", code, msg, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

func TestResolveError_ValidationError(t *testing.T) {
	ve := &domain.ValidationError{}
	ve.Add("departmentName", "department name is required")
	ve.Add("location", "location is required")

	code, msg := resolveError(ve, zerolog.Nop(), newErrorContext())
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "department name is required; location is required" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusBadRequest, "employees should be an array"), zerolog.Nop(), newErrorContext())
	if code != http.StatusBadRequest || msg != "employees should be an array" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestResolveError_ScrubsUnknownErrors(t *testing.T) {
	code, msg := resolveError(errors.New("connection reset by mongod"), zerolog.Nop(), newErrorContext())
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("backend detail leaked: %q", msg)
	}
}

func TestHTTPErrorHandler_RendersEnvelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unmatched route, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := resp["error"]; !ok {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}
