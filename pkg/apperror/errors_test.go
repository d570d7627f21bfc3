package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryStatusCodes(t *testing.T) {
	tests := []struct {
		err  *AppError
		code int
	}{
		{NewNotFoundError("Order"), http.StatusNotFound},
		{NewPreconditionError("Order is not pending"), http.StatusUnprocessableEntity},
		{NewConflictError("Shift already open"), http.StatusConflict},
		{NewBadRequestError("Invalid filter"), http.StatusBadRequest},
		{NewValidationError([]FieldError{{Field: "qty", Message: "must be positive"}}), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("%q: code = %d, want %d", tt.err.Message, tt.err.Code, tt.code)
		}
	}

	if got := NewNotFoundError("Order").Message; got != "Order not found" {
		t.Errorf("not found message = %q", got)
	}
}

func TestGetAppErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("cancel order: %w", ErrInvalidAdminPin)

	got := GetAppError(wrapped)
	if got.Code != http.StatusForbidden {
		t.Errorf("code = %d, want %d", got.Code, http.StatusForbidden)
	}
	if !IsAppError(wrapped) {
		t.Error("wrapped sentinel should still be an AppError")
	}
}

func TestGetAppErrorDefaultsToInternal(t *testing.T) {
	got := GetAppError(errors.New("driver: bad connection"))
	if got.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want %d", got.Code, http.StatusInternalServerError)
	}
}
