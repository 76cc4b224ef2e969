package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/zwitch/pkg/auth"
	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
	userdomain "github.com/ghuser/zwitch/services/user/domain"
	valuationdomain "github.com/ghuser/zwitch/services/valuation/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrAuthRequired", auth.ErrAuthRequired, http.StatusUnauthorized},
		{"ErrNotOwner", listingdomain.ErrNotOwner, http.StatusForbidden},
		{"ErrItemNotFound", listingdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrUserNotFound", userdomain.ErrUserNotFound, http.StatusNotFound},
		{"ErrWishlistItemNotFound", userdomain.ErrWishlistItemNotFound, http.StatusNotFound},
		{"ErrLocalityRequired", listingdomain.ErrLocalityRequired, http.StatusBadRequest},
		{"ErrInvalidListing", listingdomain.ErrInvalidListing, http.StatusUnprocessableEntity},
		{"ErrPriceRequired", listingdomain.ErrPriceRequired, http.StatusUnprocessableEntity},
		{"ErrPriceNotAllowed", listingdomain.ErrPriceNotAllowed, http.StatusUnprocessableEntity},
		{"ErrInvalidStatusTransition", listingdomain.ErrInvalidStatusTransition, http.StatusUnprocessableEntity},
		{"ErrInvalidValuationInput", valuationdomain.ErrInvalidValuationInput, http.StatusUnprocessableEntity},
		{"ErrValuationUnavailable", valuationdomain.ErrValuationUnavailable, http.StatusBadGateway},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", listingdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidListing", fmt.Errorf("%w: bad title", listingdomain.ErrInvalidListing), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, listingdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, listingdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
