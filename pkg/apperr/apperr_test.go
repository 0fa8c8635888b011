package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.Validation, http.StatusBadRequest},
		{apperr.OutOfStock, http.StatusBadRequest},
		{apperr.InsufficientStock, http.StatusBadRequest},
		{apperr.NotFound, http.StatusNotFound},
		{apperr.Unauthenticated, http.StatusUnauthorized},
		{apperr.Forbidden, http.StatusForbidden},
		{apperr.Internal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := apperr.New(tc.kind, "boom")
		if got := apperr.HTTPStatus(err); got != tc.want {
			t.Errorf("HTTPStatus(kind %d) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestUnclassifiedErrorsAreInternal(t *testing.T) {
	plain := errors.New("sql: connection refused")

	if apperr.KindOf(plain) != apperr.Internal {
		t.Error("plain error should classify as Internal")
	}
	if apperr.HTTPStatus(plain) != http.StatusInternalServerError {
		t.Error("plain error should map to 500")
	}
	if apperr.Message(plain) != "Internal server error" {
		t.Errorf("plain error message leaked: %q", apperr.Message(plain))
	}
}

func TestInternalMessageNeverLeaks(t *testing.T) {
	err := apperr.Wrap(apperr.Internal, "dsn=postgres://admin:hunter2@db", errors.New("cause"))
	if apperr.Message(err) != "Internal server error" {
		t.Errorf("internal message leaked: %q", apperr.Message(err))
	}
}

func TestWrapPreservesCauseChain(t *testing.T) {
	cause := errors.New("row not found")
	err := apperr.Wrap(apperr.NotFound, "Sweet not found", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause lost from chain")
	}
	if apperr.Message(err) != "Sweet not found" {
		t.Errorf("Message = %q", apperr.Message(err))
	}

	// Classification survives further wrapping by callers.
	outer := fmt.Errorf("handler: %w", err)
	if apperr.KindOf(outer) != apperr.NotFound {
		t.Error("kind lost through fmt.Errorf wrapping")
	}
}
