package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/sweetshop/pkg/validate"
)

type addToCartInput struct {
	SweetID  uint `json:"sweetId"  validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(addToCartInput{SweetID: 3, Quantity: 2})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(addToCartInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["sweetId"]; !ok {
		t.Error("expected sweetId to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gte=0,lte=10000"`
	}
	if errs := validate.Struct(in{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail")
	}
	if errs := validate.Struct(in{Price: 550}); validate.HasErrors(errs) {
		t.Errorf("expected price 550 to pass, got: %v", errs)
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	type in struct {
		Unit string `json:"unit" validate:"nullable,min=2"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Unit: "x"}); !validate.HasErrors(errs) {
		t.Error("expected short non-empty nullable field to fail")
	}
}

func TestPointerFields(t *testing.T) {
	type in struct {
		Price *float64 `json:"price" validate:"gte=0"`
	}
	// Nil pointer means "not supplied": only required catches it.
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected nil optional pointer to pass, got: %v", errs)
	}
	bad := -3.0
	if errs := validate.Struct(in{Price: &bad}); !validate.HasErrors(errs) {
		t.Error("expected negative pointee to fail")
	}
}

func TestFirstIsDeterministic(t *testing.T) {
	type in struct {
		Name  string `json:"name"  validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}
	// Both fields fail; First must report the first declared field.
	got := validate.First(in{})
	want := "The name field is required."
	if got != want {
		t.Errorf("First() = %q, want %q", got, want)
	}
}
