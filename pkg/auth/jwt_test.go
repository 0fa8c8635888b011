package auth_test

import (
	"testing"

	"github.com/shashiranjanraj/sweetshop/pkg/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := auth.GenerateToken(42, "asha@example.com", "USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "asha@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "USER" {
		t.Errorf("Role = %q", claims.Role)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, err := auth.ValidateToken(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := auth.GenerateToken(1, "a@b.com", "USER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := auth.ValidateToken(tampered); err == nil {
		t.Error("expected error for tampered signature")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Error("hash must not equal plain text")
	}

	if !auth.CheckPassword(hash, "secret1") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
