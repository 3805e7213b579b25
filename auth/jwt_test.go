package auth

import (
	"os"
	"testing"
)

func TestJWT_RoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := GenerateJWT(42, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "user@example.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestJWT_TamperedToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	token, err := GenerateJWT(1, "a@b.c")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Fatal("tampered token validated")
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateJWT(1, "a@b.c")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	os.Setenv("JWT_SECRET", "secret-two")
	defer os.Unsetenv("JWT_SECRET")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("token validated with wrong secret")
	}
}
