package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	jwtKey = []byte("test-secret")

	id := uuid.New()
	token, err := CreateToken(id, RoleAdmin)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != id.String() {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, id)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("claims.Role = %q, want %q", claims.Role, RoleAdmin)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	jwtKey = []byte("test-secret")

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() accepted garbage input")
	}
}
