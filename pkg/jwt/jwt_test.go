package jwt

import (
	"testing"
	"time"

	"github.com/laudohub/laudohub-api/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := testService()
	professionalID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(professionalID, "dr@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if tokenID == "" {
		t.Fatal("empty token id")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.ProfessionalID != professionalID {
		t.Errorf("ProfessionalID = %s, want %s", claims.ProfessionalID, professionalID)
	}
	if claims.Email != "dr@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken(uuid.New(), "dr@example.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %q, want refresh", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateAccessToken(uuid.New(), "dr@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "another-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken accepted a token signed with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	s := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, _, err := s.GenerateAccessToken(uuid.New(), "dr@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken accepted an expired token")
	}
}

func TestValidateGarbage(t *testing.T) {
	s := testService()
	if _, err := s.ValidateToken("not-a-token"); err == nil {
		t.Fatal("ValidateToken accepted garbage")
	}
}
