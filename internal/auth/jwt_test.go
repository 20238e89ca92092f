package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	testSecret = "test-secret-at-least-32-chars-long-for-security"
	testIssuer = "sitebook-test"
)

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	userID := uuid.New()

	token, expires, err := manager.GenerateAccessToken(userID, "site@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if time.Until(expires) <= 14*time.Minute {
		t.Errorf("expected expiry about 15m ahead, got %v", time.Until(expires))
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "site@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if !claims.ExpiresAt.Equal(expires.Truncate(time.Second)) {
		t.Errorf("expected expiry %v, got %v", expires.Truncate(time.Second), claims.ExpiresAt)
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, -1*time.Hour)

	token, _, err := manager.GenerateAccessToken(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = manager.ValidateAccessToken(token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_Clock(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, time.Minute)
	issued := time.Now()
	manager.now = func() time.Time { return issued }

	token, _, err := manager.GenerateAccessToken(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	manager.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected token to be expired two minutes later")
	}
}

func TestJWTManager_ValidateAccessToken_InvalidSignature(t *testing.T) {
	t.Parallel()

	manager1 := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	manager2 := NewJWTManager("different-secret-32-chars-long-for-security!!", testIssuer, 15*time.Minute)

	token, _, err := manager1.GenerateAccessToken(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := manager2.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	malformedTokens := []string{
		"not.a.jwt",
		"invalid-token",
		"header.payload", // Missing signature
	}

	for _, token := range malformedTokens {
		if _, err := manager.ValidateAccessToken(token); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestJWTManager_ValidateAccessToken_Empty(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	if _, err := manager.ValidateAccessToken(""); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	manager1 := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	manager2 := NewJWTManager(testSecret, "wrong-issuer", 15*time.Minute)

	token, _, err := manager1.GenerateAccessToken(uuid.New(), "a@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = manager2.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "parse token") {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)

	// alg "none" must never be accepted.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for alg none, got nil")
	}
}
