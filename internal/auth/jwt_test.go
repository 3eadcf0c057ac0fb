package auth

import (
	"testing"
	"time"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue("alice", "passenger", "111-22-3333", "", "Alice Smith", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Username() != "alice" {
		t.Errorf("Expected username alice, got %s", claims.Username())
	}
	if string(claims.Role()) != "passenger" {
		t.Errorf("Expected role passenger, got %s", claims.Role())
	}
	if claims.PassengerSSN() != "111-22-3333" {
		t.Errorf("Expected ssn 111-22-3333, got %s", claims.PassengerSSN())
	}
	if claims.Email() != "alice@example.com" {
		t.Errorf("Expected email alice@example.com, got %s", claims.Email())
	}
}

func TestTokenIssuer_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue("bob", "crew", "", "E100", "Bob", "bob@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := issuer.Verify(signed); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	signed, err := issuer.Issue("carol", "agent", "", "E200", "Carol", "carol@example.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := other.Verify(signed); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenIssuer_GarbageToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	if _, err := issuer.Verify("not.a.token"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for garbage input, got %v", err)
	}
}
