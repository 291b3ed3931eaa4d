package portfolio

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}
	if err := issuer.Validate(token); err != nil {
		t.Errorf("Validate failed on fresh token: %v", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	// Issued two hours ago with a one hour ttl.
	token, err := issuer.Issue(time.Now().Add(-2 * time.Hour))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if err := issuer.Validate(token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := other.Issue(time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if err := issuer.Validate(token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for foreign token, got %v", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if err := issuer.Validate(token); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Validate(%q) = %v, want ErrUnauthorized", token, err)
		}
	}
}
