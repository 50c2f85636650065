package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("super-secret"), time.Hour)

	tok, err := m.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	userID, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), -1*time.Second)

	tok, err := m.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	_, err = m.Verify(tok)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	right := NewManager([]byte("right-secret"), time.Hour)
	wrong := NewManager([]byte("wrong-secret"), time.Hour)

	tok, err := right.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	_, err = wrong.Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("secret"), time.Hour)

	tok, err := m.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	// Flip one byte in the payload segment.
	b := []byte(tok)
	i := len(b) / 2
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	if _, err := m.Verify(string(b)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("k"), time.Hour)

	if _, err := m.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := m.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty string, got %v", err)
	}
}
