package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/politask/politask/internal/common"
)

func TestGenerateAndExtract_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	email := "ana@x.com"

	tok, err := GenerateToken(email, 42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	subject, err := ExtractSubject(tok, secret)
	if err != nil {
		t.Fatalf("ExtractSubject error: %v", err)
	}
	if subject != email {
		t.Fatalf("subject mismatch: got %q want %q", subject, email)
	}
}

func TestExtractSubject_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u@x.com", 1, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ExtractSubject(tok, secret)
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestExtractSubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u@x.com", 2, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ExtractSubject(tok, []byte("wrong-secret"))
	if err != common.ErrBadSignature {
		t.Fatalf("expected common.ErrBadSignature, got %v", err)
	}
}

func TestExtractSubject_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ExtractSubject("not.a.jwt", []byte("k"))
	if err != common.ErrMalformedToken {
		t.Fatalf("expected common.ErrMalformedToken, got %v", err)
	}
}

func TestExtractSubject_EmptySubject(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("", 3, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ExtractSubject(tok, secret); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

func TestIsValid_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("ana@x.com", 42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if !IsValid(tok, "ana@x.com", secret) {
		t.Fatal("expected token to be valid for its own subject")
	}
}

func TestIsValid_SubjectMismatch(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("ana@x.com", 42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if IsValid(tok, "other@x.com", secret) {
		t.Fatal("token must not validate for a different subject")
	}
	if IsValid(tok, "Ana@x.com", secret) {
		t.Fatal("subject comparison must be case-sensitive")
	}
}

func TestIsValid_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("ana@x.com", 42, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if IsValid(tok, "ana@x.com", secret) {
		t.Fatal("expired token must not validate")
	}
}

func TestIsValid_TamperedPayload(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("ana@x.com", 42, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}

	// Flip one byte of the payload; the signature must no longer verify.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if IsValid(tampered, "ana@x.com", secret) {
		t.Fatal("tampered token must not validate")
	}
}
