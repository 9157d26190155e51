package sealer

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
)

func testKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestReceiptToken_RoundTrip(t *testing.T) {
	s, err := New(testKey(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := s.CreateReceiptToken("ABC123XYZ789", "2025-11-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reference, dateKey, err := s.ParseReceiptToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reference != "ABC123XYZ789" || dateKey != "2025-11-29" {
		t.Errorf("round trip mismatch: got %s / %s", reference, dateKey)
	}
}

func TestReceiptToken_TamperedTokenRejected(t *testing.T) {
	s, err := New(testKey(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := s.CreateReceiptToken("ABC123XYZ789", "2025-11-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := []byte(token)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	if _, _, err := s.ParseReceiptToken(string(tampered)); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestReceiptToken_WrongKeyRejected(t *testing.T) {
	minting, err := New(testKey(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := New(testKey(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := minting.CreateReceiptToken("ABC123XYZ789", "2025-11-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := other.ParseReceiptToken(token); err == nil {
		t.Error("expected token minted under a different key to be rejected")
	}
}

func TestNew_RejectsBadKeys(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"too short", base64.StdEncoding.EncodeToString([]byte("short"))},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.key); err == nil {
				t.Error("expected error")
			}
		})
	}
}
