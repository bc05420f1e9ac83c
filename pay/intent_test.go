package pay

import (
	"strings"
	"testing"
)

func TestClientSecretShape(t *testing.T) {
	secret, err := clientSecret("abc-123", 150.00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(secret, "pi_abc-123_secret_") {
		t.Fatalf("unexpected secret shape: %q", secret)
	}

	again, err := clientSecret("abc-123", 150.00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != again {
		t.Error("same intent and amount should sign identically")
	}

	other, err := clientSecret("abc-123", 99.00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret == other {
		t.Error("different amounts should not share a signature")
	}
}
