package globals

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

var (
	JwtSecret     []byte
	PaymentSecret []byte
)

func init() {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "insecure-dev-secret"
	}
	JwtSecret = []byte(secret)

	paySecret := os.Getenv("PAYMENT_SECRET")
	if paySecret == "" {
		paySecret = "insecure-payment-secret"
	}
	PaymentSecret = []byte(paySecret)
}

// Context keys
type ContextKey string

const ClaimsKey ContextKey = "claims"

var Ctx = context.Background()
