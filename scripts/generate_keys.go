//go:build ignore

// generate_keys prints a JWT secret for AUTH_ENABLED deployments and a
// development bearer token signed with it.
// Run with: go run scripts/generate_keys.go [-subject cust-1] [-ttl 24h]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/cart-service/internal/service"
)

func generateSecret(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func main() {
	subject := flag.String("subject", "dev-customer", "customer id placed in the token subject")
	issuer := flag.String("issuer", "", "token issuer, must match JWT_ISSUER when set")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	secret := flag.String("secret", os.Getenv("JWT_SECRET_KEY"), "reuse an existing secret instead of generating one")
	flag.Parse()

	if *secret == "" {
		s, err := generateSecret(32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
			os.Exit(1)
		}
		*secret = s
	}

	token, err := service.NewHMACTokenVerifier(*secret, *issuer, 0).Sign(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("# Cart service authentication")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", *secret)
	if *issuer != "" {
		fmt.Printf("JWT_ISSUER=%s\n", *issuer)
	}
	fmt.Println()
	fmt.Printf("# Development token for %q, valid for %s\n", *subject, *ttl)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
