// Command devtoken prints a signed bearer token for local testing.
//
//	go run ./cmd/devtoken -user 0b6f6a43-2f3b-4c1e-9a55-1d1f3c2b7e01
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/osse101/ChoreWheel_Go/internal/auth"
)

func main() {
	userID := flag.String("user", "", "user id to put in the sub claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "AUTH_JWT_SECRET is not set")
		os.Exit(1)
	}
	if err := uuid.Validate(*userID); err != nil {
		fmt.Fprintln(os.Stderr, "-user must be a UUID:", err)
		os.Exit(1)
	}

	token, err := auth.GenerateToken(secret, *userID, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
