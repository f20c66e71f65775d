package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/config"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// devtoken prints a signed access token for local testing against a
// development instance. It signs with FITTRACK_JWT_SECRET, same as the service.
func main() {
	userIDFlag := flag.String("user", "", "user id (uuid), random if empty")
	audience := flag.String("aud", "authenticated", "token audience")
	ttl := flag.Duration("ttl", time.Hour, "token time to live")
	dotEnvPath := flag.String("dotenv", ".env", "path for the .env file with secrets")
	flag.Parse()

	if err := config.LoadDotEnv(*dotEnvPath); err != nil {
		log.Fatal(err)
	}

	secret := os.Getenv("FITTRACK_JWT_SECRET")
	if secret == "" {
		log.Fatalln("jwt secret not set. use FITTRACK_JWT_SECRET")
	}

	userID := uuid.New()
	if *userIDFlag != "" {
		parsed, err := uuid.Parse(*userIDFlag)
		if err != nil {
			log.Fatalf("invalid user id [%s]: %s", *userIDFlag, err)
		}
		userID = parsed
	}

	token, err := auth.IssueToken([]byte(secret), *audience, userID, *ttl, time.Now())
	if err != nil {
		log.Fatalf("issue token: %s", err)
	}

	fmt.Fprintf(os.Stderr, "user: %s\n", userID)
	fmt.Println(token)
}
