package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"boardingpass-service/internal/infrastructure/config"
	"boardingpass-service/internal/infrastructure/oauth"
	"boardingpass-service/pkg/logger"
)

func main() {
	addr := flag.String("addr", "localhost:8090", "callback listen address")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	sheetsOAuth := oauth.NewSheetsOAuth(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		"",
		"http://"+*addr+"/oauth2callback",
		log,
	)

	// Create a random state
	state := "random-state"

	// Start an HTTP server to handle the OAuth callback
	http.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		// Check state parameter
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		// Exchange the authorization code for a token
		token, err := sheetsOAuth.ExchangeCode(context.Background(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		tokenJSON, err := sheetsOAuth.TokenToJSON(token)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		fmt.Printf("\nToken:\n%s\n\nSet GOOGLE_REFRESH_TOKEN=%s\n\n", tokenJSON, token.RefreshToken)

		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		os.Exit(0)
	})

	fmt.Printf("Open this URL in your browser:\n%s\n", sheetsOAuth.GenerateAuthURL(state))

	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal("Callback server error", "error", err)
	}
}
