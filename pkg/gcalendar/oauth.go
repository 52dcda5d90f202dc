package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewClient picks the credential flavour: a user token when tokenPath is set,
// a service account otherwise.
func NewClient(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	if tokenPath != "" {
		return NewClientFromOAuthFiles(ctx, credentialsPath, tokenPath)
	}
	return NewClientFromCredentialsFile(ctx, credentialsPath)
}

// NewClientFromOAuthFiles creates a Calendar client acting as the user who
// authorized the token at tokenPath (see scripts/gcal-auth).
func NewClientFromOAuthFiles(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	config, err := OAuthConfigFromFile(credentialsPath)
	if err != nil {
		return nil, err
	}
	tok, err := ReadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// OAuthConfigFromFile reads an OAuth client (desktop or web) credentials file.
func OAuthConfigFromFile(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported oauth client file: %w", err)
	}
	return config, nil
}

// ReadToken loads a token saved by SaveToken.
func ReadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}
	return tok, nil
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
