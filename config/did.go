package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultDIDApiUrl          = "https://api.d-id.com"
	defaultDIDPollIntervalSec = 3
	defaultDIDPollMaxAttempts = 60
)

// DIDConfig holds the D-ID credentials and the polling budget for talk
// generation. ApiKey is the base64-encoded Basic credential the provider
// hands out, sent verbatim in the Authorization header.
type DIDConfig struct {
	ApiUrl          string
	ApiKey          string
	PollInterval    time.Duration
	PollMaxAttempts int
}

func GetDIDConfig() (*DIDConfig, error) {
	apiKey := os.Getenv("DID_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("DID_API_KEY must be set")
	}

	apiUrl := os.Getenv("DID_API_URL")
	if apiUrl == "" {
		apiUrl = defaultDIDApiUrl
	}

	pollIntervalSec := defaultDIDPollIntervalSec
	if raw := os.Getenv("DID_POLL_INTERVAL_SECONDS"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DID_POLL_INTERVAL_SECONDS")
		}
		pollIntervalSec = val
	}

	pollMaxAttempts := defaultDIDPollMaxAttempts
	if raw := os.Getenv("DID_POLL_MAX_ATTEMPTS"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DID_POLL_MAX_ATTEMPTS")
		}
		pollMaxAttempts = val
	}

	return &DIDConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		PollInterval:    time.Duration(pollIntervalSec) * time.Second,
		PollMaxAttempts: pollMaxAttempts,
	}, nil
}
