package config

import (
	"testing"
	"time"
)

func TestGetHumeConfig(t *testing.T) {
	t.Setenv("HUME_API_KEY", "key")

	humeConfig, err := GetHumeConfig()
	if err != nil {
		t.Fatal("failed to get hume config:", err)
	}
	if humeConfig.ApiUrl != "https://api.hume.ai/v0/tts/file" {
		t.Error("unexpected default api url:", humeConfig.ApiUrl)
	}
	if humeConfig.VoiceID == "" {
		t.Error("default voice id not set")
	}
	if humeConfig.AudioFormat != "mp3" {
		t.Error("unexpected default audio format:", humeConfig.AudioFormat)
	}
}

func TestGetHumeConfig_MissingKey(t *testing.T) {
	t.Setenv("HUME_API_KEY", "")

	if _, err := GetHumeConfig(); err == nil {
		t.Fatal("expected an error when HUME_API_KEY is unset")
	}
}

func TestGetDIDConfig(t *testing.T) {
	t.Setenv("DID_API_KEY", "dGVzdDprZXk=")
	t.Setenv("DID_POLL_INTERVAL_SECONDS", "5")
	t.Setenv("DID_POLL_MAX_ATTEMPTS", "10")

	didConfig, err := GetDIDConfig()
	if err != nil {
		t.Fatal("failed to get d-id config:", err)
	}
	if didConfig.ApiUrl != "https://api.d-id.com" {
		t.Error("unexpected default api url:", didConfig.ApiUrl)
	}
	if didConfig.PollInterval != 5*time.Second {
		t.Error("unexpected poll interval:", didConfig.PollInterval)
	}
	if didConfig.PollMaxAttempts != 10 {
		t.Error("unexpected poll attempt cap:", didConfig.PollMaxAttempts)
	}
}

func TestGetDIDConfig_BadPollInterval(t *testing.T) {
	t.Setenv("DID_API_KEY", "dGVzdDprZXk=")
	t.Setenv("DID_POLL_INTERVAL_SECONDS", "soon")

	if _, err := GetDIDConfig(); err == nil {
		t.Fatal("expected an error for a non-numeric poll interval")
	}
}

func TestGetDynamoConfig(t *testing.T) {
	t.Setenv("DYNAMO_TABLE_NAME", "talks")
	t.Setenv("DYNAMO_TTL_MINUTES", "60")

	dynamoConfig, err := GetDynamoConfig()
	if err != nil {
		t.Fatal("failed to get dynamo config:", err)
	}
	if dynamoConfig.TableName != "talks" {
		t.Error("unexpected table name:", dynamoConfig.TableName)
	}
	if dynamoConfig.TtlMinutes != 60 {
		t.Error("unexpected ttl:", dynamoConfig.TtlMinutes)
	}
}

func TestGetS3Config_MissingBucket(t *testing.T) {
	t.Setenv("BUCKET_NAME", "")
	t.Setenv("REGION", "eu-west-1")

	if _, err := GetS3Config(); err == nil {
		t.Fatal("expected an error when BUCKET_NAME is unset")
	}
}

func TestGetServerConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWKS_URL", "")

	serverConfig := GetServerConfig()
	if serverConfig.Port != "8080" {
		t.Error("unexpected default port:", serverConfig.Port)
	}
	if serverConfig.JwksUrl != "" {
		t.Error("jwks url should default to empty")
	}
}
