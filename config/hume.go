package config

import (
	"fmt"
	"os"
)

const (
	defaultHumeApiUrl  = "https://api.hume.ai/v0/tts/file"
	defaultHumeVoiceID = "09eccfe9-8068-42c3-8f0a-e91f5d50d160"
	defaultAudioFormat = "mp3"
)

type HumeConfig struct {
	ApiUrl      string
	ApiKey      string
	VoiceID     string
	AudioFormat string
}

func GetHumeConfig() (*HumeConfig, error) {
	apiKey := os.Getenv("HUME_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("HUME_API_KEY must be set")
	}

	apiUrl := os.Getenv("HUME_API_URL")
	if apiUrl == "" {
		apiUrl = defaultHumeApiUrl
	}

	voiceID := os.Getenv("HUME_VOICE_ID")
	if voiceID == "" {
		voiceID = defaultHumeVoiceID
	}

	audioFormat := os.Getenv("HUME_AUDIO_FORMAT")
	if audioFormat == "" {
		audioFormat = defaultAudioFormat
	}

	return &HumeConfig{
		ApiUrl:      apiUrl,
		ApiKey:      apiKey,
		VoiceID:     voiceID,
		AudioFormat: audioFormat,
	}, nil
}
