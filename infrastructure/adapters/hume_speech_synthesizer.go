package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
	"github.com/corboo/claire-video-generator/config"
)

type humeUtterance struct {
	Text  string    `json:"text"`
	Voice humeVoice `json:"voice"`
}

type humeVoice struct {
	ID string `json:"id"`
}

type humeFormat struct {
	Type string `json:"type"`
}

type HumeRequest struct {
	Utterances []humeUtterance `json:"utterances"`
	Format     humeFormat      `json:"format"`
}

type humeSpeechSynthesizer struct {
	ContentFetcher
	logger     outbound.LoggerPort
	humeConfig *config.HumeConfig
}

func NewHumeSpeechSynthesizer(contentFetcher ContentFetcher, humeConfig *config.HumeConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &humeSpeechSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		humeConfig:     humeConfig,
	}
}

// Synthesize renders the script as a single utterance and returns the raw
// audio bytes in the configured format.
func (h *humeSpeechSynthesizer) Synthesize(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) ([]byte, error) {
	req, err := h.getRequest(ctx, synthReq)
	if err != nil {
		h.logger.ErrorWithFields(err, "failed to construct the Hume TTS request", map[string]interface{}{
			"text": synthReq.Text,
		})
		return nil, err
	}

	return h.FetchContent(req)
}

func (h *humeSpeechSynthesizer) getRequest(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) (*http.Request, error) {
	voiceID := synthReq.VoiceID
	if voiceID == "" {
		voiceID = h.humeConfig.VoiceID
	}

	reqBody := HumeRequest{
		Utterances: []humeUtterance{
			{
				Text:  synthReq.Text,
				Voice: humeVoice{ID: voiceID},
			},
		},
		Format: humeFormat{Type: h.humeConfig.AudioFormat},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.humeConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"X-Hume-Api-Key": h.humeConfig.ApiKey,
		"Content-Type":   "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
