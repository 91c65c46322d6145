package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
	"github.com/corboo/claire-video-generator/config"
)

const (
	talkStatusDone  = "done"
	talkStatusError = "error"
)

type didTalkScript struct {
	Type     string `json:"type"`
	AudioUrl string `json:"audio_url"`
}

type DIDTalkRequest struct {
	SourceUrl string        `json:"source_url"`
	Script    didTalkScript `json:"script"`
}

type didTalkResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	ResultUrl string `json:"result_url"`
	Error     string `json:"error"`
}

type didTalkDirector struct {
	ContentFetcher
	logger    outbound.LoggerPort
	didConfig *config.DIDConfig
}

func NewDIDTalkDirector(contentFetcher ContentFetcher, didConfig *config.DIDConfig, logger outbound.LoggerPort) outbound.TalkDirectorPort {
	return &didTalkDirector{
		ContentFetcher: contentFetcher,
		logger:         logger,
		didConfig:      didConfig,
	}
}

func (d *didTalkDirector) Create(ctx context.Context, createReq outbound.CreateTalkRequest) (string, error) {
	reqBody := DIDTalkRequest{
		SourceUrl: createReq.ImageURL,
		Script: didTalkScript{
			Type:     "audio",
			AudioUrl: createReq.AudioURL,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.didConfig.ApiUrl+"/talks", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", err
	}
	req.Header.Add("Authorization", "Basic "+d.didConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	rawRes, err := d.FetchContent(req)
	if err != nil {
		return "", err
	}

	var talkRes didTalkResponse
	if err = json.Unmarshal(rawRes, &talkRes); err != nil {
		d.logger.Error(err, "failed to unmarshal the talk creation response")
		return "", err
	}
	if talkRes.ID == "" {
		return "", fmt.Errorf("talk creation response contains no id")
	}

	d.logger.DebugWithFields("talk created", map[string]interface{}{
		"remote_id": talkRes.ID,
	})

	return talkRes.ID, nil
}

// WaitForResult polls the talk on a fixed cadence until the provider reports
// it done, it fails, or the attempt budget runs out.
func (d *didTalkDirector) WaitForResult(ctx context.Context, talkID string) (string, error) {
	ticker := time.NewTicker(d.didConfig.PollInterval)
	defer ticker.Stop()

	for attempt := 0; attempt < d.didConfig.PollMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		talkRes, err := d.getTalk(ctx, talkID)
		if err != nil {
			return "", err
		}

		switch talkRes.Status {
		case talkStatusDone:
			return talkRes.ResultUrl, nil
		case talkStatusError:
			errMessage := talkRes.Error
			if errMessage == "" {
				errMessage = "unknown error"
			}
			return "", fmt.Errorf("talk generation failed: %s", errMessage)
		default:
			d.logger.DebugWithFields("talk not ready yet", map[string]interface{}{
				"remote_id": talkID,
				"status":    talkRes.Status,
			})
		}
	}

	return "", fmt.Errorf("timed out waiting for talk %s", talkID)
}

func (d *didTalkDirector) getTalk(ctx context.Context, talkID string) (*didTalkResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.didConfig.ApiUrl+"/talks/"+talkID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Authorization", "Basic "+d.didConfig.ApiKey)

	rawRes, err := d.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var talkRes didTalkResponse
	if err = json.Unmarshal(rawRes, &talkRes); err != nil {
		d.logger.Error(err, "failed to unmarshal the talk status response")
		return nil, err
	}

	return &talkRes, nil
}
