package adapters

import (
	"context"
	"net/http"

	"github.com/corboo/claire-video-generator/application/ports/outbound"
)

type videoFetcher struct {
	ContentFetcher
	logger outbound.LoggerPort
}

func NewVideoFetcher(contentFetcher ContentFetcher, logger outbound.LoggerPort) outbound.VideoFetcherPort {
	return &videoFetcher{
		ContentFetcher: contentFetcher,
		logger:         logger,
	}
}

// Fetch downloads the finished video from the provider's result URL. The URL
// is pre-signed, so no credentials are attached.
func (v *videoFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		v.logger.Error(err, "failed to construct the video download request")
		return nil, err
	}

	return v.FetchContent(req)
}
