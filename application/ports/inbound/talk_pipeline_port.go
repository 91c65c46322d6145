package inbound

import (
	"context"

	"github.com/corboo/claire-video-generator/domain"
)

type StartPipelineParams struct {
	TalkID string
	UserID string
	Script string
	// VoiceID overrides the configured default voice when non-empty.
	VoiceID string
	// Avatar carries the uploaded face image; zero value selects the
	// bundled default avatar.
	Avatar domain.AvatarImage
}

// TalkPipelinePort runs a full script-to-video generation. Stage events are
// emitted as the pipeline progresses, ending with a done event that carries
// the playable video URL. Both channels close when the pipeline finishes.
type TalkPipelinePort interface {
	StartPipeline(ctx context.Context, params StartPipelineParams) (<-chan domain.StageEvent, <-chan error)
}
