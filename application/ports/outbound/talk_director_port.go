package outbound

import "context"

type CreateTalkRequest struct {
	ImageURL string
	AudioURL string
}

// TalkDirectorPort drives the remote talk rendering: Create submits the job,
// WaitForResult blocks until the provider reports the video done and returns
// its playable URL.
type TalkDirectorPort interface {
	Create(ctx context.Context, req CreateTalkRequest) (string, error)
	WaitForResult(ctx context.Context, talkID string) (string, error)
}
